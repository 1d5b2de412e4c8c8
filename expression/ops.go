package expression

import "github.com/kipsql-go/kipsql/types"

// ReturnType computes the logical type an expression evaluates to,
// following the widening rules in types.BinaryResultType/UnaryResultType
// (spec §4.1, "return_type").
func ReturnType(e ScalarExpression) types.LogicalType {
	switch x := e.(type) {
	case Constant:
		return x.Value.Type()
	case ColumnRefExpr:
		return x.Column.Datatype()
	case InputRef:
		return x.Ty
	case Alias:
		return ReturnType(x.Expr)
	case TypeCast:
		return x.Target
	case IsNullExpr:
		return types.Boolean
	case Unary:
		return x.Ty
	case Binary:
		return x.Ty
	case AggCall:
		return x.Ty
	default:
		return types.Invalid
	}
}

// HasAggCall reports whether e contains an AggCall anywhere in its tree, or
// an InputRef that stands for an AggCall the binder has already extracted.
// Used by the binder's GROUP BY validation to skip aggregate select items.
func HasAggCall(e ScalarExpression) bool {
	switch x := e.(type) {
	case AggCall:
		return true
	case InputRef:
		return x.Kind == InputRefAggCall
	case Alias:
		return HasAggCall(x.Expr)
	case TypeCast:
		return HasAggCall(x.Expr)
	case IsNullExpr:
		return HasAggCall(x.Expr)
	case Unary:
		return HasAggCall(x.Expr)
	case Binary:
		return HasAggCall(x.Left) || HasAggCall(x.Right)
	default:
		return false
	}
}

// ReferencedColumns collects every ColumnRefExpr reachable from e, in
// traversal order, duplicates included — callers that need a set dedupe
// themselves (mirrors the original's Vec<ColumnRef> return shape).
func ReferencedColumns(e ScalarExpression) []ColumnRefExpr {
	var out []ColumnRefExpr
	collectColumns(e, &out)
	return out
}

func collectColumns(e ScalarExpression, out *[]ColumnRefExpr) {
	switch x := e.(type) {
	case ColumnRefExpr:
		*out = append(*out, x)
	case Alias:
		collectColumns(x.Expr, out)
	case TypeCast:
		collectColumns(x.Expr, out)
	case IsNullExpr:
		collectColumns(x.Expr, out)
	case Unary:
		collectColumns(x.Expr, out)
	case Binary:
		collectColumns(x.Left, out)
		collectColumns(x.Right, out)
	case AggCall:
		for _, a := range x.Args {
			collectColumns(a, out)
		}
	}
}

// UnpackAlias strips a top-level Alias wrapper, returning the inner
// expression unchanged if e is not an Alias. Project.ProjectInputRefs and
// PushProjectIntoScan use this to see through one alias layer.
func UnpackAlias(e ScalarExpression) ScalarExpression {
	if a, ok := e.(Alias); ok {
		return a.Expr
	}
	return e
}
