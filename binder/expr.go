package binder

import (
	"strconv"
	"strings"

	"github.com/kipsql-go/kipsql/ast"
	"github.com/kipsql-go/kipsql/expression"
	"github.com/kipsql-go/kipsql/types"
)

var binaryOps = map[string]types.BinaryOperator{
	"+": types.Add, "-": types.Sub, "*": types.Mul, "/": types.Div, "%": types.Mod,
	"=": types.Eq, "!=": types.NotEq, "<>": types.NotEq,
	">": types.Gt, "<": types.Lt, ">=": types.GtEq, "<=": types.LtEq,
	"AND": types.And, "OR": types.Or,
}

var unaryOps = map[string]types.UnaryOperator{
	"+": types.Plus, "-": types.Minus, "NOT": types.Not,
}

var castTypes = map[string]types.LogicalType{
	"BOOLEAN": types.Boolean, "TINYINT": types.Tinyint, "SMALLINT": types.Smallint,
	"INTEGER": types.Integer, "INT": types.Integer, "BIGINT": types.Bigint,
	"FLOAT": types.Float, "DOUBLE": types.Double, "VARCHAR": types.Varchar,
	"DATE": types.Date, "DATETIME": types.DateTime, "DECIMAL": types.Decimal,
}

var aggKinds = map[string]expression.AggKind{
	"count": expression.Count, "sum": expression.Sum, "avg": expression.Avg,
	"min": expression.Min, "max": expression.Max,
}

// bindExpr binds an AST scalar expression against the tables currently
// registered in ctx, per the Expr variant set spec.md §6 assumes.
func (b *Binder) bindExpr(e ast.Expr) (expression.ScalarExpression, *Error) {
	switch x := e.(type) {
	case ast.Value:
		return b.bindValue(x)
	case ast.Identifier:
		return b.bindIdentifier(x.Name)
	case ast.CompoundIdentifier:
		return b.bindCompoundIdentifier(x.Parts)
	case ast.IsNull:
		inner, err := b.bindExpr(x.Expr)
		if err != nil {
			return nil, err
		}
		return expression.IsNullExpr{Expr: inner}, nil
	case ast.Cast:
		inner, err := b.bindExpr(x.Expr)
		if err != nil {
			return nil, err
		}
		target, ok := castTypes[strings.ToUpper(x.TypeName)]
		if !ok {
			return nil, newError(Unsupported, "unsupported cast target type %q", x.TypeName)
		}
		return expression.TypeCast{Expr: inner, Target: target}, nil
	case ast.UnaryOp:
		inner, err := b.bindExpr(x.Expr)
		if err != nil {
			return nil, err
		}
		op, ok := unaryOps[strings.ToUpper(x.Op)]
		if !ok {
			return nil, newError(Unsupported, "unsupported unary operator %q", x.Op)
		}
		return expression.Unary{Op: op, Expr: inner, Ty: types.UnaryResultType(op, expression.ReturnType(inner))}, nil
	case ast.BinaryOp:
		left, err := b.bindExpr(x.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.bindExpr(x.Right)
		if err != nil {
			return nil, err
		}
		op, ok := binaryOps[strings.ToUpper(x.Op)]
		if !ok {
			return nil, newError(Unsupported, "unsupported binary operator %q", x.Op)
		}
		ty := types.BinaryResultType(op, expression.ReturnType(left), expression.ReturnType(right))
		return expression.Binary{Op: op, Left: left, Right: right, Ty: ty}, nil
	case ast.Function:
		return b.bindFunction(x)
	default:
		return nil, newError(Unsupported, "unsupported expression shape %T", e)
	}
}

func (b *Binder) bindValue(v ast.Value) (expression.ScalarExpression, *Error) {
	switch v.Kind {
	case ast.NumberValue:
		if strings.ContainsAny(v.Raw, ".eE") {
			f, err := strconv.ParseFloat(v.Raw, 64)
			if err != nil {
				return nil, newError(InvalidColumn, "malformed numeric literal %q", v.Raw)
			}
			return expression.Constant{Value: types.NewFloat(f, types.Double)}, nil
		}
		i, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return nil, newError(InvalidColumn, "malformed numeric literal %q", v.Raw)
		}
		return expression.Constant{Value: types.NewInt(i, types.Integer)}, nil
	case ast.StringValue:
		return expression.Constant{Value: types.NewVarchar(v.Raw)}, nil
	case ast.BoolValue:
		return expression.Constant{Value: types.NewBool(v.Raw == "true")}, nil
	case ast.NullValue:
		return expression.Constant{Value: types.None(types.SqlNull)}, nil
	default:
		return nil, newError(Unsupported, "unsupported literal kind")
	}
}

// bindIdentifier resolves a bare column name against every bound table, in
// binding order, returning the first match. A name no bound table has is
// resolved against the select-list aliases registered so far, yielding an
// Alias over the aliased expression.
func (b *Binder) bindIdentifier(name string) (expression.ScalarExpression, *Error) {
	name = foldIdent(name)
	for _, tableName := range b.ctx.bindOrder {
		tc, _ := b.ctx.lookupBoundTable(tableName)
		if col, ok := tc.ColumnByName(name); ok {
			return expression.ColumnRefExpr{Column: col}, nil
		}
	}
	if expr, ok := b.ctx.aliases[name]; ok {
		return expression.Alias{Expr: expr, Name: name}, nil
	}
	return nil, newError(InvalidColumn, "column %q not found", name)
}

// bindCompoundIdentifier resolves a qualified `table.column` reference.
func (b *Binder) bindCompoundIdentifier(parts []string) (expression.ScalarExpression, *Error) {
	if len(parts) != 2 {
		return nil, newError(InvalidColumn, "unsupported qualified column reference %v", parts)
	}
	tableName := foldIdent(parts[0])
	colName := foldIdent(parts[1])
	tc, ok := b.ctx.lookupBoundTable(tableName)
	if !ok {
		return nil, newError(InvalidTable, "table %q not bound", tableName)
	}
	col, ok := tc.ColumnByName(colName)
	if !ok {
		return nil, newError(InvalidColumn, "column %q not found on table %q", colName, tableName)
	}
	return expression.ColumnRefExpr{Column: col}, nil
}

func (b *Binder) bindFunction(f ast.Function) (expression.ScalarExpression, *Error) {
	kind, ok := aggKinds[foldIdent(f.Name)]
	if !ok {
		return nil, newError(Unsupported, "unsupported function %q", f.Name)
	}
	args := make([]expression.ScalarExpression, 0, len(f.Args))
	var argTy types.LogicalType
	for _, a := range f.Args {
		bound, err := b.bindExpr(a)
		if err != nil {
			return nil, err
		}
		args = append(args, bound)
		argTy = expression.ReturnType(bound)
	}
	ty := aggReturnType(kind, argTy)
	return expression.AggCall{Kind: kind, Distinct: f.Distinct, Args: args, Ty: ty}, nil
}

// aggReturnType mirrors the widening an aggregate produces: Count is
// always Bigint (a row count), Avg always widens to Double, the rest
// preserve the argument's type.
func aggReturnType(kind expression.AggKind, argTy types.LogicalType) types.LogicalType {
	switch kind {
	case expression.Count:
		return types.Bigint
	case expression.Avg:
		return types.Double
	default:
		return argTy
	}
}
