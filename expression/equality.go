package expression

// Equal is structural equality over the expression tree. Alias compares
// both the inner expression and the alias name — aliasing a column under a
// different name must never collapse two otherwise-identical expressions
// (spec §9: "Alias equality... never opaque-skips the alias name").
func Equal(a, b ScalarExpression) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case Constant:
		y, ok := b.(Constant)
		return ok && x.Value.Type() == y.Value.Type() && x.Value.String() == y.Value.String()
	case ColumnRefExpr:
		y, ok := b.(ColumnRefExpr)
		return ok && x.Column.Equal(y.Column)
	case InputRef:
		y, ok := b.(InputRef)
		return ok && x.Index == y.Index && x.Ty == y.Ty && x.Kind == y.Kind
	case Alias:
		y, ok := b.(Alias)
		return ok && x.Name == y.Name && Equal(x.Expr, y.Expr)
	case TypeCast:
		y, ok := b.(TypeCast)
		return ok && x.Target == y.Target && Equal(x.Expr, y.Expr)
	case IsNullExpr:
		y, ok := b.(IsNullExpr)
		return ok && Equal(x.Expr, y.Expr)
	case Unary:
		y, ok := b.(Unary)
		return ok && x.Op == y.Op && Equal(x.Expr, y.Expr)
	case Binary:
		y, ok := b.(Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case AggCall:
		y, ok := b.(AggCall)
		if !ok || x.Kind != y.Kind || x.Distinct != y.Distinct || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
