package operator

import "github.com/kipsql-go/kipsql/expression"

// Filter is a WHERE (Having=false) or HAVING (Having=true) predicate node.
type Filter struct {
	base
	Predicate expression.ScalarExpression
	Having    bool
}

func (Filter) isOperator() {}

func (f Filter) ReferencedColumns() []expression.ColumnRefExpr {
	return expression.ReferencedColumns(f.Predicate)
}
