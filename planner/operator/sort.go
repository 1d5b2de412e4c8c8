package operator

import "github.com/kipsql-go/kipsql/expression"

// SortField is one ORDER BY entry after binding.
type SortField struct {
	Expr        expression.ScalarExpression
	Descending  bool
	NullsFirst  bool
}

// Sort orders its input by Fields. Limit is carried for shape parity with
// the original plan node but bind_select never populates it — LIMIT/OFFSET
// are applied by a separate outer Limit operator (spec §4.3 step 3 / step
// 11).
type Sort struct {
	base
	Fields []SortField
	Limit  *int
}

func (Sort) isOperator() {}

func (s Sort) ReferencedColumns() []expression.ColumnRefExpr {
	var out []expression.ColumnRefExpr
	for _, f := range s.Fields {
		out = append(out, expression.ReferencedColumns(f.Expr)...)
	}
	return out
}
