package operator

import "github.com/kipsql-go/kipsql/expression"

// Project is the final select-list projection; always the outermost node
// of a bound SELECT's own plan (spec §4.3 step 12).
type Project struct {
	Columns []expression.ScalarExpression
}

func (Project) isOperator() {}

// ReferencedColumns flattens the referenced columns of every projected
// expression.
func (p Project) ReferencedColumns() []expression.ColumnRefExpr {
	var out []expression.ColumnRefExpr
	for _, c := range p.Columns {
		out = append(out, expression.ReferencedColumns(c)...)
	}
	return out
}

// ProjectInputRefs returns the InputRefs appearing at the top level of the
// project's columns, unwrapping at most one alias layer — the shape the
// aggregate-extraction rewrite leaves behind (an InputRef, or an Alias
// wrapping one).
func (p Project) ProjectInputRefs() []expression.InputRef {
	var out []expression.InputRef
	for _, c := range p.Columns {
		if ref, ok := expression.UnpackAlias(c).(expression.InputRef); ok {
			out = append(out, ref)
		}
	}
	return out
}

func (Project) AggMappingColRefs([]expression.InputRef) []expression.ColumnRefExpr {
	return nil
}
