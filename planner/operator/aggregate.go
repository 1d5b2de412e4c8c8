package operator

import "github.com/kipsql-go/kipsql/expression"

// Aggregate wraps the agg_calls collected during select/having/order-by
// extraction plus the group_by_exprs collected during GROUP BY rewriting
// (spec §4.3 step 8). AggCalls is indexed by the binder's AggCall input-ref
// counter, GroupByExprs by its GroupBy counter — InputRef.Index/Kind pairs
// produced during binding address directly into these slices.
type Aggregate struct {
	AggCalls     []expression.AggCall
	GroupByExprs []expression.ScalarExpression
}

func (Aggregate) isOperator() {}

func (a Aggregate) ReferencedColumns() []expression.ColumnRefExpr {
	var out []expression.ColumnRefExpr
	for _, c := range a.AggCalls {
		for _, arg := range c.Args {
			out = append(out, expression.ReferencedColumns(arg)...)
		}
	}
	for _, g := range a.GroupByExprs {
		out = append(out, expression.ReferencedColumns(g)...)
	}
	return dedupByID(out)
}

func (Aggregate) ProjectInputRefs() []expression.InputRef { return nil }

// AggMappingColRefs resolves each InputRef back to the columns referenced
// by the AggCall or group-by expression it replaced, used by
// PushProjectThroughChild to carry column references across an
// aggregation boundary.
func (a Aggregate) AggMappingColRefs(inputRefs []expression.InputRef) []expression.ColumnRefExpr {
	var out []expression.ColumnRefExpr
	for _, ref := range inputRefs {
		switch ref.Kind {
		case expression.InputRefAggCall:
			if ref.Index >= 0 && ref.Index < len(a.AggCalls) {
				for _, arg := range a.AggCalls[ref.Index].Args {
					out = append(out, expression.ReferencedColumns(arg)...)
				}
			}
		case expression.InputRefGroupBy:
			if ref.Index >= 0 && ref.Index < len(a.GroupByExprs) {
				out = append(out, expression.ReferencedColumns(a.GroupByExprs[ref.Index])...)
			}
		}
	}
	return dedupByID(out)
}
