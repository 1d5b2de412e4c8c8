// Package operator defines the logical plan operator variants the binder
// produces and the optimizer rewrites, grounded on the teacher's
// server/innodb/plan.Operator/LogicalPlan gallery (logical_plan.go,
// plans.go) but generalized to the variant set and helper methods the
// spec's column-pruning rules depend on.
package operator

import "github.com/kipsql-go/kipsql/expression"

// Operator is the tagged union of logical plan node kinds. Every variant
// implements the three helper methods the optimizer's column-pruning
// family needs; most variants use the zero-value defaults embedded via
// base.
type Operator interface {
	isOperator()

	// ReferencedColumns returns the columns referenced by this operator's
	// own expressions, not its children's.
	ReferencedColumns() []expression.ColumnRefExpr

	// ProjectInputRefs returns the InputRef expressions that appear at the
	// top level of a Project's columns (meaningful only for Project; nil
	// otherwise).
	ProjectInputRefs() []expression.InputRef

	// AggMappingColRefs maps InputRef indices back to the concrete
	// ColumnRefExprs they represent, when this operator is an Aggregate
	// (nil otherwise).
	AggMappingColRefs(inputRefs []expression.InputRef) []expression.ColumnRefExpr
}

// base supplies the no-op defaults most operator variants inherit.
type base struct{}

func (base) ProjectInputRefs() []expression.InputRef { return nil }
func (base) AggMappingColRefs([]expression.InputRef) []expression.ColumnRefExpr {
	return nil
}

// Dummy is the empty placeholder plan node (the binder's input for a SELECT
// with no FROM clause).
type Dummy struct{ base }

func (Dummy) isOperator()                               {}
func (Dummy) ReferencedColumns() []expression.ColumnRefExpr { return nil }

func dedupByID(cols []expression.ColumnRefExpr) []expression.ColumnRefExpr {
	seen := make(map[uint64]bool, len(cols))
	out := make([]expression.ColumnRefExpr, 0, len(cols))
	for _, c := range cols {
		id := uint64(c.Column.Id)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, c)
	}
	return out
}
