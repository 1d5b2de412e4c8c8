// Package rule implements the column-pruning rule family, grounded on the
// original project's optimizer/rule/column_pruning.rs (PushProjectIntoScan,
// PushProjectThroughChild and their test scenarios).
package rule

import (
	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/expression"
	"github.com/kipsql-go/kipsql/optimizer/core"
	"github.com/kipsql-go/kipsql/optimizer/heuristic"
	"github.com/kipsql-go/kipsql/planner/operator"
)

func isScan(op operator.Operator) bool {
	_, ok := op.(operator.Scan)
	return ok
}

func isProject(op operator.Operator) bool {
	_, ok := op.(operator.Project)
	return ok
}

// PushProjectIntoScan collapses a Project whose single child is a Scan: the
// scan's column list is narrowed to the project's ColumnRef columns (one
// alias layer unwrapped) and the project node is removed.
type PushProjectIntoScan struct{}

var pushProjectIntoScanPattern = core.Pattern{
	Predicate: isProject,
	Children: core.PatternChildrenPredicate{
		Kind: core.PredicateChildren,
		Patterns: []core.Pattern{
			{Predicate: isScan, Children: core.PatternChildrenPredicate{Kind: core.NoChildren}},
		},
	},
}

func (PushProjectIntoScan) Pattern() *core.Pattern { return &pushProjectIntoScanPattern }

func (PushProjectIntoScan) Apply(nodeID int, graph core.Graph) {
	project, ok := graph.Operator(nodeID).(operator.Project)
	if !ok {
		return
	}
	childIndex := graph.ChildrenAt(nodeID)[0]
	scan, ok := graph.Operator(childIndex).(operator.Scan)
	if !ok {
		return
	}

	var cols []catalog.ColumnRef
	for _, expr := range project.Columns {
		if ref, ok := expression.UnpackAlias(expr).(expression.ColumnRefExpr); ok {
			cols = append(cols, ref.Column)
		}
	}
	newScan := scan.WithColumns(cols)

	graph.RemoveNode(nodeID, true)
	graph.ReplaceNode(childIndex, newScan)
}

// PushProjectThroughChild pushes a Project down past an intervening
// non-Scan/non-Project node (a Filter, Sort, Join or Aggregate) so it can
// continue pruning toward the scans beneath it.
type PushProjectThroughChild struct{}

var pushProjectThroughChildPattern = core.Pattern{
	Predicate: isProject,
	Children: core.PatternChildrenPredicate{
		Kind: core.PredicateChildren,
		Patterns: []core.Pattern{
			{
				Predicate: func(op operator.Operator) bool { return !isScan(op) && !isProject(op) },
				Children: core.PatternChildrenPredicate{
					Kind: core.PredicateChildren,
					Patterns: []core.Pattern{
						{Predicate: func(op operator.Operator) bool { return !isProject(op) }, Children: core.PatternChildrenPredicate{Kind: core.Recursive}},
					},
				},
			},
		},
	},
}

func (PushProjectThroughChild) Pattern() *core.Pattern { return &pushProjectThroughChildPattern }

func (PushProjectThroughChild) Apply(nodeID int, graph core.Graph) {
	nodeOperator := graph.Operator(nodeID)
	project, ok := nodeOperator.(operator.Project)
	if !ok {
		return
	}
	inputRefs := project.ProjectInputRefs()

	childIndex := graph.ChildrenAt(nodeID)[0]
	childOperator := graph.Operator(childIndex)
	nodeReferencedColumns := nodeOperator.ReferencedColumns()
	childReferencedColumns := childOperator.ReferencedColumns()

	aggregate, isChildAgg := childOperator.(operator.Aggregate)
	if isChildAgg && len(inputRefs) > 0 {
		nodeReferencedColumns = append(nodeReferencedColumns, aggregate.AggMappingColRefs(inputRefs)...)
	}

	intersection := make(map[uint64]bool)
	for _, c := range childReferencedColumns {
		intersection[uint64(c.Column.Id)] = true
	}
	for _, c := range nodeReferencedColumns {
		intersection[uint64(c.Column.Id)] = true
	}
	if len(intersection) == 0 {
		return
	}

	for _, grandsonID := range graph.ChildrenAt(childIndex) {
		seen := make(map[uint64]bool)
		var columns []expression.ScalarExpression
		for _, col := range graph.Operator(grandsonID).ReferencedColumns() {
			id := uint64(col.Column.Id)
			if seen[id] || !intersection[id] {
				continue
			}
			seen[id] = true
			columns = append(columns, col)
		}

		if !isChildAgg && len(inputRefs) > 0 {
			// Aggregation InputRefs take precedence and must appear first.
			prefixed := make([]expression.ScalarExpression, 0, len(inputRefs)+len(columns))
			for _, ref := range inputRefs {
				prefixed = append(prefixed, ref)
			}
			columns = append(prefixed, columns...)
		}

		if len(columns) > 0 {
			grandsonID := grandsonID
			graph.AddNode(childIndex, &grandsonID, operator.Project{Columns: columns})
		}
	}
}

// DefaultBatch is the column-pruning rule family registered under the
// batch name every PlannerConfig fixture refers to as "column_pruning".
func DefaultBatch(strategy heuristic.Strategy) heuristic.Batch {
	return heuristic.Batch{
		Name:     "column_pruning",
		Strategy: strategy,
		Rules: []core.Rule{
			PushProjectIntoScan{},
			PushProjectThroughChild{},
		},
	}
}
