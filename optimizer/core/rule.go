package core

import "github.com/kipsql-go/kipsql/planner/operator"

// Rule is a local plan rewrite triggered by a Pattern match, grounded on
// the original project's optimizer/core/rule.rs Rule trait.
type Rule interface {
	Pattern() *Pattern
	Apply(nodeID int, graph Graph)
}

// Graph is the mutation surface a Rule's Apply needs. heuristic.HepGraph
// implements it; defined here (rather than imported from heuristic) to
// avoid a core <-> heuristic import cycle, since Rule lives in core but is
// driven by heuristic.HepGraph.
type Graph interface {
	GraphView
	AddNode(parent int, beforeChild *int, op operator.Operator) int
	RemoveNode(id int, preserveSubtree bool)
	ReplaceNode(id int, op operator.Operator)
}
