// Package core defines the pattern matcher and rule contract the heuristic
// optimizer drives, grounded on the original project's
// optimizer/core/pattern.rs (Pattern/PatternChildrenPredicate) and
// optimizer/core/rule.rs (the Rule trait), reproduced in the teacher's
// interface-and-type-switch idiom.
package core

import "github.com/kipsql-go/kipsql/planner/operator"

// ChildrenKind tags which shape a Pattern's children predicate takes.
type ChildrenKind int

const (
	// Recursive matches any subtree beneath this node without constraint.
	Recursive ChildrenKind = iota
	// PredicateChildren requires the node to have exactly len(Patterns)
	// children, each matching the corresponding Pattern in order; a single
	// Pattern instead must match every child of a node with at least one.
	PredicateChildren
	// NoChildren treats the subtree as opaque: the node must have no
	// children at all.
	NoChildren
)

// PatternChildrenPredicate is the children half of a Pattern.
type PatternChildrenPredicate struct {
	Kind     ChildrenKind
	Patterns []Pattern // only meaningful when Kind == PredicateChildren
}

// Pattern is a recursive structural template over operator trees.
type Pattern struct {
	// Predicate tests the root node, ignoring its children.
	Predicate func(operator.Operator) bool
	Children  PatternChildrenPredicate
}

// GraphView is the read-only slice of HepGraph the pattern matcher needs;
// kept as an interface here (rather than importing the heuristic package
// directly) to avoid a core <-> heuristic import cycle, since Rule lives in
// core but is driven by heuristic.HepGraph.
type GraphView interface {
	Operator(id int) operator.Operator
	ChildrenAt(id int) []int
}

// Matches reports whether the subtree rooted at nodeID in g satisfies p.
func Matches(p Pattern, g GraphView, nodeID int) bool {
	if !p.Predicate(g.Operator(nodeID)) {
		return false
	}
	children := g.ChildrenAt(nodeID)
	switch p.Children.Kind {
	case Recursive:
		return true
	case NoChildren:
		return len(children) == 0
	case PredicateChildren:
		patterns := p.Children.Patterns
		// A single pattern broadcasts over every actual child (the shape
		// both a single-child Filter/Sort and a two-child Join need to
		// satisfy the same "none of my children are X" constraint);
		// otherwise children must match positionally, one pattern each.
		if len(patterns) == 1 {
			if len(children) == 0 {
				return false
			}
			for _, childID := range children {
				if !Matches(patterns[0], g, childID) {
					return false
				}
			}
			return true
		}
		if len(children) != len(patterns) {
			return false
		}
		for i, childPattern := range patterns {
			if !Matches(childPattern, g, children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
