// Package heuristic implements the mutable plan graph and rule-batch
// driver the optimizer runs rules over, grounded on the original project's
// optimizer/heuristic/{graph,batch,optimizer}.rs (referenced from
// column_pruning.rs's test module) but reimplemented from spec.md's
// literal description, since those source files weren't part of the
// retrieval pack.
package heuristic

import (
	"github.com/kipsql-go/kipsql/planner"
	"github.com/kipsql-go/kipsql/planner/operator"
)

const noParent = -1

type node struct {
	operator operator.Operator
	children []int
	parent   int
}

// HepGraph is a directed graph of plan nodes supporting the mutation
// primitives rules need: inserting a project between a node and one of its
// children, removing a node (optionally preserving its subtree), and
// swapping a node's operator in place.
type HepGraph struct {
	nodes  map[int]*node
	root   int
	nextID int
}

// NewHepGraph builds a graph from a bound (or previously optimized)
// LogicalPlan tree.
func NewHepGraph(plan *planner.LogicalPlan) *HepGraph {
	g := &HepGraph{nodes: make(map[int]*node)}
	g.root = g.insertSubtree(plan, noParent)
	return g
}

func (g *HepGraph) insertSubtree(plan *planner.LogicalPlan, parent int) int {
	id := g.nextID
	g.nextID++
	n := &node{operator: plan.Operator, parent: parent}
	g.nodes[id] = n
	for _, child := range plan.Children {
		childID := g.insertSubtree(child, id)
		n.children = append(n.children, childID)
	}
	return id
}

// Root returns the id of the graph's current root node.
func (g *HepGraph) Root() int { return g.root }

// Operator returns the operator stored at id.
func (g *HepGraph) Operator(id int) operator.Operator {
	return g.nodes[id].operator
}

// ChildrenAt returns id's children in deterministic (insertion) order, or
// nil if id no longer exists (a rule may have just removed it).
func (g *HepGraph) ChildrenAt(id int) []int {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]int, len(n.children))
	copy(out, n.children)
	return out
}

// ReplaceNode swaps the operator stored at id, leaving its position and
// children untouched.
func (g *HepGraph) ReplaceNode(id int, op operator.Operator) {
	g.nodes[id].operator = op
}

// AddNode inserts a new node carrying op between parent and one of
// parent's existing children (beforeChild); if beforeChild is nil the new
// node is appended as a fresh, childless entry under parent. Returns the
// new node's id.
func (g *HepGraph) AddNode(parent int, beforeChild *int, op operator.Operator) int {
	id := g.nextID
	g.nextID++
	n := &node{operator: op, parent: parent}
	if beforeChild != nil {
		n.children = []int{*beforeChild}
		g.nodes[*beforeChild].parent = id
	}
	g.nodes[id] = n

	parentNode := g.nodes[parent]
	for i, c := range parentNode.children {
		if beforeChild != nil && c == *beforeChild {
			parentNode.children[i] = id
			return id
		}
	}
	parentNode.children = append(parentNode.children, id)
	return id
}

// RemoveNode detaches id from the graph. If preserveSubtree is true, id
// must have at most one child; that child (if any) is rewired directly
// into id's former position (id's parent, or the graph root if id was the
// root). If preserveSubtree is false, id and its entire subtree are
// dropped: id is simply removed from its parent's children list.
func (g *HepGraph) RemoveNode(id int, preserveSubtree bool) {
	n := g.nodes[id]
	parent := n.parent

	var replacement = noParent
	if preserveSubtree && len(n.children) > 0 {
		replacement = n.children[0]
	}

	if parent == noParent {
		if replacement != noParent {
			g.nodes[replacement].parent = noParent
			g.root = replacement
		}
	} else {
		parentNode := g.nodes[parent]
		for i, c := range parentNode.children {
			if c == id {
				if replacement != noParent {
					parentNode.children[i] = replacement
					g.nodes[replacement].parent = parent
				} else {
					parentNode.children = append(parentNode.children[:i], parentNode.children[i+1:]...)
				}
				break
			}
		}
	}
	delete(g.nodes, id)
}

// Plan materializes the graph back into a LogicalPlan tree rooted at
// g.Root(), for consumption by execution or further optimization passes.
func (g *HepGraph) Plan() *planner.LogicalPlan {
	return g.subtree(g.root)
}

func (g *HepGraph) subtree(id int) *planner.LogicalPlan {
	n := g.nodes[id]
	children := make([]*planner.LogicalPlan, len(n.children))
	for i, c := range n.children {
		children[i] = g.subtree(c)
	}
	return &planner.LogicalPlan{Operator: n.operator, Children: children}
}
