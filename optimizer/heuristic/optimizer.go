package heuristic

import (
	"github.com/kipsql-go/kipsql/logger"
	"github.com/kipsql-go/kipsql/optimizer/core"
	"github.com/kipsql-go/kipsql/planner"
)

// HepOptimizer runs a sequence of Batches over a HepGraph built from one
// bound plan, grounded on the original project's HepOptimizer::find_best
// (referenced from column_pruning.rs's tests) and reimplemented here since
// the optimizer/heuristic source files were not part of the retrieval
// pack.
type HepOptimizer struct {
	graph   *HepGraph
	batches []Batch
}

// NewHepOptimizer builds an optimizer over plan's graph.
func NewHepOptimizer(plan *planner.LogicalPlan) *HepOptimizer {
	return &HepOptimizer{graph: NewHepGraph(plan)}
}

// Batch registers a rule batch to run, in registration order, returning o
// for chaining.
func (o *HepOptimizer) Batch(b Batch) *HepOptimizer {
	o.batches = append(o.batches, b)
	return o
}

// FindBest runs every registered batch over the graph and returns the
// resulting plan. Termination is guaranteed: OnceTopDown runs exactly one
// pass, FixPointTopDown stops as soon as a pass makes no change or its
// iteration cap is reached.
func (o *HepOptimizer) FindBest() *planner.LogicalPlan {
	for _, batch := range o.batches {
		fired := 0
		switch batch.Strategy.Kind {
		case OnceTopDown:
			if o.applyOnce(batch) {
				fired++
			}
		case FixPointTopDown:
			max := batch.Strategy.MaxIterations
			for i := 0; i < max; i++ {
				if !o.applyOnce(batch) {
					break
				}
				fired++
			}
		}
		logger.Infof("batch %q ran %d pass(es) with at least one rule firing", batch.Name, fired)
	}
	return o.graph.Plan()
}

func (o *HepOptimizer) applyOnce(batch Batch) bool {
	changed := false
	visited := make(map[int]bool)
	var visit func(id int)
	visit = func(id int) {
		if visited[id] {
			return
		}
		visited[id] = true
		if _, ok := o.graph.nodes[id]; !ok {
			return
		}
		for _, rule := range batch.Rules {
			if core.Matches(*rule.Pattern(), o.graph, id) {
				logger.Debugf("batch %q: rule %T fired on node %d", batch.Name, rule, id)
				rule.Apply(id, o.graph)
				changed = true
				break
			}
		}
		for _, c := range o.graph.ChildrenAt(id) {
			visit(c)
		}
	}
	visit(o.graph.Root())
	return changed
}
