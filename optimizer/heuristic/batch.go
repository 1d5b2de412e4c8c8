package heuristic

import "github.com/kipsql-go/kipsql/optimizer/core"

// StrategyKind selects how a Batch reapplies its rules.
type StrategyKind int

const (
	// OnceTopDown runs a single top-down pass over the graph.
	OnceTopDown StrategyKind = iota
	// FixPointTopDown reapplies top-down passes until one produces no
	// change, or MaxIterations is reached.
	FixPointTopDown
)

// Strategy configures a Batch's reapplication policy.
type Strategy struct {
	Kind          StrategyKind
	MaxIterations int // only meaningful for FixPointTopDown
}

// OnceTopDownStrategy is the single-pass strategy.
func OnceTopDownStrategy() Strategy { return Strategy{Kind: OnceTopDown} }

// FixPointTopDownStrategy reapplies until quiescent or maxIter passes.
func FixPointTopDownStrategy(maxIter int) Strategy {
	return Strategy{Kind: FixPointTopDown, MaxIterations: maxIter}
}

// Batch is a named group of rules applied together under one Strategy.
type Batch struct {
	Name     string
	Strategy Strategy
	Rules    []core.Rule
}
