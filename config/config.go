// Package config loads the optimizer's batch configuration from TOML,
// grounded on the teacher's go-toml-based config surface (the teacher
// depends on pelletier/go-toml but never wires it to a concrete struct;
// this package gives it one) and on catalog/memcatalog's fixture-loading
// idiom.
package config

import (
	"github.com/pelletier/go-toml"

	"github.com/kipsql-go/kipsql/optimizer/heuristic"
)

// batchFixture mirrors one [[batch]] table in a planner config document,
// e.g.:
//
//	[[batch]]
//	name = "column_pruning"
//	strategy = "fixpoint"
//	max_iterations = 10
type batchFixture struct {
	Name          string `toml:"name"`
	Strategy      string `toml:"strategy"`
	MaxIterations int    `toml:"max_iterations"`
}

// PlannerConfig carries the optimizer's batch list, decoupling "how many
// times does column pruning retry" from compiled-in constants.
type PlannerConfig struct {
	Batches []BatchConfig
}

// BatchConfig is one named batch's reapplication policy, independent of
// which rules it carries (rule wiring stays in Go — only cardinality and
// iteration policy come from the document).
type BatchConfig struct {
	Name     string
	Strategy heuristic.Strategy
}

// DefaultPlannerConfig is the config column-pruning runs under when no
// document is supplied: a single fixpoint batch capped at 10 iterations,
// matching the cap used throughout the optimizer's own tests.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		Batches: []BatchConfig{
			{Name: "column_pruning", Strategy: heuristic.FixPointTopDownStrategy(10)},
		},
	}
}

// Load parses a planner config document. A batch whose strategy is not
// "fixpoint" (including an omitted one) runs OnceTopDown; a fixpoint batch
// without a positive max_iterations is capped at 10. A document with no
// batches yields DefaultPlannerConfig.
func Load(doc []byte) (PlannerConfig, error) {
	var parsed struct {
		Batch []batchFixture `toml:"batch"`
	}
	if err := toml.Unmarshal(doc, &parsed); err != nil {
		return PlannerConfig{}, err
	}

	cfg := PlannerConfig{}
	for _, bf := range parsed.Batch {
		strategy := heuristic.OnceTopDownStrategy()
		if bf.Strategy == "fixpoint" {
			maxIter := bf.MaxIterations
			if maxIter <= 0 {
				maxIter = 10
			}
			strategy = heuristic.FixPointTopDownStrategy(maxIter)
		}
		cfg.Batches = append(cfg.Batches, BatchConfig{Name: bf.Name, Strategy: strategy})
	}
	if len(cfg.Batches) == 0 {
		return DefaultPlannerConfig(), nil
	}
	return cfg, nil
}
