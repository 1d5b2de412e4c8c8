package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipsql-go/kipsql/config"
	"github.com/kipsql-go/kipsql/optimizer/heuristic"
)

func TestLoadParsesFixpointBatch(t *testing.T) {
	doc := []byte(`
[[batch]]
name = "column_pruning"
strategy = "fixpoint"
max_iterations = 5
`)
	cfg, err := config.Load(doc)
	require.NoError(t, err)
	require.Len(t, cfg.Batches, 1)
	assert.Equal(t, "column_pruning", cfg.Batches[0].Name)
	assert.Equal(t, heuristic.FixPointTopDown, cfg.Batches[0].Strategy.Kind)
	assert.Equal(t, 5, cfg.Batches[0].Strategy.MaxIterations)
}

func TestLoadEmptyDocumentFallsBackToDefault(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPlannerConfig(), cfg)
}

func TestLoadDefaultsMissingMaxIterations(t *testing.T) {
	doc := []byte(`
[[batch]]
name = "column_pruning"
strategy = "fixpoint"
`)
	cfg, err := config.Load(doc)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Batches[0].Strategy.MaxIterations)
}
