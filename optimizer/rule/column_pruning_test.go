package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/expression"
	"github.com/kipsql-go/kipsql/optimizer/core"
	"github.com/kipsql-go/kipsql/optimizer/heuristic"
	"github.com/kipsql-go/kipsql/optimizer/rule"
	"github.com/kipsql-go/kipsql/planner"
	"github.com/kipsql-go/kipsql/planner/operator"
	"github.com/kipsql-go/kipsql/types"
)

func col(name string, ty types.LogicalType) catalog.ColumnRef {
	return catalog.NewColumn(name, true, catalog.ColumnDesc{Datatype: ty})
}

// TestProjectIntoTableScan mirrors the original project's
// test_project_into_table_scan: `select * from t1` collapses to a bare
// Scan exposing both of t1's columns.
func TestProjectIntoTableScan(t *testing.T) {
	c1 := col("c1", types.Integer)
	c2 := col("c2", types.Integer)
	scan := planner.New(operator.Scan{Table: "t1", Columns: []catalog.ColumnRef{c1, c2}})
	project := planner.New(operator.Project{
		Columns: []expression.ScalarExpression{
			expression.ColumnRefExpr{Column: c1},
			expression.ColumnRefExpr{Column: c2},
		},
	}, scan)

	best := heuristic.NewHepOptimizer(project).
		Batch(heuristic.Batch{
			Name:     "test_project_into_table_scan",
			Strategy: heuristic.OnceTopDownStrategy(),
			Rules:    []core.Rule{rule.PushProjectIntoScan{}},
		}).FindBest()

	assert.Empty(t, best.Children)
	s, ok := best.Operator.(operator.Scan)
	assert.True(t, ok, "expected root to collapse into a Scan operator")
	assert.Len(t, s.Columns, 2)
}

// TestProjectThroughChildOnJoin mirrors test_project_through_child_on_join:
// `select c1, c3 from t1 left join t2 on c1 = c3` prunes both scans down to
// exactly the one column each side actually needs.
func TestProjectThroughChildOnJoin(t *testing.T) {
	t1c1 := col("c1", types.Integer)
	t1c2 := col("c2", types.Integer)
	t2c3 := col("c3", types.Integer)
	t2c4 := col("c4", types.Integer)

	leftScan := planner.New(operator.Scan{Table: "t1", Columns: []catalog.ColumnRef{t1c1, t1c2}})
	rightScan := planner.New(operator.Scan{Table: "t2", Columns: []catalog.ColumnRef{t2c3, t2c4}})
	join := planner.New(operator.Join{
		Type: operator.LeftOuter,
		Condition: operator.JoinCondition{
			HasOn: true,
			On: []operator.JoinKeyPair{{
				Left:  expression.ColumnRefExpr{Column: t1c1},
				Right: expression.ColumnRefExpr{Column: t2c3},
			}},
		},
	}, leftScan, rightScan)
	project := planner.New(operator.Project{
		Columns: []expression.ScalarExpression{
			expression.ColumnRefExpr{Column: t1c1},
			expression.ColumnRefExpr{Column: t2c3},
		},
	}, join)

	best := heuristic.NewHepOptimizer(project).
		Batch(heuristic.Batch{
			Name:     "test_project_through_child_on_join",
			Strategy: heuristic.FixPointTopDownStrategy(10),
			Rules:    []core.Rule{rule.PushProjectThroughChild{}, rule.PushProjectIntoScan{}},
		}).FindBest()

	proj, ok := best.Operator.(operator.Project)
	assert.True(t, ok, "expected root to remain a Project operator")
	assert.Len(t, proj.Columns, 2)
	assert.Len(t, best.Children, 1)

	joinNode := best.Children[0]
	j, ok := joinNode.Operator.(operator.Join)
	assert.True(t, ok, "expected join operator beneath root project")
	assert.Len(t, j.Condition.On, 1)
	assert.Nil(t, j.Condition.Filter)

	assert.Len(t, joinNode.Children, 2)
	for _, grandson := range joinNode.Children {
		s, ok := grandson.Operator.(operator.Scan)
		assert.True(t, ok, "expected scan beneath join")
		assert.Len(t, s.Columns, 1)
	}
}
