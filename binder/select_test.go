package binder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipsql-go/kipsql/ast"
	"github.com/kipsql-go/kipsql/binder"
	"github.com/kipsql-go/kipsql/catalog/memcatalog"
	"github.com/kipsql-go/kipsql/expression"
	"github.com/kipsql-go/kipsql/planner/operator"
)

const fixture = `
[[table]]
name = "t1"
  [[table.column]]
  name = "c1"
  type = "integer"
  primary = true
  [[table.column]]
  name = "c2"
  type = "integer"

[[table]]
name = "t2"
  [[table.column]]
  name = "c3"
  type = "integer"
  primary = true
  [[table.column]]
  name = "c4"
  type = "integer"
`

func newStorage(t *testing.T) *memcatalog.Catalog {
	t.Helper()
	cat := memcatalog.New()
	require.NoError(t, cat.LoadTOML([]byte(fixture)))
	return cat
}

func ident(name string) ast.Expr { return ast.Identifier{Name: name} }

func selectStar() *ast.Query {
	return &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{ast.Wildcard{}},
			From: []ast.TableWithJoins{
				{Relation: ast.TableFactor{Name: ast.ObjectName{"t1"}}},
			},
		},
	}
}

func TestBindSelectStarProjectsAllColumns(t *testing.T) {
	b := binder.New(newStorage(t))
	plan, err := b.BindQuery(context.Background(), selectStar())
	require.NoError(t, err)

	proj, ok := plan.Operator.(operator.Project)
	require.True(t, ok)
	assert.Len(t, proj.Columns, 2)

	scan, ok := plan.Child(0).Operator.(operator.Scan)
	require.True(t, ok)
	assert.Equal(t, "t1", scan.Table)
	assert.Len(t, scan.Columns, 2)
}

func TestBindAggregateRewritesAggCallToInputRef(t *testing.T) {
	b := binder.New(newStorage(t))
	q := &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{
				ast.UnnamedExpr{Expr: ast.Function{Name: "avg", Args: []ast.Expr{ident("c1")}}},
			},
			From: []ast.TableWithJoins{
				{Relation: ast.TableFactor{Name: ast.ObjectName{"t1"}}},
			},
		},
	}

	plan, err := b.BindQuery(context.Background(), q)
	require.NoError(t, err)

	proj, ok := plan.Operator.(operator.Project)
	require.True(t, ok)
	require.Len(t, proj.Columns, 1)
	ref, ok := proj.Columns[0].(expression.InputRef)
	require.True(t, ok)
	assert.Equal(t, expression.InputRefAggCall, ref.Kind)
	assert.Equal(t, 0, ref.Index)

	agg, ok := plan.Child(0).Operator.(operator.Aggregate)
	require.True(t, ok)
	require.Len(t, agg.AggCalls, 1)
	assert.Equal(t, expression.Avg, agg.AggCalls[0].Kind)
}

func TestBindGroupByRejectsUngroupedColumn(t *testing.T) {
	b := binder.New(newStorage(t))
	q := &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{
				ast.UnnamedExpr{Expr: ident("c1")},
				ast.UnnamedExpr{Expr: ident("c2")},
			},
			From: []ast.TableWithJoins{
				{Relation: ast.TableFactor{Name: ast.ObjectName{"t1"}}},
			},
			GroupBy: []ast.Expr{ident("c1")},
		},
	}

	_, err := b.BindQuery(context.Background(), q)
	require.Error(t, err)
}

func TestBindJoinOrientsKeysLeftToRight(t *testing.T) {
	b := binder.New(newStorage(t))
	q := &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{
				ast.UnnamedExpr{Expr: ident("c1")},
				ast.UnnamedExpr{Expr: ident("c3")},
			},
			From: []ast.TableWithJoins{
				{
					Relation: ast.TableFactor{Name: ast.ObjectName{"t1"}},
					Joins: []ast.Join{
						{
							Relation: ast.TableFactor{Name: ast.ObjectName{"t2"}},
							Operator: ast.JoinOperator{
								Kind: ast.LeftOuter,
								Constraint: ast.BinaryOp{
									Left:  ast.CompoundIdentifier{Parts: []string{"t2", "c3"}},
									Op:    "=",
									Right: ast.CompoundIdentifier{Parts: []string{"t1", "c1"}},
								},
							},
						},
					},
				},
			},
		},
	}

	plan, err := b.BindQuery(context.Background(), q)
	require.NoError(t, err)

	join, ok := plan.Child(0).Operator.(operator.Join)
	require.True(t, ok)
	require.Len(t, join.Condition.On, 1)
	assert.Equal(t, "c1", join.Condition.On[0].Left.Column.Name)
	assert.Equal(t, "c3", join.Condition.On[0].Right.Column.Name)
	assert.Equal(t, operator.LeftOuter, join.Type)
}

func TestBindLeftOuterJoinForcesRightSideNullable(t *testing.T) {
	b := binder.New(newStorage(t))
	q := &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{
				ast.UnnamedExpr{Expr: ident("c1")},
				ast.UnnamedExpr{Expr: ident("c3")},
			},
			From: []ast.TableWithJoins{
				{
					Relation: ast.TableFactor{Name: ast.ObjectName{"t1"}},
					Joins: []ast.Join{
						{
							Relation: ast.TableFactor{Name: ast.ObjectName{"t2"}},
							Operator: ast.JoinOperator{
								Kind: ast.LeftOuter,
								Constraint: ast.BinaryOp{
									Left:  ast.CompoundIdentifier{Parts: []string{"t2", "c3"}},
									Op:    "=",
									Right: ast.CompoundIdentifier{Parts: []string{"t1", "c1"}},
								},
							},
						},
					},
				},
			},
		},
	}

	plan, err := b.BindQuery(context.Background(), q)
	require.NoError(t, err)

	proj, ok := plan.Operator.(operator.Project)
	require.True(t, ok)
	require.Len(t, proj.Columns, 2)

	left, ok := proj.Columns[0].(expression.ColumnRefExpr)
	require.True(t, ok)
	assert.False(t, left.Column.Nullable, "left (root) side of a LEFT OUTER JOIN must not be forced nullable")

	right, ok := proj.Columns[1].(expression.ColumnRefExpr)
	require.True(t, ok)
	assert.True(t, right.Column.Nullable, "right side of a LEFT OUTER JOIN must be forced nullable")
}

func TestBindRightOuterJoinForcesLeftSideNullable(t *testing.T) {
	b := binder.New(newStorage(t))
	q := &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{
				ast.UnnamedExpr{Expr: ident("c1")},
				ast.UnnamedExpr{Expr: ident("c3")},
			},
			From: []ast.TableWithJoins{
				{
					Relation: ast.TableFactor{Name: ast.ObjectName{"t1"}},
					Joins: []ast.Join{
						{
							Relation: ast.TableFactor{Name: ast.ObjectName{"t2"}},
							Operator: ast.JoinOperator{
								Kind: ast.RightOuter,
								Constraint: ast.BinaryOp{
									Left:  ast.CompoundIdentifier{Parts: []string{"t2", "c3"}},
									Op:    "=",
									Right: ast.CompoundIdentifier{Parts: []string{"t1", "c1"}},
								},
							},
						},
					},
				},
			},
		},
	}

	plan, err := b.BindQuery(context.Background(), q)
	require.NoError(t, err)

	proj, ok := plan.Operator.(operator.Project)
	require.True(t, ok)
	require.Len(t, proj.Columns, 2)

	left, ok := proj.Columns[0].(expression.ColumnRefExpr)
	require.True(t, ok)
	assert.True(t, left.Column.Nullable, "left (root) side of a RIGHT OUTER JOIN must be forced nullable")

	right, ok := proj.Columns[1].(expression.ColumnRefExpr)
	require.True(t, ok)
	assert.False(t, right.Column.Nullable, "right side of a RIGHT OUTER JOIN must not be forced nullable")
}

func TestBindLimitOffsetWrapsOutermostNode(t *testing.T) {
	b := binder.New(newStorage(t))
	q := selectStar()
	q.Limit = ast.Value{Kind: ast.NumberValue, Raw: "1"}
	q.Offset = ast.Value{Kind: ast.NumberValue, Raw: "2"}

	plan, err := b.BindQuery(context.Background(), q)
	require.NoError(t, err)

	limit, ok := plan.Operator.(operator.Limit)
	require.True(t, ok)
	require.NotNil(t, limit.Limit)
	require.NotNil(t, limit.Offset)
	assert.Equal(t, int64(1), *limit.Limit)
	assert.Equal(t, int64(2), *limit.Offset)

	_, ok = plan.Child(0).Operator.(operator.Project)
	assert.True(t, ok)
}
