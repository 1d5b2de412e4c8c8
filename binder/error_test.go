package binder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipsql-go/kipsql/ast"
	"github.com/kipsql-go/kipsql/binder"
)

func TestBindQueryRejectsWithClause(t *testing.T) {
	b := binder.New(newStorage(t))
	q := selectStar()
	q.With = &ast.WithClause{}

	_, err := b.BindQuery(context.Background(), q)
	require.Error(t, err)
}

func TestBindQueryRejectsUnknownTable(t *testing.T) {
	b := binder.New(newStorage(t))
	q := &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{ast.Wildcard{}},
			From: []ast.TableWithJoins{
				{Relation: ast.TableFactor{Name: ast.ObjectName{"missing"}}},
			},
		},
	}

	_, err := b.BindQuery(context.Background(), q)
	require.Error(t, err)
}

func TestBindQueryRejectsDuplicateTableBinding(t *testing.T) {
	b := binder.New(newStorage(t))
	q := &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{ast.Wildcard{}},
			From: []ast.TableWithJoins{
				{
					Relation: ast.TableFactor{Name: ast.ObjectName{"t1"}},
					Joins: []ast.Join{
						{
							Relation: ast.TableFactor{Name: ast.ObjectName{"t1"}},
							Operator: ast.JoinOperator{Kind: ast.Cross},
						},
					},
				},
			},
		},
	}

	_, err := b.BindQuery(context.Background(), q)
	require.Error(t, err)
}

func TestBindQueryRejectsUnsupportedFunction(t *testing.T) {
	b := binder.New(newStorage(t))
	q := &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{
				ast.UnnamedExpr{Expr: ast.Function{Name: "nope", Args: []ast.Expr{ident("c1")}}},
			},
			From: []ast.TableWithJoins{
				{Relation: ast.TableFactor{Name: ast.ObjectName{"t1"}}},
			},
		},
	}

	_, err := b.BindQuery(context.Background(), q)
	require.Error(t, err)
}

func TestBindQueryEmptyFromProducesDummy(t *testing.T) {
	b := binder.New(newStorage(t))
	q := &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{
				ast.UnnamedExpr{Expr: ast.Value{Kind: ast.NumberValue, Raw: "1"}},
			},
		},
	}

	plan, err := b.BindQuery(context.Background(), q)
	require.NoError(t, err)
	assert.NotNil(t, plan.Child(0))
}
