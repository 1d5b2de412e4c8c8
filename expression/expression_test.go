package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/expression"
	"github.com/kipsql-go/kipsql/types"
)

func col(name string, ty types.LogicalType) catalog.ColumnRef {
	return catalog.NewColumn(name, true, catalog.ColumnDesc{Datatype: ty})
}

func TestReturnTypeWidensBinaryArithmetic(t *testing.T) {
	left := expression.ColumnRefExpr{Column: col("a", types.Integer)}
	right := expression.ColumnRefExpr{Column: col("b", types.Bigint)}
	bin := expression.Binary{
		Op: types.Add, Left: left, Right: right,
		Ty: types.BinaryResultType(types.Add, types.Integer, types.Bigint),
	}
	assert.Equal(t, types.Bigint, expression.ReturnType(bin))
}

func TestReturnTypeComparisonIsBoolean(t *testing.T) {
	bin := expression.Binary{
		Op:   types.Gt,
		Left: expression.Constant{Value: types.NewInt(1, types.Integer)},
		Right: expression.Constant{Value: types.NewInt(2, types.Integer)},
		Ty:   types.BinaryResultType(types.Gt, types.Integer, types.Integer),
	}
	assert.Equal(t, types.Boolean, expression.ReturnType(bin))
}

func TestHasAggCallFindsNestedAggregate(t *testing.T) {
	agg := expression.AggCall{Kind: expression.Sum, Args: []expression.ScalarExpression{
		expression.ColumnRefExpr{Column: col("x", types.Integer)},
	}}
	wrapped := expression.Alias{Expr: agg, Name: "total"}
	assert.True(t, expression.HasAggCall(wrapped))

	plain := expression.ColumnRefExpr{Column: col("x", types.Integer)}
	assert.False(t, expression.HasAggCall(plain))
}

func TestReferencedColumnsTraversesBinaryTree(t *testing.T) {
	a := expression.ColumnRefExpr{Column: col("a", types.Integer)}
	b := expression.ColumnRefExpr{Column: col("b", types.Integer)}
	bin := expression.Binary{Op: types.Add, Left: a, Right: b, Ty: types.Integer}
	refs := expression.ReferencedColumns(bin)
	assert.Len(t, refs, 2)
	assert.Equal(t, "a", refs[0].Column.Name)
	assert.Equal(t, "b", refs[1].Column.Name)
}

func TestUnpackAliasStripsWrapper(t *testing.T) {
	inner := expression.ColumnRefExpr{Column: col("a", types.Integer)}
	aliased := expression.Alias{Expr: inner, Name: "aa"}
	assert.Equal(t, inner, expression.UnpackAlias(aliased))
	assert.Equal(t, inner, expression.UnpackAlias(inner))
}

func TestEqualDistinguishesAliasName(t *testing.T) {
	inner := expression.ColumnRefExpr{Column: col("a", types.Integer)}
	aliasA := expression.Alias{Expr: inner, Name: "x"}
	aliasB := expression.Alias{Expr: inner, Name: "y"}
	assert.False(t, expression.Equal(aliasA, aliasB))
	assert.True(t, expression.Equal(aliasA, aliasA))
}

func TestEqualConstants(t *testing.T) {
	a := expression.Constant{Value: types.NewInt(42, types.Integer)}
	b := expression.Constant{Value: types.NewInt(42, types.Integer)}
	c := expression.Constant{Value: types.NewInt(43, types.Integer)}
	assert.True(t, expression.Equal(a, b))
	assert.False(t, expression.Equal(a, c))
}
