package operator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/expression"
	"github.com/kipsql-go/kipsql/planner/operator"
	"github.com/kipsql-go/kipsql/types"
)

func col(name string, ty types.LogicalType) catalog.ColumnRef {
	return catalog.NewColumn(name, true, catalog.ColumnDesc{Datatype: ty})
}

func TestScanReferencedColumnsIsOwnList(t *testing.T) {
	c1 := col("c1", types.Integer)
	c2 := col("c2", types.Integer)
	scan := operator.Scan{Table: "t1", Columns: []catalog.ColumnRef{c1, c2}}
	refs := scan.ReferencedColumns()
	assert.Len(t, refs, 2)
	assert.Equal(t, "c1", refs[0].Column.Name)
}

func TestProjectInputRefsUnwrapsAlias(t *testing.T) {
	bare := expression.InputRef{Index: 0, Ty: types.Double, Kind: expression.InputRefAggCall}
	aliased := expression.Alias{Expr: expression.InputRef{Index: 1, Ty: types.Integer, Kind: expression.InputRefGroupBy}, Name: "g"}
	plain := expression.ColumnRefExpr{Column: col("c1", types.Integer)}

	proj := operator.Project{Columns: []expression.ScalarExpression{bare, aliased, plain}}
	refs := proj.ProjectInputRefs()
	assert.Len(t, refs, 2)
	assert.Equal(t, 0, refs[0].Index)
	assert.Equal(t, 1, refs[1].Index)
}

func TestAggregateMappingResolvesAggCallInputRef(t *testing.T) {
	arg := expression.ColumnRefExpr{Column: col("c1", types.Integer)}
	agg := expression.AggCall{Kind: expression.Sum, Args: []expression.ScalarExpression{arg}, Ty: types.Double}
	aggregate := operator.Aggregate{AggCalls: []expression.AggCall{agg}}

	ref := expression.InputRef{Index: 0, Ty: types.Double, Kind: expression.InputRefAggCall}
	mapped := aggregate.AggMappingColRefs([]expression.InputRef{ref})
	assert.Len(t, mapped, 1)
	assert.Equal(t, "c1", mapped[0].Column.Name)
}

func TestAggregateMappingResolvesGroupByInputRef(t *testing.T) {
	groupExpr := expression.ColumnRefExpr{Column: col("c2", types.Integer)}
	aggregate := operator.Aggregate{GroupByExprs: []expression.ScalarExpression{groupExpr}}

	ref := expression.InputRef{Index: 0, Ty: types.Integer, Kind: expression.InputRefGroupBy}
	mapped := aggregate.AggMappingColRefs([]expression.InputRef{ref})
	assert.Len(t, mapped, 1)
	assert.Equal(t, "c2", mapped[0].Column.Name)
}

func TestJoinReferencedColumnsIncludesOnAndFilter(t *testing.T) {
	left := expression.ColumnRefExpr{Column: col("a", types.Integer)}
	right := expression.ColumnRefExpr{Column: col("b", types.Integer)}
	filterCol := expression.ColumnRefExpr{Column: col("c", types.Integer)}
	join := operator.Join{
		Type: operator.Inner,
		Condition: operator.JoinCondition{
			HasOn: true,
			On:    []operator.JoinKeyPair{{Left: left, Right: right}},
			Filter: expression.Binary{
				Op: types.Gt, Left: filterCol,
				Right: expression.Constant{Value: types.NewInt(1, types.Integer)},
				Ty:    types.Boolean,
			},
		},
	}
	refs := join.ReferencedColumns()
	assert.Len(t, refs, 3)
}

func TestInsertHasNoReferencedColumns(t *testing.T) {
	ins := operator.Insert{TableName: "t1"}
	assert.Empty(t, ins.ReferencedColumns())
}
