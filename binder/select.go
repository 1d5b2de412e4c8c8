package binder

import (
	"context"
	"strings"

	"github.com/kipsql-go/kipsql/ast"
	"github.com/kipsql-go/kipsql/expression"
	"github.com/kipsql-go/kipsql/planner"
	"github.com/kipsql-go/kipsql/planner/operator"
	"github.com/kipsql-go/kipsql/types"
)

// bindSelect runs the full SELECT binding pipeline (spec §4.3 steps 1-12):
// FROM, select-list normalization, join nullability, WHERE, aggregate
// extraction, GROUP BY, HAVING/ORDER BY, aggregation wrap, HAVING filter,
// DISTINCT, sort, and finally the outer projection.
func (b *Binder) bindSelect(goCtx context.Context, sel *ast.Select, orderBy []ast.OrderByExpr) (*planner.LogicalPlan, *Error) {
	plan, err := b.bindTableRef(goCtx, sel.From)
	if err != nil {
		return nil, err
	}

	selectList, err := b.normalizeSelectItem(goCtx, sel.Projection)
	if err != nil {
		return nil, err
	}

	b.extractSelectJoin(selectList)

	if sel.Selection != nil {
		plan, err = b.bindWhere(plan, sel.Selection)
		if err != nil {
			return nil, err
		}
	}

	b.extractSelectAggregate(selectList)

	if len(sel.GroupBy) > 0 {
		if err := b.extractGroupByAggregate(selectList, sel.GroupBy); err != nil {
			return nil, err
		}
	}

	var having expression.ScalarExpression
	var sortFields []operator.SortField
	if sel.Having != nil || len(orderBy) > 0 {
		having, sortFields, err = b.extractHavingOrderbyAggregate(goCtx, sel.Having, orderBy)
		if err != nil {
			return nil, err
		}
	}

	if len(b.ctx.aggCalls) > 0 || len(b.ctx.groupByExprs) > 0 {
		plan = b.bindAggregate(plan)
	}

	if having != nil {
		plan, err = b.bindHaving(plan, having)
		if err != nil {
			return nil, err
		}
	}

	if sel.Distinct {
		plan = b.bindDistinct(plan)
	}

	if sortFields != nil {
		plan = b.bindSort(plan, sortFields)
	}

	plan = b.bindProject(plan, selectList)
	return plan, nil
}

// bindWhere wraps children in a non-HAVING Filter over predicate.
func (b *Binder) bindWhere(children *planner.LogicalPlan, predicate ast.Expr) (*planner.LogicalPlan, *Error) {
	expr, err := b.bindExpr(predicate)
	if err != nil {
		return nil, err
	}
	return planner.New(operator.Filter{Predicate: expr, Having: false}, children), nil
}

// bindHaving validates having against the query's GROUP BY keys and wraps
// children in a Having Filter.
func (b *Binder) bindHaving(children *planner.LogicalPlan, having expression.ScalarExpression) (*planner.LogicalPlan, *Error) {
	if err := b.validateHavingOrderby(having); err != nil {
		return nil, err
	}
	return planner.New(operator.Filter{Predicate: having, Having: true}, children), nil
}

// bindProject wraps children in the final select-list Project.
func (b *Binder) bindProject(children *planner.LogicalPlan, selectList []expression.ScalarExpression) *planner.LogicalPlan {
	return planner.New(operator.Project{Columns: selectList}, children)
}

// bindSort wraps children in a Sort over fields; LIMIT/OFFSET are applied
// separately by bindLimit, so Sort.Limit is always left nil here.
func (b *Binder) bindSort(children *planner.LogicalPlan, fields []operator.SortField) *planner.LogicalPlan {
	return planner.New(operator.Sort{Fields: fields}, children)
}

// bindDistinct wraps children in a Distinct operator.
func (b *Binder) bindDistinct(children *planner.LogicalPlan) *planner.LogicalPlan {
	return planner.New(operator.Distinct{}, children)
}

// bindLimit binds the optional LIMIT/OFFSET expressions, validating each is
// a positive integer literal, and wraps children in a Limit operator when
// either is present.
func (b *Binder) bindLimit(children *planner.LogicalPlan, limitExpr, offsetExpr ast.Expr) (*planner.LogicalPlan, *Error) {
	var limit, offset *int64

	if limitExpr != nil {
		v, err := b.bindPositiveIntLiteral(limitExpr)
		if err != nil {
			return nil, err
		}
		limit = &v
	}
	if offsetExpr != nil {
		v, err := b.bindPositiveIntLiteral(offsetExpr)
		if err != nil {
			return nil, err
		}
		offset = &v
	}

	return planner.New(operator.Limit{Limit: limit, Offset: offset}, children), nil
}

func (b *Binder) bindPositiveIntLiteral(e ast.Expr) (int64, *Error) {
	bound, err := b.bindExpr(e)
	if err != nil {
		return 0, err
	}
	c, ok := bound.(expression.Constant)
	if !ok {
		return 0, newError(InvalidColumn, "invalid limit expression")
	}
	iv, ok := c.Value.(types.IntValue)
	if !ok || iv.Int64() <= 0 {
		return 0, newError(InvalidColumn, "invalid limit expression")
	}
	return iv.Int64(), nil
}

// normalizeSelectItem expands the projection list into scalar expressions:
// unnamed/aliased expressions bind directly, and a wildcard expands to
// every bound table's columns in bind order.
func (b *Binder) normalizeSelectItem(goCtx context.Context, items []ast.SelectItem) ([]expression.ScalarExpression, *Error) {
	var out []expression.ScalarExpression

	for _, item := range items {
		switch x := item.(type) {
		case ast.UnnamedExpr:
			expr, err := b.bindExpr(x.Expr)
			if err != nil {
				return nil, err
			}
			out = append(out, expr)
		case ast.ExprWithAlias:
			expr, err := b.bindExpr(x.Expr)
			if err != nil {
				return nil, err
			}
			b.ctx.addAlias(x.Alias, expr)
			out = append(out, expression.Alias{Expr: expr, Name: x.Alias})
		case ast.Wildcard:
			cols, err := b.bindAllColumnRefs(goCtx, x.Qualifier)
			if err != nil {
				return nil, err
			}
			out = append(out, cols...)
		default:
			return nil, newError(Unsupported, "unsupported select item %T", item)
		}
	}
	return out, nil
}

// bindAllColumnRefs expands `*` (qualifier nil) or `table.*` (qualifier
// non-nil) into the matching ColumnRefExprs, in bind order.
func (b *Binder) bindAllColumnRefs(goCtx context.Context, qualifier *string) ([]expression.ScalarExpression, *Error) {
	var out []expression.ScalarExpression

	for _, name := range b.ctx.bindOrder {
		if qualifier != nil && strings.ToLower(*qualifier) != name {
			continue
		}
		tc, _ := b.ctx.lookupBoundTable(name)
		for _, col := range tc.AllColumns() {
			out = append(out, expression.ColumnRefExpr{Column: col})
		}
	}
	if qualifier != nil && len(out) == 0 {
		return nil, newError(InvalidTable, "unknown table qualifier %q in wildcard", *qualifier)
	}
	return out, nil
}
