package binder

import (
	"context"

	"github.com/kipsql-go/kipsql/ast"
	"github.com/kipsql-go/kipsql/expression"
	"github.com/kipsql-go/kipsql/logger"
	"github.com/kipsql-go/kipsql/planner"
	"github.com/kipsql-go/kipsql/planner/operator"
)

// bindAggregate wraps children in an Aggregate carrying whatever AggCalls/
// GroupByExprs the earlier extraction passes collected into ctx.
func (b *Binder) bindAggregate(children *planner.LogicalPlan) *planner.LogicalPlan {
	return planner.New(operator.Aggregate{
		AggCalls:     b.ctx.aggCalls,
		GroupByExprs: b.ctx.groupByExprs,
	}, children)
}

// extractSelectAggregate rewrites every AggCall reachable from the select
// list in place into an InputRef, pushing the original AggCall onto
// ctx.aggCalls — select_items is mutated through its slice header, so
// callers see the rewrite without a return value.
func (b *Binder) extractSelectAggregate(selectItems []expression.ScalarExpression) {
	for i := range selectItems {
		selectItems[i] = b.visitColumnAggExpr(selectItems[i])
	}
}

// visitColumnAggExpr returns expr with every AggCall subexpression replaced
// by an InputRef addressing ctx.aggCalls, recursing through the wrapper
// shapes an AggCall may be nested inside (alias, cast, unary, is-null,
// either side of a binary).
func (b *Binder) visitColumnAggExpr(expr expression.ScalarExpression) expression.ScalarExpression {
	switch x := expr.(type) {
	case expression.AggCall:
		index := b.ctx.nextIndex(expression.InputRefAggCall)
		b.ctx.aggCalls = append(b.ctx.aggCalls, x)
		logger.Debugf("rewrote %s into input ref #%d", x, index)
		return expression.InputRef{Index: index, Ty: x.Ty, Kind: expression.InputRefAggCall}
	case expression.TypeCast:
		x.Expr = b.visitColumnAggExpr(x.Expr)
		return x
	case expression.IsNullExpr:
		x.Expr = b.visitColumnAggExpr(x.Expr)
		return x
	case expression.Unary:
		x.Expr = b.visitColumnAggExpr(x.Expr)
		return x
	case expression.Alias:
		x.Expr = b.visitColumnAggExpr(x.Expr)
		return x
	case expression.Binary:
		x.Left = b.visitColumnAggExpr(x.Left)
		x.Right = b.visitColumnAggExpr(x.Right)
		return x
	default:
		return expr
	}
}

// extractGroupByAggregate validates the select list against groupby, binds
// each GROUP BY expression, and rewrites the matching select-list entry into
// an InputRef addressing ctx.groupByExprs (a matching Constant/ColumnRef
// entry stays in place and a copy of it is recorded instead).
func (b *Binder) extractGroupByAggregate(selectItems []expression.ScalarExpression, groupBy []ast.Expr) *Error {
	if err := b.validateGroupByIllegalColumn(selectItems, groupBy); err != nil {
		return err
	}

	for _, gb := range groupBy {
		expr, err := b.bindExpr(gb)
		if err != nil {
			return err
		}
		b.visitGroupByExpr(selectItems, expr)
	}
	return nil
}

// validateGroupByIllegalColumn enforces that every non-aggregate select
// item appears (verbatim, or via a shared alias) in the GROUP BY list, and
// that every GROUP BY key is projected.
//
// An aliased GROUP BY entry is only matched against a select item that
// carries the identical alias name — it is never resolved back to the
// aliased expression's value for comparison against unaliased select
// items. A GROUP BY key referencing the same underlying expression under a
// different alias (or no alias) than the one used in the select list is
// therefore rejected as AggMiss even though the two expressions are
// semantically identical. Reproduced verbatim from the original's
// validate_groupby_illegal_column, which has the same restriction.
func (b *Binder) validateGroupByIllegalColumn(selectItems []expression.ScalarExpression, groupBy []ast.Expr) *Error {
	var groupRawExprs []expression.ScalarExpression

	for _, gb := range groupBy {
		expr, err := b.bindExpr(gb)
		if err != nil {
			return err
		}
		if alias, ok := expr.(expression.Alias); ok {
			found := false
			for _, item := range selectItems {
				if innerAlias, ok := item.(expression.Alias); ok && innerAlias.Name == alias.Name {
					groupRawExprs = append(groupRawExprs, item)
					found = true
					break
				}
			}
			if !found {
				continue
			}
		} else {
			groupRawExprs = append(groupRawExprs, expr)
		}
	}

	matched := make([]bool, len(groupRawExprs))

	for _, item := range selectItems {
		if expression.HasAggCall(item) {
			continue
		}
		inGroupBy := false
		for i, g := range groupRawExprs {
			if expression.Equal(g, item) {
				inGroupBy = true
				matched[i] = true
				break
			}
		}
		if !inGroupBy {
			return newError(AggMiss, "%v must appear in the GROUP BY clause or be used in an aggregate function", item)
		}
	}

	for _, m := range matched {
		if !m {
			return newError(AggMiss, "in the GROUP BY clause the field must be in the select clause")
		}
	}
	return nil
}

// visitGroupByExpr rewrites the select-list entry matching expr (by alias
// name when expr is an Alias, otherwise by structural equality) into an
// InputRef, pushing the original expression onto ctx.groupByExprs. Bare
// Constant/ColumnRef group keys are pushed by value without being removed
// from the select list, since a raw column reference needs no input-ref
// indirection to be re-read downstream.
func (b *Binder) visitGroupByExpr(selectItems []expression.ScalarExpression, expr expression.ScalarExpression) {
	if alias, ok := expr.(expression.Alias); ok {
		for i, item := range selectItems {
			if innerAlias, ok := item.(expression.Alias); ok && innerAlias.Name == alias.Name {
				index := b.ctx.nextIndex(expression.InputRefGroupBy)
				ty := expression.ReturnType(item)
				b.ctx.groupByExprs = append(b.ctx.groupByExprs, item)
				logger.Debugf("rewrote group-by alias %q into input ref #%d", alias.Name, index)
				selectItems[i] = expression.InputRef{Index: index, Ty: ty, Kind: expression.InputRefGroupBy}
				return
			}
		}
		return
	}

	for i, item := range selectItems {
		if !expression.Equal(item, expr) {
			continue
		}
		switch item.(type) {
		case expression.Constant, expression.ColumnRefExpr:
			b.ctx.groupByExprs = append(b.ctx.groupByExprs, item)
		default:
			index := b.ctx.nextIndex(expression.InputRefGroupBy)
			ty := expression.ReturnType(item)
			b.ctx.groupByExprs = append(b.ctx.groupByExprs, item)
			selectItems[i] = expression.InputRef{Index: index, Ty: ty, Kind: expression.InputRefGroupBy}
		}
		return
	}
}

// extractHavingOrderbyAggregate binds HAVING (if present) and every ORDER
// BY expression, rewriting AggCalls in each into InputRefs the same way
// extractSelectAggregate does for the select list.
func (b *Binder) extractHavingOrderbyAggregate(goCtx context.Context, having ast.Expr, orderBy []ast.OrderByExpr) (expression.ScalarExpression, []operator.SortField, *Error) {
	var havingExpr expression.ScalarExpression
	if having != nil {
		bound, err := b.bindExpr(having)
		if err != nil {
			return nil, nil, err
		}
		havingExpr = b.visitColumnAggExpr(bound)
	}

	var sortFields []operator.SortField
	if len(orderBy) > 0 {
		sortFields = make([]operator.SortField, 0, len(orderBy))
		for _, ob := range orderBy {
			bound, err := b.bindExpr(ob.Expr)
			if err != nil {
				return nil, nil, err
			}
			bound = b.visitColumnAggExpr(bound)

			asc := true
			if ob.Asc != nil {
				asc = *ob.Asc
			}
			nullsFirst := false
			if ob.NullsFirst != nil {
				nullsFirst = *ob.NullsFirst
			}
			sortFields = append(sortFields, operator.SortField{
				Expr:       bound,
				Descending: !asc,
				NullsFirst: nullsFirst,
			})
		}
	}

	return havingExpr, sortFields, nil
}

// validateHavingOrderby enforces that expr (a bound HAVING or ORDER BY
// expression) only references columns/aggregates that legally survive a
// GROUP BY: skipped entirely when there is no GROUP BY in the query.
func (b *Binder) validateHavingOrderby(expr expression.ScalarExpression) *Error {
	if len(b.ctx.groupByExprs) == 0 {
		return nil
	}

	switch x := expr.(type) {
	case expression.AggCall:
		for _, g := range b.ctx.groupByExprs {
			if expression.Equal(g, expr) {
				return nil
			}
		}
		for _, a := range b.ctx.aggCalls {
			if expression.Equal(a, expr) {
				return nil
			}
		}
		return newError(AggMiss, "column %v must appear in the GROUP BY clause or be used in an aggregate function", expr)
	case expression.ColumnRefExpr, expression.Alias:
		for _, g := range b.ctx.groupByExprs {
			if expression.Equal(g, expr) {
				return nil
			}
		}
		return newError(AggMiss, "column %v must appear in the GROUP BY clause or be used in an aggregate function", expr)
	case expression.TypeCast:
		return b.validateHavingOrderby(x.Expr)
	case expression.IsNullExpr:
		return b.validateHavingOrderby(x.Expr)
	case expression.Unary:
		return b.validateHavingOrderby(x.Expr)
	case expression.Binary:
		if err := b.validateHavingOrderby(x.Left); err != nil {
			return err
		}
		return b.validateHavingOrderby(x.Right)
	default:
		return nil
	}
}
