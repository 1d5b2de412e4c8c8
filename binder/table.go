package binder

import (
	"context"
	"strings"

	"github.com/kipsql-go/kipsql/ast"
	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/expression"
	"github.com/kipsql-go/kipsql/planner"
	"github.com/kipsql-go/kipsql/planner/operator"
	"github.com/kipsql-go/kipsql/types"
)

// joinsNullable maps a join kind to which side of the join it forces
// nullable, mirroring the original project's execution/executor/dql/join
// helper of the same name: the preserved side of an outer join stays as
// bound, the non-preserved side's columns become nullable regardless of
// their declared nullability.
func joinsNullable(kind operator.JoinType) (leftNullable, rightNullable bool) {
	switch kind {
	case operator.LeftOuter:
		return false, true
	case operator.RightOuter:
		return true, false
	case operator.FullOuter:
		return true, true
	default: // Inner, Cross
		return false, false
	}
}

// bindTableRef binds the (single, per spec §4.3's "only one FROM-list
// entry supported") FROM clause: a base relation plus its chained joins.
func (b *Binder) bindTableRef(goCtx context.Context, from []ast.TableWithJoins) (*planner.LogicalPlan, *Error) {
	if len(from) == 0 {
		return planner.New(operator.Dummy{}), nil
	}
	if len(from) > 1 {
		return nil, newError(Unsupported, "multiple FROM-list entries are not supported")
	}

	twj := from[0]
	leftName, plan, err := b.bindSingleTableRef(goCtx, twj.Relation, nil)
	if err != nil {
		return nil, err
	}

	for _, j := range twj.Joins {
		plan, err = b.bindJoin(goCtx, leftName, plan, j)
		if err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// bindSingleTableRef resolves a bare table reference (1-3 part name, with
// an optional alias overriding the bound name) to a Scan and registers it
// in the binder's context under joinType (nil for the un-joined root).
func (b *Binder) bindSingleTableRef(goCtx context.Context, tf ast.TableFactor, joinType *operator.JoinType) (string, *planner.LogicalPlan, *Error) {
	parts := make([]string, len(tf.Name))
	for i, p := range tf.Name {
		parts[i] = foldIdent(p)
	}

	var name string
	switch len(parts) {
	case 1:
		name = parts[0]
	case 2:
		name = parts[1]
	case 3:
		name = parts[2]
	default:
		return "", nil, newError(InvalidTableName, "invalid table name %v", tf.Name)
	}
	table := name
	if tf.Alias != nil {
		table = foldIdent(*tf.Alias)
	}

	tc, ok := b.storage.TableCatalog(goCtx, name)
	if !ok {
		return "", nil, newError(InvalidTable, "bind table %s", name)
	}
	if err := b.ctx.registerTable(table, tc, joinType); err != nil {
		return "", nil, err
	}

	cols := tc.AllColumns()
	scan := operator.Scan{Table: name, Columns: cols}
	return table, planner.New(scan), nil
}

// bindJoin binds one chained join entry, resolving its join type, key
// extraction against the now-bound left/right catalogs, and wrapping both
// sides in a Join operator.
func (b *Binder) bindJoin(goCtx context.Context, leftTable string, left *planner.LogicalPlan, j ast.Join) (*planner.LogicalPlan, *Error) {
	var joinType operator.JoinType
	hasConstraint := true
	switch j.Operator.Kind {
	case ast.Inner:
		joinType = operator.Inner
	case ast.LeftOuter:
		joinType = operator.LeftOuter
	case ast.RightOuter:
		joinType = operator.RightOuter
	case ast.FullOuter:
		joinType = operator.FullOuter
	case ast.Cross:
		joinType = operator.Cross
		hasConstraint = false
	default:
		return nil, newError(Unsupported, "unsupported join kind")
	}

	rightTable, right, err := b.bindSingleTableRef(goCtx, j.Relation, &joinType)
	if err != nil {
		return nil, err
	}

	leftCatalog, ok := b.ctx.lookupBoundTable(leftTable)
	if !ok {
		return nil, newError(InvalidTable, "left: %s not found", leftTable)
	}
	rightCatalog, ok := b.ctx.lookupBoundTable(rightTable)
	if !ok {
		return nil, newError(InvalidTable, "right: %s not found", rightTable)
	}

	cond := operator.JoinCondition{}
	if hasConstraint {
		cond, err = b.bindJoinConstraint(leftCatalog, rightCatalog, j.Operator.Constraint)
		if err != nil {
			return nil, err
		}
	}

	return planner.New(operator.Join{Condition: cond, Type: joinType}, left, right), nil
}

// bindJoinConstraint extracts equi-join key pairs (plus any residual
// predicate) from an ON clause.
func (b *Binder) bindJoinConstraint(left, right *catalog.TableCatalog, constraint ast.Expr) (operator.JoinCondition, *Error) {
	var onKeys []operator.JoinKeyPair
	var filters []expression.ScalarExpression

	if err := b.extractJoinKeys(constraint, &onKeys, &filters, left, right); err != nil {
		return operator.JoinCondition{}, err
	}

	var filter expression.ScalarExpression
	for _, f := range filters {
		if filter == nil {
			filter = f
			continue
		}
		filter = expression.Binary{Op: types.And, Left: filter, Right: f, Ty: types.Boolean}
	}

	return operator.JoinCondition{HasOn: true, On: onKeys, Filter: filter}, nil
}

// extractJoinKeys walks expr, peeling off top-level AND conjuncts and
// sorting each conjunct into an equi-join key pair (when both sides
// reference exactly one of left/right) or a residual filter otherwise.
// Ported from extract_join_keys: a conjunct is re-bound into accum_filter
// even when bind_expr was already called once for it during the Eq check
// below, matching the original's redundant second bind_expr call.
func (b *Binder) extractJoinKeys(e ast.Expr, accum *[]operator.JoinKeyPair, accumFilter *[]expression.ScalarExpression, left, right *catalog.TableCatalog) *Error {
	bin, ok := e.(ast.BinaryOp)
	if !ok {
		bound, err := b.bindExpr(e)
		if err != nil {
			return err
		}
		*accumFilter = append(*accumFilter, bound)
		return nil
	}

	switch strings.ToUpper(bin.Op) {
	case "=":
		l, err := b.bindExpr(bin.Left)
		if err != nil {
			return err
		}
		r, err := b.bindExpr(bin.Right)
		if err != nil {
			return err
		}
		lCol, lok := l.(expression.ColumnRefExpr)
		rCol, rok := r.(expression.ColumnRefExpr)
		switch {
		case lok && rok && left.ContainsColumn(lCol.Column.Name) && right.ContainsColumn(rCol.Column.Name):
			*accum = append(*accum, operator.JoinKeyPair{Left: lCol, Right: rCol})
		case lok && rok && left.ContainsColumn(rCol.Column.Name) && right.ContainsColumn(lCol.Column.Name):
			*accum = append(*accum, operator.JoinKeyPair{Left: rCol, Right: lCol})
		default:
			bound, err := b.bindExpr(e)
			if err != nil {
				return err
			}
			*accumFilter = append(*accumFilter, bound)
		}
		return nil
	case "AND":
		if err := b.extractJoinKeys(bin.Left, accum, accumFilter, left, right); err != nil {
			return err
		}
		return b.extractJoinKeys(bin.Right, accum, accumFilter, left, right)
	default:
		bound, err := b.bindExpr(e)
		if err != nil {
			return err
		}
		*accumFilter = append(*accumFilter, bound)
		return nil
	}
}

// extractSelectJoin rewrites each ColumnRef in selectItems to carry the
// nullability its table's join position forces, matching extract_select_join:
// the un-joined root table inherits the left-side nullability flag of the
// *last* joined table (of any join kind) in bindOrder's insertion order.
func (b *Binder) extractSelectJoin(selectItems []expression.ScalarExpression) {
	if len(b.ctx.bindTable) < 2 {
		return
	}

	forceNullable := make(map[string]bool)
	var leftTableForceNullable bool
	var leftTable string
	haveLeftTable := false

	for _, name := range b.ctx.bindOrder {
		binding := b.ctx.bindTable[name]
		if binding.joinType != nil {
			l, r := joinsNullable(*binding.joinType)
			forceNullable[name] = r
			leftTableForceNullable = l
		} else {
			leftTable = name
			haveLeftTable = true
		}
	}
	if haveLeftTable {
		forceNullable[leftTable] = leftTableForceNullable
	}

	for i, item := range selectItems {
		col, ok := item.(expression.ColumnRefExpr)
		if !ok || col.Column.TableName == nil {
			continue
		}
		if nullable, ok := forceNullable[*col.Column.TableName]; ok {
			clone := col.Column.Clone()
			clone.Nullable = nullable
			selectItems[i] = expression.ColumnRefExpr{Column: clone}
		}
	}
}
