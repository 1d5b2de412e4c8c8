package binder

import (
	"context"

	"github.com/juju/errors"

	"github.com/kipsql-go/kipsql/ast"
	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/planner"
)

// Binder converts a single AST query into a LogicalPlan against storage.
// One Binder is scoped to one top-level query; nested queries recurse
// through bindQuery rather than sharing a Context (the spec carries no
// CTE/subquery name resolution across levels — see SPEC_FULL.md's WITH
// non-goal).
type Binder struct {
	ctx     *Context
	storage catalog.Lookup
}

// New builds a Binder resolving identifiers against storage.
func New(storage catalog.Lookup) *Binder {
	return &Binder{ctx: newContext(storage), storage: storage}
}

// BindQuery is the binder's sole entry point, mirroring bind_query's shape:
// reject WITH, dispatch on the query body, then wrap LIMIT/OFFSET around
// whatever bind_select (or a nested bind_query) produced.
func (b *Binder) BindQuery(goCtx context.Context, q *ast.Query) (*planner.LogicalPlan, error) {
	plan, err := b.bindQuery(goCtx, q)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return plan, nil
}

// bindQuery is BindQuery's *Error-returning core, called directly (without
// the juju/errors.Trace wrapping layer) when a nested query recurses into
// it, so every stack frame of a deeply-nested bind doesn't add its own
// trace entry.
func (b *Binder) bindQuery(goCtx context.Context, q *ast.Query) (*planner.LogicalPlan, *Error) {
	if q.With != nil {
		return nil, newError(Unsupported, "WITH clause is not supported")
	}

	var plan *planner.LogicalPlan
	var err *Error
	switch body := q.Body.(type) {
	case *ast.Select:
		plan, err = b.bindSelect(goCtx, body, q.OrderBy)
	case *ast.QueryExpr:
		// A nested query gets its own Binder/Context rather than sharing
		// this one's bound tables/aliases — it's a fresh top-level query,
		// not a correlated subquery (those remain a Non-goal).
		plan, err = New(b.storage).bindQuery(goCtx, body.Query)
	default:
		return nil, newError(Unsupported, "unsupported query body %T", q.Body)
	}
	if err != nil {
		return nil, err
	}

	if q.Limit != nil || q.Offset != nil {
		plan, err = b.bindLimit(plan, q.Limit, q.Offset)
		if err != nil {
			return nil, err
		}
	}
	return plan, nil
}
