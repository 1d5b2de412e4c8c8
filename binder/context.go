package binder

import (
	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/expression"
	"github.com/kipsql-go/kipsql/planner/operator"
)

// tableBinding pairs a bound table's catalog entry with the join type that
// introduced it, nil for the single un-joined (left root) table.
type tableBinding struct {
	catalog  *catalog.TableCatalog
	joinType *operator.JoinType
}

// Context lives for one query binding pass (spec §3, "Binder Context").
// bindOrder + bindTable together model the ordered map the spec requires:
// bindOrder preserves insertion order (Go maps don't), bindTable gives
// O(1) lookup by name.
type Context struct {
	storage catalog.Lookup

	bindOrder []string
	bindTable map[string]*tableBinding

	aliases map[string]expression.ScalarExpression

	aggCalls     []expression.AggCall
	groupByExprs []expression.ScalarExpression

	aggCounter     int
	groupByCounter int
}

func newContext(storage catalog.Lookup) *Context {
	return &Context{
		storage:   storage,
		bindTable: make(map[string]*tableBinding),
		aliases:   make(map[string]expression.ScalarExpression),
	}
}

func (c *Context) addAlias(name string, expr expression.ScalarExpression) {
	c.aliases[name] = expr
}

// nextIndex allocates the next index from the independent AggCall /
// GroupBy counter named by kind.
func (c *Context) nextIndex(kind expression.InputRefType) int {
	switch kind {
	case expression.InputRefAggCall:
		idx := c.aggCounter
		c.aggCounter++
		return idx
	case expression.InputRefGroupBy:
		idx := c.groupByCounter
		c.groupByCounter++
		return idx
	default:
		return 0
	}
}

// registerTable records table under name with the given join type (nil for
// the un-joined root), erroring if name is already bound — insertion order
// is preserved via bindOrder.
func (c *Context) registerTable(name string, tc *catalog.TableCatalog, joinType *operator.JoinType) *Error {
	if _, ok := c.bindTable[name]; ok {
		return newError(InvalidTable, "%s duplicated", name)
	}
	c.bindOrder = append(c.bindOrder, name)
	c.bindTable[name] = &tableBinding{catalog: tc, joinType: joinType}
	return nil
}

// lookupBoundTable returns the catalog bound under name, if any.
func (c *Context) lookupBoundTable(name string) (*catalog.TableCatalog, bool) {
	b, ok := c.bindTable[name]
	if !ok {
		return nil, false
	}
	return b.catalog, true
}
