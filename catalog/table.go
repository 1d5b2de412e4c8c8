package catalog

import (
	"context"

	"github.com/kipsql-go/kipsql/types"
)

// TableCatalog names a table and owns its ordered column list. It is
// immutable once published: the binder never mutates a TableCatalog it
// looked up, only the ColumnRefs it later clones for the nullability
// rewrite.
type TableCatalog struct {
	Name    TableName
	columns []ColumnRef
}

// NewTable builds a table catalog, binding each column's TableName to name
// as it's added (mirroring the teacher's TableCatalog construction, which
// stamps the owning table onto each ColumnCatalog at registration time).
func NewTable(name TableName, columns []ColumnRef) *TableCatalog {
	bound := make([]ColumnRef, len(columns))
	for i, col := range columns {
		bound[i] = col.WithTable(name)
	}
	return &TableCatalog{Name: name, columns: bound}
}

// ContainsColumn reports whether a column with the given name exists.
func (t *TableCatalog) ContainsColumn(name string) bool {
	for _, c := range t.columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

// AllColumns returns the table's columns in declaration order.
func (t *TableCatalog) AllColumns() []ColumnRef {
	out := make([]ColumnRef, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnWithId pairs a column id with its catalog entry.
type ColumnWithId struct {
	Id     types.ColumnId
	Column ColumnRef
}

// AllColumnsWithId returns (id, column) pairs in declaration order.
func (t *TableCatalog) AllColumnsWithId() []ColumnWithId {
	out := make([]ColumnWithId, len(t.columns))
	for i, c := range t.columns {
		out[i] = ColumnWithId{Id: c.Id, Column: c}
	}
	return out
}

// ColumnByName looks a column up by (case-sensitive, already-folded) name.
func (t *TableCatalog) ColumnByName(name string) (ColumnRef, bool) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Lookup is the capability the binder depends on to resolve table names
// against the catalog. Every method takes a context.Context as the
// cooperative suspension point described in the spec's concurrency model:
// a real implementation may perform I/O to fetch table metadata.
type Lookup interface {
	TableCatalog(ctx context.Context, name TableName) (*TableCatalog, bool)
}
