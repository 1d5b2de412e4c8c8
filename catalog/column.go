// Package catalog defines the column/table metadata model the binder
// resolves identifiers against, grounded on the teacher's
// server/innodb/metadata and server/innodb/schemas packages but
// generalized to the strongly-typed ColumnCatalog/TableCatalog shape the
// spec requires.
package catalog

import "github.com/kipsql-go/kipsql/types"

// TableName identifies a table within the (single, implicit) database the
// binder is resolving against. Only the bare name is modeled: the spec's
// catalog lookup is keyed by name alone, case-folded at the binder
// boundary.
type TableName = string

// ColumnDesc carries the column's static type information.
type ColumnDesc struct {
	Datatype  types.LogicalType
	IsPrimary bool
}

// ColumnCatalog describes one column. Equality (see Equal) is structural
// across all fields: two columns sharing an Id but differing in Nullable
// are distinct values, which is what makes the join-nullability rewrite
// (binder §4.3 step 3) legal — it allocates a fresh ColumnCatalog rather
// than mutating the shared one.
type ColumnCatalog struct {
	Id         types.ColumnId
	Name       string
	TableName  *TableName
	Nullable   bool
	Desc       ColumnDesc
}

// ColumnRef is the shared, immutable handle to a column catalog entry.
// Go's garbage collector stands in for the teacher's Arc<ColumnCatalog>
// reference counting; nothing here ever mutates a ColumnRef's pointee.
type ColumnRef = *ColumnCatalog

// NewColumn allocates a fresh column with the next process-wide id.
func NewColumn(name string, nullable bool, desc ColumnDesc) ColumnRef {
	return &ColumnCatalog{
		Id:       types.IdGenerator(),
		Name:     name,
		Nullable: nullable,
		Desc:     desc,
	}
}

// WithTable returns a clone of the column bound to the given table name;
// used when a TableCatalog registers its columns.
func (c *ColumnCatalog) WithTable(table TableName) ColumnRef {
	clone := *c
	clone.TableName = &table
	return &clone
}

// Clone returns a by-value copy of the column (the TableName pointer is
// shared, not copied); callers that need to
// flip Nullable (the join nullability rewrite) must use this rather than
// mutate the shared original.
func (c *ColumnCatalog) Clone() *ColumnCatalog {
	clone := *c
	return &clone
}

// Equal is structural equality across every field, matching the teacher's
// #[derive(PartialEq)] on ColumnCatalog.
func (c *ColumnCatalog) Equal(other *ColumnCatalog) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Id != other.Id || c.Name != other.Name || c.Nullable != other.Nullable || c.Desc != other.Desc {
		return false
	}
	switch {
	case c.TableName == nil && other.TableName == nil:
		return true
	case c.TableName == nil || other.TableName == nil:
		return false
	default:
		return *c.TableName == *other.TableName
	}
}

// Datatype returns the column's logical type.
func (c *ColumnCatalog) Datatype() types.LogicalType {
	return c.Desc.Datatype
}
