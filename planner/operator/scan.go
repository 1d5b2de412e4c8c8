package operator

import (
	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/expression"
)

// Scan reads a table's columns, a subset of which may later be narrowed by
// PushProjectIntoScan.
type Scan struct {
	base
	Table   catalog.TableName
	Columns []catalog.ColumnRef
}

func (Scan) isOperator() {}

// ReferencedColumns returns the scan's own projected column list.
func (s Scan) ReferencedColumns() []expression.ColumnRefExpr {
	out := make([]expression.ColumnRefExpr, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = expression.ColumnRefExpr{Column: c}
	}
	return out
}

// WithColumns returns a copy of s with its column list replaced, used by
// PushProjectIntoScan rather than mutating the shared operator in place.
func (s Scan) WithColumns(cols []catalog.ColumnRef) Scan {
	s.Columns = cols
	return s
}
