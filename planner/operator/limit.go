package operator

import "github.com/kipsql-go/kipsql/expression"

// Limit applies LIMIT/OFFSET to its single child's output. Either field may
// be nil if its clause was absent.
type Limit struct {
	base
	Limit  *int64
	Offset *int64
}

func (Limit) isOperator() {}

func (Limit) ReferencedColumns() []expression.ColumnRefExpr { return nil }
