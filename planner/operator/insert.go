package operator

import (
	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/expression"
)

// Insert is the supplemented plan node for INSERT [OVERWRITE] statements,
// grounded on the original project's InsertOperator (TableName +
// IsOverwrite only — execution/insert.rs's tuple-id-keyed reassembly and
// non-null check belong to execution, an external collaborator). It keeps
// minimally enough shape for the binder to produce it and for the
// optimizer's column pruning to treat it correctly.
type Insert struct {
	base
	TableName   catalog.TableName
	IsOverwrite bool
}

func (Insert) isOperator() {}

// ReferencedColumns is empty: Insert carries no expressions of its own —
// the columns it needs come from its single child's projection, so
// PushProjectThroughChild never misfires in front of an unpruned insert.
func (Insert) ReferencedColumns() []expression.ColumnRefExpr { return nil }
