package operator

import "github.com/kipsql-go/kipsql/expression"

// Distinct deduplicates its child's output rows by the full projection
// list (spec §4.3 step 10: "DISTINCT → distinct operator over the
// projection list").
type Distinct struct{ base }

func (Distinct) isOperator()                                  {}
func (Distinct) ReferencedColumns() []expression.ColumnRefExpr { return nil }
