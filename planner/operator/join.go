package operator

import "github.com/kipsql-go/kipsql/expression"

// JoinType is the closed set of supported join kinds (spec §4.3,
// bind_join: "Only INNER/LEFT/RIGHT/FULL OUTER/CROSS supported").
type JoinType int

const (
	Inner JoinType = iota
	LeftOuter
	RightOuter
	FullOuter
	Cross
)

// JoinKeyPair is one equi-join key extracted from an ON predicate, always
// stored (left, right) regardless of the textual operand order (spec §4.3,
// extract_join_keys).
type JoinKeyPair struct {
	Left  expression.ColumnRefExpr
	Right expression.ColumnRefExpr
}

// JoinCondition is either an ON condition (equi-keys plus a residual
// filter) or None for a CROSS join.
type JoinCondition struct {
	HasOn  bool
	On     []JoinKeyPair
	Filter expression.ScalarExpression // nil if no residual predicate
}

// Join combines its two children (left = Children[0], right = Children[1]
// on the owning LogicalPlan) under Condition/Type.
type Join struct {
	base
	Condition JoinCondition
	Type      JoinType
}

func (Join) isOperator() {}

func (j Join) ReferencedColumns() []expression.ColumnRefExpr {
	var out []expression.ColumnRefExpr
	for _, pair := range j.Condition.On {
		out = append(out, pair.Left, pair.Right)
	}
	if j.Condition.Filter != nil {
		out = append(out, expression.ReferencedColumns(j.Condition.Filter)...)
	}
	return out
}
