// Package planner defines the LogicalPlan tree the binder produces and the
// optimizer rewrites, grounded on the teacher's
// server/innodb/plan.LogicalPlan/BaseLogicalPlan (logical_plan.go) but
// trimmed to a plain operator+children tree — the teacher's richer
// interface (Schema/Init/"4P"-style builder methods) belongs to a full
// physical planner, out of scope here.
package planner

import "github.com/kipsql-go/kipsql/planner/operator"

// LogicalPlan is a tree node: an Operator plus its ordered children.
type LogicalPlan struct {
	Operator operator.Operator
	Children []*LogicalPlan
}

// New builds a plan node with the given operator and children.
func New(op operator.Operator, children ...*LogicalPlan) *LogicalPlan {
	return &LogicalPlan{Operator: op, Children: children}
}

// Child returns the plan's nth child, or nil if out of range.
func (p *LogicalPlan) Child(i int) *LogicalPlan {
	if i < 0 || i >= len(p.Children) {
		return nil
	}
	return p.Children[i]
}
