// Package expression implements the scalar expression algebra: the tagged
// variant set the binder emits and the optimizer rewrites, grounded on the
// teacher's plan.Expression interface (server/innodb/plan/expression.go)
// but generalized from an Eval-first interpreter shape to the
// typed/structural-equality shape the spec requires.
package expression

import (
	"fmt"

	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/types"
)

// ScalarExpression is the central tagged variant. Every concrete type below
// implements it; type-switches in ops.go and equality.go dispatch
// on the concrete type rather than via an Eval-style virtual method, since
// this package never evaluates expressions — that's execution's job, an
// external collaborator.
type ScalarExpression interface {
	fmt.Stringer
	isScalarExpression()
}

// Constant wraps a literal value.
type Constant struct {
	Value types.Value
}

func (Constant) isScalarExpression() {}
func (c Constant) String() string    { return c.Value.String() }

// ColumnRefExpr references a catalog column by its shared handle.
type ColumnRefExpr struct {
	Column catalog.ColumnRef
}

func (ColumnRefExpr) isScalarExpression() {}
func (c ColumnRefExpr) String() string {
	if c.Column.TableName != nil {
		return *c.Column.TableName + "." + c.Column.Name
	}
	return c.Column.Name
}

// InputRefType distinguishes which monotonic counter an InputRef was
// allocated from, matching the binder context's independent AggCall/
// GroupBy counters (spec §3).
type InputRefType int

const (
	InputRefAggCall InputRefType = iota
	InputRefGroupBy
)

// InputRef is a positional reference into an input tuple, created when the
// binder rewrites an AggCall or a grouped expression in place. Kind records
// which of the binder's two independent counters (AggCall/GroupBy)
// allocated Index, so the optimizer can later map it back to the concrete
// expression it replaced (Operator.AggMappingColRefs).
type InputRef struct {
	Index int
	Ty    types.LogicalType
	Kind  InputRefType
}

func (InputRef) isScalarExpression() {}
func (r InputRef) String() string    { return fmt.Sprintf("#%d", r.Index) }

// Alias wraps an inner expression with a select-list alias name.
type Alias struct {
	Expr  ScalarExpression
	Name  string
}

func (Alias) isScalarExpression() {}
func (a Alias) String() string    { return a.Expr.String() + " AS " + a.Name }

// TypeCast casts its inner expression to Target.
type TypeCast struct {
	Expr   ScalarExpression
	Target types.LogicalType
}

func (TypeCast) isScalarExpression() {}
func (c TypeCast) String() string    { return fmt.Sprintf("CAST(%s AS %s)", c.Expr, c.Target) }

// IsNullExpr tests its inner expression for SQL NULL.
type IsNullExpr struct {
	Expr ScalarExpression
}

func (IsNullExpr) isScalarExpression() {}
func (e IsNullExpr) String() string    { return e.Expr.String() + " IS NULL" }

// Unary applies a unary operator to Expr.
type Unary struct {
	Op   types.UnaryOperator
	Expr ScalarExpression
	Ty   types.LogicalType
}

func (Unary) isScalarExpression() {}
func (u Unary) String() string    { return fmt.Sprintf("(%s %s)", unaryOpStr(u.Op), u.Expr) }

// Binary applies a binary operator to Left and Right.
type Binary struct {
	Op    types.BinaryOperator
	Left  ScalarExpression
	Right ScalarExpression
	Ty    types.LogicalType
}

func (Binary) isScalarExpression() {}
func (b Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, binaryOpStr(b.Op), b.Right)
}

// AggKind enumerates the supported aggregate functions.
type AggKind int

const (
	Count AggKind = iota
	Sum
	Avg
	Min
	Max
)

func (k AggKind) String() string {
	switch k {
	case Count:
		return "count"
	case Sum:
		return "sum"
	case Avg:
		return "avg"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "?"
	}
}

// AggCall is an aggregate function invocation. Invariant: no AggCall may
// appear inside another AggCall's Args (enforced by the binder, not here).
type AggCall struct {
	Kind     AggKind
	Distinct bool
	Args     []ScalarExpression
	Ty       types.LogicalType
}

func (AggCall) isScalarExpression() {}
func (a AggCall) String() string {
	d := ""
	if a.Distinct {
		d = "distinct "
	}
	return fmt.Sprintf("%s(%s%v)", a.Kind, d, a.Args)
}

func unaryOpStr(op types.UnaryOperator) string {
	switch op {
	case types.Plus:
		return "+"
	case types.Minus:
		return "-"
	case types.Not:
		return "NOT"
	default:
		return "?"
	}
}

func binaryOpStr(op types.BinaryOperator) string {
	switch op {
	case types.Add:
		return "+"
	case types.Sub:
		return "-"
	case types.Mul:
		return "*"
	case types.Div:
		return "/"
	case types.Mod:
		return "%"
	case types.Eq:
		return "="
	case types.NotEq:
		return "!="
	case types.Gt:
		return ">"
	case types.Lt:
		return "<"
	case types.GtEq:
		return ">="
	case types.LtEq:
		return "<="
	case types.And:
		return "AND"
	case types.Or:
		return "OR"
	default:
		return "?"
	}
}
