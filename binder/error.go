// Package binder converts an AST query into a LogicalPlan: name resolution
// against a catalog, aggregate/group-by/having/order-by legality, join-key
// extraction and join-nullability propagation, grounded on the original
// project's binder/select.rs and binder/aggregate.rs, reimplemented in the
// teacher's error-handling idiom (a terror-classed error plus
// juju/errors.Trace wrapping as it propagates, mirroring
// resolver/errors.go's use of classed errors).
package binder

import (
	"fmt"

	"github.com/kipsql-go/kipsql/internal/terror"
)

// ErrorKind is the closed set of error categories bind_query surfaces.
type ErrorKind int

const (
	InvalidTable ErrorKind = iota
	InvalidTableName
	InvalidColumn
	AggMiss
	Unsupported
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidTable:
		return "InvalidTable"
	case InvalidTableName:
		return "InvalidTableName"
	case InvalidColumn:
		return "InvalidColumn"
	case AggMiss:
		return "AggMiss"
	case Unsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// classBinder is this package's terror class; each ErrorKind owns a code
// within it, mirroring the teacher's one-class-per-package convention.
var classBinder = terror.NewClass("binder")

var codeByKind = map[ErrorKind]terror.ErrCode{
	InvalidTable:     1,
	InvalidTableName: 2,
	InvalidColumn:    3,
	AggMiss:          4,
	Unsupported:      5,
}

// Error is the error type returned by every binder operation: a terror.Error
// carrying this package's class/code, plus the closed ErrorKind taxonomy
// callers can type-switch on directly.
type Error struct {
	kind ErrorKind
	inner *terror.Error
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	tpl := classBinder.New(codeByKind[kind], "%s")
	return &Error{kind: kind, inner: tpl.WithArgs(fmt.Sprintf(format, args...))}
}

func (e *Error) Error() string  { return fmt.Sprintf("[%s] %s", e.kind, e.inner.Error()) }
func (e *Error) Kind() ErrorKind { return e.kind }
func (e *Error) Unwrap() error   { return e.inner }
