// Package terror provides a small classed-error registry in the style of
// the teacher codebase's terror.ClassX.New(code, msg) convention (see
// resolver/errors.go and schemas/table.go in the retrieved pack). The
// upstream terror package itself is not part of this module's dependency
// surface, so the registry is reproduced locally.
package terror

import (
	"errors"
	"fmt"
)

// ErrCode identifies an error within a Class's private numbering space.
type ErrCode int

// Class groups related error codes, e.g. ClassBinder, ClassCatalog.
type Class struct {
	name string
}

// NewClass registers a new error class identified by name.
func NewClass(name string) *Class {
	return &Class{name: name}
}

// Error is a classed, coded error with a message template applied at
// construction or at call time via WithArgs.
type Error struct {
	class   *Class
	code    ErrCode
	message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s:%d]%s", e.class.name, e.code, e.message)
}

// New registers a template error for the class; call WithArgs to format it
// with the offending identifiers at the call site.
func (c *Class) New(code ErrCode, message string) *Error {
	return &Error{class: c, code: code, message: message}
}

// WithArgs renders the error's message template with the given arguments,
// returning a new *Error sharing the same class/code.
func (e *Error) WithArgs(args ...interface{}) *Error {
	return &Error{class: e.class, code: e.code, message: fmt.Sprintf(e.message, args...)}
}

// Code returns the error's code within its class.
func (e *Error) Code() ErrCode { return e.code }

// Is reports whether err is (or wraps) a *terror.Error of this template's
// class and code.
func (e *Error) Is(err error) bool {
	var te *Error
	if !errors.As(err, &te) {
		return false
	}
	return te.class == e.class && te.code == e.code
}
