package binder

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// identCaser folds identifiers the way MySQL's default (case-insensitive,
// lower-cased-storage) identifier comparison does, independent of the
// runtime's locale.
var identCaser = cases.Lower(language.Und)

// foldIdent normalizes a table/column/alias name for lookup and
// comparison. Operator keywords (AND, =, CAST target names, ...) fold
// through strings.ToUpper directly since they're matched against fixed
// Go-side tables, not user identifiers.
func foldIdent(name string) string {
	return identCaser.String(name)
}
