package types

import "go.uber.org/atomic"

// ColumnId is a process-wide unique, monotonically increasing identifier
// assigned to every ColumnCatalog entry.
type ColumnId uint64

// idCounter is the package-level generator backing IdGenerator. Tests must
// not assume particular values, only uniqueness and monotonicity within a
// run, per the spec's design notes.
var idCounter atomic.Uint64

// IdGenerator hands out the next process-wide ColumnId.
func IdGenerator() ColumnId {
	return ColumnId(idCounter.Inc())
}
