package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Value is the tagged-union representation of a scalar runtime value. Each
// logical type has exactly one concrete implementation below; values are
// immutable once constructed and safe to share across tuples.
type Value interface {
	// Type returns the logical type carried by this value.
	Type() LogicalType
	// IsNull reports whether this value represents SQL NULL.
	IsNull() bool
	// String renders the value for debugging/Explain output.
	String() string
	// Compare orders this value against another of a compatible type.
	// -1/0/1 as usual; NULL compares less than any non-null value.
	Compare(other Value) int
}

// None constructs the null representation for the given logical type,
// mirroring the teacher's DataValue::none(col.datatype()) used when a
// column is absent from an inserted tuple.
func None(t LogicalType) Value {
	return nullValue{ty: t}
}

type nullValue struct{ ty LogicalType }

func (v nullValue) Type() LogicalType { return v.ty }
func (v nullValue) IsNull() bool      { return true }
func (v nullValue) String() string    { return "NULL" }
func (v nullValue) Compare(other Value) int {
	if other.IsNull() {
		return 0
	}
	return -1
}

type boolValue struct{ v bool }

func NewBool(v bool) Value       { return boolValue{v} }
func (v boolValue) Type() LogicalType { return Boolean }
func (v boolValue) IsNull() bool      { return false }
func (v boolValue) String() string    { return fmt.Sprintf("%t", v.v) }
func (v boolValue) Bool() bool        { return v.v }
func (v boolValue) Compare(other Value) int {
	if other.IsNull() {
		return 1
	}
	o := other.(boolValue)
	switch {
	case v.v == o.v:
		return 0
	case !v.v:
		return -1
	default:
		return 1
	}
}

// IntValue backs Tinyint/Smallint/Integer/Bigint (signed family); the exact
// logical type travels alongside the int64 payload so return_type() stays
// faithful to the original column/cast type.
type IntValue struct {
	v  int64
	ty LogicalType
}

func NewInt(v int64, ty LogicalType) IntValue { return IntValue{v: v, ty: ty} }
func (v IntValue) Type() LogicalType          { return v.ty }
func (v IntValue) IsNull() bool               { return false }
func (v IntValue) String() string             { return fmt.Sprintf("%d", v.v) }
func (v IntValue) Int64() int64               { return v.v }
func (v IntValue) Compare(other Value) int {
	if other.IsNull() {
		return 1
	}
	o := other.(IntValue)
	switch {
	case v.v < o.v:
		return -1
	case v.v > o.v:
		return 1
	default:
		return 0
	}
}

// UintValue backs the unsigned integer family.
type UintValue struct {
	v  uint64
	ty LogicalType
}

func NewUint(v uint64, ty LogicalType) UintValue { return UintValue{v: v, ty: ty} }
func (v UintValue) Type() LogicalType            { return v.ty }
func (v UintValue) IsNull() bool                 { return false }
func (v UintValue) String() string               { return fmt.Sprintf("%d", v.v) }
func (v UintValue) Uint64() uint64               { return v.v }
func (v UintValue) Compare(other Value) int {
	if other.IsNull() {
		return 1
	}
	o := other.(UintValue)
	switch {
	case v.v < o.v:
		return -1
	case v.v > o.v:
		return 1
	default:
		return 0
	}
}

// FloatValue backs Float/Double.
type FloatValue struct {
	v  float64
	ty LogicalType
}

func NewFloat(v float64, ty LogicalType) FloatValue { return FloatValue{v: v, ty: ty} }
func (v FloatValue) Type() LogicalType              { return v.ty }
func (v FloatValue) IsNull() bool                   { return false }
func (v FloatValue) String() string                 { return fmt.Sprintf("%v", v.v) }
func (v FloatValue) Float64() float64               { return v.v }
func (v FloatValue) Compare(other Value) int {
	if other.IsNull() {
		return 1
	}
	o := other.(FloatValue)
	switch {
	case v.v < o.v:
		return -1
	case v.v > o.v:
		return 1
	default:
		return 0
	}
}

// DecimalValue backs Decimal, using shopspring/decimal for exact arithmetic
// rather than the float approximation the teacher's basicValue fell back to.
type DecimalValue struct{ v decimal.Decimal }

func NewDecimal(v decimal.Decimal) DecimalValue { return DecimalValue{v} }
func (v DecimalValue) Type() LogicalType        { return Decimal }
func (v DecimalValue) IsNull() bool             { return false }
func (v DecimalValue) String() string           { return v.v.String() }
func (v DecimalValue) Decimal() decimal.Decimal { return v.v }
func (v DecimalValue) Compare(other Value) int {
	if other.IsNull() {
		return 1
	}
	return v.v.Cmp(other.(DecimalValue).v)
}

// VarcharValue backs Varchar.
type VarcharValue struct{ v string }

func NewVarchar(v string) VarcharValue    { return VarcharValue{v} }
func (v VarcharValue) Type() LogicalType  { return Varchar }
func (v VarcharValue) IsNull() bool       { return false }
func (v VarcharValue) String() string     { return v.v }
func (v VarcharValue) Compare(other Value) int {
	if other.IsNull() {
		return 1
	}
	o := other.(VarcharValue)
	switch {
	case v.v < o.v:
		return -1
	case v.v > o.v:
		return 1
	default:
		return 0
	}
}

// DateValue backs Date.
type DateValue struct{ v time.Time }

func NewDate(v time.Time) DateValue  { return DateValue{v} }
func (v DateValue) Type() LogicalType { return Date }
func (v DateValue) IsNull() bool      { return false }
func (v DateValue) String() string    { return v.v.Format("2006-01-02") }
func (v DateValue) Compare(other Value) int {
	if other.IsNull() {
		return 1
	}
	return compareTime(v.v, other.(DateValue).v)
}

// DateTimeValue backs DateTime.
type DateTimeValue struct{ v time.Time }

func NewDateTime(v time.Time) DateTimeValue { return DateTimeValue{v} }
func (v DateTimeValue) Type() LogicalType   { return DateTime }
func (v DateTimeValue) IsNull() bool        { return false }
func (v DateTimeValue) String() string      { return v.v.Format("2006-01-02 15:04:05") }
func (v DateTimeValue) Compare(other Value) int {
	if other.IsNull() {
		return 1
	}
	return compareTime(v.v, other.(DateTimeValue).v)
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
