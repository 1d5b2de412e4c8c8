// Package types defines the logical type lattice and value representation
// shared by the catalog, expression and planner packages.
package types

// LogicalType is the closed set of scalar types the planner reasons about.
type LogicalType int

const (
	Invalid LogicalType = iota
	SqlNull
	Boolean
	Tinyint
	Smallint
	Integer
	Bigint
	UTinyint
	USmallint
	UInteger
	UBigint
	Float
	Double
	Varchar
	Date
	DateTime
	Decimal
)

func (t LogicalType) String() string {
	switch t {
	case Invalid:
		return "INVALID"
	case SqlNull:
		return "NULL"
	case Boolean:
		return "BOOLEAN"
	case Tinyint:
		return "TINYINT"
	case Smallint:
		return "SMALLINT"
	case Integer:
		return "INTEGER"
	case Bigint:
		return "BIGINT"
	case UTinyint:
		return "TINYINT UNSIGNED"
	case USmallint:
		return "SMALLINT UNSIGNED"
	case UInteger:
		return "INTEGER UNSIGNED"
	case UBigint:
		return "BIGINT UNSIGNED"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case Varchar:
		return "VARCHAR"
	case Date:
		return "DATE"
	case DateTime:
		return "DATETIME"
	case Decimal:
		return "DECIMAL"
	default:
		return "UNKNOWN"
	}
}

// rank orders the lattice for widening: a binary op over (a, b) widens to
// whichever of a, b has the larger rank. Signed and unsigned types of the
// same width share a rank; on a tie the left operand's type is kept.
var rank = map[LogicalType]int{
	SqlNull:    0,
	Boolean:    1,
	Tinyint:    2,
	UTinyint:   2,
	Smallint:   3,
	USmallint:  3,
	Integer:    4,
	UInteger:   4,
	Bigint:     5,
	UBigint:    5,
	Float:      6,
	Double:     7,
	Decimal:    8,
	Varchar:    9,
	Date:       10,
	DateTime:   11,
}

// WidenWith returns the result of widening t with other along the numeric
// lattice. Varchar/Date/DateTime never widen into a numeric type or into
// each other; mixing them with anything but themselves or SqlNull yields
// Invalid, leaving the caller (expression return-type computation) to
// reject the combination.
func (t LogicalType) WidenWith(other LogicalType) LogicalType {
	if t == other {
		return t
	}
	if t == SqlNull {
		return other
	}
	if other == SqlNull {
		return t
	}
	if isNonNumeric(t) || isNonNumeric(other) {
		return Invalid
	}
	if rank[other] > rank[t] {
		return other
	}
	return t
}

func isNonNumeric(t LogicalType) bool {
	switch t {
	case Varchar, Date, DateTime, Boolean:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t participates in the numeric widening lattice.
func (t LogicalType) IsNumeric() bool {
	switch t {
	case Tinyint, Smallint, Integer, Bigint, UTinyint, USmallint, UInteger, UBigint, Float, Double, Decimal:
		return true
	default:
		return false
	}
}

// BinaryOperator enumerates the binary operator families the expression
// algebra supports.
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	Mod
	Eq
	NotEq
	Gt
	Lt
	GtEq
	LtEq
	And
	Or
)

func (op BinaryOperator) IsComparison() bool {
	switch op {
	case Eq, NotEq, Gt, Lt, GtEq, LtEq:
		return true
	default:
		return false
	}
}

func (op BinaryOperator) IsLogical() bool {
	return op == And || op == Or
}

// UnaryOperator enumerates the unary operator families.
type UnaryOperator int

const (
	Plus UnaryOperator = iota
	Minus
	Not
)

// BinaryResultType computes the result type of a binary expression per the
// widening lattice: comparisons and logical operators always yield Boolean,
// arithmetic widens its operands.
func BinaryResultType(op BinaryOperator, left, right LogicalType) LogicalType {
	if op.IsComparison() || op.IsLogical() {
		return Boolean
	}
	return left.WidenWith(right)
}

// UnaryResultType computes the result type of a unary expression: Not always
// yields Boolean, arithmetic unary preserves the operand type.
func UnaryResultType(op UnaryOperator, inner LogicalType) LogicalType {
	if op == Not {
		return Boolean
	}
	return inner
}
