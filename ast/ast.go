// Package ast defines the input AST shapes the binder consumes. The SQL
// parser itself is an external collaborator (out of scope here); this
// package exists so the binder has concrete Go types to pattern-match on
// and so tests can construct queries without a real parser, mirroring the
// teacher's server/innodb/sqlparser.Expr/SQLNode shape but fleshed out to
// the statement/select/join/expr grammar the spec assumes.
package ast

// ObjectName is a dotted identifier path, 1-3 parts (e.g. table,
// schema.table, or catalog.schema.table).
type ObjectName []string

// String joins the parts with '.' for diagnostics.
func (n ObjectName) String() string {
	out := ""
	for i, p := range n {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

// Query is the top-level statement the binder binds: a set expression plus
// the ORDER BY / LIMIT / OFFSET clauses that apply to its result.
type Query struct {
	With    *WithClause
	Body    SetExpr
	OrderBy []OrderByExpr
	Limit   Expr
	Offset  Expr
}

// WithClause is accepted syntactically but CTEs are out of scope (spec
// Non-goals); kept only so Query's shape matches what a real parser emits.
type WithClause struct {
	CTEs []CTE
}

// CTE names one common table expression.
type CTE struct {
	Alias string
	Query *Query
}

// SetExpr is the tagged union of query bodies: a Select, a parenthesized
// nested query, or set operations over nested SetExprs. Only Select and
// QueryExpr are bound today; nested set operations (UNION/INTERSECT) are
// Non-goals.
type SetExpr interface{ isSetExpr() }

func (*Select) isSetExpr() {}

// QueryExpr is a parenthesized query used as a SetExpr, e.g. `(SELECT ...)`
// standing in for a top-level query body. Binding it just recurses into
// the wrapped Query.
type QueryExpr struct{ Query *Query }

func (*QueryExpr) isSetExpr() {}

// Select is a single SELECT ... FROM ... WHERE ... GROUP BY ... HAVING ...
type Select struct {
	Distinct   bool
	Projection []SelectItem
	From       []TableWithJoins
	Selection  Expr
	GroupBy    []Expr
	Having     Expr
}

// TableWithJoins is one FROM-list entry: a base relation plus zero or more
// joins chained onto it.
type TableWithJoins struct {
	Relation TableFactor
	Joins    []Join
}

// TableFactor names a table and an optional alias. Only the bare
// table-name shape is supported (no derived tables/subqueries in FROM).
type TableFactor struct {
	Name  ObjectName
	Alias *string
}

// Join pairs a joined relation with the operator connecting it to its
// predecessor in the FROM list.
type Join struct {
	Relation TableFactor
	Operator JoinOperator
}

// JoinOperator enumerates the join kinds the binder recognizes.
type JoinOperator struct {
	Kind       JoinKind
	Constraint Expr // ON predicate; nil for Cross
}

// JoinKind is the closed set of join flavors.
type JoinKind int

const (
	Inner JoinKind = iota
	LeftOuter
	RightOuter
	FullOuter
	Cross
)

// Expr is the tagged union of scalar expression syntax.
type Expr interface{ isExpr() }

// BinaryOp is `left op right`.
type BinaryOp struct {
	Left  Expr
	Op    string
	Right Expr
}

func (BinaryOp) isExpr() {}

// UnaryOp is `op expr`.
type UnaryOp struct {
	Op   string
	Expr Expr
}

func (UnaryOp) isExpr() {}

// Value is a literal (string/number/bool/null), carried as raw source text
// plus a kind tag; the binder parses it into a typed constant.
type Value struct {
	Kind ValueKind
	Raw  string
}

func (Value) isExpr() {}

// ValueKind tags the lexical shape of a Value literal.
type ValueKind int

const (
	NumberValue ValueKind = iota
	StringValue
	BoolValue
	NullValue
)

// Identifier is a single unqualified name (`col`).
type Identifier struct{ Name string }

func (Identifier) isExpr() {}

// CompoundIdentifier is a qualified name (`table.col`).
type CompoundIdentifier struct{ Parts []string }

func (CompoundIdentifier) isExpr() {}

// Function is a call `name(args...)`, optionally DISTINCT — the shape
// aggregate calls and scalar builtins both use.
type Function struct {
	Name     string
	Args     []Expr
	Distinct bool
}

func (Function) isExpr() {}

// IsNull is `expr IS NULL`.
type IsNull struct{ Expr Expr }

func (IsNull) isExpr() {}

// Cast is `CAST(expr AS type)`; TypeName is the raw, unparsed type token
// (e.g. "INTEGER"), left to the binder to resolve against the logical
// type lattice.
type Cast struct {
	Expr     Expr
	TypeName string
}

func (Cast) isExpr() {}

// SelectItem is the tagged union of projection-list entries.
type SelectItem interface{ isSelectItem() }

// UnnamedExpr is a bare projection expression with no alias.
type UnnamedExpr struct{ Expr Expr }

func (UnnamedExpr) isSelectItem() {}

// ExprWithAlias is `expr AS alias`.
type ExprWithAlias struct {
	Expr  Expr
	Alias string
}

func (ExprWithAlias) isSelectItem() {}

// Wildcard is a bare `*` or `table.*` projection item.
type Wildcard struct{ Qualifier *string }

func (Wildcard) isSelectItem() {}

// OrderByExpr is one ORDER BY clause entry.
type OrderByExpr struct {
	Expr       Expr
	Asc        *bool
	NullsFirst *bool
}

// Insert is `INSERT [OVERWRITE] INTO table [(columns...)] ...`. Only the
// shape the supplemented InsertOperator needs is modeled; VALUES-list
// binding is out of scope here (execution's job).
type Insert struct {
	TableName   ObjectName
	IsOverwrite bool
	Columns     []string
}

