// Package between adds BETWEEN / NOT BETWEEN range predicates to a fluent,
// Arel-style SQL builder and renders them for PostgreSQL, MySQL, SQLite and
// SQL Server.
//
// This package re-exports the commonly used types and functions from the
// subpackages:
//   - github.com/bawdo/between/nodes (AST nodes, including BetweenNode)
//   - github.com/bawdo/between/visitors (SQL generation per dialect)
//   - github.com/bawdo/between/managers (query builders)
//   - github.com/bawdo/between/plugins/rangefilter (range-restricting transformer)
//
// Build a predicate from any expression:
//
//	between.Between(between.Ident("age"), 18, 65)          // ("age" BETWEEN 18 AND 65)
//	users.Col("age").NotBetween(18, 65)                     // ("users"."age" NOT BETWEEN 18 AND 65)
//	between.Between(between.Ident("age")).Lower(18).Upper(65)
package between

import (
	"github.com/bawdo/between/managers"
	"github.com/bawdo/between/nodes"
	"github.com/bawdo/between/visitors"
)

// --- Range predicates ---

// BetweenNode is an immutable (expr [NOT] BETWEEN lower AND upper) predicate.
type BetweenNode = nodes.BetweenNode

// BetweenCapable is implemented by expressions that gain Between/NotBetween methods.
type BetweenCapable = nodes.BetweenCapable

// ErrIncompleteBetween reports a BETWEEN predicate missing an operand.
var ErrIncompleteBetween = nodes.ErrIncompleteBetween

// Between builds a BETWEEN predicate, or merges bounds into an existing one.
// See nodes.Between.
func Between(expr any, bounds ...any) *nodes.BetweenNode {
	return nodes.Between(expr, bounds...)
}

// NotBetween builds a NOT BETWEEN predicate, or merges and negates an
// existing one. See nodes.NotBetween.
func NotBetween(expr any, bounds ...any) *nodes.BetweenNode {
	return nodes.NotBetween(expr, bounds...)
}

// --- Core node types ---

// Node is the base interface all AST nodes implement.
type Node = nodes.Node

// Table represents a SQL table reference.
type Table = nodes.Table

// Attribute represents a column reference (e.g., table.column).
type Attribute = nodes.Attribute

// NewTable creates a new table reference.
func NewTable(name string) *nodes.Table {
	return nodes.NewTable(name)
}

// Ident creates a bare identifier such as a column name.
func Ident(name string) *nodes.Identifier {
	return nodes.Ident(name)
}

// Literal wraps a Go value as a SQL literal (numbers, strings, times).
func Literal(value any) nodes.Node {
	return nodes.Literal(value)
}

// Lit creates a raw SQL fragment that is rendered verbatim.
func Lit(raw string) *nodes.SqlLiteral {
	return nodes.Lit(raw)
}

// BindParam creates a parameterised placeholder (e.g., $1, ?).
func BindParam(value any) *nodes.BindParamNode {
	return nodes.NewBindParam(value)
}

// --- Managers ---

// SelectManager provides a fluent API for building SELECT queries.
type SelectManager = managers.SelectManager

// DeleteManager provides a fluent API for building DELETE queries.
type DeleteManager = managers.DeleteManager

// NewSelect creates a new SelectManager with the given table as FROM.
func NewSelect(from nodes.Node) *managers.SelectManager {
	return managers.NewSelectManager(from)
}

// NewDelete creates a new DeleteManager for deleting from the given table.
func NewDelete(from nodes.Node) *managers.DeleteManager {
	return managers.NewDeleteManager(from)
}

// --- Visitors ---

// NewPostgresVisitor creates a new PostgreSQL visitor.
func NewPostgresVisitor(opts ...visitors.Option) *visitors.PostgresVisitor {
	return visitors.NewPostgresVisitor(opts...)
}

// NewMySQLVisitor creates a new MySQL visitor.
func NewMySQLVisitor(opts ...visitors.Option) *visitors.MySQLVisitor {
	return visitors.NewMySQLVisitor(opts...)
}

// NewSQLiteVisitor creates a new SQLite visitor.
func NewSQLiteVisitor(opts ...visitors.Option) *visitors.SQLiteVisitor {
	return visitors.NewSQLiteVisitor(opts...)
}

// NewMSSQLVisitor creates a new SQL Server visitor.
func NewMSSQLVisitor(opts ...visitors.Option) *visitors.MSSQLVisitor {
	return visitors.NewMSSQLVisitor(opts...)
}

// WithParams enables parameterised mode for visitors.
func WithParams() visitors.Option {
	return visitors.WithParams()
}

// WithoutParams disables parameterised mode; values are inlined.
func WithoutParams() visitors.Option {
	return visitors.WithoutParams()
}

// Render renders node with v. It panics if node contains an incomplete
// BETWEEN predicate; use a manager's ToSQL to get an error instead.
func Render(v nodes.Visitor, node nodes.Node) string {
	if p, ok := v.(nodes.Parameterizer); ok {
		p.Reset()
	}
	return node.Accept(v)
}
