// Package nodes is the SQL expression tree. Its centre is BetweenNode, the
// immutable range predicate; the other node kinds exist so a range has
// something to test and somewhere to live (a SELECT or DELETE).
package nodes

import "reflect"

// Node is anything a Visitor can render.
type Node interface {
	Accept(visitor Visitor) string
}

// Visitor renders each node kind. Every dialect implements all of it, so a
// new node kind cannot be rendered by one dialect and forgotten by another.
type Visitor interface {
	VisitTable(node *Table) string
	VisitTableAlias(node *TableAlias) string
	VisitAttribute(node *Attribute) string
	VisitIdentifier(node *Identifier) string
	VisitLiteral(node *LiteralNode) string
	VisitStar(node *StarNode) string
	VisitSqlLiteral(node *SqlLiteral) string
	VisitBindParam(node *BindParamNode) string
	VisitComparison(node *ComparisonNode) string
	VisitUnary(node *UnaryNode) string
	VisitAnd(node *AndNode) string
	VisitOr(node *OrNode) string
	VisitNot(node *NotNode) string
	VisitBetween(node *BetweenNode) string
	VisitGrouping(node *GroupingNode) string
	VisitAlias(node *AliasNode) string
	VisitOrdering(node *OrderingNode) string
	VisitSelectCore(node *SelectCore) string
	VisitDeleteStatement(node *DeleteStatement) string
}

// Parameterizer is the optional half of a visitor that collects bind values.
// Reset before rendering, then read Params.
type Parameterizer interface {
	Params() []any
	Reset()
}

// Literal turns a Go value into a node. Nodes pass through unchanged.
func Literal(val any) Node {
	if n, ok := val.(Node); ok {
		return n
	}
	return newLiteral(val)
}

// Null is an explicit SQL NULL. Builders read a bare nil as "not supplied".
func Null() *LiteralNode {
	return newLiteral(nil)
}

func newLiteral(val any) *LiteralNode {
	lit := &LiteralNode{Value: val}
	lit.Predications.self = lit
	lit.Combinable.self = lit
	return lit
}

// optional wraps val like Literal but keeps nil as nil (absent). A nil
// pointer typed as a node, such as (*Identifier)(nil), is absent too.
func optional(val any) Node {
	if val == nil {
		return nil
	}
	if n, ok := val.(Node); ok {
		if rv := reflect.ValueOf(n); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
	}
	return Literal(val)
}
