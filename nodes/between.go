package nodes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteBetween is returned (or wrapped in a panic during rendering)
// when a BetweenNode is missing its expression or one of its bounds.
var ErrIncompleteBetween = errors.New("incomplete BETWEEN expression")

// BetweenNode represents a BETWEEN or NOT BETWEEN range predicate:
//
//	(expr [NOT] BETWEEN lower AND upper)
//
// A BetweenNode is immutable. Expr, Lower, Upper and Negate return a new
// node (or the receiver when nothing changes), so a node can be shared
// between queries and rendered concurrently by separate visitors.
//
// Any of the three operands may be left unset while the node is being
// built up in stages:
//
//	nodes.Between(users.Col("age")).Lower(18).Upper(65)
//
// All three must be present by the time the node is rendered.
type BetweenNode struct {
	Combinable
	expr    Node
	lower   Node
	upper   Node
	negated bool
}

var _ BetweenCapable = (*Attribute)(nil)
var _ BetweenCapable = (*Identifier)(nil)
var _ BetweenCapable = (*LiteralNode)(nil)
var _ BetweenCapable = (*SqlLiteral)(nil)

// NewBetween creates a BetweenNode. Values that are not already nodes are
// wrapped with Literal; nil leaves the operand unset.
func NewBetween(expr, lower, upper any, negated bool) *BetweenNode {
	return newBetween(optional(expr), optional(lower), optional(upper), negated)
}

func newBetween(expr, lower, upper Node, negated bool) *BetweenNode {
	n := &BetweenNode{expr: expr, lower: lower, upper: upper, negated: negated}
	n.self = n
	return n
}

func (n *BetweenNode) Accept(v Visitor) string { return v.VisitBetween(n) }

// Expression returns the tested expression, or nil if unset.
func (n *BetweenNode) Expression() Node { return n.expr }

// LowerBound returns the lower bound, or nil if unset.
func (n *BetweenNode) LowerBound() Node { return n.lower }

// UpperBound returns the upper bound, or nil if unset.
func (n *BetweenNode) UpperBound() Node { return n.upper }

// IsNegated reports whether the node renders as NOT BETWEEN.
func (n *BetweenNode) IsNegated() bool { return n.negated }

// Expr returns a node testing val instead of the current expression.
func (n *BetweenNode) Expr(val any) *BetweenNode {
	v := optional(val)
	if Equal(v, n.expr) {
		return n
	}
	return newBetween(v, n.lower, n.upper, n.negated)
}

// Lower returns a node with val as the lower bound.
func (n *BetweenNode) Lower(val any) *BetweenNode {
	v := optional(val)
	if Equal(v, n.lower) {
		return n
	}
	return newBetween(n.expr, v, n.upper, n.negated)
}

// Upper returns a node with val as the upper bound.
func (n *BetweenNode) Upper(val any) *BetweenNode {
	v := optional(val)
	if Equal(v, n.upper) {
		return n
	}
	return newBetween(n.expr, n.lower, v, n.negated)
}

// Negate returns a node with the negation flag flipped. Unlike Not, which
// wraps any expression in NOT (...), the result still renders as a single
// [NOT] BETWEEN predicate.
func (n *BetweenNode) Negate() *BetweenNode {
	return newBetween(n.expr, n.lower, n.upper, !n.negated)
}

// Complete reports whether the expression and both bounds are set.
func (n *BetweenNode) Complete() bool {
	return n.expr != nil && n.lower != nil && n.upper != nil
}

// Validate returns an error wrapping ErrIncompleteBetween that names the
// missing operands, or nil if the node is complete.
func (n *BetweenNode) Validate() error {
	var missing []string
	if n.expr == nil {
		missing = append(missing, "expression")
	}
	if n.lower == nil {
		missing = append(missing, "lower bound")
	}
	if n.upper == nil {
		missing = append(missing, "upper bound")
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing %s", ErrIncompleteBetween, strings.Join(missing, ", "))
}

// Between builds a BETWEEN predicate from expr and up to two bounds
// (lower, then upper). Missing or nil bounds are left unset.
//
// If expr is already a *BetweenNode the call merges instead: the node keeps
// its expression and negation, and each bound is replaced only when a
// non-nil value is given.
func Between(expr any, bounds ...any) *BetweenNode {
	return between(expr, false, bounds)
}

// NotBetween is Between with the result negated. When merging into an
// existing *BetweenNode the merged node's flag is flipped with Negate.
func NotBetween(expr any, bounds ...any) *BetweenNode {
	return between(expr, true, bounds)
}

func between(expr any, negated bool, bounds []any) *BetweenNode {
	if len(bounds) > 2 {
		panic(fmt.Sprintf("between: expected at most 2 bounds, got %d", len(bounds)))
	}
	var lower, upper any
	if len(bounds) > 0 {
		lower = bounds[0]
	}
	if len(bounds) > 1 {
		upper = bounds[1]
	}

	existing, ok := expr.(*BetweenNode)
	if !ok || existing == nil {
		return NewBetween(expr, lower, upper, negated)
	}

	merged := existing
	if lower != nil {
		merged = merged.Lower(lower)
	}
	if upper != nil {
		merged = merged.Upper(upper)
	}
	if negated {
		merged = merged.Negate()
	}
	return merged
}
