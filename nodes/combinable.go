package nodes

// Combinable gives predicates And, Or and Not. Embedders set self to the
// embedding node.
type Combinable struct {
	self Node
}

func (c Combinable) And(other Node) *AndNode {
	n := &AndNode{Left: c.self, Right: other}
	n.self = n
	return n
}

// Or is always grouped, so a OR b can be ANDed without losing precedence.
func (c Combinable) Or(other Node) *GroupingNode {
	or := &OrNode{Left: c.self, Right: other}
	or.self = or
	return Grouping(or)
}

// Not wraps self in NOT (...). On a BetweenNode prefer Negate, which keeps
// a single NOT BETWEEN predicate.
func (c Combinable) Not() *NotNode {
	n := &NotNode{Expr: c.self}
	n.self = n
	return n
}

// AndNode is left AND right.
type AndNode struct {
	Combinable
	Left, Right Node
}

// OrNode is left OR right. Combinable.Or returns it inside a GroupingNode.
type OrNode struct {
	Combinable
	Left, Right Node
}

// NotNode is NOT (expr).
type NotNode struct {
	Combinable
	Expr Node
}

// GroupingNode parenthesizes Expr.
type GroupingNode struct {
	Combinable
	Expr Node
}

func (n *AndNode) Accept(v Visitor) string      { return v.VisitAnd(n) }
func (n *OrNode) Accept(v Visitor) string       { return v.VisitOr(n) }
func (n *NotNode) Accept(v Visitor) string      { return v.VisitNot(n) }
func (n *GroupingNode) Accept(v Visitor) string { return v.VisitGrouping(n) }

func Grouping(expr Node) *GroupingNode {
	g := &GroupingNode{Expr: expr}
	g.self = g
	return g
}
