package nodes

// ComparisonOp is a binary comparison operator.
type ComparisonOp int

const (
	OpEq ComparisonOp = iota
	OpNotEq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
)

// ComparisonNode is Left Op Right, e.g. "users"."age" >= 18.
type ComparisonNode struct {
	Combinable
	Left  Node
	Right Node
	Op    ComparisonOp
}

// NewComparisonNode builds left op right.
func NewComparisonNode(left, right Node, op ComparisonOp) *ComparisonNode {
	n := &ComparisonNode{Left: left, Right: right, Op: op}
	n.self = n
	return n
}

func (n *ComparisonNode) Accept(v Visitor) string { return v.VisitComparison(n) }

// UnaryOp is a postfix null test.
type UnaryOp int

const (
	OpIsNull UnaryOp = iota
	OpIsNotNull
)

// UnaryNode is Expr IS [NOT] NULL.
type UnaryNode struct {
	Combinable
	Expr Node
	Op   UnaryOp
}

func newUnary(expr Node, op UnaryOp) *UnaryNode {
	n := &UnaryNode{Expr: expr, Op: op}
	n.self = n
	return n
}

func (n *UnaryNode) Accept(v Visitor) string { return v.VisitUnary(n) }
