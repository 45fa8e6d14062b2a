package nodes

// BetweenCapable is implemented by every node that can be the tested
// expression of a range predicate. The Predications mixin provides it.
type BetweenCapable interface {
	Between(lower, upper any) *BetweenNode
	NotBetween(lower, upper any) *BetweenNode
}

// Predications gives a node the predicate builders with itself on the left.
// Embedders set self to the embedding node.
type Predications struct {
	self Node
}

// Between creates a BETWEEN predicate: (self BETWEEN lower AND upper).
// A nil bound is left unset and can be supplied later with Lower or Upper.
func (p Predications) Between(lower, upper any) *BetweenNode {
	return newBetween(p.self, optional(lower), optional(upper), false)
}

// NotBetween creates a NOT BETWEEN predicate: (self NOT BETWEEN lower AND upper).
func (p Predications) NotBetween(lower, upper any) *BetweenNode {
	return newBetween(p.self, optional(lower), optional(upper), true)
}

// Comparisons against a value. val is wrapped with Literal, so nodes such
// as another column compare directly.

func (p Predications) Eq(val any) *ComparisonNode    { return p.compare(val, OpEq) }
func (p Predications) NotEq(val any) *ComparisonNode { return p.compare(val, OpNotEq) }
func (p Predications) Gt(val any) *ComparisonNode    { return p.compare(val, OpGt) }
func (p Predications) GtEq(val any) *ComparisonNode  { return p.compare(val, OpGtEq) }
func (p Predications) Lt(val any) *ComparisonNode    { return p.compare(val, OpLt) }
func (p Predications) LtEq(val any) *ComparisonNode  { return p.compare(val, OpLtEq) }

func (p Predications) compare(val any, op ComparisonOp) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), op)
}

func (p Predications) IsNull() *UnaryNode    { return newUnary(p.self, OpIsNull) }
func (p Predications) IsNotNull() *UnaryNode { return newUnary(p.self, OpIsNotNull) }

// As aliases self in a projection list.
func (p Predications) As(name string) *AliasNode {
	return NewAliasNode(p.self, name)
}

func (p Predications) Asc() *OrderingNode  { return &OrderingNode{Expr: p.self, Direction: Asc} }
func (p Predications) Desc() *OrderingNode { return &OrderingNode{Expr: p.self, Direction: Desc} }
