package nodes

// Attribute is a column of a table or table alias. Relation is a *Table or
// *TableAlias, or nil for an unqualified column.
type Attribute struct {
	Predications
	Combinable
	Name     string
	Relation Node
}

// NewAttribute returns the column name of relation.
func NewAttribute(relation Node, name string) *Attribute {
	a := &Attribute{Name: name, Relation: relation}
	a.Predications.self = a
	a.Combinable.self = a
	return a
}

func (a *Attribute) Accept(v Visitor) string { return v.VisitAttribute(a) }

// Identifier is a bare name such as a column outside any table context.
// It is quoted like any other identifier.
type Identifier struct {
	Predications
	Combinable
	Name string
}

// Ident returns an Identifier for name.
func Ident(name string) *Identifier {
	n := &Identifier{Name: name}
	n.Predications.self = n
	n.Combinable.self = n
	return n
}

func (n *Identifier) Accept(v Visitor) string { return v.VisitIdentifier(n) }

// AliasNode is Expr AS Name. It is only valid in a projection list, so it
// has no predicate or logical builders.
type AliasNode struct {
	Expr Node
	Name string
}

// NewAliasNode returns expr AS name.
func NewAliasNode(expr Node, name string) *AliasNode {
	return &AliasNode{Expr: expr, Name: name}
}

func (n *AliasNode) Accept(v Visitor) string { return v.VisitAlias(n) }

// OrderDirection is ASC or DESC.
type OrderDirection int

const (
	Asc OrderDirection = iota
	Desc
)

// OrderingNode is one ORDER BY term.
type OrderingNode struct {
	Expr      Node
	Direction OrderDirection
}

func (n *OrderingNode) Accept(v Visitor) string { return v.VisitOrdering(n) }
