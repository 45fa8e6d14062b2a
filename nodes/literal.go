package nodes

// LiteralNode wraps a raw Go value (string, int, float, bool, time, nil) as an AST node.
// Strings render as quoted SQL strings, not identifiers; use Ident for those.
type LiteralNode struct {
	Predications
	Combinable
	Value any
}

func (n *LiteralNode) Accept(v Visitor) string { return v.VisitLiteral(n) }

// StarNode represents a SQL star (*) or qualified star (table.*).
type StarNode struct {
	Table *Table // nil for unqualified *
}

func (n *StarNode) Accept(v Visitor) string { return v.VisitStar(n) }

// Star returns an unqualified StarNode representing SQL *.
func Star() *StarNode {
	return &StarNode{}
}

// SqlLiteral represents a raw SQL fragment injected verbatim into the query.
//
// SECURITY: Raw is rendered without escaping or parameterization. Never pass
// user-controlled input to Lit or NewBoundSqlLiteral's raw parameter.
type SqlLiteral struct {
	Predications
	Combinable
	Raw   string
	Binds []any // optional bind parameters for parameterized mode
}

// Lit creates a SqlLiteral from a raw SQL fragment.
func Lit(raw string) *SqlLiteral {
	n := &SqlLiteral{Raw: raw}
	n.Predications.self = n
	n.Combinable.self = n
	return n
}

func (n *SqlLiteral) Accept(v Visitor) string { return v.VisitSqlLiteral(n) }

// NewBoundSqlLiteral creates a SqlLiteral with bind parameters.
// In parameterized mode, the binds are added to the parameter list.
func NewBoundSqlLiteral(raw string, binds ...any) *SqlLiteral {
	n := Lit(raw)
	n.Binds = binds
	return n
}

// BindParamNode is an explicit bind parameter: a placeholder when the
// visitor is parameterized, an inline literal otherwise.
type BindParamNode struct {
	Value any
}

// NewBindParam returns a bind parameter carrying value.
func NewBindParam(value any) *BindParamNode {
	return &BindParamNode{Value: value}
}

func (n *BindParamNode) Accept(v Visitor) string { return v.VisitBindParam(n) }
