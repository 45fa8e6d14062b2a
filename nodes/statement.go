package nodes

// SelectCore holds the clauses of a SELECT. Build it with
// managers.SelectManager rather than directly.
type SelectCore struct {
	From        Node
	Projections []Node // empty renders as *
	Wheres      []Node // joined with AND
	Orders      []Node
	Limit       Node
	Offset      Node
}

func (n *SelectCore) Accept(v Visitor) string { return v.VisitSelectCore(n) }

// DeleteStatement is DELETE FROM From WHERE Wheres.
type DeleteStatement struct {
	From   Node
	Wheres []Node
}

func (n *DeleteStatement) Accept(v Visitor) string { return v.VisitDeleteStatement(n) }
