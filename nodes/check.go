package nodes

// Check walks the expression tree rooted at n, including subqueries, and
// returns the first validation error, currently an incomplete BetweenNode.
// Leaf nodes and nil are always valid.
func Check(n Node) error {
	switch x := n.(type) {
	case *BetweenNode:
		if err := x.Validate(); err != nil {
			return err
		}
		return checkAll(x.expr, x.lower, x.upper)
	case *AndNode:
		return checkAll(x.Left, x.Right)
	case *OrNode:
		return checkAll(x.Left, x.Right)
	case *NotNode:
		return Check(x.Expr)
	case *GroupingNode:
		return Check(x.Expr)
	case *ComparisonNode:
		return checkAll(x.Left, x.Right)
	case *UnaryNode:
		return Check(x.Expr)
	case *AliasNode:
		return Check(x.Expr)
	case *OrderingNode:
		return Check(x.Expr)
	case *SelectCore:
		if err := checkAll(x.From, x.Limit, x.Offset); err != nil {
			return err
		}
		if err := checkAll(x.Projections...); err != nil {
			return err
		}
		if err := checkAll(x.Wheres...); err != nil {
			return err
		}
		return checkAll(x.Orders...)
	case *DeleteStatement:
		if err := Check(x.From); err != nil {
			return err
		}
		return checkAll(x.Wheres...)
	case coreCarrier:
		return Check(x.CloneCore())
	}
	return nil
}

// coreCarrier is a node built around a SelectCore, such as a SelectManager
// used as a subquery.
type coreCarrier interface {
	CloneCore() *SelectCore
}

func checkAll(ns ...Node) error {
	for _, n := range ns {
		if err := Check(n); err != nil {
			return err
		}
	}
	return nil
}
