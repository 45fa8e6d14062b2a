package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Table / Attribute creation ---

func TestTableCreatesAttributes(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	col := users.Col("id")

	assert.Equal(t, "id", col.Name)
	assert.Same(t, users, col.Relation)
}

func TestTableAliasCreatesAttributes(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	u := users.Alias("u")
	col := u.Col("name")

	assert.Same(t, users, u.Relation)
	assert.Equal(t, "u", u.AliasName)
	assert.Same(t, u, col.Relation)
}

func TestRelationName(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	assert.Equal(t, "users", RelationName(users))
	assert.Equal(t, "u", RelationName(users.Alias("u")))
	assert.Equal(t, "", RelationName(Lit("x")))
}

func TestStar(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	assert.Same(t, users, users.Star().Table)
	assert.Nil(t, Star().Table)
}

// --- Literal wrapping ---

func TestLiteralWrapsRawValues(t *testing.T) {
	t.Parallel()
	lit, ok := Literal(42).(*LiteralNode)
	require.True(t, ok)
	assert.Equal(t, 42, lit.Value)
}

func TestLiteralPassesThroughNodes(t *testing.T) {
	t.Parallel()
	col := NewTable("users").Col("id")
	assert.Same(t, col, Literal(col))
}

func TestNullIsLiteralNil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Null().Value)
}

func TestOptionalKeepsNilAbsent(t *testing.T) {
	t.Parallel()
	assert.Nil(t, optional(nil))
	assert.NotNil(t, optional(0))
	assert.NotNil(t, optional(""))
}

func TestLitAndBoundLit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "now()", Lit("now()").Raw)
	bound := NewBoundSqlLiteral("x > ?", 5)
	assert.Equal(t, "x > ?", bound.Raw)
	assert.Equal(t, []any{5}, bound.Binds)
}

// --- Equal ---

func TestEqual(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	tests := []struct {
		name string
		a, b Node
		want bool
	}{
		{"same pointer", users, users, true},
		{"both nil", nil, nil, true},
		{"nil and node", nil, Literal(1), false},
		{"node and nil", Literal(1), nil, false},
		{"equal literals", Literal(5), Literal(5), true},
		{"different literal values", Literal(5), Literal(6), false},
		{"different literal types", Literal(5), Literal(int64(5)), false},
		{"equal columns", users.Col("id"), NewTable("users").Col("id"), true},
		{"different columns", users.Col("id"), users.Col("name"), false},
		{"identifier vs literal", Ident("a"), Literal("a"), false},
		{"equal identifiers", Ident("a"), Ident("a"), true},
		{"equal raw sql", Lit("now()"), Lit("now()"), true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

// --- Predications ---

func TestPredicationsComparisons(t *testing.T) {
	t.Parallel()
	col := NewTable("users").Col("age")
	tests := []struct {
		name string
		node *ComparisonNode
		op   ComparisonOp
	}{
		{"Eq", col.Eq(1), OpEq},
		{"NotEq", col.NotEq(1), OpNotEq},
		{"Gt", col.Gt(1), OpGt},
		{"GtEq", col.GtEq(1), OpGtEq},
		{"Lt", col.Lt(1), OpLt},
		{"LtEq", col.LtEq(1), OpLtEq},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Same(t, col, tt.node.Left)
			assert.Equal(t, tt.op, tt.node.Op)
			assert.True(t, Equal(Literal(1), tt.node.Right))
		})
	}
}

func TestPredicationsNullChecks(t *testing.T) {
	t.Parallel()
	col := Ident("deleted_at")
	assert.Equal(t, OpIsNull, col.IsNull().Op)
	assert.Equal(t, OpIsNotNull, col.IsNotNull().Op)
	assert.Same(t, col, col.IsNull().Expr)
}

func TestPredicationsAliasAndOrdering(t *testing.T) {
	t.Parallel()
	col := Ident("name")
	alias := col.As("n")
	assert.Equal(t, "n", alias.Name)
	assert.Same(t, col, alias.Expr)
	assert.Equal(t, Asc, col.Asc().Direction)
	assert.Equal(t, Desc, col.Desc().Direction)
}

func TestPredicationsBetween(t *testing.T) {
	t.Parallel()
	col := NewTable("users").Col("age")
	n := col.Between(18, 65)

	assert.Same(t, col, n.Expression())
	assert.True(t, Equal(Literal(18), n.LowerBound()))
	assert.True(t, Equal(Literal(65), n.UpperBound()))
	assert.False(t, n.IsNegated())
	assert.True(t, col.NotBetween(18, 65).IsNegated())
}

func TestPredicationsBetweenNilBoundIsAbsent(t *testing.T) {
	t.Parallel()
	n := Ident("age").Between(18, nil)
	assert.NotNil(t, n.LowerBound())
	assert.Nil(t, n.UpperBound())
	assert.False(t, n.Complete())
}

// --- Combinable ---

func TestCombinableAnd(t *testing.T) {
	t.Parallel()
	a := Ident("a").Eq(1)
	b := Ident("b").Eq(2)
	and := a.And(b)
	assert.Same(t, a, and.Left)
	assert.Same(t, b, and.Right)
}

func TestCombinableOrIsGrouped(t *testing.T) {
	t.Parallel()
	a := Ident("a").Eq(1)
	b := Ident("b").Eq(2)
	g := a.Or(b)
	or, ok := g.Expr.(*OrNode)
	require.True(t, ok)
	assert.Same(t, a, or.Left)
	assert.Same(t, b, or.Right)
}

func TestCombinableNot(t *testing.T) {
	t.Parallel()
	n := Ident("age").Between(1, 2)
	not := n.Not()
	assert.Same(t, n, not.Expr)
}

func TestBetweenChainsWithAnd(t *testing.T) {
	t.Parallel()
	r := Ident("age").Between(1, 2)
	other := Ident("active").Eq(true)
	and := r.And(other)
	assert.Same(t, r, and.Left)
}

// --- Check ---

func TestCheckValidTrees(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	complete := users.Col("age").Between(18, 65)
	tests := []struct {
		name string
		node Node
	}{
		{"nil", nil},
		{"leaf", users},
		{"complete between", complete},
		{"and", complete.And(users.Col("id").Eq(1))},
		{"select core", &SelectCore{From: users, Wheres: []Node{complete}}},
		{"delete", &DeleteStatement{From: users, Wheres: []Node{complete.Not()}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, Check(tt.node))
		})
	}
}

// subquery stands in for a manager used inside an expression.
type subquery struct{ core *SelectCore }

func (s subquery) Accept(v Visitor) string { return s.core.Accept(v) }
func (s subquery) CloneCore() *SelectCore  { return s.core }

func TestCheckFindsNestedIncompleteBetween(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	partial := users.Col("age").Between(18, nil)
	tests := []struct {
		name string
		node Node
	}{
		{"bare", partial},
		{"and right", users.Col("id").Eq(1).And(partial)},
		{"or", users.Col("id").Eq(1).Or(partial)},
		{"not", partial.Not()},
		{"alias", NewAliasNode(partial, "in_range")},
		{"comparison", NewComparisonNode(partial, Literal(true), OpEq)},
		{"unary", &UnaryNode{Expr: partial, Op: OpIsNull}},
		{"ordering", &OrderingNode{Expr: partial}},
		{"select where", &SelectCore{From: users, Wheres: []Node{partial}}},
		{"select projection", &SelectCore{From: users, Projections: []Node{partial}}},
		{"select order", &SelectCore{From: users, Orders: []Node{&OrderingNode{Expr: partial}}}},
		{"delete where", &DeleteStatement{From: users, Wheres: []Node{partial}}},
		{"select from", &SelectCore{From: partial}},
		{"select limit", &SelectCore{From: users, Limit: partial}},
		{"select offset", &SelectCore{From: users, Offset: partial}},
		{"delete from", &DeleteStatement{From: partial}},
		{"subquery", users.Col("id").Eq(subquery{&SelectCore{From: users, Wheres: []Node{partial}}})},
		{"between operand", NewBetween(partial, true, true, false)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, Check(tt.node), ErrIncompleteBetween)
		})
	}
}
