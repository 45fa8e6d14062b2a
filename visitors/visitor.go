// Package visitors renders node trees as SQL for PostgreSQL, MySQL, SQLite
// and SQL Server.
package visitors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bawdo/between/internal/quoting"
	"github.com/bawdo/between/nodes"
)

var comparisonOpSQL = [...]string{
	nodes.OpEq:    "=",
	nodes.OpNotEq: "!=",
	nodes.OpGt:    ">",
	nodes.OpGtEq:  ">=",
	nodes.OpLt:    "<",
	nodes.OpLtEq:  "<=",
}

// timeLayout formats inlined time.Time values.
const timeLayout = "2006-01-02 15:04:05.999999999"

// Option adjusts a visitor when it is built.
type Option func(*baseVisitor)

// WithParams binds literal values: they render as the dialect's
// placeholder and are collected in order for Params.
func WithParams() Option {
	return func(b *baseVisitor) { b.parameterize = true }
}

// WithoutParams inlines literal values with string escaping. Meant for
// display; never use it on untrusted input.
func WithoutParams() Option {
	return func(b *baseVisitor) { b.parameterize = false }
}

// WithQuotedIdentifiers quotes table, column and alias names in the
// dialect's style. Every dialect but MSSQL starts with it on.
func WithQuotedIdentifiers() Option {
	return func(b *baseVisitor) { b.quoteIdents = true }
}

func WithoutQuotedIdentifiers() Option {
	return func(b *baseVisitor) { b.quoteIdents = false }
}

// baseVisitor renders everything the dialects agree on. A dialect embeds it
// and points outer at itself; children are always rendered through outer so
// the dialect's overrides apply at any depth.
type baseVisitor struct {
	outer nodes.Visitor

	quote       func(string) string
	quoteIdents bool

	parameterize bool
	params       []any
	paramIndex   int // last placeholder number handed out
	placeholder  func(int) string

	// boolLiteral renders an inlined bool; nil means TRUE/FALSE.
	boolLiteral func(bool) string

	// paginate writes LIMIT/OFFSET; nil means "LIMIT n OFFSET m".
	paginate func(sb *strings.Builder, n *nodes.SelectCore, limit, offset string)
}

func (b *baseVisitor) applyOptions(opts []Option) {
	for _, o := range opts {
		o(b)
	}
}

// Params returns the values bound since the last Reset.
func (b *baseVisitor) Params() []any {
	return b.params
}

// Reset forgets bound values and restarts placeholder numbering.
func (b *baseVisitor) Reset() {
	b.params = nil
	b.paramIndex = 0
}

func (b *baseVisitor) quoteIdent(name string) string {
	if !b.quoteIdents {
		return name
	}
	return b.quote(name)
}

// bind records val as the next parameter and returns its placeholder.
func (b *baseVisitor) bind(val any) string {
	b.paramIndex++
	b.params = append(b.params, val)
	return b.placeholder(b.paramIndex)
}

func (b *baseVisitor) VisitTable(n *nodes.Table) string {
	return b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitTableAlias(n *nodes.TableAlias) string {
	return b.quoteIdent(n.Relation.Name) + " AS " + b.quoteIdent(n.AliasName)
}

func (b *baseVisitor) VisitAttribute(n *nodes.Attribute) string {
	if n.Relation == nil {
		return b.quoteIdent(n.Name)
	}
	return b.quoteIdent(nodes.RelationName(n.Relation)) + "." + b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitIdentifier(n *nodes.Identifier) string {
	return b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitLiteral(n *nodes.LiteralNode) string {
	// nil always renders as NULL keyword, never parameterized.
	if n.Value == nil {
		return "NULL"
	}
	if b.parameterize {
		return b.bind(n.Value)
	}
	return b.literalToSQL(n.Value)
}

// literalToSQL renders val inline. It panics on types it cannot render,
// which is a programming error in the caller.
func (b *baseVisitor) literalToSQL(val any) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + quoting.EscapeString(v) + "'"
	case bool:
		if b.boolLiteral != nil {
			return b.boolLiteral(v)
		}
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case time.Time:
		return "'" + v.Format(timeLayout) + "'"
	default:
		panic(fmt.Sprintf("between: unsupported literal type %T", v))
	}
}

// formatFloat panics on NaN and infinities; no dialect has a literal for
// them.
func formatFloat(f float64, bitSize int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("between: non-finite float literal %v", f))
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

func (b *baseVisitor) VisitStar(n *nodes.StarNode) string {
	if n.Table != nil {
		return b.quoteIdent(n.Table.Name) + ".*"
	}
	return "*"
}

func (b *baseVisitor) VisitSqlLiteral(n *nodes.SqlLiteral) string {
	if b.parameterize && len(n.Binds) > 0 {
		b.params = append(b.params, n.Binds...)
		b.paramIndex += len(n.Binds)
	}
	return n.Raw
}

func (b *baseVisitor) VisitBindParam(n *nodes.BindParamNode) string {
	if b.parameterize {
		return b.bind(n.Value)
	}
	return b.literalToSQL(n.Value)
}

func (b *baseVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	left := n.Left.Accept(b.outer)
	right := n.Right.Accept(b.outer)
	return left + " " + comparisonOpSQL[n.Op] + " " + right
}

func (b *baseVisitor) VisitUnary(n *nodes.UnaryNode) string {
	expr := n.Expr.Accept(b.outer)
	switch n.Op {
	case nodes.OpIsNull:
		return expr + " IS NULL"
	case nodes.OpIsNotNull:
		return expr + " IS NOT NULL"
	default:
		return expr
	}
}

func (b *baseVisitor) VisitAnd(n *nodes.AndNode) string {
	return n.Left.Accept(b.outer) + " AND " + n.Right.Accept(b.outer)
}

func (b *baseVisitor) VisitOr(n *nodes.OrNode) string {
	return n.Left.Accept(b.outer) + " OR " + n.Right.Accept(b.outer)
}

func (b *baseVisitor) VisitNot(n *nodes.NotNode) string {
	return "NOT (" + n.Expr.Accept(b.outer) + ")"
}

// VisitBetween renders (expr [NOT] BETWEEN lower AND upper). The operands
// are rendered through the dialect visitor in that order, so quoting and
// placeholder numbering follow the dialect. Rendering a node with a missing
// operand panics with an error wrapping nodes.ErrIncompleteBetween.
func (b *baseVisitor) VisitBetween(n *nodes.BetweenNode) string {
	if err := n.Validate(); err != nil {
		panic(fmt.Errorf("between: %w", err))
	}

	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(n.Expression().Accept(b.outer))
	if n.IsNegated() {
		sb.WriteString(" NOT")
	}
	sb.WriteString(" BETWEEN ")
	sb.WriteString(n.LowerBound().Accept(b.outer))
	sb.WriteString(" AND ")
	sb.WriteString(n.UpperBound().Accept(b.outer))
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitGrouping(n *nodes.GroupingNode) string {
	return "(" + n.Expr.Accept(b.outer) + ")"
}

func (b *baseVisitor) VisitAlias(n *nodes.AliasNode) string {
	return n.Expr.Accept(b.outer) + " AS " + b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitOrdering(n *nodes.OrderingNode) string {
	expr := n.Expr.Accept(b.outer)
	if n.Direction == nodes.Desc {
		return expr + " DESC"
	}
	return expr + " ASC"
}

func (b *baseVisitor) VisitSelectCore(n *nodes.SelectCore) string {
	var sb strings.Builder

	sb.WriteString("SELECT ")
	b.writeProjections(&sb, n.Projections)
	if n.From != nil {
		sb.WriteString(" FROM ")
		sb.WriteString(n.From.Accept(b.outer))
	}
	b.writeClause(&sb, " WHERE ", n.Wheres, " AND ")
	b.writeClause(&sb, " ORDER BY ", n.Orders, ", ")

	var limit, offset string
	if n.Limit != nil {
		limit = n.Limit.Accept(b.outer)
	}
	if n.Offset != nil {
		offset = n.Offset.Accept(b.outer)
	}
	if b.paginate != nil {
		b.paginate(&sb, n, limit, offset)
	} else {
		writePagination(&sb, limit, offset)
	}

	return sb.String()
}

func (b *baseVisitor) VisitDeleteStatement(n *nodes.DeleteStatement) string {
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(n.From.Accept(b.outer))
	b.writeClause(&sb, " WHERE ", n.Wheres, " AND ")
	return sb.String()
}

// writeClause writes keyword and items joined by sep; nothing when empty.
func (b *baseVisitor) writeClause(sb *strings.Builder, keyword string, items []nodes.Node, sep string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(keyword)
	for i, item := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(item.Accept(b.outer))
	}
}

func (b *baseVisitor) writeProjections(sb *strings.Builder, projections []nodes.Node) {
	if len(projections) == 0 {
		sb.WriteString("*")
		return
	}
	for i, p := range projections {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Accept(b.outer))
	}
}

func writePagination(sb *strings.Builder, limit, offset string) {
	if limit != "" {
		sb.WriteString(" LIMIT ")
		sb.WriteString(limit)
	}
	if offset != "" {
		sb.WriteString(" OFFSET ")
		sb.WriteString(offset)
	}
}
