package visitors

import (
	"strconv"
	"strings"

	"github.com/bawdo/between/internal/quoting"
	"github.com/bawdo/between/nodes"
)

// MSSQLVisitor generates SQL Server (T-SQL) SQL.
// Identifiers are rendered bare by default; WithQuotedIdentifiers() switches
// to brackets: [table].[column].
type MSSQLVisitor struct {
	*baseVisitor
}

// NewMSSQLVisitor creates an MSSQLVisitor ready for use.
// Pass WithParams() to emit @p1, @p2 placeholders.
func NewMSSQLVisitor(opts ...Option) *MSSQLVisitor {
	v := &MSSQLVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:       v,
		quote:       quoting.Bracket,
		placeholder: func(i int) string { return "@p" + strconv.Itoa(i) },
		boolLiteral: mssqlBool,
		paginate:    mssqlPaginate,
	}
	v.applyOptions(opts)
	return v
}

// mssqlBool renders 1/0; T-SQL has no TRUE/FALSE literals.
func mssqlBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// mssqlPaginate writes OFFSET ... ROWS FETCH NEXT ... ROWS ONLY. T-SQL only
// accepts OFFSET after ORDER BY, so an unordered query gets ORDER BY (SELECT NULL).
func mssqlPaginate(sb *strings.Builder, n *nodes.SelectCore, limit, offset string) {
	if limit == "" && offset == "" {
		return
	}
	if len(n.Orders) == 0 {
		sb.WriteString(" ORDER BY (SELECT NULL)")
	}
	if offset == "" {
		offset = "0"
	}
	sb.WriteString(" OFFSET ")
	sb.WriteString(offset)
	sb.WriteString(" ROWS")
	if limit != "" {
		sb.WriteString(" FETCH NEXT ")
		sb.WriteString(limit)
		sb.WriteString(" ROWS ONLY")
	}
}
