package visitors

import (
	"strconv"

	"github.com/bawdo/between/internal/quoting"
)

// PostgresVisitor renders PostgreSQL. Names are double-quoted and bind
// parameters are numbered: "t"."c" BETWEEN $1 AND $2.
type PostgresVisitor struct {
	*baseVisitor
}

// NewPostgresVisitor returns a visitor that inlines literals unless
// WithParams is given.
func NewPostgresVisitor(opts ...Option) *PostgresVisitor {
	v := &PostgresVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:       v,
		quote:       quoting.DoubleQuote,
		quoteIdents: true,
		placeholder: dollarN,
	}
	v.applyOptions(opts)
	return v
}

func dollarN(i int) string { return "$" + strconv.Itoa(i) }

func questionMark(int) string { return "?" }
