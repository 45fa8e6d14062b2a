package visitors

import "github.com/bawdo/between/internal/quoting"

// SQLiteVisitor renders SQLite. Quoting follows ANSI double quotes; bind
// parameters are positional ? markers.
type SQLiteVisitor struct {
	*baseVisitor
}

func NewSQLiteVisitor(opts ...Option) *SQLiteVisitor {
	v := &SQLiteVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:       v,
		quote:       quoting.DoubleQuote,
		quoteIdents: true,
		placeholder: questionMark,
	}
	v.applyOptions(opts)
	return v
}
