package visitors

import "github.com/bawdo/between/internal/quoting"

// MySQLVisitor renders MySQL with backtick-quoted names and ? placeholders.
type MySQLVisitor struct {
	*baseVisitor
}

// NewMySQLVisitor returns a visitor that binds literals by default, since
// the MySQL driver expects ? arguments. WithoutParams inlines them.
func NewMySQLVisitor(opts ...Option) *MySQLVisitor {
	v := &MySQLVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:        v,
		quote:        quoting.Backtick,
		quoteIdents:  true,
		parameterize: true,
		placeholder:  questionMark,
	}
	v.applyOptions(opts)
	return v
}
