// Package quoting holds the identifier and string escaping used by the
// dialect visitors.
package quoting

import "strings"

// DoubleQuote is the ANSI form used by PostgreSQL and SQLite. Embedded
// double quotes are doubled.
func DoubleQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Backtick is the MySQL form.
func Backtick(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// Bracket is the SQL Server form. Only the closing bracket needs doubling.
func Bracket(s string) string {
	return "[" + strings.ReplaceAll(s, "]", "]]") + "]"
}

// EscapeString makes s safe inside a single-quoted literal for every
// supported dialect: quotes are doubled and backslashes escaped for MySQL.
// It is only used when literals are inlined; bound parameters bypass it.
func EscapeString(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", "''").Replace(s)
}
