package visitors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bawdo/between/nodes"
)

// ErrUnknownEngine is returned by ForEngine for an unrecognised dialect name.
var ErrUnknownEngine = errors.New("unknown SQL engine")

// Engines lists the canonical dialect names accepted by ForEngine.
var Engines = []string{"postgres", "mysql", "sqlite", "mssql"}

// CanonicalEngine maps an engine name or common alias to its canonical name.
func CanonicalEngine(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql", "pg", "pgx":
		return "postgres", nil
	case "mysql", "mariadb":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite", nil
	case "mssql", "sqlserver", "tsql":
		return "mssql", nil
	default:
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownEngine, name, strings.Join(Engines, ", "))
	}
}

// ForEngine returns a new visitor for the named dialect.
func ForEngine(name string, opts ...Option) (nodes.Visitor, error) {
	engine, err := CanonicalEngine(name)
	if err != nil {
		return nil, err
	}
	switch engine {
	case "mysql":
		return NewMySQLVisitor(opts...), nil
	case "sqlite":
		return NewSQLiteVisitor(opts...), nil
	case "mssql":
		return NewMSSQLVisitor(opts...), nil
	default:
		return NewPostgresVisitor(opts...), nil
	}
}

var (
	_ nodes.Visitor       = (*PostgresVisitor)(nil)
	_ nodes.Visitor       = (*MySQLVisitor)(nil)
	_ nodes.Visitor       = (*SQLiteVisitor)(nil)
	_ nodes.Visitor       = (*MSSQLVisitor)(nil)
	_ nodes.Parameterizer = (*PostgresVisitor)(nil)
)
