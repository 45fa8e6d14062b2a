// Command between renders BETWEEN / NOT BETWEEN predicates for a SQL dialect
// and, in shell mode, builds them up interactively and runs them against a
// database.
//
// Configuration (env vars):
//
//	BETWEEN_ENGINE=postgres|mysql|sqlite|mssql  (default postgres)
//	DATABASE_URL=<dsn>                          (shell auto-connects if set)
//
// Usage:
//
//	between render age 18 65
//	between render --engine mssql --not t.created_at "'2024-01-01'" "'2024-12-31'"
//	between shell
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
