package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bawdo/between/visitors"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Engine  string
	Verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "between",
		Short: "Render and run SQL BETWEEN predicates",
		Long:  "Build (expr [NOT] BETWEEN lower AND upper) predicates and render them for PostgreSQL, MySQL, SQLite or SQL Server.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			engine, err := visitors.CanonicalEngine(opts.Engine)
			if err != nil {
				return err
			}
			opts.Engine = engine
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultEngine := os.Getenv("BETWEEN_ENGINE")
	if defaultEngine == "" {
		defaultEngine = "postgres"
	}

	cmd.PersistentFlags().StringVarP(&opts.Engine, "engine", "e", defaultEngine, "SQL dialect (postgres|mysql|sqlite|mssql), env BETWEEN_ENGINE")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(newRenderCommand(opts))
	cmd.AddCommand(newShellCommand(opts))

	return cmd
}

// newLogger returns a text logger on w; --verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
