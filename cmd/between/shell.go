package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/spf13/cobra"

	"github.com/bawdo/between/visitors"
)

// shellOptions holds flags for the shell command.
type shellOptions struct {
	*rootOptions
	DSN string
}

func newShellCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &shellOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Build BETWEEN predicates interactively",
		Long: `Start an interactive shell for staging a BETWEEN predicate one
operand at a time, rendering it and running it against a database.

Type 'help' inside the shell for the command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DSN, "dsn", os.Getenv("DATABASE_URL"), "connect on startup, env DATABASE_URL")

	return cmd
}

func runShell(cmd *cobra.Command, opts *shellOptions) error {
	log := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	out := cmd.OutOrStdout()

	sess, err := NewSession(cmd.Context(), log, opts.Engine, out)
	if err != nil {
		return err
	}
	defer sess.Close()

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "between> ",
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		AutoComplete:    &shellCompleter{sess: sess},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer func() { _ = rl.Close() }()

	if opts.DSN != "" {
		if err := sess.Execute("connect " + opts.DSN); err != nil {
			log.Warn("startup connect failed", "dsn", sanitizeDSN(opts.DSN), "err", err)
		}
	}

	_, _ = fmt.Fprintf(out, "between shell (%s). Type 'help' for commands, 'exit' to quit.\n", sess.engine)
	return loop(rl, sess, cmd.ErrOrStderr())
}

// loop reads lines until EOF or exit. Command errors are reported and the
// loop continues.
func loop(rl *readline.Instance, sess *Session, errOut io.Writer) error {
	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := sess.Execute(line); err != nil {
			_, _ = fmt.Fprintf(errOut, "  Error: %v\n", err)
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".between_history")
}

// shellCompleter implements readline's AutoCompleter for command names and
// engine names.
type shellCompleter struct {
	sess *Session
}

// Do returns the suffixes that complete the word under the cursor.
func (c *shellCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	text := string(line[:pos])
	var candidates []string
	prefix := text

	lower := strings.ToLower(text)
	switch {
	case strings.HasPrefix(lower, "engine "):
		prefix = strings.TrimLeft(text[len("engine "):], " ")
		candidates = filterPrefix(visitors.Engines, prefix)
	case strings.HasPrefix(lower, "quote "):
		prefix = strings.TrimLeft(text[len("quote "):], " ")
		candidates = filterPrefix([]string{"default", "off", "on"}, prefix)
	default:
		candidates = filterPrefix(c.sess.commandNames(), prefix)
	}

	for _, cand := range candidates {
		newLine = append(newLine, []rune(cand[len(prefix):]+" "))
	}
	return newLine, len([]rune(prefix))
}

func filterPrefix(items []string, prefix string) []string {
	lower := strings.ToLower(prefix)
	var out []string
	for _, it := range items {
		if strings.HasPrefix(it, lower) {
			out = append(out, it)
		}
	}
	return out
}
