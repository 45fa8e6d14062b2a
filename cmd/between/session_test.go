package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bawdo/between/nodes"
	"github.com/bawdo/between/visitors"
)

func newTestSession(t *testing.T, engine string) (*Session, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sess, err := NewSession(context.Background(), log, engine, buf)
	require.NoError(t, err)
	t.Cleanup(sess.Close)
	return sess, buf
}

// run executes lines in order and returns the output of the last one.
func run(t *testing.T, sess *Session, buf *bytes.Buffer, lines ...string) string {
	t.Helper()
	for _, line := range lines {
		buf.Reset()
		require.NoError(t, sess.Execute(line), "line %q", line)
	}
	return buf.String()
}

func TestNewSessionUnknownEngine(t *testing.T) {
	t.Parallel()
	_, err := NewSession(context.Background(), slog.Default(), "oracle", io.Discard)
	assert.ErrorIs(t, err, visitors.ErrUnknownEngine)
}

func TestSessionBetweenSQL(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")
	out := run(t, sess, buf, "between age 18 65", "sql")
	assert.Equal(t, "  (\"age\" BETWEEN 18 AND 65)\n", out)
}

func TestSessionNotBetweenSQL(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")
	out := run(t, sess, buf, "NOT BETWEEN d e f", "sql")
	assert.Equal(t, "  (\"d\" NOT BETWEEN \"e\" AND \"f\")\n", out)
}

func TestSessionStagedConstruction(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")

	out := run(t, sess, buf, "between age")
	assert.Contains(t, out, `"age" BETWEEN <missing> AND <missing>`)
	assert.Contains(t, out, "lower bound, upper bound")

	err := sess.Execute("sql")
	assert.ErrorIs(t, err, nodes.ErrIncompleteBetween)

	out = run(t, sess, buf, "lower 18")
	assert.Contains(t, out, `"age" BETWEEN 18 AND <missing>`)

	out = run(t, sess, buf, "upper 65", "sql")
	assert.Equal(t, "  (\"age\" BETWEEN 18 AND 65)\n", out)
}

func TestSessionSetUnchanged(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")
	out := run(t, sess, buf, "between age 18 65", "lower 18")
	assert.Contains(t, out, "(unchanged)")
}

func TestSessionExprReplacesTestedValue(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")
	out := run(t, sess, buf, "between age 18 65", "expr users.age", "sql")
	assert.Equal(t, "  (\"users\".\"age\" BETWEEN 18 AND 65)\n", out)
}

func TestSessionNegate(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")

	out := run(t, sess, buf, "between a b c", "negate", "sql")
	assert.Equal(t, "  (\"a\" NOT BETWEEN \"b\" AND \"c\")\n", out)

	out = run(t, sess, buf, "negate", "sql")
	assert.Equal(t, "  (\"a\" BETWEEN \"b\" AND \"c\")\n", out)
}

func TestSessionMergeIntoCurrent(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")

	out := run(t, sess, buf, "between a 1 2", "between _ 5", "sql")
	assert.Equal(t, "  (\"a\" BETWEEN 5 AND 2)\n", out)

	out = run(t, sess, buf, "not between _", "sql")
	assert.Equal(t, "  (\"a\" NOT BETWEEN 5 AND 2)\n", out)
}

func TestSessionMergeWithoutExpression(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t, "postgres")
	assert.ErrorIs(t, sess.Execute("between _ 1 2"), errNoExpression)
}

func TestSessionCommandsNeedExpression(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t, "postgres")
	for _, line := range []string{"show", "sql", "negate", "lower 1", "upper 1", "expr a"} {
		assert.ErrorIs(t, sess.Execute(line), errNoExpression, line)
	}
}

func TestSessionEngines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		engine string
		want   string
	}{
		{"postgres", `("age" BETWEEN 18 AND 'x')`},
		{"mysql", "(`age` BETWEEN 18 AND 'x')"},
		{"sqlite", `("age" BETWEEN 18 AND 'x')`},
		{"mssql", `(age BETWEEN 18 AND 'x')`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.engine, func(t *testing.T) {
			t.Parallel()
			sess, buf := newTestSession(t, "postgres")
			out := run(t, sess, buf, "engine "+tt.engine, "between age 18 'x'", "sql")
			assert.Equal(t, "  "+tt.want+"\n", out)
		})
	}
}

func TestSessionEngineUnknown(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")
	assert.ErrorIs(t, sess.Execute("engine oracle"), visitors.ErrUnknownEngine)
	out := run(t, sess, buf, "engine")
	assert.Equal(t, "  Engine: postgres\n", out)
}

func TestSessionQuote(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")

	out := run(t, sess, buf, "between age 18 65", "quote off", "sql")
	assert.Equal(t, "  (age BETWEEN 18 AND 65)\n", out)

	out = run(t, sess, buf, "engine mssql", "quote on", "sql")
	assert.Equal(t, "  ([age] BETWEEN 18 AND 65)\n", out)

	out = run(t, sess, buf, "quote default", "sql")
	assert.Equal(t, "  (age BETWEEN 18 AND 65)\n", out)

	assert.Error(t, sess.Execute("quote maybe"))
}

func TestSessionParams(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")

	out := run(t, sess, buf, "params")
	assert.Equal(t, "  Parameterized mode: ON\n", out)

	out = run(t, sess, buf, "between age 18 65", "sql")
	assert.Equal(t, "  (\"age\" BETWEEN $1 AND $2)\n  Params: [18 65]\n", out)

	out = run(t, sess, buf, "params", "sql")
	assert.Equal(t, "  (\"age\" BETWEEN 18 AND 65)\n", out)
}

func TestSessionFrom(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")
	out := run(t, sess, buf, "from users", "between age 18 65", "sql")
	assert.Equal(t, "  SELECT * FROM \"users\" WHERE (\"age\" BETWEEN 18 AND 65)\n", out)

	assert.Error(t, sess.Execute("from 1bad"))
}

func TestSessionReset(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")
	run(t, sess, buf, "from users", "between age 18 65", "reset")
	assert.Nil(t, sess.expr)
	assert.Nil(t, sess.table)
	assert.ErrorIs(t, sess.Execute("sql"), errNoExpression)
}

func TestSessionUnknownCommand(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t, "postgres")
	err := sess.Execute("frobnicate now")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: frobnicate")
}

func TestSessionEmptyLine(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t, "postgres")
	assert.NoError(t, sess.Execute("   "))
}

func TestSessionRunNeedsConnection(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t, "postgres")
	err := sess.Execute("run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
	assert.EqualError(t, sess.Execute("disconnect"), "not connected")
	assert.EqualError(t, sess.Execute("connect"), "usage: connect <dsn>")
}

func TestSessionConnectMSSQLHasNoDriver(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t, "mssql")
	err := sess.Execute("connect sqlserver://localhost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no driver")
}

func TestSessionHelp(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t, "postgres")
	out := run(t, sess, buf, "help")
	assert.Contains(t, out, "not between <expr>")
	assert.Contains(t, out, "connect [<dsn>]")
}

func TestCommandNames(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t, "postgres")
	names := sess.commandNames()
	assert.Contains(t, names, "between")
	assert.Contains(t, names, "not between")
	assert.Contains(t, names, "exit")
	assert.NotContains(t, names, "tosql")
	assert.IsIncreasing(t, names)
}

func TestShellCompleter(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t, "postgres")
	c := &shellCompleter{sess: sess}

	line := []rune("neg")
	got, length := c.Do(line, len(line))
	assert.Equal(t, 3, length)
	assert.Equal(t, [][]rune{[]rune("ate ")}, got)

	line = []rune("engine ms")
	got, length = c.Do(line, len(line))
	assert.Equal(t, 2, length)
	assert.Equal(t, [][]rune{[]rune("sql ")}, got)
}
