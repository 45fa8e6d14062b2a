package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/bawdo/between/managers"
	"github.com/bawdo/between/nodes"
	"github.com/bawdo/between/visitors"
)

var (
	errNoExpression = errors.New("no expression defined (use 'between <expr> ...' first)")
	errNoTable      = errors.New("no table defined (use 'from <table>' first)")
)

// commandEntry maps a shell prefix to its handler. A prefix ending in a
// space takes arguments; any other prefix must match the whole line.
type commandEntry struct {
	prefix  string
	handler func(args string) error
	hidden  bool // excluded from commandNames()
}

// quoteMode overrides the dialect's default identifier quoting.
type quoteMode int

const (
	quoteDefault quoteMode = iota
	quoteOn
	quoteOff
)

// Session holds the shell state: the staged BETWEEN expression, the table
// it filters, the active dialect and an optional database connection.
type Session struct {
	ctx          context.Context
	log          *slog.Logger
	engine       string
	quote        quoteMode
	parameterize bool
	table        *nodes.Table
	expr         *nodes.BetweenNode
	commands     []commandEntry
	conn         *dbConn
	lastDSN      string
	out          io.Writer
}

// NewSession creates a session rendering for engine. An unknown engine
// name is an error.
func NewSession(ctx context.Context, log *slog.Logger, engine string, out io.Writer) (*Session, error) {
	s := &Session{ctx: ctx, log: log, out: out}
	if err := s.setEngine(engine); err != nil {
		return nil, err
	}
	s.initCommands()
	return s, nil
}

func (s *Session) initCommands() {
	s.commands = []commandEntry{
		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},
		{prefix: "show", handler: func(_ string) error { return s.cmdShow() }},
		{prefix: "sql", handler: func(_ string) error { return s.cmdSQL() }},
		{prefix: "tosql", handler: func(_ string) error { return s.cmdSQL() }, hidden: true},
		{prefix: "reset", handler: func(_ string) error { return s.cmdReset() }},

		{prefix: "engine ", handler: func(a string) error { return s.cmdEngine(a) }},
		{prefix: "engine", handler: func(_ string) error { s.printf("  Engine: %s\n", s.engine); return nil }},
		{prefix: "quote ", handler: func(a string) error { return s.cmdQuote(a) }},
		{prefix: "params", handler: func(_ string) error { return s.cmdParams() }},

		{prefix: "from ", handler: func(a string) error { return s.cmdFrom(a) }},
		{prefix: "not between ", handler: func(a string) error { return s.cmdBetween(a, true) }},
		{prefix: "between ", handler: func(a string) error { return s.cmdBetween(a, false) }},
		{prefix: "expr ", handler: func(a string) error { return s.cmdSet(a, (*nodes.BetweenNode).Expr) }},
		{prefix: "lower ", handler: func(a string) error { return s.cmdSet(a, (*nodes.BetweenNode).Lower) }},
		{prefix: "upper ", handler: func(a string) error { return s.cmdSet(a, (*nodes.BetweenNode).Upper) }},
		{prefix: "negate", handler: func(_ string) error { return s.cmdNegate() }},

		{prefix: "connect ", handler: func(a string) error { return s.cmdConnect(a) }},
		{prefix: "connect", handler: func(_ string) error { return s.cmdConnect("") }},
		{prefix: "disconnect", handler: func(_ string) error { return s.cmdDisconnect() }},
		{prefix: "run", handler: func(_ string) error { return s.cmdRun() }},
		{prefix: "exec", handler: func(_ string) error { return s.cmdRun() }, hidden: true},
	}

	// Longest prefix first so "not between " wins over shorter matches.
	sort.SliceStable(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// commandNames lists the visible commands for tab completion.
func (s *Session) commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range s.commands {
		if cmd.hidden {
			continue
		}
		name := strings.TrimRight(cmd.prefix, " ")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	names = append(names, "exit", "quit")
	sort.Strings(names)
	return names
}

// Execute runs one shell line.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(strings.TrimSpace(line[len(cmd.prefix):]))
			}
		} else if lower == cmd.prefix {
			return cmd.handler("")
		}
	}

	word := strings.Fields(line)[0]
	return fmt.Errorf("unknown command: %s (type 'help' for commands)", word)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) setEngine(name string) error {
	engine, err := visitors.CanonicalEngine(name)
	if err != nil {
		return err
	}
	s.engine = engine
	return nil
}

// visitor builds a fresh visitor for the current engine and settings.
func (s *Session) visitor(parameterize bool) nodes.Visitor {
	opts := []visitors.Option{visitors.WithoutParams()}
	if parameterize {
		opts = []visitors.Option{visitors.WithParams()}
	}
	switch s.quote {
	case quoteOn:
		opts = append(opts, visitors.WithQuotedIdentifiers())
	case quoteOff:
		opts = append(opts, visitors.WithoutQuotedIdentifiers())
	}
	v, err := visitors.ForEngine(s.engine, opts...)
	if err != nil {
		// s.engine is always canonical.
		panic(err)
	}
	return v
}

// --- Command handlers ---

func (s *Session) cmdEngine(args string) error {
	if err := s.setEngine(args); err != nil {
		return err
	}
	s.printf("  Engine: %s\n", s.engine)
	return nil
}

func (s *Session) cmdQuote(args string) error {
	switch strings.ToLower(args) {
	case "on":
		s.quote = quoteOn
	case "off":
		s.quote = quoteOff
	case "default":
		s.quote = quoteDefault
	default:
		return errors.New("usage: quote on|off|default")
	}
	s.printf("  Identifier quoting: %s\n", strings.ToLower(args))
	return nil
}

func (s *Session) cmdParams() error {
	s.parameterize = !s.parameterize
	if s.parameterize {
		s.printf("  Parameterized mode: ON\n")
	} else {
		s.printf("  Parameterized mode: OFF\n")
	}
	return nil
}

func (s *Session) cmdFrom(args string) error {
	if !isIdentifier(args) {
		return fmt.Errorf("invalid table name: %q", args)
	}
	s.table = nodes.NewTable(args)
	s.printf("  FROM %s\n", args)
	return nil
}

// cmdBetween starts a new expression, or merges bounds into the staged one
// when the expression argument is "_".
func (s *Session) cmdBetween(args string, negated bool) error {
	tokens := tokenize(args)
	if len(tokens) > 0 && tokens[0] == "_" {
		if s.expr == nil {
			return errNoExpression
		}
		bounds, err := boundsFromTokens(tokens[1:])
		if err != nil {
			return err
		}
		s.expr = buildBetween(s.expr, negated, bounds)
		return s.cmdShow()
	}

	expr, bounds, err := parseBetweenArgs(args)
	if err != nil {
		return err
	}
	s.expr = buildBetween(expr, negated, bounds)
	return s.cmdShow()
}

func buildBetween(expr any, negated bool, bounds []any) *nodes.BetweenNode {
	if negated {
		return nodes.NotBetween(expr, bounds...)
	}
	return nodes.Between(expr, bounds...)
}

func (s *Session) cmdSet(args string, set func(*nodes.BetweenNode, any) *nodes.BetweenNode) error {
	if s.expr == nil {
		return errNoExpression
	}
	n, err := parseOperand(args)
	if err != nil {
		return err
	}
	next := set(s.expr, n)
	if next == s.expr {
		s.printf("  (unchanged)\n")
	}
	s.expr = next
	return s.cmdShow()
}

func (s *Session) cmdNegate() error {
	if s.expr == nil {
		return errNoExpression
	}
	s.expr = s.expr.Negate()
	return s.cmdShow()
}

// cmdShow prints the staged expression, naming any missing operand.
func (s *Session) cmdShow() error {
	if s.expr == nil {
		return errNoExpression
	}
	v := s.visitor(false)
	part := func(n nodes.Node) string {
		if n == nil {
			return "<missing>"
		}
		return n.Accept(v)
	}
	op := "BETWEEN"
	if s.expr.IsNegated() {
		op = "NOT BETWEEN"
	}
	s.printf("  %s %s %s AND %s\n", part(s.expr.Expression()), op, part(s.expr.LowerBound()), part(s.expr.UpperBound()))
	if err := s.expr.Validate(); err != nil {
		s.printf("  (%v)\n", err)
	}
	return nil
}

// query wraps the staged expression in SELECT * FROM table WHERE (...).
// Without a table the bare predicate is returned.
func (s *Session) query() (nodes.Node, error) {
	if s.expr == nil {
		return nil, errNoExpression
	}
	if err := s.expr.Validate(); err != nil {
		return nil, err
	}
	if s.table == nil {
		return s.expr, nil
	}
	return selectFrom(s.table.Name, s.expr), nil
}

// selectFrom builds SELECT * FROM table WHERE (pred).
func selectFrom(table string, pred nodes.Node) *managers.SelectManager {
	return managers.NewSelectManager(nodes.NewTable(table)).Where(pred)
}

func (s *Session) cmdSQL() error {
	q, err := s.query()
	if err != nil {
		return err
	}
	sqlStr, params, err := renderNode(s.visitor(s.parameterize), q)
	if err != nil {
		return err
	}
	s.printf("  %s\n", sqlStr)
	if len(params) > 0 {
		s.printf("  Params: %v\n", params)
	}
	return nil
}

// renderNode renders a manager through ToSQL and a bare predicate
// directly, collecting params from a parameterized visitor.
func renderNode(v nodes.Visitor, n nodes.Node) (string, []any, error) {
	if m, ok := n.(*managers.SelectManager); ok {
		return m.ToSQL(v)
	}
	if err := nodes.Check(n); err != nil {
		return "", nil, err
	}
	if p, ok := v.(nodes.Parameterizer); ok {
		p.Reset()
		sqlStr := n.Accept(v)
		return sqlStr, p.Params(), nil
	}
	return n.Accept(v), nil, nil
}

func (s *Session) cmdReset() error {
	s.expr = nil
	s.table = nil
	s.printf("  Expression cleared\n")
	return nil
}

func (s *Session) cmdConnect(args string) error {
	if s.conn != nil {
		return fmt.Errorf("already connected to %s (use 'disconnect' first)", sanitizeDSN(s.conn.dsn))
	}
	dsn := args
	if dsn == "" {
		if s.lastDSN == "" {
			return errors.New("usage: connect <dsn>")
		}
		dsn = s.lastDSN
	}
	conn, err := connect(s.ctx, s.log, s.engine, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.conn = conn
	s.lastDSN = dsn
	s.printf("  Connected to %s (%s)\n", sanitizeDSN(dsn), s.engine)
	return nil
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return errors.New("not connected")
	}
	dsn := sanitizeDSN(s.conn.dsn)
	if err := s.conn.close(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.conn = nil
	s.printf("  Disconnected from %s\n", dsn)
	return nil
}

// cmdRun executes the query against the connected database, always
// with bind parameters.
func (s *Session) cmdRun() error {
	if s.conn == nil {
		return errors.New("not connected (use 'connect <dsn>' first)")
	}
	if s.table == nil {
		return errNoTable
	}
	if s.conn.engine != s.engine {
		s.printf("  Warning: connected to %s but engine is set to %s\n", s.conn.engine, s.engine)
	}

	q, err := s.query()
	if err != nil {
		return err
	}
	v, err := visitors.ForEngine(s.conn.engine, visitors.WithParams())
	if err != nil {
		return err
	}
	sqlStr, params, err := renderNode(v, q)
	if err != nil {
		return err
	}

	s.printf("  %s;\n", sqlStr)
	if len(params) > 0 {
		s.printf("  Params: %v\n", params)
	}

	result, err := s.conn.execQuery(s.ctx, sqlStr, params)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(s.out, result)
	return nil
}

// Close releases the database connection, if any.
func (s *Session) Close() {
	if s.conn != nil {
		_ = s.conn.close()
		s.conn = nil
	}
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprintln(s.out, `
  Building:
    between <expr> [<lower> [and] <upper>]      Start a BETWEEN expression
    not between <expr> [<lower> [and] <upper>]  Start a NOT BETWEEN expression
    between _ <lower> [<upper>]                 Merge bounds into the current one
    expr <v> | lower <v> | upper <v>            Replace one operand
    negate                                      Flip BETWEEN / NOT BETWEEN
    show                                        Show the expression and what is missing
    from <table>                                Wrap the expression in SELECT * FROM <table>
    reset                                       Clear expression and table

  Operands:
    col, t.col      identifier, qualified column
    'text', 42, 1.5 literals
    true, false     booleans
    null            SQL NULL
    raw:SQL         raw SQL fragment

  Output:
    sql                     Render for the current engine
    engine <name>           postgres, mysql, sqlite, mssql
    quote on|off|default    Override identifier quoting
    params                  Toggle parameterized rendering

  Database:
    connect [<dsn>]         Connect (reconnects to the last DSN if omitted)
    disconnect              Close the connection
    run                     Execute SELECT * FROM <table> WHERE (...)

  exit, quit                Leave the shell`)
}
