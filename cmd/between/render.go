package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bawdo/between/nodes"
	"github.com/bawdo/between/visitors"
)

// renderOptions holds flags for the render command.
type renderOptions struct {
	*rootOptions
	Not     bool
	Quote   bool
	NoQuote bool
	Params  bool
	Table   string
}

func newRenderCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &renderOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <expr> <lower> [and] <upper>",
		Short: "Render a BETWEEN predicate",
		Long: `Render a BETWEEN predicate for the selected dialect.

Operands are identifiers (col, t.col), 'strings', numbers, true/false,
null, or raw:SQL for a raw fragment.

Example:
  between render age 18 65
  between render --engine mysql --not t.price 10 and 20
  between render --from orders --params created_at "'2024-01-01'" "'2024-12-31'"`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Not, "not", false, "render NOT BETWEEN")
	cmd.Flags().BoolVar(&opts.Quote, "quote", false, "force identifier quoting")
	cmd.Flags().BoolVar(&opts.NoQuote, "no-quote", false, "render identifiers bare")
	cmd.Flags().BoolVar(&opts.Params, "params", false, "render bind placeholders and print the params")
	cmd.Flags().StringVar(&opts.Table, "from", "", "wrap the predicate in SELECT * FROM <table> WHERE (...)")
	cmd.MarkFlagsMutuallyExclusive("quote", "no-quote")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions, args []string) error {
	expr, bounds, err := parseBetweenArgs(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(bounds) != 2 {
		return errors.New("render needs both a lower and an upper bound")
	}
	pred := buildBetween(expr, opts.Not, bounds)

	vopts := []visitors.Option{visitors.WithoutParams()}
	if opts.Params {
		vopts = []visitors.Option{visitors.WithParams()}
	}
	if opts.Quote {
		vopts = append(vopts, visitors.WithQuotedIdentifiers())
	}
	if opts.NoQuote {
		vopts = append(vopts, visitors.WithoutQuotedIdentifiers())
	}
	v, err := visitors.ForEngine(opts.Engine, vopts...)
	if err != nil {
		return err
	}

	var root nodes.Node = pred
	if opts.Table != "" {
		if !isIdentifier(opts.Table) {
			return fmt.Errorf("invalid table name: %q", opts.Table)
		}
		root = selectFrom(opts.Table, pred)
	}

	sqlStr, params, err := renderNode(v, root)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, sqlStr)
	if len(params) > 0 {
		_, _ = fmt.Fprintf(out, "-- params: %v\n", params)
	}
	return nil
}
