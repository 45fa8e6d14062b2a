// Package rangefilter provides a Transformer that restricts every query to
// a range of a column by appending a BETWEEN predicate to its WHERE clause.
//
// Typical uses are time windows and partition ranges that every query
// against a table must respect:
//
//	window := rangefilter.New("created_at", from, to)
//	query := managers.NewSelectManager(events).Use(window)
//	// SELECT * FROM "events" WHERE ("events"."created_at" BETWEEN $1 AND $2)
//
// # Restrict to specific tables
//
//	rangefilter.New("tenant_id", 100, 199, rangefilter.WithTables("orders"))
//
// # Exclude a range
//
//	rangefilter.New("id", 1, 1000, rangefilter.Negated())
//	// ... WHERE ("orders"."id" NOT BETWEEN 1 AND 1000)
package rangefilter

import (
	"fmt"

	"github.com/bawdo/between/nodes"
	"github.com/bawdo/between/plugins"
)

// RangeFilter is a Transformer that appends "column [NOT] BETWEEN lower AND
// upper" for the query's table (or a configured subset of tables).
type RangeFilter struct {
	plugins.BaseTransformer
	Column  string
	Lower   any
	Upper   any
	negated bool
	tables  map[string]bool // nil means apply to all tables
}

// Option configures a RangeFilter transformer.
type Option func(*RangeFilter)

// WithTables restricts the plugin to only the named tables.
func WithTables(names ...string) Option {
	return func(rf *RangeFilter) {
		rf.tables = make(map[string]bool, len(names))
		for _, n := range names {
			rf.tables[n] = true
		}
	}
}

// Negated makes the plugin exclude the range (NOT BETWEEN) instead.
func Negated() Option {
	return func(rf *RangeFilter) { rf.negated = true }
}

// New creates a RangeFilter on column with inclusive bounds lower and upper.
func New(column string, lower, upper any, opts ...Option) *RangeFilter {
	rf := &RangeFilter{Column: column, Lower: lower, Upper: upper}
	for _, o := range opts {
		o(rf)
	}
	return rf
}

// TransformSelect appends the range predicate when the FROM table matches.
func (rf *RangeFilter) TransformSelect(core *nodes.SelectCore) (*nodes.SelectCore, error) {
	pred, err := rf.predicateFor(core.From)
	if err != nil {
		return nil, err
	}
	if pred != nil {
		core.Wheres = append(core.Wheres, pred)
	}
	return core, nil
}

// TransformDelete appends the range predicate when the target table matches.
func (rf *RangeFilter) TransformDelete(stmt *nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	pred, err := rf.predicateFor(stmt.From)
	if err != nil {
		return nil, err
	}
	if pred != nil {
		stmt.Wheres = append(stmt.Wheres, pred)
	}
	return stmt, nil
}

// predicateFor returns nil, nil when the relation is not a matching table.
func (rf *RangeFilter) predicateFor(from nodes.Node) (*nodes.BetweenNode, error) {
	ref, ok := plugins.TableRefOf(from)
	if !ok || !rf.appliesTo(ref.Name) {
		return nil, nil
	}
	col := nodes.NewAttribute(ref.Relation, rf.Column)
	pred := col.Between(rf.Lower, rf.Upper)
	if rf.negated {
		pred = pred.Negate()
	}
	if err := pred.Validate(); err != nil {
		return nil, fmt.Errorf("rangefilter %s.%s: %w", ref.Name, rf.Column, err)
	}
	return pred, nil
}

func (rf *RangeFilter) appliesTo(tableName string) bool {
	if rf.tables == nil {
		return true
	}
	return rf.tables[tableName]
}
