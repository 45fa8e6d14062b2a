// Package managers builds SELECT and DELETE statements fluently and renders
// them through a visitor after running the transformer pipeline.
package managers

import (
	"slices"

	"github.com/bawdo/between/nodes"
	"github.com/bawdo/between/plugins"
)

// SelectManager builds a SELECT around a SelectCore. Builder methods mutate
// the manager and return it for chaining.
type SelectManager struct {
	treeManager
	Core *nodes.SelectCore
}

// NewSelectManager starts a SELECT * FROM from. A nil from leaves FROM unset.
func NewSelectManager(from nodes.Node) *SelectManager {
	return &SelectManager{Core: &nodes.SelectCore{From: from}}
}

// Select replaces the projection list.
func (m *SelectManager) Select(projections ...nodes.Node) *SelectManager {
	m.Core.Projections = projections
	return m
}

// Project is Select.
func (m *SelectManager) Project(projections ...nodes.Node) *SelectManager {
	return m.Select(projections...)
}

// From replaces the FROM source.
func (m *SelectManager) From(table nodes.Node) *SelectManager {
	m.Core.From = table
	return m
}

// Where adds conditions. All conditions, across calls, are ANDed.
func (m *SelectManager) Where(conditions ...nodes.Node) *SelectManager {
	m.Core.Wheres = append(m.Core.Wheres, conditions...)
	return m
}

// Order adds ORDER BY terms such as col.Asc().
func (m *SelectManager) Order(orderings ...nodes.Node) *SelectManager {
	m.Core.Orders = append(m.Core.Orders, orderings...)
	return m
}

func (m *SelectManager) Limit(n int) *SelectManager {
	m.Core.Limit = nodes.Literal(n)
	return m
}

func (m *SelectManager) Offset(n int) *SelectManager {
	m.Core.Offset = nodes.Literal(n)
	return m
}

// Use appends a transformer to run on every ToSQL.
func (m *SelectManager) Use(t plugins.Transformer) *SelectManager {
	m.addTransformer(t)
	return m
}

// ToSQL runs the transformers over a copy of the core and renders it with
// v. The error is a transformer failure or an incomplete BETWEEN
// (nodes.ErrIncompleteBetween); params is nil unless v collects them.
func (m *SelectManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	core := m.CloneCore()
	for _, t := range m.transformers {
		var err error
		if core, err = t.TransformSelect(core); err != nil {
			return "", nil, err
		}
	}
	return render(v, core)
}

// Accept renders the core as-is, without transformers, so a manager can be
// used where a Node is expected.
func (m *SelectManager) Accept(v nodes.Visitor) string {
	return m.Core.Accept(v)
}

// CloneCore copies the core and its clause slices. Nodes are shared; they
// are immutable or treated as such.
func (m *SelectManager) CloneCore() *nodes.SelectCore {
	c := *m.Core
	c.Projections = slices.Clone(m.Core.Projections)
	c.Wheres = slices.Clone(m.Core.Wheres)
	c.Orders = slices.Clone(m.Core.Orders)
	return &c
}
