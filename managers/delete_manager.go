package managers

import (
	"slices"

	"github.com/bawdo/between/nodes"
	"github.com/bawdo/between/plugins"
)

// DeleteManager builds a DELETE statement.
type DeleteManager struct {
	treeManager
	Statement *nodes.DeleteStatement
}

// NewDeleteManager starts DELETE FROM from.
func NewDeleteManager(from nodes.Node) *DeleteManager {
	return &DeleteManager{Statement: &nodes.DeleteStatement{From: from}}
}

// Where adds conditions, ANDed with any existing ones.
func (m *DeleteManager) Where(conditions ...nodes.Node) *DeleteManager {
	m.Statement.Wheres = append(m.Statement.Wheres, conditions...)
	return m
}

// Use appends a transformer to run on every ToSQL.
func (m *DeleteManager) Use(t plugins.Transformer) *DeleteManager {
	m.addTransformer(t)
	return m
}

// ToSQL is SelectManager.ToSQL for DELETE.
func (m *DeleteManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	stmt := &nodes.DeleteStatement{
		From:   m.Statement.From,
		Wheres: slices.Clone(m.Statement.Wheres),
	}
	for _, t := range m.transformers {
		var err error
		if stmt, err = t.TransformDelete(stmt); err != nil {
			return "", nil, err
		}
	}
	return render(v, stmt)
}
