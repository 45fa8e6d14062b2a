// Package plugins holds the transformer hook that managers run over a
// statement before rendering it.
package plugins

import "github.com/bawdo/between/nodes"

// Transformer rewrites a statement copy on every ToSQL. Returning an error
// aborts rendering.
type Transformer interface {
	TransformSelect(core *nodes.SelectCore) (*nodes.SelectCore, error)
	TransformDelete(stmt *nodes.DeleteStatement) (*nodes.DeleteStatement, error)
}

// BaseTransformer passes statements through untouched. Embed it and
// override the statement kinds you care about.
type BaseTransformer struct{}

func (BaseTransformer) TransformSelect(c *nodes.SelectCore) (*nodes.SelectCore, error) {
	return c, nil
}

func (BaseTransformer) TransformDelete(s *nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	return s, nil
}

// TableRef pairs the node columns should be qualified with (a table or its
// alias) with the underlying table name used for matching.
type TableRef struct {
	Relation nodes.Node
	Name     string
}

// TableRefOf resolves a FROM source. ok is false for nil or anything that
// is not a table or table alias.
func TableRefOf(n nodes.Node) (ref TableRef, ok bool) {
	switch r := n.(type) {
	case *nodes.Table:
		return TableRef{Relation: r, Name: r.Name}, true
	case *nodes.TableAlias:
		return TableRef{Relation: r, Name: r.Relation.Name}, true
	}
	return TableRef{}, false
}
