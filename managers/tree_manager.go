package managers

import (
	"github.com/bawdo/between/nodes"
	"github.com/bawdo/between/plugins"
)

// treeManager carries the transformer pipeline shared by all managers.
type treeManager struct {
	transformers []plugins.Transformer
}

func (tm *treeManager) addTransformer(t plugins.Transformer) {
	tm.transformers = append(tm.transformers, t)
}

// Transformers returns the pipeline in the order it runs.
func (tm *treeManager) Transformers() []plugins.Transformer {
	return tm.transformers
}

// render validates root, then renders it with a freshly reset visitor.
// Validating first turns an incomplete BETWEEN into an error instead of a
// panic inside the visitor.
func render(v nodes.Visitor, root nodes.Node) (string, []any, error) {
	if err := nodes.Check(root); err != nil {
		return "", nil, err
	}

	p, ok := v.(nodes.Parameterizer)
	if !ok {
		return root.Accept(v), nil, nil
	}
	p.Reset()
	sql := root.Accept(v)
	return sql, p.Params(), nil
}
