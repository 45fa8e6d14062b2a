package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bawdo/between/nodes"
)

// AssertSQL accepts a visitor and node, renders the SQL, and compares it with the expected string.
// Collected parameters are reset first so a visitor can be reused across assertions.
func AssertSQL(t *testing.T, v nodes.Visitor, node nodes.Node, expected string) {
	t.Helper()
	if p, ok := v.(nodes.Parameterizer); ok {
		p.Reset()
	}
	assert.Equal(t, expected, node.Accept(v))
}

// AssertParams renders node and checks both the SQL and the collected bind parameters.
func AssertParams(t *testing.T, v nodes.Visitor, node nodes.Node, expectedSQL string, expectedParams []any) {
	t.Helper()
	p, ok := v.(nodes.Parameterizer)
	if !assert.True(t, ok, "visitor %T does not collect parameters", v) {
		return
	}
	p.Reset()
	assert.Equal(t, expectedSQL, node.Accept(v))
	assert.Equal(t, expectedParams, p.Params())
}
