package nodes

import "reflect"

// Equal reports whether two nodes represent the same expression. Identical
// pointers are equal; otherwise nodes of the same type are compared
// structurally, so two separately built Literal(5) or table.Col("id")
// values compare equal. A nil node only equals nil.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}
