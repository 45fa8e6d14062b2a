package nodes

// Table is a named relation. Columns are built from it with Col.
type Table struct {
	Name string
}

func NewTable(name string) *Table { return &Table{Name: name} }

func (t *Table) Accept(v Visitor) string { return v.VisitTable(t) }

// Col returns the column name qualified by this table.
func (t *Table) Col(name string) *Attribute { return NewAttribute(t, name) }

// Alias returns "t AS name". Columns built from the alias are qualified
// with name instead of the table.
func (t *Table) Alias(name string) *TableAlias {
	return &TableAlias{Relation: t, AliasName: name}
}

// Star returns t.*.
func (t *Table) Star() *StarNode { return &StarNode{Table: t} }

type TableAlias struct {
	Relation  *Table
	AliasName string
}

func (ta *TableAlias) Accept(v Visitor) string { return v.VisitTableAlias(ta) }

func (ta *TableAlias) Col(name string) *Attribute { return NewAttribute(ta, name) }

// RelationName is the qualifier for columns of n: a table's name or an
// alias's alias. Anything else yields "".
func RelationName(n Node) string {
	if ta, ok := n.(*TableAlias); ok {
		return ta.AliasName
	}
	if t, ok := n.(*Table); ok {
		return t.Name
	}
	return ""
}
