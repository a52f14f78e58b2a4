package ast

// Identifier is a single, possibly quoted, name. Value holds the name with
// delimiters removed and doubled delimiters collapsed.
type Identifier struct {
	BaseNode
	Value     string
	QuoteType QuoteType
}

func (*Identifier) Kind() NodeKind { return IdentifierKind }

// MultiPartIdentifier is a dotted name such as t.col.
type MultiPartIdentifier struct {
	BaseNode
	Identifiers []*Identifier
}

func (*MultiPartIdentifier) Kind() NodeKind { return MultiPartIdentifierKind }

// Count returns the number of name parts.
func (m *MultiPartIdentifier) Count() int {
	return len(m.Identifiers)
}

// SchemaObjectName is a name of a table, function or type: up to
// server.database.schema.object.
type SchemaObjectName struct {
	BaseNode
	Identifiers []*Identifier
}

func (*SchemaObjectName) Kind() NodeKind { return SchemaObjectNameKind }

func (s *SchemaObjectName) Count() int {
	return len(s.Identifiers)
}

// part returns the identifier fromEnd positions before the last one.
func (s *SchemaObjectName) part(fromEnd int) *Identifier {
	i := len(s.Identifiers) - 1 - fromEnd
	if i < 0 {
		return nil
	}

	return s.Identifiers[i]
}

func (s *SchemaObjectName) BaseIdentifier() *Identifier     { return s.part(0) }
func (s *SchemaObjectName) SchemaIdentifier() *Identifier   { return s.part(1) }
func (s *SchemaObjectName) DatabaseIdentifier() *Identifier { return s.part(2) }
func (s *SchemaObjectName) ServerIdentifier() *Identifier   { return s.part(3) }
