package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestKindNames(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range AllKinds() {
		name := k.String()
		assert.NotEqual(t, "UNKNOWN", name)
		assert.NotEqual(t, "", name)
		assert.False(t, seen[name], "duplicate kind name %s", name)
		seen[name] = true
	}

	assert.Equal(t, "Script", ScriptKind.String())
	assert.Equal(t, "SqlDataTypeReference", SqlDataTypeReferenceKind.String())
	assert.Equal(t, "UNKNOWN", NodeKind(-1).String())
	assert.Equal(t, "UNKNOWN", NodeKind(len(AllKinds())).String())
}

func TestSchemaObjectNameParts(t *testing.T) {
	db := &Identifier{Value: "db"}
	schema := &Identifier{Value: "dbo"}
	table := &Identifier{Value: "Orders"}
	name := &SchemaObjectName{Identifiers: []*Identifier{db, schema, table}}

	assert.Equal(t, 3, name.Count())
	assert.Equal(t, table, name.BaseIdentifier())
	assert.Equal(t, schema, name.SchemaIdentifier())
	assert.Equal(t, db, name.DatabaseIdentifier())
	assert.Zero(t, name.ServerIdentifier())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Distinct", UniqueRowFilterDistinct.String())
	assert.Equal(t, "Intersect", BinaryQueryIntersect.String())
	assert.Equal(t, "LeftOuter", JoinLeftOuter.String())
}
