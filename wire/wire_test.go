package wire

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/sqlflat/flatten"
	"github.com/shibukawa/sqlflat/parser"
	"github.com/shibukawa/sqlflat/tokenizer"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := Marshal(v)
	assert.NoError(t, err)
	return string(data)
}

func TestAlias(t *testing.T) {
	assert.Equal(t, "p", Alias("path"))
	assert.Equal(t, "oa", Alias("otherAttributes"))
	assert.Equal(t, "cd", Alias("code"))
	assert.Equal(t, "Value", Alias("Value"))
	assert.Equal(t, "Tree", Alias("Tree"))
}

func TestKeysAreUnique(t *testing.T) {
	keys := Keys()
	assert.Equal(t, 18, len(keys))
	assert.Equal(t, KeyAlias{Canonical: "path", Short: "p"}, keys[0])

	seen := map[string]bool{}
	for _, k := range keys {
		assert.False(t, seen[k.Short], "duplicate short key %s", k.Short)
		seen[k.Short] = true
	}

	keys[0].Short = "changed"
	assert.Equal(t, "p", Alias("path"))
}

func TestTokenTypes(t *testing.T) {
	types := TokenTypes()
	assert.Equal(t, len(tokenizer.AllTokenTypes()), len(types))
	assert.Equal(t, TokenType{Name: "EOF", Value: 0}, types[0])
	for _, tt := range types {
		assert.Equal(t, tt.Name, tokenizer.TokenType(tt.Value).String())
	}
}

func TestEncodeNode(t *testing.T) {
	t.Run("root omits absent values", func(t *testing.T) {
		root := flatten.FlatNode{Path: "/", Type: "Script", LastTokenIndex: 3, StartLine: 1, StartColumn: 1, Length: 8}
		assert.Equal(t,
			`{"p":"/","t":"Script","fi":0,"li":3,"so":0,"sl":1,"sc":1,"le":8}`,
			marshal(t, Node(root)))
	})
	t.Run("identifier and attributes", func(t *testing.T) {
		n := flatten.FlatNode{
			Path: "/0/1/", Name: "SchemaObject", Type: "SchemaObjectName",
			FirstTokenIndex: 6, LastTokenIndex: 12, StartOffset: 14, StartLine: 1, StartColumn: 15, Length: 18,
			Identifier:      "dbo.Orders",
			OtherAttributes: []flatten.OtherAttribute{{Name: "Value", Value: "a<b"}, {Name: "All", Value: "true"}},
		}
		assert.Equal(t,
			`{"p":"/0/1/","n":"SchemaObject","t":"SchemaObjectName","fi":6,"li":12,"so":14,"sl":1,"sc":15,"le":18,"id":"dbo.Orders","oa":{"Value":"a<b","All":"true"}}`,
			marshal(t, Node(n)))
	})
}

func TestEncodeToken(t *testing.T) {
	token := tokenizer.Token{Type: tokenizer.SELECT, Value: "select", Position: tokenizer.Position{Line: 2, Column: 3, Offset: 9}}
	assert.Equal(t,
		fmt.Sprintf(`{"k":%d,"of":9,"ln":2,"co":3,"tx":"select"}`, int(tokenizer.SELECT)),
		marshal(t, Token(token)))
}

func TestEnvelopes(t *testing.T) {
	assert.Equal(t, `{}`, marshal(t, Empty()))
	assert.Equal(t, `{}`, marshal(t, Object(nil)))

	result := parser.Parse("SELECT FROM")
	errs := marshal(t, Errors(result.Errors))
	assert.Equal(t, `{"Errors":[{"m":"expected expression near 'FROM'","cd":103,"ln":1,"co":8,"of":7}]}`, errs)

	tree := marshal(t, Tree(nil, nil))
	assert.Equal(t, `{"Tree":[],"TokenStream":[]}`, tree)
}

func TestMeta(t *testing.T) {
	meta := marshal(t, Meta())
	assert.True(t, strings.HasPrefix(meta, `{"Keys":{"path":"p","name":"n","type":"t",`), meta)
	assert.Contains(t, meta, `"code":"cd"},"TokenTypes":[{"n":"EOF","v":0},`)
	assert.True(t, strings.HasSuffix(meta, "]}"))

	keys, ok := Meta().get(KeyKeys)
	assert.True(t, ok)
	assert.Equal(t, len(Keys()), len(keys.(Object)))
}
