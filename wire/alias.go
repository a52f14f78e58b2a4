// Package wire encodes flattened trees, token streams and parse errors into
// the compact JSON exchanged with clients.
package wire

import "github.com/shibukawa/sqlflat/tokenizer"

// KeyAlias pairs a canonical attribute name with its short wire key.
type KeyAlias struct {
	Canonical string
	Short     string
}

// aliases is in declaration order; records are encoded in this order.
var aliases = []KeyAlias{
	{"path", "p"},
	{"name", "n"},
	{"type", "t"},
	{"firstTokenIndex", "fi"},
	{"lastTokenIndex", "li"},
	{"startOffset", "so"},
	{"startLine", "sl"},
	{"startColumn", "sc"},
	{"length", "le"},
	{"identifier", "id"},
	{"otherAttributes", "oa"},
	{"kind", "k"},
	{"offset", "of"},
	{"line", "ln"},
	{"column", "co"},
	{"text", "tx"},
	{"message", "m"},
	{"code", "cd"},
}

var shortNames = func() map[string]string {
	m := make(map[string]string, len(aliases))
	for _, a := range aliases {
		m[a.Canonical] = a.Short
	}
	return m
}()

// Alias returns the wire key for a canonical name. Unmapped names pass
// through unchanged.
func Alias(name string) string {
	if s, ok := shortNames[name]; ok {
		return s
	}
	return name
}

// Keys returns the alias table in declaration order.
func Keys() []KeyAlias {
	result := make([]KeyAlias, len(aliases))
	copy(result, aliases)
	return result
}

// TokenType is one entry of the token type enumeration.
type TokenType struct {
	Name  string `json:"n"`
	Value int    `json:"v"`
}

// TokenTypes enumerates every token kind with its integer value.
func TokenTypes() []TokenType {
	all := tokenizer.AllTokenTypes()
	result := make([]TokenType, 0, len(all))
	for _, t := range all {
		result = append(result, TokenType{Name: t.String(), Value: int(t)})
	}
	return result
}
