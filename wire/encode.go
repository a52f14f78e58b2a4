package wire

import (
	"github.com/shibukawa/sqlflat/flatten"
	"github.com/shibukawa/sqlflat/parser"
	"github.com/shibukawa/sqlflat/tokenizer"
)

// Envelope keys are never aliased.
const (
	KeyTree        = "Tree"
	KeyTokenStream = "TokenStream"
	KeyErrors      = "Errors"
	KeyKeys        = "Keys"
	KeyTokenTypes  = "TokenTypes"
)

// Node encodes one flattened node. Absent values are omitted.
func Node(n flatten.FlatNode) Object {
	o := make(Object, 0, 11)
	o.Set(Alias("path"), n.Path)
	if n.Name != "" {
		o.Set(Alias("name"), n.Name)
	}
	o.Set(Alias("type"), n.Type)
	o.Set(Alias("firstTokenIndex"), n.FirstTokenIndex)
	o.Set(Alias("lastTokenIndex"), n.LastTokenIndex)
	o.Set(Alias("startOffset"), n.StartOffset)
	o.Set(Alias("startLine"), n.StartLine)
	o.Set(Alias("startColumn"), n.StartColumn)
	o.Set(Alias("length"), n.Length)
	if n.Identifier != "" {
		o.Set(Alias("identifier"), n.Identifier)
	}
	if len(n.OtherAttributes) > 0 {
		attrs := make(Object, 0, len(n.OtherAttributes))
		for _, a := range n.OtherAttributes {
			attrs.Set(Alias(a.Name), a.Value)
		}
		o.Set(Alias("otherAttributes"), attrs)
	}
	return o
}

// Token encodes one lexical token.
func Token(t tokenizer.Token) Object {
	return Object{
		{Alias("kind"), int(t.Type)},
		{Alias("offset"), t.Position.Offset},
		{Alias("line"), t.Position.Line},
		{Alias("column"), t.Position.Column},
		{Alias("text"), t.Value},
	}
}

// Error encodes one parse error.
func Error(e *parser.ParseError) Object {
	return Object{
		{Alias("message"), e.Message},
		{Alias("code"), e.Number},
		{Alias("line"), e.Line},
		{Alias("column"), e.Column},
		{Alias("offset"), e.Offset},
	}
}

// Empty is the reply to an empty request.
func Empty() Object {
	return Object{}
}

// Meta describes the wire format: the alias table and the token kinds.
func Meta() Object {
	keys := make(Object, 0, len(aliases))
	for _, a := range aliases {
		keys.Set(a.Canonical, a.Short)
	}
	return Object{
		{KeyKeys, keys},
		{KeyTokenTypes, TokenTypes()},
	}
}

// Errors is the reply for input with structural errors.
func Errors(errs []*parser.ParseError) Object {
	encoded := make([]Object, 0, len(errs))
	for _, e := range errs {
		encoded = append(encoded, Error(e))
	}
	return Object{{KeyErrors, encoded}}
}

// Tree is the reply for successfully parsed input.
func Tree(nodes []flatten.FlatNode, tokens []tokenizer.Token) Object {
	tree := make([]Object, 0, len(nodes))
	for _, n := range nodes {
		tree = append(tree, Node(n))
	}
	stream := make([]Object, 0, len(tokens))
	for _, t := range tokens {
		stream = append(stream, Token(t))
	}
	return Object{
		{KeyTree, tree},
		{KeyTokenStream, stream},
	}
}
