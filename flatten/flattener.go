// Package flatten turns a syntax tree into a post-ordered list of FlatNode
// records addressed by hierarchical paths.
package flatten

import (
	"fmt"
	"strings"

	"github.com/shibukawa/sqlflat/ast"
	"github.com/shibukawa/sqlflat/tokenizer"
)

// Flattener flattens trees parsed from one token stream.
type Flattener struct {
	tokens []tokenizer.Token
}

// New returns a Flattener that reads source text from tokens.
func New(tokens []tokenizer.Token) *Flattener {
	return &Flattener{tokens: tokens}
}

// Flatten returns the nodes of the tree under root. A node's entry follows
// the entries of all of its descendants.
func (f *Flattener) Flatten(root ast.Node) ([]FlatNode, error) {
	var out []FlatNode
	if err := f.flatten(RootPath, "", root, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *Flattener) flatten(path, name string, n ast.Node, out *[]FlatNode) error {
	b := n.Base()
	flat := FlatNode{
		Path:            path,
		Name:            name,
		Type:            n.Kind().String(),
		FirstTokenIndex: b.FirstTokenIndex,
		LastTokenIndex:  b.LastTokenIndex,
		StartOffset:     b.StartOffset,
		StartLine:       b.StartLine,
		StartColumn:     b.StartColumn,
		Length:          b.FragmentLength,
	}

	if n.Kind() == ast.IdentifierKind {
		text, err := f.tokenText(b.FirstTokenIndex)
		if err != nil {
			return fmt.Errorf("%w at %s", err, path)
		}
		flat.Identifier = text
		*out = append(*out, flat)
		return nil
	}

	descriptor, err := Lookup(n.Kind())
	if err != nil {
		return fmt.Errorf("%w at %s", err, path)
	}

	index := -1
	for _, a := range descriptor.Attributes {
		if IsSkipped(a.Name) {
			continue
		}
		value := a.Get(n)
		class, err := Classify(a.Name, value)
		if err != nil {
			return fmt.Errorf("%w at %s (%s)", err, path, n.Kind())
		}

		switch class {
		case Scalar:
			flat.OtherAttributes = append(flat.OtherAttributes, OtherAttribute{Name: a.Name, Value: scalarText(value)})
		case CompoundIdentifierText:
			text, err := f.compoundText(value.([]ast.Node))
			if err != nil {
				return fmt.Errorf("%w at %s.%s", err, path, a.Name)
			}
			flat.Identifier = text
		case ChildSingle:
			index++
			if err := f.flatten(ChildPath(path, index), a.Name, value.(ast.Node), out); err != nil {
				return err
			}
		case ChildCollection:
			for _, item := range value.([]ast.Node) {
				index++
				if err := f.flatten(ChildPath(path, index), a.Name, item, out); err != nil {
					return err
				}
			}
		}
	}

	*out = append(*out, flat)
	return nil
}

// compoundText joins the first-token text of each part with dots.
func (f *Flattener) compoundText(parts []ast.Node) (string, error) {
	texts := make([]string, 0, len(parts))
	for _, part := range parts {
		text, err := f.tokenText(part.Base().FirstTokenIndex)
		if err != nil {
			return "", err
		}
		texts = append(texts, text)
	}
	return strings.Join(texts, "."), nil
}

func (f *Flattener) tokenText(index int) (string, error) {
	if index < 0 || index >= len(f.tokens) {
		return "", fmt.Errorf("%w: %d of %d", ErrTokenIndexOutOfRange, index, len(f.tokens))
	}
	return f.tokens[index].Value, nil
}
