package flatten

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/shibukawa/sqlflat/ast"
)

// Class tells the flattener what to do with one attribute value.
type Class int

const (
	Skip Class = iota
	Scalar
	CompoundIdentifierText
	ChildCollection
	ChildSingle
	Null
)

func (c Class) String() string {
	switch c {
	case Skip:
		return "Skip"
	case Scalar:
		return "Scalar"
	case CompoundIdentifierText:
		return "CompoundIdentifierText"
	case ChildCollection:
		return "ChildCollection"
	case ChildSingle:
		return "ChildSingle"
	case Null:
		return "Null"
	default:
		return "UNKNOWN"
	}
}

// identifierPartsAttribute holds the parts of a dotted name.
const identifierPartsAttribute = "Identifiers"

// skipped lists structural and derived attributes that are never emitted.
var skipped = []string{
	"ScriptTokenStream",
	"StartOffset",
	"FragmentLength",
	"StartLine",
	"StartColumn",
	"FirstTokenIndex",
	"LastTokenIndex",
	"Count",
	"ServerIdentifier",
	"DatabaseIdentifier",
	"SchemaIdentifier",
	"BaseIdentifier",
}

// IsSkipped reports whether the attribute is excluded by name alone.
func IsSkipped(name string) bool {
	return slices.Contains(skipped, name)
}

// Classify decides how an attribute is flattened.
func Classify(name string, value any) (Class, error) {
	if IsSkipped(name) {
		return Skip, nil
	}
	if name == identifierPartsAttribute {
		parts, ok := value.([]ast.Node)
		if !ok {
			return Skip, fmt.Errorf("%w: %s is %T, want identifier parts", ErrUnclassifiedAttribute, name, value)
		}
		for _, part := range parts {
			if _, ok := part.(*ast.Identifier); !ok {
				return Skip, fmt.Errorf("%w: %s contains %T, want identifier", ErrUnclassifiedAttribute, name, part)
			}
		}
		return CompoundIdentifierText, nil
	}

	switch value.(type) {
	case nil:
		return Null, nil
	case ast.Node:
		return ChildSingle, nil
	case []ast.Node:
		return ChildCollection, nil
	case string, bool, int, fmt.Stringer:
		return Scalar, nil
	}
	return Skip, fmt.Errorf("%w: %s is %T", ErrUnclassifiedAttribute, name, value)
}

// scalarText renders a Scalar value.
func scalarText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}
