package flatten

// FlatNode is the flattened form of one syntax node.
type FlatNode struct {
	Path            string
	Name            string
	Type            string
	FirstTokenIndex int
	LastTokenIndex  int
	StartOffset     int
	StartLine       int
	StartColumn     int
	Length          int
	// Identifier is the reconstructed name; empty when the node has none.
	Identifier      string
	OtherAttributes []OtherAttribute
}

// OtherAttribute is a scalar attribute captured as text, in registry order.
type OtherAttribute struct {
	Name  string
	Value string
}
