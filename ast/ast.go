// Package ast defines the syntax tree produced by the parser.
//
// The node kinds form a closed set. Every node embeds BaseNode, which records
// the token extent and source position of the fragment it was parsed from.
// Attributes are the exported fields of each node struct; a few derived
// attributes (SchemaObjectName parts, MultiPartIdentifier.Count) are methods.
package ast

// Node represents AST node interface
// All AST nodes must implement this interface.
type Node interface {
	Kind() NodeKind
	Base() *BaseNode
}

// Statement is a top level statement of a script.
type Statement interface {
	Node
	statementNode()
}

// QueryExpression is a SELECT body: a query specification, a set operation
// or a parenthesised query.
type QueryExpression interface {
	Node
	queryExpressionNode()
}

// TableReference is an entry of a FROM clause.
type TableReference interface {
	Node
	tableReferenceNode()
}

// SelectElement is an item of a select list.
type SelectElement interface {
	Node
	selectElementNode()
}

// InsertSource is the data part of an INSERT statement.
type InsertSource interface {
	Node
	insertSourceNode()
}

// Expression is a scalar or boolean expression.
type Expression interface {
	Node
	expressionNode()
}

// BaseNode is the base implementation of AST nodes.
// Token indexes point into the full token stream, trivia included.
type BaseNode struct {
	FirstTokenIndex int
	LastTokenIndex  int
	StartOffset     int
	StartLine       int
	StartColumn     int
	FragmentLength  int
}

func (n *BaseNode) Base() *BaseNode {
	return n
}
