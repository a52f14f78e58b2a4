package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnterminatedString     = errors.New("unterminated string literal")
	ErrUnterminatedComment    = errors.New("unterminated block comment")
	ErrUnterminatedIdentifier = errors.New("unterminated quoted identifier")
	ErrInvalidNumber          = errors.New("invalid number format")
)

// TokenType represents the type of a token.
// The integer values are part of the wire format (TokenStream kinds); new
// types go after OTHER.
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	WHITESPACE
	IDENTIFIER        // bare identifiers
	QUOTED_IDENTIFIER // "name", `name`, [name]
	STRING            // 'text'
	NUMBER            // numeric literals
	PARAMETER         // ?, $1, :name, @name
	OPENED_PARENS     // (
	CLOSED_PARENS     // )
	COMMA             // ,
	SEMICOLON         // ;
	DOT               // .

	// Operators
	EQUAL         // =
	NOT_EQUAL     // <>, !=
	LESS_THAN     // <
	GREATER_THAN  // >
	LESS_EQUAL    // <=
	GREATER_EQUAL // >=
	PLUS          // +
	MINUS         // -
	MULTIPLY      // *
	DIVIDE        // /
	MODULO        // %
	CONCAT        // ||

	// DML
	SELECT
	INSERT
	UPDATE
	DELETE
	INTO
	VALUES
	SET
	DEFAULT
	RETURNING

	// Query clauses
	FROM
	WHERE
	GROUP
	BY
	HAVING
	ORDER
	ASC
	DESC
	LIMIT
	OFFSET
	UNION
	INTERSECT
	EXCEPT
	ALL
	DISTINCT
	AS
	WITH
	RECURSIVE

	// Joins
	JOIN
	INNER
	LEFT
	RIGHT
	FULL
	OUTER
	CROSS
	ON

	// Logical operators and predicates
	AND
	OR
	NOT
	IN
	EXISTS
	BETWEEN
	LIKE
	IS
	NULL
	TRUE
	FALSE

	// Expressions
	CASE
	WHEN
	THEN
	ELSE
	END
	CAST
	OVER
	PARTITION

	// Comments
	LINE_COMMENT  // -- line comment
	BLOCK_COMMENT // /* block comment */

	// Others
	OTHER // characters the grammar does not know
)

var tokenTypeNames = [...]string{
	EOF:               "EOF",
	WHITESPACE:        "WHITESPACE",
	IDENTIFIER:        "IDENTIFIER",
	QUOTED_IDENTIFIER: "QUOTED_IDENTIFIER",
	STRING:            "STRING",
	NUMBER:            "NUMBER",
	PARAMETER:         "PARAMETER",
	OPENED_PARENS:     "OPENED_PARENS",
	CLOSED_PARENS:     "CLOSED_PARENS",
	COMMA:             "COMMA",
	SEMICOLON:         "SEMICOLON",
	DOT:               "DOT",
	EQUAL:             "EQUAL",
	NOT_EQUAL:         "NOT_EQUAL",
	LESS_THAN:         "LESS_THAN",
	GREATER_THAN:      "GREATER_THAN",
	LESS_EQUAL:        "LESS_EQUAL",
	GREATER_EQUAL:     "GREATER_EQUAL",
	PLUS:              "PLUS",
	MINUS:             "MINUS",
	MULTIPLY:          "MULTIPLY",
	DIVIDE:            "DIVIDE",
	MODULO:            "MODULO",
	CONCAT:            "CONCAT",
	SELECT:            "SELECT",
	INSERT:            "INSERT",
	UPDATE:            "UPDATE",
	DELETE:            "DELETE",
	INTO:              "INTO",
	VALUES:            "VALUES",
	SET:               "SET",
	DEFAULT:           "DEFAULT",
	RETURNING:         "RETURNING",
	FROM:              "FROM",
	WHERE:             "WHERE",
	GROUP:             "GROUP",
	BY:                "BY",
	HAVING:            "HAVING",
	ORDER:             "ORDER",
	ASC:               "ASC",
	DESC:              "DESC",
	LIMIT:             "LIMIT",
	OFFSET:            "OFFSET",
	UNION:             "UNION",
	INTERSECT:         "INTERSECT",
	EXCEPT:            "EXCEPT",
	ALL:               "ALL",
	DISTINCT:          "DISTINCT",
	AS:                "AS",
	WITH:              "WITH",
	RECURSIVE:         "RECURSIVE",
	JOIN:              "JOIN",
	INNER:             "INNER",
	LEFT:              "LEFT",
	RIGHT:             "RIGHT",
	FULL:              "FULL",
	OUTER:             "OUTER",
	CROSS:             "CROSS",
	ON:                "ON",
	AND:               "AND",
	OR:                "OR",
	NOT:               "NOT",
	IN:                "IN",
	EXISTS:            "EXISTS",
	BETWEEN:           "BETWEEN",
	LIKE:              "LIKE",
	IS:                "IS",
	NULL:              "NULL",
	TRUE:              "TRUE",
	FALSE:             "FALSE",
	CASE:              "CASE",
	WHEN:              "WHEN",
	THEN:              "THEN",
	ELSE:              "ELSE",
	END:               "END",
	CAST:              "CAST",
	OVER:              "OVER",
	PARTITION:         "PARTITION",
	LINE_COMMENT:      "LINE_COMMENT",
	BLOCK_COMMENT:     "BLOCK_COMMENT",
	OTHER:             "OTHER",
}

// String returns the string representation of TokenType
func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "UNKNOWN"
	}

	return tokenTypeNames[t]
}

// IsKeyword reports whether t is a reserved SQL keyword.
func (t TokenType) IsKeyword() bool {
	return t >= SELECT && t <= PARTITION
}

// IsTrivia reports whether t carries no grammatical meaning (whitespace and comments).
func (t TokenType) IsTrivia() bool {
	return t == WHITESPACE || t == LINE_COMMENT || t == BLOCK_COMMENT
}

// AllTokenTypes returns every token type known to the tokenizer in
// ascending integer order.
func AllTokenTypes() []TokenType {
	types := make([]TokenType, len(tokenTypeNames))
	for i := range tokenTypeNames {
		types[i] = TokenType(i)
	}

	return types
}

// Position represents a position in the source code.
// Line and Column are 1-based; Column counts runes. Offset is a byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Position.Offset + len(t.Value)
}

// Error is a lexical error tied to the position where the offending token starts.
type Error struct {
	Err      error
	Position Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Err.Error(), e.Position.Line, e.Position.Column)
}

func (e *Error) Unwrap() error {
	return e.Err
}
