package parser

import (
	"errors"
	"fmt"

	tok "github.com/shibukawa/sqlflat/tokenizer"
)

// Sentinel errors - syntax
var (
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrExpectedExpression   = errors.New("expected expression")
	ErrExpectedIdentifier   = errors.New("expected identifier")
)

// Error numbers reported on the wire. Lexical errors are 2xx, syntax errors 1xx.
const (
	CodeUnexpectedToken        = 101
	CodeUnexpectedEndOfInput   = 102
	CodeExpectedExpression     = 103
	CodeExpectedIdentifier     = 104
	CodeUnterminatedString     = 201
	CodeUnterminatedComment    = 202
	CodeUnterminatedIdentifier = 203
	CodeInvalidNumber          = 204
	CodeUnknown                = 999
)

var errorCodes = []struct {
	err  error
	code int
}{
	{ErrUnexpectedToken, CodeUnexpectedToken},
	{ErrUnexpectedEndOfInput, CodeUnexpectedEndOfInput},
	{ErrExpectedExpression, CodeExpectedExpression},
	{ErrExpectedIdentifier, CodeExpectedIdentifier},
	{tok.ErrUnterminatedString, CodeUnterminatedString},
	{tok.ErrUnterminatedComment, CodeUnterminatedComment},
	{tok.ErrUnterminatedIdentifier, CodeUnterminatedIdentifier},
	{tok.ErrInvalidNumber, CodeInvalidNumber},
}

// ErrorCode returns the wire error number for err.
func ErrorCode(err error) int {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}

	return CodeUnknown
}

// ParseError is one structural error of the input.
type ParseError struct {
	Message string
	Number  int
	Line    int
	Column  int
	Offset  int

	err error
}

func newParseError(err error, pos tok.Position) *ParseError {
	return &ParseError{
		Message: err.Error(),
		Number:  ErrorCode(err),
		Line:    pos.Line,
		Column:  pos.Column,
		Offset:  pos.Offset,
		err:     err,
	}
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Line, e.Column)
}

func (e *ParseError) Unwrap() error {
	return e.err
}
