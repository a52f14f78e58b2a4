package tokenizer

import (
	"errors"
	"iter"
	"unicode"
	"unicode/utf8"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// SqlTokenizer is a tokenizer that returns an iterator
type SqlTokenizer struct {
	input   string
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
	SkipComments   bool
}

// NewSqlTokenizer creates a new SqlTokenizer
func NewSqlTokenizer(input string, options ...TokenizerOptions) *SqlTokenizer {
	var opts TokenizerOptions
	if len(options) > 0 {
		opts = options[0]
	}

	return &SqlTokenizer{
		input:   input,
		options: opts,
	}
}

// Tokens returns an iterator of tokens.
// Lexical errors are yielded as *Error values and tokenizing continues after
// the offending text. The last yielded token is always EOF.
func (t *SqlTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		s := &scanner{
			input:  t.input,
			line:   1,
			column: 1,
		}

		for {
			token, err := s.next()
			if err != nil {
				if !yield(Token{}, err) {
					return
				}

				continue
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}

			if t.options.SkipComments && (token.Type == LINE_COMMENT || token.Type == BLOCK_COMMENT) {
				continue
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice. All lexical errors are joined into
// the returned error; the token slice is still complete up to EOF.
func (t *SqlTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)

	var errs []error

	for token, err := range t.Tokens() {
		if err != nil {
			errs = append(errs, err)
			continue
		}

		tokens = append(tokens, token)
	}

	return tokens, errors.Join(errs...)
}

const eof rune = -1

type scanner struct {
	input  string
	offset int // byte offset of the next unread rune
	line   int
	column int
}

func (s *scanner) peek() rune {
	return s.peekAt(0)
}

// peekAt looks n runes ahead without consuming.
func (s *scanner) peekAt(n int) rune {
	offset := s.offset
	for i := 0; ; i++ {
		if offset >= len(s.input) {
			return eof
		}

		r, size := utf8.DecodeRuneInString(s.input[offset:])
		if i == n {
			return r
		}

		offset += size
	}
}

func (s *scanner) advance() rune {
	if s.offset >= len(s.input) {
		return eof
	}

	r, size := utf8.DecodeRuneInString(s.input[s.offset:])
	s.offset += size

	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}

	return r
}

func (s *scanner) position() Position {
	return Position{
		Line:   s.line,
		Column: s.column,
		Offset: s.offset,
	}
}

func (s *scanner) emit(tokenType TokenType, start Position) Token {
	return Token{
		Type:     tokenType,
		Value:    s.input[start.Offset:s.offset],
		Position: start,
	}
}

func (s *scanner) next() (Token, error) {
	start := s.position()
	r := s.peek()

	switch {
	case r == eof:
		return Token{Type: EOF, Position: start}, nil
	case unicode.IsSpace(r):
		for unicode.IsSpace(s.peek()) {
			s.advance()
		}

		return s.emit(WHITESPACE, start), nil
	case r == '-' && s.peekAt(1) == '-':
		return s.readLineComment(start), nil
	case r == '/' && s.peekAt(1) == '*':
		return s.readBlockComment(start)
	case r == '\'':
		return s.readQuoted(start, '\'', STRING, ErrUnterminatedString)
	case r == '"':
		return s.readQuoted(start, '"', QUOTED_IDENTIFIER, ErrUnterminatedIdentifier)
	case r == '`':
		return s.readQuoted(start, '`', QUOTED_IDENTIFIER, ErrUnterminatedIdentifier)
	case r == '[':
		return s.readQuoted(start, ']', QUOTED_IDENTIFIER, ErrUnterminatedIdentifier)
	case isDigit(r), r == '.' && isDigit(s.peekAt(1)):
		return s.readNumber(start)
	case isIdentStart(r):
		return s.readWord(start), nil
	case r == '?':
		s.advance()
		return s.emit(PARAMETER, start), nil
	case r == '$' && isDigit(s.peekAt(1)):
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}

		return s.emit(PARAMETER, start), nil
	case (r == ':' || r == '@') && isIdentStart(s.peekAt(1)):
		s.advance()
		for isIdentPart(s.peek()) {
			s.advance()
		}

		return s.emit(PARAMETER, start), nil
	}

	return s.readOperator(start), nil
}

// readOperator reads punctuation and operators; anything unknown becomes OTHER.
func (s *scanner) readOperator(start Position) Token {
	r := s.advance()

	switch r {
	case '(':
		return s.emit(OPENED_PARENS, start)
	case ')':
		return s.emit(CLOSED_PARENS, start)
	case ',':
		return s.emit(COMMA, start)
	case ';':
		return s.emit(SEMICOLON, start)
	case '.':
		return s.emit(DOT, start)
	case '=':
		return s.emit(EQUAL, start)
	case '+':
		return s.emit(PLUS, start)
	case '-':
		return s.emit(MINUS, start)
	case '*':
		return s.emit(MULTIPLY, start)
	case '/':
		return s.emit(DIVIDE, start)
	case '%':
		return s.emit(MODULO, start)
	case '<':
		switch s.peek() {
		case '=':
			s.advance()
			return s.emit(LESS_EQUAL, start)
		case '>':
			s.advance()
			return s.emit(NOT_EQUAL, start)
		}

		return s.emit(LESS_THAN, start)
	case '>':
		if s.peek() == '=' {
			s.advance()
			return s.emit(GREATER_EQUAL, start)
		}

		return s.emit(GREATER_THAN, start)
	case '!':
		if s.peek() == '=' {
			s.advance()
			return s.emit(NOT_EQUAL, start)
		}
	case '|':
		if s.peek() == '|' {
			s.advance()
			return s.emit(CONCAT, start)
		}
	}

	return s.emit(OTHER, start)
}

// readLineComment reads up to, but not including, the line break.
func (s *scanner) readLineComment(start Position) Token {
	for r := s.peek(); r != eof && r != '\n'; r = s.peek() {
		s.advance()
	}

	return s.emit(LINE_COMMENT, start)
}

func (s *scanner) readBlockComment(start Position) (Token, error) {
	s.advance() // '/'
	s.advance() // '*'

	for {
		switch s.peek() {
		case eof:
			return Token{}, &Error{Err: ErrUnterminatedComment, Position: start}
		case '*':
			s.advance()
			if s.peek() == '/' {
				s.advance()
				return s.emit(BLOCK_COMMENT, start), nil
			}
		default:
			s.advance()
		}
	}
}

// readQuoted reads a quoted string or identifier. A doubled closing
// character is an escaped one.
func (s *scanner) readQuoted(start Position, closing rune, tokenType TokenType, unterminated error) (Token, error) {
	s.advance() // opening quote

	for {
		r := s.peek()
		if r == eof {
			return Token{}, &Error{Err: unterminated, Position: start}
		}

		s.advance()

		if r == closing {
			if s.peek() == closing {
				s.advance()
				continue
			}

			return s.emit(tokenType, start), nil
		}
	}
}

func (s *scanner) readNumber(start Position) (Token, error) {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	if r := s.peek(); r == 'e' || r == 'E' {
		next := s.peekAt(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(s.peekAt(2))) {
			s.advance()
			s.advance()
			for isDigit(s.peek()) {
				s.advance()
			}
		}
	}

	// 123abc, 1e, 1.5x ...
	if isIdentPart(s.peek()) {
		for isIdentPart(s.peek()) {
			s.advance()
		}

		return Token{}, &Error{Err: ErrInvalidNumber, Position: start}
	}

	return s.emit(NUMBER, start), nil
}

// readWord reads identifiers and keywords. The token value keeps the source spelling.
func (s *scanner) readWord(start Position) Token {
	for isIdentPart(s.peek()) {
		s.advance()
	}

	token := s.emit(IDENTIFIER, start)
	token.Type = LookupKeyword(token.Value)

	return token
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
