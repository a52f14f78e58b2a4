// Package parser builds an ast.Script from SQL text.
//
// Token matching uses parsercombinator parsers; the grammar itself is a
// recursive descent over the significant (non-trivia) tokens. Every node
// records the stream indexes of its first and last significant token.
package parser

import (
	"errors"
	"fmt"
	"strings"

	pc "github.com/shibukawa/parsercombinator"
	"github.com/shibukawa/sqlflat/ast"
	tok "github.com/shibukawa/sqlflat/tokenizer"
)

// Result is the outcome of Parse. Script is nil when Errors is not empty.
type Result struct {
	Script *ast.Script
	Tokens []tok.Token
	Errors []*ParseError
}

// Parse tokenizes and parses src. Lexical errors suppress the syntax pass.
// Syntax errors are collected per statement; the parser resumes after the
// next semicolon.
func Parse(src string) *Result {
	tokens, lexErrs := tokenize(src)
	result := &Result{Tokens: tokens}
	if len(lexErrs) > 0 {
		result.Errors = lexErrs
		return result
	}

	p := newParser(tokens)
	script := &ast.Script{ScriptTokenStream: tokens}
	for {
		for p.accept(semicolon) {
		}
		if p.atEnd() {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			result.Errors = append(result.Errors, err)
			p.skipStatement()
			continue
		}
		script.Statements = append(script.Statements, stmt)
		if !p.atEnd() && !p.accept(semicolon) {
			result.Errors = append(result.Errors, p.unexpected("';' or end of input"))
			p.skipStatement()
		}
	}
	if len(result.Errors) > 0 {
		return result
	}

	last := tokens[len(tokens)-1]
	script.FirstTokenIndex = 0
	script.LastTokenIndex = len(tokens) - 1
	script.StartOffset = 0
	script.StartLine = 1
	script.StartColumn = 1
	script.FragmentLength = last.End()
	result.Script = script
	return result
}

func tokenize(src string) ([]tok.Token, []*ParseError) {
	var tokens []tok.Token
	var errs []*ParseError
	for token, err := range tok.NewSqlTokenizer(src).Tokens() {
		if err != nil {
			var pos tok.Position
			var te *tok.Error
			if errors.As(err, &te) {
				pos = te.Position
			}
			errs = append(errs, newParseError(err, pos))
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens, errs
}

type parser struct {
	pctx   *pc.ParseContext[tok.Token]
	tokens []tok.Token
	// input holds the significant tokens without the trailing EOF; index maps
	// each of them back to its position in tokens.
	input []pc.Token[tok.Token]
	index []int
	pos   int
}

func newParser(tokens []tok.Token) *parser {
	p := &parser{
		pctx:   pc.NewParseContext[tok.Token](),
		tokens: tokens,
	}
	significant := make([]tok.Token, 0, len(tokens))
	for i, t := range tokens {
		if t.Type.IsTrivia() || t.Type == tok.EOF {
			continue
		}
		significant = append(significant, t)
		p.index = append(p.index, i)
	}
	p.input = toParserTokens(significant)
	return p
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peekType() tok.TokenType {
	return p.peekTypeAt(0)
}

func (p *parser) peekTypeAt(n int) tok.TokenType {
	if p.pos+n >= len(p.input) {
		return tok.EOF
	}
	return p.input[p.pos+n].Val.Type
}

// try runs m at the current position and advances past the match.
func (p *parser) try(m pc.Parser[tok.Token]) ([]pc.Token[tok.Token], bool) {
	if p.atEnd() {
		return nil, false
	}
	consumed, matched, err := m(p.pctx, p.input[p.pos:])
	if err != nil || consumed == 0 {
		return nil, false
	}
	p.pos += consumed
	return matched, true
}

func (p *parser) accept(m pc.Parser[tok.Token]) bool {
	_, ok := p.try(m)
	return ok
}

func (p *parser) expect(m pc.Parser[tok.Token], expected string) *ParseError {
	if p.accept(m) {
		return nil
	}
	return p.unexpected(expected)
}

// current returns the token at the cursor, or EOF when the input is exhausted.
func (p *parser) current() tok.Token {
	if p.atEnd() {
		return p.tokens[len(p.tokens)-1]
	}
	return p.input[p.pos].Val
}

func (p *parser) unexpected(expected string) *ParseError {
	t := p.current()
	if t.Type == tok.EOF {
		return newParseError(fmt.Errorf("%w: expected %s", ErrUnexpectedEndOfInput, expected), t.Position)
	}
	return newParseError(fmt.Errorf("%w '%s': expected %s", ErrUnexpectedToken, t.Value, expected), t.Position)
}

func (p *parser) fail(sentinel error) *ParseError {
	t := p.current()
	if t.Type == tok.EOF {
		return newParseError(fmt.Errorf("%w: %w", ErrUnexpectedEndOfInput, sentinel), t.Position)
	}
	return newParseError(fmt.Errorf("%w near '%s'", sentinel, t.Value), t.Position)
}

// skipStatement moves past the next semicolon, or to the end.
func (p *parser) skipStatement() {
	for !p.atEnd() {
		if p.accept(semicolon) {
			return
		}
		p.pos++
	}
}

// mark sets the extent of n to the significant tokens from start up to the
// last consumed one.
func (p *parser) mark(n ast.Node, start int) {
	p.setExtent(n.Base(), p.index[start], p.index[p.pos-1])
}

// markRange sets the extent of n to cover first through last.
func (p *parser) markRange(n ast.Node, first, last ast.Node) {
	p.setExtent(n.Base(), first.Base().FirstTokenIndex, last.Base().LastTokenIndex)
}

func (p *parser) setExtent(b *ast.BaseNode, first, last int) {
	ft := p.tokens[first]
	b.FirstTokenIndex = first
	b.LastTokenIndex = last
	b.StartOffset = ft.Position.Offset
	b.StartLine = ft.Position.Line
	b.StartColumn = ft.Position.Column
	b.FragmentLength = p.tokens[last].End() - ft.Position.Offset
}

func isName(t tok.TokenType) bool {
	return t == tok.IDENTIFIER || t == tok.QUOTED_IDENTIFIER
}

// newIdentifier strips delimiters and collapses doubled closing delimiters.
func newIdentifier(t tok.Token) *ast.Identifier {
	if t.Type != tok.QUOTED_IDENTIFIER || len(t.Value) < 2 {
		return &ast.Identifier{Value: t.Value, QuoteType: ast.NotQuoted}
	}
	var quote ast.QuoteType
	closing := t.Value[len(t.Value)-1:]
	switch t.Value[0] {
	case '"':
		quote = ast.DoubleQuote
	case '`':
		quote = ast.Backtick
	case '[':
		quote = ast.SquareBracket
	}
	inner := t.Value[1 : len(t.Value)-1]
	return &ast.Identifier{
		Value:     strings.ReplaceAll(inner, closing+closing, closing),
		QuoteType: quote,
	}
}

func unquoteString(s string) string {
	if len(s) < 2 {
		return s
	}
	return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
}
