package parser

import (
	"strings"

	pc "github.com/shibukawa/parsercombinator"
	"github.com/shibukawa/sqlflat/ast"
	tok "github.com/shibukawa/sqlflat/tokenizer"
)

var comparisonTypes = map[tok.TokenType]ast.ComparisonType{
	tok.EQUAL:         ast.ComparisonEquals,
	tok.NOT_EQUAL:     ast.ComparisonNotEqual,
	tok.LESS_THAN:     ast.ComparisonLessThan,
	tok.GREATER_THAN:  ast.ComparisonGreaterThan,
	tok.LESS_EQUAL:    ast.ComparisonLessThanOrEqualTo,
	tok.GREATER_EQUAL: ast.ComparisonGreaterThanOrEqualTo,
}

var binaryTypes = map[tok.TokenType]ast.BinaryExpressionType{
	tok.PLUS:     ast.BinaryAdd,
	tok.MINUS:    ast.BinarySubtract,
	tok.MULTIPLY: ast.BinaryMultiply,
	tok.DIVIDE:   ast.BinaryDivide,
	tok.MODULO:   ast.BinaryModulo,
	tok.CONCAT:   ast.BinaryConcat,
}

func (p *parser) parseIdentifier() (*ast.Identifier, *ParseError) {
	start := p.pos
	matched, ok := p.try(name)
	if !ok {
		return nil, p.fail(ErrExpectedIdentifier)
	}
	id := newIdentifier(matched[0].Val)
	p.mark(id, start)
	return id, nil
}

// parseIdentifierChain parses name{.name}. A dot that is not followed by a
// name is left unconsumed.
func (p *parser) parseIdentifierChain() ([]*ast.Identifier, *ParseError) {
	first, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	ids := []*ast.Identifier{first}
	for p.peekType() == tok.DOT && isName(p.peekTypeAt(1)) {
		p.accept(dot)
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (p *parser) parseSchemaObjectName() (*ast.SchemaObjectName, *ParseError) {
	start := p.pos
	ids, err := p.parseIdentifierChain()
	if err != nil {
		return nil, err
	}
	object := &ast.SchemaObjectName{Identifiers: ids}
	p.mark(object, start)
	return object, nil
}

func (p *parser) parseColumnReference() (*ast.ColumnReferenceExpression, *ParseError) {
	start := p.pos
	ids, err := p.parseIdentifierChain()
	if err != nil {
		return nil, err
	}
	return p.columnReference(ids, start), nil
}

func (p *parser) columnReference(ids []*ast.Identifier, start int) *ast.ColumnReferenceExpression {
	names := &ast.MultiPartIdentifier{Identifiers: ids}
	p.mark(names, start)
	col := &ast.ColumnReferenceExpression{ColumnType: ast.ColumnTypeRegular, MultiPartIdentifier: names}
	p.mark(col, start)
	return col
}

func (p *parser) parseExpressionList() ([]ast.Expression, *ParseError) {
	var exprs []ast.Expression
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.accept(comma) {
			return exprs, nil
		}
	}
}

// parseExpression parses with precedence, lowest first:
// OR, AND, NOT, predicates, additive, multiplicative, unary sign.
func (p *parser) parseExpression() (ast.Expression, *ParseError) {
	start := p.pos
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.accept(orKw) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		expr := &ast.BooleanBinaryExpression{
			BinaryExpressionType: ast.BooleanOr,
			FirstExpression:      left,
			SecondExpression:     right,
		}
		p.mark(expr, start)
		left = expr
	}
	return left, nil
}

func (p *parser) parseAnd() (ast.Expression, *ParseError) {
	start := p.pos
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.accept(andKw) {
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		expr := &ast.BooleanBinaryExpression{
			BinaryExpressionType: ast.BooleanAnd,
			FirstExpression:      left,
			SecondExpression:     right,
		}
		p.mark(expr, start)
		left = expr
	}
	return left, nil
}

func (p *parser) parseNot() (ast.Expression, *ParseError) {
	start := p.pos
	if !p.accept(notKw) {
		return p.parsePredicate()
	}
	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	expr := &ast.BooleanNotExpression{Expression: operand}
	p.mark(expr, start)
	return expr, nil
}

func (p *parser) parsePredicate() (ast.Expression, *ParseError) {
	start := p.pos
	if p.accept(existsKw) {
		sub, err := p.parseSubquery()
		if err != nil {
			return nil, err
		}
		expr := &ast.ExistsPredicate{Subquery: sub}
		p.mark(expr, start)
		return expr, nil
	}

	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	if matched, ok := p.try(comparison); ok {
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr := &ast.BooleanComparisonExpression{
			ComparisonType:   comparisonTypes[matched[0].Val.Type],
			FirstExpression:  left,
			SecondExpression: right,
		}
		p.mark(expr, start)
		return expr, nil
	}

	switch {
	case p.accept(isNotNull):
		expr := &ast.BooleanIsNullExpression{IsNot: true, Expression: left}
		p.mark(expr, start)
		return expr, nil
	case p.accept(isNull):
		expr := &ast.BooleanIsNullExpression{Expression: left}
		p.mark(expr, start)
		return expr, nil
	case p.accept(notIn):
		return p.parseInPredicate(left, true, start)
	case p.accept(inKw):
		return p.parseInPredicate(left, false, start)
	case p.accept(notLike):
		return p.parseLikePredicate(left, true, start)
	case p.accept(likeKw):
		return p.parseLikePredicate(left, false, start)
	case p.accept(notBetween):
		return p.parseBetween(left, ast.TernaryNotBetween, start)
	case p.accept(betweenKw):
		return p.parseBetween(left, ast.TernaryBetween, start)
	}
	return left, nil
}

func (p *parser) parseInPredicate(left ast.Expression, not bool, start int) (ast.Expression, *ParseError) {
	expr := &ast.InPredicate{Expression: left, NotDefined: not}
	if p.peekType() == tok.OPENED_PARENS && p.peekTypeAt(1) == tok.SELECT {
		sub, err := p.parseSubquery()
		if err != nil {
			return nil, err
		}
		expr.Subquery = sub
	} else {
		if err := p.expect(parenOpen, "'('"); err != nil {
			return nil, err
		}
		values, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(parenClose, "')'"); err != nil {
			return nil, err
		}
		expr.Values = values
	}
	p.mark(expr, start)
	return expr, nil
}

func (p *parser) parseLikePredicate(left ast.Expression, not bool, start int) (ast.Expression, *ParseError) {
	pattern, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	expr := &ast.LikePredicate{FirstExpression: left, SecondExpression: pattern, NotDefined: not}
	p.mark(expr, start)
	return expr, nil
}

func (p *parser) parseBetween(left ast.Expression, typ ast.TernaryExpressionType, start int) (ast.Expression, *ParseError) {
	low, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if err := p.expect(andKw, "AND"); err != nil {
		return nil, err
	}
	high, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	expr := &ast.BooleanTernaryExpression{
		TernaryExpressionType: typ,
		FirstExpression:       left,
		SecondExpression:      low,
		ThirdExpression:       high,
	}
	p.mark(expr, start)
	return expr, nil
}

func (p *parser) parseAdditive() (ast.Expression, *ParseError) {
	return p.parseBinary(additiveOp, p.parseMultiplicative)
}

func (p *parser) parseMultiplicative() (ast.Expression, *ParseError) {
	return p.parseBinary(multiplyOp, p.parseUnary)
}

// parseBinary parses a left associative chain of operand (op operand)*.
func (p *parser) parseBinary(op pc.Parser[tok.Token], operand func() (ast.Expression, *ParseError)) (ast.Expression, *ParseError) {
	start := p.pos
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		matched, ok := p.try(op)
		if !ok {
			return left, nil
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr := &ast.BinaryExpression{
			BinaryExpressionType: binaryTypes[matched[0].Val.Type],
			FirstExpression:      left,
			SecondExpression:     right,
		}
		p.mark(expr, start)
		left = expr
	}
}

func (p *parser) parseUnary() (ast.Expression, *ParseError) {
	start := p.pos
	matched, ok := p.try(signOp)
	if !ok {
		return p.parsePrimary()
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	expr := &ast.UnaryExpression{UnaryExpressionType: ast.UnaryPositive, Expression: operand}
	if matched[0].Val.Type == tok.MINUS {
		expr.UnaryExpressionType = ast.UnaryNegative
	}
	p.mark(expr, start)
	return expr, nil
}

func (p *parser) parsePrimary() (ast.Expression, *ParseError) {
	start := p.pos
	t := p.current()
	var expr ast.Expression
	switch t.Type {
	case tok.NUMBER:
		if strings.ContainsAny(t.Value, ".eE") {
			expr = &ast.NumericLiteral{Value: t.Value}
		} else {
			expr = &ast.IntegerLiteral{Value: t.Value}
		}
	case tok.STRING:
		expr = &ast.StringLiteral{Value: unquoteString(t.Value)}
	case tok.NULL:
		expr = &ast.NullLiteral{Value: t.Value}
	case tok.TRUE:
		expr = &ast.BooleanLiteral{Value: true}
	case tok.FALSE:
		expr = &ast.BooleanLiteral{Value: false}
	case tok.DEFAULT:
		expr = &ast.DefaultLiteral{Value: t.Value}
	case tok.PARAMETER:
		expr = &ast.VariableReference{Name: t.Value}
	case tok.CASE:
		return p.parseCase()
	case tok.CAST:
		return p.parseCast()
	case tok.OPENED_PARENS:
		if p.peekTypeAt(1) == tok.SELECT {
			return p.parseSubquery()
		}
		return p.parseParenthesis()
	case tok.IDENTIFIER, tok.QUOTED_IDENTIFIER:
		return p.parseNameExpression()
	case tok.LEFT, tok.RIGHT:
		// LEFT(s, n) and RIGHT(s, n) are functions outside of joins.
		if p.peekTypeAt(1) == tok.OPENED_PARENS {
			p.pos++
			fn := newIdentifier(t)
			p.mark(fn, start)
			return p.parseFunctionCall(nil, fn, start)
		}
		return nil, p.fail(ErrExpectedExpression)
	default:
		return nil, p.fail(ErrExpectedExpression)
	}
	p.pos++
	p.mark(expr, start)
	return expr, nil
}

func (p *parser) parseParenthesis() (ast.Expression, *ParseError) {
	start := p.pos
	p.accept(parenOpen)
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(parenClose, "')'"); err != nil {
		return nil, err
	}
	expr := &ast.ParenthesisExpression{Expression: inner}
	p.mark(expr, start)
	return expr, nil
}

// parseSubquery parses (query) into a ScalarSubquery.
func (p *parser) parseSubquery() (*ast.ScalarSubquery, *ParseError) {
	start := p.pos
	if err := p.expect(parenOpen, "'('"); err != nil {
		return nil, err
	}
	query, err := p.parseQueryExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(parenClose, "')'"); err != nil {
		return nil, err
	}
	sub := &ast.ScalarSubquery{QueryExpression: query}
	p.mark(sub, start)
	return sub, nil
}

// parseNameExpression parses a column reference or a function call.
func (p *parser) parseNameExpression() (ast.Expression, *ParseError) {
	start := p.pos
	ids, err := p.parseIdentifierChain()
	if err != nil {
		return nil, err
	}
	if p.peekType() != tok.OPENED_PARENS {
		return p.columnReference(ids, start), nil
	}

	fnName := ids[len(ids)-1]
	var target *ast.MultiPartIdentifier
	if len(ids) > 1 {
		target = &ast.MultiPartIdentifier{Identifiers: ids[:len(ids)-1]}
		p.markRange(target, ids[0], ids[len(ids)-2])
	}
	return p.parseFunctionCall(target, fnName, start)
}

func (p *parser) parseFunctionCall(target *ast.MultiPartIdentifier, fnName *ast.Identifier, start int) (ast.Expression, *ParseError) {
	if err := p.expect(parenOpen, "'('"); err != nil {
		return nil, err
	}
	fn := &ast.FunctionCall{CallTarget: target, FunctionName: fnName}
	switch {
	case p.accept(distinctKw):
		fn.UniqueRowFilter = ast.UniqueRowFilterDistinct
	case p.accept(allKw):
		fn.UniqueRowFilter = ast.UniqueRowFilterAll
	}

	switch {
	case p.peekType() == tok.CLOSED_PARENS:
	case p.peekType() == tok.MULTIPLY && p.peekTypeAt(1) == tok.CLOSED_PARENS:
		starStart := p.pos
		p.accept(asterisk)
		star := &ast.ColumnReferenceExpression{ColumnType: ast.ColumnTypeWildcard}
		p.mark(star, starStart)
		fn.Parameters = []ast.Expression{star}
	default:
		params, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		fn.Parameters = params
	}
	if err := p.expect(parenClose, "')'"); err != nil {
		return nil, err
	}

	if p.peekType() == tok.OVER {
		over, err := p.parseOverClause()
		if err != nil {
			return nil, err
		}
		fn.OverClause = over
	}
	p.mark(fn, start)
	return fn, nil
}

func (p *parser) parseOverClause() (*ast.OverClause, *ParseError) {
	start := p.pos
	if err := p.expect(overKw, "OVER"); err != nil {
		return nil, err
	}
	if err := p.expect(parenOpen, "'('"); err != nil {
		return nil, err
	}
	over := &ast.OverClause{}
	var err *ParseError
	if p.accept(partitionBy) {
		if over.Partitions, err = p.parseExpressionList(); err != nil {
			return nil, err
		}
	}
	if p.peekType() == tok.ORDER {
		if over.OrderByClause, err = p.parseOrderByClause(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(parenClose, "')'"); err != nil {
		return nil, err
	}
	p.mark(over, start)
	return over, nil
}

func (p *parser) parseCase() (ast.Expression, *ParseError) {
	start := p.pos
	p.accept(caseKw)
	if p.peekType() == tok.WHEN {
		expr := &ast.SearchedCaseExpression{}
		for p.peekType() == tok.WHEN {
			whenStart := p.pos
			when, then, err := p.parseWhenThen()
			if err != nil {
				return nil, err
			}
			clause := &ast.SearchedWhenClause{WhenExpression: when, ThenExpression: then}
			p.mark(clause, whenStart)
			expr.WhenClauses = append(expr.WhenClauses, clause)
		}
		var err *ParseError
		if expr.ElseExpression, err = p.parseCaseEnd(); err != nil {
			return nil, err
		}
		p.mark(expr, start)
		return expr, nil
	}

	input, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	expr := &ast.SimpleCaseExpression{InputExpression: input}
	if p.peekType() != tok.WHEN {
		return nil, p.unexpected("WHEN")
	}
	for p.peekType() == tok.WHEN {
		whenStart := p.pos
		when, then, err := p.parseWhenThen()
		if err != nil {
			return nil, err
		}
		clause := &ast.SimpleWhenClause{WhenExpression: when, ThenExpression: then}
		p.mark(clause, whenStart)
		expr.WhenClauses = append(expr.WhenClauses, clause)
	}
	if expr.ElseExpression, err = p.parseCaseEnd(); err != nil {
		return nil, err
	}
	p.mark(expr, start)
	return expr, nil
}

func (p *parser) parseWhenThen() (ast.Expression, ast.Expression, *ParseError) {
	p.accept(whenKw)
	when, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect(thenKw, "THEN"); err != nil {
		return nil, nil, err
	}
	then, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	return when, then, nil
}

// parseCaseEnd parses [ELSE expr] END.
func (p *parser) parseCaseEnd() (ast.Expression, *ParseError) {
	var elseExpr ast.Expression
	if p.accept(elseKw) {
		var err *ParseError
		if elseExpr, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(endKw, "END"); err != nil {
		return nil, err
	}
	return elseExpr, nil
}

func (p *parser) parseCast() (ast.Expression, *ParseError) {
	start := p.pos
	p.accept(castKw)
	if err := p.expect(parenOpen, "'('"); err != nil {
		return nil, err
	}
	param, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(asKw, "AS"); err != nil {
		return nil, err
	}
	dataType, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(parenClose, "')'"); err != nil {
		return nil, err
	}
	expr := &ast.CastCall{DataType: dataType, Parameter: param}
	p.mark(expr, start)
	return expr, nil
}

func (p *parser) parseDataType() (*ast.SqlDataTypeReference, *ParseError) {
	start := p.pos
	typeName, err := p.parseSchemaObjectName()
	if err != nil {
		return nil, err
	}
	ref := &ast.SqlDataTypeReference{Name: typeName}
	if p.accept(parenOpen) {
		if ref.Parameters, err = p.parseExpressionList(); err != nil {
			return nil, err
		}
		if err := p.expect(parenClose, "')'"); err != nil {
			return nil, err
		}
	}
	p.mark(ref, start)
	return ref, nil
}
