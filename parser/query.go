package parser

import (
	"github.com/shibukawa/sqlflat/ast"
	tok "github.com/shibukawa/sqlflat/tokenizer"
)

// parseQueryExpression parses set operations over query terms followed by
// ORDER BY, LIMIT and OFFSET, which attach to the outermost query.
func (p *parser) parseQueryExpression() (ast.QueryExpression, *ParseError) {
	start := p.pos
	query, err := p.parseQueryTerm()
	if err != nil {
		return nil, err
	}

	for {
		bin := &ast.BinaryQueryExpression{FirstQueryExpression: query}
		switch {
		case p.accept(unionAll):
			bin.BinaryQueryExpressionType, bin.All = ast.BinaryQueryUnion, true
		case p.accept(unionKw):
			bin.BinaryQueryExpressionType = ast.BinaryQueryUnion
		case p.accept(exceptKw):
			bin.BinaryQueryExpressionType = ast.BinaryQueryExcept
			bin.All = p.accept(allKw)
		case p.accept(intersectKw):
			bin.BinaryQueryExpressionType = ast.BinaryQueryIntersect
			bin.All = p.accept(allKw)
		default:
			return p.parseTrailingClauses(query, start)
		}
		if bin.SecondQueryExpression, err = p.parseQueryTerm(); err != nil {
			return nil, err
		}
		p.mark(bin, start)
		query = bin
	}
}

func (p *parser) parseTrailingClauses(query ast.QueryExpression, start int) (ast.QueryExpression, *ParseError) {
	var (
		orderBy *ast.OrderByClause
		limit   *ast.LimitClause
		offset  *ast.OffsetClause
		err     *ParseError
	)
	if p.peekType() == tok.ORDER {
		if orderBy, err = p.parseOrderByClause(); err != nil {
			return nil, err
		}
	}
	if p.peekType() == tok.LIMIT {
		if limit, err = p.parseLimitClause(); err != nil {
			return nil, err
		}
	}
	if p.peekType() == tok.OFFSET {
		if offset, err = p.parseOffsetClause(); err != nil {
			return nil, err
		}
	}
	if orderBy == nil && limit == nil && offset == nil {
		return query, nil
	}

	switch q := query.(type) {
	case *ast.QuerySpecification:
		q.OrderByClause, q.LimitClause, q.OffsetClause = orderBy, limit, offset
	case *ast.BinaryQueryExpression:
		q.OrderByClause, q.LimitClause, q.OffsetClause = orderBy, limit, offset
	case *ast.QueryParenthesisExpression:
		q.OrderByClause, q.LimitClause, q.OffsetClause = orderBy, limit, offset
	}
	p.mark(query, start)
	return query, nil
}

func (p *parser) parseQueryTerm() (ast.QueryExpression, *ParseError) {
	if p.peekType() != tok.OPENED_PARENS {
		return p.parseQuerySpecification()
	}
	start := p.pos
	p.accept(parenOpen)
	inner, err := p.parseQueryExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(parenClose, "')'"); err != nil {
		return nil, err
	}
	query := &ast.QueryParenthesisExpression{QueryExpression: inner}
	p.mark(query, start)
	return query, nil
}

func (p *parser) parseQuerySpecification() (*ast.QuerySpecification, *ParseError) {
	start := p.pos
	if err := p.expect(selectKw, "SELECT"); err != nil {
		return nil, err
	}
	spec := &ast.QuerySpecification{}
	switch {
	case p.accept(distinctKw):
		spec.UniqueRowFilter = ast.UniqueRowFilterDistinct
	case p.accept(allKw):
		spec.UniqueRowFilter = ast.UniqueRowFilterAll
	}

	var err *ParseError
	if spec.SelectElements, err = p.parseSelectElements(); err != nil {
		return nil, err
	}
	if p.peekType() == tok.FROM {
		if spec.FromClause, err = p.parseFromClause(); err != nil {
			return nil, err
		}
	}
	if p.peekType() == tok.WHERE {
		if spec.WhereClause, err = p.parseWhereClause(); err != nil {
			return nil, err
		}
	}
	if p.peekType() == tok.GROUP {
		if spec.GroupByClause, err = p.parseGroupByClause(); err != nil {
			return nil, err
		}
	}
	if p.peekType() == tok.HAVING {
		if spec.HavingClause, err = p.parseHavingClause(); err != nil {
			return nil, err
		}
	}
	p.mark(spec, start)
	return spec, nil
}

func (p *parser) parseSelectElements() ([]ast.SelectElement, *ParseError) {
	var elements []ast.SelectElement
	for {
		element, err := p.parseSelectElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
		if !p.accept(comma) {
			return elements, nil
		}
	}
}

func (p *parser) parseSelectElement() (ast.SelectElement, *ParseError) {
	start := p.pos
	if p.accept(asterisk) {
		star := &ast.SelectStarExpression{}
		p.mark(star, start)
		return star, nil
	}
	if p.isQualifiedStar() {
		ids, err := p.parseIdentifierChain()
		if err != nil {
			return nil, err
		}
		qualifier := &ast.MultiPartIdentifier{Identifiers: ids}
		p.mark(qualifier, start)
		p.accept(dot)
		p.accept(asterisk)
		star := &ast.SelectStarExpression{Qualifier: qualifier}
		p.mark(star, start)
		return star, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	element := &ast.SelectScalarExpression{Expression: expr}
	if element.ColumnName, err = p.parseAlias(); err != nil {
		return nil, err
	}
	p.mark(element, start)
	return element, nil
}

// isQualifiedStar reports whether the cursor is at name{.name}.*
func (p *parser) isQualifiedStar() bool {
	for i := 0; ; i += 2 {
		if !isName(p.peekTypeAt(i)) || p.peekTypeAt(i+1) != tok.DOT {
			return false
		}
		if p.peekTypeAt(i+2) == tok.MULTIPLY {
			return true
		}
	}
}

// parseAlias parses an optional [AS] alias. The alias is required after AS.
func (p *parser) parseAlias() (*ast.Identifier, *ParseError) {
	if p.accept(asKw) {
		return p.parseIdentifier()
	}
	if isName(p.peekType()) {
		return p.parseIdentifier()
	}
	return nil, nil
}

func (p *parser) parseFromClause() (*ast.FromClause, *ParseError) {
	start := p.pos
	if err := p.expect(fromKw, "FROM"); err != nil {
		return nil, err
	}
	from := &ast.FromClause{}
	for {
		ref, err := p.parseTableReference()
		if err != nil {
			return nil, err
		}
		from.TableReferences = append(from.TableReferences, ref)
		if !p.accept(comma) {
			break
		}
	}
	p.mark(from, start)
	return from, nil
}

func (p *parser) parseTableReference() (ast.TableReference, *ParseError) {
	start := p.pos
	left, err := p.parseTablePrimary()
	if err != nil {
		return nil, err
	}
	for {
		if p.accept(crossJoin) {
			right, err := p.parseTablePrimary()
			if err != nil {
				return nil, err
			}
			join := &ast.UnqualifiedJoin{
				FirstTableReference:  left,
				SecondTableReference: right,
				UnqualifiedJoinType:  ast.JoinCross,
			}
			p.mark(join, start)
			left = join
			continue
		}

		var joinType ast.QualifiedJoinType
		switch {
		case p.accept(leftJoin):
			joinType = ast.JoinLeftOuter
		case p.accept(rightJoin):
			joinType = ast.JoinRightOuter
		case p.accept(fullJoin):
			joinType = ast.JoinFullOuter
		case p.accept(innerJoin):
			joinType = ast.JoinInner
		default:
			return left, nil
		}
		right, err := p.parseTablePrimary()
		if err != nil {
			return nil, err
		}
		if err := p.expect(onKw, "ON"); err != nil {
			return nil, err
		}
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		join := &ast.QualifiedJoin{
			FirstTableReference:  left,
			SecondTableReference: right,
			QualifiedJoinType:    joinType,
			SearchCondition:      cond,
		}
		p.mark(join, start)
		left = join
	}
}

func (p *parser) parseTablePrimary() (ast.TableReference, *ParseError) {
	if p.peekType() != tok.OPENED_PARENS {
		return p.parseNamedTable()
	}
	start := p.pos
	p.accept(parenOpen)
	query, err := p.parseQueryExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(parenClose, "')'"); err != nil {
		return nil, err
	}
	derived := &ast.QueryDerivedTable{QueryExpression: query}
	if derived.Alias, err = p.parseAlias(); err != nil {
		return nil, err
	}
	if derived.Alias != nil && p.peekType() == tok.OPENED_PARENS {
		if derived.Columns, err = p.parseIdentifierList(); err != nil {
			return nil, err
		}
	}
	p.mark(derived, start)
	return derived, nil
}

func (p *parser) parseNamedTable() (*ast.NamedTableReference, *ParseError) {
	start := p.pos
	object, err := p.parseSchemaObjectName()
	if err != nil {
		return nil, err
	}
	ref := &ast.NamedTableReference{SchemaObject: object}
	if ref.Alias, err = p.parseAlias(); err != nil {
		return nil, err
	}
	p.mark(ref, start)
	return ref, nil
}

func (p *parser) parseWhereClause() (*ast.WhereClause, *ParseError) {
	start := p.pos
	if err := p.expect(whereKw, "WHERE"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	where := &ast.WhereClause{SearchCondition: cond}
	p.mark(where, start)
	return where, nil
}

func (p *parser) parseGroupByClause() (*ast.GroupByClause, *ParseError) {
	start := p.pos
	if err := p.expect(groupBy, "GROUP BY"); err != nil {
		return nil, err
	}
	group := &ast.GroupByClause{}
	for {
		specStart := p.pos
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		spec := &ast.ExpressionGroupingSpecification{Expression: expr}
		p.mark(spec, specStart)
		group.GroupingSpecifications = append(group.GroupingSpecifications, spec)
		if !p.accept(comma) {
			break
		}
	}
	p.mark(group, start)
	return group, nil
}

func (p *parser) parseHavingClause() (*ast.HavingClause, *ParseError) {
	start := p.pos
	if err := p.expect(havingKw, "HAVING"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	having := &ast.HavingClause{SearchCondition: cond}
	p.mark(having, start)
	return having, nil
}

func (p *parser) parseOrderByClause() (*ast.OrderByClause, *ParseError) {
	start := p.pos
	if err := p.expect(orderBy, "ORDER BY"); err != nil {
		return nil, err
	}
	order := &ast.OrderByClause{}
	for {
		elemStart := p.pos
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elem := &ast.ExpressionWithSortOrder{Expression: expr}
		switch {
		case p.accept(ascKw):
			elem.SortOrder = ast.SortOrderAscending
		case p.accept(descKw):
			elem.SortOrder = ast.SortOrderDescending
		}
		switch {
		case p.accept(nullsFirst):
			elem.NullsOrder = ast.NullsOrderFirst
		case p.accept(nullsLast):
			elem.NullsOrder = ast.NullsOrderLast
		}
		p.mark(elem, elemStart)
		order.OrderByElements = append(order.OrderByElements, elem)
		if !p.accept(comma) {
			break
		}
	}
	p.mark(order, start)
	return order, nil
}

func (p *parser) parseLimitClause() (*ast.LimitClause, *ParseError) {
	start := p.pos
	if err := p.expect(limitKw, "LIMIT"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	limit := &ast.LimitClause{Expression: expr}
	p.mark(limit, start)
	return limit, nil
}

func (p *parser) parseOffsetClause() (*ast.OffsetClause, *ParseError) {
	start := p.pos
	if err := p.expect(offsetKw, "OFFSET"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.accept(rowsKw)
	offset := &ast.OffsetClause{Expression: expr}
	p.mark(offset, start)
	return offset, nil
}
