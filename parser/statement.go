package parser

import (
	"github.com/shibukawa/sqlflat/ast"
	tok "github.com/shibukawa/sqlflat/tokenizer"
)

func (p *parser) parseStatement() (ast.Statement, *ParseError) {
	start := p.pos
	var with *ast.WithClause
	if p.peekType() == tok.WITH {
		var err *ParseError
		if with, err = p.parseWithClause(); err != nil {
			return nil, err
		}
	}

	switch p.peekType() {
	case tok.SELECT, tok.OPENED_PARENS:
		query, err := p.parseQueryExpression()
		if err != nil {
			return nil, err
		}
		stmt := &ast.SelectStatement{WithClause: with, QueryExpression: query}
		p.mark(stmt, start)
		return stmt, nil
	case tok.INSERT:
		return p.parseInsert(start, with)
	case tok.UPDATE:
		return p.parseUpdate(start, with)
	case tok.DELETE:
		return p.parseDelete(start, with)
	}
	return nil, p.unexpected("SELECT, INSERT, UPDATE, DELETE or WITH")
}

func (p *parser) parseWithClause() (*ast.WithClause, *ParseError) {
	start := p.pos
	if err := p.expect(withKw, "WITH"); err != nil {
		return nil, err
	}
	with := &ast.WithClause{Recursive: p.accept(recursiveKw)}
	for {
		cte, err := p.parseCommonTableExpression()
		if err != nil {
			return nil, err
		}
		with.CommonTableExpressions = append(with.CommonTableExpressions, cte)
		if !p.accept(comma) {
			break
		}
	}
	p.mark(with, start)
	return with, nil
}

func (p *parser) parseCommonTableExpression() (*ast.CommonTableExpression, *ParseError) {
	start := p.pos
	exprName, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	cte := &ast.CommonTableExpression{ExpressionName: exprName}
	if p.peekType() == tok.OPENED_PARENS {
		if cte.Columns, err = p.parseIdentifierList(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(asKw, "AS"); err != nil {
		return nil, err
	}
	if err := p.expect(parenOpen, "'('"); err != nil {
		return nil, err
	}
	if cte.QueryExpression, err = p.parseQueryExpression(); err != nil {
		return nil, err
	}
	if err := p.expect(parenClose, "')'"); err != nil {
		return nil, err
	}
	p.mark(cte, start)
	return cte, nil
}

// parseIdentifierList parses (a, b, c).
func (p *parser) parseIdentifierList() ([]*ast.Identifier, *ParseError) {
	if err := p.expect(parenOpen, "'('"); err != nil {
		return nil, err
	}
	var ids []*ast.Identifier
	for {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		if !p.accept(comma) {
			break
		}
	}
	if err := p.expect(parenClose, "')'"); err != nil {
		return nil, err
	}
	return ids, nil
}

func (p *parser) parseInsert(start int, with *ast.WithClause) (*ast.InsertStatement, *ParseError) {
	if err := p.expect(insertKw, "INSERT"); err != nil {
		return nil, err
	}
	if err := p.expect(intoKw, "INTO"); err != nil {
		return nil, err
	}
	target, err := p.parseNamedTable()
	if err != nil {
		return nil, err
	}
	stmt := &ast.InsertStatement{WithClause: with, Target: target}

	if p.peekType() == tok.OPENED_PARENS && isName(p.peekTypeAt(1)) {
		p.accept(parenOpen)
		for {
			col, err := p.parseColumnReference()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col)
			if !p.accept(comma) {
				break
			}
		}
		if err := p.expect(parenClose, "')'"); err != nil {
			return nil, err
		}
	}

	if stmt.InsertSource, err = p.parseInsertSource(); err != nil {
		return nil, err
	}
	if p.peekType() == tok.RETURNING {
		if stmt.ReturningClause, err = p.parseReturningClause(); err != nil {
			return nil, err
		}
	}
	p.mark(stmt, start)
	return stmt, nil
}

func (p *parser) parseInsertSource() (ast.InsertSource, *ParseError) {
	start := p.pos
	switch p.peekType() {
	case tok.DEFAULT:
		if err := p.expect(defaultValues, "DEFAULT VALUES"); err != nil {
			return nil, err
		}
		source := &ast.ValuesInsertSource{IsDefaultValues: true}
		p.mark(source, start)
		return source, nil
	case tok.VALUES:
		p.accept(valuesKw)
		source := &ast.ValuesInsertSource{}
		for {
			row, err := p.parseRowValue()
			if err != nil {
				return nil, err
			}
			source.RowValues = append(source.RowValues, row)
			if !p.accept(comma) {
				break
			}
		}
		p.mark(source, start)
		return source, nil
	case tok.SELECT, tok.OPENED_PARENS:
		query, err := p.parseQueryExpression()
		if err != nil {
			return nil, err
		}
		source := &ast.SelectInsertSource{Select: query}
		p.mark(source, start)
		return source, nil
	}
	return nil, p.unexpected("VALUES, DEFAULT VALUES or SELECT")
}

func (p *parser) parseRowValue() (*ast.RowValue, *ParseError) {
	start := p.pos
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
	row := &ast.RowValue{ColumnValues: values}
	p.mark(row, start)
	return row, nil
}

func (p *parser) parseUpdate(start int, with *ast.WithClause) (*ast.UpdateStatement, *ParseError) {
	if err := p.expect(updateKw, "UPDATE"); err != nil {
		return nil, err
	}
	target, err := p.parseNamedTable()
	if err != nil {
		return nil, err
	}
	stmt := &ast.UpdateStatement{WithClause: with, Target: target}
	if err := p.expect(setKw, "SET"); err != nil {
		return nil, err
	}
	for {
		clause, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		stmt.SetClauses = append(stmt.SetClauses, clause)
		if !p.accept(comma) {
			break
		}
	}
	if p.peekType() == tok.FROM {
		if stmt.FromClause, err = p.parseFromClause(); err != nil {
			return nil, err
		}
	}
	if p.peekType() == tok.WHERE {
		if stmt.WhereClause, err = p.parseWhereClause(); err != nil {
			return nil, err
		}
	}
	if p.peekType() == tok.RETURNING {
		if stmt.ReturningClause, err = p.parseReturningClause(); err != nil {
			return nil, err
		}
	}
	p.mark(stmt, start)
	return stmt, nil
}

func (p *parser) parseAssignment() (*ast.AssignmentSetClause, *ParseError) {
	start := p.pos
	col, err := p.parseColumnReference()
	if err != nil {
		return nil, err
	}
	if err := p.expect(equal, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	clause := &ast.AssignmentSetClause{Column: col, NewValue: value}
	p.mark(clause, start)
	return clause, nil
}

func (p *parser) parseDelete(start int, with *ast.WithClause) (*ast.DeleteStatement, *ParseError) {
	if err := p.expect(deleteKw, "DELETE"); err != nil {
		return nil, err
	}
	if err := p.expect(fromKw, "FROM"); err != nil {
		return nil, err
	}
	target, err := p.parseNamedTable()
	if err != nil {
		return nil, err
	}
	stmt := &ast.DeleteStatement{WithClause: with, Target: target}
	if p.peekType() == tok.WHERE {
		if stmt.WhereClause, err = p.parseWhereClause(); err != nil {
			return nil, err
		}
	}
	if p.peekType() == tok.RETURNING {
		if stmt.ReturningClause, err = p.parseReturningClause(); err != nil {
			return nil, err
		}
	}
	p.mark(stmt, start)
	return stmt, nil
}

func (p *parser) parseReturningClause() (*ast.ReturningClause, *ParseError) {
	start := p.pos
	if err := p.expect(returningKw, "RETURNING"); err != nil {
		return nil, err
	}
	elements, err := p.parseSelectElements()
	if err != nil {
		return nil, err
	}
	clause := &ast.ReturningClause{SelectElements: elements}
	p.mark(clause, start)
	return clause, nil
}
