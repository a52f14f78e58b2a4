package ast

import "github.com/shibukawa/sqlflat/tokenizer"

// Script is the root of a parsed input.
type Script struct {
	BaseNode
	Statements        []Statement
	ScriptTokenStream []tokenizer.Token
}

func (*Script) Kind() NodeKind { return ScriptKind }

// SelectStatement represents SELECT statement
type SelectStatement struct {
	BaseNode
	WithClause      *WithClause
	QueryExpression QueryExpression
}

func (*SelectStatement) Kind() NodeKind { return SelectStatementKind }
func (*SelectStatement) statementNode() {}

// InsertStatement represents INSERT statement
type InsertStatement struct {
	BaseNode
	WithClause      *WithClause
	Target          TableReference
	Columns         []*ColumnReferenceExpression
	InsertSource    InsertSource
	ReturningClause *ReturningClause
}

func (*InsertStatement) Kind() NodeKind { return InsertStatementKind }
func (*InsertStatement) statementNode() {}

// UpdateStatement represents UPDATE statement
type UpdateStatement struct {
	BaseNode
	WithClause      *WithClause
	Target          TableReference
	SetClauses      []*AssignmentSetClause
	FromClause      *FromClause
	WhereClause     *WhereClause
	ReturningClause *ReturningClause
}

func (*UpdateStatement) Kind() NodeKind { return UpdateStatementKind }
func (*UpdateStatement) statementNode() {}

// DeleteStatement represents DELETE statement
type DeleteStatement struct {
	BaseNode
	WithClause      *WithClause
	Target          TableReference
	WhereClause     *WhereClause
	ReturningClause *ReturningClause
}

func (*DeleteStatement) Kind() NodeKind { return DeleteStatementKind }
func (*DeleteStatement) statementNode() {}

// ValuesInsertSource is VALUES (...), (...) or DEFAULT VALUES.
type ValuesInsertSource struct {
	BaseNode
	IsDefaultValues bool
	RowValues       []*RowValue
}

func (*ValuesInsertSource) Kind() NodeKind    { return ValuesInsertSourceKind }
func (*ValuesInsertSource) insertSourceNode() {}

// RowValue is one parenthesised row of a VALUES list.
type RowValue struct {
	BaseNode
	ColumnValues []Expression
}

func (*RowValue) Kind() NodeKind { return RowValueKind }

// SelectInsertSource is INSERT ... SELECT.
type SelectInsertSource struct {
	BaseNode
	Select QueryExpression
}

func (*SelectInsertSource) Kind() NodeKind    { return SelectInsertSourceKind }
func (*SelectInsertSource) insertSourceNode() {}

// AssignmentSetClause is column = value in UPDATE ... SET.
type AssignmentSetClause struct {
	BaseNode
	Column   *ColumnReferenceExpression
	NewValue Expression
}

func (*AssignmentSetClause) Kind() NodeKind { return AssignmentSetClauseKind }

// ReturningClause lists the values returned by a DML statement.
type ReturningClause struct {
	BaseNode
	SelectElements []SelectElement
}

func (*ReturningClause) Kind() NodeKind { return ReturningClauseKind }
