package ast

// NodeKind represents the type of AST node.
// Its String form is the grammatical category emitted as a flat node's type.
type NodeKind int

const (
	// Script and statements
	ScriptKind NodeKind = iota
	SelectStatementKind
	InsertStatementKind
	UpdateStatementKind
	DeleteStatementKind

	// Query structure
	WithClauseKind
	CommonTableExpressionKind
	QuerySpecificationKind
	BinaryQueryExpressionKind
	QueryParenthesisExpressionKind
	SelectScalarExpressionKind
	SelectStarExpressionKind
	FromClauseKind
	NamedTableReferenceKind
	QueryDerivedTableKind
	QualifiedJoinKind
	UnqualifiedJoinKind
	WhereClauseKind
	GroupByClauseKind
	ExpressionGroupingSpecificationKind
	HavingClauseKind
	OrderByClauseKind
	ExpressionWithSortOrderKind
	LimitClauseKind
	OffsetClauseKind

	// DML parts
	ValuesInsertSourceKind
	RowValueKind
	SelectInsertSourceKind
	AssignmentSetClauseKind
	ReturningClauseKind

	// Names
	IdentifierKind
	MultiPartIdentifierKind
	SchemaObjectNameKind

	// Expressions
	ColumnReferenceExpressionKind
	IntegerLiteralKind
	NumericLiteralKind
	StringLiteralKind
	NullLiteralKind
	BooleanLiteralKind
	DefaultLiteralKind
	VariableReferenceKind
	BinaryExpressionKind
	UnaryExpressionKind
	ParenthesisExpressionKind
	BooleanBinaryExpressionKind
	BooleanNotExpressionKind
	BooleanComparisonExpressionKind
	BooleanIsNullExpressionKind
	BooleanTernaryExpressionKind
	InPredicateKind
	LikePredicateKind
	ExistsPredicateKind
	ScalarSubqueryKind
	FunctionCallKind
	OverClauseKind
	SearchedCaseExpressionKind
	SearchedWhenClauseKind
	SimpleCaseExpressionKind
	SimpleWhenClauseKind
	CastCallKind
	SqlDataTypeReferenceKind

	kindCount
)

var kindNames = [...]string{
	ScriptKind:                          "Script",
	SelectStatementKind:                 "SelectStatement",
	InsertStatementKind:                 "InsertStatement",
	UpdateStatementKind:                 "UpdateStatement",
	DeleteStatementKind:                 "DeleteStatement",
	WithClauseKind:                      "WithClause",
	CommonTableExpressionKind:           "CommonTableExpression",
	QuerySpecificationKind:              "QuerySpecification",
	BinaryQueryExpressionKind:           "BinaryQueryExpression",
	QueryParenthesisExpressionKind:      "QueryParenthesisExpression",
	SelectScalarExpressionKind:          "SelectScalarExpression",
	SelectStarExpressionKind:            "SelectStarExpression",
	FromClauseKind:                      "FromClause",
	NamedTableReferenceKind:             "NamedTableReference",
	QueryDerivedTableKind:               "QueryDerivedTable",
	QualifiedJoinKind:                   "QualifiedJoin",
	UnqualifiedJoinKind:                 "UnqualifiedJoin",
	WhereClauseKind:                     "WhereClause",
	GroupByClauseKind:                   "GroupByClause",
	ExpressionGroupingSpecificationKind: "ExpressionGroupingSpecification",
	HavingClauseKind:                    "HavingClause",
	OrderByClauseKind:                   "OrderByClause",
	ExpressionWithSortOrderKind:         "ExpressionWithSortOrder",
	LimitClauseKind:                     "LimitClause",
	OffsetClauseKind:                    "OffsetClause",
	ValuesInsertSourceKind:              "ValuesInsertSource",
	RowValueKind:                        "RowValue",
	SelectInsertSourceKind:              "SelectInsertSource",
	AssignmentSetClauseKind:             "AssignmentSetClause",
	ReturningClauseKind:                 "ReturningClause",
	IdentifierKind:                      "Identifier",
	MultiPartIdentifierKind:             "MultiPartIdentifier",
	SchemaObjectNameKind:                "SchemaObjectName",
	ColumnReferenceExpressionKind:       "ColumnReferenceExpression",
	IntegerLiteralKind:                  "IntegerLiteral",
	NumericLiteralKind:                  "NumericLiteral",
	StringLiteralKind:                   "StringLiteral",
	NullLiteralKind:                     "NullLiteral",
	BooleanLiteralKind:                  "BooleanLiteral",
	DefaultLiteralKind:                  "DefaultLiteral",
	VariableReferenceKind:               "VariableReference",
	BinaryExpressionKind:                "BinaryExpression",
	UnaryExpressionKind:                 "UnaryExpression",
	ParenthesisExpressionKind:           "ParenthesisExpression",
	BooleanBinaryExpressionKind:         "BooleanBinaryExpression",
	BooleanNotExpressionKind:            "BooleanNotExpression",
	BooleanComparisonExpressionKind:     "BooleanComparisonExpression",
	BooleanIsNullExpressionKind:         "BooleanIsNullExpression",
	BooleanTernaryExpressionKind:        "BooleanTernaryExpression",
	InPredicateKind:                     "InPredicate",
	LikePredicateKind:                   "LikePredicate",
	ExistsPredicateKind:                 "ExistsPredicate",
	ScalarSubqueryKind:                  "ScalarSubquery",
	FunctionCallKind:                    "FunctionCall",
	OverClauseKind:                      "OverClause",
	SearchedCaseExpressionKind:          "SearchedCaseExpression",
	SearchedWhenClauseKind:              "SearchedWhenClause",
	SimpleCaseExpressionKind:            "SimpleCaseExpression",
	SimpleWhenClauseKind:                "SimpleWhenClause",
	CastCallKind:                        "CastCall",
	SqlDataTypeReferenceKind:            "SqlDataTypeReference",
}

// String returns string representation of NodeKind
func (k NodeKind) String() string {
	if k < 0 || k >= kindCount {
		return "UNKNOWN"
	}

	return kindNames[k]
}

// AllKinds returns every node kind of the grammar.
func AllKinds() []NodeKind {
	kinds := make([]NodeKind, kindCount)
	for i := range kinds {
		kinds[i] = NodeKind(i)
	}

	return kinds
}
