package ast

// ColumnReferenceExpression is a (possibly qualified) column, or the bare *
// argument of COUNT(*) when ColumnType is ColumnTypeWildcard.
type ColumnReferenceExpression struct {
	BaseNode
	ColumnType          ColumnType
	MultiPartIdentifier *MultiPartIdentifier
}

func (*ColumnReferenceExpression) Kind() NodeKind  { return ColumnReferenceExpressionKind }
func (*ColumnReferenceExpression) expressionNode() {}

// Literals keep the source spelling in Value, except StringLiteral which
// holds the unquoted content.

type IntegerLiteral struct {
	BaseNode
	Value string
}

func (*IntegerLiteral) Kind() NodeKind  { return IntegerLiteralKind }
func (*IntegerLiteral) expressionNode() {}

type NumericLiteral struct {
	BaseNode
	Value string
}

func (*NumericLiteral) Kind() NodeKind  { return NumericLiteralKind }
func (*NumericLiteral) expressionNode() {}

type StringLiteral struct {
	BaseNode
	Value string
}

func (*StringLiteral) Kind() NodeKind  { return StringLiteralKind }
func (*StringLiteral) expressionNode() {}

type NullLiteral struct {
	BaseNode
	Value string
}

func (*NullLiteral) Kind() NodeKind  { return NullLiteralKind }
func (*NullLiteral) expressionNode() {}

type BooleanLiteral struct {
	BaseNode
	Value bool
}

func (*BooleanLiteral) Kind() NodeKind  { return BooleanLiteralKind }
func (*BooleanLiteral) expressionNode() {}

// DefaultLiteral is the DEFAULT keyword used as a value.
type DefaultLiteral struct {
	BaseNode
	Value string
}

func (*DefaultLiteral) Kind() NodeKind  { return DefaultLiteralKind }
func (*DefaultLiteral) expressionNode() {}

// VariableReference is a bind parameter (?, $1, :name, @name).
type VariableReference struct {
	BaseNode
	Name string
}

func (*VariableReference) Kind() NodeKind  { return VariableReferenceKind }
func (*VariableReference) expressionNode() {}

type BinaryExpression struct {
	BaseNode
	BinaryExpressionType BinaryExpressionType
	FirstExpression      Expression
	SecondExpression     Expression
}

func (*BinaryExpression) Kind() NodeKind  { return BinaryExpressionKind }
func (*BinaryExpression) expressionNode() {}

type UnaryExpression struct {
	BaseNode
	UnaryExpressionType UnaryExpressionType
	Expression          Expression
}

func (*UnaryExpression) Kind() NodeKind  { return UnaryExpressionKind }
func (*UnaryExpression) expressionNode() {}

type ParenthesisExpression struct {
	BaseNode
	Expression Expression
}

func (*ParenthesisExpression) Kind() NodeKind  { return ParenthesisExpressionKind }
func (*ParenthesisExpression) expressionNode() {}

type BooleanBinaryExpression struct {
	BaseNode
	BinaryExpressionType BooleanBinaryExpressionType
	FirstExpression      Expression
	SecondExpression     Expression
}

func (*BooleanBinaryExpression) Kind() NodeKind  { return BooleanBinaryExpressionKind }
func (*BooleanBinaryExpression) expressionNode() {}

type BooleanNotExpression struct {
	BaseNode
	Expression Expression
}

func (*BooleanNotExpression) Kind() NodeKind  { return BooleanNotExpressionKind }
func (*BooleanNotExpression) expressionNode() {}

type BooleanComparisonExpression struct {
	BaseNode
	ComparisonType   ComparisonType
	FirstExpression  Expression
	SecondExpression Expression
}

func (*BooleanComparisonExpression) Kind() NodeKind  { return BooleanComparisonExpressionKind }
func (*BooleanComparisonExpression) expressionNode() {}

// BooleanIsNullExpression is expr IS [NOT] NULL.
type BooleanIsNullExpression struct {
	BaseNode
	IsNot      bool
	Expression Expression
}

func (*BooleanIsNullExpression) Kind() NodeKind  { return BooleanIsNullExpressionKind }
func (*BooleanIsNullExpression) expressionNode() {}

// BooleanTernaryExpression is expr [NOT] BETWEEN low AND high.
type BooleanTernaryExpression struct {
	BaseNode
	TernaryExpressionType TernaryExpressionType
	FirstExpression       Expression
	SecondExpression      Expression
	ThirdExpression       Expression
}

func (*BooleanTernaryExpression) Kind() NodeKind  { return BooleanTernaryExpressionKind }
func (*BooleanTernaryExpression) expressionNode() {}

// InPredicate is expr [NOT] IN (values) or expr [NOT] IN (subquery).
// Exactly one of Values and Subquery is set.
type InPredicate struct {
	BaseNode
	Expression Expression
	NotDefined bool
	Values     []Expression
	Subquery   *ScalarSubquery
}

func (*InPredicate) Kind() NodeKind  { return InPredicateKind }
func (*InPredicate) expressionNode() {}

type LikePredicate struct {
	BaseNode
	FirstExpression  Expression
	SecondExpression Expression
	NotDefined       bool
}

func (*LikePredicate) Kind() NodeKind  { return LikePredicateKind }
func (*LikePredicate) expressionNode() {}

type ExistsPredicate struct {
	BaseNode
	Subquery *ScalarSubquery
}

func (*ExistsPredicate) Kind() NodeKind  { return ExistsPredicateKind }
func (*ExistsPredicate) expressionNode() {}

// ScalarSubquery is a parenthesised query used as an expression.
type ScalarSubquery struct {
	BaseNode
	QueryExpression QueryExpression
}

func (*ScalarSubquery) Kind() NodeKind  { return ScalarSubqueryKind }
func (*ScalarSubquery) expressionNode() {}

// FunctionCall is [target.]name([DISTINCT] args) [OVER (...)].
type FunctionCall struct {
	BaseNode
	CallTarget      *MultiPartIdentifier
	FunctionName    *Identifier
	UniqueRowFilter UniqueRowFilter
	Parameters      []Expression
	OverClause      *OverClause
}

func (*FunctionCall) Kind() NodeKind  { return FunctionCallKind }
func (*FunctionCall) expressionNode() {}

// OverClause is the window of an analytic function call.
type OverClause struct {
	BaseNode
	Partitions    []Expression
	OrderByClause *OrderByClause
}

func (*OverClause) Kind() NodeKind { return OverClauseKind }

type SearchedCaseExpression struct {
	BaseNode
	WhenClauses    []*SearchedWhenClause
	ElseExpression Expression
}

func (*SearchedCaseExpression) Kind() NodeKind  { return SearchedCaseExpressionKind }
func (*SearchedCaseExpression) expressionNode() {}

type SearchedWhenClause struct {
	BaseNode
	WhenExpression Expression
	ThenExpression Expression
}

func (*SearchedWhenClause) Kind() NodeKind { return SearchedWhenClauseKind }

type SimpleCaseExpression struct {
	BaseNode
	InputExpression Expression
	WhenClauses     []*SimpleWhenClause
	ElseExpression  Expression
}

func (*SimpleCaseExpression) Kind() NodeKind  { return SimpleCaseExpressionKind }
func (*SimpleCaseExpression) expressionNode() {}

type SimpleWhenClause struct {
	BaseNode
	WhenExpression Expression
	ThenExpression Expression
}

func (*SimpleWhenClause) Kind() NodeKind { return SimpleWhenClauseKind }

// CastCall is CAST(expr AS type).
type CastCall struct {
	BaseNode
	DataType  *SqlDataTypeReference
	Parameter Expression
}

func (*CastCall) Kind() NodeKind  { return CastCallKind }
func (*CastCall) expressionNode() {}

// SqlDataTypeReference is a type name with optional parameters, e.g. DECIMAL(10, 2).
type SqlDataTypeReference struct {
	BaseNode
	Name       *SchemaObjectName
	Parameters []Expression
}

func (*SqlDataTypeReference) Kind() NodeKind { return SqlDataTypeReferenceKind }
