package ast

// WithClause holds the common table expressions of a statement.
type WithClause struct {
	BaseNode
	Recursive              bool
	CommonTableExpressions []*CommonTableExpression
}

func (*WithClause) Kind() NodeKind { return WithClauseKind }

// CommonTableExpression is name [(columns)] AS (query).
type CommonTableExpression struct {
	BaseNode
	ExpressionName  *Identifier
	Columns         []*Identifier
	QueryExpression QueryExpression
}

func (*CommonTableExpression) Kind() NodeKind { return CommonTableExpressionKind }

// QuerySpecification is a single SELECT ... FROM ... WHERE ... block.
type QuerySpecification struct {
	BaseNode
	UniqueRowFilter UniqueRowFilter
	SelectElements  []SelectElement
	FromClause      *FromClause
	WhereClause     *WhereClause
	GroupByClause   *GroupByClause
	HavingClause    *HavingClause
	OrderByClause   *OrderByClause
	LimitClause     *LimitClause
	OffsetClause    *OffsetClause
}

func (*QuerySpecification) Kind() NodeKind       { return QuerySpecificationKind }
func (*QuerySpecification) queryExpressionNode() {}

// BinaryQueryExpression is UNION / EXCEPT / INTERSECT.
type BinaryQueryExpression struct {
	BaseNode
	BinaryQueryExpressionType BinaryQueryExpressionType
	All                       bool
	FirstQueryExpression      QueryExpression
	SecondQueryExpression     QueryExpression
	OrderByClause             *OrderByClause
	LimitClause               *LimitClause
	OffsetClause              *OffsetClause
}

func (*BinaryQueryExpression) Kind() NodeKind       { return BinaryQueryExpressionKind }
func (*BinaryQueryExpression) queryExpressionNode() {}

// QueryParenthesisExpression is a parenthesised query operand.
type QueryParenthesisExpression struct {
	BaseNode
	QueryExpression QueryExpression
	OrderByClause   *OrderByClause
	LimitClause     *LimitClause
	OffsetClause    *OffsetClause
}

func (*QueryParenthesisExpression) Kind() NodeKind       { return QueryParenthesisExpressionKind }
func (*QueryParenthesisExpression) queryExpressionNode() {}

// SelectScalarExpression is expression [AS alias] in a select list.
type SelectScalarExpression struct {
	BaseNode
	Expression Expression
	ColumnName *Identifier
}

func (*SelectScalarExpression) Kind() NodeKind     { return SelectScalarExpressionKind }
func (*SelectScalarExpression) selectElementNode() {}

// SelectStarExpression is * or qualifier.* in a select list.
type SelectStarExpression struct {
	BaseNode
	Qualifier *MultiPartIdentifier
}

func (*SelectStarExpression) Kind() NodeKind     { return SelectStarExpressionKind }
func (*SelectStarExpression) selectElementNode() {}

// FromClause lists the table references of a query.
type FromClause struct {
	BaseNode
	TableReferences []TableReference
}

func (*FromClause) Kind() NodeKind { return FromClauseKind }

// NamedTableReference is a table name with an optional alias.
type NamedTableReference struct {
	BaseNode
	SchemaObject *SchemaObjectName
	Alias        *Identifier
}

func (*NamedTableReference) Kind() NodeKind      { return NamedTableReferenceKind }
func (*NamedTableReference) tableReferenceNode() {}

// QueryDerivedTable is (subquery) AS alias [(columns)].
type QueryDerivedTable struct {
	BaseNode
	QueryExpression QueryExpression
	Alias           *Identifier
	Columns         []*Identifier
}

func (*QueryDerivedTable) Kind() NodeKind      { return QueryDerivedTableKind }
func (*QueryDerivedTable) tableReferenceNode() {}

// QualifiedJoin is a join with an ON condition.
type QualifiedJoin struct {
	BaseNode
	FirstTableReference  TableReference
	SecondTableReference TableReference
	QualifiedJoinType    QualifiedJoinType
	SearchCondition      Expression
}

func (*QualifiedJoin) Kind() NodeKind      { return QualifiedJoinKind }
func (*QualifiedJoin) tableReferenceNode() {}

// UnqualifiedJoin is a CROSS JOIN.
type UnqualifiedJoin struct {
	BaseNode
	FirstTableReference  TableReference
	SecondTableReference TableReference
	UnqualifiedJoinType  UnqualifiedJoinType
}

func (*UnqualifiedJoin) Kind() NodeKind      { return UnqualifiedJoinKind }
func (*UnqualifiedJoin) tableReferenceNode() {}

type WhereClause struct {
	BaseNode
	SearchCondition Expression
}

func (*WhereClause) Kind() NodeKind { return WhereClauseKind }

type GroupByClause struct {
	BaseNode
	GroupingSpecifications []*ExpressionGroupingSpecification
}

func (*GroupByClause) Kind() NodeKind { return GroupByClauseKind }

type ExpressionGroupingSpecification struct {
	BaseNode
	Expression Expression
}

func (*ExpressionGroupingSpecification) Kind() NodeKind { return ExpressionGroupingSpecificationKind }

type HavingClause struct {
	BaseNode
	SearchCondition Expression
}

func (*HavingClause) Kind() NodeKind { return HavingClauseKind }

type OrderByClause struct {
	BaseNode
	OrderByElements []*ExpressionWithSortOrder
}

func (*OrderByClause) Kind() NodeKind { return OrderByClauseKind }

// ExpressionWithSortOrder is one ORDER BY element.
type ExpressionWithSortOrder struct {
	BaseNode
	Expression Expression
	SortOrder  SortOrder
	NullsOrder NullsOrder
}

func (*ExpressionWithSortOrder) Kind() NodeKind { return ExpressionWithSortOrderKind }

type LimitClause struct {
	BaseNode
	Expression Expression
}

func (*LimitClause) Kind() NodeKind { return LimitClauseKind }

type OffsetClause struct {
	BaseNode
	Expression Expression
}

func (*OffsetClause) Kind() NodeKind { return OffsetClauseKind }
