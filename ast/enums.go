package ast

// UniqueRowFilter is the DISTINCT/ALL qualifier of a select list or aggregate call.
type UniqueRowFilter int

const (
	UniqueRowFilterNotSpecified UniqueRowFilter = iota
	UniqueRowFilterAll
	UniqueRowFilterDistinct
)

func (f UniqueRowFilter) String() string {
	switch f {
	case UniqueRowFilterNotSpecified:
		return "NotSpecified"
	case UniqueRowFilterAll:
		return "All"
	case UniqueRowFilterDistinct:
		return "Distinct"
	default:
		return "Unknown"
	}
}

// BinaryQueryExpressionType is the set operator joining two queries.
type BinaryQueryExpressionType int

const (
	BinaryQueryUnion BinaryQueryExpressionType = iota
	BinaryQueryExcept
	BinaryQueryIntersect
)

func (t BinaryQueryExpressionType) String() string {
	switch t {
	case BinaryQueryUnion:
		return "Union"
	case BinaryQueryExcept:
		return "Except"
	case BinaryQueryIntersect:
		return "Intersect"
	default:
		return "Unknown"
	}
}

// QualifiedJoinType is the kind of a join that carries an ON condition.
type QualifiedJoinType int

const (
	JoinInner QualifiedJoinType = iota
	JoinLeftOuter
	JoinRightOuter
	JoinFullOuter
)

func (t QualifiedJoinType) String() string {
	switch t {
	case JoinInner:
		return "Inner"
	case JoinLeftOuter:
		return "LeftOuter"
	case JoinRightOuter:
		return "RightOuter"
	case JoinFullOuter:
		return "FullOuter"
	default:
		return "Unknown"
	}
}

// UnqualifiedJoinType is the kind of a join without condition.
type UnqualifiedJoinType int

const (
	JoinCross UnqualifiedJoinType = iota
)

func (t UnqualifiedJoinType) String() string {
	if t == JoinCross {
		return "CrossJoin"
	}

	return "Unknown"
}

// SortOrder of an ORDER BY element.
type SortOrder int

const (
	SortOrderNotSpecified SortOrder = iota
	SortOrderAscending
	SortOrderDescending
)

func (o SortOrder) String() string {
	switch o {
	case SortOrderNotSpecified:
		return "NotSpecified"
	case SortOrderAscending:
		return "Ascending"
	case SortOrderDescending:
		return "Descending"
	default:
		return "Unknown"
	}
}

// NullsOrder of an ORDER BY element (NULLS FIRST / NULLS LAST).
type NullsOrder int

const (
	NullsOrderNotSpecified NullsOrder = iota
	NullsOrderFirst
	NullsOrderLast
)

func (o NullsOrder) String() string {
	switch o {
	case NullsOrderNotSpecified:
		return "NotSpecified"
	case NullsOrderFirst:
		return "First"
	case NullsOrderLast:
		return "Last"
	default:
		return "Unknown"
	}
}

// QuoteType records how an identifier was delimited in the source.
type QuoteType int

const (
	NotQuoted QuoteType = iota
	DoubleQuote
	Backtick
	SquareBracket
)

func (q QuoteType) String() string {
	switch q {
	case NotQuoted:
		return "NotQuoted"
	case DoubleQuote:
		return "DoubleQuote"
	case Backtick:
		return "Backtick"
	case SquareBracket:
		return "SquareBracket"
	default:
		return "Unknown"
	}
}

// ColumnType distinguishes regular column references from the * argument.
type ColumnType int

const (
	ColumnTypeRegular ColumnType = iota
	ColumnTypeWildcard
)

func (c ColumnType) String() string {
	switch c {
	case ColumnTypeRegular:
		return "Regular"
	case ColumnTypeWildcard:
		return "Wildcard"
	default:
		return "Unknown"
	}
}

// BinaryExpressionType is an arithmetic or string operator.
type BinaryExpressionType int

const (
	BinaryAdd BinaryExpressionType = iota
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryModulo
	BinaryConcat
)

func (t BinaryExpressionType) String() string {
	switch t {
	case BinaryAdd:
		return "Add"
	case BinarySubtract:
		return "Subtract"
	case BinaryMultiply:
		return "Multiply"
	case BinaryDivide:
		return "Divide"
	case BinaryModulo:
		return "Modulo"
	case BinaryConcat:
		return "Concat"
	default:
		return "Unknown"
	}
}

// UnaryExpressionType is a sign prefix.
type UnaryExpressionType int

const (
	UnaryPositive UnaryExpressionType = iota
	UnaryNegative
)

func (t UnaryExpressionType) String() string {
	switch t {
	case UnaryPositive:
		return "Positive"
	case UnaryNegative:
		return "Negative"
	default:
		return "Unknown"
	}
}

// BooleanBinaryExpressionType is AND or OR.
type BooleanBinaryExpressionType int

const (
	BooleanAnd BooleanBinaryExpressionType = iota
	BooleanOr
)

func (t BooleanBinaryExpressionType) String() string {
	switch t {
	case BooleanAnd:
		return "And"
	case BooleanOr:
		return "Or"
	default:
		return "Unknown"
	}
}

// ComparisonType is a comparison operator.
type ComparisonType int

const (
	ComparisonEquals ComparisonType = iota
	ComparisonNotEqual
	ComparisonLessThan
	ComparisonGreaterThan
	ComparisonLessThanOrEqualTo
	ComparisonGreaterThanOrEqualTo
)

func (t ComparisonType) String() string {
	switch t {
	case ComparisonEquals:
		return "Equals"
	case ComparisonNotEqual:
		return "NotEqual"
	case ComparisonLessThan:
		return "LessThan"
	case ComparisonGreaterThan:
		return "GreaterThan"
	case ComparisonLessThanOrEqualTo:
		return "LessThanOrEqualTo"
	case ComparisonGreaterThanOrEqualTo:
		return "GreaterThanOrEqualTo"
	default:
		return "Unknown"
	}
}

// TernaryExpressionType is BETWEEN or NOT BETWEEN.
type TernaryExpressionType int

const (
	TernaryBetween TernaryExpressionType = iota
	TernaryNotBetween
)

func (t TernaryExpressionType) String() string {
	switch t {
	case TernaryBetween:
		return "Between"
	case TernaryNotBetween:
		return "NotBetween"
	default:
		return "Unknown"
	}
}
