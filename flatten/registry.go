package flatten

import (
	"fmt"
	"slices"

	"github.com/shibukawa/sqlflat/ast"
)

// AttributeDescriptor is one named, readable attribute of a node kind.
type AttributeDescriptor struct {
	Name string
	Get  func(ast.Node) any
}

// NodeDescriptor lists the attributes of a node kind in declaration order.
// The order decides child path indexes.
type NodeDescriptor struct {
	Kind       ast.NodeKind
	Attributes []AttributeDescriptor
}

// Lookup returns the descriptor of kind.
func Lookup(kind ast.NodeKind) (NodeDescriptor, error) {
	d, ok := registry[kind]
	if !ok {
		return NodeDescriptor{}, fmt.Errorf("%w: %s", ErrUnregisteredNodeKind, kind)
	}
	return d, nil
}

func attr[N ast.Node](name string, get func(N) any) AttributeDescriptor {
	return AttributeDescriptor{
		Name: name,
		Get:  func(n ast.Node) any { return get(n.(N)) },
	}
}

// child boxes an optional node pointer; a nil pointer becomes a nil any.
func child[E any, P interface {
	*E
	ast.Node
}](p P) any {
	if p == nil {
		return nil
	}
	return p
}

// node boxes an optional interface-typed node.
func node(n ast.Node) any {
	if n == nil {
		return nil
	}
	return n
}

func list[T ast.Node](items []T) any {
	nodes := make([]ast.Node, len(items))
	for i, item := range items {
		nodes[i] = item
	}
	return nodes
}

// baseAttributes are the position fields every node embeds.
var baseAttributes = []AttributeDescriptor{
	{Name: "FirstTokenIndex", Get: func(n ast.Node) any { return n.Base().FirstTokenIndex }},
	{Name: "LastTokenIndex", Get: func(n ast.Node) any { return n.Base().LastTokenIndex }},
	{Name: "StartOffset", Get: func(n ast.Node) any { return n.Base().StartOffset }},
	{Name: "StartLine", Get: func(n ast.Node) any { return n.Base().StartLine }},
	{Name: "StartColumn", Get: func(n ast.Node) any { return n.Base().StartColumn }},
	{Name: "FragmentLength", Get: func(n ast.Node) any { return n.Base().FragmentLength }},
}

func describe(kind ast.NodeKind, attrs ...AttributeDescriptor) NodeDescriptor {
	return NodeDescriptor{
		Kind:       kind,
		Attributes: append(slices.Clone(baseAttributes), attrs...),
	}
}

var registry = func() map[ast.NodeKind]NodeDescriptor {
	descriptors := []NodeDescriptor{
		// Script and statements
		describe(ast.ScriptKind,
			attr("Statements", func(n *ast.Script) any { return list(n.Statements) }),
			attr("ScriptTokenStream", func(n *ast.Script) any { return n.ScriptTokenStream }),
		),
		describe(ast.SelectStatementKind,
			attr("WithClause", func(n *ast.SelectStatement) any { return child(n.WithClause) }),
			attr("QueryExpression", func(n *ast.SelectStatement) any { return node(n.QueryExpression) }),
		),
		describe(ast.InsertStatementKind,
			attr("WithClause", func(n *ast.InsertStatement) any { return child(n.WithClause) }),
			attr("Target", func(n *ast.InsertStatement) any { return node(n.Target) }),
			attr("Columns", func(n *ast.InsertStatement) any { return list(n.Columns) }),
			attr("InsertSource", func(n *ast.InsertStatement) any { return node(n.InsertSource) }),
			attr("ReturningClause", func(n *ast.InsertStatement) any { return child(n.ReturningClause) }),
		),
		describe(ast.UpdateStatementKind,
			attr("WithClause", func(n *ast.UpdateStatement) any { return child(n.WithClause) }),
			attr("Target", func(n *ast.UpdateStatement) any { return node(n.Target) }),
			attr("SetClauses", func(n *ast.UpdateStatement) any { return list(n.SetClauses) }),
			attr("FromClause", func(n *ast.UpdateStatement) any { return child(n.FromClause) }),
			attr("WhereClause", func(n *ast.UpdateStatement) any { return child(n.WhereClause) }),
			attr("ReturningClause", func(n *ast.UpdateStatement) any { return child(n.ReturningClause) }),
		),
		describe(ast.DeleteStatementKind,
			attr("WithClause", func(n *ast.DeleteStatement) any { return child(n.WithClause) }),
			attr("Target", func(n *ast.DeleteStatement) any { return node(n.Target) }),
			attr("WhereClause", func(n *ast.DeleteStatement) any { return child(n.WhereClause) }),
			attr("ReturningClause", func(n *ast.DeleteStatement) any { return child(n.ReturningClause) }),
		),

		// Query structure
		describe(ast.WithClauseKind,
			attr("Recursive", func(n *ast.WithClause) any { return n.Recursive }),
			attr("CommonTableExpressions", func(n *ast.WithClause) any { return list(n.CommonTableExpressions) }),
		),
		describe(ast.CommonTableExpressionKind,
			attr("ExpressionName", func(n *ast.CommonTableExpression) any { return child(n.ExpressionName) }),
			attr("Columns", func(n *ast.CommonTableExpression) any { return list(n.Columns) }),
			attr("QueryExpression", func(n *ast.CommonTableExpression) any { return node(n.QueryExpression) }),
		),
		describe(ast.QuerySpecificationKind,
			attr("UniqueRowFilter", func(n *ast.QuerySpecification) any { return n.UniqueRowFilter }),
			attr("SelectElements", func(n *ast.QuerySpecification) any { return list(n.SelectElements) }),
			attr("FromClause", func(n *ast.QuerySpecification) any { return child(n.FromClause) }),
			attr("WhereClause", func(n *ast.QuerySpecification) any { return child(n.WhereClause) }),
			attr("GroupByClause", func(n *ast.QuerySpecification) any { return child(n.GroupByClause) }),
			attr("HavingClause", func(n *ast.QuerySpecification) any { return child(n.HavingClause) }),
			attr("OrderByClause", func(n *ast.QuerySpecification) any { return child(n.OrderByClause) }),
			attr("LimitClause", func(n *ast.QuerySpecification) any { return child(n.LimitClause) }),
			attr("OffsetClause", func(n *ast.QuerySpecification) any { return child(n.OffsetClause) }),
		),
		describe(ast.BinaryQueryExpressionKind,
			attr("BinaryQueryExpressionType", func(n *ast.BinaryQueryExpression) any { return n.BinaryQueryExpressionType }),
			attr("All", func(n *ast.BinaryQueryExpression) any { return n.All }),
			attr("FirstQueryExpression", func(n *ast.BinaryQueryExpression) any { return node(n.FirstQueryExpression) }),
			attr("SecondQueryExpression", func(n *ast.BinaryQueryExpression) any { return node(n.SecondQueryExpression) }),
			attr("OrderByClause", func(n *ast.BinaryQueryExpression) any { return child(n.OrderByClause) }),
			attr("LimitClause", func(n *ast.BinaryQueryExpression) any { return child(n.LimitClause) }),
			attr("OffsetClause", func(n *ast.BinaryQueryExpression) any { return child(n.OffsetClause) }),
		),
		describe(ast.QueryParenthesisExpressionKind,
			attr("QueryExpression", func(n *ast.QueryParenthesisExpression) any { return node(n.QueryExpression) }),
			attr("OrderByClause", func(n *ast.QueryParenthesisExpression) any { return child(n.OrderByClause) }),
			attr("LimitClause", func(n *ast.QueryParenthesisExpression) any { return child(n.LimitClause) }),
			attr("OffsetClause", func(n *ast.QueryParenthesisExpression) any { return child(n.OffsetClause) }),
		),
		describe(ast.SelectScalarExpressionKind,
			attr("Expression", func(n *ast.SelectScalarExpression) any { return node(n.Expression) }),
			attr("ColumnName", func(n *ast.SelectScalarExpression) any { return child(n.ColumnName) }),
		),
		describe(ast.SelectStarExpressionKind,
			attr("Qualifier", func(n *ast.SelectStarExpression) any { return child(n.Qualifier) }),
		),
		describe(ast.FromClauseKind,
			attr("TableReferences", func(n *ast.FromClause) any { return list(n.TableReferences) }),
		),
		describe(ast.NamedTableReferenceKind,
			attr("SchemaObject", func(n *ast.NamedTableReference) any { return child(n.SchemaObject) }),
			attr("Alias", func(n *ast.NamedTableReference) any { return child(n.Alias) }),
		),
		describe(ast.QueryDerivedTableKind,
			attr("QueryExpression", func(n *ast.QueryDerivedTable) any { return node(n.QueryExpression) }),
			attr("Alias", func(n *ast.QueryDerivedTable) any { return child(n.Alias) }),
			attr("Columns", func(n *ast.QueryDerivedTable) any { return list(n.Columns) }),
		),
		describe(ast.QualifiedJoinKind,
			attr("FirstTableReference", func(n *ast.QualifiedJoin) any { return node(n.FirstTableReference) }),
			attr("SecondTableReference", func(n *ast.QualifiedJoin) any { return node(n.SecondTableReference) }),
			attr("QualifiedJoinType", func(n *ast.QualifiedJoin) any { return n.QualifiedJoinType }),
			attr("SearchCondition", func(n *ast.QualifiedJoin) any { return node(n.SearchCondition) }),
		),
		describe(ast.UnqualifiedJoinKind,
			attr("FirstTableReference", func(n *ast.UnqualifiedJoin) any { return node(n.FirstTableReference) }),
			attr("SecondTableReference", func(n *ast.UnqualifiedJoin) any { return node(n.SecondTableReference) }),
			attr("UnqualifiedJoinType", func(n *ast.UnqualifiedJoin) any { return n.UnqualifiedJoinType }),
		),
		describe(ast.WhereClauseKind,
			attr("SearchCondition", func(n *ast.WhereClause) any { return node(n.SearchCondition) }),
		),
		describe(ast.GroupByClauseKind,
			attr("GroupingSpecifications", func(n *ast.GroupByClause) any { return list(n.GroupingSpecifications) }),
		),
		describe(ast.ExpressionGroupingSpecificationKind,
			attr("Expression", func(n *ast.ExpressionGroupingSpecification) any { return node(n.Expression) }),
		),
		describe(ast.HavingClauseKind,
			attr("SearchCondition", func(n *ast.HavingClause) any { return node(n.SearchCondition) }),
		),
		describe(ast.OrderByClauseKind,
			attr("OrderByElements", func(n *ast.OrderByClause) any { return list(n.OrderByElements) }),
		),
		describe(ast.ExpressionWithSortOrderKind,
			attr("Expression", func(n *ast.ExpressionWithSortOrder) any { return node(n.Expression) }),
			attr("SortOrder", func(n *ast.ExpressionWithSortOrder) any { return n.SortOrder }),
			attr("NullsOrder", func(n *ast.ExpressionWithSortOrder) any { return n.NullsOrder }),
		),
		describe(ast.LimitClauseKind,
			attr("Expression", func(n *ast.LimitClause) any { return node(n.Expression) }),
		),
		describe(ast.OffsetClauseKind,
			attr("Expression", func(n *ast.OffsetClause) any { return node(n.Expression) }),
		),

		// DML parts
		describe(ast.ValuesInsertSourceKind,
			attr("IsDefaultValues", func(n *ast.ValuesInsertSource) any { return n.IsDefaultValues }),
			attr("RowValues", func(n *ast.ValuesInsertSource) any { return list(n.RowValues) }),
		),
		describe(ast.RowValueKind,
			attr("ColumnValues", func(n *ast.RowValue) any { return list(n.ColumnValues) }),
		),
		describe(ast.SelectInsertSourceKind,
			attr("Select", func(n *ast.SelectInsertSource) any { return node(n.Select) }),
		),
		describe(ast.AssignmentSetClauseKind,
			attr("Column", func(n *ast.AssignmentSetClause) any { return child(n.Column) }),
			attr("NewValue", func(n *ast.AssignmentSetClause) any { return node(n.NewValue) }),
		),
		describe(ast.ReturningClauseKind,
			attr("SelectElements", func(n *ast.ReturningClause) any { return list(n.SelectElements) }),
		),

		// Names
		describe(ast.IdentifierKind,
			attr("Value", func(n *ast.Identifier) any { return n.Value }),
			attr("QuoteType", func(n *ast.Identifier) any { return n.QuoteType }),
		),
		describe(ast.MultiPartIdentifierKind,
			attr("Identifiers", func(n *ast.MultiPartIdentifier) any { return list(n.Identifiers) }),
			attr("Count", func(n *ast.MultiPartIdentifier) any { return n.Count() }),
		),
		describe(ast.SchemaObjectNameKind,
			attr("Identifiers", func(n *ast.SchemaObjectName) any { return list(n.Identifiers) }),
			attr("Count", func(n *ast.SchemaObjectName) any { return n.Count() }),
			attr("ServerIdentifier", func(n *ast.SchemaObjectName) any { return child(n.ServerIdentifier()) }),
			attr("DatabaseIdentifier", func(n *ast.SchemaObjectName) any { return child(n.DatabaseIdentifier()) }),
			attr("SchemaIdentifier", func(n *ast.SchemaObjectName) any { return child(n.SchemaIdentifier()) }),
			attr("BaseIdentifier", func(n *ast.SchemaObjectName) any { return child(n.BaseIdentifier()) }),
		),

		// Expressions
		describe(ast.ColumnReferenceExpressionKind,
			attr("ColumnType", func(n *ast.ColumnReferenceExpression) any { return n.ColumnType }),
			attr("MultiPartIdentifier", func(n *ast.ColumnReferenceExpression) any { return child(n.MultiPartIdentifier) }),
		),
		describe(ast.IntegerLiteralKind,
			attr("Value", func(n *ast.IntegerLiteral) any { return n.Value }),
		),
		describe(ast.NumericLiteralKind,
			attr("Value", func(n *ast.NumericLiteral) any { return n.Value }),
		),
		describe(ast.StringLiteralKind,
			attr("Value", func(n *ast.StringLiteral) any { return n.Value }),
		),
		describe(ast.NullLiteralKind,
			attr("Value", func(n *ast.NullLiteral) any { return n.Value }),
		),
		describe(ast.BooleanLiteralKind,
			attr("Value", func(n *ast.BooleanLiteral) any { return n.Value }),
		),
		describe(ast.DefaultLiteralKind,
			attr("Value", func(n *ast.DefaultLiteral) any { return n.Value }),
		),
		describe(ast.VariableReferenceKind,
			attr("Name", func(n *ast.VariableReference) any { return n.Name }),
		),
		describe(ast.BinaryExpressionKind,
			attr("BinaryExpressionType", func(n *ast.BinaryExpression) any { return n.BinaryExpressionType }),
			attr("FirstExpression", func(n *ast.BinaryExpression) any { return node(n.FirstExpression) }),
			attr("SecondExpression", func(n *ast.BinaryExpression) any { return node(n.SecondExpression) }),
		),
		describe(ast.UnaryExpressionKind,
			attr("UnaryExpressionType", func(n *ast.UnaryExpression) any { return n.UnaryExpressionType }),
			attr("Expression", func(n *ast.UnaryExpression) any { return node(n.Expression) }),
		),
		describe(ast.ParenthesisExpressionKind,
			attr("Expression", func(n *ast.ParenthesisExpression) any { return node(n.Expression) }),
		),
		describe(ast.BooleanBinaryExpressionKind,
			attr("BinaryExpressionType", func(n *ast.BooleanBinaryExpression) any { return n.BinaryExpressionType }),
			attr("FirstExpression", func(n *ast.BooleanBinaryExpression) any { return node(n.FirstExpression) }),
			attr("SecondExpression", func(n *ast.BooleanBinaryExpression) any { return node(n.SecondExpression) }),
		),
		describe(ast.BooleanNotExpressionKind,
			attr("Expression", func(n *ast.BooleanNotExpression) any { return node(n.Expression) }),
		),
		describe(ast.BooleanComparisonExpressionKind,
			attr("ComparisonType", func(n *ast.BooleanComparisonExpression) any { return n.ComparisonType }),
			attr("FirstExpression", func(n *ast.BooleanComparisonExpression) any { return node(n.FirstExpression) }),
			attr("SecondExpression", func(n *ast.BooleanComparisonExpression) any { return node(n.SecondExpression) }),
		),
		describe(ast.BooleanIsNullExpressionKind,
			attr("IsNot", func(n *ast.BooleanIsNullExpression) any { return n.IsNot }),
			attr("Expression", func(n *ast.BooleanIsNullExpression) any { return node(n.Expression) }),
		),
		describe(ast.BooleanTernaryExpressionKind,
			attr("TernaryExpressionType", func(n *ast.BooleanTernaryExpression) any { return n.TernaryExpressionType }),
			attr("FirstExpression", func(n *ast.BooleanTernaryExpression) any { return node(n.FirstExpression) }),
			attr("SecondExpression", func(n *ast.BooleanTernaryExpression) any { return node(n.SecondExpression) }),
			attr("ThirdExpression", func(n *ast.BooleanTernaryExpression) any { return node(n.ThirdExpression) }),
		),
		describe(ast.InPredicateKind,
			attr("Expression", func(n *ast.InPredicate) any { return node(n.Expression) }),
			attr("NotDefined", func(n *ast.InPredicate) any { return n.NotDefined }),
			attr("Values", func(n *ast.InPredicate) any { return list(n.Values) }),
			attr("Subquery", func(n *ast.InPredicate) any { return child(n.Subquery) }),
		),
		describe(ast.LikePredicateKind,
			attr("FirstExpression", func(n *ast.LikePredicate) any { return node(n.FirstExpression) }),
			attr("SecondExpression", func(n *ast.LikePredicate) any { return node(n.SecondExpression) }),
			attr("NotDefined", func(n *ast.LikePredicate) any { return n.NotDefined }),
		),
		describe(ast.ExistsPredicateKind,
			attr("Subquery", func(n *ast.ExistsPredicate) any { return child(n.Subquery) }),
		),
		describe(ast.ScalarSubqueryKind,
			attr("QueryExpression", func(n *ast.ScalarSubquery) any { return node(n.QueryExpression) }),
		),
		describe(ast.FunctionCallKind,
			attr("CallTarget", func(n *ast.FunctionCall) any { return child(n.CallTarget) }),
			attr("FunctionName", func(n *ast.FunctionCall) any { return child(n.FunctionName) }),
			attr("UniqueRowFilter", func(n *ast.FunctionCall) any { return n.UniqueRowFilter }),
			attr("Parameters", func(n *ast.FunctionCall) any { return list(n.Parameters) }),
			attr("OverClause", func(n *ast.FunctionCall) any { return child(n.OverClause) }),
		),
		describe(ast.OverClauseKind,
			attr("Partitions", func(n *ast.OverClause) any { return list(n.Partitions) }),
			attr("OrderByClause", func(n *ast.OverClause) any { return child(n.OrderByClause) }),
		),
		describe(ast.SearchedCaseExpressionKind,
			attr("WhenClauses", func(n *ast.SearchedCaseExpression) any { return list(n.WhenClauses) }),
			attr("ElseExpression", func(n *ast.SearchedCaseExpression) any { return node(n.ElseExpression) }),
		),
		describe(ast.SearchedWhenClauseKind,
			attr("WhenExpression", func(n *ast.SearchedWhenClause) any { return node(n.WhenExpression) }),
			attr("ThenExpression", func(n *ast.SearchedWhenClause) any { return node(n.ThenExpression) }),
		),
		describe(ast.SimpleCaseExpressionKind,
			attr("InputExpression", func(n *ast.SimpleCaseExpression) any { return node(n.InputExpression) }),
			attr("WhenClauses", func(n *ast.SimpleCaseExpression) any { return list(n.WhenClauses) }),
			attr("ElseExpression", func(n *ast.SimpleCaseExpression) any { return node(n.ElseExpression) }),
		),
		describe(ast.SimpleWhenClauseKind,
			attr("WhenExpression", func(n *ast.SimpleWhenClause) any { return node(n.WhenExpression) }),
			attr("ThenExpression", func(n *ast.SimpleWhenClause) any { return node(n.ThenExpression) }),
		),
		describe(ast.CastCallKind,
			attr("DataType", func(n *ast.CastCall) any { return child(n.DataType) }),
			attr("Parameter", func(n *ast.CastCall) any { return node(n.Parameter) }),
		),
		describe(ast.SqlDataTypeReferenceKind,
			attr("Name", func(n *ast.SqlDataTypeReference) any { return child(n.Name) }),
			attr("Parameters", func(n *ast.SqlDataTypeReference) any { return list(n.Parameters) }),
		),
	}

	registry := make(map[ast.NodeKind]NodeDescriptor, len(descriptors))
	for _, d := range descriptors {
		registry[d.Kind] = d
	}
	return registry
}()
