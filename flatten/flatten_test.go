package flatten

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shibukawa/sqlflat/ast"
	"github.com/shibukawa/sqlflat/parser"
	"github.com/shibukawa/sqlflat/testdata"
)

func flattenSQL(t *testing.T, src string) []FlatNode {
	t.Helper()
	result := parser.Parse(src)
	require.Empty(t, result.Errors)
	nodes, err := New(result.Tokens).Flatten(result.Script)
	require.NoError(t, err)
	return nodes
}

func byPath(nodes []FlatNode) map[string]FlatNode {
	m := make(map[string]FlatNode, len(nodes))
	for _, n := range nodes {
		m[n.Path] = n
	}
	return m
}

func TestFlattenSelectLiteral(t *testing.T) {
	nodes := flattenSQL(t, "SELECT 1")

	type entry struct {
		path, name, typ string
	}
	got := make([]entry, 0, len(nodes))
	for _, n := range nodes {
		got = append(got, entry{n.Path, n.Name, n.Type})
	}
	assert.Equal(t, []entry{
		{"/0/0/0/0/", "Expression", "IntegerLiteral"},
		{"/0/0/0/", "SelectElements", "SelectScalarExpression"},
		{"/0/0/", "QueryExpression", "QuerySpecification"},
		{"/0/", "Statements", "SelectStatement"},
		{"/", "", "Script"},
	}, got)

	literal := nodes[0]
	assert.Equal(t, []OtherAttribute{{Name: "Value", Value: "1"}}, literal.OtherAttributes)
	assert.Equal(t, 2, literal.FirstTokenIndex)
	assert.Equal(t, 7, literal.StartOffset)
	assert.Equal(t, 8, literal.StartColumn)
	assert.Equal(t, 1, literal.Length)

	spec := nodes[2]
	assert.Equal(t, []OtherAttribute{{Name: "UniqueRowFilter", Value: "NotSpecified"}}, spec.OtherAttributes)

	root := nodes[4]
	assert.Empty(t, root.OtherAttributes)
	assert.Equal(t, 3, root.LastTokenIndex)
	assert.Equal(t, 8, root.Length)
}

func TestFlattenCompoundIdentifier(t *testing.T) {
	nodes := flattenSQL(t, "SELECT * FROM dbo /*c*/ . Orders")
	paths := byPath(nodes)

	// Script / SelectStatement / QuerySpecification / FromClause / NamedTableReference / SchemaObjectName
	object, ok := paths["/0/0/1/0/0/"]
	require.True(t, ok)
	assert.Equal(t, "SchemaObjectName", object.Type)
	assert.Equal(t, "SchemaObject", object.Name)
	assert.Equal(t, "dbo.Orders", object.Identifier)
	assert.Empty(t, object.OtherAttributes)

	for _, n := range nodes {
		assert.NotEqual(t, "Identifier", n.Type)
		assert.False(t, strings.HasPrefix(n.Path, object.Path) && n.Path != object.Path, "unexpected child %s", n.Path)
	}
}

func TestFlattenQuotedCompoundIdentifierKeepsSourceText(t *testing.T) {
	nodes := flattenSQL(t, `SELECT "s"."t".c FROM x`)
	paths := byPath(nodes)
	names, ok := paths["/0/0/0/0/0/"]
	require.True(t, ok)
	assert.Equal(t, "MultiPartIdentifier", names.Type)
	assert.Equal(t, `"s"."t".c`, names.Identifier)
}

func TestFlattenAtomicIdentifier(t *testing.T) {
	nodes := flattenSQL(t, "SELECT a AS [my col]")
	paths := byPath(nodes)

	alias, ok := paths["/0/0/0/1/"]
	require.True(t, ok)
	assert.Equal(t, "Identifier", alias.Type)
	assert.Equal(t, "ColumnName", alias.Name)
	assert.Equal(t, "[my col]", alias.Identifier)
	assert.Empty(t, alias.OtherAttributes)
	for _, n := range nodes {
		if n.Path != alias.Path {
			assert.False(t, strings.HasPrefix(n.Path, alias.Path))
		}
	}
}

func TestFlattenSharedChildCounter(t *testing.T) {
	nodes := flattenSQL(t, "SELECT * FROM a INNER JOIN b ON a.x = b.y")
	paths := byPath(nodes)

	join := paths["/0/0/1/0/"]
	require.Equal(t, "QualifiedJoin", join.Type)
	assert.Equal(t, []OtherAttribute{{Name: "QualifiedJoinType", Value: "Inner"}}, join.OtherAttributes)
	assert.Equal(t, "FirstTableReference", paths["/0/0/1/0/0/"].Name)
	assert.Equal(t, "SecondTableReference", paths["/0/0/1/0/1/"].Name)
	assert.Equal(t, "SearchCondition", paths["/0/0/1/0/2/"].Name)
	assert.Equal(t, "BooleanComparisonExpression", paths["/0/0/1/0/2/"].Type)

	// QuerySpecification: SelectElements takes 0, FromClause 1
	assert.Equal(t, "SelectElements", paths["/0/0/0/"].Name)
	assert.Equal(t, "FromClause", paths["/0/0/1/"].Name)
}

func TestFlattenFunctionCallSkipsAbsentAttributes(t *testing.T) {
	nodes := flattenSQL(t, "SELECT coalesce(a, 0)")
	paths := byPath(nodes)

	fn := paths["/0/0/0/0/"]
	require.Equal(t, "FunctionCall", fn.Type)
	// CallTarget and OverClause are absent and take no index.
	assert.Equal(t, "FunctionName", paths["/0/0/0/0/0/"].Name)
	assert.Equal(t, "coalesce", paths["/0/0/0/0/0/"].Identifier)
	assert.Equal(t, "Parameters", paths["/0/0/0/0/1/"].Name)
	assert.Equal(t, "Parameters", paths["/0/0/0/0/2/"].Name)
	_, ok := paths["/0/0/0/0/3/"]
	assert.False(t, ok)
}

const complexQuery = `WITH recent AS (SELECT id, max(ts) AS ts FROM events GROUP BY id)
SELECT DISTINCT u.id, u.name, CASE WHEN r.ts IS NULL THEN 'never' ELSE 'seen' END AS status
FROM users u LEFT JOIN recent r ON r.id = u.id
WHERE u.age BETWEEN 18 AND 65 AND u.name LIKE 'a%' OR u.id IN (SELECT id FROM admins)
ORDER BY u.name DESC
LIMIT 10;
UPDATE users SET name = 'x' WHERE id = 1;
DELETE FROM users WHERE id NOT IN (1, 2)`

func TestFlattenPathProperties(t *testing.T) {
	nodes := flattenSQL(t, complexQuery)
	require.NotEmpty(t, nodes)

	position := make(map[string]int, len(nodes))
	for i, n := range nodes {
		_, dup := position[n.Path]
		require.False(t, dup, "duplicate path %s", n.Path)
		position[n.Path] = i
	}

	assert.Equal(t, RootPath, nodes[len(nodes)-1].Path)
	for i, n := range nodes {
		if n.Path == RootPath {
			continue
		}
		parent := ParentPath(n.Path)
		parentIndex, ok := position[parent]
		require.True(t, ok, "missing parent of %s", n.Path)
		assert.Less(t, i, parentIndex, "%s must precede its parent", n.Path)
		assert.Equal(t, Depth(parent)+1, Depth(n.Path))
	}
}

func TestFlattenFixtures(t *testing.T) {
	scripts, err := testdata.Scripts()
	require.NoError(t, err)
	require.NotEmpty(t, scripts)

	for _, script := range scripts {
		t.Run(script.Name, func(t *testing.T) {
			result := parser.Parse(script.SQL)
			require.Empty(t, result.Errors, "%v", result.Errors)
			nodes, err := New(result.Tokens).Flatten(result.Script)
			require.NoError(t, err)

			seen := make(map[string]bool, len(nodes))
			for _, n := range nodes {
				require.False(t, seen[n.Path], "duplicate path %s", n.Path)
				seen[n.Path] = true
				if n.Path != RootPath {
					assert.NotEmpty(t, n.Name, n.Path)
				}
				assert.LessOrEqual(t, n.FirstTokenIndex, n.LastTokenIndex, n.Path)
				assert.Less(t, n.LastTokenIndex, len(result.Tokens), n.Path)
				assert.LessOrEqual(t, n.StartOffset+n.Length, len(script.SQL), n.Path)
			}
			for path := range seen {
				if path != RootPath {
					assert.True(t, seen[ParentPath(path)], "orphan %s", path)
				}
			}
			assert.Equal(t, RootPath, nodes[len(nodes)-1].Path)
		})
	}
}

func TestFlattenIsDeterministic(t *testing.T) {
	result := parser.Parse(complexQuery)
	require.Empty(t, result.Errors)
	f := New(result.Tokens)
	first, err := f.Flatten(result.Script)
	require.NoError(t, err)
	second, err := f.Flatten(result.Script)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFlattenExtentsMatchSource(t *testing.T) {
	nodes := flattenSQL(t, complexQuery)
	for _, n := range nodes {
		require.LessOrEqual(t, n.StartOffset+n.Length, len(complexQuery), n.Path)
	}
	update := byPath(nodes)["/1/"]
	assert.Equal(t, "UpdateStatement", update.Type)
	assert.Equal(t, "UPDATE users SET name = 'x' WHERE id = 1", complexQuery[update.StartOffset:update.StartOffset+update.Length])
	assert.Equal(t, 7, update.StartLine)
	assert.Equal(t, 1, update.StartColumn)
}

type unregistered struct {
	ast.BaseNode
}

func (*unregistered) Kind() ast.NodeKind { return ast.NodeKind(-1) }

func TestFlattenInternalDefects(t *testing.T) {
	t.Run("unregistered kind", func(t *testing.T) {
		_, err := New(nil).Flatten(&unregistered{})
		assert.ErrorIs(t, err, ErrUnregisteredNodeKind)
	})
	t.Run("token index out of range", func(t *testing.T) {
		id := &ast.Identifier{Value: "x"}
		id.FirstTokenIndex = 3
		nodes, err := New(nil).Flatten(id)
		assert.ErrorIs(t, err, ErrTokenIndexOutOfRange)
		assert.Nil(t, nodes)
	})
}
