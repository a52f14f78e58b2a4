package parser

import (
	"slices"
	"strings"

	pc "github.com/shibukawa/parsercombinator"
	tok "github.com/shibukawa/sqlflat/tokenizer"
)

// primitiveType matches one token of any of the given types.
func primitiveType(typeName string, types ...tok.TokenType) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type) {
			return 1, tokens[:1], nil
		}
		return 0, nil, pc.ErrNotMatch
	}
}

// contextualKeyword matches a plain identifier spelled as one of words.
// These words are keywords only in certain positions (NULLS FIRST, OFFSET n ROWS).
func contextualKeyword(typeName string, words ...string) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) == 0 || tokens[0].Val.Type != tok.IDENTIFIER {
			return 0, nil, pc.ErrNotMatch
		}
		for _, w := range words {
			if strings.EqualFold(tokens[0].Val.Value, w) {
				return 1, tokens[:1], nil
			}
		}
		return 0, nil, pc.ErrNotMatch
	}
}

func toParserTokens(tokens []tok.Token) []pc.Token[tok.Token] {
	results := make([]pc.Token[tok.Token], len(tokens))
	for i, token := range tokens {
		results[i] = pc.Token[tok.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Value,
		}
	}
	return results
}

// Single token matchers
var (
	name         = primitiveType("name", tok.IDENTIFIER, tok.QUOTED_IDENTIFIER)
	comma        = primitiveType("comma", tok.COMMA)
	dot          = primitiveType("dot", tok.DOT)
	semicolon    = primitiveType("semicolon", tok.SEMICOLON)
	parenOpen    = primitiveType("parenOpen", tok.OPENED_PARENS)
	parenClose   = primitiveType("parenClose", tok.CLOSED_PARENS)
	asterisk     = primitiveType("asterisk", tok.MULTIPLY)
	equal        = primitiveType("equal", tok.EQUAL)
	comparison   = primitiveType("comparison", tok.EQUAL, tok.NOT_EQUAL, tok.LESS_THAN, tok.GREATER_THAN, tok.LESS_EQUAL, tok.GREATER_EQUAL)
	additiveOp   = primitiveType("additiveOp", tok.PLUS, tok.MINUS, tok.CONCAT)
	multiplyOp   = primitiveType("multiplyOp", tok.MULTIPLY, tok.DIVIDE, tok.MODULO)
	signOp       = primitiveType("sign", tok.PLUS, tok.MINUS)
	selectKw     = primitiveType("select", tok.SELECT)
	insertKw     = primitiveType("insert", tok.INSERT)
	updateKw     = primitiveType("update", tok.UPDATE)
	deleteKw     = primitiveType("delete", tok.DELETE)
	intoKw       = primitiveType("into", tok.INTO)
	valuesKw     = primitiveType("values", tok.VALUES)
	setKw        = primitiveType("set", tok.SET)
	defaultKw    = primitiveType("default", tok.DEFAULT)
	returningKw  = primitiveType("returning", tok.RETURNING)
	fromKw       = primitiveType("from", tok.FROM)
	whereKw      = primitiveType("where", tok.WHERE)
	havingKw     = primitiveType("having", tok.HAVING)
	limitKw      = primitiveType("limit", tok.LIMIT)
	offsetKw     = primitiveType("offset", tok.OFFSET)
	ascKw        = primitiveType("asc", tok.ASC)
	descKw       = primitiveType("desc", tok.DESC)
	unionKw      = primitiveType("union", tok.UNION)
	intersectKw  = primitiveType("intersect", tok.INTERSECT)
	exceptKw     = primitiveType("except", tok.EXCEPT)
	allKw        = primitiveType("all", tok.ALL)
	distinctKw   = primitiveType("distinct", tok.DISTINCT)
	asKw         = primitiveType("as", tok.AS)
	withKw       = primitiveType("with", tok.WITH)
	recursiveKw  = primitiveType("recursive", tok.RECURSIVE)
	joinKw       = primitiveType("join", tok.JOIN)
	onKw         = primitiveType("on", tok.ON)
	andKw        = primitiveType("and", tok.AND)
	orKw         = primitiveType("or", tok.OR)
	notKw        = primitiveType("not", tok.NOT)
	inKw         = primitiveType("in", tok.IN)
	existsKw     = primitiveType("exists", tok.EXISTS)
	betweenKw    = primitiveType("between", tok.BETWEEN)
	likeKw       = primitiveType("like", tok.LIKE)
	isKw         = primitiveType("is", tok.IS)
	nullKw       = primitiveType("null", tok.NULL)
	caseKw       = primitiveType("case", tok.CASE)
	whenKw       = primitiveType("when", tok.WHEN)
	thenKw       = primitiveType("then", tok.THEN)
	elseKw       = primitiveType("else", tok.ELSE)
	endKw        = primitiveType("end", tok.END)
	castKw       = primitiveType("cast", tok.CAST)
	overKw       = primitiveType("over", tok.OVER)
	rowsKw       = contextualKeyword("rows", "ROW", "ROWS")
	nullsFirstKw = contextualKeyword("first", "FIRST")
	nullsLastKw  = contextualKeyword("last", "LAST")
	nullsKw      = contextualKeyword("nulls", "NULLS")
)

// Multi token sequences
var (
	orderBy       = pc.Seq(primitiveType("order", tok.ORDER), primitiveType("by", tok.BY))
	groupBy       = pc.Seq(primitiveType("group", tok.GROUP), primitiveType("by", tok.BY))
	partitionBy   = pc.Seq(primitiveType("partition", tok.PARTITION), primitiveType("by", tok.BY))
	defaultValues = pc.Seq(defaultKw, valuesKw)
	unionAll      = pc.Seq(unionKw, allKw)
	crossJoin     = pc.Seq(primitiveType("cross", tok.CROSS), joinKw)
	innerJoin     = pc.Seq(pc.Optional(primitiveType("inner", tok.INNER)), joinKw)
	leftJoin      = pc.Seq(primitiveType("left", tok.LEFT), pc.Optional(primitiveType("outer", tok.OUTER)), joinKw)
	rightJoin     = pc.Seq(primitiveType("right", tok.RIGHT), pc.Optional(primitiveType("outer", tok.OUTER)), joinKw)
	fullJoin      = pc.Seq(primitiveType("full", tok.FULL), pc.Optional(primitiveType("outer", tok.OUTER)), joinKw)
	isNotNull     = pc.Seq(isKw, notKw, nullKw)
	isNull        = pc.Seq(isKw, nullKw)
	notIn         = pc.Seq(notKw, inKw)
	notLike       = pc.Seq(notKw, likeKw)
	notBetween    = pc.Seq(notKw, betweenKw)
	nullsFirst    = pc.Seq(nullsKw, nullsFirstKw)
	nullsLast     = pc.Seq(nullsKw, nullsLastKw)
)
