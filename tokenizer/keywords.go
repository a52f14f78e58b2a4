package tokenizer

import "strings"

// keywords maps upper-case reserved words to their token types.
// Words missing here (NULLS, FIRST, LAST, function names, ...) are plain
// identifiers and are matched by text where the grammar needs them.
var keywords = map[string]TokenType{
	"SELECT":    SELECT,
	"INSERT":    INSERT,
	"UPDATE":    UPDATE,
	"DELETE":    DELETE,
	"INTO":      INTO,
	"VALUES":    VALUES,
	"SET":       SET,
	"DEFAULT":   DEFAULT,
	"RETURNING": RETURNING,
	"FROM":      FROM,
	"WHERE":     WHERE,
	"GROUP":     GROUP,
	"BY":        BY,
	"HAVING":    HAVING,
	"ORDER":     ORDER,
	"ASC":       ASC,
	"DESC":      DESC,
	"LIMIT":     LIMIT,
	"OFFSET":    OFFSET,
	"UNION":     UNION,
	"INTERSECT": INTERSECT,
	"EXCEPT":    EXCEPT,
	"ALL":       ALL,
	"DISTINCT":  DISTINCT,
	"AS":        AS,
	"WITH":      WITH,
	"RECURSIVE": RECURSIVE,
	"JOIN":      JOIN,
	"INNER":     INNER,
	"LEFT":      LEFT,
	"RIGHT":     RIGHT,
	"FULL":      FULL,
	"OUTER":     OUTER,
	"CROSS":     CROSS,
	"ON":        ON,
	"AND":       AND,
	"OR":        OR,
	"NOT":       NOT,
	"IN":        IN,
	"EXISTS":    EXISTS,
	"BETWEEN":   BETWEEN,
	"LIKE":      LIKE,
	"IS":        IS,
	"NULL":      NULL,
	"TRUE":      TRUE,
	"FALSE":     FALSE,
	"CASE":      CASE,
	"WHEN":      WHEN,
	"THEN":      THEN,
	"ELSE":      ELSE,
	"END":       END,
	"CAST":      CAST,
	"OVER":      OVER,
	"PARTITION": PARTITION,
}

// LookupKeyword returns the keyword token type for word (case-insensitive),
// or IDENTIFIER when word is not reserved.
func LookupKeyword(word string) TokenType {
	if t, ok := keywords[strings.ToUpper(word)]; ok {
		return t
	}

	return IDENTIFIER
}
