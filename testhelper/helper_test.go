package testhelper

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTrimIndent(t *testing.T) {
	src := TrimIndent(t, `
		SELECT a
		  FROM t
		WHERE a = 1
	`)
	assert.Equal(t, "SELECT a\n  FROM t\nWHERE a = 1", src)
}

func TestTrimIndentKeepsBlankLines(t *testing.T) {
	src := TrimIndent(t, `
		SELECT 1;

		SELECT 2
	`)
	assert.Equal(t, "SELECT 1;\n\nSELECT 2", src)
}

func TestLocation(t *testing.T) {
	loc := Location(t)
	assert.True(t, strings.HasPrefix(loc, "(helper_test.go:"), loc)
}
