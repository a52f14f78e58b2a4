// Package testhelper holds small utilities shared by the package tests.
package testhelper

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TrimIndent turns an indented raw string literal into SQL source. The
// first line (the one after the opening backquote) is dropped, a trailing
// blank line is dropped, and the indentation shared by all non-blank lines
// is removed. Tabs are kept as tabs so that columns match the source.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) > 1 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if n := len(lines); n > 1 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || width < indent {
			indent = width
		}
	}

	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}

	return strings.Join(lines, "\n")
}

// Location returns "(file:line)" of the calling test code.
func Location(t *testing.T) string {
	t.Helper()

	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}

	return fmt.Sprintf("(%s:%d)", filepath.Base(file), line)
}
