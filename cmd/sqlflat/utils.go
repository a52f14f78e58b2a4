package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

const stdinName = "-"

// readInput reads a file, or standard input for "-".
func readInput(ctx *Context, name string) (string, error) {
	if name == stdinName {
		data, err := io.ReadAll(ctx.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

// indent re-indents an encoded payload without reordering its keys.
func indent(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent output: %w", err)
	}
	return buf.Bytes(), nil
}

// selector is a compiled JSONPath applied to encoded payloads.
type selector struct {
	path jp.Expr
}

func newSelector(query string) (*selector, error) {
	x, err := jp.ParseString(query)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrInvalidJSONPath, query, err)
	}
	return &selector{path: x}, nil
}

// apply returns every match in data, one JSON value per line.
func (s *selector) apply(data []byte, pretty bool) ([]byte, error) {
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	options := ojg.Options{Sort: true, HTMLUnsafe: true}
	if pretty {
		options.Indent = 2
	}

	var lines []string
	for _, match := range s.path.Get(doc) {
		lines = append(lines, oj.JSON(match, &options))
	}
	return []byte(strings.Join(lines, "\n")), nil
}
