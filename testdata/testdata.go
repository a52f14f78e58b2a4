// Package testdata embeds SQL scripts used as fixtures by the package tests.
package testdata

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed sql/*.sql
var scripts embed.FS

// Script is one embedded fixture.
type Script struct {
	Name string
	SQL  string
}

// Scripts returns every fixture in file name order.
func Scripts() ([]Script, error) {
	entries, err := fs.ReadDir(scripts, "sql")
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	result := make([]Script, 0, len(entries))
	for _, e := range entries {
		data, err := fs.ReadFile(scripts, path.Join("sql", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read fixture %s: %w", e.Name(), err)
		}
		result = append(result, Script{Name: e.Name(), SQL: string(data)})
	}

	return result, nil
}
