package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/shibukawa/sqlflat"
)

func newTestContext(t *testing.T, stdin string) (*Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	ctx := &Context{
		Config: filepath.Join(t.TempDir(), "missing.yaml"),
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return ctx, &stdout, &stderr
}

func writeSQL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFlattenCmd(t *testing.T) {
	dir := t.TempDir()
	first := writeSQL(t, dir, "first.sql", "SELECT 1")
	second := writeSQL(t, dir, "second.sql", "SELECT * FROM dbo.Orders")

	t.Run("KeepsArgumentOrder", func(t *testing.T) {
		ctx, stdout, stderr := newTestContext(t, "")
		cmd := &FlattenCmd{Files: []string{second, first, second}, Parallel: 2}

		err := cmd.Run(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "", stderr.String())

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		assert.Equal(t, 3, len(lines))
		assert.Contains(t, lines[0], `"id":"dbo.Orders"`)
		assert.Contains(t, lines[1], `"t":"IntegerLiteral"`)
		assert.Equal(t, lines[0], lines[2])
	})

	t.Run("Query", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")
		cmd := &FlattenCmd{Files: []string{second}, Query: "$.Tree[*].id"}

		assert.NoError(t, cmd.Run(ctx))
		assert.Equal(t, "\"dbo.Orders\"\n", stdout.String())
	})

	t.Run("InvalidQuery", func(t *testing.T) {
		ctx, _, _ := newTestContext(t, "")
		cmd := &FlattenCmd{Files: []string{second}, Query: "$.Tree["}

		err := cmd.Run(ctx)
		assert.True(t, errors.Is(err, ErrInvalidJSONPath), "got %v", err)
	})

	t.Run("Pretty", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")
		cmd := &FlattenCmd{Files: []string{first}, Pretty: true}

		assert.NoError(t, cmd.Run(ctx))
		assert.True(t, strings.HasPrefix(stdout.String(), "{\n  \"Tree\": [\n"), stdout.String())
	})

	t.Run("MissingFile", func(t *testing.T) {
		ctx, _, _ := newTestContext(t, "")
		cmd := &FlattenCmd{Files: []string{filepath.Join(dir, "nope.sql")}}

		err := cmd.Run(ctx)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestFlattenCmd_SyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeSQL(t, dir, "bad.sql", "SELECT FROM")

	ctx, stdout, stderr := newTestContext(t, "")
	cmd := &FlattenCmd{Files: []string{bad}}

	err := cmd.Run(ctx)
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.Contains(t, stdout.String(), `{"Errors":[`)
	assert.Equal(t, bad+":1:8: expected expression near 'FROM' (code 103)\n", stderr.String())
}

func TestFlattenCmd_Stdin(t *testing.T) {
	ctx, stdout, _ := newTestContext(t, "META")
	cmd := &FlattenCmd{Files: []string{"-"}}

	assert.NoError(t, cmd.Run(ctx))
	assert.True(t, strings.HasPrefix(stdout.String(), `{"Keys":{"path":"p"`))

	ctx, _, _ = newTestContext(t, "SELECT 1")
	cmd = &FlattenCmd{Files: []string{"-", "-"}}
	assert.True(t, errors.Is(cmd.Run(ctx), ErrStdinReadTwice))
}

func TestTokensCmd(t *testing.T) {
	ctx, stdout, _ := newTestContext(t, "SELECT a")

	cmd := &TokensCmd{File: "-", Trivia: false}
	assert.NoError(t, cmd.Run(ctx))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Equal(t, 4, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "INDEX"))
	assert.Contains(t, lines[1], `"SELECT"`)
	assert.Contains(t, lines[2], `"a"`)
	assert.True(t, strings.HasPrefix(lines[2], "2 "))
}

func TestTokensCmd_LexicalError(t *testing.T) {
	ctx, _, _ := newTestContext(t, "SELECT 'open")

	cmd := &TokensCmd{File: "-"}
	assert.Error(t, cmd.Run(ctx))
}

func TestMetaCmd(t *testing.T) {
	ctx, stdout, _ := newTestContext(t, "")

	assert.NoError(t, (&MetaCmd{}).Run(ctx))
	assert.True(t, strings.HasPrefix(stdout.String(), `{"Keys":{`))
	assert.True(t, strings.HasSuffix(stdout.String(), "]}\n"))
}

func TestVersionCmd(t *testing.T) {
	ctx, stdout, _ := newTestContext(t, "")

	assert.NoError(t, (&VersionCmd{}).Run(ctx))
	assert.Equal(t, "sqlflat v0.1.0\n", stdout.String())
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(sqlflat.LogConfig{Level: "warn"}, false)
	assert.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	logger, err = newLogger(sqlflat.LogConfig{Level: "warn"}, true)
	assert.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = newLogger(sqlflat.LogConfig{Level: "loud"}, false)
	assert.Error(t, err)
}
