package main

import (
	"fmt"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shibukawa/sqlflat/parser"
	"github.com/shibukawa/sqlflat/service"
)

// FlattenCmd represents the flatten command
type FlattenCmd struct {
	Files    []string `arg:"" help:"SQL files to flatten ('-' reads standard input)"`
	Query    string   `help:"JSONPath selecting parts of each payload" short:"q"`
	Pretty   bool     `help:"Indent the output" short:"p"`
	Parallel int      `help:"Number of files processed concurrently (0 uses flatten.parallel)" default:"0"`
}

// flattenOutput is the result for one input file.
type flattenOutput struct {
	data   []byte
	errors []*parser.ParseError
}

// Run executes the flatten command
func (cmd *FlattenCmd) Run(ctx *Context) error {
	if stdinCount(cmd.Files) > 1 {
		return ErrStdinReadTwice
	}

	config, logger, err := ctx.load()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var sel *selector
	if cmd.Query != "" {
		sel, err = newSelector(cmd.Query)
		if err != nil {
			return err
		}
	}

	parallel := cmd.Parallel
	if parallel <= 0 {
		parallel = config.Flatten.Parallel
	}

	outputs, err := cmd.process(ctx, sel, parallel, logger)
	if err != nil {
		return err
	}

	failed := false
	for i, out := range outputs {
		fmt.Fprintln(ctx.Stdout, string(out.data))
		if len(out.errors) > 0 {
			failed = true
			printSyntaxErrors(ctx, cmd.Files[i], out.errors)
		}
	}

	if failed {
		return ErrSyntax
	}
	return nil
}

// process flattens every file with at most parallel workers. Outputs keep
// the argument order.
func (cmd *FlattenCmd) process(ctx *Context, sel *selector, parallel int, logger *zap.Logger) ([]flattenOutput, error) {
	processor := service.NewProcessor()
	outputs := make([]flattenOutput, len(cmd.Files))

	var g errgroup.Group
	g.SetLimit(parallel)

	for i, name := range cmd.Files {
		g.Go(func() error {
			src, err := readInput(ctx, name)
			if err != nil {
				return err
			}

			resp, err := processor.Process(src)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			data, err := resp.JSON()
			if err != nil {
				return fmt.Errorf("%s: failed to encode payload: %w", name, err)
			}

			switch {
			case sel != nil:
				data, err = sel.apply(data, cmd.Pretty)
			case cmd.Pretty:
				data, err = indent(data)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			logger.Debug("flattened", zap.String("file", name), zap.Int("bytes", len(data)), zap.Int("errors", len(resp.Errors)))
			outputs[i] = flattenOutput{data: data, errors: resp.Errors}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func printSyntaxErrors(ctx *Context, name string, errs []*parser.ParseError) {
	red := color.New(color.FgRed)
	for _, e := range errs {
		red.Fprintf(ctx.Stderr, "%s:%d:%d: %s (code %d)\n", name, e.Line, e.Column, e.Message, e.Number)
	}
}

func stdinCount(files []string) int {
	count := 0
	for _, f := range files {
		if f == stdinName {
			count++
		}
	}
	return count
}
