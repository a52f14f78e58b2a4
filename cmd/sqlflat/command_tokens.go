package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/shibukawa/sqlflat/tokenizer"
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	File   string `arg:"" help:"SQL file ('-' reads standard input)"`
	Trivia bool   `help:"Include whitespace and comments" default:"true" negatable:""`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
	src, err := readInput(ctx, cmd.File)
	if err != nil {
		return err
	}

	tokens, err := tokenizer.NewSqlTokenizer(src).AllTokens()
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.File, err)
	}

	w := tabwriter.NewWriter(ctx.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tTYPE\tLINE\tCOLUMN\tOFFSET\tTEXT")
	for i, t := range tokens {
		if !cmd.Trivia && t.Type.IsTrivia() {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\n", i, t.Type, t.Position.Line, t.Position.Column, t.Position.Offset, strconv.Quote(t.Value))
	}
	return w.Flush()
}
