package main

import (
	"fmt"

	"github.com/shibukawa/sqlflat/service"
)

// MetaCmd represents the meta command
type MetaCmd struct {
	Pretty bool `help:"Indent the output" short:"p"`
}

// Run executes the meta command
func (cmd *MetaCmd) Run(ctx *Context) error {
	resp, err := service.NewProcessor().Process(service.MetaRequest)
	if err != nil {
		return err
	}

	data, err := resp.JSON()
	if err != nil {
		return fmt.Errorf("failed to encode wire schema: %w", err)
	}

	if cmd.Pretty {
		data, err = indent(data)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(ctx.Stdout, string(data))
	return nil
}
