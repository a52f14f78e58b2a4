package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/shibukawa/sqlflat"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// load reads the configuration and builds the logger it describes.
func (c *Context) load() (*sqlflat.Config, *zap.Logger, error) {
	config, err := sqlflat.LoadConfig(c.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(config.Log, c.Verbose)
	if err != nil {
		return nil, nil, err
	}

	return config, logger, nil
}

// CLI represents the command-line interface
var CLI struct {
	Config  string     `help:"Configuration file path" default:"sqlflat.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Serve   ServeCmd   `cmd:"" help:"Serve the flattening API over HTTP"`
	Flatten FlattenCmd `cmd:"" help:"Flatten SQL files and print the JSON payloads"`
	Tokens  TokensCmd  `cmd:"" help:"Print the token stream of a SQL file"`
	Meta    MetaCmd    `cmd:"" help:"Print the wire schema"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, "sqlflat v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sqlflat"),
		kong.Description("Flatten SQL parse trees into compact JSON."),
	)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
