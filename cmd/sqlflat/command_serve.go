package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shibukawa/sqlflat/server"
	"github.com/shibukawa/sqlflat/service"
)

// ServeCmd represents the serve command
type ServeCmd struct {
	Listen string `help:"HTTP listen address (overrides server.listen)" short:"l"`
}

// Run executes the serve command
func (cmd *ServeCmd) Run(ctx *Context) error {
	config, logger, err := ctx.load()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	server.SetLogger(logger)

	addr := config.Server.Listen
	if cmd.Listen != "" {
		addr = cmd.Listen
	}

	s, err := server.New(service.NewProcessor(), server.Options{
		MaxBodyBytes: config.Server.MaxBodyBytes,
		CacheSize:    config.Server.CacheEntries(),
	})
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting sqlflat server",
		zap.String("addr", addr),
		zap.Int64("max_body_bytes", config.Server.MaxBodyBytes),
		zap.Int("cache_size", config.Server.CacheEntries()),
	)

	return s.ListenAndServe(sigCtx, addr, config.Server.ShutdownTimeout)
}
