package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shibukawa/sqlflat"
)

// newLogger builds a production logger, or a development one when
// requested. Verbose forces the debug level.
func newLogger(config sqlflat.LogConfig, verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if config.Development || verbose {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	level, err := config.ZapLevel()
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = zap.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
