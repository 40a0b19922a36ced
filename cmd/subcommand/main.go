// Copyright (c) 2025 Visvasity LLC

// Command subcommand is a small demo program built on the subcommand package.
//
// Settings are read from SUBCOMMAND_* environment variables; see
// internal/config.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/visvasity/subcommand"
	"github.com/visvasity/subcommand/internal/config"
	"github.com/visvasity/subcommand/internal/observability"
)

func main() {
	os.Exit(int(run(context.Background(), os.Args, os.Stdout, os.Stderr)))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) subcommand.ExitCode {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommand.ExitFailure
	}
	logger, err := observability.NewLogger(cfg.Logger, zapcore.AddSync(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommand.ExitFailure
	}
	defer logger.Sync()

	diag := stdout
	if cfg.Dispatch.SplitStreams {
		diag = stderr
	}

	reg := subcommand.NewRegistry(args)
	registerCommands(reg)
	return subcommand.Run(ctx, reg,
		subcommand.WithOutput(stdout),
		subcommand.WithErrorOutput(diag),
		subcommand.WithThreshold(cfg.Dispatch.SuggestThreshold),
		subcommand.WithLogger(logger),
	)
}
