// Copyright (c) 2025 Visvasity LLC

// Package subcommand provides a minimal dispatcher for programs built out of
// named subcommands. A [Registry] is created from the process arguments, the
// program registers its commands with a description and a [Handler], and a
// [Dispatcher] resolves the first argument to a command and forwards the
// remaining arguments to it.
//
// Unknown command names are matched against the registered names by edit
// distance and close matches are printed as suggestions. A built-in "help"
// command is always present.
//
// Key features:
//   - Handlers defined as functions ([HandlerFunc]) or objects implementing [Handler].
//   - Handler exit codes returned to the caller of [Dispatcher.Run].
//   - "did you mean" suggestions with a configurable distance threshold.
//   - Diagnostics written to a separate stream from regular output.
//
// Handlers receive the raw leftover tokens and parse them however they wish.
//
// Example:
//
//	reg := subcommand.NewRegistry(os.Args)
//	reg.RegisterFunc("hello", "Prints hello world", func(ctx context.Context, args []string) (subcommand.ExitCode, error) {
//	    fmt.Fprintln(subcommand.Output(ctx), "Hello world")
//	    return subcommand.ExitSuccess, nil
//	})
//	os.Exit(int(subcommand.Run(context.Background(), reg)))
package subcommand

import (
	"context"
	"fmt"
)

// ExitCode is the status reported by a handler. Zero means success by
// convention; other values are handler defined.
type ExitCode int

const (
	ExitSuccess ExitCode = 0
	ExitFailure ExitCode = 1
	ExitUsage   ExitCode = 2
)

// Handler implements a subcommand. Run receives the arguments following the
// command name, verbatim, and returns an exit code or an error with a human
// readable message.
//
// Example:
//
//	type Version struct{}
//
//	func (Version) Run(ctx context.Context, args []string) (subcommand.ExitCode, error) {
//	    fmt.Fprintln(subcommand.Output(ctx), "version 1.0.0")
//	    return subcommand.ExitSuccess, nil
//	}
type Handler interface {
	Run(ctx context.Context, args []string) (ExitCode, error)
}

// HandlerFunc adapts an ordinary function to the [Handler] interface.
type HandlerFunc func(ctx context.Context, args []string) (ExitCode, error)

// Run calls f(ctx, args).
func (f HandlerFunc) Run(ctx context.Context, args []string) (ExitCode, error) {
	return f(ctx, args)
}

// Command is a registered subcommand. Commands are created by
// [Registry.Register] and are immutable afterwards.
type Command struct {
	name        string
	description string
	handler     Handler
}

func (c Command) Name() string        { return c.name }
func (c Command) Description() string { return c.description }

// Handler returns the command's handler, which is nil for the built-in help
// command.
func (c Command) Handler() Handler { return c.handler }

// UsageLine returns the one line help for the command.
func (c Command) UsageLine() string {
	return fmt.Sprintf("Usage: %s - %s", c.name, c.description)
}
