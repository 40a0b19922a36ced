// Copyright (c) 2025 Visvasity LLC

package subcommand

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"
)

// Option configures a [Dispatcher].
type Option func(*Dispatcher)

// WithOutput sets the writer for usage and help text. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) { d.stdout = w }
}

// WithErrorOutput sets the writer for diagnostics: unknown commands,
// suggestions and handler errors. Defaults to os.Stderr. Pass the same writer
// as [WithOutput] to keep everything on one stream.
func WithErrorOutput(w io.Writer) Option {
	return func(d *Dispatcher) { d.stderr = w }
}

// WithThreshold sets the edit distance below which registered names are
// suggested for an unknown command. Defaults to [DefaultThreshold].
func WithThreshold(n int) Option {
	return func(d *Dispatcher) { d.threshold = n }
}

// WithLogger sets the logger for dispatch events. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// Dispatcher resolves the invocation held by a [Registry] to a command and
// runs it.
type Dispatcher struct {
	reg       *Registry
	stdout    io.Writer
	stderr    io.Writer
	threshold int
	logger    *zap.Logger
}

// NewDispatcher creates a dispatcher for reg.
func NewDispatcher(reg *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		reg:       reg,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		threshold: DefaultThreshold,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run dispatches the invocation in reg. It is shorthand for
// NewDispatcher(reg, opts...).Run(ctx).
//
// Example:
//
//	reg := subcommand.NewRegistry(os.Args)
//	reg.RegisterFunc("version", "Display version", printVersion)
//	os.Exit(int(subcommand.Run(context.Background(), reg)))
func Run(ctx context.Context, reg *Registry, opts ...Option) ExitCode {
	return NewDispatcher(reg, opts...).Run(ctx)
}

type outputKey struct{}

// Output returns the writer handlers should use for regular output. Inside a
// handler started by a [Dispatcher] it is the dispatcher's output writer;
// otherwise it is os.Stdout.
func Output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok {
		return w
	}
	return os.Stdout
}

// Run resolves the requested command and invokes it with the remaining
// arguments. With no command it prints the usage. Unknown commands produce
// suggestions, or a not-found message and the usage when nothing is close.
// A failing handler has its usage line and error printed.
//
// Run returns the handler's exit code on success. A handler error yields the
// handler's code when it is nonzero and ExitFailure otherwise. A missing or
// unknown command yields ExitUsage.
func (d *Dispatcher) Run(ctx context.Context) ExitCode {
	args := d.reg.args
	if len(args) < 2 {
		d.Usage()
		return ExitUsage
	}

	name, rest := args[1], slices.Clone(args[2:])
	cmd, ok := d.reg.Lookup(name)
	if !ok {
		return d.notFound(name)
	}
	if name == HelpCommand {
		return d.Help()
	}
	if cmd.handler == nil {
		d.logger.Debug("command has no handler", zap.String("command", name))
		fmt.Fprintln(d.stderr, cmd.UsageLine())
		return ExitUsage
	}

	d.logger.Debug("dispatching command", zap.String("command", name), zap.Strings("args", rest))
	code, err := cmd.handler.Run(context.WithValue(ctx, outputKey{}, d.stdout), rest)
	if err != nil {
		d.logger.Debug("command failed", zap.String("command", name), zap.Int("code", int(code)), zap.Error(err))
		fmt.Fprintln(d.stderr, cmd.UsageLine())
		fmt.Fprintf(d.stderr, "Error: %v\n", err)
		if code == ExitSuccess {
			code = ExitFailure
		}
		return code
	}
	return code
}

func (d *Dispatcher) notFound(name string) ExitCode {
	suggestions := Suggest(name, d.reg.Names(), d.threshold)
	d.logger.Debug("command not found", zap.String("command", name), zap.Strings("suggestions", suggestions))
	if len(suggestions) > 0 {
		fmt.Fprintln(d.stderr, "May you mean:")
		for _, s := range suggestions {
			fmt.Fprintf(d.stderr, "    %s\n", s)
		}
		return ExitUsage
	}
	fmt.Fprintf(d.stderr, "Command not found: %s\n", name)
	d.printUsage(d.stderr)
	return ExitUsage
}

// Usage prints the program usage and every registered command with its
// description, sorted by name.
func (d *Dispatcher) Usage() {
	d.printUsage(d.stdout)
}

func (d *Dispatcher) printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [options]\n", d.reg.Program())
	fmt.Fprintln(w, "Commands:")
	for _, name := range d.reg.Names() {
		cmd := d.reg.commands[name]
		fmt.Fprintf(w, "    %-12s %s\n", cmd.name, cmd.description)
	}
}

// Help implements the built-in help command. Without arguments it prints the
// usage; otherwise it prints the usage line of every named command. Returns
// ExitUsage if any of the names is unknown.
func (d *Dispatcher) Help() ExitCode {
	args := d.reg.args
	if len(args) <= 2 {
		d.Usage()
		return ExitSuccess
	}
	code := ExitSuccess
	for _, name := range args[2:] {
		if !d.CommandUsage(name) {
			code = ExitUsage
		}
	}
	return code
}

// CommandUsage prints the usage line for the named command. If there is no
// such command it prints a not-found message followed by the full usage to
// the error writer and returns false.
func (d *Dispatcher) CommandUsage(name string) bool {
	cmd, ok := d.reg.Lookup(name)
	if !ok {
		fmt.Fprintf(d.stderr, "Command not found: %s\n", name)
		d.printUsage(d.stderr)
		return false
	}
	fmt.Fprintln(d.stdout, cmd.UsageLine())
	return true
}
