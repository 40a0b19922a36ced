// Copyright (c) 2025 Visvasity LLC

package subcommand

import (
	"maps"
	"slices"
)

// HelpCommand is the name of the built-in help command.
const HelpCommand = "help"

const helpDescription = "Print help"

// Registry holds the invocation arguments and the commands registered for
// them, keyed by name. A Registry is owned by a single invocation path and is
// not safe for concurrent use.
type Registry struct {
	args     []string
	commands map[string]Command
}

// NewRegistry creates a registry for the given invocation arguments. args[0]
// is the program name, args[1] the requested command and the rest are
// forwarded to that command. The built-in help command is registered.
func NewRegistry(args []string) *Registry {
	r := &Registry{
		args:     slices.Clone(args),
		commands: make(map[string]Command),
	}
	r.commands[HelpCommand] = Command{name: HelpCommand, description: helpDescription}
	return r
}

// Register adds a command, replacing any previous command with the same name.
// Names are not validated. Registering "help" only replaces the description;
// the help command is always handled by the dispatcher.
func (r *Registry) Register(name, description string, h Handler) {
	if name == HelpCommand {
		h = nil
	}
	r.commands[name] = Command{name: name, description: description, handler: h}
}

// RegisterFunc is like Register for a plain function.
func (r *Registry) RegisterFunc(name, description string, fn HandlerFunc) {
	r.Register(name, description, fn)
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Names returns the registered command names in ascending order, including
// the built-in help command.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.commands))
}

// Len returns the number of registered commands, including help.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Program returns the program name from the invocation arguments, or an empty
// string if there are none.
func (r *Registry) Program() string {
	if len(r.args) == 0 {
		return ""
	}
	return r.args[0]
}

// Args returns a copy of the invocation arguments.
func (r *Registry) Args() []string {
	return slices.Clone(r.args)
}
