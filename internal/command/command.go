// Package command holds the user commands that extension units contribute.
// Units register their commands while they are imported, so the content of a
// Registry after loading is the observable result of a startup.
package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicate is returned when a command name is registered twice.
	ErrDuplicate = errors.New("command already registered")
	// ErrUnknown is returned when running a command that was never registered.
	ErrUnknown = errors.New("unknown command")
)

// Handler executes a command and returns its textual result.
type Handler func(ctx context.Context, args []string) (string, error)

// Command is one named, runnable command.
type Command struct {
	Name string
	Help string
	// Owner is the fully-qualified name of the unit that registered it.
	Owner   string
	Handler Handler
}

// Registry maps command names to commands.
type Registry struct {
	commands map[string]Command
}

// New creates an empty command registry.
func New() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" {
		return errors.New("command name must not be empty")
	}
	if cmd.Handler == nil {
		return fmt.Errorf("command %q has no handler", cmd.Name)
	}
	if existing, ok := r.commands[cmd.Name]; ok {
		return fmt.Errorf("%w: %q (owned by %s)", ErrDuplicate, cmd.Name, existing.Owner)
	}
	r.commands[cmd.Name] = cmd
	return nil
}

// Merge adds every command of src. Either all of them are added or, when a
// name is already taken, none are.
func (r *Registry) Merge(src *Registry) error {
	for name := range src.commands {
		if existing, ok := r.commands[name]; ok {
			return fmt.Errorf("%w: %q (owned by %s)", ErrDuplicate, name, existing.Owner)
		}
	}
	for name, cmd := range src.commands {
		r.commands[name] = cmd
	}
	return nil
}

// Get returns the command with the given name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Run executes the named command.
func (r *Registry) Run(ctx context.Context, name string, args []string) (string, error) {
	cmd, ok := r.commands[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	out, err := cmd.Handler(ctx, args)
	if err != nil {
		return "", fmt.Errorf("command %s: %w", name, err)
	}
	return out, nil
}

// List returns all commands sorted by name.
func (r *Registry) List() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
