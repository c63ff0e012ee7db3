package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/extloader/internal/command"
	"github.com/specialistvlad/extloader/internal/ctxlog"
	"github.com/specialistvlad/extloader/internal/manifest"
)

// ErrNotFound is returned when importing a name that has no registered init
// function.
var ErrNotFound = errors.New("no such component")

// Module is the interface that all compiled-in extension packages implement to
// register their units.
type Module interface {
	Register(r *Registry)
}

// InitFunc is the module-scope initialization of one unit. It runs when the
// unit is first imported.
type InitFunc func(ctx context.Context, unit *Unit) error

// Unit is an imported extension unit.
type Unit struct {
	Name string
	// Manifest is nil for units that ship without one.
	Manifest *manifest.Manifest
	// Commands is the registry the unit contributes its commands to. During
	// init it is a staging registry that is merged into the shared one only
	// when init succeeds.
	Commands *command.Registry
}

// ManifestSource resolves a unit name to its manifest, (nil, nil) when the
// unit has none.
type ManifestSource interface {
	Lookup(name string) (*manifest.Manifest, error)
}

// Registry holds the init functions compiled into the binary and the units
// imported so far.
type Registry struct {
	initializers map[string]InitFunc
	units        map[string]*Unit
	manifests    ManifestSource
	commands     *command.Registry
}

// Option configures a Registry.
type Option func(*Registry)

// WithManifests sets the source consulted for unit manifests on import.
func WithManifests(src ManifestSource) Option {
	return func(r *Registry) { r.manifests = src }
}

// WithCommands sets the command registry handed to units on import.
func WithCommands(cmds *command.Registry) Option {
	return func(r *Registry) { r.commands = cmds }
}

// New creates and initializes a new Registry instance.
func New(opts ...Option) *Registry {
	r := &Registry{
		initializers: make(map[string]InitFunc),
		units:        make(map[string]*Unit),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.commands == nil {
		r.commands = command.New()
	}
	return r
}

// Commands returns the command registry units register into.
func (r *Registry) Commands() *command.Registry {
	return r.commands
}

// Register registers the init function of the unit with the given
// fully-qualified name.
func (r *Registry) Register(name string, fn InitFunc) {
	if name == "" {
		panic("component name must not be empty")
	}
	if fn == nil {
		panic(fmt.Sprintf("component '%s' registered without an init function", name))
	}
	if _, exists := r.initializers[name]; exists {
		panic(fmt.Sprintf("component with name '%s' already registered", name))
	}
	slog.Debug("Registering component.", "name", name)
	r.initializers[name] = fn
}

// RegisterModules calls Register on every module.
func (r *Registry) RegisterModules(modules ...Module) {
	for _, mod := range modules {
		mod.Register(r)
	}
}

// Import resolves name to its unit, running the unit's init function the
// first time. A failed init leaves nothing cached and registers no commands.
func (r *Registry) Import(ctx context.Context, name string) (*Unit, error) {
	if unit, ok := r.units[name]; ok {
		return unit, nil
	}

	fn, ok := r.initializers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	unit := &Unit{Name: name, Commands: command.New()}
	if r.manifests != nil {
		m, err := r.manifests.Lookup(name)
		if err != nil {
			return nil, err
		}
		unit.Manifest = m
	}

	logger := ctxlog.FromContext(ctx)
	if err := fn(ctxlog.With(ctx, "component", name), unit); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	if err := r.commands.Merge(unit.Commands); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	unit.Commands = r.commands
	r.units[name] = unit
	logger.Debug("Component initialized.", "name", name, "has_manifest", unit.Manifest != nil)
	return unit, nil
}

// Lookup returns a unit that has already been imported.
func (r *Registry) Lookup(name string) (*Unit, bool) {
	unit, ok := r.units[name]
	return unit, ok
}

// Names returns the names of all registered init functions, sorted.
func (r *Registry) Names() []string {
	return sortedKeys(r.initializers)
}

// Imported returns the names of all imported units, sorted.
func (r *Registry) Imported() []string {
	return sortedKeys(r.units)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
