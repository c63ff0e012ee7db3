// Package loader imports every discovered extension unit at startup.
//
// LoadAll is fail-fast: the first unit that cannot be imported stops the pass
// and its error is returned. Nothing is retried or swallowed; whether a
// failure is fatal is up to the caller.
package loader

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/specialistvlad/extloader/internal/component"
	"github.com/specialistvlad/extloader/internal/ctxlog"
	"github.com/specialistvlad/extloader/internal/discovery"
	"github.com/specialistvlad/extloader/internal/registry"
)

// Importer resolves a unit name to a loaded unit.
type Importer interface {
	Import(ctx context.Context, name string) (*registry.Unit, error)
}

// Loader ties a discovery configuration to the host that imports the units.
type Loader struct {
	Discovery discovery.Config
	Host      Importer
}

// New creates a loader.
func New(cfg discovery.Config, host Importer) *Loader {
	return &Loader{Discovery: cfg, Host: host}
}

// Discover enumerates the units the loader would import.
func (l *Loader) Discover(ctx context.Context) iter.Seq2[component.Descriptor, error] {
	return discovery.Discover(ctx, l.Discovery)
}

// LoadAll discovers and imports every unit, in discovery order. It returns the
// names it imported before returning, or the first error.
func (l *Loader) LoadAll(ctx context.Context) ([]string, error) {
	return Load(ctx, l.Discover(ctx), l.Host)
}

// Load imports every descriptor of seq through host, one at a time. Each
// import is preceded by a debug record "Importing <name>".
func Load(ctx context.Context, seq iter.Seq2[component.Descriptor, error], host Importer) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	var loaded []string
	for d, err := range seq {
		if err != nil {
			return loaded, err
		}

		if logger.Enabled(ctx, slog.LevelDebug) {
			logger.Debug(fmt.Sprintf("Importing %s", d.Name), "name", d.Name)
		}
		if _, err := host.Import(ctx, d.Name); err != nil {
			return loaded, &component.LoadError{Name: d.Name, Err: err}
		}
		loaded = append(loaded, d.Name)
	}
	return loaded, nil
}
