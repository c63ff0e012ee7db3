package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/specialistvlad/extloader/bundle"
	"github.com/specialistvlad/extloader/internal/command"
	"github.com/specialistvlad/extloader/internal/component"
	"github.com/specialistvlad/extloader/internal/ctxlog"
	"github.com/specialistvlad/extloader/internal/discovery"
	"github.com/specialistvlad/extloader/internal/loader"
	"github.com/specialistvlad/extloader/internal/manifest"
	"github.com/specialistvlad/extloader/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	loader   *loader.Loader
}

// Option customizes NewApp, mostly for tests.
type Option func(*options)

type options struct {
	modules    []registry.Module
	searchPath []fs.FS
	bundleTop  string
	bundleFS   fs.FS
}

// WithModules replaces the compiled-in module list.
func WithModules(modules ...registry.Module) Option {
	return func(o *options) { o.modules = modules }
}

// WithSearchPath replaces the directories of Config.SearchPath.
func WithSearchPath(fsys ...fs.FS) Option {
	return func(o *options) { o.searchPath = fsys }
}

// WithBundle replaces the embedded tree used in bundled mode.
func WithBundle(topLevel string, fsys fs.FS) Option {
	return func(o *options) {
		o.bundleTop = topLevel
		o.bundleFS = fsys
	}
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, cfg *Config, opts ...Option) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	mode, err := discovery.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	o := &options{modules: coreModules(), bundleTop: bundle.TopLevel}
	for _, opt := range opts {
		opt(o)
	}

	var mounts []manifest.Mount
	discoveryCfg := discovery.Config{Mode: mode, Namespace: cfg.Namespace}

	switch mode {
	case discovery.ModeStandard:
		searchPath := o.searchPath
		if searchPath == nil {
			for _, dir := range cfg.SearchPath {
				searchPath = append(searchPath, os.DirFS(dir))
			}
		}
		discoveryCfg.SearchPath = searchPath
		for _, fsys := range searchPath {
			mounts = append(mounts, manifest.Mount{Package: cfg.Namespace, FS: fsys})
		}
	case discovery.ModeBundled:
		if o.bundleFS == nil {
			o.bundleFS = bundle.FS()
		}
		discoveryCfg.TopLevel = o.bundleTop
		discoveryCfg.Finders = []discovery.Finder{discovery.FSFinder{Pkg: o.bundleTop, FS: o.bundleFS}}
		mounts = []manifest.Mount{{Package: o.bundleTop, FS: o.bundleFS}}
	}

	reg := registry.New(
		registry.WithManifests(manifest.NewStore(mounts...)),
		registry.WithCommands(command.New()),
	)
	reg.RegisterModules(o.modules...)
	logger.Debug("All Go modules registered.", "count", len(o.modules))

	if mode == discovery.ModeBundled {
		// Compiled-in units are part of the bundle even without a manifest.
		discoveryCfg.Finders = append(discoveryCfg.Finders, discovery.StaticFinder{
			Pkg:   o.bundleTop,
			Names: reg.Names(),
		})
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		loader:   loader.New(discoveryCfg, reg),
	}, nil
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Discover lists the units the application would load.
func (a *App) Discover(ctx context.Context) ([]component.Descriptor, error) {
	ctx = a.withLogger(ctx)
	descs, err := discovery.Collect(a.loader.Discover(ctx))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Discovery finished.", "mode", a.config.Mode, "count", len(descs))
	return descs, nil
}

// Load imports every discovered unit. Any failure is fatal to startup and is
// returned unchanged.
func (a *App) Load(ctx context.Context) ([]string, error) {
	ctx = a.withLogger(ctx)
	a.logger.Debug("Loading components...", "mode", a.config.Mode, "namespace", a.config.Namespace)

	loaded, err := a.loader.LoadAll(ctx)
	if err != nil {
		return loaded, err
	}
	a.logger.Info("Components loaded.", "count", len(loaded), "commands", len(a.registry.Commands().List()))
	return loaded, nil
}

// Check discovers every unit and verifies each one has a compiled-in init
// function, without importing anything.
func (a *App) Check(ctx context.Context) error {
	descs, err := a.Discover(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(descs))
	for _, d := range descs {
		names = append(names, d.Name)
	}
	return a.registry.Validate(a.withLogger(ctx), names)
}

// Exec loads every unit and then runs the named command.
func (a *App) Exec(ctx context.Context, name string, args []string) (string, error) {
	if _, err := a.Load(ctx); err != nil {
		return "", err
	}
	out, err := a.registry.Commands().Run(a.withLogger(ctx), name, args)
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", name, err)
	}
	return out, nil
}

// Commands returns the commands registered by loaded units.
func (a *App) Commands() []command.Command {
	return a.registry.Commands().List()
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Config returns the configuration the app was built with.
func (a *App) Config() *Config {
	return a.config
}
