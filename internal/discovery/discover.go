package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"sort"
	"strings"

	"github.com/specialistvlad/extloader/internal/component"
	"github.com/specialistvlad/extloader/internal/fsutil"
	"github.com/specialistvlad/extloader/internal/manifest"
)

// Config describes where and how to look for units.
type Config struct {
	Mode Mode
	// Namespace is the dotted extension namespace, e.g. "browser.components".
	Namespace string
	// TopLevel is the application's top-level package. Defaults to the first
	// segment of Namespace.
	TopLevel string
	// SearchPath holds the namespace directories used by ModeStandard.
	SearchPath []fs.FS
	// Finders are queried by ModeBundled.
	Finders []Finder
}

func (c Config) topLevel() string {
	if c.TopLevel != "" {
		return c.TopLevel
	}
	top, _, _ := strings.Cut(c.Namespace, component.Separator)
	return top
}

func (c Config) fail(source string, err error) *component.DiscoveryError {
	return &component.DiscoveryError{Namespace: c.Namespace, Source: source, Err: err}
}

// Discover returns the units of cfg.Namespace using the strategy selected by
// cfg.Mode. The first error ends the sequence.
func Discover(ctx context.Context, cfg Config) iter.Seq2[component.Descriptor, error] {
	switch cfg.Mode {
	case ModeStandard:
		return walkStandard(ctx, cfg)
	case ModeBundled:
		return walkBundled(ctx, cfg)
	}
	return func(yield func(component.Descriptor, error) bool) {
		yield(component.Descriptor{}, cfg.fail("", fmt.Errorf("unsupported mode %s", cfg.Mode)))
	}
}

// Collect drains a discovery sequence into a slice.
func Collect(seq iter.Seq2[component.Descriptor, error]) ([]component.Descriptor, error) {
	var out []component.Descriptor
	for d, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, nil
}

func walkStandard(ctx context.Context, cfg Config) iter.Seq2[component.Descriptor, error] {
	return func(yield func(component.Descriptor, error) bool) {
		// Modules and sub-packages share one name space; the first search-path
		// entry that defines a name shadows later ones.
		seen := make(map[string]struct{})

		for i, fsys := range cfg.SearchPath {
			source := fmt.Sprintf("search path entry %d", i)
			if err := ctx.Err(); err != nil {
				yield(component.Descriptor{}, cfg.fail(source, err))
				return
			}

			// Only directories holding manifests count as sub-packages, so a
			// stray empty directory does not shadow a later entry's unit.
			entries, err := fsutil.ListLeafFiles(fsys, ".", manifest.Extension)
			if err != nil {
				yield(component.Descriptor{}, cfg.fail(source, err))
				return
			}

			for _, e := range entries {
				if !component.ValidSegment(e.Stem) {
					continue
				}
				if _, dup := seen[e.Stem]; dup {
					continue
				}
				seen[e.Stem] = struct{}{}
				if e.IsDir {
					continue
				}
				if err := ctx.Err(); err != nil {
					yield(component.Descriptor{}, cfg.fail(source, err))
					return
				}
				if !yield(component.New(component.Join(cfg.Namespace, e.Stem)), nil) {
					return
				}
			}
		}
	}
}

func walkBundled(ctx context.Context, cfg Config) iter.Seq2[component.Descriptor, error] {
	return func(yield func(component.Descriptor, error) bool) {
		top := cfg.topLevel()
		toc := make(map[string]struct{})

		for _, f := range cfg.Finders {
			if f.Package() != top {
				continue
			}
			lister, ok := f.(TableOfContents)
			if !ok {
				continue
			}
			names, err := lister.TOC()
			if err != nil {
				yield(component.Descriptor{}, cfg.fail(fmt.Sprintf("finder %T", f), err))
				return
			}
			for _, name := range names {
				toc[name] = struct{}{}
			}
		}

		names := make([]string, 0, len(toc))
		for name := range toc {
			if component.New(name).Within(cfg.Namespace) {
				names = append(names, name)
			}
		}
		sort.Strings(names)

		for _, name := range names {
			if err := ctx.Err(); err != nil {
				yield(component.Descriptor{}, cfg.fail("", err))
				return
			}
			if !yield(component.New(name), nil) {
				return
			}
		}
	}
}
