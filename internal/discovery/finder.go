package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/specialistvlad/extloader/internal/component"
	"github.com/specialistvlad/extloader/internal/fsutil"
	"github.com/specialistvlad/extloader/internal/manifest"
)

// ErrMalformedTOC is returned by finders whose listing contains a name that
// is not a valid dotted unit name.
var ErrMalformedTOC = errors.New("malformed table of contents")

// Finder locates units for one top-level package.
type Finder interface {
	Package() string
}

// TableOfContents is implemented by finders that can list every unit name
// they hold. Finders without it are skipped by bundled discovery.
type TableOfContents interface {
	TOC() ([]string, error)
}

// FSFinder serves units from a file tree rooted at its package, typically an
// embed.FS. Its table of contents lists every manifest in the tree.
type FSFinder struct {
	Pkg string
	FS  fs.FS
}

// Package implements Finder.
func (f FSFinder) Package() string {
	return f.Pkg
}

// TOC implements TableOfContents.
func (f FSFinder) TOC() ([]string, error) {
	files, err := fsutil.FindFilesByExtension(f.FS, ".", manifest.Extension)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, p := range files {
		segments := strings.Split(fsutil.StripExt(p, manifest.Extension), "/")
		for _, seg := range segments {
			if !component.ValidSegment(seg) {
				return nil, fmt.Errorf("%w: %q is not a valid unit path", ErrMalformedTOC, p)
			}
		}
		names = append(names, component.Join(f.Pkg, strings.Join(segments, component.Separator)))
	}
	return names, nil
}

// StaticFinder lists a fixed set of names known at build time, such as the
// init functions compiled into the binary.
type StaticFinder struct {
	Pkg   string
	Names []string
}

// Package implements Finder.
func (f StaticFinder) Package() string {
	return f.Pkg
}

// TOC implements TableOfContents.
func (f StaticFinder) TOC() ([]string, error) {
	for _, name := range f.Names {
		for _, seg := range strings.Split(name, component.Separator) {
			if !component.ValidSegment(seg) {
				return nil, fmt.Errorf("%w: %q is not a valid unit name", ErrMalformedTOC, name)
			}
		}
	}
	return slices.Clone(f.Names), nil
}
