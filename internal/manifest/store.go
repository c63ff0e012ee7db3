package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/specialistvlad/extloader/internal/component"
)

// Mount binds a dotted package name to the file tree of that package.
type Mount struct {
	Package string
	FS      fs.FS
}

// PathFor maps a fully-qualified unit name to the manifest path inside the
// mount. It returns false when the name does not live under the mount's
// package.
func (m Mount) PathFor(name string) (string, bool) {
	d := component.New(name)
	if !d.Within(m.Package) {
		return "", false
	}
	rel := strings.TrimPrefix(name, m.Package+component.Separator)
	return strings.ReplaceAll(rel, component.Separator, "/") + Extension, true
}

// Store resolves unit names to manifests across mounts, first match wins.
type Store struct {
	mounts []Mount
}

// NewStore creates a store over the given mounts, searched in order.
func NewStore(mounts ...Mount) *Store {
	return &Store{mounts: mounts}
}

// Mounts returns the mounts the store searches.
func (s *Store) Mounts() []Mount {
	return s.mounts
}

// Lookup returns the manifest for the named unit. A unit without a manifest
// yields (nil, nil).
func (s *Store) Lookup(name string) (*Manifest, error) {
	for _, m := range s.mounts {
		p, ok := m.PathFor(name)
		if !ok {
			continue
		}
		src, err := fs.ReadFile(m.FS, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest for %s: %w", name, err)
		}
		return Parse(name, p, src)
	}
	return nil, nil
}
