package app

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/specialistvlad/extloader/components/clipboard"
	"github.com/specialistvlad/extloader/components/misc"
	"github.com/specialistvlad/extloader/components/zoom"
	"github.com/specialistvlad/extloader/internal/component"
	"github.com/specialistvlad/extloader/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBoard struct{ text string }

func (b *memoryBoard) ReadAll() (string, error)   { return b.text, nil }
func (b *memoryBoard) WriteAll(text string) error { b.text = text; return nil }

func testModules() []registry.Module {
	return []registry.Module{
		&zoom.Module{},
		&clipboard.Module{Board: &memoryBoard{}},
		&misc.Module{Version: "test"},
	}
}

func namespaceTree() fstest.MapFS {
	return fstest.MapFS{
		"zoom.hcl":         {Data: []byte(`settings = { default = 90, levels = [90, 100] }`)},
		"clipboard.hcl":    {Data: []byte(`description = "clipboard"`)},
		"misc.hcl":         {Data: nil},
		"nested/inner.hcl": {Data: nil},
	}
}

func commandNames(a *App) []string {
	var names []string
	for _, cmd := range a.Commands() {
		names = append(names, cmd.Name)
	}
	return names
}

func TestStandardLoad(t *testing.T) {
	a, logs := SetupAppTest(t, Config{}, WithModules(testModules()...), WithSearchPath(namespaceTree()))

	descs, err := a.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []component.Descriptor{
		component.New("browser.components.clipboard"),
		component.New("browser.components.misc"),
		component.New("browser.components.zoom"),
	}, descs)

	loaded, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"browser.components.clipboard", "browser.components.misc", "browser.components.zoom"}, loaded)
	assert.Equal(t, []string{"echo", "paste", "version", "yank", "zoom", "zoom-in", "zoom-out"}, commandNames(a))

	out := logs.String()
	assert.Contains(t, out, `msg="Importing browser.components.clipboard"`)
	assert.Contains(t, out, `msg="Importing browser.components.zoom"`)
	assert.NotContains(t, out, "browser.components.nested")

	unit, ok := a.Registry().Lookup(zoom.Name)
	require.True(t, ok)
	require.NotNil(t, unit.Manifest)

	level, err := a.Registry().Commands().Run(context.Background(), "zoom", nil)
	require.NoError(t, err)
	assert.Equal(t, "90%", level)
}

func TestStandardLoadFailsFast(t *testing.T) {
	tree := namespaceTree()
	tree["broken.hcl"] = &fstest.MapFile{Data: nil}

	a, logs := SetupAppTest(t, Config{}, WithModules(testModules()...), WithSearchPath(tree))

	loaded, err := a.Load(context.Background())
	var lerr *component.LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "browser.components.broken", lerr.Name)
	assert.ErrorIs(t, err, registry.ErrNotFound)
	assert.Empty(t, loaded)

	// broken sorts before clipboard, so nothing after it was attempted.
	assert.Contains(t, logs.String(), `msg="Importing browser.components.broken"`)
	assert.NotContains(t, logs.String(), `msg="Importing browser.components.clipboard"`)
	assert.Empty(t, a.Registry().Imported())
}

func TestBundledLoadFromEmbeddedTree(t *testing.T) {
	a, _ := SetupAppTest(t, Config{Mode: "bundled"}, WithModules(testModules()...))

	loaded, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"browser.components.clipboard", "browser.components.misc", "browser.components.zoom"}, loaded)

	unit, ok := a.Registry().Lookup(zoom.Name)
	require.True(t, ok)
	require.NotNil(t, unit.Manifest)
	assert.Equal(t, "components/zoom.hcl", unit.Manifest.Path)
}

func TestBundledIncludesCompiledInUnitsWithoutManifest(t *testing.T) {
	tree := fstest.MapFS{
		"components/zoom.hcl": {Data: nil},
		"app.hcl":             {Data: nil},
	}
	a, _ := SetupAppTest(t, Config{Mode: "bundled"}, WithModules(testModules()...), WithBundle("browser", tree))

	loaded, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"browser.components.clipboard", "browser.components.misc", "browser.components.zoom"}, loaded)

	unit, ok := a.Registry().Lookup(misc.Name)
	require.True(t, ok)
	assert.Nil(t, unit.Manifest)
}

func TestCheck(t *testing.T) {
	a, _ := SetupAppTest(t, Config{}, WithModules(testModules()...), WithSearchPath(namespaceTree()))
	require.NoError(t, a.Check(context.Background()))
	assert.Empty(t, a.Registry().Imported())

	tree := namespaceTree()
	tree["ghost.hcl"] = &fstest.MapFile{}
	a, _ = SetupAppTest(t, Config{}, WithModules(testModules()...), WithSearchPath(tree))
	err := a.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browser.components.ghost")
}

func TestExec(t *testing.T) {
	a, _ := SetupAppTest(t, Config{}, WithModules(testModules()...), WithSearchPath(namespaceTree()))

	out, err := a.Exec(context.Background(), "echo", []string{"hi", "there"})
	require.NoError(t, err)
	assert.Equal(t, "hi there", out)

	_, err = a.Exec(context.Background(), "nope", nil)
	assert.Error(t, err)
}

func TestDiscoveryErrorSurfaces(t *testing.T) {
	missing, err := fs.Sub(fstest.MapFS{}, "missing")
	require.NoError(t, err)
	a, _ := SetupAppTest(t, Config{}, WithModules(testModules()...), WithSearchPath(missing))

	_, err = a.Load(context.Background())
	var derr *component.DiscoveryError
	assert.ErrorAs(t, err, &derr)
}
