package zoom

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/specialistvlad/extloader/internal/manifest"
	"github.com/specialistvlad/extloader/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomerSteps(t *testing.T) {
	z, err := New([]int{150, 50, 100, 100}, 100)
	require.NoError(t, err)

	assert.Equal(t, 150, z.In())
	assert.Equal(t, 150, z.In())
	assert.Equal(t, 100, z.Out())
	assert.Equal(t, 50, z.Out())
	assert.Equal(t, 50, z.Out())

	require.NoError(t, z.Set(120))
	assert.Equal(t, 150, z.In())
	assert.Error(t, z.Set(0))
}

func TestNewRejectsBadLevels(t *testing.T) {
	_, err := New(nil, 100)
	assert.Error(t, err)
	_, err = New([]int{-10, 100}, 100)
	assert.Error(t, err)
	_, err = New([]int{100}, 0)
	assert.Error(t, err)
}

func TestUnitUsesManifestSettings(t *testing.T) {
	store := manifest.NewStore(manifest.Mount{
		Package: "browser.components",
		FS: fstest.MapFS{"zoom.hcl": {Data: []byte(`
			settings = {
				default = 50
				levels  = [50, 80]
			}
		`)}},
	})
	r := registry.New(registry.WithManifests(store))
	r.RegisterModules(&Module{})

	_, err := r.Import(context.Background(), Name)
	require.NoError(t, err)

	cmds := r.Commands()
	out, err := cmds.Run(context.Background(), "zoom", nil)
	require.NoError(t, err)
	assert.Equal(t, "50%", out)

	out, err = cmds.Run(context.Background(), "zoom-in", nil)
	require.NoError(t, err)
	assert.Equal(t, "80%", out)

	out, err = cmds.Run(context.Background(), "zoom", []string{"120"})
	require.NoError(t, err)
	assert.Equal(t, "120%", out)

	_, err = cmds.Run(context.Background(), "zoom", []string{"big"})
	assert.Error(t, err)

	cmd, ok := cmds.Get("zoom-out")
	require.True(t, ok)
	assert.Equal(t, Name, cmd.Owner)
}

func TestUnitWithoutManifestUsesDefaults(t *testing.T) {
	r := registry.New()
	r.RegisterModules(&Module{})
	_, err := r.Import(context.Background(), Name)
	require.NoError(t, err)

	out, err := r.Commands().Run(context.Background(), "zoom-in", nil)
	require.NoError(t, err)
	assert.Equal(t, "125%", out)
}

func TestUnitRejectsInvalidSettings(t *testing.T) {
	store := manifest.NewStore(manifest.Mount{
		Package: "browser.components",
		FS:      fstest.MapFS{"zoom.hcl": {Data: []byte(`settings = { levels = [] }`)}},
	})
	r := registry.New(registry.WithManifests(store))
	r.RegisterModules(&Module{})

	_, err := r.Import(context.Background(), Name)
	assert.Error(t, err)
}
