package bundle

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedManifests(t *testing.T) {
	matches, err := fs.Glob(FS(), "components/*.hcl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"components/clipboard.hcl",
		"components/misc.hcl",
		"components/zoom.hcl",
	}, matches)
}
