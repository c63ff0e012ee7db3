package fsutil

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() fstest.MapFS {
	return fstest.MapFS{
		"a.hcl":        {Data: []byte(`description = "a"`)},
		"b.hcl":        {Data: []byte(`description = "b"`)},
		"notes.txt":    {Data: []byte("ignored")},
		"c/d.hcl":      {Data: []byte(`description = "d"`)},
		"c/e/deep.hcl": {Data: []byte(`description = "deep"`)},
		"empty":        {Mode: fs.ModeDir},
		"docs/x.txt":   {Data: []byte("ignored")},
	}
}

func TestFindFilesByExtension(t *testing.T) {
	files, err := FindFilesByExtension(testTree(), ".", ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.hcl", "b.hcl", "c/d.hcl", "c/e/deep.hcl"}, files)
}

func TestFindFilesByExtensionMissingRoot(t *testing.T) {
	_, err := FindFilesByExtension(testTree(), "missing", ".hcl")
	assert.Error(t, err)
}

func TestListLeafFiles(t *testing.T) {
	entries, err := ListLeafFiles(testTree(), ".", ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Stem: "a"},
		{Stem: "b"},
		{Stem: "c", IsDir: true},
	}, entries)
}

func TestListLeafFilesNestedManifestCountsDirectory(t *testing.T) {
	tree := fstest.MapFS{"outer/inner/x.hcl": {Data: nil}}
	entries, err := ListLeafFiles(tree, ".", ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Stem: "outer", IsDir: true}}, entries)
}

func TestEmptyExtensionPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = ListLeafFiles(testTree(), ".", "") })
	assert.Panics(t, func() { _, _ = FindFilesByExtension(testTree(), ".", "") })
}

func TestStripExt(t *testing.T) {
	assert.Equal(t, "c/e/deep", StripExt("c/e/deep.hcl", ".hcl"))
	assert.Equal(t, "a", StripExt("a.hcl", ".hcl"))
}
