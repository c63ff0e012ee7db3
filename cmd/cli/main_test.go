package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/extloader/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	out := &bytes.Buffer{}

	err := run([]string{"--help"}, out, &bytes.Buffer{})

	require.NoError(t, err, "run() should return a nil error for --help")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
	require.Contains(t, out.String(), "bundled")
}

func TestRun_BrokenManifestFailsStartup(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zoom.hcl"), []byte(`settings = {`), 0600))

	// --- Act ---
	err := run([]string{"load", "--path", dir}, &bytes.Buffer{}, &bytes.Buffer{})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "browser.components.zoom")
	require.Contains(t, err.Error(), "failed to parse manifest")
	require.Equal(t, 1, cli.ExitCode(err))
}

func TestRun_InvalidFlag(t *testing.T) {
	err := run([]string{"list", "--mode", "frozen"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Equal(t, 2, cli.ExitCode(err))
}
