// Package bundle embeds the manifests of the extension units shipped with the
// binary. It is the table of contents bundled deployments discover from.
package bundle

import (
	"embed"
	"io/fs"
)

// TopLevel is the top-level package the embedded tree is rooted at.
const TopLevel = "browser"

//go:embed browser
var files embed.FS

// FS returns the embedded tree rooted at the TopLevel package directory.
func FS() fs.FS {
	sub, err := fs.Sub(files, TopLevel)
	if err != nil {
		panic(err)
	}
	return sub
}
