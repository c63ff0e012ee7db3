// Package fsutil provides file system utility functions over io/fs.
package fsutil

import (
	"io/fs"
	"path"
	"strings"
)

// FindFilesByExtension recursively searches fsys from root for all files ending
// with the specified extension. It returns their slash-separated paths in
// lexical order.
func FindFilesByExtension(fsys fs.FS, root string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, p)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// Entry is one immediate child of a directory.
type Entry struct {
	// Stem is the file name without the extension, or the directory name.
	Stem  string
	IsDir bool
}

// ListLeafFiles lists the immediate children of dir in fsys. Regular files are
// only reported when they end with extension. Directories are reported when
// they hold at least one such file at any depth; empty or unrelated
// directories are left out.
func ListLeafFiles(fsys fs.FS, dir string, extension string) ([]Entry, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	dirEntries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if d.IsDir() {
			files, err := FindFilesByExtension(fsys, path.Join(dir, d.Name()), extension)
			if err != nil {
				return nil, err
			}
			if len(files) > 0 {
				entries = append(entries, Entry{Stem: d.Name(), IsDir: true})
			}
			continue
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), extension) {
			continue
		}
		entries = append(entries, Entry{Stem: strings.TrimSuffix(d.Name(), extension)})
	}
	return entries, nil
}

// StripExt removes extension from the base name of p and returns the
// remaining path.
func StripExt(p, extension string) string {
	dir, file := path.Split(p)
	return dir + strings.TrimSuffix(file, extension)
}
