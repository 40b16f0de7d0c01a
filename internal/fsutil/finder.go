// Package fsutil provides file system utility functions for the CLI driver.
// The engine itself never touches the file system; this package exists only
// to materialize file contents before they are handed over.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// documentExtensions are the recognized source file extensions.
var documentExtensions = map[string]struct{}{
	".ktr": {},
	".kjb": {},
	".xml": {},
}

// FindDocuments recursively searches the given root path for all files with
// a recognized document extension (case-insensitive) and returns their full
// paths sorted lexicographically.
func FindDocuments(rootPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if _, ok := documentExtensions[ext]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
