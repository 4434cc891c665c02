// Package fs provides file system adapters for globbing, rewriting and auditing source files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root, skipping version control
// metadata directories. Paths are yielded as filepath.WalkDir produces them,
// prefixed with root. Walking stops at the first error, which is yielded once.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if w.shouldSkipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func (w *Walker) shouldSkipDir(name string) bool {
	switch name {
	case ".git", ".jj":
		return true
	default:
		return false
	}
}
