package fs

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/zerr"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

// Workspace implements ports.Workspace on the local file system.
type Workspace struct {
	walker *Walker
}

// NewWorkspace creates a new Workspace.
func NewWorkspace(walker *Walker) *Workspace {
	return &Workspace{walker: walker}
}

// Glob returns the absolute paths of files under root whose slash-separated
// path relative to root matches pattern, sorted by path components so that a
// directory's files come before a sibling sharing its name as a prefix.
//
// A leading "**/" also matches files directly under root.
func (w *Workspace) Glob(root, pattern string) ([]string, error) {
	match, err := compile(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid glob pattern"), "pattern", pattern)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", root)
	}

	var paths []string
	for path, err := range w.walker.WalkFiles(absRoot) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to walk directory"), "root", absRoot)
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to relativize path")
		}
		if match(filepath.ToSlash(rel)) {
			paths = append(paths, path)
		}
	}

	slices.SortFunc(paths, comparePaths)
	return paths, nil
}

func comparePaths(a, b string) int {
	return slices.Compare(
		strings.Split(filepath.ToSlash(a), "/"),
		strings.Split(filepath.ToSlash(b), "/"),
	)
}

func compile(pattern string) (func(string) bool, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, err
	}

	rest, ok := strings.CutPrefix(pattern, "**/")
	if !ok {
		return g.Match, nil
	}

	top, err := glob.Compile(rest, '/')
	if err != nil {
		return nil, err
	}
	return func(s string) bool {
		return g.Match(s) || top.Match(s)
	}, nil
}

// ReadFile returns the contents of path.
func (w *Workspace) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // paths come from the project root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}

// WriteFile truncates path and writes data to it.
func (w *Workspace) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

// Remove deletes every path, ignoring files that are already gone.
func (w *Workspace) Remove(paths []string) error {
	var errs error
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path))
		}
	}
	return errs
}
