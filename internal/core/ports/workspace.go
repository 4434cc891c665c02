package ports

import "context"

// Workspace is the file collaborator of the task handlers.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Glob returns the absolute paths of the files under root matching pattern,
	// sorted lexically. Patterns use "**" for any number of directories.
	Glob(root, pattern string) ([]string, error)

	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the contents of path. It is not atomic.
	WriteFile(path string, data []byte) error

	// Remove deletes every path. It attempts all of them and reports every failure.
	Remove(paths []string) error
}

// UnsafeScanner audits source files for unsafe code.
type UnsafeScanner interface {
	// Scan returns the subset of paths containing at least one unsafe line,
	// preserving the input order.
	Scan(ctx context.Context, paths []string) ([]string, error)
}
