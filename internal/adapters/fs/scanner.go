package fs

import (
	"context"
	"os"
	"runtime"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

// Scanner implements ports.UnsafeScanner.
// Files are read concurrently; the result keeps the input order.
type Scanner struct {
	limit int
}

// NewScanner creates a new Scanner reading up to GOMAXPROCS files at once.
func NewScanner() *Scanner {
	return &Scanner{limit: runtime.GOMAXPROCS(0)}
}

// Scan returns the paths that contain at least one unsafe line.
func (s *Scanner) Scan(ctx context.Context, paths []string) ([]string, error) {
	flags := make([]bool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found, err := scanFile(path)
			if err != nil {
				return err
			}
			flags[i] = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	unsafeFiles := make([]string, 0, len(paths))
	for i, path := range paths {
		if flags[i] {
			unsafeFiles = append(unsafeFiles, path)
		}
	}
	return unsafeFiles, nil
}

func scanFile(path string) (bool, error) {
	f, err := os.Open(path) //nolint:gosec // paths come from the project root
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to open source file"), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	found, err := domain.ContainsUnsafe(f)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", path)
	}
	return found, nil
}
