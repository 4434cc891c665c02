package domain

import (
	"bufio"
	"io"
	"strings"
)

const (
	// UnsafeMarker flags a line as containing unsafe code.
	UnsafeMarker = "unsafe"
	// MiriIgnoreMarker suppresses UnsafeMarker on the same line.
	MiriIgnoreMarker = "ignore miri"
)

// LineIsUnsafe reports whether a single source line counts as unsafe.
func LineIsUnsafe(line string) bool {
	return strings.Contains(line, UnsafeMarker) && !strings.Contains(line, MiriIgnoreMarker)
}

// ContainsUnsafe reports whether r has at least one unsafe line.
// Reading stops at the first match.
func ContainsUnsafe(r io.Reader) (bool, error) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if LineIsUnsafe(line) {
			return true, nil
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}

// FormatUnsafeList renders audited paths one per line without a trailing newline.
func FormatUnsafeList(paths []string) string {
	return strings.Join(paths, "\n")
}
