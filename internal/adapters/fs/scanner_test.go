package fs_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinolab/autd3-link-soem/internal/adapters/fs"
)

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.rs": "fn a() {\n    unsafe { b() }\n}\n",
		"b.rs": "unsafe { c() } // ignore miri\n",
		"c.rs": "fn c() {}\n",
		"d.rs": "// ignore miri\nunsafe impl Send for D {}\n",
	})

	paths := []string{
		filepath.Join(root, "a.rs"),
		filepath.Join(root, "b.rs"),
		filepath.Join(root, "c.rs"),
		filepath.Join(root, "d.rs"),
	}

	got, err := fs.NewScanner().Scan(context.Background(), paths)
	require.NoError(t, err)
	assert.Equal(t, []string{paths[0], paths[3]}, got)
}

func TestScanner_Scan_PreservesOrder(t *testing.T) {
	root := t.TempDir()
	files := make(map[string]string)
	var paths []string
	for i := range 64 {
		name := fmt.Sprintf("f%02d.rs", i)
		files[name] = "unsafe fn f() {}\n"
		paths = append(paths, filepath.Join(root, name))
	}
	writeTree(t, root, files)

	got, err := fs.NewScanner().Scan(context.Background(), paths)
	require.NoError(t, err)
	assert.Equal(t, paths, got)
}

func TestScanner_Scan_MissingFile(t *testing.T) {
	_, err := fs.NewScanner().Scan(context.Background(), []string{filepath.Join(t.TempDir(), "missing.rs")})
	require.Error(t, err)
}

func TestScanner_Scan_Empty(t *testing.T) {
	got, err := fs.NewScanner().Scan(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
