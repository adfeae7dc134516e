package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("grid \"x\" {}\n"), 0o600))
}

func TestFindFilesByExtension_Directory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.hcl"))
	touch(t, filepath.Join(dir, "a.hcl"))
	touch(t, filepath.Join(dir, "nested", "c.hcl"))
	touch(t, filepath.Join(dir, "ignored.txt"))

	// --- Act ---
	files, err := FindFilesByExtension(dir, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "c.hcl"),
	}, files, "results must be sorted and recursive, skipping other extensions")
}

func TestFindFilesByExtension_SingleFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "main.hcl")
	touch(t, path)

	files, err := FindFilesByExtension(path, ".hcl")

	require.NoError(t, err)
	require.Equal(t, []string{path}, files)
}

func TestFindFilesByExtension_WrongExtensionFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "main.yaml")
	touch(t, path)

	files, err := FindFilesByExtension(path, ".hcl")

	require.Error(t, err)
	require.Nil(t, files)
}

func TestFindFilesByExtension_MissingPath(t *testing.T) {
	t.Parallel()

	files, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".hcl")

	require.Error(t, err)
	require.Nil(t, files)
}
