package grid

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite_CreatesSemicolonDelimitedGrid(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "test")

	// --- Act ---
	res, err := Write(context.Background(), Spec{Width: 3, Height: 2}, path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "test.csv"), res.Path, "the .csv extension must be applied")

	content, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	require.Equal(t, "0;0;0\n0;0;0\n", string(content))
	require.Equal(t, int64(len(content)), res.Bytes, "reported size must match the file on disk")
}

func TestWrite_RowAndColumnCounts(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "grid_5x5.csv")

	// --- Act ---
	res, err := Write(context.Background(), Spec{Width: 5, Height: 5}, path)

	// --- Assert ---
	require.NoError(t, err)

	content, err := os.ReadFile(res.Path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 5, "file must contain exactly height lines")
	for _, line := range lines {
		fields := strings.Split(line, ";")
		require.Len(t, fields, 5, "each line must contain exactly width fields")
		for _, field := range fields {
			require.Equal(t, "0", field)
		}
	}
}

func TestWrite_OverwritesExistingFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "existing.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer than the grid"), 0o600))

	// --- Act ---
	res, err := Write(context.Background(), Spec{Width: 2, Height: 1}, path)

	// --- Assert ---
	require.NoError(t, err)
	content, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	require.Equal(t, "0;0\n", string(content), "existing file must be replaced, not appended to")
}

func TestWrite_UnwritablePath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A target inside a directory that does not exist.
	path := filepath.Join(t.TempDir(), "missing", "test")

	// --- Act ---
	res, err := Write(context.Background(), Spec{Width: 3, Height: 3}, path)

	// --- Assert ---
	require.Error(t, err)
	require.Nil(t, res)
	require.Contains(t, err.Error(), "test.csv", "the error must name the target file")
}

func TestWrite_RejectsInvalidSpec(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	res, err := Write(context.Background(), Spec{Width: 0, Height: 2}, filepath.Join(dir, "bad"))

	require.Error(t, err)
	require.Nil(t, res)
	require.NoFileExists(t, filepath.Join(dir, "bad.csv"), "nothing should be written for an invalid spec")
}
