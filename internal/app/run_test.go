package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_BlueprintContinuesAfterWriteFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The first grid targets a directory that does not exist; the second one
	// is fine. The run must report the failure and still write the second.
	dir := t.TempDir()
	blueprint := `
		grid "bad" {
			width    = 2
			height   = 2
			filename = "missing/bad"
		}

		grid "good" {
			width  = 3
			height = 1
		}
	`
	bpPath := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(bpPath, []byte(blueprint), 0o600))

	cfg, err := NewConfig(Config{BlueprintPath: bpPath, OutDir: dir, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := New(strings.NewReader(""), out, io.Discard, cfg)

	// --- Act ---
	err = a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err, "a per-grid write failure must not abort the batch")
	require.Contains(t, out.String(), "Error")
	require.Contains(t, out.String(), "Successfully created")
	require.FileExists(t, filepath.Join(dir, "grid_3x1.csv"))
	require.NoFileExists(t, filepath.Join(dir, "missing", "bad.csv"))
}

func TestRun_BlueprintWithNoGrids(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{BlueprintPath: t.TempDir(), LogLevel: "error"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := New(strings.NewReader(""), out, io.Discard, cfg)

	err = a.Run(context.Background())

	require.NoError(t, err)
	require.Contains(t, out.String(), "nothing to generate")
}
