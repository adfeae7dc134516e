package grid

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/firesim/gridgen/internal/ctxlog"
)

// Result reports a successfully written grid file.
type Result struct {
	// Path is the final path of the written file, with the .csv extension
	// applied.
	Path string
	// Bytes is the size of the written file on disk.
	Bytes int64
}

// Write serializes the grid described by spec to path in the MARS format:
// one line per row, cells separated by ';', every cell "0", no header. The
// .csv extension is appended to path if missing. An existing file at the
// target path is overwritten.
//
// On failure the returned error names the target path and wraps the
// underlying cause; no partially open file handle is leaked.
func Write(ctx context.Context, spec Spec, path string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid dimensions: %w", err)
	}

	outPath := EnsureExt(path)
	logger.Debug("Writing grid file.", "path", outPath, "width", spec.Width, "height", spec.Height)

	file, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", outPath, err)
	}

	writer := csv.NewWriter(file)
	writer.Comma = ';'

	for _, row := range spec.Rows() {
		if err := writer.Write(row); err != nil {
			file.Close()
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", outPath, err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return nil, fmt.Errorf("sizing %s: %w", outPath, err)
	}

	logger.Debug("Grid file written.", "path", outPath, "bytes", info.Size())
	return &Result{Path: outPath, Bytes: info.Size()}, nil
}
