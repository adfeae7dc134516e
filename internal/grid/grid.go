package grid

import (
	"errors"
	"fmt"
	"strings"
)

// LargeDimensionThreshold is the dimension above which the prompt asks the
// user to confirm before accepting a value.
const LargeDimensionThreshold = 1000

// Extension is the file extension the MARS framework expects for grid files.
const Extension = ".csv"

// Spec describes the dimensions of a grid to generate.
type Spec struct {
	Width  int
	Height int
}

// Validate checks that both dimensions are positive.
func (s Spec) Validate() error {
	if s.Width <= 0 {
		return errors.New("width must be greater than 0")
	}
	if s.Height <= 0 {
		return errors.New("height must be greater than 0")
	}
	return nil
}

// Cells returns the total number of cells in the grid.
func (s Spec) Cells() int {
	return s.Width * s.Height
}

// EstimatedSize returns a rough estimate of the serialized file size in
// bytes, assuming each cell costs two bytes ("0" plus a separator). It is an
// approximation for display before writing, not a guarantee.
func (s Spec) EstimatedSize() int {
	return s.Cells() * 2
}

// DefaultFilename returns the suggested output filename for the grid,
// e.g. "grid_100x50.csv".
func (s Spec) DefaultFilename() string {
	return fmt.Sprintf("grid_%dx%d%s", s.Width, s.Height, Extension)
}

// Rows builds the full grid as rows of "0" cells, ready for serialization.
// The matrix is transient: callers serialize it and let it go.
func (s Spec) Rows() [][]string {
	rows := make([][]string, s.Height)
	for y := range rows {
		row := make([]string, s.Width)
		for x := range row {
			row[x] = "0"
		}
		rows[y] = row
	}
	return rows
}

// EnsureExt appends the .csv extension if the name does not already carry
// it. Names already ending in .csv are returned unchanged.
func EnsureExt(name string) string {
	if strings.HasSuffix(name, Extension) {
		return name
	}
	return name + Extension
}
