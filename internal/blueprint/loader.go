package blueprint

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/firesim/gridgen/internal/ctxlog"
	"github.com/firesim/gridgen/internal/fsutil"
	"github.com/firesim/gridgen/internal/grid"
	"github.com/firesim/gridgen/internal/schema"
)

// Grid is one grid definition loaded from a blueprint file.
type Grid struct {
	Name string
	Spec grid.Spec
	// Filename is the target filename from the blueprint, empty when the
	// block left it to the default.
	Filename string
}

// Load finds and parses all .hcl blueprint files at path (a single file or
// a directory searched recursively) and returns the grid definitions in
// file order. Grid names must be unique across all loaded files.
func Load(ctx context.Context, path string) ([]Grid, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading blueprints from path.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("finding blueprint files in %s: %w", path, err)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl blueprint files found in path.", "path", path)
		return nil, nil
	}

	parser := hclparse.NewParser()
	var grids []Grid
	seen := make(map[string]string)

	for _, file := range files {
		parsed, err := loadFile(file, parser)
		if err != nil {
			return nil, err
		}
		for _, g := range parsed {
			if prev, dup := seen[g.Name]; dup {
				return nil, fmt.Errorf("duplicate grid %q in %s (first defined in %s)", g.Name, file, prev)
			}
			seen[g.Name] = file
			grids = append(grids, g)
		}
	}

	logger.Debug("Blueprints loaded.", "files", len(files), "grids", len(grids))
	return grids, nil
}

// loadFile parses a single blueprint file and evaluates its grid blocks.
func loadFile(filePath string, parser *hclparse.Parser) ([]Grid, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse blueprint file %s: %w", filePath, diags)
	}

	var bp schema.Blueprint
	diags = gohcl.DecodeBody(hclFile.Body, nil, &bp)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode blueprint file %s: %w", filePath, diags)
	}

	grids := make([]Grid, 0, len(bp.Grids))
	for _, block := range bp.Grids {
		width, err := evalDimension(block.Width, "width", block.Name, filePath)
		if err != nil {
			return nil, err
		}
		height, err := evalDimension(block.Height, "height", block.Name, filePath)
		if err != nil {
			return nil, err
		}

		spec := grid.Spec{Width: width, Height: height}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("grid %q in %s: %w", block.Name, filePath, err)
		}

		grids = append(grids, Grid{
			Name:     block.Name,
			Spec:     spec,
			Filename: block.Filename,
		})
	}

	return grids, nil
}

// evalDimension evaluates a width/height expression down to a Go int.
// Expressions are evaluated without variables, so literals and arithmetic
// are allowed but references are not.
func evalDimension(expr hcl.Expression, attr, gridName, filePath string) (int, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("grid %q in %s: evaluating %s: %w", gridName, filePath, attr, diags)
	}

	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("grid %q in %s: %s must be a number: %w", gridName, filePath, attr, err)
	}

	var n int
	if err := gocty.FromCtyValue(converted, &n); err != nil {
		return 0, fmt.Errorf("grid %q in %s: %s must be an integer: %w", gridName, filePath, attr, err)
	}
	return n, nil
}
