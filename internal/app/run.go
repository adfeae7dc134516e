package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gookit/color"

	"github.com/firesim/gridgen/internal/blueprint"
	"github.com/firesim/gridgen/internal/ctxlog"
	"github.com/firesim/gridgen/internal/grid"
	"github.com/firesim/gridgen/internal/prompt"
)

// Run executes the main application flow: interactive prompting by default,
// or batch generation when a blueprint path is configured.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.BlueprintPath != "" {
		return a.runBlueprint(ctx)
	}
	return a.runInteractive(ctx)
}

// runInteractive collects parameters from the user and writes a single grid.
// A nil prompt result means the user cancelled; that is a normal exit, not
// an error. A write failure is reported to the user and also ends the run
// normally, matching the generator's report-and-stop posture.
func (a *App) runInteractive(ctx context.Context) error {
	req := prompt.New(a.inR, a.outW).Collect(ctx)
	if req == nil {
		fmt.Fprintln(a.outW, "Goodbye!")
		return nil
	}

	a.writeAndReport(ctx, req.Grid, req.Filename)
	return nil
}

// runBlueprint generates every grid defined in the blueprint files. Grids
// are written one after another; a failed write is reported and the
// remaining grids are still attempted.
func (a *App) runBlueprint(ctx context.Context) error {
	grids, err := blueprint.Load(ctx, a.config.BlueprintPath)
	if err != nil {
		return fmt.Errorf("failed to load blueprints: %w", err)
	}
	if len(grids) == 0 {
		fmt.Fprintln(a.outW, "No grid definitions found, nothing to generate")
		return nil
	}

	a.logger.Info("Generating grids from blueprint.", "path", a.config.BlueprintPath, "count", len(grids))

	for _, g := range grids {
		if ctx.Err() != nil {
			fmt.Fprintln(a.outW, "Operation cancelled by user")
			return nil
		}

		name := g.Filename
		if name == "" {
			name = g.Spec.DefaultFilename()
		}
		a.writeAndReport(ctx, g.Spec, filepath.Join(a.config.OutDir, name))
	}
	return nil
}

// writeAndReport writes one grid file and prints the outcome. Failures are
// caught here and reported; they never propagate past the write boundary.
func (a *App) writeAndReport(ctx context.Context, spec grid.Spec, path string) {
	res, err := grid.Write(ctx, spec, path)
	if err != nil {
		fmt.Fprintln(a.outW, color.Red.Sprintf("Error: %v", err))
		return
	}

	fmt.Fprintln(a.outW, color.Green.Sprintf("Successfully created %s (%dx%d grid)", res.Path, spec.Width, spec.Height))
	fmt.Fprintf(a.outW, "File size: %d bytes\n", res.Bytes)
}
