package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// GridBlock represents a `grid` block from a blueprint file. Each block
// describes one grid file to generate.
type GridBlock struct {
	Name     string         `hcl:"name,label"`
	Width    hcl.Expression `hcl:"width"`
	Height   hcl.Expression `hcl:"height"`
	Filename string         `hcl:"filename,optional"`
}

// Blueprint represents the top-level structure of a blueprint file,
// containing all grid definitions. The remain body tolerates unrelated
// blocks so blueprints can live next to other MARS configuration.
type Blueprint struct {
	Grids []*GridBlock `hcl:"grid,block"`
	Body  hcl.Body     `hcl:",remain"`
}
