// Package blueprint loads grid definitions from .hcl blueprint files for
// non-interactive batch generation. It discovers files, decodes them against
// the schema package, and evaluates dimension expressions into validated
// grid specs.
package blueprint
