// Package grid defines the grid specification and writes zero-filled grids
// as semicolon-delimited CSV files in the format the MARS fire simulation
// expects.
package grid
