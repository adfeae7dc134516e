// Package prompt collects grid parameters interactively: dimensions with
// bounds and large-grid confirmation checks, a filename with a suggested
// default, and a final create/cancel confirmation.
package prompt
