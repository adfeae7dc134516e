// Package schema defines the HCL structures for blueprint files. It holds
// only the decoding schema; evaluation and validation live in the blueprint
// package.
package schema
