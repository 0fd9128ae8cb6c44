// Package filesystem provides filesystem implementations for filesort.
//
// This package contains implementations of the types.FS interface,
// the standard OS filesystem and an afero-backed one for tests, plus the
// Move primitive the sorter uses to relocate files.
package filesystem
