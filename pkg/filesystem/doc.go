// Package filesystem provides filesystem implementations for venvx.
//
// This package contains implementations of the types.FS interface,
// currently the standard OS filesystem.
package filesystem
