// Package types defines the core types and interfaces used throughout venvx.
// This includes the FS filesystem interface and the Venv environment
// directory abstraction.
package types
