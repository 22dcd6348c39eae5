// Package metadata implements the versioned metadata record venvx keeps
// for each environment directory. One pipx_metadata.json file per
// environment records the installed main package, its exposed apps and man
// pages, any injected packages, and the interpreter used to create the
// environment.
//
// The on-disk format has evolved through five versions. Read upcasts any
// older record to the current shape before populating the store; Write
// refuses to persist an inconsistent record. Metadata is advisory
// bookkeeping, so storage-level I/O failures are logged and swallowed
// rather than surfaced to the caller.
package metadata
