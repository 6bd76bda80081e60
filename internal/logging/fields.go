// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldScript = "script"

	// Buffer fields.
	FieldOffset = "offset"
	FieldLength = "length"
	FieldStart  = "start"
	FieldEnd    = "end"
	FieldPoints = "points"
	FieldLine   = "line"
	FieldColumn = "column"

	// Operation fields.
	FieldOp         = "op"
	FieldOperations = "operations"
	FieldDeletions  = "deletions"
	FieldDryRun     = "dry_run"

	// Map artifact fields.
	FieldMapPath = "map_path"
	FieldSources = "sources"
	FieldNames   = "names"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
