package openapi

import "github.com/SamuelMarks/cdd-c-sub007/debug"

// Result is the output of a [Generator]'s direction-specific methods:
// the generated JSON document plus any non-fatal downgrade or
// ambiguity warnings accumulated while producing it.
type Result struct {
	JSON []byte

	// Warnings contains informational, non-fatal issues.
	// These are advisory only and do not indicate failure.
	Warnings debug.Warnings
}
