package openapi

import "errors"

// CLI-facing sentinels, one per spec §7 error-taxonomy category. cmd/cnotate
// maps these (via [errors.Is]) to the exit codes its "Error executing
// '<cmd>': code <n>" format reports; they wrap the more specific errors
// returned by internal/model, internal/inspect, and internal/emit/jsonschema.
var (
	// ErrInvalidArgument covers malformed CLI flags, unparsable C or JSON
	// input, and directive syntax the scanner cannot make sense of.
	ErrInvalidArgument = errors.New("openapi: invalid argument")

	// ErrOutOfMemory is returned when an allocation-bound operation
	// (e.g. a pathologically large schema expansion) cannot complete.
	ErrOutOfMemory = errors.New("openapi: out of memory")

	// ErrConflict covers duplicate type/field/operation definitions
	// the aggregator refuses to silently overwrite.
	ErrConflict = errors.New("openapi: conflicting definition")

	// ErrNotFound covers missing files, unresolved $ref targets, and
	// schema names absent from a registry.
	ErrNotFound = errors.New("openapi: not found")

	// ErrIOFailure covers filesystem and stream errors encountered while
	// reading C sources or writing generated output.
	ErrIOFailure = errors.New("openapi: I/O failure")

	// ErrRangeViolation covers values outside the range their declared
	// constraints (bit width, minimum/maximum, array bounds) allow.
	ErrRangeViolation = errors.New("openapi: range violation")
)
