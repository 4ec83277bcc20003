package main

import (
	"errors"
	"os"

	openapi "github.com/SamuelMarks/cdd-c-sub007"
	"github.com/SamuelMarks/cdd-c-sub007/internal/emit/cgen"
	"github.com/SamuelMarks/cdd-c-sub007/internal/emit/jsonschema"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// Process exit codes, reusing the errno values spec.md §4.6.2 already
// assigns its generated C return codes (EINVAL/ENOMEM/ERANGE/EIO/ENOENT),
// plus EEXIST for the Conflict category those five don't cover.
const (
	codeGeneric         = 1
	codeNotFound        = 2
	codeIOFailure       = 5
	codeOutOfMemory     = 12
	codeConflict        = 17
	codeInvalidArgument = 22
	codeRangeViolation  = 34
)

// errNotImplemented backs the audit stub, per spec.md §6's framing of it
// as an external collaborator out of this build's scope.
var errNotImplemented = errors.New("cnotate: not implemented in this build")

// exitCode maps a returned error to spec §7's error-taxonomy exit code,
// walking the sentinel chain with errors.Is so a wrapped internal error
// (model, cgen, jsonschema) still resolves to the right category.
func exitCode(err error) int {
	switch {
	case errors.Is(err, openapi.ErrInvalidArgument),
		errors.Is(err, jsonschema.ErrUnsupportedSchema),
		errors.Is(err, model.ErrNilOperation),
		errors.Is(err, model.ErrServerURLInvalid),
		errors.Is(err, model.ErrServerVariableDefaultMissing),
		errors.Is(err, model.ErrLicenseMutuallyExclusive),
		errors.Is(err, model.ErrLicenseNameRequired),
		errors.Is(err, cgen.ErrEmptyBase):
		return codeInvalidArgument

	case errors.Is(err, openapi.ErrOutOfMemory):
		return codeOutOfMemory

	case errors.Is(err, openapi.ErrConflict),
		errors.Is(err, model.ErrConflict),
		errors.Is(err, model.ErrDuplicateFieldName),
		errors.Is(err, cgen.ErrDuplicateName):
		return codeConflict

	case errors.Is(err, openapi.ErrNotFound),
		errors.Is(err, model.ErrUnresolvedRef),
		errors.Is(err, jsonschema.ErrNoSchemas),
		errors.Is(err, os.ErrNotExist):
		return codeNotFound

	case errors.Is(err, openapi.ErrIOFailure),
		errors.Is(err, cgen.ErrNilEmitter):
		return codeIOFailure

	case errors.Is(err, openapi.ErrRangeViolation):
		return codeRangeViolation

	default:
		return codeGeneric
	}
}
