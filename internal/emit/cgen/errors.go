package cgen

import "errors"

// Sentinel errors returned by Emitter.Emit itself. These are Go-level
// construction errors, distinct from the errno-like C return codes
// (EINVAL, ENOMEM, ERANGE, EIO, ENOENT) the generated C functions emit
// as literal integers in their own bodies.
var (
	ErrNilEmitter    = errors.New("cgen: emitter is nil")
	ErrEmptyBase     = errors.New("cgen: base name must not be empty")
	ErrDuplicateName = errors.New("cgen: duplicate type definition name")
)
