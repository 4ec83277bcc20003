// Package hook lets a caller override part of a code2schema/from_openapi
// run without forking internal/emit/jsonschema: a named override can
// provide a schema outright, or post-process the one the derivation
// would otherwise produce.
package hook

import (
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// SchemaProvider supplies a schema for a type name outright, overriding
// whatever internal/emit/jsonschema would otherwise derive for it.
type SchemaProvider interface {
	Schema(r SchemaRegistry) *model.Schema
}

// SchemaTransformer post-processes a derived schema, letting a caller
// reuse the default derivation and only adjust part of it.
type SchemaTransformer interface {
	TransformSchema(r SchemaRegistry, s *model.Schema) *model.Schema
}

// SchemaRegistry resolves a type name to its schema. Type definitions
// here are named C struct/enum declarations, not reflect.Types: unlike
// the teacher's struct-tag pipeline, this domain has no running Go
// value to reflect on.
type SchemaRegistry interface {
	Schema(name string) *model.Schema
}
