// Package jsonschema bridges parsed C type definitions and standalone
// JSON Schema documents: CodeToSchema drives the code2schema CLI verb
// (header -> schema.json), FromOpenAPI drives the from_openapi verb's
// input side (schema.json or a full OpenAPI document -> cgen-ready
// TypeDefList), and Overrides lets a caller hook either direction
// without forking this package.
//
// CodeToSchema reuses internal/model's Aggregator schema translation
// (RegisterTypes), so code2schema and to_openapi/c2openapi agree on the
// shape of a given C type. FromOpenAPI converts schemas into
// TypeDefinitions itself (convert.go) and resolves $refs through
// model.ResolveRef.
package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

const schemaDialect = "https://json-schema.org/draft/2020-12/schema"

var (
	// ErrNoSchemas is returned when a from_openapi input carries neither
	// components.schemas nor $defs.
	ErrNoSchemas = errors.New("jsonschema: document has no components.schemas or $defs")

	// ErrUnsupportedSchema is returned when a schema shape has no C
	// representation: an anonymous inline object, an array without
	// items, or an unresolved $ref.
	ErrUnsupportedSchema = errors.New("jsonschema: schema shape not representable as a C type")
)

// Document is the standalone JSON Schema document code2schema emits,
// per spec.md §6's "derive JSON Schema from a header" contract: a
// dialect URI plus a $defs map, one entry per derived C type.
type Document struct {
	Schema string                   `json:"$schema,omitempty"`
	Defs   map[string]*model.Schema `json:"$defs,omitempty"`
}

// wireDocument is the shape from_openapi additionally accepts: either a
// full OpenAPI document (components.schemas) or a bare JSON Schema
// document ($defs), schemas keyed identically either way.
type wireDocument struct {
	Components *struct {
		Schemas map[string]*model.Schema `json:"schemas"`
	} `json:"components,omitempty"`
	Defs map[string]*model.Schema `json:"$defs,omitempty"`
}

// CodeToSchema derives a standalone JSON Schema document from parsed C
// type definitions. overrides may be nil.
func CodeToSchema(defs model.TypeDefList, overrides *Overrides) ([]byte, error) {
	spec := model.NewSpec()
	if err := model.RegisterTypes(spec, defs); err != nil {
		return nil, fmt.Errorf("code2schema: %w", err)
	}

	for name, s := range spec.Components.Schemas {
		rewriteRefs(s)
		spec.Components.Schemas[name] = overrides.Apply(name, s)
	}

	out, err := json.MarshalIndent(Document{Schema: schemaDialect, Defs: spec.Components.Schemas}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("code2schema: marshal: %w", err)
	}

	return out, nil
}

// rewriteRefs rewrites a components.schemas-rooted $ref (the Aggregator's
// only output shape, per aggregate.go's fieldToSchema/typeDefToSchema)
// into the $defs-rooted form this package's Document uses.
func rewriteRefs(s *model.Schema) {
	if s == nil {
		return
	}
	if s.Ref != "" {
		s.Ref = strings.Replace(s.Ref, "#/components/schemas/", "#/$defs/", 1)
	}
	for _, p := range s.Properties {
		rewriteRefs(p)
	}
	rewriteRefs(s.Items)
	for _, v := range s.OneOf {
		rewriteRefs(v)
	}
	for _, v := range s.AnyOf {
		rewriteRefs(v)
	}
	for _, v := range s.AllOf {
		rewriteRefs(v)
	}
}
