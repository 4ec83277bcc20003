// Package cgen emits a paired C header/source file from a resolved set
// of model.TypeDefinition, the code-generation half of the bridge
// spec.md §4.6.2 describes. There is no direct teacher analogue for
// this package (the teacher never emits C); the two-pass,
// deterministic-by-construction discipline is carried over from
// api.go's sortSpec, and the schema-to-target-type dispatch follows the
// kind-enum modeling the retrieval pack's other IR-shaped generators
// use for the same problem.
package cgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// JSONRuntime names the external JSON library entry points the
// generated C source calls against, per spec §6's "Generated C source's
// JSON runtime" contract. Pointing a run at a different JSONRuntime
// retargets an entire generation run without touching the emitter
// itself, the same way ExporterConfig parameterizes validation rather
// than hardcoding a schema.
type JSONRuntime struct {
	IncludePath string

	ParseString      string
	ValueGetObject   string
	ObjectGetString  string
	ObjectGetNumber  string
	ObjectGetBoolean string
	ObjectGetObject  string
	ObjectGetArray   string
	ValueFree        string

	ValueType  string
	ObjectType string
	ArrayType  string
}

// DefaultJSONRuntime names the entry points spec §6 lists verbatim,
// matching Parson's public API (the implied reference library).
func DefaultJSONRuntime() JSONRuntime {
	return JSONRuntime{
		IncludePath:      "parson.h",
		ParseString:      "json_parse_string",
		ValueGetObject:   "json_value_get_object",
		ObjectGetString:  "json_object_get_string",
		ObjectGetNumber:  "json_object_get_number",
		ObjectGetBoolean: "json_object_get_boolean",
		ObjectGetObject:  "json_object_get_object",
		ObjectGetArray:   "json_object_get_array",
		ValueFree:        "json_value_free",
		ValueType:        "JSON_Value",
		ObjectType:       "JSON_Object",
		ArrayType:        "JSON_Array",
	}
}

// Emitter holds the resolved schemas to generate, in document order.
// The slice itself is the determinism guarantee spec §4.6.3 requires:
// no sort happens at emit time, since the caller (the Aggregator) is
// expected to hand Defs over already in registration order.
type Emitter struct {
	Defs    model.TypeDefList
	Runtime JSONRuntime
}

// NewEmitter returns an Emitter over defs. The zero JSONRuntime is
// replaced with DefaultJSONRuntime.
func NewEmitter(defs model.TypeDefList, runtime JSONRuntime) *Emitter {
	if runtime == (JSONRuntime{}) {
		runtime = DefaultJSONRuntime()
	}

	return &Emitter{Defs: defs, Runtime: runtime}
}

// Emit writes the header to header and the source to source, the two
// files spec §4.6.2 names <base>.h and <base>.c.
func (e *Emitter) Emit(header, source io.Writer, base string) error {
	if e == nil {
		return ErrNilEmitter
	}
	if base == "" {
		return ErrEmptyBase
	}
	if err := checkDuplicateNames(e.Defs); err != nil {
		return err
	}

	if err := e.emitHeader(header, base); err != nil {
		return fmt.Errorf("cgen: header: %w", err)
	}
	if err := e.emitSource(source, base); err != nil {
		return fmt.Errorf("cgen: source: %w", err)
	}

	return nil
}

func checkDuplicateNames(defs model.TypeDefList) error {
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if seen[d.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, d.Name)
		}
		seen[d.Name] = true
	}

	return nil
}

func sanitizeIdent(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	return b.String()
}

// isArrayRoot reports whether def models a root-array schema: a single
// synthetic "items" field of array type, the convention this emitter
// uses to recognize an array-shaped JSON Schema/OpenAPI root (a shape a
// parsed C header never produces directly, only the from_openapi/
// code2schema bridges do).
func isArrayRoot(def model.TypeDefinition) bool {
	return def.Kind == model.KindStruct && def.Fields != nil && !def.Fields.IsUnion &&
		len(def.Fields.Fields) == 1 && def.Fields.Fields[0].Name == "items" &&
		def.Fields.Fields[0].Type == model.TypeArray
}

func isUnion(def model.TypeDefinition) bool {
	return def.Kind == model.KindStruct && def.Fields != nil && def.Fields.IsUnion
}
