package jsonschema

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// FromOpenAPI parses a JSON Schema or OpenAPI document and converts its
// named schemas into a TypeDefList a cgen.Emitter can consume, backing
// the from_openapi/c2openapi verbs' input side. overrides may be nil.
func FromOpenAPI(doc []byte, overrides *Overrides) (model.TypeDefList, error) {
	var wire wireDocument
	if err := json.Unmarshal(doc, &wire); err != nil {
		return nil, fmt.Errorf("from_openapi: %w", err)
	}

	schemas := wire.Defs
	if wire.Components != nil && len(wire.Components.Schemas) > 0 {
		schemas = wire.Components.Schemas
	}
	if len(schemas) == 0 {
		return nil, ErrNoSchemas
	}

	names := propertyNames(schemas)
	defs := make(model.TypeDefList, 0, len(names))
	for _, name := range names {
		s := overrides.Apply(name, schemas[name])
		def, err := schemaToTypeDef(name, s, schemas, overrides)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, nil
}

func schemaToTypeDef(name string, s *model.Schema, all map[string]*model.Schema, overrides *Overrides) (model.TypeDefinition, error) {
	switch {
	case len(s.Enum) > 0 && (s.Type == "" || s.Type == "string"):
		return enumTypeDef(name, s), nil
	case s.Type == "array":
		return arrayRootTypeDef(name, s, all, overrides)
	case len(s.OneOf) > 0 || len(s.AnyOf) > 0:
		return unionTypeDef(name, s, all, overrides)
	case s.Type == "object" || s.Type == "" || len(s.Properties) > 0:
		return structTypeDef(name, s, all, overrides)
	default:
		return model.TypeDefinition{}, fmt.Errorf("%w: %q", ErrUnsupportedSchema, name)
	}
}

func enumTypeDef(name string, s *model.Schema) model.TypeDefinition {
	members := make([]string, 0, len(s.Enum))
	for _, e := range s.Enum {
		if str, ok := e.(string); ok {
			members = append(members, str)
		}
	}

	return model.TypeDefinition{Kind: model.KindEnum, Name: name, EnumMembers: members}
}

func structTypeDef(name string, s *model.Schema, all map[string]*model.Schema, overrides *Overrides) (model.TypeDefinition, error) {
	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	names := propertyNames(s.Properties)
	fields := make([]model.StructField, 0, len(names))
	for _, fname := range names {
		f, err := schemaToField(fname, s.Properties[fname], all, overrides)
		if err != nil {
			return model.TypeDefinition{}, err
		}
		f.Constraints.Required = required[fname]
		fields = append(fields, f)
	}

	return model.TypeDefinition{Kind: model.KindStruct, Name: name, Fields: &model.StructFields{Fields: fields}}, nil
}

// arrayRootTypeDef converts a top-level array schema into the single-
// "items"-field convention cgen.Emitter's isArrayRoot recognizes: a
// shape a parsed C header never produces directly, only this bridge does.
func arrayRootTypeDef(name string, s *model.Schema, all map[string]*model.Schema, overrides *Overrides) (model.TypeDefinition, error) {
	f, err := schemaToField("items", s, all, overrides)
	if err != nil {
		return model.TypeDefinition{}, err
	}
	f.Constraints.Required = true

	return model.TypeDefinition{Kind: model.KindStruct, Name: name, Fields: &model.StructFields{Fields: []model.StructField{f}}}, nil
}

func unionTypeDef(name string, s *model.Schema, all map[string]*model.Schema, overrides *Overrides) (model.TypeDefinition, error) {
	arms := s.OneOf
	anyOf := false
	if len(arms) == 0 {
		arms = s.AnyOf
		anyOf = true
	}

	variants := make([]model.UnionVariantMeta, 0, len(arms))
	for _, arm := range arms {
		resolved := arm
		if arm.Ref != "" {
			_, refSchema, ok := resolveSchema(arm.Ref, all, overrides)
			if !ok {
				return model.TypeDefinition{}, fmt.Errorf("%w: unresolved union arm in %q", ErrUnsupportedSchema, name)
			}
			resolved = refSchema
		}
		jsonType := resolved.Type
		if jsonType == "" {
			jsonType = "object"
		}
		variants = append(variants, model.UnionVariantMeta{
			JSONType: jsonType,
			Required: append([]string(nil), resolved.Required...),
		})
	}

	discriminator := ""
	if s.Discriminator != nil {
		discriminator = s.Discriminator.PropertyName
	}

	return model.TypeDefinition{
		Kind: model.KindStruct,
		Name: name,
		Fields: &model.StructFields{
			IsUnion:            true,
			UnionIsAnyOf:       anyOf,
			UnionDiscriminator: discriminator,
			Variants:           variants,
		},
	}, nil
}

func schemaToField(name string, s *model.Schema, all map[string]*model.Schema, overrides *Overrides) (model.StructField, error) {
	f := model.StructField{Name: name, Constraints: fieldConstraints(s)}

	switch {
	case s.Ref != "":
		refName, refSchema, ok := resolveSchema(s.Ref, all, overrides)
		if !ok {
			return model.StructField{}, fmt.Errorf("%w: unresolved $ref %q", ErrUnsupportedSchema, s.Ref)
		}
		f.RefName = refName
		if len(refSchema.Enum) > 0 {
			f.Type = model.TypeEnum
		} else {
			f.Type = model.TypeObject
		}
	case s.Type == "array":
		f.Type = model.TypeArray
		if s.Items == nil {
			return model.StructField{}, fmt.Errorf("%w: array without items in field %q", ErrUnsupportedSchema, name)
		}
		switch {
		case s.Items.Ref != "":
			refName, _, ok := resolveSchema(s.Items.Ref, all, overrides)
			if !ok {
				return model.StructField{}, fmt.Errorf("%w: unresolved item $ref %q", ErrUnsupportedSchema, s.Items.Ref)
			}
			f.RefName = refName
		case s.Items.Type != "":
			f.RefName = s.Items.Type
		default:
			f.RefName = "object"
		}
	case s.Type == "string", s.Type == "integer", s.Type == "number", s.Type == "boolean", s.Type == "null":
		f.Type = model.LogicalType(s.Type)
	default:
		return model.StructField{}, fmt.Errorf("%w: unsupported inline schema for field %q", ErrUnsupportedSchema, name)
	}

	return f, nil
}

func fieldConstraints(s *model.Schema) model.Constraints {
	return model.Constraints{
		Minimum:          s.Minimum,
		Maximum:          s.Maximum,
		ExclusiveMinimum: s.ExclusiveMinimum,
		ExclusiveMaximum: s.ExclusiveMaximum,
		MinLength:        s.MinLength,
		MaxLength:        s.MaxLength,
		Pattern:          s.Pattern,
		Format:           s.Format,
		MinItems:         s.MinItems,
		MaxItems:         s.MaxItems,
		UniqueItems:      s.UniqueItems,
	}
}

// resolveSchema resolves a $ref to its type name and schema, checking
// the document's own schemas first and falling back to overrides for
// refs pointing outside the document, per model.ResolveRef's "strip
// to the last '/'" convention.
func resolveSchema(ref string, all map[string]*model.Schema, overrides *Overrides) (string, *model.Schema, bool) {
	name, _ := model.ResolveRef(ref)
	if s, ok := all[name]; ok {
		return name, s, true
	}
	if s := overrides.Schema(name); s != nil {
		return name, s, true
	}

	return name, nil, false
}

func propertyNames(props map[string]*model.Schema) []string {
	names := make([]string, 0, len(props))
	for n := range props {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
