package cgen

import (
	"fmt"
	"strings"

	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// cTypeOf maps a non-array StructField to its C type, exactly per
// spec.md §4.6.2's field type table.
func cTypeOf(f model.StructField) string {
	switch f.Type {
	case model.TypeString:
		return "const char *"
	case model.TypeInteger:
		if f.BitWidth > 0 {
			return fmt.Sprintf("int%d_t", f.BitWidth)
		}

		return "int"
	case model.TypeNumber:
		return "double"
	case model.TypeBoolean:
		return "int"
	case model.TypeEnum:
		return "enum " + f.RefName
	case model.TypeObject:
		return "struct " + f.RefName + " *"
	default:
		return "void *"
	}
}

// arrayItemCType returns the element type for an array-typed field and
// whether the array holds objects (struct <ref> **) rather than flat
// primitives (<item> *).
func arrayItemCType(f model.StructField) (item string, isObject bool) {
	switch model.LogicalType(f.RefName) {
	case model.TypeString:
		return "const char *", false
	case model.TypeInteger:
		return "int", false
	case model.TypeNumber:
		return "double", false
	case model.TypeBoolean:
		return "int", false
	default:
		return "struct " + f.RefName, true
	}
}

// writeFieldDecl writes one struct field declaration, expanding array
// fields into a pointer (or double pointer, for object arrays) plus a
// size_t n_<field> count field, per spec.md §4.6.2.
func writeFieldDecl(b *strings.Builder, f model.StructField) {
	if f.Type == model.TypeArray {
		item, isObject := arrayItemCType(f)
		if isObject {
			fmt.Fprintf(b, "    %s **%s;\n", item, f.Name)
		} else {
			fmt.Fprintf(b, "    %s *%s;\n", item, f.Name)
		}
		fmt.Fprintf(b, "    size_t n_%s;\n", f.Name)

		return
	}

	if f.FlexibleArray {
		fmt.Fprintf(b, "    %s %s[];\n", cTypeOf(f), f.Name)

		return
	}

	fmt.Fprintf(b, "    %s %s;\n", cTypeOf(f), f.Name)
}

// variantTagName derives the enum NAME_tag member suffix for union
// variant i: the discriminator value when known, else the JSON type
// name, else a positional fallback.
func variantTagName(v model.UnionVariantMeta, i int) string {
	switch {
	case v.DiscriminatorValue != "":
		return strings.ToUpper(sanitizeIdent(v.DiscriminatorValue))
	case v.JSONType != "":
		return strings.ToUpper(sanitizeIdent(v.JSONType))
	default:
		return fmt.Sprintf("V%d", i)
	}
}

func variantMemberName(v model.UnionVariantMeta, i int) string {
	return strings.ToLower(variantTagName(v, i))
}

// variantCType types one union data-member. Variants and the
// definition's declared Fields correspond by index: StructField i
// carries the payload type for Variant i, when present. This pairing is
// a generation-time convention (the source model does not otherwise
// name a union variant's C type) recorded in DESIGN.md.
func variantCType(def model.TypeDefinition, i int) string {
	if def.Fields != nil && i < len(def.Fields.Fields) {
		return cTypeOf(def.Fields.Fields[i])
	}

	v := def.Fields.Variants[i]
	switch v.JSONType {
	case "string":
		return "const char *"
	case "number":
		return "double"
	case "integer":
		return "int"
	case "boolean":
		return "int"
	case "object":
		return "void *"
	case "array":
		return "void *"
	default:
		return "int"
	}
}
