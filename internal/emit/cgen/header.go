package cgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// emitHeader writes <base>.h: include guard, includes, extern "C"
// block, forward declarations (pass 1), then definitions and function
// prototypes in document order (pass 2), per spec.md §4.6.2.
func (e *Emitter) emitHeader(w io.Writer, base string) error {
	guard := strings.ToUpper(sanitizeIdent(base)) + "_H"

	var b strings.Builder
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	b.WriteString("#include <stddef.h>\n#include <stdbool.h>\n#include <stdint.h>\n#include <stdio.h>\n")
	fmt.Fprintf(&b, "#include \"%s\"\n\n", e.Runtime.IncludePath)
	b.WriteString("#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")

	e.emitForwardDecls(&b)

	for _, def := range e.Defs {
		switch {
		case def.Kind == model.KindEnum:
			emitEnumDecl(&b, def)
		case isArrayRoot(def):
			emitArrayRootDecl(&b, def)
		case isUnion(def):
			emitUnionDecl(&b, def)
		default:
			emitStructDecl(&b, def)
		}
	}

	b.WriteString("#ifdef __cplusplus\n}\n#endif\n\n")
	fmt.Fprintf(&b, "#endif /* %s */\n", guard)

	_, err := io.WriteString(w, b.String())

	return err
}

// emitForwardDecls is pass 1: a `struct NAME;` forward declaration for
// every struct or union schema (enum and array-root schemas need none),
// so later references are legal regardless of schema order.
func (e *Emitter) emitForwardDecls(b *strings.Builder) {
	for _, def := range e.Defs {
		if def.Kind == model.KindStruct && !isArrayRoot(def) {
			fmt.Fprintf(b, "struct %s;\n", def.Name)
		}
	}
	b.WriteString("\n")
}

func emitEnumDecl(b *strings.Builder, def model.TypeDefinition) {
	fmt.Fprintf(b, "enum %s {\n", def.Name)
	fmt.Fprintf(b, "    %s_UNKNOWN = 0", def.Name)
	for _, m := range def.EnumMembers {
		if m == "UNKNOWN" {
			continue
		}
		fmt.Fprintf(b, ",\n    %s_%s", def.Name, m)
	}
	b.WriteString("\n};\n\n")

	fmt.Fprintf(b, "extern const char *%s_to_str(enum %s v);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern enum %s %s_from_str(const char *s);\n\n", def.Name, def.Name)
}

func emitUnionDecl(b *strings.Builder, def model.TypeDefinition) {
	fmt.Fprintf(b, "enum %s_tag {\n", def.Name)
	fmt.Fprintf(b, "    %s_TAG_UNKNOWN = 0", def.Name)
	for i, v := range def.Fields.Variants {
		fmt.Fprintf(b, ",\n    %s_TAG_%s", def.Name, variantTagName(v, i))
	}
	b.WriteString("\n};\n\n")

	fmt.Fprintf(b, "struct %s {\n", def.Name)
	fmt.Fprintf(b, "    enum %s_tag tag;\n", def.Name)
	b.WriteString("    union {\n")
	for i, v := range def.Fields.Variants {
		fmt.Fprintf(b, "        %s %s;\n", variantCType(def, i), variantMemberName(v, i))
	}
	b.WriteString("    } data;\n};\n\n")

	fmt.Fprintf(b, "extern int %s_from_json(const char *json, struct %s **out);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern int %s_from_jsonObject(const %s *obj, struct %s **out);\n", def.Name, "JSON_Object", def.Name)
	fmt.Fprintf(b, "extern int %s_to_json(const struct %s *in, char **out);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern void %s_cleanup(struct %s *obj);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern int %s_eq(const struct %s *a, const struct %s *b);\n\n", def.Name, def.Name, def.Name)
}

func emitStructDecl(b *strings.Builder, def model.TypeDefinition) {
	fmt.Fprintf(b, "struct %s {\n", def.Name)
	if def.Fields != nil {
		for _, f := range def.Fields.Fields {
			writeFieldDecl(b, f)
		}
	}
	b.WriteString("};\n\n")

	fmt.Fprintf(b, "extern int %s_from_json(const char *json, struct %s **out);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern int %s_from_jsonObject(const JSON_Object *obj, struct %s **out);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern int %s_to_json(const struct %s *in, char **out);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern void %s_cleanup(struct %s *obj);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern struct %s %s_default(void);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern struct %s *%s_deepcopy(const struct %s *in);\n", def.Name, def.Name, def.Name)
	fmt.Fprintf(b, "extern void %s_debug(const struct %s *in, FILE *stream);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern void %s_display(const struct %s *in, FILE *stream);\n", def.Name, def.Name)
	fmt.Fprintf(b, "extern int %s_eq(const struct %s *a, const struct %s *b);\n\n", def.Name, def.Name, def.Name)
}

// emitArrayRootDecl declares the three specialized functions spec.md
// §4.6.2 names for a root-array schema, keyed on the array's item type.
func emitArrayRootDecl(b *strings.Builder, def model.TypeDefinition) {
	item, isObject := arrayItemCType(def.Fields.Fields[0])
	ptr := item + " *"
	if isObject {
		ptr = item + " **"
	}

	fmt.Fprintf(b, "extern void %s_cleanup(%s in, size_t len);\n", def.Name, ptr)
	fmt.Fprintf(b, "extern int %s_to_json(const %s in, size_t len, char **out);\n", def.Name, ptr)
	fmt.Fprintf(b, "extern int %s_from_json(const char *json, %s *out, size_t *len);\n\n", def.Name, ptr)
}
