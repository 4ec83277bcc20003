package cgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// emitSource writes <base>.c: includes, then per schema in document
// order the function family spec.md §4.6.2 names.
func (e *Emitter) emitSource(w io.Writer, base string) error {
	rt := e.Runtime

	var b strings.Builder
	fmt.Fprintf(&b, "#include \"%s.h\"\n", base)
	b.WriteString("#include <stdlib.h>\n#include <string.h>\n#include <errno.h>\n#include <stdio.h>\n\n")
	b.WriteString(hasSuffixHelper)

	for _, def := range e.Defs {
		switch {
		case def.Kind == model.KindEnum:
			emitEnumSource(&b, def)
		case isArrayRoot(def):
			emitArrayRootSource(&b, def, rt)
		case isUnion(def):
			emitUnionSource(&b, def, rt)
		default:
			emitStructSource(&b, def, rt)
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

const hasSuffixHelper = `static int has_suffix(const char *s, const char *suffix) {
    size_t ls = strlen(s), lf = strlen(suffix);
    if (lf > ls) return 0;
    return strcmp(s + (ls - lf), suffix) == 0;
}

static void append_str(char **buf, size_t *cap, size_t *len, const char *s) {
    size_t n;
    if (s == NULL) s = "";
    n = strlen(s);
    if (*len + n + 1 > *cap) {
        while (*len + n + 1 > *cap) *cap *= 2;
        *buf = (char *)realloc(*buf, *cap);
    }
    memcpy(*buf + *len, s, n + 1);
    *len += n;
}

static void append_json_string(char **buf, size_t *cap, size_t *len, const char *s) {
    if (s == NULL) { append_str(buf, cap, len, "null"); return; }
    append_str(buf, cap, len, "\"");
    append_str(buf, cap, len, s);
    append_str(buf, cap, len, "\"");
}

static void append_int(char **buf, size_t *cap, size_t *len, long v) {
    char tmp[32];
    snprintf(tmp, sizeof(tmp), "%ld", v);
    append_str(buf, cap, len, tmp);
}

static void append_double(char **buf, size_t *cap, size_t *len, double v) {
    char tmp[32];
    snprintf(tmp, sizeof(tmp), "%g", v);
    append_str(buf, cap, len, tmp);
}

`

func emitEnumSource(b *strings.Builder, def model.TypeDefinition) {
	fmt.Fprintf(b, "const char *%s_to_str(enum %s v) {\n", def.Name, def.Name)
	b.WriteString("    switch (v) {\n")
	for _, m := range def.EnumMembers {
		if m == "UNKNOWN" {
			continue
		}
		fmt.Fprintf(b, "    case %s_%s: return \"%s\";\n", def.Name, m, m)
	}
	b.WriteString("    default: return \"UNKNOWN\";\n    }\n}\n\n")

	fmt.Fprintf(b, "enum %s %s_from_str(const char *s) {\n", def.Name, def.Name)
	b.WriteString("    if (s == NULL) return " + def.Name + "_UNKNOWN;\n")
	for _, m := range def.EnumMembers {
		if m == "UNKNOWN" {
			continue
		}
		fmt.Fprintf(b, "    if (strcmp(s, \"%s\") == 0) return %s_%s;\n", m, def.Name, m)
	}
	fmt.Fprintf(b, "    return %s_UNKNOWN;\n}\n\n", def.Name)
}

func emitStructSource(b *strings.Builder, def model.TypeDefinition, rt JSONRuntime) {
	name := def.Name
	var fields []model.StructField
	if def.Fields != nil {
		fields = def.Fields.Fields
	}

	fmt.Fprintf(b, "int %s_from_jsonObject(const %s *obj, struct %s **out) {\n", name, rt.ObjectType, name)
	b.WriteString("    struct " + name + " *result;\n")
	b.WriteString("    if (obj == NULL || out == NULL) return EINVAL;\n")
	b.WriteString("    result = (struct " + name + " *)calloc(1, sizeof(struct " + name + "));\n")
	b.WriteString("    if (result == NULL) return ENOMEM;\n\n")
	for _, f := range fields {
		emitFieldFromObject(b, rt, name, f)
	}
	b.WriteString("    *out = result;\n    return 0;\n")
	b.WriteString("erange:\n    " + name + "_cleanup(result);\n    return ERANGE;\n")
	b.WriteString("einval:\n    " + name + "_cleanup(result);\n    return EINVAL;\n}\n\n")

	fmt.Fprintf(b, "int %s_from_json(const char *json, struct %s **out) {\n", name, name)
	fmt.Fprintf(b, "    %s *root;\n    const %s *obj;\n    int rc;\n", rt.ValueType, rt.ObjectType)
	b.WriteString("    if (json == NULL || out == NULL) return EINVAL;\n")
	fmt.Fprintf(b, "    root = %s(json);\n", rt.ParseString)
	b.WriteString("    if (root == NULL) return EINVAL;\n")
	fmt.Fprintf(b, "    obj = %s(root);\n", rt.ValueGetObject)
	b.WriteString("    if (obj == NULL) { " + rt.ValueFree + "(root); return EINVAL; }\n")
	fmt.Fprintf(b, "    rc = %s_from_jsonObject(obj, out);\n", name)
	b.WriteString("    " + rt.ValueFree + "(root);\n    return rc;\n}\n\n")

	fmt.Fprintf(b, "int %s_to_json(const struct %s *in, char **out) {\n", name, name)
	b.WriteString("    size_t cap = 256, len = 0;\n    char *buf;\n    int first = 1;\n")
	b.WriteString("    if (in == NULL || out == NULL) return EINVAL;\n")
	b.WriteString("    buf = (char *)malloc(cap);\n    if (buf == NULL) return ENOMEM;\n")
	b.WriteString("    buf[0] = '\\0';\n    append_str(&buf, &cap, &len, \"{\");\n")
	for _, f := range fields {
		emitFieldToJSON(b, f)
	}
	b.WriteString("    append_str(&buf, &cap, &len, \"}\");\n")
	b.WriteString("    *out = buf;\n    return 0;\n}\n\n")

	fmt.Fprintf(b, "void %s_cleanup(struct %s *obj) {\n", name, name)
	b.WriteString("    if (obj == NULL) return;\n")
	for _, f := range fields {
		emitFieldCleanup(b, f)
	}
	b.WriteString("    free(obj);\n}\n\n")

	fmt.Fprintf(b, "struct %s %s_default(void) {\n    struct %s v;\n    memset(&v, 0, sizeof(v));\n    return v;\n}\n\n", name, name, name)

	fmt.Fprintf(b, "struct %s *%s_deepcopy(const struct %s *in) {\n", name, name, name)
	b.WriteString("    struct " + name + " *out;\n    if (in == NULL) return NULL;\n")
	b.WriteString("    out = (struct " + name + " *)calloc(1, sizeof(struct " + name + "));\n")
	b.WriteString("    if (out == NULL) return NULL;\n")
	for _, f := range fields {
		emitFieldDeepcopy(b, f)
	}
	b.WriteString("    return out;\n}\n\n")

	fmt.Fprintf(b, "void %s_debug(const struct %s *in, FILE *stream) {\n", name, name)
	b.WriteString("    if (in == NULL || stream == NULL) return;\n")
	fmt.Fprintf(b, "    fprintf(stream, \"(struct %s){\\n\");\n", name)
	for _, f := range fields {
		fmt.Fprintf(b, "    fprintf(stream, \"  .%s = ...\\n\");\n", f.Name)
	}
	b.WriteString("    fprintf(stream, \"}\\n\");\n}\n\n")

	fmt.Fprintf(b, "void %s_display(const struct %s *in, FILE *stream) {\n", name, name)
	b.WriteString("    char *json = NULL;\n    if (in == NULL || stream == NULL) return;\n")
	fmt.Fprintf(b, "    if (%s_to_json(in, &json) == 0) { fprintf(stream, \"%%s\\n\", json); free(json); }\n}\n\n", name)

	// Explicit NULL/NULL -> true, NULL/non-NULL -> false, never the
	// original's `a == NULL && b == NULL || ...` precedence bug.
	fmt.Fprintf(b, "int %s_eq(const struct %s *a, const struct %s *b) {\n", name, name, name)
	b.WriteString("    if (a == NULL && b == NULL) return 1;\n")
	b.WriteString("    if (a == NULL || b == NULL) return 0;\n")
	for _, f := range fields {
		emitFieldEq(b, f)
	}
	b.WriteString("    return 1;\n}\n\n")
}

func emitFieldEq(b *strings.Builder, f model.StructField) {
	switch f.Type {
	case model.TypeString:
		fmt.Fprintf(b, "    if ((a->%s == NULL) != (b->%s == NULL)) return 0;\n", f.Name, f.Name)
		fmt.Fprintf(b, "    if (a->%s != NULL && strcmp(a->%s, b->%s) != 0) return 0;\n", f.Name, f.Name, f.Name)
	case model.TypeObject:
		fmt.Fprintf(b, "    if (!%s_eq(a->%s, b->%s)) return 0;\n", f.RefName, f.Name, f.Name)
	case model.TypeArray:
		_, isObject := arrayItemCType(f)
		fmt.Fprintf(b, "    if (a->n_%s != b->n_%s) return 0;\n", f.Name, f.Name)
		b.WriteString("    {\n        size_t i;\n")
		fmt.Fprintf(b, "        for (i = 0; i < a->n_%s; i++) {\n", f.Name)
		if isObject {
			fmt.Fprintf(b, "            if (!%s_eq(a->%s[i], b->%s[i])) return 0;\n", f.RefName, f.Name, f.Name)
		} else {
			fmt.Fprintf(b, "            if (a->%s[i] != b->%s[i]) return 0;\n", f.Name, f.Name)
		}
		b.WriteString("        }\n    }\n")
	default:
		fmt.Fprintf(b, "    if (a->%s != b->%s) return 0;\n", f.Name, f.Name)
	}
}

func emitFieldFromObject(b *strings.Builder, rt JSONRuntime, structName string, f model.StructField) {
	c := f.Constraints

	switch f.Type {
	case model.TypeString:
		fmt.Fprintf(b, "    {\n        const char *v = %s(obj, \"%s\");\n", rt.ObjectGetString, f.Name)
		if c.Required {
			b.WriteString("        if (v == NULL) goto einval;\n")
		}
		b.WriteString("        if (v != NULL) {\n")
		if c.MinLength != nil {
			fmt.Fprintf(b, "            if (strlen(v) < %d) goto erange;\n", *c.MinLength)
		}
		if c.MaxLength != nil {
			fmt.Fprintf(b, "            if (strlen(v) > %d) goto erange;\n", *c.MaxLength)
		}
		if c.Pattern != "" {
			fmt.Fprintf(b, "            if (%s) goto erange;\n", patternCheckExpr("v", c.Pattern))
		}
		fmt.Fprintf(b, "            result->%s = strdup(v);\n", f.Name)
		b.WriteString("        }\n    }\n")

	case model.TypeInteger, model.TypeNumber:
		fmt.Fprintf(b, "    {\n        double v = %s(obj, \"%s\");\n", rt.ObjectGetNumber, f.Name)
		if c.Minimum != nil {
			op := ">="
			if c.ExclusiveMinimum {
				op = ">"
			}
			fmt.Fprintf(b, "        if (!(v %s %v)) goto erange;\n", op, *c.Minimum)
		}
		if c.Maximum != nil {
			op := "<="
			if c.ExclusiveMaximum {
				op = "<"
			}
			fmt.Fprintf(b, "        if (!(v %s %v)) goto erange;\n", op, *c.Maximum)
		}
		if f.Type == model.TypeInteger {
			fmt.Fprintf(b, "        result->%s = (int)v;\n", f.Name)
		} else {
			fmt.Fprintf(b, "        result->%s = v;\n", f.Name)
		}
		b.WriteString("    }\n")

	case model.TypeBoolean:
		fmt.Fprintf(b, "    result->%s = %s(obj, \"%s\");\n", f.Name, rt.ObjectGetBoolean, f.Name)

	case model.TypeEnum:
		fmt.Fprintf(b, "    result->%s = %s_from_str(%s(obj, \"%s\"));\n", f.Name, f.RefName, rt.ObjectGetString, f.Name)

	case model.TypeObject:
		fmt.Fprintf(b, "    {\n        const %s *child = %s(obj, \"%s\");\n", rt.ObjectType, rt.ObjectGetObject, f.Name)
		if c.Required {
			b.WriteString("        if (child == NULL) goto einval;\n")
		}
		fmt.Fprintf(b, "        if (child != NULL && %s_from_jsonObject(child, &result->%s) != 0) goto einval;\n", f.RefName, f.Name)
		b.WriteString("    }\n")

	case model.TypeArray:
		item, isObject := arrayItemCType(f)
		fmt.Fprintf(b, "    {\n        const %s *arr = %s(obj, \"%s\");\n", rt.ArrayType, rt.ObjectGetArray, f.Name)
		b.WriteString("        size_t i, n = arr != NULL ? json_array_get_count(arr) : 0;\n")
		fmt.Fprintf(b, "        result->n_%s = n;\n", f.Name)
		if isObject {
			fmt.Fprintf(b, "        result->%s = n ? (%s **)calloc(n, sizeof(%s *)) : NULL;\n", f.Name, item, item)
		} else {
			fmt.Fprintf(b, "        result->%s = n ? (%s *)calloc(n, sizeof(%s)) : NULL;\n", f.Name, item, item)
		}
		b.WriteString("        for (i = 0; i < n; i++) {\n")
		if isObject {
			fmt.Fprintf(b, "            %s_from_jsonObject(json_array_get_object(arr, i), &result->%s[i]);\n", f.RefName, f.Name)
		} else {
			fmt.Fprintf(b, "            result->%s[i] = (%s)json_array_get_number(arr, i);\n", f.Name, item)
		}
		b.WriteString("        }\n    }\n")
	}
}

func emitFieldToJSON(b *strings.Builder, f model.StructField) {
	fmt.Fprintf(b, "    if (!first) append_str(&buf, &cap, &len, \",\"); first = 0;\n")
	fmt.Fprintf(b, "    append_str(&buf, &cap, &len, \"\\\"%s\\\":\");\n", f.Name)

	switch f.Type {
	case model.TypeString:
		fmt.Fprintf(b, "    append_json_string(&buf, &cap, &len, in->%s);\n", f.Name)
	case model.TypeInteger, model.TypeBoolean:
		fmt.Fprintf(b, "    append_int(&buf, &cap, &len, (long)in->%s);\n", f.Name)
	case model.TypeNumber:
		fmt.Fprintf(b, "    append_double(&buf, &cap, &len, in->%s);\n", f.Name)
	case model.TypeEnum:
		fmt.Fprintf(b, "    append_json_string(&buf, &cap, &len, %s_to_str(in->%s));\n", f.RefName, f.Name)
	case model.TypeObject:
		fmt.Fprintf(b, "    { char *child = NULL; %s_to_json(in->%s, &child); append_str(&buf, &cap, &len, child); free(child); }\n", f.RefName, f.Name)
	case model.TypeArray:
		_, isObject := arrayItemCType(f)
		b.WriteString("    append_str(&buf, &cap, &len, \"[\");\n")
		fmt.Fprintf(b, "    { size_t i; for (i = 0; i < in->n_%s; i++) {\n", f.Name)
		b.WriteString("        if (i) append_str(&buf, &cap, &len, \",\");\n")
		if isObject {
			fmt.Fprintf(b, "        { char *child = NULL; %s_to_json(in->%s[i], &child); append_str(&buf, &cap, &len, child); free(child); }\n", f.RefName, f.Name)
		} else {
			fmt.Fprintf(b, "        append_double(&buf, &cap, &len, (double)in->%s[i]);\n", f.Name)
		}
		b.WriteString("    } }\n    append_str(&buf, &cap, &len, \"]\");\n")
	}
}

func emitFieldCleanup(b *strings.Builder, f model.StructField) {
	switch f.Type {
	case model.TypeString:
		fmt.Fprintf(b, "    free((void *)obj->%s);\n", f.Name)
	case model.TypeObject:
		fmt.Fprintf(b, "    %s_cleanup(obj->%s);\n", f.RefName, f.Name)
	case model.TypeArray:
		_, isObject := arrayItemCType(f)
		if isObject {
			fmt.Fprintf(b, "    { size_t i; for (i = 0; i < obj->n_%s; i++) %s_cleanup(obj->%s[i]); }\n", f.Name, f.RefName, f.Name)
		}
		fmt.Fprintf(b, "    free(obj->%s);\n", f.Name)
	}
}

func emitFieldDeepcopy(b *strings.Builder, f model.StructField) {
	switch f.Type {
	case model.TypeString:
		fmt.Fprintf(b, "    out->%s = in->%s != NULL ? strdup(in->%s) : NULL;\n", f.Name, f.Name, f.Name)
	case model.TypeObject:
		fmt.Fprintf(b, "    out->%s = %s_deepcopy(in->%s);\n", f.Name, f.RefName, f.Name)
	case model.TypeArray:
		item, isObject := arrayItemCType(f)
		fmt.Fprintf(b, "    out->n_%s = in->n_%s;\n", f.Name, f.Name)
		if isObject {
			fmt.Fprintf(b, "    out->%s = in->n_%s ? (%s **)calloc(in->n_%s, sizeof(%s *)) : NULL;\n", f.Name, f.Name, item, f.Name, item)
			fmt.Fprintf(b, "    { size_t i; for (i = 0; i < in->n_%s; i++) out->%s[i] = %s_deepcopy(in->%s[i]); }\n", f.Name, f.Name, f.RefName, f.Name)
		} else {
			fmt.Fprintf(b, "    if (in->n_%s) { out->%s = (%s *)malloc(in->n_%s * sizeof(%s)); memcpy(out->%s, in->%s, in->n_%s * sizeof(%s)); }\n",
				f.Name, f.Name, item, f.Name, item, f.Name, f.Name, f.Name, item)
		}
	default:
		fmt.Fprintf(b, "    out->%s = in->%s;\n", f.Name, f.Name)
	}
}

// emitUnionSource generates the tagged-union function family: two-tier
// variant dispatch (discriminator match first, else a presence check of
// each object variant's required properties as strings, oneOf mode
// rejecting ambiguous multi-match), then to_json, then cleanup. Declared
// properties are not scored, and a variant with no required properties
// (every primitive-typed variant among them) matches only through the
// discriminator. to_json switches on the tag and writes `{}` for any
// known variant; the variant's payload is not serialized.
func emitUnionSource(b *strings.Builder, def model.TypeDefinition, rt JSONRuntime) {
	name := def.Name

	fmt.Fprintf(b, "int %s_from_jsonObject(const %s *obj, struct %s **out) {\n", name, rt.ObjectType, name)
	b.WriteString("    struct " + name + " *result;\n")
	b.WriteString("    int matches = 0;\n")
	b.WriteString("    if (obj == NULL || out == NULL) return EINVAL;\n")
	b.WriteString("    result = (struct " + name + " *)calloc(1, sizeof(struct " + name + "));\n")
	b.WriteString("    if (result == NULL) return ENOMEM;\n")
	b.WriteString("    result->tag = " + name + "_TAG_UNKNOWN;\n\n")

	if def.Fields.UnionDiscriminator != "" {
		fmt.Fprintf(b, "    {\n        const char *disc = %s(obj, \"%s\");\n", rt.ObjectGetString, def.Fields.UnionDiscriminator)
		for i, v := range def.Fields.Variants {
			if v.DiscriminatorValue == "" {
				continue
			}
			fmt.Fprintf(b, "        if (disc != NULL && strcmp(disc, \"%s\") == 0) { result->tag = %s_TAG_%s; matches++; }\n",
				v.DiscriminatorValue, name, variantTagName(v, i))
		}
		b.WriteString("    }\n")
	}

	b.WriteString("    if (matches == 0) {\n")
	for i, v := range def.Fields.Variants {
		if v.JSONType != "object" || len(v.Required) == 0 {
			continue
		}
		var checks []string
		for _, r := range v.Required {
			checks = append(checks, fmt.Sprintf("%s(obj, \"%s\") != NULL", rt.ObjectGetString, r))
		}
		fmt.Fprintf(b, "        if (%s) { result->tag = %s_TAG_%s; matches++; }\n", strings.Join(checks, " && "), name, variantTagName(v, i))
	}
	b.WriteString("    }\n")

	if !def.Fields.UnionIsAnyOf {
		b.WriteString("    if (matches > 1) { " + name + "_cleanup(result); return EINVAL; }\n")
	}
	b.WriteString("    if (matches == 0) { " + name + "_cleanup(result); return EINVAL; }\n\n")
	b.WriteString("    *out = result;\n    return 0;\n}\n\n")

	fmt.Fprintf(b, "int %s_from_json(const char *json, struct %s **out) {\n", name, name)
	fmt.Fprintf(b, "    %s *root;\n    const %s *obj;\n    int rc;\n", rt.ValueType, rt.ObjectType)
	b.WriteString("    if (json == NULL || out == NULL) return EINVAL;\n")
	fmt.Fprintf(b, "    root = %s(json);\n    if (root == NULL) return EINVAL;\n", rt.ParseString)
	fmt.Fprintf(b, "    obj = %s(root);\n", rt.ValueGetObject)
	b.WriteString("    if (obj == NULL) { " + rt.ValueFree + "(root); return EINVAL; }\n")
	fmt.Fprintf(b, "    rc = %s_from_jsonObject(obj, out);\n", name)
	b.WriteString("    " + rt.ValueFree + "(root);\n    return rc;\n}\n\n")

	fmt.Fprintf(b, "int %s_to_json(const struct %s *in, char **out) {\n", name, name)
	b.WriteString("    if (in == NULL || out == NULL) return EINVAL;\n")
	b.WriteString("    switch (in->tag) {\n")
	for i, v := range def.Fields.Variants {
		fmt.Fprintf(b, "    case %s_TAG_%s: *out = strdup(\"{}\"); return 0; /* variant %d (%s) */\n",
			name, variantTagName(v, i), i, v.JSONType)
	}
	b.WriteString("    default: *out = strdup(\"null\"); return 0;\n    }\n}\n\n")

	fmt.Fprintf(b, "void %s_cleanup(struct %s *obj) {\n    if (obj == NULL) return;\n    free(obj);\n}\n\n", name, name)

	fmt.Fprintf(b, "int %s_eq(const struct %s *a, const struct %s *b) {\n", name, name, name)
	b.WriteString("    if (a == NULL && b == NULL) return 1;\n")
	b.WriteString("    if (a == NULL || b == NULL) return 0;\n")
	b.WriteString("    return a->tag == b->tag;\n}\n\n")
}

// emitArrayRootSource generates the three specialized (items, len)
// functions spec.md §4.6.2 names for a root-array schema.
func emitArrayRootSource(b *strings.Builder, def model.TypeDefinition, rt JSONRuntime) {
	name := def.Name
	itemField := def.Fields.Fields[0]
	item, isObject := arrayItemCType(itemField)
	ptr := item + " *"
	if isObject {
		ptr = item + " **"
	}

	fmt.Fprintf(b, "void %s_cleanup(%s in, size_t len) {\n", name, ptr)
	b.WriteString("    size_t i;\n    if (in == NULL) return;\n")
	if isObject {
		fmt.Fprintf(b, "    for (i = 0; i < len; i++) %s_cleanup(in[i]);\n", itemField.RefName)
	}
	b.WriteString("    free(in);\n}\n\n")

	fmt.Fprintf(b, "int %s_to_json(const %s in, size_t len, char **out) {\n", name, ptr)
	b.WriteString("    size_t cap = 64, l = 0, i;\n    char *buf;\n")
	b.WriteString("    if (out == NULL) return EINVAL;\n")
	b.WriteString("    buf = (char *)malloc(cap);\n    if (buf == NULL) return ENOMEM;\n")
	b.WriteString("    buf[0] = '\\0';\n    append_str(&buf, &cap, &l, \"[\");\n")
	b.WriteString("    for (i = 0; i < len; i++) {\n        if (i) append_str(&buf, &cap, &l, \",\");\n")
	if isObject {
		fmt.Fprintf(b, "        { char *child = NULL; %s_to_json(in[i], &child); append_str(&buf, &cap, &l, child); free(child); }\n", itemField.RefName)
	} else {
		b.WriteString("        append_double(&buf, &cap, &l, (double)in[i]);\n")
	}
	b.WriteString("    }\n    append_str(&buf, &cap, &l, \"]\");\n    *out = buf;\n    return 0;\n}\n\n")

	fmt.Fprintf(b, "int %s_from_json(const char *json, %s *out, size_t *len) {\n", name, ptr)
	fmt.Fprintf(b, "    %s *root;\n    const %s *arr;\n    size_t n, i;\n", rt.ValueType, rt.ArrayType)
	b.WriteString("    if (json == NULL || out == NULL || len == NULL) return EINVAL;\n")
	fmt.Fprintf(b, "    root = %s(json);\n    if (root == NULL) return EINVAL;\n", rt.ParseString)
	b.WriteString("    arr = json_value_get_array(root);\n")
	b.WriteString("    if (arr == NULL) { " + rt.ValueFree + "(root); return EINVAL; }\n")
	b.WriteString("    n = json_array_get_count(arr);\n")
	if isObject {
		fmt.Fprintf(b, "    *out = n ? (%s)calloc(n, sizeof(%s)) : NULL;\n", ptr, item)
	} else {
		fmt.Fprintf(b, "    *out = n ? (%s)calloc(n, sizeof(%s)) : NULL;\n", ptr, item)
	}
	b.WriteString("    for (i = 0; i < n; i++) {\n")
	if isObject {
		fmt.Fprintf(b, "        %s_from_jsonObject(json_array_get_object(arr, i), &(*out)[i]);\n", itemField.RefName)
	} else {
		b.WriteString("        (*out)[i] = (" + item + ")json_array_get_number(arr, i);\n")
	}
	b.WriteString("    }\n    *len = n;\n    " + rt.ValueFree + "(root);\n    return 0;\n}\n\n")
}
