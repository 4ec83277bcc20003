package inspect

import (
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
	"github.com/SamuelMarks/cdd-c-sub007/internal/token"
)

// ExtractTypeDefs scans toks for `struct NAME { ... };` and
// `enum NAME { ... };` blocks, using bracket-depth tracking to skip
// nested braces, per spec §4.3.2.
func ExtractTypeDefs(src []byte, toks token.List) (model.TypeDefList, error) {
	var out model.TypeDefList

	sig := significant(toks)
	for i := 0; i < len(sig); i++ {
		tok := sig[i]
		if tok.Kind != token.Keyword {
			continue
		}
		text := tok.Text(src)
		if text != "struct" && text != "enum" {
			continue
		}

		def, consumed, ok := parseTypeDef(src, sig, i, text == "enum")
		if !ok {
			continue
		}
		out = append(out, def)
		i += consumed - 1
	}

	return out, nil
}

// significant filters whitespace/newline/comment tokens, returning only
// tokens relevant to structural scanning.
func significant(toks token.List) token.List {
	out := make(token.List, 0, len(toks))
	for _, t := range toks {
		switch t.Kind {
		case token.Whitespace, token.Newline, token.LineComment, token.BlockComment:
			continue
		}
		out = append(out, t)
	}

	return out
}

func parseTypeDef(src []byte, sig token.List, start int, isEnum bool) (model.TypeDefinition, int, bool) {
	i := start + 1
	if i >= len(sig) || sig[i].Kind != token.Identifier {
		return model.TypeDefinition{}, 0, false
	}
	name := sig[i].Text(src)
	i++
	if i >= len(sig) || sig[i].Kind != token.LBrace {
		return model.TypeDefinition{}, 0, false
	}

	bodyStart := i + 1
	depth := 1
	j := bodyStart
	for j < len(sig) && depth > 0 {
		switch sig[j].Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		}
		if depth == 0 {
			break
		}
		j++
	}
	if depth != 0 {
		return model.TypeDefinition{}, 0, false
	}
	body := sig[bodyStart:j]

	consumed := j - start + 1 // include closing brace
	if j+1 < len(sig) && sig[j+1].Kind == token.Semicolon {
		consumed++
	}

	if isEnum {
		return model.TypeDefinition{
			Kind:        model.KindEnum,
			Name:        name,
			EnumMembers: parseEnumMembers(src, body),
		}, consumed, true
	}

	return model.TypeDefinition{
		Kind:   model.KindStruct,
		Name:   name,
		Fields: parseStructFields(src, body),
	}, consumed, true
}

func parseEnumMembers(src []byte, body token.List) []string {
	var members []string
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i].Kind {
		case token.LBrace, token.LParen, token.LBracket:
			depth++
		case token.RBrace, token.RParen, token.RBracket:
			depth--
		case token.Identifier:
			if depth == 0 {
				// Only the first identifier of a comma-separated item is
				// the member name; skip until the next top-level comma.
				if i == 0 || body[i-1].Kind == token.Comma {
					members = append(members, body[i].Text(src))
				}
			}
		}
	}

	return members
}

// parseStructFields extracts a minimal field list: `type name;` entries,
// skipping nested aggregate bodies it cannot yet classify recursively
// (those are extracted as their own top-level struct/enum definitions by
// the outer scan when declared separately).
func parseStructFields(src []byte, body token.List) *model.StructFields {
	fields := &model.StructFields{}

	depth := 0
	var stmt token.List
	for i := 0; i < len(body); i++ {
		switch body[i].Kind {
		case token.LBrace:
			depth++

			continue
		case token.RBrace:
			depth--

			continue
		}
		if depth > 0 {
			continue
		}
		if body[i].Kind == token.Semicolon {
			if f, ok := parseFieldStatement(src, stmt); ok {
				fields.Fields = append(fields.Fields, f)
			}
			stmt = nil

			continue
		}
		stmt = append(stmt, body[i])
	}

	return fields
}

func parseFieldStatement(src []byte, stmt token.List) (model.StructField, bool) {
	if len(stmt) < 2 {
		return model.StructField{}, false
	}
	// Last identifier before an optional bit-field colon/array bracket is
	// the field name; everything before it is the type.
	nameIdx := -1
	bitWidth := 0
	limit := len(stmt)
	for i := 1; i < len(stmt); i++ {
		if stmt[i].Kind == token.LBracket || stmt[i].Kind == token.Colon {
			limit = i

			break
		}
	}
	for i := len(stmt) - 1; i >= 0; i-- {
		if stmt[i].Kind == token.Identifier && i < limit {
			nameIdx = i

			break
		}
		if stmt[i].Kind == token.Colon && i+1 < len(stmt) && stmt[i+1].Kind == token.IntLiteral {
			if nv, err := DecodeNumeric(stmt[i+1].Text(src)); err == nil {
				bitWidth = int(nv.UintValue)
			}
		}
	}
	if nameIdx <= 0 {
		return model.StructField{}, false
	}

	typeToks := stmt[:nameIdx]
	flexible := false
	if nameIdx+1 < len(stmt) && stmt[nameIdx+1].Kind == token.LBracket {
		if nameIdx+2 < len(stmt) && stmt[nameIdx+2].Kind == token.RBracket {
			flexible = true
		}
	}

	typeName := lastTypeIdentifier(src, typeToks)
	isPointer := hasPointerStar(typeToks)

	return model.StructField{
		Name:          stmt[nameIdx].Text(src),
		Type:          logicalTypeOf(typeName, isPointer),
		RefName:       typeName,
		BitWidth:      bitWidth,
		FlexibleArray: flexible,
	}, true
}

func lastTypeIdentifier(src []byte, toks token.List) string {
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Kind == token.Identifier || toks[i].Kind == token.Keyword {
			return toks[i].Text(src)
		}
	}

	return ""
}

func hasPointerStar(toks token.List) bool {
	for _, t := range toks {
		if t.Kind == token.Star {
			return true
		}
	}

	return false
}

var primitiveLogicalTypes = map[string]model.LogicalType{
	"char":     model.TypeString,
	"int":      model.TypeInteger,
	"long":     model.TypeInteger,
	"short":    model.TypeInteger,
	"unsigned": model.TypeInteger,
	"size_t":   model.TypeInteger,
	"float":    model.TypeNumber,
	"double":   model.TypeNumber,
	"bool":     model.TypeBoolean,
	"_Bool":    model.TypeBoolean,
	"void":     model.TypeNull,
}

func logicalTypeOf(typeName string, isPointer bool) model.LogicalType {
	if typeName == "char" && isPointer {
		return model.TypeString
	}
	if lt, ok := primitiveLogicalTypes[typeName]; ok {
		return lt
	}

	return model.TypeObject
}
