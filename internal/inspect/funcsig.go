package inspect

import (
	"strings"

	"github.com/SamuelMarks/cdd-c-sub007/internal/token"
)

// storageSpecifiers are the C storage-class/function specifiers that can
// precede a return type, per spec §4.3.3.
var storageSpecifiers = map[string]bool{
	"static": true, "extern": true, "inline": true,
	"_Noreturn": true, "noreturn": true, "_Thread_local": true,
}

// FunctionSignature is the parsed form of a candidate signature token
// range, per spec §4.3.3.
type FunctionSignature struct {
	Attributes []string // raw text of each [[...]] group, in source order
	Storage    []string
	ReturnType string
	Name       string
	Params     []Param
	KRDecls    []string // trailing K&R-style declarations, if any
	Variadic   bool
}

// Param is one entry of a function's parenthesized argument list.
type Param struct {
	Type string
	Name string
}

// RewrittenSignature is FunctionSignature canonicalized for the optional
// all-errors-returned refactor pass named in spec §6.
type RewrittenSignature struct {
	ReturnType   string // always "int" (an errno-style status code)
	Name         string
	Params       []Param
	OutParam     *Param // added when the original return type was non-void
	OriginalVoid bool
}

// ExtractFunctionSignature locates the function name as the last
// identifier before the outermost '(' within sig, then recovers
// attributes, storage specifiers, return type, parameter list, and any
// trailing K&R declarations, per spec §4.3.3.
func ExtractFunctionSignature(src []byte, sig token.List) (FunctionSignature, bool) {
	toks := significant(sig)
	if len(toks) == 0 {
		return FunctionSignature{}, false
	}

	var fs FunctionSignature
	i := 0

	for i < len(toks) {
		if toks[i].Kind == token.LBracket && i+1 < len(toks) && toks[i+1].Kind == token.LBracket {
			end := findMatchingDoubleBracket(src, toks, i)
			if end < 0 {
				return FunctionSignature{}, false
			}
			fs.Attributes = append(fs.Attributes, joinTokens(src, toks[i:end+1]))
			i = end + 1

			continue
		}

		break
	}

	for i < len(toks) && toks[i].Kind == token.Keyword && storageSpecifiers[toks[i].Text(src)] {
		fs.Storage = append(fs.Storage, toks[i].Text(src))
		i++
	}

	parenIdx := -1
	for j := i; j < len(toks); j++ {
		if toks[j].Kind == token.LParen {
			parenIdx = j

			break
		}
	}
	if parenIdx < 0 || parenIdx == i {
		return FunctionSignature{}, false
	}

	nameIdx := -1
	for j := parenIdx - 1; j >= i; j-- {
		if toks[j].Kind == token.Identifier {
			nameIdx = j

			break
		}
	}
	if nameIdx < 0 {
		return FunctionSignature{}, false
	}

	fs.Name = toks[nameIdx].Text(src)
	fs.ReturnType = joinTokens(src, toks[i:nameIdx])

	closeIdx := matchParen(toks, parenIdx)
	if closeIdx < 0 {
		return FunctionSignature{}, false
	}
	params, variadic := splitParams(src, toks[parenIdx+1:closeIdx])
	fs.Params = params
	fs.Variadic = variadic

	// Trailing K&R declarations appear between the closing paren and the
	// function body's opening brace, each terminated by a semicolon.
	j := closeIdx + 1
	var decl token.List
	for j < len(toks) && toks[j].Kind != token.LBrace {
		if toks[j].Kind == token.Semicolon {
			if len(decl) > 0 {
				fs.KRDecls = append(fs.KRDecls, joinTokens(src, decl))
			}
			decl = nil
			j++

			continue
		}
		decl = append(decl, toks[j])
		j++
	}

	return fs, true
}

func findMatchingDoubleBracket(src []byte, toks token.List, start int) int {
	depth := 0
	for j := start; j < len(toks); j++ {
		if toks[j].Kind == token.LBracket {
			depth++
		} else if toks[j].Kind == token.RBracket {
			depth--
			if depth == 0 {
				return j
			}
		}
	}

	return -1
}

func matchParen(toks token.List, openIdx int) int {
	depth := 0
	for j := openIdx; j < len(toks); j++ {
		switch toks[j].Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return j
			}
		}
	}

	return -1
}

func splitParams(src []byte, toks token.List) ([]Param, bool) {
	if len(toks) == 0 {
		return nil, false
	}
	if len(toks) == 1 && toks[0].Kind == token.Keyword && toks[0].Text(src) == "void" {
		return nil, false
	}

	var params []Param
	variadic := false
	depth := 0
	var cur token.List
	flush := func() {
		if len(cur) == 0 {
			return
		}
		if len(cur) == 1 && cur[0].Kind == token.Ellipsis {
			variadic = true
			cur = nil

			return
		}
		params = append(params, splitParamTypeName(src, cur))
		cur = nil
	}

	for _, t := range toks {
		switch t.Kind {
		case token.LParen, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			depth--
		case token.Comma:
			if depth == 0 {
				flush()

				continue
			}
		}
		cur = append(cur, t)
	}
	flush()

	return params, variadic
}

func splitParamTypeName(src []byte, toks token.List) Param {
	nameIdx := -1
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Kind == token.Identifier {
			nameIdx = i

			break
		}
	}
	if nameIdx <= 0 {
		return Param{Type: joinTokens(src, toks)}
	}

	return Param{
		Type: joinTokens(src, toks[:nameIdx]),
		Name: toks[nameIdx].Text(src),
	}
}

func joinTokens(src []byte, toks token.List) string {
	var sb strings.Builder
	for i, t := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text(src))
	}

	return sb.String()
}

// Rewrite canonicalizes fs into the all-errors-returned form named in
// spec §6: a void parameter list becomes explicit `void`, and a non-void
// return type is replaced with an errno-style `int` status code plus an
// added out-parameter carrying the original return value.
func Rewrite(fs FunctionSignature) RewrittenSignature {
	rs := RewrittenSignature{
		ReturnType: "int",
		Name:       fs.Name,
		Params:     append([]Param(nil), fs.Params...),
	}

	retType := strings.TrimSpace(fs.ReturnType)
	if retType == "void" || retType == "" {
		rs.OriginalVoid = true
		if len(rs.Params) == 0 && !fs.Variadic {
			rs.Params = []Param{{Type: "void"}}
		}

		return rs
	}

	out := Param{Type: retType + " *", Name: "out_result"}
	rs.OutParam = &out
	rs.Params = append(rs.Params, out)

	return rs
}
