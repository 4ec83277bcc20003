package inspect

import (
	"github.com/SamuelMarks/cdd-c-sub007/internal/token"
)

// InitEntry is one element of an InitList: either a designated entry
// (`.name = expr` or `[i] = expr`) or a plain positional expression.
type InitEntry struct {
	Designator string // space-joined tokens: ". name", "[ i ]", or "" for a positional entry
	Expr       string // joined scalar expression text
	Nested     *InitList
}

// InitList is the recursive-descent result of parsing a brace-delimited
// C initializer list, per spec §4.3.4.
type InitList struct {
	Entries []InitEntry
}

// ParseInitList parses a `{ ... }` initializer list from body (the tokens
// strictly between the outermost braces). Designators are recognized as
// a `.name` or `[expr]` prefix before `=`; nested brace groups recurse
// into a child InitList. Whitespace and comments are stripped and the
// remaining tokens joined to form designator/expression strings.
func ParseInitList(src []byte, body token.List) InitList {
	sig := significant(body)

	var list InitList
	i := 0
	for i < len(sig) {
		entry, consumed := parseInitEntry(src, sig[i:])
		if consumed == 0 {
			break
		}
		list.Entries = append(list.Entries, entry)
		i += consumed
		if i < len(sig) && sig[i].Kind == token.Comma {
			i++
		}
	}

	return list
}

func parseInitEntry(src []byte, toks token.List) (InitEntry, int) {
	i := 0
	var designator token.List

	for i < len(toks) {
		switch toks[i].Kind {
		case token.Dot:
			if i+1 < len(toks) && toks[i+1].Kind == token.Identifier {
				designator = append(designator, toks[i], toks[i+1])
				i += 2

				continue
			}
		case token.LBracket:
			end := matchBracket(toks, i)
			if end < 0 {
				return InitEntry{}, 0
			}
			designator = append(designator, toks[i:end+1]...)
			i = end + 1

			continue
		case token.Assign:
			i++
		}

		break
	}

	exprStart := i
	end := scanBalancedExpr(toks, exprStart)

	entry := InitEntry{Designator: joinTokens(src, designator)}

	if exprStart < len(toks) && toks[exprStart].Kind == token.LBrace {
		braceEnd := matchBrace(toks, exprStart)
		if braceEnd < 0 {
			return InitEntry{}, 0
		}
		nested := ParseInitList(src, toks[exprStart+1:braceEnd])
		entry.Nested = &nested
		end = braceEnd + 1
	} else {
		entry.Expr = joinTokens(src, toks[exprStart:end])
	}

	return entry, end
}

// scanBalancedExpr returns the index just past a top-level expression
// starting at start: scanning stops at an unbalanced (depth-0) comma or
// at the end of toks, balancing parens/brackets/braces along the way.
func scanBalancedExpr(toks token.List, start int) int {
	depth := 0
	i := start
	for i < len(toks) {
		switch toks[i].Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		case token.Comma:
			if depth == 0 {
				return i
			}
		}
		i++
	}

	return i
}

func matchBracket(toks token.List, openIdx int) int {
	depth := 0
	for j := openIdx; j < len(toks); j++ {
		switch toks[j].Kind {
		case token.LBracket:
			depth++
		case token.RBracket:
			depth--
			if depth == 0 {
				return j
			}
		}
	}

	return -1
}

func matchBrace(toks token.List, openIdx int) int {
	depth := 0
	for j := openIdx; j < len(toks); j++ {
		switch toks[j].Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				return j
			}
		}
	}

	return -1
}
