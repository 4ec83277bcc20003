package cgen

import "strings"

// patternMatch is how a Pattern constraint should be checked against a
// decoded string, per spec.md §4.6.2's regex anchor classification.
type patternMatch struct {
	Kind string // "exact", "prefix", "suffix", "substring"
	Body string // the pattern text with its anchors stripped
}

// classifyPattern implements spec.md §4.6.2's anchor classification:
// `^…$` exact-match, `^…` prefix, `…$` suffix, else substring. This is
// a deliberately simplified stand-in for full regex matching — the
// emitted C calls strcmp/strncmp/strstr rather than linking a regex
// engine, which is sufficient for the anchor-only patterns spec.md
// describes.
func classifyPattern(pattern string) patternMatch {
	hasPrefix := strings.HasPrefix(pattern, "^")
	hasSuffix := strings.HasSuffix(pattern, "$")

	body := pattern
	if hasPrefix {
		body = strings.TrimPrefix(body, "^")
	}
	if hasSuffix {
		body = strings.TrimSuffix(body, "$")
	}

	switch {
	case hasPrefix && hasSuffix:
		return patternMatch{Kind: "exact", Body: body}
	case hasPrefix:
		return patternMatch{Kind: "prefix", Body: body}
	case hasSuffix:
		return patternMatch{Kind: "suffix", Body: body}
	default:
		return patternMatch{Kind: "substring", Body: body}
	}
}

// patternCheckExpr returns a C boolean expression that is true when val
// (a `const char *`) VIOLATES the pattern constraint, suitable for
// guarding a `goto erange` style failure path.
func patternCheckExpr(val string, pattern string) string {
	m := classifyPattern(pattern)
	quoted := cQuote(m.Body)

	switch m.Kind {
	case "exact":
		return "strcmp(" + val + ", " + quoted + ") != 0"
	case "prefix":
		return "strncmp(" + val + ", " + quoted + ", strlen(" + quoted + ")) != 0"
	case "suffix":
		return "!has_suffix(" + val + ", " + quoted + ")"
	default:
		return "strstr(" + val + ", " + quoted + ") == NULL"
	}
}

func cQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')

	return b.String()
}
