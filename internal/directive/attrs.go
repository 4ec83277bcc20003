package directive

import (
	"strings"

	"github.com/talav/tagparser"
)

// parseAttrs scans leading `[key:value]`/`[key=value]`/`[bareKey]`
// bracket clauses from the front of s, returning the parsed options and
// the remaining text (the description), per spec §4.4.
//
// Each bracket clause is fed to tagparser.Parse on its own, one at a
// time, rather than joined with commas into a single tag string: several
// attribute values (an `enum` list, an OAuth `scopes` list) are
// themselves comma-separated, and joining clauses with "," would make
// tagparser split a single clause's value across multiple bogus options.
// Parsing one clause at a time still reuses the same key[:=]value
// grammar that config/tags.go and internal/metadata/parse_openapi.go
// apply to Go struct tags, just invoked once per bracket.
//
// A malformed (unterminated) bracket clause stops attribute parsing;
// everything from that point on, including the offending bracket, is
// returned as part of the description.
func parseAttrs(s string) (options map[string]string, description string) {
	options = make(map[string]string)
	rest := strings.TrimSpace(s)
	parsedAny := false

	for strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			break
		}
		clause := rest[1:end]
		rest = strings.TrimSpace(rest[end+1:])

		tag, err := tagparser.Parse(clause)
		if err != nil {
			continue
		}
		for k, v := range tag.Options {
			options[k] = v
		}
		parsedAny = true
	}

	if !parsedAny {
		return nil, s
	}

	return options, rest
}

// parseBool accepts true|false|1|0|yes|no case-insensitively, and an
// empty string as true (bare-key boolean shorthand), per spec §4.4.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return false
	}
}

// splitScopes splits an OAuth/security scope list on commas, whitespace,
// and pipes, per spec §4.4's "comma/whitespace split". Pipe is accepted
// too because a scopes value reached through a bracket attribute (e.g.
// `[scopes:read|write]`) has already passed through tagparser.Parse,
// which treats a bare comma as its own option separator (the same
// convention the teacher's examples=val1|val2|val3 tag option uses for
// multi-valued attributes) — a comma-joined scopes list would be split
// apart before ever reaching this function.
func splitScopes(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '|'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}

	return out
}
