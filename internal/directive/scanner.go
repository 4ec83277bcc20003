// Package directive is a line-oriented scanner over a single block
// comment's raw text, recovering doc-directives (`@route`, `@param`, ...)
// into a model.DocMetadata, per spec §4.4. Grounded on
// internal/metadata/parse_openapi.go's tag-dispatch architecture, with
// the subject swapped from a Go struct-tag string to a doc-comment line.
package directive

import (
	"fmt"
	"strings"

	"github.com/SamuelMarks/cdd-c-sub007/config"
	"github.com/SamuelMarks/cdd-c-sub007/debug"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// Parse scans the raw text of one block comment and returns the
// DocMetadata it recovers. Unknown directives are silently dropped, per
// spec §4.4's closing note. Equivalent to (&Scanner{}).Parse with no
// warning collection; most callers should use Scanner instead so that
// dropped directives are not lost silently.
func Parse(comment string) *model.DocMetadata {
	doc, _ := (&Scanner{cfg: config.DefaultDirectiveConfig()}).Parse(comment)

	return doc
}

// Scanner is a line-oriented doc-directive parser configured with a
// config.DirectiveConfig, per spec §4.4. The zero value uses
// config.DefaultDirectiveConfig().
type Scanner struct {
	cfg config.DirectiveConfig
}

// NewScanner returns a Scanner using cfg's directive names.
func NewScanner(cfg config.DirectiveConfig) *Scanner {
	return &Scanner{cfg: cfg}
}

// Parse scans the raw text of one block comment, returning both the
// recovered DocMetadata and a WarnUnknownDirective for every `@name`/
// `\name` line whose name has no registered handler.
func (s *Scanner) Parse(comment string) (*model.DocMetadata, debug.Warnings) {
	doc := &model.DocMetadata{}
	var warnings debug.Warnings

	nameToCanonical, configurable := s.nameTable()

	for lineNo, rawLine := range strings.Split(comment, "\n") {
		line := stripDecorators(rawLine)
		if line == "" {
			continue
		}

		name, rest, ok := splitDirective(line)
		if !ok {
			continue
		}

		canonical, recognized := nameToCanonical[name]
		if !recognized {
			// One of the 14 renamable directive names is unrecognized
			// under its own default spelling once renamed away; anything
			// else falls through to the fixed handler table unchanged.
			if configurable[name] {
				recognized = false
			} else if _, known := handlers[name]; known {
				canonical, recognized = name, true
			}
		}

		if !recognized {
			warnings.Append(debug.NewWarning(debug.WarnUnknownDirective,
				fmt.Sprintf("#/doc/%d", lineNo), "unknown directive @"+name))

			continue
		}
		handlers[canonical](doc, rest)
	}

	return doc, warnings
}

// nameTable returns the configured-name -> canonical-handler-key mapping
// for the 14 renamable directives, plus the set of their default
// (canonical) spellings so a renamed-away default name is correctly
// rejected rather than silently falling back to the old handler.
func (s *Scanner) nameTable() (nameToCanonical map[string]string, defaultNames map[string]bool) {
	def := config.DefaultDirectiveConfig()
	nameToCanonical = make(map[string]string, 14)
	defaultNames = make(map[string]bool, 14)

	add := func(canonical, configured string) {
		defaultNames[canonical] = true
		if configured == "" {
			configured = canonical
		}
		nameToCanonical[configured] = canonical
	}
	add(def.Route, s.cfg.Route)
	add(def.Webhook, s.cfg.Webhook)
	add(def.Param, s.cfg.Param)
	add(def.Return, s.cfg.Return)
	add(def.Security, s.cfg.Security)
	add(def.SecurityScheme, s.cfg.SecurityScheme)
	add(def.Server, s.cfg.Server)
	add(def.RequestBody, s.cfg.RequestBody)
	add(def.Tag, s.cfg.Tag)
	add(def.TagMeta, s.cfg.TagMeta)
	add(def.Summary, s.cfg.Summary)
	add(def.Description, s.cfg.Description)
	add(def.OperationID, s.cfg.OperationID)
	add(def.Deprecated, s.cfg.Deprecated)

	return nameToCanonical, defaultNames
}

// stripDecorators trims leading `/**`, `*/`, `//`, and leading `*`
// line-comment decorators, per spec §4.4.
func stripDecorators(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "/**")
	s = strings.TrimPrefix(s, "/*")
	s = strings.TrimSuffix(s, "*/")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "//")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "*") {
		s = strings.TrimPrefix(s, "*")
	}

	return strings.TrimSpace(s)
}

// splitDirective recognizes a leading `@name` or `\name` directive,
// returning the directive name (without the leading sigil) and the
// remainder of the line.
func splitDirective(line string) (name, rest string, ok bool) {
	if line == "" || (line[0] != '@' && line[0] != '\\') {
		return "", "", false
	}
	body := line[1:]
	if body == "" || !isAlpha(body[0]) {
		return "", "", false
	}

	i := 0
	for i < len(body) && (isAlpha(body[i]) || isDigit(body[i])) {
		i++
	}

	return body[:i], strings.TrimSpace(body[i:]), true
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// splitFirstWord splits s at the first run of whitespace.
func splitFirstWord(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return s, ""
	}

	return s[:idx], strings.TrimSpace(s[idx+1:])
}
