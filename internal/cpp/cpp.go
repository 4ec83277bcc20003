// Package cpp implements the preprocessor evaluator: include resolution,
// macro indexing, conditional-compilation tracking, and a constant
// expression evaluator over an already-tokenized C source.
//
// No macro expansion is performed on ordinary tokens; #define only
// indexes macros for the constant-expression evaluator's identifier
// lookups (spec §4.2.2).
package cpp

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// maxCondDepth bounds the conditional stack (spec §5: "at least 32").
const maxCondDepth = 32

var (
	// ErrConditionalStackOverflow is returned when nested #if directives
	// exceed maxCondDepth. Go's bounds-checked slices make memory
	// corruption impossible, so this is a clean error return rather than
	// the undefined behavior the distilled spec allows for.
	ErrConditionalStackOverflow = errors.New("cpp: conditional stack overflow")
	// ErrUnterminatedConditional is returned when #endif is missing for
	// an open #if/#ifdef/#ifndef.
	ErrUnterminatedConditional = errors.New("cpp: unterminated #if")
	// ErrUnexpectedDirective is returned for #else/#elif/#endif with no
	// matching #if.
	ErrUnexpectedDirective = errors.New("cpp: unexpected directive with no matching #if")
)

// Macro records a macro's shape without performing expansion.
type Macro struct {
	IsFunctionLike bool
	Variadic       bool
	Params         []string
	Value          string
}

// Context carries include search paths and the macro table across a Walk.
type Context struct {
	SearchPaths []string
	Macros      map[string]Macro
}

// NewContext creates a Context with an initialized macro table.
func NewContext(searchPaths ...string) *Context {
	return &Context{SearchPaths: searchPaths, Macros: make(map[string]Macro)}
}

// IncludeVisitor is invoked once per resolved #include. Returning true
// stops the remainder of the file scan.
type IncludeVisitor func(resolved string) (stop bool)

type condState int

const (
	stActive condState = iota
	stSkipping
	stSatisfied
	stElseSeen
)

type condFrame struct {
	state      condState
	parentOK   bool
	sawElse    bool
	anyBranch  bool
}

// Walk scans src's directive lines (lines whose first non-whitespace byte
// is '#') rooted at dir, resolving includes, indexing macros, and
// maintaining the conditional stack. visit is called for each resolved
// include; directives and includes inside disabled blocks are ignored.
//
// Walk operates on raw source lines rather than a token.List: directive
// lines are identified by their leading byte, exactly as spec §4.2
// describes, and the line-oriented view scans explicitly for a newline
// byte rather than relying on token-kind heuristics (spec §9's
// documented "eol" hazard, resolved here by construction).
func Walk(dir string, src []byte, ctx *Context, visit IncludeVisitor) error {
	w := &walker{dir: dir, src: src, ctx: ctx, visit: visit}

	lines := splitLines(src)
	for _, ln := range lines {
		if err := w.processLine(ln); err != nil {
			return err
		}
		if w.stopped {
			return nil
		}
	}
	if len(w.stack) != 0 {
		return ErrUnterminatedConditional
	}

	return nil
}

type walker struct {
	dir     string
	src     []byte
	ctx     *Context
	visit   IncludeVisitor
	stack   []condFrame
	stopped bool
}

// enabled reports whether the current position is inside an active
// (non-skipped) region.
func (w *walker) enabled() bool {
	if len(w.stack) == 0 {
		return true
	}

	return w.stack[len(w.stack)-1].state == stActive
}

func (w *walker) processLine(line string) error {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "#") {
		return nil
	}
	body := strings.TrimLeft(trimmed[1:], " \t")

	directive, rest := splitWord(body)
	switch directive {
	case "if":
		return w.pushIf(w.enabled() && evalTruth(rest, w.ctx))
	case "ifdef":
		name, _ := splitWord(rest)
		_, defined := w.ctx.Macros[name]

		return w.pushIf(w.enabled() && defined)
	case "ifndef":
		name, _ := splitWord(rest)
		_, defined := w.ctx.Macros[name]

		return w.pushIf(w.enabled() && !defined)
	case "elif":
		return w.handleElif(rest)
	case "else":
		return w.handleElse()
	case "endif":
		return w.handleEndif()
	case "define":
		if w.enabled() {
			w.handleDefine(rest)
		}

		return nil
	case "include":
		if w.enabled() {
			return w.handleInclude(rest)
		}

		return nil
	default:
		return nil
	}
}

func (w *walker) pushIf(taken bool) error {
	if len(w.stack) >= maxCondDepth {
		return ErrConditionalStackOverflow
	}
	parentOK := w.enabled()
	st := stSkipping
	if parentOK && taken {
		st = stActive
	}
	w.stack = append(w.stack, condFrame{state: st, parentOK: parentOK, anyBranch: parentOK && taken})

	return nil
}

func (w *walker) handleElif(rest string) error {
	if len(w.stack) == 0 {
		return ErrUnexpectedDirective
	}
	top := &w.stack[len(w.stack)-1]
	if top.sawElse {
		return ErrUnexpectedDirective
	}
	if !top.parentOK || top.anyBranch {
		top.state = stSkipping

		return nil
	}
	if evalTruth(rest, w.ctx) {
		top.state = stActive
		top.anyBranch = true
	} else {
		top.state = stSkipping
	}

	return nil
}

func (w *walker) handleElse() error {
	if len(w.stack) == 0 {
		return ErrUnexpectedDirective
	}
	top := &w.stack[len(w.stack)-1]
	if top.sawElse {
		return ErrUnexpectedDirective
	}
	top.sawElse = true
	if !top.parentOK || top.anyBranch {
		top.state = stSkipping
	} else {
		top.state = stActive
		top.anyBranch = true
	}

	return nil
}

func (w *walker) handleEndif() error {
	if len(w.stack) == 0 {
		return ErrUnexpectedDirective
	}
	w.stack = w.stack[:len(w.stack)-1]

	return nil
}

func (w *walker) handleDefine(rest string) {
	name, tail := splitWord(rest)
	if i := strings.IndexByte(name, '('); i > 0 {
		name, tail = name[:i], strings.TrimLeft(rest, " \t")[i:]
	}
	if name == "" {
		return
	}
	m := Macro{Value: strings.TrimSpace(tail)}
	if strings.HasPrefix(tail, "(") {
		end := strings.IndexByte(tail, ')')
		if end >= 0 {
			m.IsFunctionLike = true
			params := strings.Split(tail[1:end], ",")
			for _, p := range params {
				p = strings.TrimSpace(p)
				if p == "..." {
					m.Variadic = true

					continue
				}
				if p != "" {
					m.Params = append(m.Params, p)
				}
			}
			m.Value = strings.TrimSpace(tail[end+1:])
		}
	}
	w.ctx.Macros[name] = m
}

func (w *walker) handleInclude(rest string) error {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil
	}
	quoted := rest[0] == '"'
	angled := rest[0] == '<'
	if !quoted && !angled {
		return nil
	}
	closer := byte('"')
	if angled {
		closer = '>'
	}
	end := strings.IndexByte(rest[1:], closer)
	if end < 0 {
		return nil
	}
	name := rest[1 : end+1]

	var candidates []string
	if quoted {
		candidates = append(candidates, filepath.Join(w.dir, name))
	}
	for _, sp := range w.ctx.SearchPaths {
		candidates = append(candidates, filepath.Join(sp, name))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			if w.visit(c) {
				w.stopped = true
			}

			return nil
		}
	}

	return nil
}

func splitLines(src []byte) []string {
	return strings.Split(string(src), "\n")
}

func splitWord(s string) (word, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := 0
	for i < len(s) && !isSpaceByte(s[i]) {
		i++
	}

	return s[:i], strings.TrimLeft(s[i:], " \t")
}

func isSpaceByte(c byte) bool { return c == ' ' || c == '\t' }

// evalTruth evaluates rest as a constant expression and reports whether
// the (possibly erroring) result is non-zero. Expression errors are
// treated as false, per the evaluator's "return zero with an error flag"
// failure semantics.
func evalTruth(rest string, ctx *Context) bool {
	v, err := Eval(rest, ctx)
	if err != nil {
		return false
	}

	return v != 0
}
