// Package openapi is the top-level entry point: it wires the Tokenizer,
// C Inspector, Doc-Directive Parser, Intermediate Model/Aggregator, and
// Code Emitter packages into the four verbs spec §6's CLI exposes
// (to_openapi/c2openapi, from_openapi, code2schema, to_docs_json).
//
// Create a [Generator] with [New], configure it with functional options,
// then call one of its direction-specific methods.
package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/SamuelMarks/cdd-c-sub007/config"
	"github.com/SamuelMarks/cdd-c-sub007/debug"
	"github.com/SamuelMarks/cdd-c-sub007/example"
	"github.com/SamuelMarks/cdd-c-sub007/internal/directive"
	openapiemit "github.com/SamuelMarks/cdd-c-sub007/internal/emit/openapi"
	"github.com/SamuelMarks/cdd-c-sub007/internal/inspect"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
	"github.com/SamuelMarks/cdd-c-sub007/internal/token"
)

// Generator holds configuration for the C-source <-> OpenAPI bridge.
// All fields are public for functional options, but direct modification
// after construction is not recommended.
//
// Create instances using [New].
type Generator struct {
	// DirectiveConfig configures the doc-directive names the Doc-Directive
	// Parser dispatches on. Defaults to [config.DefaultDirectiveConfig].
	DirectiveConfig config.DirectiveConfig

	// Version is the target OpenAPI line ("3.0", "3.1", or "3.2").
	// Defaults to [openapiemit.DefaultVersion].
	Version string

	// ValidateSpec runs the emitted JSON back through the target
	// version's meta-schema before returning it.
	ValidateSpec bool

	// SchemaPrefix is the prefix used when a doc-directive's bare type
	// name is expanded into a "$ref".
	SchemaPrefix string

	scanner *directive.Scanner
}

// Option configures a [Generator] using the functional options pattern.
type Option func(*Generator)

// New creates a [Generator] with default configuration, then applies
// opts in order.
func New(opts ...Option) *Generator {
	g := &Generator{
		DirectiveConfig: config.DefaultDirectiveConfig(),
		Version:         openapiemit.DefaultVersion,
		SchemaPrefix:    "#/components/schemas/",
	}
	for _, opt := range opts {
		opt(g)
	}
	g.scanner = directive.NewScanner(g.DirectiveConfig)

	return g
}

// WithDirectiveConfig overrides the doc-directive names the scanner
// dispatches on.
func WithDirectiveConfig(cfg config.DirectiveConfig) Option {
	return func(g *Generator) { g.DirectiveConfig = cfg }
}

// WithVersion sets the target OpenAPI line ("3.0", "3.1", or "3.2").
func WithVersion(version string) Option {
	return func(g *Generator) { g.Version = version }
}

// WithValidation enables or disables JSON Schema validation of the
// generated OpenAPI document against the target version's meta-schema.
func WithValidation(enabled bool) Option {
	return func(g *Generator) { g.ValidateSpec = enabled }
}

// WithSchemaPrefix sets the prefix used when expanding a doc-directive's
// bare type name into a "$ref".
func WithSchemaPrefix(prefix string) Option {
	return func(g *Generator) { g.SchemaPrefix = prefix }
}

// ToOpenAPI walks one C source buffer, registers its struct/enum type
// definitions and doc-directive operations into a fresh [model.Spec],
// and projects the result onto g.Version, per spec §6's to_openapi verb.
func (g *Generator) ToOpenAPI(ctx context.Context, src []byte) (*Result, error) {
	spec := model.NewSpec()
	warnings, err := g.buildSpec(spec, src)
	if err != nil {
		return nil, err
	}

	return g.export(ctx, spec, warnings)
}

// ToOpenAPIMerge is ToOpenAPI's c2openapi analogue: it folds src's type
// definitions and operations onto an already-built base spec instead of
// a fresh one, per spec §6's "like to_openapi with merge-onto-base".
func (g *Generator) ToOpenAPIMerge(ctx context.Context, base *model.Spec, src []byte) (*Result, error) {
	if base == nil {
		base = model.NewSpec()
	}

	warnings, err := g.buildSpec(base, src)
	if err != nil {
		return nil, err
	}

	return g.export(ctx, base, warnings)
}

// buildSpec extracts type definitions and doc-directive metadata from
// src and folds both into spec, returning warnings accumulated along the
// way. Grounded on api.go's (teacher) processOperations/generateSpec
// pair, generalized from Go reflect.Type-keyed operations to this
// domain's doc-comment-keyed ones.
func (g *Generator) buildSpec(spec *model.Spec, src []byte) (debug.Warnings, error) {
	toks := token.Tokenize(src)

	defs, err := inspect.ExtractTypeDefs(src, toks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err := model.RegisterTypes(spec, defs); err != nil {
		return nil, err
	}

	var warnings debug.Warnings
	for _, block := range commentBlocks(src, toks) {
		doc, warns := g.scanner.Parse(block)
		warnings = append(warnings, warns...)
		if doc == nil {
			continue
		}
		if err := g.applyDoc(spec, doc); err != nil {
			return nil, err
		}
	}

	return warnings, nil
}

// applyDoc folds one comment block's parsed [model.DocMetadata] into
// spec: a route-bearing block becomes an operation (or webhook
// operation); everything else contributes global metadata (info,
// servers, security schemes, tag metadata).
func (g *Generator) applyDoc(spec *model.Spec, doc *model.DocMetadata) error {
	if doc.Route != "" {
		for _, tag := range doc.Tags {
			model.EnsureTag(spec, tag)
		}

		op := g.docToOperation(doc)
		if doc.IsWebhook {
			return model.AddWebhookOperation(spec, doc.Route, op)
		}

		return model.AddOperation(spec, doc.Route, op)
	}

	if err := model.ApplyGlobalMeta(spec, doc); err != nil {
		return err
	}

	for i := range doc.SecuritySchemes {
		if err := model.AddSecurityScheme(spec, &doc.SecuritySchemes[i]); err != nil {
			return err
		}
	}

	if len(doc.TagMeta) > 0 {
		if err := model.MergeTags(spec, doc.TagMeta); err != nil {
			return err
		}
	}

	return nil
}

// docToOperation converts one route-bearing DocMetadata into a
// model.Operation, expanding its parameter/return/request-body
// sub-records. Grounded on api.go's (teacher) convertOperationToModel,
// with RequestBuilder/ResponseBuilder's reflect-driven field walk
// replaced by a direct doc-directive field walk.
func (g *Generator) docToOperation(doc *model.DocMetadata) *model.Operation {
	op := &model.Operation{
		Method:      strings.ToUpper(doc.Method),
		OperationID: doc.OperationID,
		Summary:     doc.Summary,
		Description: doc.Description,
		Tags:        doc.Tags,
		Deprecated:  doc.Deprecated,
		Responses:   make(map[string]*model.Response),
	}

	for _, p := range doc.Params {
		op.Parameters = append(op.Parameters, g.paramDocToParameter(p))
	}

	for _, r := range doc.Returns {
		status, resp := g.returnDocToResponse(r)
		op.Responses[status] = resp
	}
	for _, h := range doc.ResponseHeaders {
		if resp, ok := op.Responses[firstNonEmpty(h.StatusCode, "200")]; ok {
			if resp.Headers == nil {
				resp.Headers = make(map[string]*model.Header)
			}
			resp.Headers[h.Name] = &model.Header{Description: h.Description}
		}
	}
	if len(op.Responses) == 0 {
		op.Responses["200"] = &model.Response{Description: "OK"}
	}

	if doc.RequestBody != nil {
		op.RequestBody = g.requestBodyDocToModel(doc.RequestBody)
	}

	for _, s := range doc.Security {
		op.Security = append(op.Security, model.SecurityRequirement{s.Name: s.Scopes})
	}

	return op
}

func (g *Generator) schemaRef(name string) *model.Schema {
	typeName, isPrimitive := model.ResolveRef(name)
	if isPrimitive {
		return &model.Schema{Type: typeName}
	}

	return &model.Schema{Ref: g.SchemaPrefix + typeName}
}

func (g *Generator) paramDocToParameter(p model.ParamDoc) model.Parameter {
	param := model.Parameter{
		Name:          p.Name,
		In:            p.In,
		Description:   p.Description,
		Required:      p.Required,
		Deprecated:    p.Deprecated,
		Style:         p.Style,
		Explode:       p.Explode,
		AllowReserved: p.AllowReserved,
	}
	if p.Example != "" {
		param.Example = p.Example
	}

	schema := g.schemaRef(firstNonEmpty(p.ItemSchema, "string"))
	schema.Format = p.Format

	if p.ContentType != "" {
		param.Content = map[string]*model.MediaType{p.ContentType: {Schema: schema}}
	} else {
		param.Schema = schema
	}

	return param
}

func (g *Generator) returnDocToResponse(r model.ReturnDoc) (string, *model.Response) {
	status := firstNonEmpty(r.StatusCode, "200")
	resp := &model.Response{Description: firstNonEmpty(r.Description, r.Summary, "OK")}

	if r.ItemSchema != "" {
		ct := firstNonEmpty(r.ContentType, "application/json")
		resp.Content = map[string]*model.MediaType{ct: {Schema: g.schemaRef(r.ItemSchema)}}
	}

	return status, resp
}

func (g *Generator) requestBodyDocToModel(doc *model.RequestBodyDoc) *model.RequestBody {
	ct := firstNonEmpty(doc.ContentType, "application/json")
	rb := &model.RequestBody{Description: doc.Description, Required: doc.Required}
	rb.Content = map[string]*model.MediaType{ct: {Schema: g.schemaRef(firstNonEmpty(doc.Schema, "object"))}}

	return rb
}

// addOperationExamples attaches a named example catalog (see the example
// package) to a response or request body's media types. Exported for
// [Generator.ToDocsJSON] and callers building operations programmatically,
// since doc-directive catalogs are assembled separately from the
// primary ToOpenAPI pipeline.
func addOperationExamples(content map[string]*model.MediaType, examples []example.Example) {
	if len(examples) == 0 {
		return
	}
	for _, mt := range content {
		if mt.Examples == nil {
			mt.Examples = make(map[string]model.Example)
		}
		for _, ex := range examples {
			m := model.Example{Summary: ex.Summary(), Description: ex.Description()}
			if ex.IsExternal() {
				m.ExternalValue = ex.ExternalValue()
			} else {
				m.Value = ex.Value()
			}
			mt.Examples[ex.Name()] = m
		}
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}

// commentBlocks extracts the raw text of every doc-comment block in src:
// a maximal run of consecutive line comments (only whitespace/newlines
// may separate them), or a single block comment. Each block is handed
// independently to the Doc-Directive Parser, matching
// model.DocMetadata's own "per-comment-block record" contract rather
// than associating a block with whatever declaration follows it.
func commentBlocks(src []byte, toks token.List) []string {
	var blocks []string

	for i := 0; i < len(toks); {
		switch toks[i].Kind {
		case token.BlockComment:
			blocks = append(blocks, toks[i].Text(src))
			i++
		case token.LineComment:
			var b strings.Builder
		run:
			for i < len(toks) {
				switch toks[i].Kind {
				case token.LineComment:
					if b.Len() > 0 {
						b.WriteByte('\n')
					}
					b.WriteString(toks[i].Text(src))
				case token.Whitespace, token.Newline:
					// allowed between consecutive line-comment tokens
				default:
					break run
				}
				i++
			}
			blocks = append(blocks, b.String())
		default:
			i++
		}
	}

	return blocks
}

// DocsCatalogEntry is one operation's example snippet catalog entry,
// per spec §6's to_docs_json "per-operation example snippet catalog".
type DocsCatalogEntry struct {
	Route       string                             `json:"route"`
	Method      string                             `json:"method"`
	OperationID string                             `json:"operationId,omitempty"`
	Summary     string                             `json:"summary,omitempty"`
	RequestBody map[string][]DocsExample           `json:"requestBody,omitempty"`
	Responses   map[string]map[string][]DocsExample `json:"responses,omitempty"`
}

// DocsExample is one named example snippet within a DocsCatalogEntry.
type DocsExample struct {
	Name          string `json:"name"`
	Summary       string `json:"summary,omitempty"`
	Description   string `json:"description,omitempty"`
	Value         any    `json:"value,omitempty"`
	ExternalValue string `json:"externalValue,omitempty"`
	Snippet       string `json:"snippet,omitempty"`
}

// ToDocsJSON builds the to_docs_json verb's per-operation example
// catalog from spec's operations, honoring spec §6's --no-imports/
// --no-wrapping flag pair: noImports drops each entry's operationId/
// summary fields, noWrapping emits each example's raw Value instead of
// a fenced-code Snippet string. extraExamples, keyed "METHOD route",
// lets a caller attach example.Example values the doc-directive pipeline
// never produces (it only carries a bare @example string) before the
// catalog is built.
func (g *Generator) ToDocsJSON(spec *model.Spec, extraExamples map[string][]example.Example, noImports, noWrapping bool) ([]byte, error) {
	var entries []DocsCatalogEntry
	for route, item := range spec.Paths {
		for method, op := range item.Operations {
			g.injectExamples(route, method, op, extraExamples)
			entries = append(entries, g.docsEntry(route, method, op, noImports, noWrapping))
		}
		for method, op := range item.AdditionalOperations {
			g.injectExamples(route, method, op, extraExamples)
			entries = append(entries, g.docsEntry(route, method, op, noImports, noWrapping))
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Route != entries[j].Route {
			return entries[i].Route < entries[j].Route
		}

		return entries[i].Method < entries[j].Method
	})

	return json.MarshalIndent(entries, "", "  ")
}

func (g *Generator) injectExamples(route, method string, op *model.Operation, extra map[string][]example.Example) {
	exs := extra[method+" "+route]
	if len(exs) == 0 {
		return
	}
	if op.RequestBody != nil {
		addOperationExamples(op.RequestBody.Content, exs)
	}
	for _, resp := range op.Responses {
		addOperationExamples(resp.Content, exs)
	}
}

func (g *Generator) docsEntry(route, method string, op *model.Operation, noImports, noWrapping bool) DocsCatalogEntry {
	e := DocsCatalogEntry{Route: route, Method: method}
	if !noImports {
		e.OperationID = op.OperationID
		e.Summary = op.Summary
	}
	if op.RequestBody != nil {
		e.RequestBody = docsExamplesFromContent(op.RequestBody.Content, noWrapping)
	}
	if len(op.Responses) > 0 {
		e.Responses = make(map[string]map[string][]DocsExample, len(op.Responses))
		for status, resp := range op.Responses {
			if m := docsExamplesFromContent(resp.Content, noWrapping); len(m) > 0 {
				e.Responses[status] = m
			}
		}
	}

	return e
}

func docsExamplesFromContent(content map[string]*model.MediaType, noWrapping bool) map[string][]DocsExample {
	if len(content) == 0 {
		return nil
	}

	out := make(map[string][]DocsExample, len(content))
	for ct, mt := range content {
		if len(mt.Examples) == 0 {
			continue
		}

		names := make([]string, 0, len(mt.Examples))
		for name := range mt.Examples {
			names = append(names, name)
		}
		sort.Strings(names)

		exs := make([]DocsExample, 0, len(names))
		for _, name := range names {
			ex := mt.Examples[name]
			d := DocsExample{Name: name, Summary: ex.Summary, Description: ex.Description, ExternalValue: ex.ExternalValue}
			if ex.ExternalValue == "" {
				if noWrapping {
					d.Value = ex.Value
				} else {
					d.Snippet = wrapSnippet(ct, ex.Value)
				}
			}
			exs = append(exs, d)
		}
		out[ct] = exs
	}

	return out
}

func wrapSnippet(contentType string, value any) string {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return ""
	}

	return fmt.Sprintf("```%s\n%s\n```", snippetLang(contentType), raw)
}

func snippetLang(contentType string) string {
	switch {
	case strings.Contains(contentType, "json"):
		return "json"
	case strings.Contains(contentType, "xml"):
		return "xml"
	default:
		return ""
	}
}

// export projects spec onto g.Version, wrapping the emitter's result in
// this package's [Result] type.
func (g *Generator) export(ctx context.Context, spec *model.Spec, warnings debug.Warnings) (*Result, error) {
	result, err := openapiemit.Emit(ctx, spec, openapiemit.Options{Version: g.Version, Validate: g.ValidateSpec})
	if err != nil {
		return nil, err
	}

	return &Result{JSON: result.Result, Warnings: append(warnings, result.Warnings...)}, nil
}

