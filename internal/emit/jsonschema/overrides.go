package jsonschema

import (
	"github.com/SamuelMarks/cdd-c-sub007/hook"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// Overrides is a concrete hook.SchemaRegistry/SchemaProvider/
// SchemaTransformer host: a caller registers named providers and
// transformers, and CodeToSchema/FromOpenAPI consult it for each type
// name before falling back to their own derivation. A nil *Overrides
// behaves as an empty one, so callers that don't need hooks can pass nil.
type Overrides struct {
	providers    map[string]hook.SchemaProvider
	transformers map[string]hook.SchemaTransformer
	schemas      map[string]*model.Schema
}

// NewOverrides returns an empty Overrides ready for registration.
func NewOverrides() *Overrides {
	return &Overrides{
		providers:    make(map[string]hook.SchemaProvider),
		transformers: make(map[string]hook.SchemaTransformer),
		schemas:      make(map[string]*model.Schema),
	}
}

// RegisterSchema makes name resolvable via Schema without a Provider,
// for external types referenced by $ref that aren't among the document's
// own schemas (e.g. a shared type defined in another file).
func (o *Overrides) RegisterSchema(name string, s *model.Schema) {
	o.schemas[name] = s
}

// RegisterProvider registers p to supply name's schema outright.
func (o *Overrides) RegisterProvider(name string, p hook.SchemaProvider) {
	o.providers[name] = p
}

// ProviderFunc adapts a plain function to hook.SchemaProvider, mirroring
// http.HandlerFunc's func-as-interface pattern.
type ProviderFunc func(hook.SchemaRegistry) *model.Schema

// Schema implements hook.SchemaProvider.
func (f ProviderFunc) Schema(r hook.SchemaRegistry) *model.Schema { return f(r) }

// RegisterTransformer registers t to post-process name's derived schema.
func (o *Overrides) RegisterTransformer(name string, t hook.SchemaTransformer) {
	o.transformers[name] = t
}

// Schema implements hook.SchemaRegistry: it resolves name to a schema
// via a registered provider, falling back to an explicitly registered
// schema, for use when resolving $ref targets outside the schemas being
// converted.
func (o *Overrides) Schema(name string) *model.Schema {
	if o == nil {
		return nil
	}
	if p, ok := o.providers[name]; ok {
		return p.Schema(o)
	}

	return o.schemas[name]
}

// Apply runs name's registered provider or transformer against s,
// returning s unchanged when neither is registered (or o is nil).
func (o *Overrides) Apply(name string, s *model.Schema) *model.Schema {
	if o == nil {
		return s
	}
	if p, ok := o.providers[name]; ok {
		return p.Schema(o)
	}
	if t, ok := o.transformers[name]; ok {
		return t.TransformSchema(o, s)
	}

	return s
}
