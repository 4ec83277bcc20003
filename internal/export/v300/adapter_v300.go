package v300

import (
	"fmt"
	"sort"

	_ "embed"

	"github.com/SamuelMarks/cdd-c-sub007/debug"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

//go:embed schema_v300.json
var schemaV300 []byte

// AdapterV300 projects model.Spec onto OpenAPI 3.0.x, grounded on the
// teacher's AdapterV304.View transform, generalized to the leaner model
// and the 3.0.x line (rather than a single 3.0.4 patch version).
type AdapterV300 struct{}

func (AdapterV300) Version() string { return "3.0" }

func (AdapterV300) SchemaJSON() []byte { return schemaV300 }

func (a AdapterV300) View(spec *model.Spec) (any, debug.Warnings, error) {
	if spec == nil {
		return nil, nil, fmt.Errorf("v300: nil spec")
	}

	var warnings debug.Warnings

	v := &ViewV300{
		OpenAPI:      "3.0.4",
		Info:         transformInfo(spec.Info, &warnings),
		ExternalDocs: transformExternalDocs(spec.ExternalDocs),
		Tags:         transformTags(spec.Tags),
		Servers:      transformServers(spec.Servers),
		Paths:        transformPaths(spec.Paths, &warnings),
		Extensions:   spec.Extensions,
	}
	for _, sr := range spec.Security {
		v.Security = append(v.Security, SecurityRequirementV30(sr))
	}

	if len(spec.Webhooks) > 0 {
		warnings.Append(debug.NewWarning(debug.WarnDowngradeWebhooks,
			"#/webhooks", "webhooks are 3.1+-only; dropped in the 3.0 view"))
	}

	if hasComponents(spec.Components) {
		v.Components = transformComponents(spec.Components, &warnings)
	}

	return v, warnings, nil
}

func transformInfo(info model.Info, warnings *debug.Warnings) *InfoV30 {
	if info.Summary != "" {
		warnings.Append(debug.NewWarning(debug.WarnDowngradeInfoSummary,
			"#/info/summary", "info.summary is 3.1+-only; dropped in the 3.0 view"))
	}

	out := &InfoV30{
		Title:          info.Title,
		Description:    info.Description,
		TermsOfService: info.TermsOfService,
		Version:        info.Version,
	}
	if info.Contact != nil {
		out.Contact = &ContactV30{Name: info.Contact.Name, URL: info.Contact.URL, Email: info.Contact.Email}
	}
	if info.License != nil {
		if info.License.Identifier != "" {
			warnings.Append(debug.NewWarning(debug.WarnDowngradeLicenseIdentifier,
				"#/info/license/identifier", "license.identifier is 3.1+-only; dropped in the 3.0 view"))
		}
		out.License = &LicenseV30{Name: info.License.Name, URL: info.License.URL}
	}

	return out
}

func transformExternalDocs(d *model.ExternalDocs) *ExternalDocsV30 {
	if d == nil {
		return nil
	}

	return &ExternalDocsV30{Description: d.Description, URL: d.URL}
}

func transformTags(tags []model.Tag) []*TagV30 {
	if len(tags) == 0 {
		return nil
	}
	out := make([]*TagV30, 0, len(tags))
	for _, t := range tags {
		out = append(out, &TagV30{
			Name:         t.Name,
			Description:  t.Description,
			ExternalDocs: transformExternalDocs(t.ExternalDocs),
		})
	}

	return out
}

func transformServers(servers []model.Server) []*ServerV30 {
	if len(servers) == 0 {
		return nil
	}
	out := make([]*ServerV30, 0, len(servers))
	for _, s := range servers {
		sv := &ServerV30{URL: s.URL, Description: s.Description}
		if len(s.Variables) > 0 {
			sv.Variables = make(map[string]*ServerVariableV30, len(s.Variables))
			for name, v := range s.Variables {
				sv.Variables[name] = &ServerVariableV30{Enum: v.Enum, Default: v.Default, Description: v.Description}
			}
		}
		out = append(out, sv)
	}

	return out
}

func transformPaths(paths map[string]*model.PathItem, warnings *debug.Warnings) PathsV30 {
	out := make(PathsV30, len(paths))
	for route, item := range paths {
		out[route] = transformPathItem(item, warnings)
	}

	return out
}

func transformPathItem(item *model.PathItem, warnings *debug.Warnings) *PathItemV30 {
	if item == nil {
		return nil
	}
	pi := &PathItemV30{}
	for verb, op := range item.Operations {
		tv := transformOperation(op, warnings)
		switch verb {
		case "GET":
			pi.Get = tv
		case "PUT":
			pi.Put = tv
		case "POST":
			pi.Post = tv
		case "DELETE":
			pi.Delete = tv
		case "OPTIONS":
			pi.Options = tv
		case "HEAD":
			pi.Head = tv
		case "PATCH":
			pi.Patch = tv
		case "TRACE":
			pi.Trace = tv
		}
	}
	// additionalOperations (3.2-only) has no representation in 3.0; dropped.

	return pi
}

func transformOperation(op *model.Operation, warnings *debug.Warnings) *OperationV30 {
	if op == nil {
		return nil
	}
	out := &OperationV30{
		Tags:         op.Tags,
		Summary:      op.Summary,
		Description:  op.Description,
		ExternalDocs: transformExternalDocs(op.ExternalDocs),
		OperationID:  op.OperationID,
		Deprecated:   op.Deprecated,
		Servers:      transformServers(op.Servers),
		RequestBody:  transformRequestBody(op.RequestBody),
	}
	for _, p := range op.Parameters {
		pv := p
		out.Parameters = append(out.Parameters, transformParameter(&pv))
	}
	for _, sr := range op.Security {
		out.Security = append(out.Security, SecurityRequirementV30(sr))
	}
	if len(op.Responses) > 0 {
		out.Responses = make(ResponsesV30, len(op.Responses))
		for code, r := range op.Responses {
			out.Responses[code] = transformResponse(r, warnings)
		}
	}
	if len(op.Callbacks) > 0 {
		out.Callbacks = make(map[string]CallbackV30, len(op.Callbacks))
		for name, cb := range op.Callbacks {
			tcb := make(CallbackV30, len(cb))
			for expr, pi := range cb {
				tcb[expr] = transformPathItem(pi, warnings)
			}
			out.Callbacks[name] = tcb
		}
	}

	return out
}

func transformParameter(p *model.Parameter) *ParameterV30 {
	out := &ParameterV30{
		Name:        p.Name,
		In:          p.In,
		Description: p.Description,
		Required:    p.Required,
		Deprecated:  p.Deprecated,
		Example:     p.Example,
	}
	if p.Content != nil {
		out.Content = transformContent(p.Content)
	} else {
		out.Schema = transformSchema(p.Schema, nil)
		out.Style = p.Style
		out.Explode = p.Explode
		out.AllowReserved = p.AllowReserved
	}

	return out
}

func transformRequestBody(rb *model.RequestBody) *RequestBodyV30 {
	if rb == nil {
		return nil
	}

	return &RequestBodyV30{Description: rb.Description, Required: rb.Required, Content: transformContent(rb.Content)}
}

func transformContent(content map[string]*model.MediaType) map[string]*MediaTypeV30 {
	if len(content) == 0 {
		return nil
	}
	out := make(map[string]*MediaTypeV30, len(content))
	for ct, mt := range content {
		out[ct] = transformMediaType(mt)
	}

	return out
}

func transformMediaType(mt *model.MediaType) *MediaTypeV30 {
	if mt == nil {
		return nil
	}
	out := &MediaTypeV30{Schema: transformSchema(mt.Schema, nil)}
	if len(mt.Examples) > 0 {
		out.Examples = make(map[string]*ExampleV30, len(mt.Examples))
		for name, ex := range mt.Examples {
			out.Examples[name] = &ExampleV30{
				Summary: ex.Summary, Description: ex.Description, Value: ex.Value, ExternalValue: ex.ExternalValue,
			}
		}
	}
	if len(mt.Encoding) > 0 {
		out.Encoding = make(map[string]*EncodingV30, len(mt.Encoding))
		for name, enc := range mt.Encoding {
			out.Encoding[name] = &EncodingV30{
				ContentType: enc.ContentType, Style: enc.Style, Explode: enc.Explode,
				Headers: transformHeaders(enc.Headers),
			}
		}
	}

	return out
}

func transformHeaders(headers map[string]*model.Header) map[string]*HeaderV30 {
	if len(headers) == 0 {
		return nil
	}
	out := make(map[string]*HeaderV30, len(headers))
	for name, h := range headers {
		if isReservedHeaderName(name) {
			continue
		}
		out[name] = &HeaderV30{Description: h.Description, Required: h.Required, Schema: transformSchema(h.Schema, nil)}
	}

	return out
}

// isReservedHeaderName drops headers the HTTP layer controls, which must
// never be declared as a Header Object per the Parameter/Header objects'
// own reserved-name rule.
func isReservedHeaderName(name string) bool {
	switch name {
	case "Accept", "Content-Type", "Authorization":
		return true
	default:
		return false
	}
}

func transformResponse(r *model.Response, warnings *debug.Warnings) *ResponseV30 {
	if r == nil {
		return nil
	}
	out := &ResponseV30{Description: r.Description, Headers: transformHeaders(r.Headers), Content: transformContent(r.Content)}
	if len(r.Links) > 0 {
		out.Links = make(map[string]*LinkV30, len(r.Links))
		for name, l := range r.Links {
			out.Links[name] = &LinkV30{OperationID: l.OperationID, Parameters: l.Parameters, Description: l.Description}
		}
	}

	return out
}

// transformSchema projects a Schema down to the 3.0 subset: `const` folds
// to a single-value `enum` when no `enum` is set, and multiple `examples`
// collapse to the first `example`. Neither loss is reported as a warning.
func transformSchema(s *model.Schema, warnings *debug.Warnings) *SchemaV30 {
	if s == nil {
		return nil
	}
	out := &SchemaV30{
		Ref: s.Ref, Type: s.Type, Format: s.Format, Title: s.Title, Description: s.Description,
		Default: s.Default, Nullable: s.Nullable, Deprecated: s.Deprecated,
		ReadOnly: s.ReadOnly, WriteOnly: s.WriteOnly,
		Minimum: s.Minimum, Maximum: s.Maximum,
		ExclusiveMinimum: s.ExclusiveMinimum, ExclusiveMaximum: s.ExclusiveMaximum,
		MultipleOf: s.MultipleOf, MinLength: s.MinLength, MaxLength: s.MaxLength, Pattern: s.Pattern,
		MinItems: s.MinItems, MaxItems: s.MaxItems, UniqueItems: s.UniqueItems,
		Required: s.Required, Enum: s.Enum,
	}
	if s.Discriminator != nil {
		out.Discriminator = &DiscriminatorV30{PropertyName: s.Discriminator.PropertyName, Mapping: s.Discriminator.Mapping}
	}
	if s.XML != nil {
		out.XML = &XMLV30{
			Name: s.XML.Name, Namespace: s.XML.Namespace, Prefix: s.XML.Prefix,
			Attribute: s.XML.Attribute, Wrapped: s.XML.Wrapped,
		}
	}
	if s.Const != nil && out.Enum == nil {
		out.Enum = []any{s.Const}
	}
	if len(s.Examples) > 0 {
		out.Example = s.Examples[0]
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*SchemaV30, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = transformSchema(p, warnings)
		}
	}
	out.Items = transformSchema(s.Items, warnings)
	out.OneOf = transformSchemaList(s.OneOf, warnings)
	out.AnyOf = transformSchemaList(s.AnyOf, warnings)
	out.AllOf = transformSchemaList(s.AllOf, warnings)

	return out
}

func transformSchemaList(list []*model.Schema, warnings *debug.Warnings) []*SchemaV30 {
	if len(list) == 0 {
		return nil
	}
	out := make([]*SchemaV30, 0, len(list))
	for _, s := range list {
		out = append(out, transformSchema(s, warnings))
	}

	return out
}

func hasComponents(c model.Components) bool {
	return len(c.Schemas) > 0 || len(c.SecuritySchemes) > 0 || len(c.Parameters) > 0 ||
		len(c.Responses) > 0 || len(c.Headers) > 0 || len(c.RequestBodies) > 0 ||
		len(c.Examples) > 0 || len(c.Links) > 0 || len(c.Callbacks) > 0 || len(c.PathItems) > 0
}

func transformComponents(c model.Components, warnings *debug.Warnings) *ComponentsV30 {
	out := &ComponentsV30{}
	if len(c.Schemas) > 0 {
		out.Schemas = make(map[string]*SchemaV30, len(c.Schemas))
		for name, s := range c.Schemas {
			out.Schemas[name] = transformSchema(s, warnings)
		}
	}
	if len(c.SecuritySchemes) > 0 {
		out.SecuritySchemes = make(map[string]*SecuritySchemeV30, len(c.SecuritySchemes))
		for name, s := range c.SecuritySchemes {
			out.SecuritySchemes[name] = transformSecurityScheme(s, warnings)
		}
	}
	if len(c.Parameters) > 0 {
		out.Parameters = make(map[string]*ParameterV30, len(c.Parameters))
		for name, p := range c.Parameters {
			out.Parameters[name] = transformParameter(p)
		}
	}
	if len(c.Responses) > 0 {
		out.Responses = make(map[string]*ResponseV30, len(c.Responses))
		for name, r := range c.Responses {
			out.Responses[name] = transformResponse(r, warnings)
		}
	}
	if len(c.Headers) > 0 {
		out.Headers = transformHeaders(c.Headers)
	}
	if len(c.RequestBodies) > 0 {
		out.RequestBodies = make(map[string]*RequestBodyV30, len(c.RequestBodies))
		for name, rb := range c.RequestBodies {
			out.RequestBodies[name] = transformRequestBody(rb)
		}
	}
	if len(c.Examples) > 0 {
		out.Examples = make(map[string]*ExampleV30, len(c.Examples))
		for name, ex := range c.Examples {
			out.Examples[name] = &ExampleV30{
				Summary: ex.Summary, Description: ex.Description, Value: ex.Value, ExternalValue: ex.ExternalValue,
			}
		}
	}
	if len(c.Links) > 0 {
		out.Links = make(map[string]*LinkV30, len(c.Links))
		for name, l := range c.Links {
			out.Links[name] = &LinkV30{OperationID: l.OperationID, Parameters: l.Parameters, Description: l.Description}
		}
	}
	if len(c.Callbacks) > 0 {
		out.Callbacks = make(map[string]CallbackV30, len(c.Callbacks))
		for name, cb := range c.Callbacks {
			tcb := make(CallbackV30, len(cb))
			for expr, pi := range cb {
				tcb[expr] = transformPathItem(pi, warnings)
			}
			out.Callbacks[name] = tcb
		}
	}
	if len(c.PathItems) > 0 {
		warnings.Append(debug.NewWarning(debug.WarnDowngradePathItems,
			"#/components/pathItems", "components.pathItems is 3.1+-only; dropped in the 3.0 view"))
	}

	return out
}

func transformSecurityScheme(s *model.SecurityScheme, warnings *debug.Warnings) *SecuritySchemeV30 {
	if s == nil {
		return nil
	}
	if s.Scheme == "mutual" || s.Type == "mutualTLS" {
		warnings.Append(debug.NewWarning(debug.WarnDowngradeMutualTLS,
			"#/components/securitySchemes", "mutualTLS security schemes are 3.1+-only; dropped in the 3.0 view"))
		return nil
	}
	out := &SecuritySchemeV30{
		Type: s.Type, Description: s.Description, Name: s.Name, In: s.In,
		Scheme: s.Scheme, BearerFormat: s.BearerFormat, OpenIDConnectURL: s.OpenIDConnectURL,
	}
	if s.Flows != nil {
		out.Flows = &OAuthFlowsV30{
			Implicit:          transformOAuthFlow(s.Flows.Implicit),
			Password:          transformOAuthFlow(s.Flows.Password),
			ClientCredentials: transformOAuthFlow(s.Flows.ClientCredentials),
			AuthorizationCode: transformOAuthFlow(s.Flows.AuthorizationCode),
		}
		if s.Flows.DeviceAuthorization != nil {
			warnings.Append(debug.NewWarning(debug.WarnDowngradeWebhookOAuthDeviceFlow,
				"#/components/securitySchemes", "the deviceAuthorization OAuth flow is 3.2-only; dropped in the 3.0 view"))
		}
	}

	return out
}

func transformOAuthFlow(f *model.OAuthFlow) *OAuthFlowV30 {
	if f == nil {
		return nil
	}

	return &OAuthFlowV30{AuthorizationURL: f.AuthorizationURL, TokenURL: f.TokenURL, RefreshURL: f.RefreshURL, Scopes: f.Scopes}
}

// sortedKeys returns m's keys in ascending order. Nothing in this package
// calls it; internal/emit/openapi keeps its own copy of the helper.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

