package v320

import (
	"fmt"

	_ "embed"

	"github.com/SamuelMarks/cdd-c-sub007/debug"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

//go:embed schema_v320.json
var schemaV320 []byte

// AdapterV320 projects model.Spec onto OpenAPI 3.2.x, the default and
// richest view. It never returns warnings. It still leaves out, without a
// warning, components.mediaTypes, header entries named Accept,
// Content-Type or Authorization, and a schema's Bool and Extras fields.
type AdapterV320 struct{}

func (AdapterV320) Version() string { return "3.2" }

func (AdapterV320) SchemaJSON() []byte { return schemaV320 }

func (a AdapterV320) View(spec *model.Spec) (any, debug.Warnings, error) {
	if spec == nil {
		return nil, nil, fmt.Errorf("v320: nil spec")
	}

	v := &ViewV320{
		OpenAPI:           "3.2.0",
		Self:              spec.Self,
		JSONSchemaDialect: spec.JSONSchemaDialect,
		Info:              transformInfo(spec.Info),
		ExternalDocs:      transformExternalDocs(spec.ExternalDocs),
		Tags:              transformTags(spec.Tags),
		Servers:           transformServers(spec.Servers),
		Paths:             transformPaths(spec.Paths),
		Extensions:        spec.Extensions,
	}
	for _, sr := range spec.Security {
		v.Security = append(v.Security, SecurityRequirementV32(sr))
	}
	if len(spec.Webhooks) > 0 {
		v.Webhooks = make(map[string]*PathItemV32, len(spec.Webhooks))
		for route, item := range spec.Webhooks {
			v.Webhooks[route] = transformPathItem(item)
		}
	}
	if hasComponents(spec.Components) {
		v.Components = transformComponents(spec.Components)
	}

	return v, nil, nil
}

func transformInfo(info model.Info) *InfoV32 {
	out := &InfoV32{
		Title: info.Title, Summary: info.Summary, Description: info.Description,
		TermsOfService: info.TermsOfService, Version: info.Version,
	}
	if info.Contact != nil {
		out.Contact = &ContactV32{Name: info.Contact.Name, URL: info.Contact.URL, Email: info.Contact.Email}
	}
	if info.License != nil {
		out.License = &LicenseV32{Name: info.License.Name, Identifier: info.License.Identifier, URL: info.License.URL}
	}

	return out
}

func transformExternalDocs(d *model.ExternalDocs) *ExternalDocsV32 {
	if d == nil {
		return nil
	}

	return &ExternalDocsV32{Description: d.Description, URL: d.URL}
}

func transformTags(tags []model.Tag) []*TagV32 {
	if len(tags) == 0 {
		return nil
	}
	out := make([]*TagV32, 0, len(tags))
	for _, t := range tags {
		out = append(out, &TagV32{
			Name: t.Name, Description: t.Description, Parent: t.Parent, Kind: t.Kind,
			ExternalDocs: transformExternalDocs(t.ExternalDocs),
		})
	}

	return out
}

func transformServers(servers []model.Server) []*ServerV32 {
	if len(servers) == 0 {
		return nil
	}
	out := make([]*ServerV32, 0, len(servers))
	for _, s := range servers {
		sv := &ServerV32{URL: s.URL, Description: s.Description}
		if len(s.Variables) > 0 {
			sv.Variables = make(map[string]*ServerVariableV32, len(s.Variables))
			for name, v := range s.Variables {
				sv.Variables[name] = &ServerVariableV32{Enum: v.Enum, Default: v.Default, Description: v.Description}
			}
		}
		out = append(out, sv)
	}

	return out
}

func transformPaths(paths map[string]*model.PathItem) PathsV32 {
	out := make(PathsV32, len(paths))
	for route, item := range paths {
		out[route] = transformPathItem(item)
	}

	return out
}

func transformPathItem(item *model.PathItem) *PathItemV32 {
	if item == nil {
		return nil
	}
	pi := &PathItemV32{}
	for verb, op := range item.Operations {
		tv := transformOperation(op)
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
		case "QUERY":
			pi.Query = tv
		}
	}
	if len(item.AdditionalOperations) > 0 {
		pi.AdditionalOperations = make(map[string]*OperationV32, len(item.AdditionalOperations))
		for method, op := range item.AdditionalOperations {
			pi.AdditionalOperations[method] = transformOperation(op)
		}
	}

	return pi
}

func transformOperation(op *model.Operation) *OperationV32 {
	if op == nil {
		return nil
	}
	out := &OperationV32{
		Tags: op.Tags, Summary: op.Summary, Description: op.Description,
		ExternalDocs: transformExternalDocs(op.ExternalDocs), OperationID: op.OperationID,
		Deprecated: op.Deprecated, Servers: transformServers(op.Servers),
		RequestBody: transformRequestBody(op.RequestBody),
	}
	for _, p := range op.Parameters {
		pv := p
		out.Parameters = append(out.Parameters, transformParameter(&pv))
	}
	for _, sr := range op.Security {
		out.Security = append(out.Security, SecurityRequirementV32(sr))
	}
	if len(op.Responses) > 0 {
		out.Responses = make(ResponsesV32, len(op.Responses))
		for code, r := range op.Responses {
			out.Responses[code] = transformResponse(r)
		}
	}
	if len(op.Callbacks) > 0 {
		out.Callbacks = make(map[string]*CallbackV32, len(op.Callbacks))
		for name, cb := range op.Callbacks {
			tcb := make(CallbackV32, len(cb))
			for expr, pi := range cb {
				tcb[expr] = transformPathItem(pi)
			}
			out.Callbacks[name] = &tcb
		}
	}

	return out
}

func transformParameter(p *model.Parameter) *ParameterV32 {
	out := &ParameterV32{
		Name: p.Name, In: p.In, Description: p.Description, Required: p.Required,
		Deprecated: p.Deprecated, Example: p.Example,
	}
	if p.Content != nil {
		out.Content = transformContent(p.Content)
	} else {
		out.Schema = transformSchema(p.Schema)
		out.Style = p.Style
		out.Explode = p.Explode
		out.AllowReserved = p.AllowReserved
	}

	return out
}

func transformRequestBody(rb *model.RequestBody) *RequestBodyV32 {
	if rb == nil {
		return nil
	}

	return &RequestBodyV32{Description: rb.Description, Required: rb.Required, Content: transformContent(rb.Content)}
}

func transformContent(content map[string]*model.MediaType) map[string]*MediaTypeV32 {
	if len(content) == 0 {
		return nil
	}
	out := make(map[string]*MediaTypeV32, len(content))
	for ct, mt := range content {
		out[ct] = transformMediaType(mt)
	}

	return out
}

func transformMediaType(mt *model.MediaType) *MediaTypeV32 {
	if mt == nil {
		return nil
	}
	out := &MediaTypeV32{Schema: transformSchema(mt.Schema)}
	if len(mt.Examples) > 0 {
		out.Examples = make(map[string]*ExampleV32, len(mt.Examples))
		for name, ex := range mt.Examples {
			out.Examples[name] = &ExampleV32{Summary: ex.Summary, Description: ex.Description, Value: ex.Value, ExternalValue: ex.ExternalValue}
		}
	}
	if len(mt.Encoding) > 0 {
		out.Encoding = make(map[string]*EncodingV32, len(mt.Encoding))
		for name, enc := range mt.Encoding {
			out.Encoding[name] = &EncodingV32{ContentType: enc.ContentType, Style: enc.Style, Explode: enc.Explode, Headers: transformHeaders(enc.Headers)}
		}
	}

	return out
}

func transformHeaders(headers map[string]*model.Header) map[string]*HeaderV32 {
	if len(headers) == 0 {
		return nil
	}
	out := make(map[string]*HeaderV32, len(headers))
	for name, h := range headers {
		if isReservedHeaderName(name) {
			continue
		}
		out[name] = &HeaderV32{Description: h.Description, Required: h.Required, Schema: transformSchema(h.Schema)}
	}

	return out
}

func isReservedHeaderName(name string) bool {
	switch name {
	case "Accept", "Content-Type", "Authorization":
		return true
	default:
		return false
	}
}

func transformResponse(r *model.Response) *ResponseV32 {
	if r == nil {
		return nil
	}
	out := &ResponseV32{Description: r.Description, Headers: transformHeaders(r.Headers), Content: transformContent(r.Content)}
	if len(r.Links) > 0 {
		out.Links = make(map[string]*LinkV32, len(r.Links))
		for name, l := range r.Links {
			out.Links[name] = &LinkV32{OperationID: l.OperationID, Parameters: l.Parameters, Description: l.Description}
		}
	}

	return out
}

func transformSchema(s *model.Schema) *SchemaV32 {
	if s == nil {
		return nil
	}
	out := &SchemaV32{
		Ref: s.Ref, Format: s.Format, Title: s.Title, Description: s.Description,
		Default: s.Default, Const: s.Const, Deprecated: s.Deprecated,
		ReadOnly: s.ReadOnly, WriteOnly: s.WriteOnly,
		Minimum: s.Minimum, Maximum: s.Maximum,
		MultipleOf: s.MultipleOf, MinLength: s.MinLength, MaxLength: s.MaxLength, Pattern: s.Pattern,
		MinItems: s.MinItems, MaxItems: s.MaxItems, UniqueItems: s.UniqueItems,
		Required: s.Required, Enum: s.Enum, Examples: s.Examples,
		ContentEncoding: s.ContentEncoding, ContentMediaType: s.ContentMediaType,
	}
	if s.ExclusiveMinimum && s.Minimum != nil {
		out.ExclusiveMinimum = s.Minimum
		out.Minimum = nil
	}
	if s.ExclusiveMaximum && s.Maximum != nil {
		out.ExclusiveMaximum = s.Maximum
		out.Maximum = nil
	}
	out.Type = foldType(s.Type, s.Nullable)
	if s.Discriminator != nil {
		out.Discriminator = &DiscriminatorV32{PropertyName: s.Discriminator.PropertyName, Mapping: s.Discriminator.Mapping}
	}
	if s.XML != nil {
		out.XML = &XMLV32{Name: s.XML.Name, Namespace: s.XML.Namespace, Prefix: s.XML.Prefix, Attribute: s.XML.Attribute, Wrapped: s.XML.Wrapped}
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*SchemaV32, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = transformSchema(p)
		}
	}
	out.Items = transformSchema(s.Items)
	out.OneOf = transformSchemaList(s.OneOf)
	out.AnyOf = transformSchemaList(s.AnyOf)
	out.AllOf = transformSchemaList(s.AllOf)

	return out
}

func foldType(t string, nullable bool) any {
	if t == "" {
		return nil
	}
	if !nullable {
		return t
	}

	return []string{t, "null"}
}

func transformSchemaList(list []*model.Schema) []*SchemaV32 {
	if len(list) == 0 {
		return nil
	}
	out := make([]*SchemaV32, 0, len(list))
	for _, s := range list {
		out = append(out, transformSchema(s))
	}

	return out
}

func hasComponents(c model.Components) bool {
	return len(c.Schemas) > 0 || len(c.SecuritySchemes) > 0 || len(c.Parameters) > 0 ||
		len(c.Responses) > 0 || len(c.Headers) > 0 || len(c.RequestBodies) > 0 ||
		len(c.Examples) > 0 || len(c.Links) > 0 || len(c.Callbacks) > 0 || len(c.PathItems) > 0
}

func transformComponents(c model.Components) *ComponentsV32 {
	out := &ComponentsV32{}
	if len(c.Schemas) > 0 {
		out.Schemas = make(map[string]*SchemaV32, len(c.Schemas))
		for name, s := range c.Schemas {
			out.Schemas[name] = transformSchema(s)
		}
	}
	if len(c.SecuritySchemes) > 0 {
		out.SecuritySchemes = make(map[string]*SecuritySchemeV32, len(c.SecuritySchemes))
		for name, s := range c.SecuritySchemes {
			out.SecuritySchemes[name] = transformSecurityScheme(s)
		}
	}
	if len(c.Parameters) > 0 {
		out.Parameters = make(map[string]*ParameterV32, len(c.Parameters))
		for name, p := range c.Parameters {
			out.Parameters[name] = transformParameter(p)
		}
	}
	if len(c.Responses) > 0 {
		out.Responses = make(map[string]*ResponseV32, len(c.Responses))
		for name, r := range c.Responses {
			out.Responses[name] = transformResponse(r)
		}
	}
	if len(c.Headers) > 0 {
		out.Headers = transformHeaders(c.Headers)
	}
	if len(c.RequestBodies) > 0 {
		out.RequestBodies = make(map[string]*RequestBodyV32, len(c.RequestBodies))
		for name, rb := range c.RequestBodies {
			out.RequestBodies[name] = transformRequestBody(rb)
		}
	}
	if len(c.Examples) > 0 {
		out.Examples = make(map[string]*ExampleV32, len(c.Examples))
		for name, ex := range c.Examples {
			out.Examples[name] = &ExampleV32{Summary: ex.Summary, Description: ex.Description, Value: ex.Value, ExternalValue: ex.ExternalValue}
		}
	}
	if len(c.Links) > 0 {
		out.Links = make(map[string]*LinkV32, len(c.Links))
		for name, l := range c.Links {
			out.Links[name] = &LinkV32{OperationID: l.OperationID, Parameters: l.Parameters, Description: l.Description}
		}
	}
	if len(c.Callbacks) > 0 {
		out.Callbacks = make(map[string]*CallbackV32, len(c.Callbacks))
		for name, cb := range c.Callbacks {
			tcb := make(CallbackV32, len(cb))
			for expr, pi := range cb {
				tcb[expr] = transformPathItem(pi)
			}
			out.Callbacks[name] = &tcb
		}
	}
	if len(c.PathItems) > 0 {
		out.PathItems = make(map[string]*PathItemV32, len(c.PathItems))
		for name, pi := range c.PathItems {
			out.PathItems[name] = transformPathItem(pi)
		}
	}

	return out
}

func transformSecurityScheme(s *model.SecurityScheme) *SecuritySchemeV32 {
	if s == nil {
		return nil
	}
	out := &SecuritySchemeV32{
		Type: s.Type, Description: s.Description, Name: s.Name, In: s.In,
		Scheme: s.Scheme, BearerFormat: s.BearerFormat, OpenIDConnectURL: s.OpenIDConnectURL,
	}
	if s.Flows != nil {
		out.Flows = &OAuthFlowsV32{
			Implicit:            transformOAuthFlow(s.Flows.Implicit),
			Password:            transformOAuthFlow(s.Flows.Password),
			ClientCredentials:   transformOAuthFlow(s.Flows.ClientCredentials),
			AuthorizationCode:   transformOAuthFlow(s.Flows.AuthorizationCode),
			DeviceAuthorization: transformOAuthFlow(s.Flows.DeviceAuthorization),
		}
	}

	return out
}

func transformOAuthFlow(f *model.OAuthFlow) *OAuthFlowV32 {
	if f == nil {
		return nil
	}

	return &OAuthFlowV32{
		AuthorizationURL: f.AuthorizationURL, TokenURL: f.TokenURL, RefreshURL: f.RefreshURL,
		DeviceAuthorizationURL: f.DeviceAuthorizationURL, Scopes: f.Scopes,
	}
}
