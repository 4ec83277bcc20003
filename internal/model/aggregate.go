package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for Aggregator operations, matching spec §7's error
// taxonomy (Conflict / NotFound / InvalidArgument) as wrapped Go errors
// rather than integer codes, per SPEC_FULL.md §F.
var (
	ErrDuplicateFieldName            = errors.New("model: duplicate field name in StructFields")
	ErrUnresolvedRef                 = errors.New("model: unresolved schema reference")
	ErrConflict                      = errors.New("model: conflicting values for the same field")
	ErrServerVariableDefaultMissing  = errors.New("model: server variable default not present in its enum")
	ErrLicenseMutuallyExclusive      = errors.New("model: license identifier and url are mutually exclusive")
	ErrLicenseNameRequired           = errors.New("model: license name is required when any license field is set")
	ErrServerURLInvalid              = errors.New("model: server url must not contain '?' or '#'")
	ErrNilOperation                  = errors.New("model: operation must not be nil")
)

// RegisterTypes registers each TypeDefinition into spec.Components.Schemas.
// Already-registered names are skipped: first-wins idempotence, per spec
// §4.5. Field names, enum members, defaults, string constraints, variant
// required lists and extras are copied on insertion. Pointer-valued
// bounds (Minimum, Maximum, MinLength, MaxLength, MinItems, MaxItems) are
// not copied: the schema shares them with the caller's TypeDefList.
//
// Grounded on internal/build/schema.go's cache-then-register pattern (a
// `seen` map of already-registered names) repurposed for TypeDefinition
// instead of reflect.Type.
func RegisterTypes(spec *Spec, defs TypeDefList) error {
	for _, def := range defs {
		if _, exists := spec.Components.Schemas[def.Name]; exists {
			continue
		}
		schema, err := typeDefToSchema(def)
		if err != nil {
			return fmt.Errorf("register type %q: %w", def.Name, err)
		}
		spec.Components.Schemas[def.Name] = schema
	}

	return nil
}

func typeDefToSchema(def TypeDefinition) (*Schema, error) {
	if def.Kind == KindEnum {
		enum := make([]any, 0, len(def.EnumMembers))
		for _, m := range def.EnumMembers {
			if m == "UNKNOWN" {
				continue
			}
			enum = append(enum, m)
		}

		return &Schema{Type: "string", Enum: enum}, nil
	}

	if def.Fields == nil {
		return &Schema{Type: "object"}, nil
	}

	seen := make(map[string]bool, len(def.Fields.Fields))
	s := &Schema{Type: "object", Properties: make(map[string]*Schema)}
	var required []string
	for _, f := range def.Fields.Fields {
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFieldName, f.Name)
		}
		seen[f.Name] = true

		s.Properties[f.Name] = fieldToSchema(f)
		if f.Constraints.Required {
			required = append(required, f.Name)
		}
	}
	sort.Strings(required)
	s.Required = required

	if def.Fields.IsUnion {
		s.Properties = nil
		s.Type = ""
		variants := make([]*Schema, 0, len(def.Fields.Variants))
		for _, v := range def.Fields.Variants {
			variants = append(variants, variantToSchema(v))
		}
		if def.Fields.UnionIsAnyOf {
			s.AnyOf = variants
		} else {
			s.OneOf = variants
		}
		if def.Fields.UnionDiscriminator != "" {
			s.Discriminator = &Discriminator{PropertyName: def.Fields.UnionDiscriminator}
		}
	}

	if len(def.Fields.Extras) > 0 {
		s.Extras = append(json.RawMessage(nil), def.Fields.Extras...)
	}

	return s, nil
}

func fieldToSchema(f StructField) *Schema {
	s := &Schema{}
	switch f.Type {
	case TypeArray:
		s.Type = "array"
		itemType := "object"
		if PrimitiveNames[f.RefName] {
			itemType = f.RefName
		}
		if itemType == "object" && f.RefName != "" {
			s.Items = &Schema{Ref: "#/components/schemas/" + f.RefName}
		} else {
			s.Items = &Schema{Type: itemType}
		}
	case TypeObject, TypeEnum:
		s.Ref = "#/components/schemas/" + f.RefName
	default:
		s.Type = string(f.Type)
	}

	c := f.Constraints
	s.Minimum = c.Minimum
	s.Maximum = c.Maximum
	s.ExclusiveMinimum = c.ExclusiveMinimum
	s.ExclusiveMaximum = c.ExclusiveMaximum
	s.MinLength = c.MinLength
	s.MaxLength = c.MaxLength
	s.Pattern = c.Pattern
	s.Format = c.Format
	s.MinItems = c.MinItems
	s.MaxItems = c.MaxItems
	s.UniqueItems = c.UniqueItems

	if f.Default != nil {
		s.Default = *f.Default
	}

	return s
}

func variantToSchema(v UnionVariantMeta) *Schema {
	s := &Schema{Type: v.JSONType}
	if v.JSONType == "object" {
		s.Required = append([]string(nil), v.Required...)
	}

	return s
}

// AddOperation finds or creates the PathItem at route, per spec §4.5's
// add_operation. A standard verb goes into Operations keyed by the
// uppercased Method; any other method goes into AdditionalOperations keyed
// by Method as given.
func AddOperation(spec *Spec, route string, op *Operation) error {
	return addOperationTo(spec.Paths, route, op)
}

// AddWebhookOperation is AddOperation's webhooks-list analogue, per spec
// §4.5's "an analogous add_webhook_operation targets the webhooks list".
func AddWebhookOperation(spec *Spec, name string, op *Operation) error {
	return addOperationTo(spec.Webhooks, name, op)
}

func addOperationTo(paths map[string]*PathItem, route string, op *Operation) error {
	if op == nil {
		return ErrNilOperation
	}
	item, ok := paths[route]
	if !ok {
		item = &PathItem{
			Route:                route,
			Operations:           make(map[string]*Operation),
			AdditionalOperations: make(map[string]*Operation),
		}
		paths[route] = item
	}

	method := strings.ToUpper(op.Method)
	switch method {
	case "GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD", "PATCH", "TRACE":
		item.Operations[method] = op
	default:
		item.AdditionalOperations[op.Method] = op
	}

	return nil
}

// ApplyGlobalMeta folds doc-level global directives into spec. Info title,
// info version and license: first set wins, ErrConflict on mismatch.
// Info summary, description and terms of service, contact, external docs
// and the schema dialect only fill in when previously absent; a differing
// second value is ignored, not reported. A server variable with an enum
// list must have its default in that list; a variable without an enum is
// not checked. Grounded on api.go's With* option-merge precedence.
func ApplyGlobalMeta(spec *Spec, doc *DocMetadata) error {
	if doc == nil {
		return nil
	}

	if err := mergeInfo(&spec.Info, doc.Info); err != nil {
		return err
	}
	if doc.Contact != nil {
		if spec.Info.Contact == nil {
			spec.Info.Contact = doc.Contact
		}
	}
	if doc.License != nil {
		if err := validateLicense(doc.License); err != nil {
			return err
		}
		if spec.Info.License == nil {
			spec.Info.License = doc.License
		} else if *spec.Info.License != *doc.License {
			return fmt.Errorf("%w: license", ErrConflict)
		}
	}
	if doc.ExternalDocs != nil && spec.ExternalDocs == nil {
		spec.ExternalDocs = doc.ExternalDocs
	}
	if doc.JSONSchemaDialect != "" && spec.JSONSchemaDialect == "" {
		spec.JSONSchemaDialect = doc.JSONSchemaDialect
	}

	for _, sd := range doc.Servers {
		if err := validateServerDoc(sd); err != nil {
			return err
		}
		spec.Servers = append(spec.Servers, serverDocToModel(sd))
	}

	for _, sr := range doc.Security {
		spec.Security = append(spec.Security, SecurityRequirement{sr.Name: sr.Scopes})
	}

	return nil
}

func mergeInfo(info *Info, doc InfoDoc) error {
	if doc.Title != "" {
		if info.Title == "" {
			info.Title = doc.Title
		} else if info.Title != doc.Title {
			return fmt.Errorf("%w: info.title", ErrConflict)
		}
	}
	if doc.Version != "" {
		if info.Version == "" {
			info.Version = doc.Version
		} else if info.Version != doc.Version {
			return fmt.Errorf("%w: info.version", ErrConflict)
		}
	}
	if doc.Summary != "" && info.Summary == "" {
		info.Summary = doc.Summary
	}
	if doc.Description != "" && info.Description == "" {
		info.Description = doc.Description
	}
	if doc.TermsOfService != "" && info.TermsOfService == "" {
		info.TermsOfService = doc.TermsOfService
	}

	return nil
}

func validateLicense(l *License) error {
	if l.Name == "" {
		return ErrLicenseNameRequired
	}
	if l.Identifier != "" && l.URL != "" {
		return ErrLicenseMutuallyExclusive
	}

	return nil
}

func validateServerDoc(sd ServerDoc) error {
	if strings.ContainsAny(sd.URL, "?#") {
		return ErrServerURLInvalid
	}
	for _, v := range sd.Variables {
		if len(v.Enum) > 0 {
			found := false
			for _, e := range v.Enum {
				if e == v.Default {
					found = true

					break
				}
			}
			if !found {
				return ErrServerVariableDefaultMissing
			}
		}
	}

	return nil
}

func serverDocToModel(sd ServerDoc) Server {
	s := Server{URL: sd.URL, Description: sd.Description}
	if len(sd.Variables) > 0 {
		s.Variables = make(map[string]ServerVariable, len(sd.Variables))
		for _, v := range sd.Variables {
			s.Variables[v.Name] = ServerVariable{Enum: v.Enum, Default: v.Default, Description: v.Description}
		}
	}

	return s
}

// AddSecurityScheme resolves or creates a named SecurityScheme: ErrConflict
// when the type differs, or when scheme, bearerFormat, in, name or
// openIdConnectUrl are set on both sides and differ; OAuth2 flows merge by
// flow-type, scopes
// unioned by name, ErrConflict on differing scope descriptions. Grounded
// on api.go's WithOAuth2Security flow option family.
func AddSecurityScheme(spec *Spec, doc *SecuritySchemeDoc) error {
	existing, ok := spec.Components.SecuritySchemes[doc.Name]
	if !ok {
		spec.Components.SecuritySchemes[doc.Name] = securitySchemeDocToModel(doc)

		return nil
	}

	if existing.Type != doc.Type {
		return fmt.Errorf("%w: security scheme %q type", ErrConflict, doc.Name)
	}
	if existing.Scheme != "" && doc.Scheme != "" && existing.Scheme != doc.Scheme {
		return fmt.Errorf("%w: security scheme %q scheme", ErrConflict, doc.Name)
	}
	for _, p := range [][3]string{
		{"bearerFormat", existing.BearerFormat, doc.BearerFormat},
		{"in", existing.In, doc.In},
		{"name", existing.Name, doc.ParamName},
		{"openIdConnectUrl", existing.OpenIDConnectURL, doc.OpenIDConnectURL},
	} {
		if p[1] != "" && p[2] != "" && p[1] != p[2] {
			return fmt.Errorf("%w: security scheme %q %s", ErrConflict, doc.Name, p[0])
		}
	}

	if doc.Type == "oauth2" {
		return mergeOAuthFlows(existing, doc)
	}

	return nil
}

func securitySchemeDocToModel(doc *SecuritySchemeDoc) *SecurityScheme {
	ss := &SecurityScheme{
		Type:             doc.Type,
		Name:             doc.ParamName,
		In:               doc.In,
		Scheme:           doc.Scheme,
		BearerFormat:     doc.BearerFormat,
		OpenIDConnectURL: doc.OpenIDConnectURL,
	}
	if len(doc.Flows) > 0 {
		ss.Flows = &OAuthFlows{}
		for _, f := range doc.Flows {
			setFlow(ss.Flows, f)
		}
	}

	return ss
}

func mergeOAuthFlows(existing *SecurityScheme, doc *SecuritySchemeDoc) error {
	if existing.Flows == nil {
		existing.Flows = &OAuthFlows{}
	}
	for _, f := range doc.Flows {
		cur := flowByType(existing.Flows, f.Flow)
		if cur == nil {
			setFlow(existing.Flows, f)

			continue
		}
		if f.TokenURL != "" && cur.TokenURL != "" && cur.TokenURL != f.TokenURL {
			return fmt.Errorf("%w: oauth flow %q tokenUrl", ErrConflict, f.Flow)
		}
		if cur.Scopes == nil {
			cur.Scopes = make(map[string]string)
		}
		for name, desc := range f.Scopes {
			if existingDesc, ok := cur.Scopes[name]; ok && existingDesc != desc {
				return fmt.Errorf("%w: oauth scope %q description", ErrConflict, name)
			}
			cur.Scopes[name] = desc
		}
	}

	return nil
}

func flowByType(flows *OAuthFlows, flow string) *OAuthFlow {
	switch flow {
	case "implicit":
		return flows.Implicit
	case "password":
		return flows.Password
	case "clientCredentials":
		return flows.ClientCredentials
	case "authorizationCode":
		return flows.AuthorizationCode
	case "deviceAuthorization":
		return flows.DeviceAuthorization
	default:
		return nil
	}
}

func setFlow(flows *OAuthFlows, f OAuthFlowDoc) {
	of := &OAuthFlow{
		AuthorizationURL:       f.AuthorizationURL,
		TokenURL:               f.TokenURL,
		RefreshURL:             f.RefreshURL,
		DeviceAuthorizationURL: f.DeviceAuthorizationURL,
		Scopes:                 f.Scopes,
	}
	switch f.Flow {
	case "implicit":
		flows.Implicit = of
	case "password":
		flows.Password = of
	case "clientCredentials":
		flows.ClientCredentials = of
	case "authorizationCode":
		flows.AuthorizationCode = of
	case "deviceAuthorization":
		flows.DeviceAuthorization = of
	}
}

// MergeTags folds explicit @tagMeta directives into spec.Tags, filling
// summary/description/parent/kind/external-docs without overwriting
// existing fields. Tags implicitly referenced by operation tag lists but
// never named here are left to be created by the caller when it first
// encounters them on an operation. Grounded on config.MergeTagConfig's
// fill-if-absent merge style.
func MergeTags(spec *Spec, metas []TagMeta) error {
	indexByName := make(map[string]int, len(spec.Tags))
	for i := range spec.Tags {
		indexByName[spec.Tags[i].Name] = i
	}

	for _, m := range metas {
		idx, ok := indexByName[m.Name]
		if !ok {
			spec.Tags = append(spec.Tags, Tag{Name: m.Name})
			idx = len(spec.Tags) - 1
			indexByName[m.Name] = idx
		}

		// Re-fetched by index on every iteration: appends above may have
		// reallocated the backing array, stale pointers would silently
		// write to a detached copy.
		t := &spec.Tags[idx]
		if t.Summary == "" {
			t.Summary = m.Summary
		}
		if t.Description == "" {
			t.Description = m.Description
		}
		if t.Parent == "" {
			t.Parent = m.Parent
		}
		if t.Kind == "" {
			t.Kind = m.Kind
		}
		if t.ExternalDocs == nil {
			t.ExternalDocs = m.ExternalDocs
		}
	}

	return nil
}

// EnsureTag creates an operation-referenced tag if it does not already
// exist, without metadata.
func EnsureTag(spec *Spec, name string) {
	for i := range spec.Tags {
		if spec.Tags[i].Name == name {
			return
		}
	}
	spec.Tags = append(spec.Tags, Tag{Name: name})
}

// ResolveRef strips everything up to the last '/' in ref, yielding the
// type name, and reports whether that name is a primitive, per spec
// §4.5's get_type_from_ref.
func ResolveRef(ref string) (typeName string, isPrimitive bool) {
	idx := strings.LastIndex(ref, "/")
	name := ref
	if idx >= 0 {
		name = ref[idx+1:]
	}

	return name, PrimitiveNames[name]
}
