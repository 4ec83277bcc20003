// Package v300 projects the intermediate model.Spec onto the OpenAPI 3.0.x
// object model. Field order and shape are grounded on the teacher's
// v304/view_v304.go, generalized from the single 3.0.4 patch version to
// the 3.0.x line and trimmed to the fields model.Spec actually carries
// (no per-object extensions beyond the document root).
package v300

import "github.com/SamuelMarks/cdd-c-sub007/internal/export/util"

// ViewV300 represents an OpenAPI 3.0.x document.
// https://github.com/OAI/OpenAPI-Specification/blob/main/versions/3.0.4.md#openapi-object
type ViewV300 struct {
	OpenAPI      string                   `json:"openapi"`
	Info         *InfoV30                 `json:"info"`
	ExternalDocs *ExternalDocsV30         `json:"externalDocs,omitempty"`
	Tags         []*TagV30                `json:"tags,omitempty"`
	Security     []SecurityRequirementV30 `json:"security,omitempty"`
	Servers      []*ServerV30             `json:"servers,omitempty"`
	Components   *ComponentsV30           `json:"components,omitempty"`
	Paths        PathsV30                 `json:"paths"`

	Extensions map[string]any `json:"-"`
}

// InfoV30 is the OpenAPI 3.0.x Info Object (no `summary`; that's 3.1+).
type InfoV30 struct {
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	TermsOfService string      `json:"termsOfService,omitempty"`
	Contact        *ContactV30 `json:"contact,omitempty"`
	License        *LicenseV30 `json:"license,omitempty"`
	Version        string      `json:"version"`
}

type ContactV30 struct {
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

// LicenseV30 has no `identifier`; that field is 3.1+-only.
type LicenseV30 struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type ServerV30 struct {
	URL         string                        `json:"url"`
	Description string                        `json:"description,omitempty"`
	Variables   map[string]*ServerVariableV30 `json:"variables,omitempty"`
}

type ServerVariableV30 struct {
	Enum        []string `json:"enum,omitempty"`
	Default     string   `json:"default"`
	Description string   `json:"description,omitempty"`
}

// PathsV30 is always emitted, as `{}` when empty, to stay structurally valid.
type PathsV30 map[string]*PathItemV30

type PathItemV30 struct {
	Ref         string         `json:"$ref,omitempty"`
	Summary     string         `json:"summary,omitempty"`
	Description string         `json:"description,omitempty"`
	Get         *OperationV30  `json:"get,omitempty"`
	Put         *OperationV30  `json:"put,omitempty"`
	Post        *OperationV30  `json:"post,omitempty"`
	Delete      *OperationV30  `json:"delete,omitempty"`
	Options     *OperationV30  `json:"options,omitempty"`
	Head        *OperationV30  `json:"head,omitempty"`
	Patch       *OperationV30  `json:"patch,omitempty"`
	Trace       *OperationV30  `json:"trace,omitempty"`
	Servers     []*ServerV30   `json:"servers,omitempty"`
	Parameters  []*ParameterV30 `json:"parameters,omitempty"`
}

type OperationV30 struct {
	Tags         []string                 `json:"tags,omitempty"`
	Summary      string                   `json:"summary,omitempty"`
	Description  string                   `json:"description,omitempty"`
	ExternalDocs *ExternalDocsV30         `json:"externalDocs,omitempty"`
	OperationID  string                   `json:"operationId,omitempty"`
	Parameters   []*ParameterV30          `json:"parameters,omitempty"`
	RequestBody  *RequestBodyV30          `json:"requestBody,omitempty"`
	Responses    ResponsesV30             `json:"responses,omitempty"`
	Callbacks    map[string]CallbackV30   `json:"callbacks,omitempty"`
	Deprecated   bool                     `json:"deprecated,omitempty"`
	Security     []SecurityRequirementV30 `json:"security,omitempty"`
	Servers      []*ServerV30             `json:"servers,omitempty"`
}

type ParameterV30 struct {
	Name          string                 `json:"name"`
	In            string                 `json:"in"`
	Description   string                 `json:"description,omitempty"`
	Required      bool                   `json:"required,omitempty"`
	Deprecated    bool                   `json:"deprecated,omitempty"`
	Style         string                 `json:"style,omitempty"`
	Explode       bool                   `json:"explode,omitempty"`
	AllowReserved bool                   `json:"allowReserved,omitempty"`
	Schema        *SchemaV30             `json:"schema,omitempty"`
	Content       map[string]*MediaTypeV30 `json:"content,omitempty"`
	Example       any                    `json:"example,omitempty"`
}

type RequestBodyV30 struct {
	Description string                   `json:"description,omitempty"`
	Content     map[string]*MediaTypeV30 `json:"content"`
	Required    bool                     `json:"required,omitempty"`
}

type MediaTypeV30 struct {
	Schema   *SchemaV30              `json:"schema,omitempty"`
	Examples map[string]*ExampleV30  `json:"examples,omitempty"`
	Encoding map[string]*EncodingV30 `json:"encoding,omitempty"`
}

type EncodingV30 struct {
	ContentType string                `json:"contentType,omitempty"`
	Headers     map[string]*HeaderV30 `json:"headers,omitempty"`
	Style       string                `json:"style,omitempty"`
	Explode     bool                  `json:"explode,omitempty"`
}

type ResponsesV30 map[string]*ResponseV30

type ResponseV30 struct {
	Description string                   `json:"description"`
	Headers     map[string]*HeaderV30    `json:"headers,omitempty"`
	Content     map[string]*MediaTypeV30 `json:"content,omitempty"`
	Links       map[string]*LinkV30      `json:"links,omitempty"`
}

// SchemaV30 is the 3.0.x JSON Schema subset: boolean `nullable`, no `const`,
// no `contentEncoding`/`contentMediaType`.
type SchemaV30 struct {
	Ref  string `json:"$ref,omitempty"`

	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Nullable    bool   `json:"nullable,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty"`
	WriteOnly   bool   `json:"writeOnly,omitempty"`

	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`
	MinLength        *int     `json:"minLength,omitempty"`
	MaxLength        *int     `json:"maxLength,omitempty"`
	Pattern          string   `json:"pattern,omitempty"`
	MinItems         *int     `json:"minItems,omitempty"`
	MaxItems         *int     `json:"maxItems,omitempty"`
	UniqueItems      bool     `json:"uniqueItems,omitempty"`

	Properties map[string]*SchemaV30 `json:"properties,omitempty"`
	Required   []string              `json:"required,omitempty"`
	Items      *SchemaV30            `json:"items,omitempty"`

	OneOf []*SchemaV30 `json:"oneOf,omitempty"`
	AnyOf []*SchemaV30 `json:"anyOf,omitempty"`
	AllOf []*SchemaV30 `json:"allOf,omitempty"`

	Discriminator *DiscriminatorV30 `json:"discriminator,omitempty"`
	XML           *XMLV30           `json:"xml,omitempty"`
	Example       any               `json:"example,omitempty"`
	Enum          []any             `json:"enum,omitempty"`
}

type DiscriminatorV30 struct {
	PropertyName string            `json:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty"`
}

type XMLV30 struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Attribute bool   `json:"attribute,omitempty"`
	Wrapped   bool   `json:"wrapped,omitempty"`
}

type ComponentsV30 struct {
	Schemas         map[string]*SchemaV30         `json:"schemas,omitempty"`
	SecuritySchemes map[string]*SecuritySchemeV30 `json:"securitySchemes,omitempty"`
	Parameters      map[string]*ParameterV30      `json:"parameters,omitempty"`
	Responses       map[string]*ResponseV30       `json:"responses,omitempty"`
	Headers         map[string]*HeaderV30         `json:"headers,omitempty"`
	RequestBodies   map[string]*RequestBodyV30    `json:"requestBodies,omitempty"`
	Examples        map[string]*ExampleV30        `json:"examples,omitempty"`
	Links           map[string]*LinkV30           `json:"links,omitempty"`
	Callbacks       map[string]CallbackV30        `json:"callbacks,omitempty"`
}

type SecurityRequirementV30 map[string][]string

type SecuritySchemeV30 struct {
	Type             string         `json:"type"`
	Description      string         `json:"description,omitempty"`
	Name             string         `json:"name,omitempty"`
	In               string         `json:"in,omitempty"`
	Scheme           string         `json:"scheme,omitempty"`
	BearerFormat     string         `json:"bearerFormat,omitempty"`
	Flows            *OAuthFlowsV30 `json:"flows,omitempty"`
	OpenIDConnectURL string         `json:"openIdConnectUrl,omitempty"`
}

type OAuthFlowsV30 struct {
	Implicit          *OAuthFlowV30 `json:"implicit,omitempty"`
	Password          *OAuthFlowV30 `json:"password,omitempty"`
	ClientCredentials *OAuthFlowV30 `json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlowV30 `json:"authorizationCode,omitempty"`
}

type OAuthFlowV30 struct {
	AuthorizationURL string            `json:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty"`
	RefreshURL       string            `json:"refreshUrl,omitempty"`
	Scopes           map[string]string `json:"scopes"`
}

type TagV30 struct {
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	ExternalDocs *ExternalDocsV30 `json:"externalDocs,omitempty"`
}

type ExternalDocsV30 struct {
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

type ExampleV30 struct {
	Summary       string `json:"summary,omitempty"`
	Description   string `json:"description,omitempty"`
	Value         any    `json:"value,omitempty"`
	ExternalValue string `json:"externalValue,omitempty"`
}

type HeaderV30 struct {
	Description string     `json:"description,omitempty"`
	Required    bool       `json:"required,omitempty"`
	Schema      *SchemaV30 `json:"schema,omitempty"`
}

type LinkV30 struct {
	OperationID string         `json:"operationId,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Description string         `json:"description,omitempty"`
}

// CallbackV30 maps a runtime expression to a PathItem, per the Callback
// Object; it has no fields of its own beyond that map.
type CallbackV30 map[string]*PathItemV30

// MarshalJSON inlines `x-` extensions alongside the document's own fields,
// grounded on the teacher's type-alias-based ViewV304.MarshalJSON.
func (v ViewV300) MarshalJSON() ([]byte, error) {
	type viewV300 ViewV300
	return util.MarshalWithExtensions(viewV300(v), v.Extensions)
}
