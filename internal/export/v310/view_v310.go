// Package v310 projects the intermediate model.Spec onto the OpenAPI 3.1.x
// object model (JSON Schema 2020-12 semantics). Grounded on the teacher's
// v312/view_v312.go, generalized from the single 3.1.2 patch version to
// the 3.1.x line and trimmed to the fields model.Spec actually carries.
package v310

import "github.com/SamuelMarks/cdd-c-sub007/internal/export/util"

// ViewV310 represents an OpenAPI 3.1.x document.
type ViewV310 struct {
	OpenAPI      string                   `json:"openapi"`
	Info         *InfoV31                 `json:"info"`
	ExternalDocs *ExternalDocsV31         `json:"externalDocs,omitempty"`
	Tags         []*TagV31                `json:"tags,omitempty"`
	Security     []SecurityRequirementV31 `json:"security,omitempty"`
	Servers      []*ServerV31             `json:"servers,omitempty"`
	Components   *ComponentsV31           `json:"components,omitempty"`
	Webhooks     map[string]*PathItemV31  `json:"webhooks,omitempty"`
	Paths        PathsV31                 `json:"paths"`

	Extensions map[string]any `json:"-"`
}

func (v ViewV310) MarshalJSON() ([]byte, error) {
	type viewV310 ViewV310
	return util.MarshalWithExtensions(viewV310(v), v.Extensions)
}

// InfoV31 is the OpenAPI 3.1.x Info Object, with `summary` over 3.0's Info.
type InfoV31 struct {
	Title          string      `json:"title"`
	Summary        string      `json:"summary,omitempty"`
	Description    string      `json:"description,omitempty"`
	TermsOfService string      `json:"termsOfService,omitempty"`
	Contact        *ContactV31 `json:"contact,omitempty"`
	License        *LicenseV31 `json:"license,omitempty"`
	Version        string      `json:"version"`
}

type ContactV31 struct {
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

// LicenseV31 gains `identifier` (an SPDX expression) over 3.0's License.
type LicenseV31 struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier,omitempty"`
	URL        string `json:"url,omitempty"`
}

type ServerV31 struct {
	URL         string                        `json:"url"`
	Description string                        `json:"description,omitempty"`
	Variables   map[string]*ServerVariableV31 `json:"variables,omitempty"`
}

type ServerVariableV31 struct {
	Enum        []string `json:"enum,omitempty"`
	Default     string   `json:"default"`
	Description string   `json:"description,omitempty"`
}

type PathsV31 map[string]*PathItemV31

type PathItemV31 struct {
	Ref                  string                    `json:"$ref,omitempty"`
	Summary              string                    `json:"summary,omitempty"`
	Description          string                    `json:"description,omitempty"`
	Get                  *OperationV31             `json:"get,omitempty"`
	Put                  *OperationV31             `json:"put,omitempty"`
	Post                 *OperationV31             `json:"post,omitempty"`
	Delete               *OperationV31             `json:"delete,omitempty"`
	Options              *OperationV31             `json:"options,omitempty"`
	Head                 *OperationV31             `json:"head,omitempty"`
	Patch                *OperationV31             `json:"patch,omitempty"`
	Trace                *OperationV31             `json:"trace,omitempty"`
	Servers              []*ServerV31              `json:"servers,omitempty"`
	Parameters           []*ParameterV31           `json:"parameters,omitempty"`
}

type OperationV31 struct {
	Tags         []string                 `json:"tags,omitempty"`
	Summary      string                   `json:"summary,omitempty"`
	Description  string                   `json:"description,omitempty"`
	ExternalDocs *ExternalDocsV31         `json:"externalDocs,omitempty"`
	OperationID  string                   `json:"operationId,omitempty"`
	Parameters   []*ParameterV31          `json:"parameters,omitempty"`
	RequestBody  *RequestBodyV31          `json:"requestBody,omitempty"`
	Responses    ResponsesV31             `json:"responses,omitempty"`
	Callbacks    map[string]*CallbackV31  `json:"callbacks,omitempty"`
	Deprecated   bool                     `json:"deprecated,omitempty"`
	Security     []SecurityRequirementV31 `json:"security,omitempty"`
	Servers      []*ServerV31             `json:"servers,omitempty"`
}

type ParameterV31 struct {
	Name          string                   `json:"name"`
	In            string                   `json:"in"`
	Description   string                   `json:"description,omitempty"`
	Required      bool                     `json:"required,omitempty"`
	Deprecated    bool                     `json:"deprecated,omitempty"`
	Style         string                   `json:"style,omitempty"`
	Explode       bool                     `json:"explode,omitempty"`
	AllowReserved bool                     `json:"allowReserved,omitempty"`
	Schema        *SchemaV31               `json:"schema,omitempty"`
	Content       map[string]*MediaTypeV31 `json:"content,omitempty"`
	Example       any                      `json:"example,omitempty"`
}

type RequestBodyV31 struct {
	Description string                   `json:"description,omitempty"`
	Content     map[string]*MediaTypeV31 `json:"content"`
	Required    bool                     `json:"required,omitempty"`
}

type MediaTypeV31 struct {
	Schema   *SchemaV31               `json:"schema,omitempty"`
	Examples map[string]*ExampleV31   `json:"examples,omitempty"`
	Encoding map[string]*EncodingV31  `json:"encoding,omitempty"`
}

type EncodingV31 struct {
	ContentType string                `json:"contentType,omitempty"`
	Headers     map[string]*HeaderV31 `json:"headers,omitempty"`
	Style       string                `json:"style,omitempty"`
	Explode     bool                  `json:"explode,omitempty"`
}

type ResponsesV31 map[string]*ResponseV31

type ResponseV31 struct {
	Description string                   `json:"description"`
	Headers     map[string]*HeaderV31    `json:"headers,omitempty"`
	Content     map[string]*MediaTypeV31 `json:"content,omitempty"`
	Links       map[string]*LinkV31      `json:"links,omitempty"`
}

// SchemaV31 is the 3.1.x / JSON Schema 2020-12 subset: `type` may hold a
// string or an array of strings (nullability folds into the array rather
// than a `nullable` keyword), `const`/`examples`/`contentEncoding`/
// `contentMediaType` are all first-class.
type SchemaV31 struct {
	Ref string `json:"$ref,omitempty"`

	Type        any    `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Const       any    `json:"const,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty"`
	WriteOnly   bool   `json:"writeOnly,omitempty"`

	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`
	MinLength        *int     `json:"minLength,omitempty"`
	MaxLength        *int     `json:"maxLength,omitempty"`
	Pattern          string   `json:"pattern,omitempty"`
	MinItems         *int     `json:"minItems,omitempty"`
	MaxItems         *int     `json:"maxItems,omitempty"`
	UniqueItems      bool     `json:"uniqueItems,omitempty"`

	Properties map[string]*SchemaV31 `json:"properties,omitempty"`
	Required   []string              `json:"required,omitempty"`
	Items      *SchemaV31            `json:"items,omitempty"`

	OneOf []*SchemaV31 `json:"oneOf,omitempty"`
	AnyOf []*SchemaV31 `json:"anyOf,omitempty"`
	AllOf []*SchemaV31 `json:"allOf,omitempty"`

	Discriminator    *DiscriminatorV31 `json:"discriminator,omitempty"`
	XML              *XMLV31           `json:"xml,omitempty"`
	Examples         []any             `json:"examples,omitempty"`
	Enum             []any             `json:"enum,omitempty"`
	ContentEncoding  string            `json:"contentEncoding,omitempty"`
	ContentMediaType string            `json:"contentMediaType,omitempty"`
}

type DiscriminatorV31 struct {
	PropertyName string            `json:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty"`
}

type XMLV31 struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Attribute bool   `json:"attribute,omitempty"`
	Wrapped   bool   `json:"wrapped,omitempty"`
}

type ComponentsV31 struct {
	Schemas         map[string]*SchemaV31         `json:"schemas,omitempty"`
	SecuritySchemes map[string]*SecuritySchemeV31 `json:"securitySchemes,omitempty"`
	Parameters      map[string]*ParameterV31      `json:"parameters,omitempty"`
	Responses       map[string]*ResponseV31       `json:"responses,omitempty"`
	Headers         map[string]*HeaderV31         `json:"headers,omitempty"`
	RequestBodies   map[string]*RequestBodyV31    `json:"requestBodies,omitempty"`
	Examples        map[string]*ExampleV31        `json:"examples,omitempty"`
	Links           map[string]*LinkV31           `json:"links,omitempty"`
	Callbacks       map[string]*CallbackV31       `json:"callbacks,omitempty"`
	PathItems       map[string]*PathItemV31       `json:"pathItems,omitempty"`
}

type SecurityRequirementV31 map[string][]string

// SecuritySchemeV31 supports "mutualTLS" over 3.0's SecurityScheme.
type SecuritySchemeV31 struct {
	Type             string         `json:"type"`
	Description      string         `json:"description,omitempty"`
	Name             string         `json:"name,omitempty"`
	In               string         `json:"in,omitempty"`
	Scheme           string         `json:"scheme,omitempty"`
	BearerFormat     string         `json:"bearerFormat,omitempty"`
	Flows            *OAuthFlowsV31 `json:"flows,omitempty"`
	OpenIDConnectURL string         `json:"openIdConnectUrl,omitempty"`
}

type OAuthFlowsV31 struct {
	Implicit          *OAuthFlowV31 `json:"implicit,omitempty"`
	Password          *OAuthFlowV31 `json:"password,omitempty"`
	ClientCredentials *OAuthFlowV31 `json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlowV31 `json:"authorizationCode,omitempty"`
}

type OAuthFlowV31 struct {
	AuthorizationURL string            `json:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty"`
	RefreshURL       string            `json:"refreshUrl,omitempty"`
	Scopes           map[string]string `json:"scopes"`
}

type TagV31 struct {
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	ExternalDocs *ExternalDocsV31 `json:"externalDocs,omitempty"`
}

type ExternalDocsV31 struct {
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

type ExampleV31 struct {
	Summary       string `json:"summary,omitempty"`
	Description   string `json:"description,omitempty"`
	Value         any    `json:"value,omitempty"`
	ExternalValue string `json:"externalValue,omitempty"`
}

type HeaderV31 struct {
	Description string     `json:"description,omitempty"`
	Required    bool       `json:"required,omitempty"`
	Schema      *SchemaV31 `json:"schema,omitempty"`
}

type LinkV31 struct {
	OperationID string         `json:"operationId,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Description string         `json:"description,omitempty"`
}

// CallbackV31 is map-shaped (expression -> PathItem) like the OpenAPI
// Callback Object itself, so its JSON form flattens the map directly
// rather than nesting it under a synthetic key.
type CallbackV31 map[string]*PathItemV31

// MarshalJSON grounds on the teacher's hand-written CallbackV31.MarshalJSON:
// the Callback Object IS the expression->PathItem map, so it marshals as a
// plain object with no wrapper key.
func (c CallbackV31) MarshalJSON() ([]byte, error) {
	type callbackV31 CallbackV31
	return util.MarshalWithExtensions(callbackV31(c), nil)
}
