// Package v320 projects the intermediate model.Spec onto the OpenAPI 3.2.x
// object model, the richest of the three supported views: `$self`,
// `jsonSchemaDialect`, `additionalOperations`, and the `deviceAuthorization`
// OAuth flow all round-trip without loss. Grounded on the teacher's
// v312/view_v312.go the same way v310 is, with the 3.2-only additions
// layered on top.
package v320

import "github.com/SamuelMarks/cdd-c-sub007/internal/export/util"

type ViewV320 struct {
	OpenAPI           string                   `json:"openapi"`
	Self              string                   `json:"$self,omitempty"`
	JSONSchemaDialect string                   `json:"jsonSchemaDialect,omitempty"`
	Info              *InfoV32                 `json:"info"`
	ExternalDocs      *ExternalDocsV32         `json:"externalDocs,omitempty"`
	Tags              []*TagV32                `json:"tags,omitempty"`
	Security          []SecurityRequirementV32 `json:"security,omitempty"`
	Servers           []*ServerV32             `json:"servers,omitempty"`
	Components        *ComponentsV32           `json:"components,omitempty"`
	Webhooks          map[string]*PathItemV32  `json:"webhooks,omitempty"`
	Paths             PathsV32                 `json:"paths"`

	Extensions map[string]any `json:"-"`
}

func (v ViewV320) MarshalJSON() ([]byte, error) {
	type viewV320 ViewV320
	return util.MarshalWithExtensions(viewV320(v), v.Extensions)
}

type InfoV32 struct {
	Title          string      `json:"title"`
	Summary        string      `json:"summary,omitempty"`
	Description    string      `json:"description,omitempty"`
	TermsOfService string      `json:"termsOfService,omitempty"`
	Contact        *ContactV32 `json:"contact,omitempty"`
	License        *LicenseV32 `json:"license,omitempty"`
	Version        string      `json:"version"`
}

type ContactV32 struct {
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

type LicenseV32 struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier,omitempty"`
	URL        string `json:"url,omitempty"`
}

type ServerV32 struct {
	URL         string                        `json:"url"`
	Description string                        `json:"description,omitempty"`
	Variables   map[string]*ServerVariableV32 `json:"variables,omitempty"`
}

type ServerVariableV32 struct {
	Enum        []string `json:"enum,omitempty"`
	Default     string   `json:"default"`
	Description string   `json:"description,omitempty"`
}

type PathsV32 map[string]*PathItemV32

type PathItemV32 struct {
	Ref                  string                    `json:"$ref,omitempty"`
	Summary              string                    `json:"summary,omitempty"`
	Description          string                    `json:"description,omitempty"`
	Get                  *OperationV32             `json:"get,omitempty"`
	Put                  *OperationV32             `json:"put,omitempty"`
	Post                 *OperationV32             `json:"post,omitempty"`
	Delete               *OperationV32             `json:"delete,omitempty"`
	Options              *OperationV32             `json:"options,omitempty"`
	Head                 *OperationV32             `json:"head,omitempty"`
	Patch                *OperationV32             `json:"patch,omitempty"`
	Trace                *OperationV32             `json:"trace,omitempty"`
	Query                *OperationV32             `json:"query,omitempty"`
	AdditionalOperations map[string]*OperationV32  `json:"additionalOperations,omitempty"`
	Servers              []*ServerV32              `json:"servers,omitempty"`
	Parameters           []*ParameterV32           `json:"parameters,omitempty"`
}

type OperationV32 struct {
	Tags         []string                 `json:"tags,omitempty"`
	Summary      string                   `json:"summary,omitempty"`
	Description  string                   `json:"description,omitempty"`
	ExternalDocs *ExternalDocsV32         `json:"externalDocs,omitempty"`
	OperationID  string                   `json:"operationId,omitempty"`
	Parameters   []*ParameterV32          `json:"parameters,omitempty"`
	RequestBody  *RequestBodyV32          `json:"requestBody,omitempty"`
	Responses    ResponsesV32             `json:"responses,omitempty"`
	Callbacks    map[string]*CallbackV32  `json:"callbacks,omitempty"`
	Deprecated   bool                     `json:"deprecated,omitempty"`
	Security     []SecurityRequirementV32 `json:"security,omitempty"`
	Servers      []*ServerV32             `json:"servers,omitempty"`
}

type ParameterV32 struct {
	Name          string                   `json:"name"`
	In            string                   `json:"in"`
	Description   string                   `json:"description,omitempty"`
	Required      bool                     `json:"required,omitempty"`
	Deprecated    bool                     `json:"deprecated,omitempty"`
	Style         string                   `json:"style,omitempty"`
	Explode       bool                     `json:"explode,omitempty"`
	AllowReserved bool                     `json:"allowReserved,omitempty"`
	Schema        *SchemaV32               `json:"schema,omitempty"`
	Content       map[string]*MediaTypeV32 `json:"content,omitempty"`
	Example       any                      `json:"example,omitempty"`
}

type RequestBodyV32 struct {
	Description string                   `json:"description,omitempty"`
	Content     map[string]*MediaTypeV32 `json:"content"`
	Required    bool                     `json:"required,omitempty"`
}

type MediaTypeV32 struct {
	Schema   *SchemaV32              `json:"schema,omitempty"`
	Examples map[string]*ExampleV32  `json:"examples,omitempty"`
	Encoding map[string]*EncodingV32 `json:"encoding,omitempty"`
}

type EncodingV32 struct {
	ContentType string                `json:"contentType,omitempty"`
	Headers     map[string]*HeaderV32 `json:"headers,omitempty"`
	Style       string                `json:"style,omitempty"`
	Explode     bool                  `json:"explode,omitempty"`
}

type ResponsesV32 map[string]*ResponseV32

type ResponseV32 struct {
	Description string                   `json:"description"`
	Headers     map[string]*HeaderV32    `json:"headers,omitempty"`
	Content     map[string]*MediaTypeV32 `json:"content,omitempty"`
	Links       map[string]*LinkV32      `json:"links,omitempty"`
}

type SchemaV32 struct {
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

	Properties map[string]*SchemaV32 `json:"properties,omitempty"`
	Required   []string              `json:"required,omitempty"`
	Items      *SchemaV32            `json:"items,omitempty"`

	OneOf []*SchemaV32 `json:"oneOf,omitempty"`
	AnyOf []*SchemaV32 `json:"anyOf,omitempty"`
	AllOf []*SchemaV32 `json:"allOf,omitempty"`

	Discriminator    *DiscriminatorV32 `json:"discriminator,omitempty"`
	XML              *XMLV32           `json:"xml,omitempty"`
	Examples         []any             `json:"examples,omitempty"`
	Enum             []any             `json:"enum,omitempty"`
	ContentEncoding  string            `json:"contentEncoding,omitempty"`
	ContentMediaType string            `json:"contentMediaType,omitempty"`
}

type DiscriminatorV32 struct {
	PropertyName string            `json:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty"`
}

type XMLV32 struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Attribute bool   `json:"attribute,omitempty"`
	Wrapped   bool   `json:"wrapped,omitempty"`
}

type ComponentsV32 struct {
	Schemas         map[string]*SchemaV32         `json:"schemas,omitempty"`
	SecuritySchemes map[string]*SecuritySchemeV32 `json:"securitySchemes,omitempty"`
	Parameters      map[string]*ParameterV32      `json:"parameters,omitempty"`
	Responses       map[string]*ResponseV32       `json:"responses,omitempty"`
	Headers         map[string]*HeaderV32         `json:"headers,omitempty"`
	RequestBodies   map[string]*RequestBodyV32    `json:"requestBodies,omitempty"`
	Examples        map[string]*ExampleV32        `json:"examples,omitempty"`
	Links           map[string]*LinkV32           `json:"links,omitempty"`
	Callbacks       map[string]*CallbackV32       `json:"callbacks,omitempty"`
	PathItems       map[string]*PathItemV32       `json:"pathItems,omitempty"`
}

type SecurityRequirementV32 map[string][]string

type SecuritySchemeV32 struct {
	Type             string         `json:"type"`
	Description      string         `json:"description,omitempty"`
	Name             string         `json:"name,omitempty"`
	In               string         `json:"in,omitempty"`
	Scheme           string         `json:"scheme,omitempty"`
	BearerFormat     string         `json:"bearerFormat,omitempty"`
	Flows            *OAuthFlowsV32 `json:"flows,omitempty"`
	OpenIDConnectURL string         `json:"openIdConnectUrl,omitempty"`
}

// OAuthFlowsV32 is the only view to carry DeviceAuthorization without a
// downgrade warning; it is 3.2-only.
type OAuthFlowsV32 struct {
	Implicit            *OAuthFlowV32 `json:"implicit,omitempty"`
	Password            *OAuthFlowV32 `json:"password,omitempty"`
	ClientCredentials   *OAuthFlowV32 `json:"clientCredentials,omitempty"`
	AuthorizationCode   *OAuthFlowV32 `json:"authorizationCode,omitempty"`
	DeviceAuthorization *OAuthFlowV32 `json:"deviceAuthorization,omitempty"`
}

type OAuthFlowV32 struct {
	AuthorizationURL       string            `json:"authorizationUrl,omitempty"`
	TokenURL               string            `json:"tokenUrl,omitempty"`
	RefreshURL             string            `json:"refreshUrl,omitempty"`
	DeviceAuthorizationURL string            `json:"deviceAuthorizationUrl,omitempty"`
	Scopes                 map[string]string `json:"scopes"`
}

type TagV32 struct {
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Parent       string           `json:"parent,omitempty"`
	Kind         string           `json:"kind,omitempty"`
	ExternalDocs *ExternalDocsV32 `json:"externalDocs,omitempty"`
}

type ExternalDocsV32 struct {
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

type ExampleV32 struct {
	Summary       string `json:"summary,omitempty"`
	Description   string `json:"description,omitempty"`
	Value         any    `json:"value,omitempty"`
	ExternalValue string `json:"externalValue,omitempty"`
}

type HeaderV32 struct {
	Description string     `json:"description,omitempty"`
	Required    bool       `json:"required,omitempty"`
	Schema      *SchemaV32 `json:"schema,omitempty"`
}

type LinkV32 struct {
	OperationID string         `json:"operationId,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Description string         `json:"description,omitempty"`
}

type CallbackV32 map[string]*PathItemV32

func (c CallbackV32) MarshalJSON() ([]byte, error) {
	type callbackV32 CallbackV32
	return util.MarshalWithExtensions(callbackV32(c), nil)
}
