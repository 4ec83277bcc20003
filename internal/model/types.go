// Package model is the version-agnostic intermediate representation
// shared by the Inspector, the Doc-Directive Parser, the Aggregator, and
// the Code Emitter. It is the Go-shaped realization of spec §3's data
// model (Token/TypeDefinition/StructField/StructFields/Spec/Operation/
// SchemaRef), adapted closely from the teacher's own OpenAPI object
// model where the object (Info, Server, Components, SecurityScheme, ...)
// is literally the same across both domains.
package model

import "encoding/json"

// TypeKind distinguishes a TypeDefinition as enum or struct, per spec §3.
type TypeKind int

const (
	KindStruct TypeKind = iota
	KindEnum
)

// LogicalType is a StructField's JSON-Schema-shaped logical type.
type LogicalType string

const (
	TypeString  LogicalType = "string"
	TypeInteger LogicalType = "integer"
	TypeNumber  LogicalType = "number"
	TypeBoolean LogicalType = "boolean"
	TypeObject  LogicalType = "object"
	TypeEnum    LogicalType = "enum"
	TypeArray   LogicalType = "array"
	TypeNull    LogicalType = "null"
)

// PrimitiveNames is the set of logical-type names treated as primitives
// by ResolveRef, per spec §4.5 "get_type_from_ref".
var PrimitiveNames = map[string]bool{
	"string": true, "integer": true, "number": true, "boolean": true,
	"object": true, "null": true, "array": true,
}

// Constraints carries a StructField's validation bounds, per spec §3.
type Constraints struct {
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum bool
	ExclusiveMaximum bool
	MinLength        *int
	MaxLength        *int
	Pattern          string
	Format           string
	MinItems         *int
	MaxItems         *int
	UniqueItems      bool
	Required         bool
}

// UnionVariantMeta describes one arm of a discriminated union, per spec §3.
type UnionVariantMeta struct {
	JSONType           string // "object", "array", "string", "number", "boolean", "null"
	Required           []string
	Declared           []string
	DiscriminatorValue string
}

// StructField is one member of a StructFields, per spec §3.
type StructField struct {
	Name          string
	Type          LogicalType
	RefName       string // target type for object/enum, item type for array
	Default       *string
	Constraints   Constraints
	BitWidth      int
	FlexibleArray bool
	Variant       *UnionVariantMeta
}

// StructFields is the container of StructField plus schema-level flags,
// per spec §3.
type StructFields struct {
	Fields             []StructField
	IsEnum             bool
	IsUnion            bool
	UnionIsAnyOf       bool
	UnionDiscriminator string
	Variants           []UnionVariantMeta
	Extras             json.RawMessage
}

// TypeDefinition is produced by the Inspector and consumed by the
// Aggregator, per spec §3.
type TypeDefinition struct {
	Kind        TypeKind
	Name        string
	EnumMembers []string
	Fields      *StructFields
}

// TypeDefList is an ordered collection of TypeDefinition.
type TypeDefList []TypeDefinition

// Contact is the OpenAPI Contact Object.
type Contact struct {
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

// License is the OpenAPI License Object.
type License struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Info is the OpenAPI Info Object.
type Info struct {
	Title          string   `json:"title"`
	Summary        string   `json:"summary,omitempty"`
	Description    string   `json:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty"`
	License        *License `json:"license,omitempty"`
	Version        string   `json:"version"`
}

// ServerVariable is the OpenAPI Server Variable Object.
type ServerVariable struct {
	Enum        []string `json:"enum,omitempty"`
	Default     string   `json:"default"`
	Description string   `json:"description,omitempty"`
}

// Server is the OpenAPI Server Object.
type Server struct {
	URL         string                    `json:"url"`
	Description string                    `json:"description,omitempty"`
	Variables   map[string]ServerVariable `json:"variables,omitempty"`
}

// ExternalDocs is the OpenAPI External Documentation Object.
type ExternalDocs struct {
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

// Tag is the OpenAPI Tag Object, with hierarchy (parent/kind) as spec §3
// requires.
type Tag struct {
	Name         string        `json:"name"`
	Summary      string        `json:"summary,omitempty"`
	Description  string        `json:"description,omitempty"`
	Parent       string        `json:"parent,omitempty"`
	Kind         string        `json:"kind,omitempty"`
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty"`
}

// SecurityRequirement maps scheme name to required scopes.
type SecurityRequirement map[string][]string

// OAuthFlow is the OpenAPI OAuth Flow Object.
type OAuthFlow struct {
	AuthorizationURL       string            `json:"authorizationUrl,omitempty"`
	TokenURL               string            `json:"tokenUrl,omitempty"`
	RefreshURL             string            `json:"refreshUrl,omitempty"`
	DeviceAuthorizationURL string            `json:"deviceAuthorizationUrl,omitempty"`
	Scopes                 map[string]string `json:"scopes"`
}

// OAuthFlows is the OpenAPI OAuth Flows Object.
type OAuthFlows struct {
	Implicit            *OAuthFlow `json:"implicit,omitempty"`
	Password            *OAuthFlow `json:"password,omitempty"`
	ClientCredentials   *OAuthFlow `json:"clientCredentials,omitempty"`
	AuthorizationCode   *OAuthFlow `json:"authorizationCode,omitempty"`
	DeviceAuthorization *OAuthFlow `json:"deviceAuthorization,omitempty"`
}

// SecurityScheme is the OpenAPI Security Scheme Object.
type SecurityScheme struct {
	Type             string      `json:"type"`
	Description      string      `json:"description,omitempty"`
	Name             string      `json:"name,omitempty"`
	In               string      `json:"in,omitempty"`
	Scheme           string      `json:"scheme,omitempty"`
	BearerFormat     string      `json:"bearerFormat,omitempty"`
	Flows            *OAuthFlows `json:"flows,omitempty"`
	OpenIDConnectURL string      `json:"openIdConnectUrl,omitempty"`
}

// Discriminator is the OpenAPI Discriminator Object.
type Discriminator struct {
	PropertyName string            `json:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty"`
}

// XML is the OpenAPI XML Object.
type XML struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Attribute bool   `json:"attribute,omitempty"`
	Wrapped   bool   `json:"wrapped,omitempty"`
}

// Schema is the polymorphic schema handle of spec §3's SchemaRef: a named
// reference, an inline type, a boolean schema, or an array with inlined
// items. It has no separate multipart-fields form. It carries all validation
// constraints, format, content-media-type, discriminator, XML hints,
// examples, enum values, default/const values, and nullability.
type Schema struct {
	Ref  string `json:"$ref,omitempty"`
	Bool *bool  `json:"-"` // true/false boolean schema, mutually exclusive with the rest

	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Const       any    `json:"const,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
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

	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Items      *Schema            `json:"items,omitempty"`

	OneOf []*Schema `json:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty"`

	Discriminator    *Discriminator `json:"discriminator,omitempty"`
	XML              *XML           `json:"xml,omitempty"`
	Examples         []any          `json:"examples,omitempty"`
	ContentEncoding  string         `json:"contentEncoding,omitempty"`
	ContentMediaType string         `json:"contentMediaType,omitempty"`

	Extras json.RawMessage `json:"-"`
}

// Encoding is the OpenAPI Encoding Object.
type Encoding struct {
	ContentType string             `json:"contentType,omitempty"`
	Headers     map[string]*Header `json:"headers,omitempty"`
	Style       string             `json:"style,omitempty"`
	Explode     bool               `json:"explode,omitempty"`
}

// Header is the OpenAPI Header Object.
type Header struct {
	Description string  `json:"description,omitempty"`
	Required    bool    `json:"required,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
}

// MediaType is the OpenAPI Media Type Object.
type MediaType struct {
	Schema   *Schema              `json:"schema,omitempty"`
	Examples map[string]Example   `json:"examples,omitempty"`
	Encoding map[string]*Encoding `json:"encoding,omitempty"`
}

// Example is the OpenAPI Example Object.
type Example struct {
	Summary       string `json:"summary,omitempty"`
	Description   string `json:"description,omitempty"`
	Value         any    `json:"value,omitempty"`
	ExternalValue string `json:"externalValue,omitempty"`
}

// Parameter is the OpenAPI Parameter Object.
type Parameter struct {
	Name          string                `json:"name"`
	In            string                `json:"in"`
	Description   string                `json:"description,omitempty"`
	Required      bool                  `json:"required,omitempty"`
	Deprecated    bool                  `json:"deprecated,omitempty"`
	Style         string                `json:"style,omitempty"`
	Explode       bool                  `json:"explode,omitempty"`
	AllowReserved bool                  `json:"allowReserved,omitempty"`
	Schema        *Schema               `json:"schema,omitempty"`
	Content       map[string]*MediaType `json:"content,omitempty"`
	Example       any                   `json:"example,omitempty"`
}

// RequestBody is the OpenAPI Request Body Object.
type RequestBody struct {
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content"`
	Required    bool                  `json:"required,omitempty"`
}

// Link is the OpenAPI Link Object.
type Link struct {
	OperationID string         `json:"operationId,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Description string         `json:"description,omitempty"`
}

// Response is the OpenAPI Response Object.
type Response struct {
	Description string                `json:"description"`
	Headers     map[string]*Header    `json:"headers,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
	Links       map[string]*Link      `json:"links,omitempty"`
}

// Callback maps an expression to a PathItem, OpenAPI Callback Object.
type Callback map[string]*PathItem

// Operation is one HTTP verb's behavior on a PathItem, per spec §3.
type Operation struct {
	Method       string // verb, or free-form method for additionalOperations
	OperationID  string
	Summary      string
	Description  string
	Tags         []string
	Parameters   []Parameter
	RequestBody  *RequestBody
	Responses    map[string]*Response
	Callbacks    map[string]Callback
	Servers      []Server
	Security     []SecurityRequirement
	ExternalDocs *ExternalDocs
	Deprecated   bool
}

// PathItem groups the verb-keyed operations for a single route.
type PathItem struct {
	Route                string
	Operations           map[string]*Operation // keyed by uppercase verb
	AdditionalOperations map[string]*Operation // keyed by free-form method
}

// Components is the OpenAPI Components Object.
type Components struct {
	Schemas         map[string]*Schema
	SecuritySchemes map[string]*SecurityScheme
	Parameters      map[string]*Parameter
	Responses       map[string]*Response
	Headers         map[string]*Header
	RequestBodies   map[string]*RequestBody
	MediaTypes      map[string]*MediaType
	Examples        map[string]*Example
	Links           map[string]*Link
	Callbacks       map[string]Callback
	PathItems       map[string]*PathItem
}

// Spec is the root intermediate model, per spec §3.
type Spec struct {
	OpenAPI           string
	Self              string
	JSONSchemaDialect string
	Info              Info
	ExternalDocs      *ExternalDocs
	Tags              []Tag
	Security          []SecurityRequirement
	Servers           []Server
	Paths             map[string]*PathItem
	Webhooks          map[string]*PathItem
	Components        Components
	Extensions        map[string]any
}

// NewSpec returns a Spec with all map fields initialized.
func NewSpec() *Spec {
	return &Spec{
		Paths:    make(map[string]*PathItem),
		Webhooks: make(map[string]*PathItem),
		Components: Components{
			Schemas:         make(map[string]*Schema),
			SecuritySchemes: make(map[string]*SecurityScheme),
			Parameters:      make(map[string]*Parameter),
			Responses:       make(map[string]*Response),
			Headers:         make(map[string]*Header),
			RequestBodies:   make(map[string]*RequestBody),
			MediaTypes:      make(map[string]*MediaType),
			Examples:        make(map[string]*Example),
			Links:           make(map[string]*Link),
			Callbacks:       make(map[string]Callback),
			PathItems:       make(map[string]*PathItem),
		},
		Extensions: make(map[string]any),
	}
}

// DocMetadata is a per-comment-block record produced by the Doc-Directive
// Parser, per spec §3.
type DocMetadata struct {
	Route          string
	Method         string
	IsWebhook      bool
	OperationID    string
	Summary        string
	Description    string
	Tags           []string
	Params         []ParamDoc
	Returns        []ReturnDoc
	ResponseHeaders []ResponseHeaderDoc
	Links          []LinkDoc
	Security       []SecurityReqDoc
	SecuritySchemes []SecuritySchemeDoc
	Servers        []ServerDoc
	RequestBody    *RequestBodyDoc
	Encodings      []EncodingDoc
	ExternalDocs   *ExternalDocs
	Contact        *Contact
	License        *License
	Info           InfoDoc
	JSONSchemaDialect string
	Deprecated     bool
	TagMeta        []TagMeta
}

// ParamDoc is one @param directive's parsed record.
type ParamDoc struct {
	Name            string
	In              string
	Required        bool
	ContentType     string
	Format          string
	Style           string
	Explode         bool
	AllowReserved   bool
	AllowEmptyValue bool
	ItemSchema      string
	Deprecated      bool
	Example         string
	Description     string
}

// ReturnDoc is one @return/@returns directive's parsed record.
type ReturnDoc struct {
	StatusCode  string
	ContentType string
	Summary     string
	ItemSchema  string
	Example     string
	Description string
}

// ResponseHeaderDoc is one @responseHeader directive's parsed record.
type ResponseHeaderDoc struct {
	StatusCode  string
	Name        string
	Description string
}

// LinkDoc is one @link directive's parsed record.
type LinkDoc struct {
	Name        string
	OperationID string
	Description string
}

// SecurityReqDoc is one @security directive's parsed record.
type SecurityReqDoc struct {
	Name   string
	Scopes []string
}

// OAuthFlowDoc is one OAuth flow clause inside @securityScheme.
type OAuthFlowDoc struct {
	Flow                   string
	AuthorizationURL       string
	TokenURL               string
	RefreshURL             string
	DeviceAuthorizationURL string
	Scopes                 map[string]string
}

// SecuritySchemeDoc is one @securityScheme directive's parsed record.
type SecuritySchemeDoc struct {
	Name         string
	Type         string
	Scheme       string
	BearerFormat string
	In           string
	ParamName    string
	OpenIDConnectURL string
	Flows        []OAuthFlowDoc
}

// ServerVarDoc is one @serverVar directive's parsed record.
type ServerVarDoc struct {
	Name        string
	Default     string
	Enum        []string
	Description string
}

// ServerDoc is one @server directive's parsed record.
type ServerDoc struct {
	URL         string
	Description string
	Variables   []ServerVarDoc
}

// RequestBodyDoc is one @requestBody directive's parsed record.
type RequestBodyDoc struct {
	ContentType string
	Schema      string
	Required    bool
	Description string
}

// EncodingDoc is one @encoding/@prefixEncoding/@itemEncoding directive's
// parsed record.
type EncodingDoc struct {
	PropertyName string
	ContentType  string
	Kind         string // "encoding", "prefixEncoding", "itemEncoding"
}

// InfoDoc collects @infoTitle/@infoVersion/@infoSummary/@infoDescription/
// @termsOfService directives.
type InfoDoc struct {
	Title          string
	Version        string
	Summary        string
	Description    string
	TermsOfService string
}

// TagMeta is one @tagMeta directive's parsed record.
type TagMeta struct {
	Name         string
	Summary      string
	Description  string
	Parent       string
	Kind         string
	ExternalDocs *ExternalDocs
}
