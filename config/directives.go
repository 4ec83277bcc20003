package config

// DirectiveConfig configures the doc-directive names recognized by the
// Doc-Directive Parser. Where config.TagConfig names the Go struct-tag
// keys the schema generator looks for, DirectiveConfig names the `@`/`\`
// doc-comment directives the scanner dispatches on, letting a caller
// rename e.g. `@route` to `@endpoint` without touching the parser.
type DirectiveConfig struct {
	// Route is the directive name for a path + HTTP verb (e.g. "route").
	Route string

	// Webhook is the directive name for a webhook route (e.g. "webhook").
	Webhook string

	// Param is the directive name for a single parameter (e.g. "param").
	Param string

	// Return is the directive name for a response (e.g. "return").
	Return string

	// Security is the directive name for a security requirement
	// (e.g. "security").
	Security string

	// SecurityScheme is the directive name for a security scheme
	// definition (e.g. "securityScheme").
	SecurityScheme string

	// Server is the directive name for a server entry (e.g. "server").
	Server string

	// RequestBody is the directive name for a request body
	// (e.g. "requestBody").
	RequestBody string

	// Tag is the directive name for an operation tag list (e.g. "tag").
	Tag string

	// TagMeta is the directive name for tag metadata (e.g. "tagMeta").
	TagMeta string

	// Summary is the directive name for a one-line summary
	// (e.g. "summary").
	Summary string

	// Description is the directive name for a long-form description
	// (e.g. "description").
	Description string

	// OperationID is the directive name for an explicit operation ID
	// (e.g. "operationId").
	OperationID string

	// Deprecated is the directive name marking deprecation
	// (e.g. "deprecated").
	Deprecated string
}

// DefaultDirectiveConfig returns the directive names spec §4.4 uses.
func DefaultDirectiveConfig() DirectiveConfig {
	return DirectiveConfig{
		Route:          "route",
		Webhook:        "webhook",
		Param:          "param",
		Return:         "return",
		Security:       "security",
		SecurityScheme: "securityScheme",
		Server:         "server",
		RequestBody:    "requestBody",
		Tag:            "tag",
		TagMeta:        "tagMeta",
		Summary:        "summary",
		Description:    "description",
		OperationID:    "operationId",
		Deprecated:     "deprecated",
	}
}

// MergeDirectiveConfig merges cfg into current, preserving current
// values when cfg fields are empty. Non-empty values in cfg override
// corresponding fields in current.
func MergeDirectiveConfig(current, cfg DirectiveConfig) DirectiveConfig {
	result := current

	if cfg.Route != "" {
		result.Route = cfg.Route
	}
	if cfg.Webhook != "" {
		result.Webhook = cfg.Webhook
	}
	if cfg.Param != "" {
		result.Param = cfg.Param
	}
	if cfg.Return != "" {
		result.Return = cfg.Return
	}
	if cfg.Security != "" {
		result.Security = cfg.Security
	}
	if cfg.SecurityScheme != "" {
		result.SecurityScheme = cfg.SecurityScheme
	}
	if cfg.Server != "" {
		result.Server = cfg.Server
	}
	if cfg.RequestBody != "" {
		result.RequestBody = cfg.RequestBody
	}
	if cfg.Tag != "" {
		result.Tag = cfg.Tag
	}
	if cfg.TagMeta != "" {
		result.TagMeta = cfg.TagMeta
	}
	if cfg.Summary != "" {
		result.Summary = cfg.Summary
	}
	if cfg.Description != "" {
		result.Description = cfg.Description
	}
	if cfg.OperationID != "" {
		result.OperationID = cfg.OperationID
	}
	if cfg.Deprecated != "" {
		result.Deprecated = cfg.Deprecated
	}

	return result
}

// NewDirectiveConfig creates a DirectiveConfig with explicit values for
// all fields.
func NewDirectiveConfig(route, webhook, param, ret, security, securityScheme,
	server, requestBody, tag, tagMeta, summary, description, operationID, deprecated string,
) DirectiveConfig {
	return DirectiveConfig{
		Route:          route,
		Webhook:        webhook,
		Param:          param,
		Return:         ret,
		Security:       security,
		SecurityScheme: securityScheme,
		Server:         server,
		RequestBody:    requestBody,
		Tag:            tag,
		TagMeta:        tagMeta,
		Summary:        summary,
		Description:    description,
		OperationID:    operationID,
		Deprecated:     deprecated,
	}
}
