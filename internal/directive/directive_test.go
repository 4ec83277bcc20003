package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRouteAndWebhookHeuristic(t *testing.T) {
	doc := Parse("@route GET /pets/{id}")
	assert.Equal(t, "GET", doc.Method)
	assert.Equal(t, "/pets/{id}", doc.Route)
	assert.False(t, doc.IsWebhook)

	doc = Parse("@route /pets/{id}")
	assert.Equal(t, "GET", doc.Method)
	assert.Equal(t, "/pets/{id}", doc.Route)

	doc = Parse("@webhook POST /newPet")
	assert.True(t, doc.IsWebhook)
	assert.Equal(t, "POST", doc.Method)
}

// TestParseConcreteScenarioPetByID realizes spec §8 scenario 2 exactly:
// @route GET /pets/{id} + @param id [in:path][required] Pet ID +
// @return 200 [contentType:application/json] Single pet.
func TestParseConcreteScenarioPetByID(t *testing.T) {
	block := "@route GET /pets/{id}\n" +
		"@param id [in:path][required] Pet ID\n" +
		"@return 200 [contentType:application/json] Single pet"

	doc := Parse(block)

	assert.Equal(t, "GET", doc.Method)
	assert.Equal(t, "/pets/{id}", doc.Route)

	require.Len(t, doc.Params, 1)
	p := doc.Params[0]
	assert.Equal(t, "id", p.Name)
	assert.Equal(t, "path", p.In)
	assert.True(t, p.Required)
	assert.Equal(t, "Pet ID", p.Description)

	require.Len(t, doc.Returns, 1)
	r := doc.Returns[0]
	assert.Equal(t, "200", r.StatusCode)
	assert.Equal(t, "application/json", r.ContentType)
	assert.Equal(t, "Single pet", r.Description)
}

func TestParseUnknownDirectiveSilentlyDropped(t *testing.T) {
	doc := Parse("@bogusDirective something\n@summary Widget listing")
	assert.Equal(t, "Widget listing", doc.Summary)
}

func TestParseSecuritySchemeOAuthFlowValidation(t *testing.T) {
	doc := Parse("@securityScheme oauth [type:oauth2][flow:authorizationCode]" +
		"[authorizationUrl:https://example.com/auth][tokenUrl:https://example.com/token][scopes:read|write]")

	require.Len(t, doc.SecuritySchemes, 1)
	ss := doc.SecuritySchemes[0]
	assert.Equal(t, "oauth2", ss.Type)
	require.Len(t, ss.Flows, 1)
	assert.Equal(t, "authorizationCode", ss.Flows[0].Flow)
	assert.Contains(t, ss.Flows[0].Scopes, "read")
	assert.Contains(t, ss.Flows[0].Scopes, "write")
}

func TestParseSecuritySchemeInvalidFlowDropped(t *testing.T) {
	// implicit requires authorizationUrl; omit it.
	doc := Parse("@securityScheme oauth [type:oauth2][flow:implicit][tokenUrl:https://example.com/token]")
	require.Len(t, doc.SecuritySchemes, 1)
	assert.Empty(t, doc.SecuritySchemes[0].Flows)
}

func TestParseServerAndServerVar(t *testing.T) {
	block := "@server https://{env}.example.com Environment-scoped server\n" +
		"@serverVar env [default:prod][enum:prod|staging] Deployment environment"

	doc := Parse(block)
	require.Len(t, doc.Servers, 1)
	require.Len(t, doc.Servers[0].Variables, 1)
	v := doc.Servers[0].Variables[0]
	assert.Equal(t, "prod", v.Default)
	assert.ElementsMatch(t, []string{"prod", "staging"}, v.Enum)
}

func TestParseMalformedBracketStopsAttributeParsing(t *testing.T) {
	doc := Parse("@param id [in:path required description text")
	require.Len(t, doc.Params, 1)
	assert.Empty(t, doc.Params[0].In)
	assert.Equal(t, "[in:path required description text", doc.Params[0].Description)
}

func TestParseCommentDecoratorsStripped(t *testing.T) {
	block := "/**\n * @summary Widget API\n * @infoVersion 1.0.0\n */"
	doc := Parse(block)
	assert.Equal(t, "Widget API", doc.Summary)
	assert.Equal(t, "1.0.0", doc.Info.Version)
}

func TestParseTagMetaParentAndKind(t *testing.T) {
	doc := Parse("@tagMeta widgets [parent:items][kind:nav] Widget operations")
	require.Len(t, doc.TagMeta, 1)
	assert.Equal(t, "widgets", doc.TagMeta[0].Name)
	assert.Equal(t, "items", doc.TagMeta[0].Parent)
	assert.Equal(t, "nav", doc.TagMeta[0].Kind)
}
