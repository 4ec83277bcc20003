package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTypesFirstWinsIdempotence(t *testing.T) {
	spec := NewSpec()
	defs := TypeDefList{
		{Kind: KindStruct, Name: "Point", Fields: &StructFields{
			Fields: []StructField{{Name: "x", Type: TypeInteger}, {Name: "y", Type: TypeInteger}},
		}},
	}
	require.NoError(t, RegisterTypes(spec, defs))
	first := spec.Components.Schemas["Point"]

	// Re-registering under the same name, with different shape, must not
	// overwrite the first-registered schema.
	again := TypeDefList{
		{Kind: KindStruct, Name: "Point", Fields: &StructFields{
			Fields: []StructField{{Name: "z", Type: TypeInteger}},
		}},
	}
	require.NoError(t, RegisterTypes(spec, again))
	assert.Same(t, first, spec.Components.Schemas["Point"])
	assert.Len(t, spec.Components.Schemas["Point"].Properties, 2)
}

func TestRegisterTypesDuplicateFieldNameErrors(t *testing.T) {
	spec := NewSpec()
	defs := TypeDefList{
		{Kind: KindStruct, Name: "Bad", Fields: &StructFields{
			Fields: []StructField{{Name: "x", Type: TypeInteger}, {Name: "x", Type: TypeString}},
		}},
	}
	err := RegisterTypes(spec, defs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateFieldName)
}

func TestRegisterTypesEnum(t *testing.T) {
	spec := NewSpec()
	defs := TypeDefList{
		{Kind: KindEnum, Name: "Color", EnumMembers: []string{"UNKNOWN", "RED", "GREEN"}},
	}
	require.NoError(t, RegisterTypes(spec, defs))
	s := spec.Components.Schemas["Color"]
	require.NotNil(t, s)
	assert.Equal(t, "string", s.Type)
	assert.ElementsMatch(t, []any{"RED", "GREEN"}, s.Enum)
}

func TestRegisterTypesUnion(t *testing.T) {
	spec := NewSpec()
	defs := TypeDefList{
		{Kind: KindStruct, Name: "Shape", Fields: &StructFields{
			IsUnion:            true,
			UnionDiscriminator: "kind",
			Variants: []UnionVariantMeta{
				{JSONType: "object", Required: []string{"radius"}, DiscriminatorValue: "circle"},
				{JSONType: "object", Required: []string{"side"}, DiscriminatorValue: "square"},
			},
		}},
	}
	require.NoError(t, RegisterTypes(spec, defs))
	s := spec.Components.Schemas["Shape"]
	require.NotNil(t, s)
	assert.Len(t, s.OneOf, 2)
	require.NotNil(t, s.Discriminator)
	assert.Equal(t, "kind", s.Discriminator.PropertyName)
}

func TestAddOperationCreatesAndGroupsByMethod(t *testing.T) {
	spec := NewSpec()
	require.NoError(t, AddOperation(spec, "/widgets/:id", &Operation{Method: "get", OperationID: "getWidget"}))
	require.NoError(t, AddOperation(spec, "/widgets/:id", &Operation{Method: "delete", OperationID: "deleteWidget"}))

	item, ok := spec.Paths["/widgets/:id"]
	require.True(t, ok)
	require.Contains(t, item.Operations, "GET")
	require.Contains(t, item.Operations, "DELETE")
	assert.Equal(t, "getWidget", item.Operations["GET"].OperationID)
}

func TestAddOperationNonStandardMethodGoesToAdditional(t *testing.T) {
	spec := NewSpec()
	require.NoError(t, AddOperation(spec, "/widgets", &Operation{Method: "QUERY", OperationID: "queryWidgets"}))
	item := spec.Paths["/widgets"]
	require.Contains(t, item.AdditionalOperations, "QUERY")
	assert.NotContains(t, item.Operations, "QUERY")
}

func TestAddOperationNilErrors(t *testing.T) {
	spec := NewSpec()
	err := AddOperation(spec, "/x", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilOperation)
}

func TestAddWebhookOperationTargetsWebhooksList(t *testing.T) {
	spec := NewSpec()
	require.NoError(t, AddWebhookOperation(spec, "newPet", &Operation{Method: "post"}))
	assert.Contains(t, spec.Webhooks, "newPet")
	assert.NotContains(t, spec.Paths, "newPet")
}

func TestApplyGlobalMetaFirstSetWinsAndConflict(t *testing.T) {
	spec := NewSpec()
	doc1 := &DocMetadata{Info: InfoDoc{Title: "Widgets API", Version: "1.0.0"}}
	require.NoError(t, ApplyGlobalMeta(spec, doc1))
	assert.Equal(t, "Widgets API", spec.Info.Title)

	doc2 := &DocMetadata{Info: InfoDoc{Title: "Different Title"}}
	err := ApplyGlobalMeta(spec, doc2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestApplyGlobalMetaDescriptionFillsIfAbsent(t *testing.T) {
	spec := NewSpec()
	doc1 := &DocMetadata{Info: InfoDoc{Title: "API", Version: "1.0.0"}}
	require.NoError(t, ApplyGlobalMeta(spec, doc1))

	doc2 := &DocMetadata{Info: InfoDoc{Description: "A widget API."}}
	require.NoError(t, ApplyGlobalMeta(spec, doc2))
	assert.Equal(t, "A widget API.", spec.Info.Description)
}

func TestApplyGlobalMetaLicenseMutuallyExclusive(t *testing.T) {
	spec := NewSpec()
	doc := &DocMetadata{License: &License{Name: "MIT", Identifier: "MIT", URL: "https://example.com/mit"}}
	err := ApplyGlobalMeta(spec, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLicenseMutuallyExclusive)
}

func TestApplyGlobalMetaServerVariableDefaultMustBeInEnum(t *testing.T) {
	spec := NewSpec()
	doc := &DocMetadata{Servers: []ServerDoc{
		{URL: "https://{env}.example.com", Variables: []ServerVarDoc{
			{Name: "env", Default: "bogus", Enum: []string{"prod", "staging"}},
		}},
	}}
	err := ApplyGlobalMeta(spec, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerVariableDefaultMissing)
}

func TestApplyGlobalMetaServerURLRejectsQueryAndFragment(t *testing.T) {
	spec := NewSpec()
	doc := &DocMetadata{Servers: []ServerDoc{{URL: "https://example.com?x=1"}}}
	err := ApplyGlobalMeta(spec, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerURLInvalid)
}

func TestAddSecuritySchemeOAuth2FlowMergeConflict(t *testing.T) {
	spec := NewSpec()
	doc1 := &SecuritySchemeDoc{
		Name: "oauth", Type: "oauth2",
		Flows: []OAuthFlowDoc{{
			Flow: "authorizationCode", AuthorizationURL: "https://example.com/auth",
			TokenURL: "https://example.com/token", Scopes: map[string]string{"read": "Read access"},
		}},
	}
	require.NoError(t, AddSecurityScheme(spec, doc1))

	doc2 := &SecuritySchemeDoc{
		Name: "oauth", Type: "oauth2",
		Flows: []OAuthFlowDoc{{
			Flow: "authorizationCode", TokenURL: "https://example.com/token",
			Scopes: map[string]string{"read": "A different description"},
		}},
	}
	err := AddSecurityScheme(spec, doc2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAddSecuritySchemeOAuth2FlowMergeUnionsScopes(t *testing.T) {
	spec := NewSpec()
	doc1 := &SecuritySchemeDoc{
		Name: "oauth", Type: "oauth2",
		Flows: []OAuthFlowDoc{{Flow: "clientCredentials", TokenURL: "https://example.com/token",
			Scopes: map[string]string{"read": "Read access"}}},
	}
	require.NoError(t, AddSecurityScheme(spec, doc1))

	doc2 := &SecuritySchemeDoc{
		Name: "oauth", Type: "oauth2",
		Flows: []OAuthFlowDoc{{Flow: "clientCredentials", TokenURL: "https://example.com/token",
			Scopes: map[string]string{"write": "Write access"}}},
	}
	require.NoError(t, AddSecurityScheme(spec, doc2))

	flow := spec.Components.SecuritySchemes["oauth"].Flows.ClientCredentials
	assert.Equal(t, "Read access", flow.Scopes["read"])
	assert.Equal(t, "Write access", flow.Scopes["write"])
}

func TestAddSecuritySchemeTypeConflict(t *testing.T) {
	spec := NewSpec()
	require.NoError(t, AddSecurityScheme(spec, &SecuritySchemeDoc{Name: "auth", Type: "apiKey", ParamName: "X-API-Key", In: "header"}))
	err := AddSecurityScheme(spec, &SecuritySchemeDoc{Name: "auth", Type: "http", Scheme: "bearer"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMergeTagsFillsIfAbsentAndCreatesImplicit(t *testing.T) {
	spec := NewSpec()
	spec.Tags = append(spec.Tags, Tag{Name: "widgets", Summary: "Existing summary"})

	require.NoError(t, MergeTags(spec, []TagMeta{
		{Name: "widgets", Summary: "New summary", Description: "Widget operations"},
		{Name: "admin", Summary: "Admin operations"},
	}))

	var widgets, admin *Tag
	for i := range spec.Tags {
		switch spec.Tags[i].Name {
		case "widgets":
			widgets = &spec.Tags[i]
		case "admin":
			admin = &spec.Tags[i]
		}
	}
	require.NotNil(t, widgets)
	require.NotNil(t, admin)
	assert.Equal(t, "Existing summary", widgets.Summary) // not overwritten
	assert.Equal(t, "Widget operations", widgets.Description)
	assert.Equal(t, "Admin operations", admin.Summary)
}

func TestEnsureTagIsIdempotent(t *testing.T) {
	spec := NewSpec()
	EnsureTag(spec, "widgets")
	EnsureTag(spec, "widgets")
	assert.Len(t, spec.Tags, 1)
}

func TestResolveRef(t *testing.T) {
	name, isPrim := ResolveRef("#/components/schemas/Widget")
	assert.Equal(t, "Widget", name)
	assert.False(t, isPrim)

	name, isPrim = ResolveRef("string")
	assert.Equal(t, "string", name)
	assert.True(t, isPrim)
}
