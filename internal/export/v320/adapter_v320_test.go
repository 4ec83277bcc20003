package v320

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

func TestAdapterV320_Version(t *testing.T) {
	assert.Equal(t, "3.2", AdapterV320{}.Version())
}

func TestAdapterV320_View_NilSpec(t *testing.T) {
	_, _, err := AdapterV320{}.View(nil)
	require.Error(t, err)
}

func TestAdapterV320_View_NoWarningsEvenWithEveryFeature(t *testing.T) {
	spec := model.NewSpec()
	spec.Self = "https://example.com/openapi.json"
	spec.JSONSchemaDialect = "https://spec.openapis.org/oas/3.2/dialect/base"
	spec.Info = model.Info{Title: "Widgets API", Version: "1.0.0", Summary: "A widget API"}
	spec.Webhooks["created"] = &model.PathItem{Route: "created", Operations: map[string]*model.Operation{"POST": {Method: "POST"}}}
	spec.Components.SecuritySchemes["oauth"] = &model.SecurityScheme{
		Type: "oauth2",
		Flows: &model.OAuthFlows{
			DeviceAuthorization: &model.OAuthFlow{DeviceAuthorizationURL: "https://example.com/device"},
		},
	}
	spec.Paths["/widgets"] = &model.PathItem{
		Route: "/widgets",
		AdditionalOperations: map[string]*model.Operation{
			"QUERY": {Method: "QUERY", Summary: "Search widgets"},
		},
	}

	out, warnings, err := AdapterV320{}.View(spec)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	view := out.(*ViewV320)
	assert.Equal(t, "3.2.0", view.OpenAPI)
	assert.Equal(t, "https://example.com/openapi.json", view.Self)
	assert.Contains(t, view.Webhooks, "created")
	require.NotNil(t, view.Components.SecuritySchemes["oauth"].Flows.DeviceAuthorization)
	require.Contains(t, view.Paths["/widgets"].AdditionalOperations, "QUERY")
}

func TestAdapterV320_View_TagHierarchy(t *testing.T) {
	spec := model.NewSpec()
	spec.Info = model.Info{Title: "Widgets API", Version: "1.0.0"}
	spec.Tags = []model.Tag{{Name: "widgets:read", Parent: "widgets", Kind: "nav"}}

	out, _, err := AdapterV320{}.View(spec)
	require.NoError(t, err)

	view := out.(*ViewV320)
	require.Len(t, view.Tags, 1)
	assert.Equal(t, "widgets", view.Tags[0].Parent)
	assert.Equal(t, "nav", view.Tags[0].Kind)
}
