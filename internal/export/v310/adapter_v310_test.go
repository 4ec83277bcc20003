package v310

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelMarks/cdd-c-sub007/debug"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

func TestAdapterV310_Version(t *testing.T) {
	assert.Equal(t, "3.1", AdapterV310{}.Version())
}

func TestAdapterV310_View_NilSpec(t *testing.T) {
	_, _, err := AdapterV310{}.View(nil)
	require.Error(t, err)
}

func TestAdapterV310_View_CarriesWebhooksAndSummary(t *testing.T) {
	spec := model.NewSpec()
	spec.Info = model.Info{Title: "Widgets API", Version: "1.0.0", Summary: "A widget API"}
	spec.Webhooks["created"] = &model.PathItem{
		Route:      "created",
		Operations: map[string]*model.Operation{"POST": {Method: "POST"}},
	}

	out, warnings, err := AdapterV310{}.View(spec)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	view := out.(*ViewV310)
	assert.Equal(t, "A widget API", view.Info.Summary)
	require.Contains(t, view.Webhooks, "created")
}

func TestAdapterV310_View_NullableFoldsIntoTypeArray(t *testing.T) {
	spec := model.NewSpec()
	spec.Info = model.Info{Title: "Widgets API", Version: "1.0.0"}
	spec.Components.Schemas["Maybe"] = &model.Schema{Type: "string", Nullable: true}

	out, _, err := AdapterV310{}.View(spec)
	require.NoError(t, err)

	view := out.(*ViewV310)
	assert.Equal(t, []string{"string", "null"}, view.Components.Schemas["Maybe"].Type)
}

func TestAdapterV310_View_DropsDeviceAuthorizationFlow(t *testing.T) {
	spec := model.NewSpec()
	spec.Info = model.Info{Title: "Widgets API", Version: "1.0.0"}
	spec.Components.SecuritySchemes["oauth"] = &model.SecurityScheme{
		Type: "oauth2",
		Flows: &model.OAuthFlows{
			DeviceAuthorization: &model.OAuthFlow{DeviceAuthorizationURL: "https://example.com/device"},
		},
	}

	_, warnings, err := AdapterV310{}.View(spec)
	require.NoError(t, err)
	assert.True(t, warnings.Has(debug.WarnDowngradeWebhookOAuthDeviceFlow))
}

func TestAdapterV310_View_CarriesPathItemsAndLicenseIdentifier(t *testing.T) {
	spec := model.NewSpec()
	spec.Info = model.Info{
		Title: "Widgets API", Version: "1.0.0",
		License: &model.License{Name: "Apache-2.0", Identifier: "Apache-2.0"},
	}
	spec.Components.PathItems["Shared"] = &model.PathItem{Route: "/shared"}

	out, _, err := AdapterV310{}.View(spec)
	require.NoError(t, err)

	view := out.(*ViewV310)
	assert.Equal(t, "Apache-2.0", view.Info.License.Identifier)
	assert.Contains(t, view.Components.PathItems, "Shared")
}
