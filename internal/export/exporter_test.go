package export

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelMarks/cdd-c-sub007/debug"
	v300 "github.com/SamuelMarks/cdd-c-sub007/internal/export/v300"
	v310 "github.com/SamuelMarks/cdd-c-sub007/internal/export/v310"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// mockAdapter is a mock ViewAdapter for testing error cases.
type mockAdapter struct {
	version    string
	schemaJSON []byte
	viewFunc   func(*model.Spec) (any, debug.Warnings, error)
}

func (m *mockAdapter) Version() string { return m.version }

func (m *mockAdapter) SchemaJSON() []byte { return m.schemaJSON }

func (m *mockAdapter) View(spec *model.Spec) (any, debug.Warnings, error) {
	if m.viewFunc != nil {
		return m.viewFunc(spec)
	}

	return nil, nil, nil
}

func TestExport_NilSpec(t *testing.T) {
	adapter := v300.AdapterV300{}
	exporter := NewExporter([]ViewAdapter{adapter})

	ctx := context.Background()
	result, err := exporter.Export(ctx, nil, ExporterConfig{Version: "3.0"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "nil spec")
}

func TestExport_UnknownVersion(t *testing.T) {
	adapter := v300.AdapterV300{}
	exporter := NewExporter([]ViewAdapter{adapter})

	spec := createMinimalSpec()
	ctx := context.Background()
	result, err := exporter.Export(ctx, spec, ExporterConfig{Version: "2.0.0"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "unknown version: 2.0.0")
}

func TestExport_AdapterViewError(t *testing.T) {
	expectedError := errors.New("view error")
	mock := &mockAdapter{
		version:    "3.0",
		schemaJSON: []byte(`{"$schema":"http://json-schema.org/draft-07/schema#"}`),
		viewFunc: func(*model.Spec) (any, debug.Warnings, error) {
			return nil, nil, expectedError
		},
	}

	exporter := NewExporter([]ViewAdapter{mock})
	spec := createMinimalSpec()
	ctx := context.Background()

	result, err := exporter.Export(ctx, spec, ExporterConfig{Version: "3.0"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to create a view of the spec")
	assert.ErrorIs(t, err, expectedError)
}

func TestExport_JSONMarshalError(t *testing.T) {
	unmarshalableView := struct {
		Channel chan int `json:"channel"`
	}{
		Channel: make(chan int),
	}

	mock := &mockAdapter{
		version:    "3.0",
		schemaJSON: []byte(`{"$schema":"http://json-schema.org/draft-07/schema#"}`),
		viewFunc: func(*model.Spec) (any, debug.Warnings, error) {
			return unmarshalableView, nil, nil
		},
	}

	exporter := NewExporter([]ViewAdapter{mock})
	spec := createMinimalSpec()
	ctx := context.Background()

	result, err := exporter.Export(ctx, spec, ExporterConfig{Version: "3.0"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to marshal spec to JSON")
}

func TestExport_ValidatorCreationError(t *testing.T) {
	invalidSchemaJSON := []byte(`{invalid json}`)

	mock := &mockAdapter{
		version:    "3.0",
		schemaJSON: invalidSchemaJSON,
		viewFunc: func(*model.Spec) (any, debug.Warnings, error) {
			return map[string]string{"openapi": "3.0.4"}, nil, nil
		},
	}

	exporter := NewExporter([]ViewAdapter{mock})
	spec := createMinimalSpec()
	ctx := context.Background()

	result, err := exporter.Export(ctx, spec, ExporterConfig{Version: "3.0", ShouldValidate: true})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to create validator")
}

func TestExport_ValidationFailure(t *testing.T) {
	adapter := v300.AdapterV300{}
	mock := &mockAdapter{
		version:    "3.0",
		schemaJSON: adapter.SchemaJSON(),
		viewFunc: func(*model.Spec) (any, debug.Warnings, error) {
			// Missing required "info" field.
			return map[string]any{"openapi": "3.0.4"}, nil, nil
		},
	}

	exporter := NewExporter([]ViewAdapter{mock})
	spec := createMinimalSpec()
	ctx := context.Background()

	result, err := exporter.Export(ctx, spec, ExporterConfig{Version: "3.0", ShouldValidate: true})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExport_Success_V300(t *testing.T) {
	adapter := v300.AdapterV300{}
	exporter := NewExporter([]ViewAdapter{adapter})

	spec := createComprehensiveSpec()
	ctx := context.Background()

	result, err := exporter.Export(ctx, spec, ExporterConfig{Version: "3.0"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Result)

	var jsonData map[string]any
	err = json.Unmarshal(result.Result, &jsonData)
	require.NoError(t, err)
	assert.Equal(t, "3.0.4", jsonData["openapi"])
}

func TestExport_Success_V310(t *testing.T) {
	adapter := v310.AdapterV310{}
	exporter := NewExporter([]ViewAdapter{adapter})

	spec := createComprehensiveSpec()
	ctx := context.Background()

	result, err := exporter.Export(ctx, spec, ExporterConfig{Version: "3.1"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Result)

	var jsonData map[string]any
	err = json.Unmarshal(result.Result, &jsonData)
	require.NoError(t, err)
	assert.Equal(t, "3.1.2", jsonData["openapi"])
}

func TestExport_Success_MinimalSpec(t *testing.T) {
	adapter := v300.AdapterV300{}
	exporter := NewExporter([]ViewAdapter{adapter})

	spec := createMinimalSpec()
	ctx := context.Background()

	result, err := exporter.Export(ctx, spec, ExporterConfig{Version: "3.0"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Result)

	var jsonData map[string]any
	err = json.Unmarshal(result.Result, &jsonData)
	require.NoError(t, err)
	assert.Equal(t, "3.0.4", jsonData["openapi"])

	info, ok := jsonData["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Test API", info["title"])
	assert.Equal(t, "1.0.0", info["version"])
}

func TestExport_Success_WithWarnings(t *testing.T) {
	adapter := v300.AdapterV300{}
	exporter := NewExporter([]ViewAdapter{adapter})

	spec := model.NewSpec()
	spec.Info = model.Info{Title: "Test API", Version: "1.0.0"}
	spec.Webhooks["userCreated"] = &model.PathItem{
		Route: "userCreated",
		Operations: map[string]*model.Operation{
			"POST": {Method: "POST", Summary: "User created webhook"},
		},
	}

	ctx := context.Background()
	result, err := exporter.Export(ctx, spec, ExporterConfig{Version: "3.0"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Result)

	assert.NotEmpty(t, result.Warnings)
	assert.True(t, result.Warnings.Has(debug.WarnDowngradeWebhooks))
}

func TestExport_Success_WithExtensions(t *testing.T) {
	adapter := v300.AdapterV300{}
	exporter := NewExporter([]ViewAdapter{adapter})

	spec := model.NewSpec()
	spec.Info = model.Info{Title: "Test API", Version: "1.0.0"}
	spec.Extensions["x-top-level"] = "top level extension"

	ctx := context.Background()
	result, err := exporter.Export(ctx, spec, ExporterConfig{Version: "3.0"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Result)

	var jsonData map[string]any
	err = json.Unmarshal(result.Result, &jsonData)
	require.NoError(t, err)

	assert.Equal(t, "top level extension", jsonData["x-top-level"])
}

func createMinimalSpec() *model.Spec {
	spec := model.NewSpec()
	spec.Info = model.Info{Title: "Test API", Version: "1.0.0"}

	return spec
}

func createComprehensiveSpec() *model.Spec {
	spec := model.NewSpec()
	spec.Info = model.Info{
		Title:       "Test API",
		Description: "A test API",
		Version:     "1.0.0",
		License:     &model.License{Name: "MIT"},
	}
	spec.Extensions["x-custom-info"] = "custom info extension"
	spec.Tags = []model.Tag{{Name: "Users", Description: "User management operations"}}

	limit := 10.0
	spec.Paths["/users"] = &model.PathItem{
		Route: "/users",
		Operations: map[string]*model.Operation{
			"GET": {
				Method:  "GET",
				Summary: "Get users",
				Parameters: []model.Parameter{
					{
						Name:        "limit",
						In:          "query",
						Schema:      &model.Schema{Type: "integer", Default: limit},
						Description: "Maximum number of users to return",
					},
				},
				Responses: map[string]*model.Response{
					"200": {
						Description: "Success",
						Content: map[string]*model.MediaType{
							"application/json": {
								Schema: &model.Schema{
									Type:  "array",
									Items: &model.Schema{Ref: "#/components/schemas/User"},
								},
							},
						},
					},
				},
			},
		},
	}
	spec.Components.Schemas["User"] = &model.Schema{
		Type:  "object",
		Title: "User Schema",
		Properties: map[string]*model.Schema{
			"id":   {Type: "string", Description: "Unique user identifier"},
			"name": {Type: "string", Description: "User name"},
		},
		Required: []string{"id", "name"},
	}

	return spec
}
