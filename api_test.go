package openapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelMarks/cdd-c-sub007/example"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// normalizeJSON normalizes JSON by unmarshaling and remarshaling to
// ensure consistent formatting regardless of emitter whitespace choices.
func normalizeJSON(jsonBytes []byte) (string, error) {
	var v any
	if err := json.Unmarshal(jsonBytes, &v); err != nil {
		return "", err
	}

	normalized, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}

	return string(normalized), nil
}

func TestToOpenAPI_SimpleGET(t *testing.T) {
	src := []byte(`
struct User {
    int id;
    char *name;
};

/**
 * @route GET /users
 * @summary List users
 * @return 200 [itemSchema=User]
 */
void list_users(void);
`)

	g := New(WithVersion("3.1"))
	result, err := g.ToOpenAPI(context.Background(), src)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.JSON)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(result.JSON, &doc))
	assert.Equal(t, "3.1.2", doc["openapi"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	usersPath, ok := paths["/users"].(map[string]any)
	require.True(t, ok)
	get, ok := usersPath["get"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "List users", get["summary"])

	responses := get["responses"].(map[string]any)
	resp200 := responses["200"].(map[string]any)
	content := resp200["content"].(map[string]any)
	appJSON := content["application/json"].(map[string]any)
	schema := appJSON["schema"].(map[string]any)
	assert.Equal(t, "#/components/schemas/User", schema["$ref"])

	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	userSchema := schemas["User"].(map[string]any)
	assert.Equal(t, "object", userSchema["type"])
}

func TestToOpenAPI_POSTWithRequestBody(t *testing.T) {
	src := []byte(`
struct CreateUserRequest {
    char *name;
};

struct User {
    int id;
    char *name;
};

/**
 * @route POST /users
 * @summary Create a user
 * @requestBody application/json [schema=CreateUserRequest][required=true]
 * @return 201 [itemSchema=User]
 */
void create_user(void);
`)

	g := New()
	result, err := g.ToOpenAPI(context.Background(), src)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(result.JSON, &doc))

	post := doc["paths"].(map[string]any)["/users"].(map[string]any)["post"].(map[string]any)
	reqBody := post["requestBody"].(map[string]any)
	assert.Equal(t, true, reqBody["required"])
	reqSchema := reqBody["content"].(map[string]any)["application/json"].(map[string]any)["schema"].(map[string]any)
	assert.Equal(t, "#/components/schemas/CreateUserRequest", reqSchema["$ref"])
}

func TestToOpenAPI_Parameters(t *testing.T) {
	src := []byte(`
struct User {
    int id;
};

/**
 * @route GET /users/{id}
 * @param id [in=path][required=true][itemSchema=string]
 * @return 200 [itemSchema=User]
 */
void get_user(void);
`)

	g := New()
	result, err := g.ToOpenAPI(context.Background(), src)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(result.JSON, &doc))

	get := doc["paths"].(map[string]any)["/users/{id}"].(map[string]any)["get"].(map[string]any)
	params := get["parameters"].([]any)
	require.Len(t, params, 1)
	p := params[0].(map[string]any)
	assert.Equal(t, "id", p["name"])
	assert.Equal(t, "path", p["in"])
	assert.Equal(t, true, p["required"])
}

func TestToOpenAPI_NoReturnDefaultsOK(t *testing.T) {
	src := []byte(`
/**
 * @route GET /ping
 */
void ping(void);
`)

	g := New()
	result, err := g.ToOpenAPI(context.Background(), src)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(result.JSON, &doc))

	get := doc["paths"].(map[string]any)["/ping"].(map[string]any)["get"].(map[string]any)
	responses := get["responses"].(map[string]any)
	assert.Equal(t, "OK", responses["200"].(map[string]any)["description"])
}

func TestToOpenAPI_StandaloneCommentSetsInfo(t *testing.T) {
	src := []byte(`
/**
 * @infoTitle Widget Service
 * @infoVersion 2.0.0
 */

/**
 * @route GET /widgets
 * @summary List widgets
 */
void list_widgets(void);
`)

	g := New()
	result, err := g.ToOpenAPI(context.Background(), src)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(result.JSON, &doc))

	info := doc["info"].(map[string]any)
	assert.Equal(t, "Widget Service", info["title"])
	assert.Equal(t, "2.0.0", info["version"])
}

func TestToDocsJSON_CatalogsExamples(t *testing.T) {
	g := New()
	spec := model.NewSpec()
	op := &model.Operation{
		Method:      "GET",
		OperationID: "listUsers",
		Summary:     "List users",
		Responses: map[string]*model.Response{
			"200": {
				Description: "OK",
				Content: map[string]*model.MediaType{
					"application/json": {},
				},
			},
		},
	}
	require.NoError(t, model.AddOperation(spec, "/users", op))

	extra := map[string][]example.Example{
		"GET /users": {example.New("sample", map[string]any{"id": 1})},
	}

	out, err := g.ToDocsJSON(spec, extra, false, false)
	require.NoError(t, err)

	var entries []DocsCatalogEntry
	require.NoError(t, json.Unmarshal(out, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "/users", entries[0].Route)
	assert.Equal(t, "GET", entries[0].Method)
	assert.Equal(t, "listUsers", entries[0].OperationID)

	exs := entries[0].Responses["200"]["application/json"]
	require.Len(t, exs, 1)
	assert.Equal(t, "sample", exs[0].Name)
	assert.NotEmpty(t, exs[0].Snippet)
}

func TestToOpenAPIMerge_AddsOntoBase(t *testing.T) {
	g := New()

	spec := model.NewSpec()
	base, err := g.ToOpenAPIMerge(context.Background(), spec, []byte(`
/**
 * @route GET /a
 */
void handler_a(void);
`))
	require.NoError(t, err)

	var baseDoc map[string]any
	require.NoError(t, json.Unmarshal(base.JSON, &baseDoc))
	_, baseHasA := baseDoc["paths"].(map[string]any)["/a"]
	assert.True(t, baseHasA)

	merged, err := g.ToOpenAPIMerge(context.Background(), spec, []byte(`
/**
 * @route GET /b
 */
void handler_b(void);
`))
	require.NoError(t, err)

	var mergedDoc map[string]any
	require.NoError(t, json.Unmarshal(merged.JSON, &mergedDoc))
	paths := mergedDoc["paths"].(map[string]any)
	_, hasA := paths["/a"]
	assert.True(t, hasA)
	_, hasB := paths["/b"]
	assert.True(t, hasB)
}
