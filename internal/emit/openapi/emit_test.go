package openapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

func buildSpec() *model.Spec {
	spec := model.NewSpec()
	spec.Info = model.Info{Title: "Widgets API", Version: "1.0.0"}
	spec.Tags = []model.Tag{{Name: "zebra"}, {Name: "alpha"}}
	spec.Paths["/zoo"] = &model.PathItem{Route: "/zoo", Operations: map[string]*model.Operation{"GET": {Method: "GET"}}}
	spec.Paths["/alpha"] = &model.PathItem{Route: "/alpha", Operations: map[string]*model.Operation{"GET": {Method: "GET"}}}
	spec.Components.Schemas["Zebra"] = &model.Schema{Type: "object"}
	spec.Components.Schemas["Alpha"] = &model.Schema{Type: "object"}

	return spec
}

func TestEmit_NilSpec(t *testing.T) {
	_, err := Emit(context.Background(), nil, Options{})
	assert.Error(t, err)
}

func TestEmit_DefaultVersion(t *testing.T) {
	spec := buildSpec()
	result, err := Emit(context.Background(), spec, Options{})
	require.NoError(t, err)
	require.NotNil(t, result)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(result.Result, &doc))
	assert.Equal(t, "3.2.0", doc["openapi"])
}

func TestEmit_UnsupportedVersion(t *testing.T) {
	spec := buildSpec()
	_, err := Emit(context.Background(), spec, Options{Version: "2.0"})
	assert.Error(t, err)
}

func TestEmit_IsIdempotent(t *testing.T) {
	spec1 := buildSpec()
	spec2 := buildSpec()

	result1, err := Emit(context.Background(), spec1, Options{Version: "3.0"})
	require.NoError(t, err)
	result2, err := Emit(context.Background(), spec2, Options{Version: "3.0"})
	require.NoError(t, err)

	assert.Equal(t, string(result1.Result), string(result2.Result))
}

func TestSortSpec_OrdersTags(t *testing.T) {
	spec := buildSpec()
	SortSpec(spec)

	require.Len(t, spec.Tags, 2)
	assert.Equal(t, "alpha", spec.Tags[0].Name)
	assert.Equal(t, "zebra", spec.Tags[1].Name)
}
