package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelMarks/cdd-c-sub007/hook"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

func widgetDefs() model.TypeDefList {
	return model.TypeDefList{
		{
			Kind:        model.KindEnum,
			Name:        "Tank",
			EnumMembers: []string{"UNKNOWN", "BIG", "SMALL"},
		},
		{
			Kind: model.KindStruct,
			Name: "Widget",
			Fields: &model.StructFields{Fields: []model.StructField{
				{Name: "id", Type: model.TypeInteger, Constraints: model.Constraints{Required: true}},
				{Name: "tank", Type: model.TypeEnum, RefName: "Tank"},
			}},
		},
	}
}

func TestCodeToSchema_DefsRooted(t *testing.T) {
	out, err := CodeToSchema(widgetDefs(), nil)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, schemaDialect, doc["$schema"])

	defs := doc["$defs"].(map[string]any)
	widget := defs["Widget"].(map[string]any)
	assert.Equal(t, "object", widget["type"])

	tankRef := widget["properties"].(map[string]any)["tank"].(map[string]any)["$ref"]
	assert.Equal(t, "#/$defs/Tank", tankRef)

	tank := defs["Tank"].(map[string]any)
	assert.Equal(t, "string", tank["type"])
}

func TestCodeToSchema_AppliesOverrideProvider(t *testing.T) {
	overrides := NewOverrides()
	overrides.RegisterProvider("Tank", ProviderFunc(func(hook.SchemaRegistry) *model.Schema {
		return &model.Schema{Type: "string", Description: "overridden"}
	}))

	out, err := CodeToSchema(widgetDefs(), overrides)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	tank := doc["$defs"].(map[string]any)["Tank"].(map[string]any)
	assert.Equal(t, "overridden", tank["description"])
}
