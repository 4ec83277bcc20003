package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

func TestFromOpenAPI_DefsRooted(t *testing.T) {
	doc := []byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$defs": {
			"Tank": {"type": "string", "enum": ["BIG", "SMALL"]},
			"Widget": {
				"type": "object",
				"required": ["id"],
				"properties": {
					"id": {"type": "integer"},
					"tank": {"$ref": "#/$defs/Tank"}
				}
			}
		}
	}`)

	defs, err := FromOpenAPI(doc, nil)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	byName := make(map[string]model.TypeDefinition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}

	tank := byName["Tank"]
	assert.Equal(t, model.KindEnum, tank.Kind)
	assert.Equal(t, []string{"BIG", "SMALL"}, tank.EnumMembers)

	widget := byName["Widget"]
	assert.Equal(t, model.KindStruct, widget.Kind)
	require.Len(t, widget.Fields.Fields, 2)
	assert.Equal(t, "id", widget.Fields.Fields[0].Name)
	assert.True(t, widget.Fields.Fields[0].Constraints.Required)
	assert.Equal(t, "tank", widget.Fields.Fields[1].Name)
	assert.Equal(t, model.TypeEnum, widget.Fields.Fields[1].Type)
	assert.Equal(t, "Tank", widget.Fields.Fields[1].RefName)
}

func TestFromOpenAPI_ComponentsSchemasRooted(t *testing.T) {
	doc := []byte(`{
		"components": {
			"schemas": {
				"User": {
					"type": "object",
					"properties": {"name": {"type": "string"}}
				}
			}
		}
	}`)

	defs, err := FromOpenAPI(doc, nil)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "User", defs[0].Name)
	assert.Equal(t, "name", defs[0].Fields.Fields[0].Name)
}

func TestFromOpenAPI_ArrayRoot(t *testing.T) {
	doc := []byte(`{
		"$defs": {
			"Widget": {"type": "object", "properties": {"id": {"type": "integer"}}},
			"WidgetList": {"type": "array", "items": {"$ref": "#/$defs/Widget"}}
		}
	}`)

	defs, err := FromOpenAPI(doc, nil)
	require.NoError(t, err)

	var list model.TypeDefinition
	for _, d := range defs {
		if d.Name == "WidgetList" {
			list = d
		}
	}
	require.Len(t, list.Fields.Fields, 1)
	assert.Equal(t, "items", list.Fields.Fields[0].Name)
	assert.Equal(t, model.TypeArray, list.Fields.Fields[0].Type)
	assert.Equal(t, "Widget", list.Fields.Fields[0].RefName)
	assert.True(t, list.Fields.Fields[0].Constraints.Required)
}

func TestFromOpenAPI_Union(t *testing.T) {
	doc := []byte(`{
		"$defs": {
			"A": {"type": "object", "properties": {"x": {"type": "string"}}},
			"B": {"type": "object", "properties": {"y": {"type": "string"}}},
			"Either": {
				"oneOf": [{"$ref": "#/$defs/A"}, {"$ref": "#/$defs/B"}],
				"discriminator": {"propertyName": "kind"}
			}
		}
	}`)

	defs, err := FromOpenAPI(doc, nil)
	require.NoError(t, err)

	var either model.TypeDefinition
	for _, d := range defs {
		if d.Name == "Either" {
			either = d
		}
	}
	require.NotNil(t, either.Fields)
	assert.True(t, either.Fields.IsUnion)
	assert.False(t, either.Fields.UnionIsAnyOf)
	assert.Equal(t, "kind", either.Fields.UnionDiscriminator)
	assert.Len(t, either.Fields.Variants, 2)
}

func TestFromOpenAPI_NoSchemas(t *testing.T) {
	_, err := FromOpenAPI([]byte(`{}`), nil)
	assert.ErrorIs(t, err, ErrNoSchemas)
}

func TestFromOpenAPI_UnresolvedRef(t *testing.T) {
	doc := []byte(`{
		"$defs": {
			"Widget": {
				"type": "object",
				"properties": {"owner": {"$ref": "#/$defs/Missing"}}
			}
		}
	}`)

	_, err := FromOpenAPI(doc, nil)
	assert.ErrorIs(t, err, ErrUnsupportedSchema)
}

func TestFromOpenAPI_OverrideSupplesExternalRef(t *testing.T) {
	doc := []byte(`{
		"$defs": {
			"Widget": {
				"type": "object",
				"properties": {"owner": {"$ref": "#/$defs/External"}}
			}
		}
	}`)

	overrides := NewOverrides()
	overrides.RegisterSchema("External", &model.Schema{Type: "object"})

	defs, err := FromOpenAPI(doc, overrides)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "External", defs[0].Fields.Fields[0].RefName)
}

func TestCodeToSchemaFromOpenAPI_RoundTrip(t *testing.T) {
	out, err := CodeToSchema(widgetDefs(), nil)
	require.NoError(t, err)

	defs, err := FromOpenAPI(out, nil)
	require.NoError(t, err)
	require.Len(t, defs, 2)
}
