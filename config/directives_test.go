package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDirectiveConfig(t *testing.T) {
	cfg := DefaultDirectiveConfig()

	assert.Equal(t, "route", cfg.Route)
	assert.Equal(t, "webhook", cfg.Webhook)
	assert.Equal(t, "param", cfg.Param)
	assert.Equal(t, "return", cfg.Return)
	assert.Equal(t, "securityScheme", cfg.SecurityScheme)
	assert.Equal(t, "tagMeta", cfg.TagMeta)
	assert.Equal(t, "operationId", cfg.OperationID)
}

func TestNewDirectiveConfig(t *testing.T) {
	cfg := NewDirectiveConfig("r", "w", "p", "ret", "sec", "ss", "srv", "rb", "t", "tm", "sum", "desc", "oid", "dep")

	assert.Equal(t, "r", cfg.Route)
	assert.Equal(t, "w", cfg.Webhook)
	assert.Equal(t, "dep", cfg.Deprecated)
}

func TestMergeDirectiveConfigPartialOverride(t *testing.T) {
	base := DefaultDirectiveConfig()
	override := DirectiveConfig{Route: "endpoint", TagMeta: "tagInfo"}

	result := MergeDirectiveConfig(base, override)

	assert.Equal(t, "endpoint", result.Route)
	assert.Equal(t, "tagInfo", result.TagMeta)
	assert.Equal(t, "webhook", result.Webhook)
	assert.Equal(t, "param", result.Param)
}
