package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWarning(t *testing.T) {
	warning := NewWarning(WarnDowngradeWebhooks, "#/webhooks", "webhooks are 3.1-only; dropped")

	assert.Equal(t, WarnDowngradeWebhooks, warning.Code())
	assert.Equal(t, "#/webhooks", warning.Path())
	assert.Equal(t, "webhooks are 3.1-only; dropped", warning.Message())
	assert.Contains(t, warning.String(), string(WarnDowngradeWebhooks))
	assert.Contains(t, warning.String(), "webhooks are 3.1-only; dropped")
}

func TestWarningString(t *testing.T) {
	warning := NewWarning(WarnDowngradeInfoSummary, "#/info/summary", "info.summary is 3.1-only")

	str := warning.String()
	assert.Contains(t, str, "[DOWNGRADE_INFO_SUMMARY]")
	assert.Contains(t, str, "info.summary is 3.1-only")
}

func TestWarningsHas(t *testing.T) {
	warnings := Warnings{
		NewWarning(WarnDowngradeWebhooks, "#/webhooks", "test"),
		NewWarning(WarnDowngradeInfoSummary, "#/info/summary", "test"),
	}

	assert.True(t, warnings.Has(WarnDowngradeWebhooks))
	assert.True(t, warnings.Has(WarnDowngradeInfoSummary))
	assert.False(t, warnings.Has(WarnDowngradeMutualTLS))
}

func TestWarningsHas_EmptyList(t *testing.T) {
	var warnings Warnings

	assert.False(t, warnings.Has(WarnDowngradeWebhooks))
}

func TestWarningsHas_NilList(t *testing.T) {
	var warnings Warnings = nil

	assert.False(t, warnings.Has(WarnDowngradeWebhooks))
}

func TestWarningsAppend(t *testing.T) {
	var warnings Warnings

	warnings.Append(NewWarning(WarnDowngradeWebhooks, "#/webhooks", "test1"))
	assert.Len(t, warnings, 1)
	assert.True(t, warnings.Has(WarnDowngradeWebhooks))

	warnings.Append(NewWarning(WarnDowngradeInfoSummary, "#/info/summary", "test2"))
	assert.Len(t, warnings, 2)
	assert.True(t, warnings.Has(WarnDowngradeInfoSummary))
}

func TestWarningsAppend_Multiple(t *testing.T) {
	var warnings Warnings

	warnings.Append(NewWarning(WarnDowngradeWebhooks, "#/webhooks", "msg1"))
	warnings.Append(NewWarning(WarnDowngradeInfoSummary, "#/info", "msg2"))
	warnings.Append(NewWarning(WarnDowngradeWebhooks, "#/webhooks2", "msg3"))

	assert.Len(t, warnings, 3)
	assert.True(t, warnings.Has(WarnDowngradeWebhooks))
	assert.True(t, warnings.Has(WarnDowngradeInfoSummary))
}

func TestWarningCodes(t *testing.T) {
	codes := []WarningCode{
		WarnDowngradeWebhooks,
		WarnDowngradeInfoSummary,
		WarnDowngradeLicenseIdentifier,
		WarnDowngradeMutualTLS,
		WarnDowngradePathItems,
		WarnDowngradeWebhookOAuthDeviceFlow,
		WarnUnknownDirective,
		WarnAmbiguousUnionVariant,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			assert.NotEmpty(t, code.String())
			assert.Equal(t, string(code), code.String())
		})
	}
}

func TestWarningCodeString(t *testing.T) {
	code := WarnDowngradeWebhooks
	assert.Equal(t, "DOWNGRADE_WEBHOOKS", code.String())
}

func TestWarningInterface(t *testing.T) {
	_ = NewWarning(WarnDowngradeWebhooks, "#/test", "test message")
}

func TestWarningsCollection(t *testing.T) {
	warnings := make(Warnings, 0)

	warnings.Append(NewWarning(WarnDowngradeWebhooks, "#/webhooks", "msg1"))
	warnings.Append(NewWarning(WarnDowngradeInfoSummary, "#/info", "msg2"))

	assert.Len(t, warnings, 2)

	// Check individual warnings
	assert.Equal(t, WarnDowngradeWebhooks, warnings[0].Code())
	assert.Equal(t, "#/webhooks", warnings[0].Path())
	assert.Equal(t, "msg1", warnings[0].Message())

	assert.Equal(t, WarnDowngradeInfoSummary, warnings[1].Code())
	assert.Equal(t, "#/info", warnings[1].Path())
	assert.Equal(t, "msg2", warnings[1].Message())
}

func TestWarningUnknownDirectiveAndAmbiguousUnion(t *testing.T) {
	warnings := Warnings{
		NewWarning(WarnUnknownDirective, "#/doc/42", "unknown directive @bogus"),
		NewWarning(WarnAmbiguousUnionVariant, "#/components/schemas/Shape", "no discriminator match"),
	}

	assert.True(t, warnings.Has(WarnUnknownDirective))
	assert.True(t, warnings.Has(WarnAmbiguousUnionVariant))
}
