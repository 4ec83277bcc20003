package debug

import "fmt"

// Warning represents an informational, non-fatal issue during spec generation.
//
// Warnings are ADVISORY ONLY and never break execution.
// Use errors for issues that must stop the process.
//
// Common scenarios that produce warnings:
//   - Targeting OpenAPI 3.0 when using 3.1-only features (downlevel)
//   - Using deprecated API features
type Warning interface {
	// Code returns the warning identifier.
	// Compare with Warn* constants for type-safe checks.
	Code() WarningCode

	// Path returns the JSON pointer to the affected spec element.
	// Example: "#/webhooks", "#/info/summary"
	Path() string

	// Message returns a human-readable description.
	Message() string

	// String returns a formatted representation.
	String() string
}

// WarningCode identifies a specific warning type.
// Use the Warn* constants for type-safe comparisons.
type WarningCode string

// String returns the code as a string.
func (c WarningCode) String() string {
	return string(c)
}

// Schema downgrade warnings (3.1/3.2 -> 3.0 view feature losses).
const (
	// WarnDowngradeWebhooks indicates webhooks were dropped (3.0 doesn't support them).
	WarnDowngradeWebhooks WarningCode = "DOWNGRADE_WEBHOOKS"

	// WarnDowngradeInfoSummary indicates info.summary was dropped (3.0 doesn't support it).
	WarnDowngradeInfoSummary WarningCode = "DOWNGRADE_INFO_SUMMARY"

	// WarnDowngradeLicenseIdentifier indicates license.identifier was dropped.
	WarnDowngradeLicenseIdentifier WarningCode = "DOWNGRADE_LICENSE_IDENTIFIER"

	// WarnDowngradeMutualTLS indicates a mutualTLS security scheme was dropped.
	WarnDowngradeMutualTLS WarningCode = "DOWNGRADE_MUTUAL_TLS"

	// WarnDowngradePathItems indicates $ref in pathItems was expanded.
	WarnDowngradePathItems WarningCode = "DOWNGRADE_PATH_ITEMS"

	// WarnDowngradeWebhookOAuthDeviceFlow indicates a deviceAuthorization
	// OAuth flow was dropped (3.0/3.1 don't support it).
	WarnDowngradeWebhookOAuthDeviceFlow WarningCode = "DOWNGRADE_OAUTH_DEVICE_FLOW"
)

// Doc-directive and aggregation warnings.
const (
	// WarnUnknownDirective indicates an `@foo`/`\foo` directive with no
	// registered handler; it is dropped per the doc-directive parser's
	// closing rule, but worth surfacing since it is likely a typo.
	WarnUnknownDirective WarningCode = "UNKNOWN_DIRECTIVE"

	// WarnAmbiguousUnionVariant indicates a discriminated-union payload
	// could not be matched to exactly one variant by discriminator value
	// or by required-field scoring.
	WarnAmbiguousUnionVariant WarningCode = "AMBIGUOUS_UNION_VARIANT"
)

// Warnings is a collection of Warning with helper methods.
// Warnings are informational and never break execution.
type Warnings []Warning

// Has returns true if any warning matches the given code.
func (ws Warnings) Has(code WarningCode) bool {
	for _, w := range ws {
		if w.Code() == code {
			return true
		}
	}

	return false
}

// Append adds a warning to the collection.
func (ws *Warnings) Append(w Warning) {
	*ws = append(*ws, w)
}

// warning is the concrete implementation of Warning interface.
type warning struct {
	code    WarningCode
	path    string
	message string
}

func (w *warning) Code() WarningCode {
	return w.code
}

func (w *warning) Path() string {
	return w.path
}

func (w *warning) Message() string {
	return w.message
}

func (w *warning) String() string {
	return fmt.Sprintf("[%s] %s", w.code, w.message)
}

// NewWarning creates a new Warning instance.
// This is the primary way to create warnings from internal packages.
func NewWarning(code WarningCode, path, message string) Warning {
	return &warning{
		code:    code,
		path:    path,
		message: message,
	}
}
