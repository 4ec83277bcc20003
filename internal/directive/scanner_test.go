package directive

import (
	"testing"

	"github.com/SamuelMarks/cdd-c-sub007/config"
	"github.com/SamuelMarks/cdd-c-sub007/debug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerParseCollectsUnknownDirectiveWarning(t *testing.T) {
	scanner := NewScanner(config.DefaultDirectiveConfig())
	doc, warnings := scanner.Parse("@bogusDirective x\n@summary Widgets")

	assert.Equal(t, "Widgets", doc.Summary)
	require.True(t, warnings.Has(debug.WarnUnknownDirective))
}

func TestScannerParseRespectsRenamedDirective(t *testing.T) {
	cfg := config.MergeDirectiveConfig(config.DefaultDirectiveConfig(), config.DirectiveConfig{Route: "endpoint"})
	scanner := NewScanner(cfg)

	doc, warnings := scanner.Parse("@endpoint GET /widgets")
	assert.Equal(t, "GET", doc.Method)
	assert.Equal(t, "/widgets", doc.Route)
	assert.False(t, warnings.Has(debug.WarnUnknownDirective))

	// The canonical name is no longer recognized once renamed away.
	doc2, warnings2 := scanner.Parse("@route GET /widgets")
	assert.Empty(t, doc2.Route)
	assert.True(t, warnings2.Has(debug.WarnUnknownDirective))
}
