// Package openapi is the top-level entry point for emitting an
// intermediate model.Spec as field-order-exact OpenAPI JSON, per spec
// §4.6.1/§4.6.3. Grounded on api.go's sortSpec (deterministic ordering
// before marshal) and internal/export's ViewAdapter machinery (the
// field-order itself, realized by each version's named struct fields).
package openapi

import (
	"context"
	"fmt"
	"sort"

	"github.com/SamuelMarks/cdd-c-sub007/internal/export"
	v300 "github.com/SamuelMarks/cdd-c-sub007/internal/export/v300"
	v310 "github.com/SamuelMarks/cdd-c-sub007/internal/export/v310"
	v320 "github.com/SamuelMarks/cdd-c-sub007/internal/export/v320"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// DefaultVersion is the OpenAPI line emitted when the caller does not
// pin one, per spec §6's CLI default.
const DefaultVersion = "3.2"

// Options configures one emission call.
type Options struct {
	// Version selects the target OpenAPI line: "3.0", "3.1", or "3.2".
	// Defaults to DefaultVersion when empty.
	Version string

	// Validate runs the emitted JSON back through the target version's
	// meta-schema before returning it.
	Validate bool
}

// NewExporter wires the three version adapters into an export.Exporter,
// the only place all three are listed together.
func NewExporter() export.Exporter {
	return export.NewExporter([]export.ViewAdapter{
		v300.AdapterV300{},
		v310.AdapterV310{},
		v320.AdapterV320{},
	})
}

// Emit sorts spec into canonical order and projects it onto opts.Version,
// returning the marshaled JSON and any downgrade warnings.
func Emit(ctx context.Context, spec *model.Spec, opts Options) (*export.ExporterResult, error) {
	if spec == nil {
		return nil, fmt.Errorf("openapi: nil spec")
	}

	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}

	SortSpec(spec)

	exporter := NewExporter()
	if !exporter.IsSupportedVersion(version) {
		return nil, fmt.Errorf("openapi: unsupported version %q", version)
	}

	return exporter.Export(ctx, spec, export.ExporterConfig{Version: version, ShouldValidate: opts.Validate})
}

// SortSpec reorders spec's maps and slices into the deterministic order
// spec §4.6.3 ("Idempotence") requires, grounded on api.go's sortSpec:
// the path, webhook and component schema maps are rebuilt by walking
// their keys in sorted order (Go map iteration order does not follow
// insertion order, so the emitted key order comes from encoding/json,
// which sorts map keys), and s.Tags is sorted in place since tag order
// survives into the JSON array as-is.
func SortSpec(s *model.Spec) {
	s.Paths = sortedPathMap(s.Paths)
	s.Webhooks = sortedPathMap(s.Webhooks)

	sort.Slice(s.Tags, func(i, j int) bool {
		return s.Tags[i].Name < s.Tags[j].Name
	})

	if s.Components.Schemas != nil {
		names := sortedKeys(s.Components.Schemas)
		sorted := make(map[string]*model.Schema, len(names))
		for _, n := range names {
			sorted[n] = s.Components.Schemas[n]
		}
		s.Components.Schemas = sorted
	}
}

func sortedPathMap(m map[string]*model.PathItem) map[string]*model.PathItem {
	if m == nil {
		return nil
	}
	names := sortedKeys(m)
	sorted := make(map[string]*model.PathItem, len(names))
	for _, n := range names {
		sorted[n] = m[n]
	}

	return sorted
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
