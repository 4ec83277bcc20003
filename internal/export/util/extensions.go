// Package util holds small marshaling helpers shared by the v300/v310/v320
// view adapters.
package util

import (
	"encoding/json"
	"maps"
)

// MarshalWithExtensions marshals a view struct with its spec.Extensions/
// op.Extensions-sourced "x-*" fields inlined at the top level, per
// spec §4.6.3's "doc-directive @extension entries are inlined as
// sibling x- keys" requirement.
//
// IMPORTANT: When calling this function, the caller MUST use a type alias
// to avoid infinite recursion. For example,
//
//	func (v *ViewV310) MarshalJSON() ([]byte, error) {
//	    type viewV310 ViewV310  // Type alias prevents recursion
//	    return util.MarshalWithExtensions(viewV310(*v), v.Extensions)
//	}
//
// Without the type alias, json.Marshal would recursively call MarshalJSON
// on the same type, causing infinite recursion. The type alias creates a
// new type that doesn't have the MarshalJSON method, allowing standard
// JSON marshaling to proceed.
func MarshalWithExtensions(v any, extensions map[string]any) ([]byte, error) {
	// Marshal the base struct
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	if len(extensions) == 0 {
		return data, nil
	}

	// Parse the JSON into a map
	var m map[string]any
	if unmarshalErr := json.Unmarshal(data, &m); unmarshalErr != nil {
		return nil, unmarshalErr
	}

	// Merge extensions into the map
	maps.Copy(m, extensions)

	// Marshal back to JSON
	return json.Marshal(m)
}
