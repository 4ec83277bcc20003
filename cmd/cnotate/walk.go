package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	openapi "github.com/SamuelMarks/cdd-c-sub007"
)

// walkCSources returns every .c/.h file under dir, sorted, so a run over
// an unchanged tree is deterministic (spec §4.6.3's emission-ordering
// guarantee extended to the CLI's multi-file merge). Directory walking
// is carried on stdlib filepath.WalkDir: no example repo in the pack
// ships a third-party directory walker, and spec.md §1 calls filesystem
// walkers a thin, uninteresting collaborator layer.
func walkCSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".c", ".h":
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", openapi.ErrIOFailure, err)
	}
	sort.Strings(files)

	return files, nil
}
