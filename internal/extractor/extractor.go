// Package extractor implements per-format field extraction from metadata files.
package extractor

import (
	"path/filepath"
	"strings"

	"github.com/dbsmedya/metasheet/internal/types"
)

// Extractor produces a flat record from a single input file. One
// implementation exists per supported file format; adding a format
// means adding an implementation, not changing the folder processor.
type Extractor interface {
	// Extensions returns the lowercase filename suffixes this extractor handles.
	Extensions() []string
	// Extract parses the file and projects the mapped fields into a Record.
	Extract(path string) (types.Record, error)
}

// Registry maps lowercase filename extensions to extractors.
type Registry map[string]Extractor

// NewRegistry builds a Registry from the given extractors.
func NewRegistry(extractors ...Extractor) Registry {
	r := make(Registry)
	for _, ex := range extractors {
		for _, ext := range ex.Extensions() {
			r[ext] = ex
		}
	}
	return r
}

// Lookup returns the extractor for a filename, dispatching on its
// suffix case-insensitively. Unknown suffixes return false.
func (r Registry) Lookup(name string) (Extractor, bool) {
	ex, ok := r[strings.ToLower(filepath.Ext(name))]
	return ex, ok
}
