// Package types contains shared types used across multiple packages to avoid import cycles.
package types

import (
	"github.com/elliotchance/orderedmap/v2"
)

// FieldMapping is an ordered association of output column names to
// source-specific locators: an XML path expression for .xml files,
// or a literal key string for .met files. Insertion order determines
// output column order.
type FieldMapping struct {
	fields *orderedmap.OrderedMap[string, string]
}

// NewFieldMapping creates an empty FieldMapping.
func NewFieldMapping() *FieldMapping {
	return &FieldMapping{
		fields: orderedmap.NewOrderedMap[string, string](),
	}
}

// Set associates a column name with a locator. Setting an existing
// column replaces its locator without changing its position.
func (m *FieldMapping) Set(column, locator string) {
	m.fields.Set(column, locator)
}

// Locator returns the locator for a column and whether it exists.
func (m *FieldMapping) Locator(column string) (string, bool) {
	return m.fields.Get(column)
}

// Columns returns the column names in insertion order.
func (m *FieldMapping) Columns() []string {
	if m == nil {
		return nil
	}
	return m.fields.Keys()
}

// Len returns the number of mapped columns.
func (m *FieldMapping) Len() int {
	if m == nil {
		return 0
	}
	return m.fields.Len()
}

// Each calls fn for every (column, locator) pair in insertion order.
func (m *FieldMapping) Each(fn func(column, locator string)) {
	if m == nil {
		return
	}
	for el := m.fields.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// UnionColumns merges the column sets of the given mappings in
// first-seen order, collapsing duplicates. The result is the column
// schema of the exported table and is independent of which files are
// actually present in the input folder.
func UnionColumns(mappings ...*FieldMapping) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, m := range mappings {
		for _, col := range m.Columns() {
			if seen[col] {
				continue
			}
			seen[col] = true
			columns = append(columns, col)
		}
	}
	return columns
}
