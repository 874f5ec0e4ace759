package extractor

import (
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"

	"github.com/dbsmedya/metasheet/internal/types"
)

// XMLExtractor resolves path-expression locators against XML documents.
type XMLExtractor struct {
	mapping *types.FieldMapping
	paths   map[string]etree.Path // column -> compiled path
}

// NewXMLExtractor compiles the mapping's path expressions. Invalid
// expressions are rejected up front so a bad mapping fails the run
// instead of silently producing empty columns for every file.
func NewXMLExtractor(mapping *types.FieldMapping) (*XMLExtractor, error) {
	paths := make(map[string]etree.Path, mapping.Len())
	var err error
	mapping.Each(func(column, locator string) {
		if err != nil {
			return
		}
		p, compileErr := etree.CompilePath(locator)
		if compileErr != nil {
			err = fmt.Errorf("column %q: invalid path %q: %w", column, locator, compileErr)
			return
		}
		paths[column] = p
	})
	if err != nil {
		return nil, err
	}

	return &XMLExtractor{mapping: mapping, paths: paths}, nil
}

// Extensions implements Extractor.
func (x *XMLExtractor) Extensions() []string {
	return []string{".xml"}
}

// Extract parses the file and resolves every mapped path against the
// document root. A matched element contributes its text content
// verbatim (no trimming or casting); an unmatched path leaves the
// column absent from the record.
func (x *XMLExtractor) Extract(path string) (types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{File: path, Err: err}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{File: path, Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{File: path, Err: errors.New("document has no root element")}
	}

	record := make(types.Record, x.mapping.Len())
	x.mapping.Each(func(column, locator string) {
		if el := root.FindElementPath(x.paths[column]); el != nil {
			record[column] = el.Text()
		}
	})

	return record, nil
}
