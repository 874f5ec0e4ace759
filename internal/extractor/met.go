package extractor

import (
	"bufio"
	"os"
	"strings"

	"github.com/dbsmedya/metasheet/internal/types"
)

// MetExtractor resolves literal key locators against line-oriented
// "key: value" text files.
type MetExtractor struct {
	mapping *types.FieldMapping
}

// NewMetExtractor creates an extractor for .met files.
func NewMetExtractor(mapping *types.FieldMapping) *MetExtractor {
	return &MetExtractor{mapping: mapping}
}

// Extensions implements Extractor.
func (m *MetExtractor) Extensions() []string {
	return []string{".met"}
}

// Extract reads the file line by line. A line containing a colon is
// split on the first occurrence, with surrounding whitespace trimmed
// from both sides; a later occurrence of a key overwrites an earlier
// one. Lines without a colon are ignored.
func (m *MetExtractor) Extract(path string) (types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{File: path, Err: err}
	}
	defer f.Close()

	fileData := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		fileData[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{File: path, Err: err}
	}

	record := make(types.Record, m.mapping.Len())
	m.mapping.Each(func(column, key string) {
		if value, ok := fileData[key]; ok {
			record[column] = value
		}
	})

	return record, nil
}
