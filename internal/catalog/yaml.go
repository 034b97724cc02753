package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML builds a catalog from a YAML document containing a list of records.
//
// keyFn extracts the record key. validate, if not nil, is called for each record
// and any error aborts the load. Unknown fields are rejected so a typo in a seed
// file is not silently ignored.
func LoadYAML[R any](data []byte, keyFn func(R) string, validate func(R) error) (*Catalog[R], error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var records []R
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog document is empty")
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if validate != nil {
		for i, rec := range records {
			if err := validate(rec); err != nil {
				return nil, fmt.Errorf("invalid record %d: %w", i, err)
			}
		}
	}

	return FromRecords(records, keyFn)
}

// LoadYAMLFile reads path and passes its contents to LoadYAML.
func LoadYAMLFile[R any](path string, keyFn func(R) string, validate func(R) error) (*Catalog[R], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	cat, err := LoadYAML(data, keyFn, validate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}
