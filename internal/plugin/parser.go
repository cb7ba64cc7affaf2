package plugin

import (
	"fmt"
	"os"

	apperrors "github.com/layoutlab/nodekit/internal/errors"
	"go.yaml.in/yaml/v3"
)

// Parse reads, validates, and decodes the manifest at path. Schema or struct
// validation failures are returned as an InvalidManifest error listing every
// issue.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	m, err := ParseBytes(data, path)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ParseBytes validates and decodes manifest data. path is only used in
// error messages.
func ParseBytes(data []byte, path string) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, apperrors.InvalidManifest(path, result.Strings())
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if issues := validateStruct(&m); len(issues) > 0 {
		r := ValidationResult{Issues: issues}
		return nil, apperrors.InvalidManifest(path, r.Strings())
	}
	m.Path = path
	return &m, nil
}
