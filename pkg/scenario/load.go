package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/crampton_estate.yaml
var cramptonEstate []byte

// Default returns the built-in Crampton Estate.
func Default() (*Scenario, error) {
	s, err := Parse(cramptonEstate)
	if err != nil {
		return nil, fmt.Errorf("built-in scenario: %w", err)
	}
	return s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario strictly (unknown fields are errors), validates
// it and builds the room index.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenario is empty")
		}
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.reindex()
	return &s, nil
}
