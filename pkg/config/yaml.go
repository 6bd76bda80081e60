package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML parses an edit script from YAML bytes. The script is
// structurally validated; range checks against actual content lengths
// happen at apply time.
func FromYAML(data []byte) (*Script, error) {
	script := &Script{}
	if err := yaml.Unmarshal(data, script); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("validate script: %w", err)
	}

	return script, nil
}

// ToYAML serializes the script with 2-space indentation.
func (s *Script) ToYAML() ([]byte, error) {
	if s == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("encode script: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}
