package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a parameter-loading conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Files are loaded in order into a single store.
	Files []ParamFile `yaml:"files"`

	// Defaults are resolved with ResolveOrDefault after all files load.
	Defaults []Default `yaml:"defaults,omitempty"`

	// Assertions validate the final store.
	Assertions []Assertion `yaml:"assertions"`
}

// ParamFile is an inline parameter file.
type ParamFile struct {
	// Name is the file name inside the scratch directory.
	Name string `yaml:"name"`

	// Content is written verbatim.
	Content string `yaml:"content"`
}

// Default is a key resolved against the loaded store.
type Default struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`

	// Expect is the value ResolveOrDefault must return.
	// If nil, the returned value is not checked.
	Expect *string `yaml:"expect,omitempty"`
}

// Assertion validates the final store.
type Assertion struct {
	// Type specifies the assertion type:
	// - "value": Key is present with Value
	// - "absent": Key is not present
	// - "count": Store holds exactly Count keys
	Type string `yaml:"type"`

	Key   string `yaml:"key,omitempty"`
	Value string `yaml:"value,omitempty"`
	Count int    `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertValue  = "value"
	AssertAbsent = "absent"
	AssertCount  = "count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Files) == 0 {
		return fmt.Errorf("files list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Files))
	for i, f := range s.Files {
		if f.Name == "" {
			return fmt.Errorf("files[%d]: name is required", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("files[%d]: duplicate name %q", i, f.Name)
		}
		seen[f.Name] = true
	}

	for i, d := range s.Defaults {
		if d.Key == "" {
			return fmt.Errorf("defaults[%d]: key is required", i)
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertValue:
		if a.Key == "" {
			return fmt.Errorf("assertions[%d]: key is required for value", index)
		}
	case AssertAbsent:
		if a.Key == "" {
			return fmt.Errorf("assertions[%d]: key is required for absent", index)
		}
	case AssertCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
