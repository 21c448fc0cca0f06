package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/conclave/internal/param"
)

// Result is the outcome of running a scenario.
type Result struct {
	// Store is the final parameter store.
	Store *param.Store

	// Loaded holds the key count LoadFile reported after each file.
	Loaded []int

	// Resolved holds the value ResolveOrDefault returned for each default.
	Resolved []string

	// Filled lists keys that were default-filled, in resolve order.
	Filled []string

	// Pass is true when every expectation and assertion held.
	Pass bool

	// Errors describes each failed expectation or assertion.
	Errors []string
}

// Run executes a scenario in dir, which must be an existing writable
// directory. Parameter files are written there before loading.
//
// Returns an error only if the scenario could not be executed. Failed
// assertions are reported in Result.Errors.
func Run(s *Scenario, dir string) (*Result, error) {
	result := &Result{}
	st := param.New(param.WithDefaultObserver(func(key, _ string) {
		result.Filled = append(result.Filled, key)
	}))
	result.Store = st

	for _, f := range s.Files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
		n, err := st.LoadFile(path)
		if err != nil {
			return nil, err
		}
		result.Loaded = append(result.Loaded, n)
	}

	for i, d := range s.Defaults {
		got := st.ResolveOrDefault(d.Key, d.Value)
		result.Resolved = append(result.Resolved, got)
		if d.Expect != nil && got != *d.Expect {
			result.Errors = append(result.Errors,
				fmt.Sprintf("defaults[%d]: %s resolved to %q, expected %q", i, d.Key, got, *d.Expect))
		}
	}

	for i, a := range s.Assertions {
		if err := evaluate(st, a); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}

	result.Pass = len(result.Errors) == 0
	return result, nil
}
