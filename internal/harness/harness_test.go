package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/conclave/internal/param"
)

func strPtr(s string) *string { return &s }

func TestRun_LoadsFilesInOrder(t *testing.T) {
	s := &Scenario{
		Name:        "order",
		Description: "second file wins",
		Files: []ParamFile{
			{Name: "one.txt", Content: "x = 1\ny = 1\n"},
			{Name: "two.txt", Content: "x = 2\n"},
		},
		Assertions: []Assertion{
			{Type: AssertValue, Key: "x", Value: "2"},
			{Type: AssertValue, Key: "y", Value: "1"},
			{Type: AssertCount, Count: 2},
		},
	}

	result, err := Run(s, t.TempDir())
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, []int{2, 2}, result.Loaded)
}

func TestRun_RecordsDefaultFills(t *testing.T) {
	s := &Scenario{
		Name:        "defaults",
		Description: "fills",
		Files:       []ParamFile{{Name: "p.txt", Content: "present = yes\n"}},
		Defaults: []Default{
			{Key: "present", Value: "no", Expect: strPtr("yes")},
			{Key: "Missing", Value: "7"},
			{Key: "missing", Value: "8", Expect: strPtr("7")},
		},
		Assertions: []Assertion{{Type: AssertCount, Count: 2}},
	}

	result, err := Run(s, t.TempDir())
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, []string{"yes", "7", "7"}, result.Resolved)
	assert.Equal(t, []string{"missing"}, result.Filled)
}

func TestRun_ReportsFailures(t *testing.T) {
	s := &Scenario{
		Name:        "failing",
		Description: "every assertion fails",
		Files:       []ParamFile{{Name: "p.txt", Content: "a = 1\n"}},
		Defaults:    []Default{{Key: "b", Value: "2", Expect: strPtr("3")}},
		Assertions: []Assertion{
			{Type: AssertValue, Key: "a", Value: "9"},
			{Type: AssertValue, Key: "zzz", Value: "1"},
			{Type: AssertAbsent, Key: "a"},
			{Type: AssertCount, Count: 5},
		},
	}

	result, err := Run(s, t.TempDir())
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 5)
	assert.Contains(t, result.Errors[0], "defaults[0]")
	assert.Contains(t, result.Errors[1], `expected "9"`)
	assert.Contains(t, result.Errors[2], "not found")
	assert.Contains(t, result.Errors[3], "expected absent")
	assert.Contains(t, result.Errors[4], "expected 5")
}

func TestRun_LoadFailure(t *testing.T) {
	s := &Scenario{
		Name:        "bad-dir",
		Description: "cannot write",
		Files:       []ParamFile{{Name: "p.txt", Content: "a = 1\n"}},
		Assertions:  []Assertion{{Type: AssertCount, Count: 1}},
	}

	_, err := Run(s, filepath.Join(t.TempDir(), "missing", "dir"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write p.txt")
}

func TestRun_WritesFilesVerbatim(t *testing.T) {
	dir := t.TempDir()
	content := "Key = Value # note\n"
	s := &Scenario{
		Name:        "verbatim",
		Description: "file on disk matches scenario content",
		Files:       []ParamFile{{Name: "p.txt", Content: content}},
		Assertions:  []Assertion{{Type: AssertValue, Key: "key", Value: "Value"}},
	}

	result, err := Run(s, dir)
	require.NoError(t, err)
	assert.True(t, result.Pass)

	data, err := os.ReadFile(filepath.Join(dir, "p.txt"))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestEvaluate_DoesNotDefaultFill(t *testing.T) {
	st := param.New()
	err := evaluate(st, Assertion{Type: AssertValue, Key: "ghost", Value: "x"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "ghost"))
	assert.Equal(t, 0, st.Len())
}
