package harness

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios_Golden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, p := range paths {
		name := strings.TrimSuffix(filepath.Base(p), ".yaml")
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(p)
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestAssertGolden_FormatBasicsLoadCount(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "format_basics.yaml"))
	require.NoError(t, err)

	result, err := Run(scenario, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []int{2}, result.Loaded)

	AssertGolden(t, "format_basics", result)
}
