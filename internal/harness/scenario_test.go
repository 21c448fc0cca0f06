package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_Valid(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "merge_override.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "merge_override", s.Name)
	require.Len(t, s.Files, 2)
	assert.Equal(t, "first.txt", s.Files[0].Name)
	assert.Contains(t, s.Files[1].Content, "# per gene")
	assert.Len(t, s.Assertions, 4)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_RejectsUnknownFields(t *testing.T) {
	data := []byte(`
name: typo
description: has a typo
files:
  - name: a.txt
    content: "a = 1"
assertion:
  - type: count
    count: 1
`)
	_, err := ParseScenario(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "description: d\nfiles: [{name: a, content: x}]\nassertions: [{type: count}]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: n\nfiles: [{name: a, content: x}]\nassertions: [{type: count}]\n",
			wantErr: "description is required",
		},
		{
			name:    "no files",
			yaml:    "name: n\ndescription: d\nassertions: [{type: count}]\n",
			wantErr: "files list is required",
		},
		{
			name:    "no assertions",
			yaml:    "name: n\ndescription: d\nfiles: [{name: a, content: x}]\n",
			wantErr: "assertions list is required",
		},
		{
			name:    "duplicate file",
			yaml:    "name: n\ndescription: d\nfiles: [{name: a, content: x}, {name: a, content: y}]\nassertions: [{type: count}]\n",
			wantErr: "duplicate name",
		},
		{
			name:    "default without key",
			yaml:    "name: n\ndescription: d\nfiles: [{name: a, content: x}]\ndefaults: [{value: v}]\nassertions: [{type: count}]\n",
			wantErr: "defaults[0]: key is required",
		},
		{
			name:    "value without key",
			yaml:    "name: n\ndescription: d\nfiles: [{name: a, content: x}]\nassertions: [{type: value, value: v}]\n",
			wantErr: "key is required for value",
		},
		{
			name:    "unknown assertion",
			yaml:    "name: n\ndescription: d\nfiles: [{name: a, content: x}]\nassertions: [{type: ordered}]\n",
			wantErr: "unknown assertion type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScenarioFiles_AllParse(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, p := range paths {
		_, err := os.Stat(p)
		require.NoError(t, err)
		_, err = LoadScenario(p)
		assert.NoError(t, err, p)
	}
}
