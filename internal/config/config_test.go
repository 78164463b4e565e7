package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": "json", "export": "out.json", "verbose": true}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, "out.json", cfg.Export)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.ErrorContains(t, err, "config path is empty")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestValidate_OutputMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{OutputConsole, false},
		{OutputJSON, false},
		{"", false}, // empty means "use the default"
		{"yaml", true},
		{"Console", true},
	}

	for _, tt := range tests {
		cfg := Config{Output: tt.mode}
		err := cfg.Validate()
		if tt.wantErr {
			assert.ErrorContains(t, err, "invalid output mode", "mode %q", tt.mode)
		} else {
			assert.NoError(t, err, "mode %q", tt.mode)
		}
	}
}

func TestValidate_MissingCatalogFile(t *testing.T) {
	cfg := Config{Catalog: filepath.Join(t.TempDir(), "nope.yaml")}
	assert.ErrorContains(t, cfg.Validate(), "catalog file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Export: "custom.json"}

	merged := cfg.MergeWithDefaults(Config{Output: OutputConsole, Export: "default.json"})

	assert.Equal(t, OutputConsole, merged.Output)
	assert.Equal(t, "custom.json", merged.Export)

	// Explicit values always win over defaults.
	cfg = Config{Output: OutputJSON}
	merged = cfg.MergeWithDefaults(Config{Output: OutputConsole})
	assert.Equal(t, OutputJSON, merged.Output)
}
