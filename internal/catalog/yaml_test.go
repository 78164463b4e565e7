package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidCatalog(t *testing.T) {
	path := writeCatalogFile(t, `
categories:
  - name: Languages
    keywords: [go, python, c++]
    popular: [go, python]
  - name: Infrastructure
    keywords: [docker, kubernetes]
    popular: [docker]
`)

	cat, err := Load(path)
	require.NoError(t, err)

	categories := cat.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Languages", categories[0].Name)
	assert.Equal(t, []string{"go", "python", "c++"}, categories[0].Keywords)
	assert.Equal(t, []string{"docker"}, categories[1].Popular)

	owner, ok := cat.CategoryOf("kubernetes")
	require.True(t, ok)
	assert.Equal(t, "Infrastructure", owner)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read catalog file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeCatalogFile(t, "categories: [unclosed")

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse catalog YAML")
}

func TestLoad_InvalidCatalogRejected(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "duplicate keyword across categories",
			content: `
categories:
  - name: A
    keywords: [python]
  - name: B
    keywords: [python]
`,
		},
		{
			name: "uppercase keyword",
			content: `
categories:
  - name: A
    keywords: [Python]
`,
		},
		{
			name:    "no categories",
			content: "categories: []",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalogFile(t, tt.content)
			_, err := Load(path)
			assert.ErrorContains(t, err, "invalid catalog")
		})
	}
}
