package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// fileCatalog mirrors the on-disk YAML layout of a custom catalog:
//
//	categories:
//	  - name: Programming Languages
//	    keywords: [python, go]
//	    popular: [python]
type fileCatalog struct {
	Categories []fileCategory `yaml:"categories"`
}

type fileCategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Popular  []string `yaml:"popular"`
}

// Load reads a custom catalog from a YAML file. The loaded catalog is
// subject to the same validation as the built-in one and replaces it
// entirely; it is not merged.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	categories := make([]Category, 0, len(fc.Categories))
	for _, c := range fc.Categories {
		categories = append(categories, Category{
			Name:     c.Name,
			Keywords: c.Keywords,
			Popular:  c.Popular,
		})
	}

	cat, err := New(categories)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return cat, nil
}
