// Package catalog defines the immutable skill vocabulary the analyzer can detect.
package catalog

import (
	"fmt"
	"strings"
)

// Category names of the built-in catalog, in declaration order.
const (
	CategoryProgrammingLanguages = "Programming Languages"
	CategoryWebTechnologies      = "Web Technologies"
	CategoryDatabases            = "Databases"
	CategoryCloudDevOps          = "Cloud & DevOps"
	CategoryDataScienceML        = "Data Science & ML"
	CategoryToolsFrameworks      = "Tools & Frameworks"
)

// Category groups related skill keywords under a display name.
// Keywords is the full detectable vocabulary for the category; Popular is a
// short ranked list used when suggesting additions for underrepresented
// categories.
type Category struct {
	Name     string
	Keywords []string
	Popular  []string
}

// Catalog is the complete skill vocabulary, immutable after construction.
// Category order and keyword order within a category are significant: they
// drive suggestion ordering and tie-breaks when rendering.
type Catalog struct {
	categories []Category
	index      map[string]string // keyword -> owning category name
}

// New builds a validated Catalog. Every keyword must be lowercase, contain
// only characters that survive text normalization (alphanumerics, single
// spaces, '-', '.', '+', '#'), and belong to exactly one category.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}

	index := make(map[string]string)
	names := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, fmt.Errorf("catalog category with empty name")
		}
		if _, ok := names[cat.Name]; ok {
			return nil, fmt.Errorf("duplicate category %q", cat.Name)
		}
		names[cat.Name] = struct{}{}

		if len(cat.Keywords) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", cat.Name)
		}
		for _, kw := range cat.Keywords {
			if err := checkKeyword(kw); err != nil {
				return nil, fmt.Errorf("category %q: %w", cat.Name, err)
			}
			if owner, ok := index[kw]; ok {
				return nil, fmt.Errorf("keyword %q appears in both %q and %q", kw, owner, cat.Name)
			}
			index[kw] = cat.Name
		}
		for _, pop := range cat.Popular {
			if err := checkKeyword(pop); err != nil {
				return nil, fmt.Errorf("category %q popular list: %w", cat.Name, err)
			}
		}
	}

	return &Catalog{categories: copyCategories(categories), index: index}, nil
}

// checkKeyword rejects keywords that normalization would alter, since such
// keywords could never match normalized text.
func checkKeyword(kw string) error {
	if kw == "" {
		return fmt.Errorf("empty keyword")
	}
	if kw != strings.TrimSpace(kw) {
		return fmt.Errorf("keyword %q has leading or trailing whitespace", kw)
	}
	if strings.Contains(kw, "  ") {
		return fmt.Errorf("keyword %q contains consecutive spaces", kw)
	}
	for _, r := range kw {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == ' ', r == '-', r == '.', r == '+', r == '#':
		default:
			return fmt.Errorf("keyword %q contains unsupported character %q", kw, r)
		}
	}
	return nil
}

// Categories returns the catalog categories in declaration order.
// The returned slice is a copy; mutating it does not affect the catalog.
func (c *Catalog) Categories() []Category {
	return copyCategories(c.categories)
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// CategoryOf returns the category owning the given keyword.
func (c *Catalog) CategoryOf(keyword string) (string, bool) {
	name, ok := c.index[keyword]
	return name, ok
}

// KeywordCount returns the total number of keywords across all categories.
func (c *Catalog) KeywordCount() int {
	return len(c.index)
}

func copyCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, cat := range categories {
		out[i] = Category{
			Name:     cat.Name,
			Keywords: append([]string(nil), cat.Keywords...),
			Popular:  append([]string(nil), cat.Popular...),
		}
	}
	return out
}

// Default returns the built-in six-category catalog.
func Default() *Catalog {
	c, err := New(defaultCategories())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog invalid: %v", err))
	}
	return c
}

func defaultCategories() []Category {
	return []Category{
		{
			Name: CategoryProgrammingLanguages,
			Keywords: []string{
				"python", "java", "javascript", "typescript", "c++", "c#",
				"go", "rust", "ruby", "php", "swift", "kotlin", "scala",
			},
			Popular: []string{"python", "javascript", "java", "typescript"},
		},
		{
			Name: CategoryWebTechnologies,
			Keywords: []string{
				"react", "angular", "vue", "node.js", "django", "flask",
				"express", "spring", "html", "css", "rest api", "graphql",
			},
			Popular: []string{"react", "node.js", "html", "css"},
		},
		{
			Name: CategoryDatabases,
			Keywords: []string{
				"sql", "postgresql", "mysql", "mongodb", "redis", "sqlite",
				"oracle", "elasticsearch", "cassandra",
			},
			Popular: []string{"sql", "postgresql", "mongodb"},
		},
		{
			Name: CategoryCloudDevOps,
			Keywords: []string{
				"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
				"terraform", "ansible", "devops",
			},
			Popular: []string{"aws", "docker", "kubernetes"},
		},
		{
			Name: CategoryDataScienceML,
			Keywords: []string{
				"machine learning", "deep learning", "tensorflow", "pytorch",
				"pandas", "numpy", "scikit-learn", "data analysis", "spark",
			},
			Popular: []string{"machine learning", "pandas", "tensorflow"},
		},
		{
			Name: CategoryToolsFrameworks,
			Keywords: []string{
				"git", "linux", "agile", "scrum", "jira", "vim", "postman",
				"bash", "github",
			},
			Popular: []string{"git", "linux", "agile"},
		},
	}
}
