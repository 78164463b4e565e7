package analyze

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/catalog"
)

const (
	// maxSuggestions caps the final list. Truncation happens after all
	// rules have run, so earlier rules always win over later ones.
	maxSuggestions = 5

	// lowRepresentation marks categories with too few matched keywords to
	// count as well covered.
	lowRepresentation = 2

	// minSkillTotal is the unique-keyword count under which the generic
	// "add more skills" suggestion fires.
	minSkillTotal = 10

	// maxPopularShown limits how many missing popular skills one
	// suggestion names.
	maxPopularShown = 3
)

// Suggest derives an ordered list of improvement suggestions from a match
// result. Rules run unconditionally in a fixed priority order — missing
// categories, underrepresented categories, overall skill volume, cloud
// presence — and the combined output is truncated to maxSuggestions at
// the very end. For identical input the output is identical.
func Suggest(result MatchResult, cat *catalog.Catalog) []string {
	var suggestions []string
	categories := cat.Categories()

	// Rule 1: categories with no matches at all, in declaration order.
	var missing []string
	for _, c := range categories {
		if len(result[c.Name]) == 0 {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Consider adding skills in these categories: %s", strings.Join(missing, ", ")))
	}

	// Rule 2: categories that are present but thin get pointed at the
	// popular skills they do not mention yet.
	for _, c := range categories {
		found := result[c.Name]
		if len(found) == 0 || len(found) > lowRepresentation {
			continue
		}
		var absent []string
		for _, popular := range c.Popular {
			if _, ok := found[strings.ToLower(popular)]; ok {
				continue
			}
			absent = append(absent, TitleCase(popular))
			if len(absent) == maxPopularShown {
				break
			}
		}
		if len(absent) > 0 {
			suggestions = append(suggestions,
				fmt.Sprintf("Add more %s skills like: %s", c.Name, strings.Join(absent, ", ")))
		}
	}

	// Rule 3: thin resume overall.
	if result.UniqueCount() < minSkillTotal {
		suggestions = append(suggestions,
			"Consider adding more technical skills to strengthen your resume")
	}

	// Rule 4: cloud skills carry outsized market weight. Custom catalogs
	// without the category skip the rule.
	if cloud, ok := result[catalog.CategoryCloudDevOps]; ok && len(cloud) == 0 {
		suggestions = append(suggestions,
			"Cloud skills are in high demand - consider adding AWS, Azure, or Docker experience")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
