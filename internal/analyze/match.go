package analyze

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/catalog"
)

// MatchResult maps each catalog category to its matched keywords and
// occurrence counts. Every category of the catalog is present; categories
// without matches hold an empty (non-nil) map, which reporting and
// suggestions rely on. Keywords with zero occurrences are absent.
type MatchResult map[string]map[string]int

// Match scans normalized text for every catalog keyword using whole-word
// matching. Multi-word keywords match only as an exact single-spaced
// phrase, which is why whitespace collapsing in Normalize is a
// precondition.
func Match(text string, cat *catalog.Catalog) MatchResult {
	result := make(MatchResult, cat.Len())
	for _, c := range cat.Categories() {
		found := make(map[string]int)
		for _, kw := range c.Keywords {
			if n := countWholeWord(text, kw); n > 0 {
				found[kw] = n
			}
		}
		result[c.Name] = found
	}
	return result
}

// EmptyResult returns the match result of an empty corpus: every catalog
// category mapped to an empty keyword map.
func EmptyResult(cat *catalog.Catalog) MatchResult {
	result := make(MatchResult, cat.Len())
	for _, c := range cat.Categories() {
		result[c.Name] = make(map[string]int)
	}
	return result
}

// UniqueCount returns the number of distinct matched keywords across all
// categories.
func (r MatchResult) UniqueCount() int {
	total := 0
	for _, found := range r {
		total += len(found)
	}
	return total
}

// CoveredCount returns the number of categories with at least one match.
func (r MatchResult) CoveredCount() int {
	covered := 0
	for _, found := range r {
		if len(found) > 0 {
			covered++
		}
	}
	return covered
}

// countWholeWord counts word-boundary-delimited occurrences of phrase in
// text. A boundary is the text edge or any non-alphanumeric character, so
// "react" is not counted inside "reactjs" while "c++" and "node.js" still
// match whole. The scan is a manual index walk rather than a regexp:
// RE2 has no lookaround, and consuming separators would miss adjacent
// occurrences such as "python python".
func countWholeWord(text, phrase string) int {
	if phrase == "" {
		return 0
	}
	count := 0
	for offset := 0; ; {
		i := strings.Index(text[offset:], phrase)
		if i < 0 {
			break
		}
		i += offset
		end := i + len(phrase)
		if boundary(text, i-1) && boundary(text, end) {
			count++
		}
		offset = i + 1
	}
	return count
}

// boundary reports whether position i in text can delimit a whole word:
// either outside the text or holding a non-alphanumeric byte. Normalized
// text is pure ASCII, so byte indexing is safe.
func boundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	b := text[i]
	isWord := b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
	return !isWord
}
