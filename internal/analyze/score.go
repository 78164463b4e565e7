package analyze

import "github.com/jonathan/resume-analyzer/internal/catalog"

const (
	// coverageWeight and countWeight each cap their half of the score at 50,
	// so breadth across categories counts as much as raw keyword volume.
	// Keyword-stuffing a single category cannot push the score past the
	// count half.
	coverageWeight   = 50.0
	countCap         = 50
	pointsPerKeyword = 2
)

// Score reduces a match result to a skill diversity score in [0,100]:
// half from category coverage, half from the total number of distinct
// matched keywords. The sum is truncated to an integer.
func Score(result MatchResult, cat *catalog.Catalog) int {
	coverage := float64(result.CoveredCount()) / float64(cat.Len()) * coverageWeight

	countScore := result.UniqueCount() * pointsPerKeyword
	if countScore > countCap {
		countScore = countCap
	}

	return int(coverage + float64(countScore))
}
