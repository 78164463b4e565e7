// Package report defines the analysis report entity and its console and
// JSON renderers.
package report

import (
	"github.com/jonathan/resume-analyzer/internal/analyze"
)

// Report is the aggregate outcome of analyzing one resume. It is
// constructed once per invocation and never mutated afterwards; the JSON
// field set is the canonical export layout and must stay losslessly
// round-trippable.
type Report struct {
	FilePath    string              `json:"file_path"`
	SkillCounts analyze.MatchResult `json:"skill_counts"`
	Score       int                 `json:"score"`
	Suggestions []string            `json:"suggestions"`
	TotalSkills int                 `json:"total_skills"`
}

// New assembles a report. TotalSkills is derived from the match result;
// a nil suggestion list becomes an empty one so the JSON export always
// carries an array.
func New(filePath string, counts analyze.MatchResult, score int, suggestions []string) *Report {
	if suggestions == nil {
		suggestions = []string{}
	}
	return &Report{
		FilePath:    filePath,
		SkillCounts: counts,
		Score:       score,
		Suggestions: suggestions,
		TotalSkills: counts.UniqueCount(),
	}
}
