package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analyze"
	"github.com/jonathan/resume-analyzer/internal/catalog"
)

const rule = "----------------------------------------"

// Score bands for console coloring only; they carry no meaning beyond
// presentation.
const (
	scoreGood = 70
	scoreFair = 40
)

// WriteConsole renders the report as a human-readable block: header,
// score, per-category skill listing, then numbered suggestions. Skills
// within a category are ordered by descending occurrence count, ties
// broken by the catalog's keyword declaration order.
//
//nolint:errcheck // writing to a console writer; errors are not recoverable
func WriteConsole(w io.Writer, rep *Report, cat *catalog.Catalog, style Styler) {
	banner := strings.Repeat("=", 60)
	fmt.Fprintln(w, style.Title("%s", banner))
	fmt.Fprintln(w, style.Title("RESUME ANALYSIS REPORT"))
	fmt.Fprintln(w, style.Title("%s", banner))
	fmt.Fprintf(w, "File: %s\n", filepath.Base(rep.FilePath))
	fmt.Fprintf(w, "Skill Score: %s\n", scoreStyle(style, rep.Score)("%d/100", rep.Score))
	fmt.Fprintln(w)

	fmt.Fprintln(w, style.Heading("SKILLS FOUND BY CATEGORY:"))
	fmt.Fprintln(w, rule)
	for _, c := range cat.Categories() {
		found := rep.SkillCounts[c.Name]
		fmt.Fprintf(w, "%s\n", style.Heading("%s:", c.Name))
		if len(found) == 0 {
			fmt.Fprintf(w, "  %s\n", style.Warn("No skills found"))
			continue
		}
		for _, kw := range sortedSkills(found, c.Keywords) {
			count := found[kw]
			fmt.Fprintf(w, "  • %s: %d %s\n", style.Good("%s", analyze.TitleCase(kw)), count, mentions(count))
		}
	}
	fmt.Fprintln(w)

	if len(rep.Suggestions) > 0 {
		fmt.Fprintln(w, style.Heading("SUGGESTIONS FOR IMPROVEMENT:"))
		fmt.Fprintln(w, rule)
		for i, suggestion := range rep.Suggestions {
			fmt.Fprintf(w, "%d. %s\n", i+1, suggestion)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total unique skills found: %d\n", rep.TotalSkills)
}

// sortedSkills orders matched keywords by descending count. Building the
// slice in declaration order and sorting stably gives the documented
// tie-break for free.
func sortedSkills(found map[string]int, declared []string) []string {
	skills := make([]string, 0, len(found))
	for _, kw := range declared {
		if _, ok := found[kw]; ok {
			skills = append(skills, kw)
		}
	}
	sort.SliceStable(skills, func(i, j int) bool {
		return found[skills[i]] > found[skills[j]]
	})
	return skills
}

func mentions(count int) string {
	if count == 1 {
		return "mention"
	}
	return "mentions"
}

func scoreStyle(style Styler, score int) func(format string, a ...any) string {
	switch {
	case score >= scoreGood:
		return style.Good
	case score >= scoreFair:
		return style.Warn
	default:
		return style.Bad
	}
}
