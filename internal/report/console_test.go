package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/analyze"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConsole_FullReport(t *testing.T) {
	cat := catalog.Default()
	rep := sampleReport(t)

	var buf bytes.Buffer
	WriteConsole(&buf, rep, cat, NewStyler(false))
	out := buf.String()

	assert.Contains(t, out, "RESUME ANALYSIS REPORT")
	assert.Contains(t, out, "File: resume.pdf") // base name, not the full path
	assert.Contains(t, out, "Skill Score: 31/100")
	assert.Contains(t, out, "Python: 2 mentions")
	assert.Contains(t, out, "Django: 1 mention\n")
	assert.Contains(t, out, "No skills found")
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "Total unique skills found: 3")
	assert.NotContains(t, out, "\x1b[", "plain styler must not emit ANSI sequences")
}

func TestWriteConsole_CategoriesInDeclarationOrder(t *testing.T) {
	cat := catalog.Default()
	rep := sampleReport(t)

	var buf bytes.Buffer
	WriteConsole(&buf, rep, cat, NewStyler(false))
	out := buf.String()

	prev := -1
	for _, c := range cat.Categories() {
		idx := strings.Index(out, c.Name+":")
		require.Greater(t, idx, prev, "category %q out of order", c.Name)
		prev = idx
	}
}

func TestWriteConsole_SuggestionsAreNumbered(t *testing.T) {
	cat := catalog.Default()
	rep := New("r.pdf", analyze.EmptyResult(cat), 0, []string{"first", "second"})

	var buf bytes.Buffer
	WriteConsole(&buf, rep, cat, NewStyler(false))
	out := buf.String()

	assert.Contains(t, out, "1. first\n")
	assert.Contains(t, out, "2. second\n")
}

func TestWriteConsole_NoSuggestionsOmitsSection(t *testing.T) {
	cat := catalog.Default()
	rep := New("r.pdf", analyze.EmptyResult(cat), 0, nil)

	var buf bytes.Buffer
	WriteConsole(&buf, rep, cat, NewStyler(false))

	assert.NotContains(t, buf.String(), "SUGGESTIONS FOR IMPROVEMENT")
}

func TestSortedSkills_CountDescendingThenDeclarationOrder(t *testing.T) {
	declared := []string{"python", "java", "javascript", "typescript"}

	tests := []struct {
		name  string
		found map[string]int
		want  []string
	}{
		{
			name:  "higher counts first",
			found: map[string]int{"python": 1, "java": 3, "typescript": 2},
			want:  []string{"java", "typescript", "python"},
		},
		{
			name:  "ties keep declaration order",
			found: map[string]int{"javascript": 1, "python": 1, "java": 1},
			want:  []string{"python", "java", "javascript"},
		},
		{
			name:  "empty",
			found: map[string]int{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortedSkills(tt.found, declared))
		})
	}
}

func TestStyler_PlainAndColorAgreeOnContent(t *testing.T) {
	plain := NewStyler(false)
	colored := NewStyler(true)

	stripANSI := func(s string) string {
		for {
			start := strings.Index(s, "\x1b[")
			if start < 0 {
				return s
			}
			end := strings.IndexByte(s[start:], 'm')
			if end < 0 {
				return s
			}
			s = s[:start] + s[start+end+1:]
		}
	}

	for _, f := range []func(string, ...any) string{colored.Title, colored.Heading, colored.Good, colored.Warn, colored.Bad} {
		assert.Equal(t, plain.Title("score %d", 42), stripANSI(f("score %d", 42)))
	}
}
