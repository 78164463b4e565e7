// Package analyze implements the resume analysis pipeline: text
// normalization, catalog keyword matching, scoring, and improvement
// suggestions.
package analyze

import (
	"regexp"
	"strings"
)

var (
	// noiseChars matches every character that carries no signal for skill
	// matching. Hyphen, period, plus and hash survive so tokens like
	// "scikit-learn", "node.js", "c++" and "c#" stay intact.
	noiseChars = regexp.MustCompile(`[^a-zA-Z0-9\s.+#-]+`)
	spaceRuns  = regexp.MustCompile(`\s+`)
)

// Normalize converts raw extracted text into the lowercase, single-spaced
// corpus the matcher scans. Noise characters are removed before whitespace
// is collapsed so their removal cannot leave double spaces behind. The
// result never contains tabs, newlines, or runs of two or more spaces.
func Normalize(raw string) string {
	s := noiseChars.ReplaceAllString(raw, "")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = strings.ToLower(s)
	return strings.TrimSpace(s)
}

// TitleCase upper-cases the first letter of each space-separated word,
// leaving the rest untouched: "machine learning" -> "Machine Learning",
// "node.js" -> "Node.js", "c++" -> "C++".
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
