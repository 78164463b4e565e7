// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analyze"
	"github.com/jonathan/resume-analyzer/internal/catalog"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode. A nil Printer is
// valid and prints nothing, so callers can pass it through unconditionally.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtraction summarizes the raw text pulled out of the PDF.
func (p *Printer) PrintExtraction(path string, rawLen, normalizedLen int) {
	if p == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:          %s\n", path))
	sb.WriteString(fmt.Sprintf("Raw text:        %d characters\n", rawLen))
	sb.WriteString(fmt.Sprintf("Normalized text: %d characters", normalizedLen))
	p.printBox("Text Extraction", sb.String())
}

// PrintMatches outputs a per-category summary of the match result.
func (p *Printer) PrintMatches(result analyze.MatchResult, cat *catalog.Catalog) {
	if p == nil {
		return
	}
	var sb strings.Builder
	for _, c := range cat.Categories() {
		found := result[c.Name]
		sb.WriteString(fmt.Sprintf("%-22s %d keyword(s)\n", c.Name+":", len(found)))
	}
	sb.WriteString(fmt.Sprintf("Unique skills: %d", result.UniqueCount()))
	p.printBox("Skill Matching", sb.String())
}
