package report

import (
	"fmt"

	"github.com/fatih/color"
)

// Styler renders console text fragments. The two implementations — ANSI
// color and plain — are selected once at startup and injected into the
// renderer, so styling availability never leaks into program logic.
type Styler interface {
	Title(format string, a ...any) string
	Heading(format string, a ...any) string
	Good(format string, a ...any) string
	Warn(format string, a ...any) string
	Bad(format string, a ...any) string
}

// NewStyler returns the color styler when colored is true, the plain
// styler otherwise.
func NewStyler(colored bool) Styler {
	if !colored {
		return plainStyler{}
	}
	return colorStyler{
		title:   color.New(color.FgCyan, color.Bold).SprintfFunc(),
		heading: color.New(color.FgBlue, color.Bold).SprintfFunc(),
		good:    color.New(color.FgGreen).SprintfFunc(),
		warn:    color.New(color.FgYellow).SprintfFunc(),
		bad:     color.New(color.FgRed).SprintfFunc(),
	}
}

type colorStyler struct {
	title   func(format string, a ...interface{}) string
	heading func(format string, a ...interface{}) string
	good    func(format string, a ...interface{}) string
	warn    func(format string, a ...interface{}) string
	bad     func(format string, a ...interface{}) string
}

func (s colorStyler) Title(format string, a ...any) string   { return s.title(format, a...) }
func (s colorStyler) Heading(format string, a ...any) string { return s.heading(format, a...) }
func (s colorStyler) Good(format string, a ...any) string    { return s.good(format, a...) }
func (s colorStyler) Warn(format string, a ...any) string    { return s.warn(format, a...) }
func (s colorStyler) Bad(format string, a ...any) string     { return s.bad(format, a...) }

type plainStyler struct{}

func (plainStyler) Title(format string, a ...any) string   { return fmt.Sprintf(format, a...) }
func (plainStyler) Heading(format string, a ...any) string { return fmt.Sprintf(format, a...) }
func (plainStyler) Good(format string, a ...any) string    { return fmt.Sprintf(format, a...) }
func (plainStyler) Warn(format string, a ...any) string    { return fmt.Sprintf(format, a...) }
func (plainStyler) Bad(format string, a ...any) string     { return fmt.Sprintf(format, a...) }
