package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/analyze"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/report"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer <resume.pdf>",
	Short: "Analyze a PDF resume for technical skill coverage",
	Long: `Resume Analyzer extracts the text of a PDF resume, matches it against a
catalog of technical skills grouped by category, computes a 0-100
diversity score, and suggests skills for missing or underrepresented
categories.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runAnalyze,
}

var (
	rootConfigPath  string
	rootOutput      string
	rootExportPath  string
	rootCatalogPath string
	rootNoColor     bool
	rootVerbose     bool
)

func init() {
	rootCmd.Flags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.Flags().StringVarP(&rootOutput, "output", "o", "", `Output mode: "console" or "json"`)
	rootCmd.Flags().StringVarP(&rootExportPath, "export", "e", "", "Also write the structured report as JSON to this path")
	rootCmd.Flags().StringVar(&rootCatalogPath, "catalog", "", "Path to a YAML file replacing the built-in skill catalog")
	rootCmd.Flags().BoolVar(&rootNoColor, "no-color", false, "Disable ANSI colors in console output")
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed pipeline information")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.Load(rootConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("output") {
		cfg.Output = rootOutput
	}
	if cmd.Flags().Changed("export") {
		cfg.Export = rootExportPath
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = rootCatalogPath
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = rootNoColor
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	// Step 3: Apply defaults and validate before any processing
	cfg = cfg.MergeWithDefaults(config.Config{Output: config.OutputConsole})
	if err := cfg.Validate(); err != nil {
		return err
	}

	cat := catalog.Default()
	if cfg.Catalog != "" {
		loaded, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return err
		}
		cat = loaded
	}

	var printer *observability.Printer
	if cfg.Verbose {
		printer = observability.NewPrinter(os.Stdout)
	}

	rep := buildReport(args[0], cat, printer)

	switch cfg.Output {
	case config.OutputConsole:
		style := report.NewStyler(!cfg.NoColor && os.Getenv("NO_COLOR") == "")
		report.WriteConsole(os.Stdout, rep, cat, style)
	case config.OutputJSON:
		data, err := report.Marshal(rep)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
	}

	if cfg.Export != "" {
		if err := report.WriteJSON(cfg.Export, rep); err != nil {
			// The report was already rendered; an export failure only warns.
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return nil
}

// buildReport runs the extract -> normalize -> match -> score -> suggest
// pipeline. Extraction failures degrade to an empty report with a console
// message; the process still exits 0.
func buildReport(path string, cat *catalog.Catalog, printer *observability.Printer) *report.Report {
	text, err := extract.Text(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return report.New(path, analyze.EmptyResult(cat), 0, nil)
	}

	normalized := analyze.Normalize(text)
	printer.PrintExtraction(path, len(text), len(normalized))

	result := analyze.Match(normalized, cat)
	printer.PrintMatches(result, cat)

	score := analyze.Score(result, cat)
	suggestions := analyze.Suggest(result, cat)
	return report.New(path, result, score, suggestions)
}
