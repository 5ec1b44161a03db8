// Package config holds CLI configuration shared by the subcommands.
package config

import (
	"flag"
	"fmt"

	"github.com/readykit/readykit/pkg/defaults"
)

// Config holds all CLI configuration options
type Config struct {
	// Input settings
	InputFile string // answers JSON file ("-" = stdin)

	// Output settings
	OutputFile string // output file path (empty = stdout)
	Format     string // dashboard, json, html
	NoColor    bool   // disable colored output

	// Export settings
	TemplateFile string // report template YAML (empty = defaults)
	DashboardURL string // dashboard page for live capture
	DPI          int    // page raster resolution

	// Server settings
	Addr          string // listen address
	FeedbackPath  string // feedback JSONL store
	RetentionDays int    // feedback retention window, negative disables pruning
}

// Default returns the baseline configuration before flag parsing.
func Default() *Config {
	return &Config{
		InputFile:     "-",
		Format:        "dashboard",
		DPI:           defaults.ExportDPI,
		Addr:          fmt.Sprintf(":%d", defaults.PortHTTP),
		FeedbackPath:  "data/feedback.jsonl",
		RetentionDays: defaults.RetentionDays,
	}
}

// RegisterScoreFlags wires the flags of the score subcommand.
func (c *Config) RegisterScoreFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.InputFile, "input", c.InputFile, "Answers JSON file (- for stdin)")
	fs.StringVar(&c.InputFile, "i", c.InputFile, "Answers JSON file (alias)")
	fs.StringVar(&c.OutputFile, "output", "", "Output file path (empty = stdout)")
	fs.StringVar(&c.OutputFile, "o", "", "Output file (alias)")
	fs.StringVar(&c.Format, "format", c.Format, "Output format: dashboard, json, html")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable colored output")
}

// RegisterExportFlags wires the flags of the export subcommand.
func (c *Config) RegisterExportFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.InputFile, "input", c.InputFile, "Answers JSON file (- for stdin)")
	fs.StringVar(&c.InputFile, "i", c.InputFile, "Answers JSON file (alias)")
	fs.StringVar(&c.OutputFile, "output", "report.pdf", "PDF output path")
	fs.StringVar(&c.OutputFile, "o", "report.pdf", "PDF output path (alias)")
	fs.StringVar(&c.TemplateFile, "template", "", "Report template YAML")
	fs.StringVar(&c.DashboardURL, "dashboard-url", "", "Dashboard URL for live capture")
	fs.IntVar(&c.DPI, "dpi", c.DPI, "Page raster resolution")
}

// RegisterServeFlags wires the flags of the serve subcommand.
func (c *Config) RegisterServeFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "Listen address")
	fs.StringVar(&c.DashboardURL, "dashboard-url", "", "Dashboard URL for PDF capture")
	fs.StringVar(&c.TemplateFile, "template", "", "Report template YAML")
	fs.StringVar(&c.FeedbackPath, "feedback-path", c.FeedbackPath, "Feedback JSONL store path")
	fs.IntVar(&c.RetentionDays, "retention-days", c.RetentionDays, "Feedback retention window in days (negative disables pruning)")
}

// Validate checks the parsed configuration for a subcommand.
func (c *Config) Validate(command string) error {
	switch command {
	case "score":
		switch c.Format {
		case "dashboard", "json", "html":
		default:
			return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
		}
	case "export":
		if c.OutputFile == "" {
			return fmt.Errorf("%w: output path", ErrMissingRequired)
		}
		if c.DPI < 72 || c.DPI > 600 {
			return fmt.Errorf("%w: dpi %d outside 72-600", ErrInvalidConfig, c.DPI)
		}
	case "serve":
		if c.Addr == "" {
			return fmt.Errorf("%w: listen address", ErrMissingRequired)
		}
	}
	if c.InputFile == "" {
		return fmt.Errorf("%w: input file", ErrMissingRequired)
	}
	return nil
}
