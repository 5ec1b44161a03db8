package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/readykit/readykit/pkg/defaults"
	"github.com/readykit/readykit/templates"
)

// TemplateConfig defines customizable report settings. Configuration is
// loaded from YAML files to allow per-organization branding and section
// visibility.
type TemplateConfig struct {
	// Name is the template configuration identifier (e.g., "enterprise", "minimal")
	Name string `yaml:"name" json:"name"`

	// Version is the template config version for compatibility
	Version string `yaml:"version" json:"version"`

	// Branding customizes logos, colors, and company information
	Branding BrandingConfig `yaml:"branding" json:"branding"`

	// Sections defines which report sections to include
	Sections SectionConfig `yaml:"sections" json:"sections"`

	// Export configures PDF export geometry
	Export ExportConfig `yaml:"export" json:"export"`
}

// BrandingConfig holds organization branding information.
type BrandingConfig struct {
	// CompanyName appears in the report header
	CompanyName string `yaml:"company_name" json:"company_name"`

	// LogoURL is the URL or base64 encoded image for the logo
	LogoURL string `yaml:"logo_url" json:"logo_url"`

	// AccentColor is the primary brand color (hex, e.g., "#0066cc")
	AccentColor string `yaml:"accent_color" json:"accent_color"`

	// FooterText appears at the bottom of the report
	FooterText string `yaml:"footer_text" json:"footer_text"`

	// ShowPoweredBy shows "Powered by ReadyKit" if true
	ShowPoweredBy bool `yaml:"show_powered_by" json:"show_powered_by"`
}

// SectionConfig enables or disables specific report sections.
type SectionConfig struct {
	// Overview shows the overall readiness score card
	Overview bool `yaml:"overview" json:"overview"`

	// Readiness shows the multi-dimensional readiness view
	Readiness bool `yaml:"readiness" json:"readiness"`

	// Pillars shows the per-pillar breakdown
	Pillars bool `yaml:"pillars" json:"pillars"`

	// Compliance shows the compliance pillar card
	Compliance bool `yaml:"compliance" json:"compliance"`

	// Risks shows the risk disclosure buckets
	Risks bool `yaml:"risks" json:"risks"`

	// NextSteps shows the prioritized recommendations
	NextSteps bool `yaml:"next_steps" json:"next_steps"`
}

func (s SectionConfig) enabled(id string) bool {
	switch id {
	case SectionOverview:
		return s.Overview
	case SectionReadiness:
		return s.Readiness
	case SectionPillars:
		return s.Pillars
	case SectionCompliance:
		return s.Compliance
	case SectionRisks:
		return s.Risks
	case SectionNextSteps:
		return s.NextSteps
	default:
		return false
	}
}

// ExportConfig sets PDF export geometry.
type ExportConfig struct {
	// DPI is the page raster resolution
	DPI int `yaml:"dpi" json:"dpi"`

	// Filename is the attachment name for streamed exports
	Filename string `yaml:"filename" json:"filename"`
}

// DefaultTemplateConfig returns the default configuration.
func DefaultTemplateConfig() *TemplateConfig {
	return &TemplateConfig{
		Name:    "default",
		Version: "1.0",
		Branding: BrandingConfig{
			CompanyName:   "AI Readiness Assessment",
			AccentColor:   "#0066cc",
			ShowPoweredBy: true,
		},
		Sections: SectionConfig{
			Overview:   true,
			Readiness:  true,
			Pillars:    true,
			Compliance: true,
			Risks:      true,
			NextSteps:  true,
		},
		Export: ExportConfig{
			DPI:      defaults.ExportDPI,
			Filename: defaults.PDFFilename,
		},
	}
}

// MinimalTemplateConfig returns a configuration with only the score
// sections.
func MinimalTemplateConfig() *TemplateConfig {
	cfg := DefaultTemplateConfig()
	cfg.Name = "minimal"
	cfg.Sections = SectionConfig{
		Overview:  true,
		Pillars:   true,
		NextSteps: true,
	}
	return cfg
}

// LoadTemplateConfig loads a template configuration from a YAML file.
// Fields missing from the file keep their defaults. When the path does
// not exist on disk the bundled templates (default.yaml, minimal.yaml,
// enterprise.yaml) are consulted, so "minimal.yaml" works out of the box.
func LoadTemplateConfig(path string) (*TemplateConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if embedded, embErr := templates.FS.ReadFile(filepath.Base(path)); embErr == nil {
			data, err = embedded, nil
		}
	}
	if err != nil {
		return nil, err
	}

	cfg := DefaultTemplateConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveTemplateConfig writes a template configuration to a YAML file.
func SaveTemplateConfig(cfg *TemplateConfig, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ValidateConfig checks configuration for errors and returns descriptive
// validation errors instead of silently correcting values.
func ValidateConfig(cfg *TemplateConfig) error {
	var errs []string

	if cfg.Export.DPI < 72 || cfg.Export.DPI > 600 {
		errs = append(errs, fmt.Sprintf("invalid dpi %d: must be between 72 and 600", cfg.Export.DPI))
	}
	if cfg.Export.Filename == "" {
		errs = append(errs, "filename must not be empty")
	}
	if c := cfg.Branding.AccentColor; c != "" && !strings.HasPrefix(c, "#") {
		errs = append(errs, fmt.Sprintf("invalid accent_color %q: must be a hex color", c))
	}

	if len(errs) > 0 {
		return fmt.Errorf("template config validation: %s", strings.Join(errs, "; "))
	}

	return nil
}
