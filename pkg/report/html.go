package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/readykit/readykit/pkg/classify"
	"github.com/readykit/readykit/pkg/risk"
	"github.com/readykit/readykit/pkg/scoring"
)

//go:embed report.html.tmpl
var reportTemplate string

// ComplianceView pairs the compliance pillar's score with its status.
type ComplianceView struct {
	Percentage float64
	Level      classify.Level
}

// HTMLData is everything the report template consumes.
type HTMLData struct {
	Branding        BrandingConfig
	Sections        SectionConfig
	GeneratedAt     time.Time
	Result          *scoring.Result
	Readiness       classify.Level
	Compliance      *ComplianceView // nil when the catalog has no compliance pillar
	Risk            risk.Profile
	Recommendations []Recommendation
}

// BuildHTMLData derives the full template payload from a scored result.
func BuildHTMLData(result *scoring.Result, profile risk.Profile, cfg *TemplateConfig) HTMLData {
	if cfg == nil {
		cfg = DefaultTemplateConfig()
	}
	data := HTMLData{
		Branding:        cfg.Branding,
		Sections:        cfg.Sections,
		GeneratedAt:     time.Now().UTC(),
		Result:          result,
		Readiness:       classify.ReadinessLevel(result.OverallPercentage),
		Risk:            profile,
		Recommendations: NextSteps(result),
	}
	if pct, ok := CompliancePercentage(result); ok {
		data.Compliance = &ComplianceView{
			Percentage: pct,
			Level:      classify.ComplianceStatus(pct),
		}
	}
	return data
}

// RenderHTML writes the standalone HTML report. The template carries the
// same data-section markers the capturer selects on, so the HTML report
// and the PDF export stay structurally identical.
func RenderHTML(w io.Writer, data HTMLData) error {
	funcMap := sprig.HtmlFuncMap()
	funcMap["pct"] = func(v float64) string { return fmt.Sprintf("%.1f%%", v) }

	tmpl, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("report: parse template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}
	return nil
}
