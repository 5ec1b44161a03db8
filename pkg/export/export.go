// Package export orchestrates the PDF export pipeline: capture each
// report section, assemble the rasters into page images, and write the
// final document.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/readykit/readykit/pkg/answers"
	"github.com/readykit/readykit/pkg/capture"
	"github.com/readykit/readykit/pkg/output/writers"
	"github.com/readykit/readykit/pkg/paginate"
	"github.com/readykit/readykit/pkg/report"
	"github.com/readykit/readykit/pkg/scoring"
)

// ErrNothingCaptured indicates every section capture failed, leaving no
// pages to export.
var ErrNothingCaptured = errors.New("export: no section could be captured")

// Result is a finished export.
type Result struct {
	PDF     []byte
	Pages   int
	Skipped []string // titles of sections missing from the document
}

// Exporter runs the capture-assemble-write pipeline. Sections are
// captured strictly in report order; a failed capture degrades the
// document instead of aborting it.
type Exporter struct {
	capturer capture.Capturer
	template *report.TemplateConfig
	pdf      *writers.PDFWriter
}

// New creates an exporter. A nil template means defaults.
func New(capturer capture.Capturer, template *report.TemplateConfig) *Exporter {
	if template == nil {
		template = report.DefaultTemplateConfig()
	}
	return &Exporter{
		capturer: capturer,
		template: template,
		pdf: writers.NewPDFWriter(writers.PDFConfig{
			Title:    template.Branding.CompanyName,
			Author:   "ReadyKit",
			Appendix: true,
		}),
	}
}

// Run produces the PDF for an already-scored result. result feeds the
// score appendix; the section pixels come from the capturer.
func (e *Exporter) Run(ctx context.Context, result *scoring.Result) (*Result, error) {
	var sections []paginate.Section
	for _, s := range report.Sections(e.template) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raster, err := e.capturer.Capture(ctx, capture.Target{
			ID:       s.ID,
			Title:    s.Title,
			Selector: s.Selector,
		})
		section := paginate.Section{Title: s.Title, MaySplit: s.MaySplit}
		if err == nil {
			section.Raster = raster.Image
		} else if !errors.Is(err, capture.ErrSectionUnavailable) {
			return nil, err
		}
		// An unavailable section is carried with a nil raster so the
		// assembler records it as skipped.
		sections = append(sections, section)
	}

	doc, err := paginate.Assemble(sections, paginate.A4(e.template.Export.DPI))
	if err != nil {
		return nil, err
	}
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("%w: %d sections skipped", ErrNothingCaptured, len(doc.Skipped))
	}

	var buf bytes.Buffer
	if err := e.pdf.Write(&buf, doc, result); err != nil {
		return nil, err
	}
	if err := writers.Validate(bytes.NewReader(buf.Bytes())); err != nil {
		return nil, err
	}

	return &Result{
		PDF:     buf.Bytes(),
		Pages:   len(doc.Pages),
		Skipped: doc.Skipped,
	}, nil
}

// Seed builds the localStorage payload the dashboard expects when the
// export drives a live browser session.
func Seed(result *scoring.Result) ([]byte, error) {
	submissions, err := answers.MarshalSubmissions(result.Answers)
	if err != nil {
		return nil, fmt.Errorf("export: encode seed: %w", err)
	}
	payload := fmt.Sprintf(`{"responses":%s,"completedAt":%q}`,
		submissions, result.CompletedAt.Format("2006-01-02T15:04:05.000Z"))
	return []byte(payload), nil
}
