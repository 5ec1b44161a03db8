// Package writers provides output writers for assessment exports.
package writers

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	gofpdf "github.com/go-pdf/fpdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/readykit/readykit/pkg/catalog"
	"github.com/readykit/readykit/pkg/classify"
	"github.com/readykit/readykit/pkg/paginate"
	"github.com/readykit/readykit/pkg/scoring"
)

// A4 dimensions in millimeters, matching the assembler's page geometry.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

// PDFConfig configures the PDF writer.
type PDFConfig struct {
	Title    string
	Author   string
	Appendix bool // append the score summary table
}

// DefaultPDFConfig returns sensible defaults
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{
		Title:    "AI Readiness Assessment",
		Author:   "ReadyKit",
		Appendix: true,
	}
}

// PDFWriter renders an assembled page document as a PDF: one full-bleed
// image per assembled page, plus an optional score appendix.
type PDFWriter struct {
	config PDFConfig
}

// NewPDFWriter creates a PDF writer.
func NewPDFWriter(config PDFConfig) *PDFWriter {
	if config.Title == "" {
		config.Title = DefaultPDFConfig().Title
	}
	return &PDFWriter{config: config}
}

// Write streams the PDF for doc. result may be nil, which skips the
// appendix regardless of config.
func (pw *PDFWriter) Write(w io.Writer, doc *paginate.Document, result *scoring.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(pw.config.Title, true)
	pdf.SetAuthor(pw.config.Author, true)
	pdf.SetAutoPageBreak(false, 0)

	for _, page := range doc.Pages {
		var buf bytes.Buffer
		if err := png.Encode(&buf, page.Image); err != nil {
			return fmt.Errorf("writers: encode page %d: %w", page.Number, err)
		}

		name := fmt.Sprintf("page-%d", page.Number)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, &buf)

		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, pageWidthMM, pageHeightMM, false, opts, 0, "")
	}

	if pw.config.Appendix && result != nil {
		pw.addScoreAppendix(pdf, result)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writers: output pdf: %w", err)
	}
	return nil
}

// addScoreAppendix renders the per-pillar score table on its own page.
func (pw *PDFWriter) addScoreAppendix(pdf *gofpdf.Fpdf, result *scoring.Result) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 10, "Score Summary", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	titleCase := cases.Title(language.English)

	// Header row.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(70, 8, "Pillar", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Points", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Percentage", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 8, "Status", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 41, 59)
	for _, ps := range result.PillarScores {
		status := classify.ReadinessLevel(ps.Percentage).Status
		if ps.Pillar == catalog.CompliancePillar {
			status = classify.ComplianceStatus(ps.Percentage).Status
		}

		pdf.CellFormat(70, 7, ps.Pillar, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d / %d", ps.Earned, ps.Max), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.1f%%", ps.Percentage), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 7, titleCase.String(status), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Overall: %.1f%% (%s)",
		result.OverallPercentage,
		classify.ReadinessLevel(result.OverallPercentage).Status), "", 1, "L", false, 0, "")
}

// Validate checks the structural integrity of a generated PDF with
// pdfcpu before it is streamed to a client.
func Validate(r io.ReadSeeker) error {
	if err := pdfapi.Validate(r, nil); err != nil {
		return fmt.Errorf("writers: pdf validation: %w", err)
	}
	_, err := r.Seek(0, io.SeekStart)
	return err
}
