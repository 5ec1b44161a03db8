// Package defaults provides canonical default values for the entire codebase.
// This is the SINGLE SOURCE OF TRUTH for all runtime configuration defaults.
//
// Usage:
//
//	config.DPI = defaults.ExportDPI
//	w.Header().Set("Content-Type", defaults.ContentTypeJSON)
//
// DO NOT use hardcoded values like `DPI: 150` anywhere.
// Instead, reference the appropriate constant from this package.
package defaults

import "fmt"

// Version is the current ReadyKit version
const Version = "1.2.0"

// ============================================================================
// EXPORT / RENDERING
// ============================================================================
//
// Use these for the capture viewport and the assembled page geometry.
// ============================================================================

const (
	// ViewportWidth is the dashboard capture viewport width (1280)
	ViewportWidth = 1280

	// ViewportHeight is the dashboard capture viewport height (1800)
	ViewportHeight = 1800

	// ExportDPI is the page raster resolution for PDF export (150)
	ExportDPI = 150

	// PDFFilename is the attachment name for streamed exports
	PDFFilename = "ai-readiness-dashboard.pdf"
)

// ============================================================================
// HTTP CONTENT TYPES
// ============================================================================

const (
	// ContentTypeJSON is application/json
	ContentTypeJSON = "application/json"

	// ContentTypePDF is application/pdf
	ContentTypePDF = "application/pdf"

	// ContentTypeHTML is text/html
	ContentTypeHTML = "text/html"

	// ContentTypePlain is text/plain
	ContentTypePlain = "text/plain"
)

// ============================================================================
// REQUEST LIMITS
// ============================================================================

const (
	// MaxBodySize caps incoming JSON request bodies (2MB)
	MaxBodySize = 2 * 1024 * 1024

	// MaxCommentLength caps a feedback comment (2000 chars)
	MaxCommentLength = 2000

	// MaxFeedbackScore is the top of the 0-10 feedback scale
	MaxFeedbackScore = 10
)

// ============================================================================
// RATE LIMITING
// ============================================================================

const (
	// FeedbackPerWindow is the per-client feedback submissions per window (3)
	FeedbackPerWindow = 3

	// FeedbackBurst is the per-client burst allowance (3)
	FeedbackBurst = 3
)

// ============================================================================
// RETENTION
// ============================================================================

const (
	// RetentionDays is how long feedback records are kept (90 days);
	// zero disables pruning
	RetentionDays = 90
)

// ============================================================================
// USER AGENTS
// ============================================================================

const (
	// UAMinimal is a minimal user agent
	UAMinimal = "ReadyKit/" + Version
)

// UserAgent returns the ReadyKit user agent with context
func UserAgent(context string) string {
	if context == "" {
		return UAMinimal
	}
	return fmt.Sprintf("ReadyKit/%s (%s)", Version, context)
}

// ============================================================================
// PORTS
// ============================================================================

const (
	// PortHTTP is the default listen port for the server (3000)
	PortHTTP = 3000
)
