// Package duration provides canonical time constants for the entire codebase.
// This is the SINGLE SOURCE OF TRUTH for all time-based configuration.
//
// Usage:
//
//	ctx, cancel := context.WithTimeout(ctx, duration.ExportTotal)
//	ReadTimeout: duration.HTTPRead,
//
// DO NOT use hardcoded time.Duration values like `30 * time.Second` anywhere.
// Instead, reference the appropriate constant from this package.
package duration

import "time"

// ============================================================================
// HTTP SERVER TIMEOUTS
// ============================================================================

const (
	// HTTPRead bounds reading a request, header and body (15s)
	HTTPRead = 15 * time.Second

	// HTTPWrite bounds writing a response; export streams need headroom (2min)
	HTTPWrite = 2 * time.Minute

	// HTTPIdle is the keep-alive idle timeout (90s)
	HTTPIdle = 90 * time.Second

	// Shutdown is the graceful shutdown grace period (10s)
	Shutdown = 10 * time.Second
)

// ============================================================================
// BROWSER/HEADLESS TIMEOUTS
// ============================================================================
//
// Use these for chromedp and headless browser operations.
// ============================================================================

const (
	// BrowserPage is for page load timeout (30s)
	BrowserPage = 30 * time.Second

	// BrowserReady bounds the wait for the dashboard's render-complete
	// signal after navigation (20s)
	BrowserReady = 20 * time.Second

	// BrowserIdle is for idle detection between actions (2s)
	BrowserIdle = 2 * time.Second

	// BrowserPoll is the interval for polling the readiness signal (250ms)
	BrowserPoll = 250 * time.Millisecond
)

// ============================================================================
// EXPORT PIPELINE
// ============================================================================

const (
	// CaptureSection bounds a single section screenshot (10s)
	CaptureSection = 10 * time.Second

	// ExportTotal bounds a whole capture-assemble-write run (3min)
	ExportTotal = 3 * time.Minute
)

// ============================================================================
// FEEDBACK / RATE LIMITING
// ============================================================================

const (
	// FeedbackWindow is the per-client submission window (1min)
	FeedbackWindow = 1 * time.Minute

	// RetentionSweep is the interval between feedback retention sweeps (1h)
	RetentionSweep = 1 * time.Hour
)
