package capture

import "errors"

// Sentinel errors for capture operations.
// Callers should use errors.Is() to check for specific conditions.
var (
	// ErrNotStarted indicates Capture was called before Start.
	ErrNotStarted = errors.New("capture: browser session not started")

	// ErrSectionUnavailable indicates a section's element could not be
	// rasterized. The export keeps going without it.
	ErrSectionUnavailable = errors.New("capture: section raster unavailable")

	// ErrPageNotReady indicates the dashboard never raised its
	// render-complete signal within the deadline.
	ErrPageNotReady = errors.New("capture: page readiness signal timed out")
)
