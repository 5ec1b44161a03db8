package capture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/readykit/readykit/pkg/defaults"
	"github.com/readykit/readykit/pkg/duration"
)

// StorageKey is where the dashboard reads its seeded results from.
const StorageKey = "assessment_results"

// readyExpr is the signal the dashboard raises once every section has
// finished rendering. Captures before this point see half-drawn charts.
const readyExpr = `window.__pdf_ready__ === true`

// Config configures the headless capture session.
type Config struct {
	DashboardURL   string        // page that renders the report sections
	ViewportWidth  int           // CSS pixels
	ViewportHeight int
	PageTimeout    time.Duration // navigation budget
	ReadyTimeout   time.Duration // wait for the render-complete signal
	SectionTimeout time.Duration // per-section screenshot budget
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		ViewportWidth:  defaults.ViewportWidth,
		ViewportHeight: defaults.ViewportHeight,
		PageTimeout:    duration.BrowserPage,
		ReadyTimeout:   duration.BrowserReady,
		SectionTimeout: duration.CaptureSection,
	}
}

// ChromeCapturer drives a headless Chrome session over the dashboard and
// screenshots section elements by CSS selector. Start once per export,
// Capture per section in order, Close when done.
type ChromeCapturer struct {
	config Config

	mu         sync.Mutex
	browserCtx context.Context
	cancels    []context.CancelFunc
	started    bool
}

// NewChromeCapturer creates a capturer; zero config fields fall back to
// defaults.
func NewChromeCapturer(config Config) *ChromeCapturer {
	def := DefaultConfig()
	if config.ViewportWidth <= 0 {
		config.ViewportWidth = def.ViewportWidth
	}
	if config.ViewportHeight <= 0 {
		config.ViewportHeight = def.ViewportHeight
	}
	if config.PageTimeout <= 0 {
		config.PageTimeout = def.PageTimeout
	}
	if config.ReadyTimeout <= 0 {
		config.ReadyTimeout = def.ReadyTimeout
	}
	if config.SectionTimeout <= 0 {
		config.SectionTimeout = def.SectionTimeout
	}
	return &ChromeCapturer{config: config}
}

// Start launches the browser, seeds the dashboard's stored results so it
// renders the assessment being exported, navigates, and blocks until the
// page signals render completion. seed is the JSON the dashboard expects
// under StorageKey.
func (c *ChromeCapturer) Start(ctx context.Context, seed []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return fmt.Errorf("capture: session already started")
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(defaults.UserAgent("pdf-export")),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	c.cancels = []context.CancelFunc{browserCancel, allocCancel}

	// The seed must land in localStorage before the app boots, so it is
	// installed as an on-new-document script rather than evaluated after
	// navigation.
	literal, err := json.Marshal(string(seed))
	if err != nil {
		c.teardown()
		return fmt.Errorf("capture: encode seed: %w", err)
	}
	seedScript := fmt.Sprintf(`try { localStorage.setItem(%q, %s); } catch (e) {}`, StorageKey, literal)

	navCtx, navCancel := context.WithTimeout(browserCtx, c.config.PageTimeout)
	defer navCancel()

	err = chromedp.Run(navCtx,
		chromedp.EmulateViewport(int64(c.config.ViewportWidth), int64(c.config.ViewportHeight)),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(seedScript).Do(ctx)
			return err
		}),
		chromedp.Navigate(c.config.DashboardURL),
	)
	if err != nil {
		c.teardown()
		return fmt.Errorf("capture: navigate %s: %w", c.config.DashboardURL, err)
	}

	if err := c.waitReady(browserCtx); err != nil {
		c.teardown()
		return err
	}

	c.browserCtx = browserCtx
	c.started = true
	return nil
}

// waitReady polls the render-complete signal until it is true or the
// ready budget runs out.
func (c *ChromeCapturer) waitReady(browserCtx context.Context) error {
	deadline := time.Now().Add(c.config.ReadyTimeout)
	for {
		var ready bool
		if err := chromedp.Run(browserCtx, chromedp.Evaluate(readyExpr, &ready)); err != nil {
			return fmt.Errorf("%w: %v", ErrPageNotReady, err)
		}
		if ready {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: after %s", ErrPageNotReady, c.config.ReadyTimeout)
		}
		select {
		case <-browserCtx.Done():
			return fmt.Errorf("%w: %v", ErrPageNotReady, browserCtx.Err())
		case <-time.After(duration.BrowserPoll):
		}
	}
}

// Capture screenshots the target's element. A per-section timeout bounds
// the call so one stuck selector cannot stall the whole export.
func (c *ChromeCapturer) Capture(ctx context.Context, target Target) (*Raster, error) {
	c.mu.Lock()
	browserCtx := c.browserCtx
	started := c.started
	c.mu.Unlock()
	if !started {
		return nil, ErrNotStarted
	}

	shotCtx, cancel := context.WithTimeout(browserCtx, c.config.SectionTimeout)
	defer cancel()

	done := make(chan struct{})
	var buf []byte
	var runErr error
	go func() {
		defer close(done)
		runErr = chromedp.Run(shotCtx,
			chromedp.Screenshot(target.Selector, &buf, chromedp.ByQuery),
		)
	}()
	select {
	case <-ctx.Done():
		cancel()
		<-done
		return nil, ctx.Err()
	case <-done:
	}
	if runErr != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", ErrSectionUnavailable, target.ID, target.Selector, runErr)
	}

	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: decode: %v", ErrSectionUnavailable, target.ID, err)
	}
	b := img.Bounds()
	return &Raster{Image: img, Width: b.Dx(), Height: b.Dy()}, nil
}

// Close tears the browser session down. Safe to call more than once.
func (c *ChromeCapturer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardown()
	c.browserCtx = nil
	c.started = false
}

func (c *ChromeCapturer) teardown() {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
}
