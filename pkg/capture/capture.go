// Package capture rasterizes report sections from the rendered dashboard.
// The ChromeCapturer drives a headless browser; the StaticCapturer serves
// pre-supplied images for tests and offline rendering.
package capture

import (
	"context"
	"fmt"
	"image"
	"sync"
)

// Target identifies one report section to rasterize.
type Target struct {
	ID       string
	Title    string
	Selector string // CSS selector of the section's root element
}

// Raster is a decoded section screenshot.
type Raster struct {
	Image  image.Image
	Width  int
	Height int
}

// Capturer rasterizes report sections one at a time, in the order the
// caller asks for them. A failed section returns an error wrapping
// ErrSectionUnavailable; implementations never retry.
type Capturer interface {
	Capture(ctx context.Context, target Target) (*Raster, error)
}

// StaticCapturer serves rasters from a fixed map keyed by section ID.
type StaticCapturer struct {
	mu      sync.RWMutex
	rasters map[string]image.Image
}

// NewStaticCapturer builds a capturer over pre-rendered section images.
func NewStaticCapturer(rasters map[string]image.Image) *StaticCapturer {
	if rasters == nil {
		rasters = make(map[string]image.Image)
	}
	return &StaticCapturer{rasters: rasters}
}

// Add registers or replaces the raster for a section ID.
func (s *StaticCapturer) Add(id string, img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rasters[id] = img
}

// Capture returns the stored raster for the target's ID.
func (s *StaticCapturer) Capture(ctx context.Context, target Target) (*Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	img, ok := s.rasters[target.ID]
	s.mu.RUnlock()
	if !ok || img == nil {
		return nil, fmt.Errorf("%w: %s", ErrSectionUnavailable, target.ID)
	}
	b := img.Bounds()
	return &Raster{Image: img, Width: b.Dx(), Height: b.Dy()}, nil
}
