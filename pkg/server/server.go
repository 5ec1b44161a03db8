// Package server exposes the assessment engine over HTTP: scoring,
// PDF export, feedback submission, and Prometheus metrics.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/readykit/readykit/pkg/capture"
	"github.com/readykit/readykit/pkg/catalog"
	"github.com/readykit/readykit/pkg/defaults"
	"github.com/readykit/readykit/pkg/duration"
	"github.com/readykit/readykit/pkg/feedback"
	"github.com/readykit/readykit/pkg/report"
)

// CapturerFactory opens a capture session seeded with the dashboard
// payload. The returned closer tears the session down after the export.
type CapturerFactory func(ctx context.Context, seed []byte) (capture.Capturer, func(), error)

// Config configures the HTTP server.
type Config struct {
	Addr         string
	DashboardURL string // page the exporter captures from
	FeedbackPath string // JSONL store location
	Retention    int    // feedback retention in days, negative keeps everything
	Template     *report.TemplateConfig

	// NewCapturer overrides the default headless-browser factory.
	// Tests inject a StaticCapturer here.
	NewCapturer CapturerFactory
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Addr:         fmt.Sprintf(":%d", defaults.PortHTTP),
		DashboardURL: fmt.Sprintf("http://localhost:%d/dashboard?renderMode=pdf", defaults.PortHTTP),
		FeedbackPath: "data/feedback.jsonl",
		Retention:    defaults.RetentionDays,
		Template:     report.DefaultTemplateConfig(),
	}
}

// Server wires the engine packages behind HTTP handlers.
type Server struct {
	config    Config
	catalog   *catalog.Catalog
	store     *feedback.Store
	limiter   *feedback.Limiter
	metrics   *Metrics
	mux       *http.ServeMux
	exporting atomic.Bool

	httpServer *http.Server
}

// New creates a server over the bundled catalog.
func New(config Config) *Server {
	def := DefaultConfig()
	if config.Addr == "" {
		config.Addr = def.Addr
	}
	if config.DashboardURL == "" {
		config.DashboardURL = def.DashboardURL
	}
	if config.FeedbackPath == "" {
		config.FeedbackPath = def.FeedbackPath
	}
	if config.Retention == 0 {
		config.Retention = def.Retention
	}
	if config.Template == nil {
		config.Template = report.DefaultTemplateConfig()
	}

	s := &Server{
		config:  config,
		catalog: catalog.Default(),
		store:   feedback.NewStore(config.FeedbackPath, config.Retention),
		limiter: feedback.NewLimiter(defaults.FeedbackPerWindow, duration.FeedbackWindow),
		metrics: NewMetrics(),
		mux:     http.NewServeMux(),
	}
	if s.config.NewCapturer == nil {
		s.config.NewCapturer = s.chromeCapturer
	}

	s.mux.HandleFunc("POST /api/score", s.handleScore)
	s.mux.HandleFunc("POST /api/export/pdf", s.handleExportPDF)
	s.mux.HandleFunc("POST /api/feedback", s.handleFeedback)
	s.mux.Handle("GET /metrics", s.metrics.Handler())

	s.httpServer = &http.Server{
		Addr:         config.Addr,
		Handler:      s.mux,
		ReadTimeout:  duration.HTTPRead,
		WriteTimeout: duration.HTTPWrite,
		IdleTimeout:  duration.HTTPIdle,
	}
	return s
}

// Handler returns the routing mux, mainly for tests.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe blocks serving HTTP until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests within the grace period.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, duration.Shutdown)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// chromeCapturer is the production capture factory.
func (s *Server) chromeCapturer(ctx context.Context, seed []byte) (capture.Capturer, func(), error) {
	cfg := capture.DefaultConfig()
	cfg.DashboardURL = s.config.DashboardURL
	c := capture.NewChromeCapturer(cfg)
	if err := c.Start(ctx, seed); err != nil {
		return nil, nil, err
	}
	return c, c.Close, nil
}
