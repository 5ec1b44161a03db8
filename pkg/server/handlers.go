package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/readykit/readykit/pkg/answers"
	"github.com/readykit/readykit/pkg/classify"
	"github.com/readykit/readykit/pkg/defaults"
	"github.com/readykit/readykit/pkg/export"
	"github.com/readykit/readykit/pkg/feedback"
	"github.com/readykit/readykit/pkg/report"
	"github.com/readykit/readykit/pkg/risk"
	"github.com/readykit/readykit/pkg/scoring"
)

// scoreRequest is the submission payload shared by score and export.
type scoreRequest struct {
	Responses   json.RawMessage `json:"responses"`
	CompletedAt string          `json:"completedAt"`
}

// scoreResponse is the full derived view of one assessment.
type scoreResponse struct {
	Result           *scoring.Result         `json:"result"`
	ReadinessLevel   classify.Level          `json:"readinessLevel"`
	ComplianceStatus *classify.Level         `json:"complianceStatus,omitempty"`
	RiskProfile      risk.Profile            `json:"riskProfile"`
	NextSteps        []report.Recommendation `json:"nextSteps"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	s.metrics.scoreRequestsTotal.Inc()

	set, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}

	result := scoring.Score(s.catalog, set)
	resp := scoreResponse{
		Result:         result,
		ReadinessLevel: classify.ReadinessLevel(result.OverallPercentage),
		RiskProfile:    risk.Extract(s.catalog, set),
		NextSteps:      report.NextSteps(result),
	}
	if pct, ok := report.CompliancePercentage(result); ok {
		level := classify.ComplianceStatus(pct)
		resp.ComplianceStatus = &level
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if !s.exporting.CompareAndSwap(false, true) {
		s.metrics.exportsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusConflict, ErrExportInProgress.Error())
		return
	}
	defer s.exporting.Store(false)

	set, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}
	result := scoring.Score(s.catalog, set)

	start := time.Now()
	seed, err := export.Seed(result)
	if err != nil {
		s.metrics.exportsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "failed to generate PDF")
		return
	}

	capturer, closeCapturer, err := s.config.NewCapturer(r.Context(), seed)
	if err != nil {
		s.metrics.exportsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "failed to start capture session")
		return
	}
	defer closeCapturer()

	res, err := export.New(capturer, s.config.Template).Run(r.Context(), result)
	if err != nil {
		s.metrics.exportsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "failed to generate PDF")
		return
	}
	s.metrics.exportsTotal.WithLabelValues("ok").Inc()
	s.metrics.exportDuration.Observe(time.Since(start).Seconds())
	s.metrics.skippedSections.Add(float64(len(res.Skipped)))

	w.Header().Set("Content-Type", defaults.ContentTypePDF)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", s.config.Template.Export.Filename))
	if len(res.Skipped) > 0 {
		w.Header().Set("X-Skipped-Sections", strings.Join(res.Skipped, ", "))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = bytes.NewReader(res.PDF).WriteTo(w)
}

// feedbackRequest is the submission body for /api/feedback.
type feedbackRequest struct {
	Score     int    `json:"score"`
	Comments  string `json:"comments"`
	PageURL   string `json:"pageUrl"`
	SessionID string `json:"sessionId"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientKey(r)) {
		s.metrics.feedbackTotal.WithLabelValues("rate_limited").Inc()
		writeError(w, http.StatusTooManyRequests, feedback.ErrRateLimited.Error())
		return
	}

	var req feedbackRequest
	if err := decodeBody(r, &req); err != nil {
		s.metrics.feedbackTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := feedback.NewRecord(req.Score, req.Comments, req.PageURL, req.SessionID)
	if err != nil {
		s.metrics.feedbackTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.Append(rec); err != nil {
		s.metrics.feedbackTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "failed to store feedback")
		return
	}

	s.metrics.feedbackTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusCreated, map[string]string{"id": rec.ID})
}

// decodeAnswers reads the submission payload and validates it against
// the catalog. On failure it writes the error response and returns
// ok=false.
func (s *Server) decodeAnswers(w http.ResponseWriter, r *http.Request) (answers.Set, bool) {
	var req scoreRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if len(req.Responses) == 0 {
		writeError(w, http.StatusBadRequest, "responses array is required")
		return nil, false
	}

	set, err := answers.ParseSubmissions(req.Responses)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if err := set.Validate(s.catalog); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return nil, false
	}
	return set, true
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, defaults.MaxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}

// clientKey derives the rate-limit key from the remote address.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", defaults.ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
