package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/readykit/readykit/pkg/capture"
	"github.com/readykit/readykit/pkg/catalog"
	"github.com/readykit/readykit/pkg/report"
)

// staticFactory injects a pre-rendered capturer so export tests never
// need a browser.
func staticFactory(missing ...string) CapturerFactory {
	skip := make(map[string]bool)
	for _, id := range missing {
		skip[id] = true
	}
	return func(ctx context.Context, seed []byte) (capture.Capturer, func(), error) {
		rasters := make(map[string]image.Image)
		for _, s := range report.Sections(nil) {
			if skip[s.ID] {
				continue
			}
			img := image.NewRGBA(image.Rect(0, 0, 1200, 600))
			for y := 0; y < 600; y++ {
				for x := 0; x < 1200; x++ {
					img.Set(x, y, color.White)
				}
			}
			rasters[s.ID] = img
		}
		return capture.NewStaticCapturer(rasters), func() {}, nil
	}
}

func testServer(t *testing.T, factory CapturerFactory) *Server {
	t.Helper()
	if factory == nil {
		factory = staticFactory()
	}
	return New(Config{
		FeedbackPath: filepath.Join(t.TempDir(), "feedback.jsonl"),
		NewCapturer:  factory,
	})
}

// fullSubmissions builds a complete, valid submission body.
func fullSubmissions(t *testing.T) []byte {
	t.Helper()
	c := catalog.Default()
	var items []string
	for _, q := range c.Questions() {
		switch q.Scoring {
		case catalog.ScoringLikert:
			items = append(items, fmt.Sprintf(`{"questionId":%d,"answer":4}`, q.ID))
		case catalog.ScoringBoolean:
			items = append(items, fmt.Sprintf(`{"questionId":%d,"answer":false}`, q.ID))
		}
	}
	return []byte(fmt.Sprintf(`{"responses":[%s]}`, strings.Join(items, ",")))
}

func TestHandleScore(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/score", bytes.NewReader(fullSubmissions(t)))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Result struct {
			OverallPercentage float64 `json:"overallPercentage"`
		} `json:"result"`
		ReadinessLevel struct {
			Status string `json:"status"`
		} `json:"readinessLevel"`
		ComplianceStatus *struct {
			Status string `json:"status"`
		} `json:"complianceStatus"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ReadinessLevel.Status == "" {
		t.Error("missing readiness level")
	}
	if resp.ComplianceStatus == nil {
		t.Error("missing compliance status for bundled catalog")
	}
	if resp.Result.OverallPercentage <= 0 || resp.Result.OverallPercentage > 100 {
		t.Errorf("overall percentage = %v out of range", resp.Result.OverallPercentage)
	}
}

func TestHandleScore_MalformedBody(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/score", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleScore_MissingResponses(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/score", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleScore_UnknownQuestion(t *testing.T) {
	s := testServer(t, nil)

	body := `{"responses":[{"questionId":9999,"answer":3}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/score", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestHandleExportPDF(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/export/pdf", bytes.NewReader(fullSubmissions(t)))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
	if h := w.Header().Get("X-Skipped-Sections"); h != "" {
		t.Errorf("skipped header = %q, want empty for full capture", h)
	}
}

func TestHandleExportPDF_DegradedCapture(t *testing.T) {
	s := testServer(t, staticFactory(report.SectionRisks))

	req := httptest.NewRequest(http.MethodPost, "/api/export/pdf", bytes.NewReader(fullSubmissions(t)))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want degraded export to succeed", w.Code)
	}
	if h := w.Header().Get("X-Skipped-Sections"); !strings.Contains(h, "Risk Disclosure") {
		t.Errorf("skipped header = %q, want Risk Disclosure listed", h)
	}
}

func TestHandleExportPDF_ConcurrentRejected(t *testing.T) {
	s := testServer(t, nil)
	s.exporting.Store(true)

	req := httptest.NewRequest(http.MethodPost, "/api/export/pdf", bytes.NewReader(fullSubmissions(t)))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409 while another export runs", w.Code)
	}
}

func TestHandleFeedback(t *testing.T) {
	s := testServer(t, nil)

	body := `{"score":9,"comments":"very useful","pageUrl":"/dashboard","sessionId":"abc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["id"] == "" {
		t.Error("response missing record id")
	}

	records, err := s.store.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(records) != 1 || records[0].Score != 9 {
		t.Errorf("stored records = %+v, want one with score 9", records)
	}
}

func TestHandleFeedback_InvalidScore(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(`{"score":42}`))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleFeedback_RateLimited(t *testing.T) {
	s := testServer(t, nil)

	// httptest requests share a RemoteAddr, so they count as one client.
	var last int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(`{"score":5}`))
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("fifth submission status = %d, want 429", last)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(t, nil)

	// Generate some traffic first.
	scoreReq := httptest.NewRequest(http.MethodPost, "/api/score", bytes.NewReader(fullSubmissions(t)))
	s.Handler().ServeHTTP(httptest.NewRecorder(), scoreReq)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "readykit_score_requests_total") {
		t.Error("metrics output missing score counter")
	}
}
