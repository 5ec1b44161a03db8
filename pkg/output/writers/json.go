package writers

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/readykit/readykit/pkg/classify"
	"github.com/readykit/readykit/pkg/scoring"
)

// jsonExport is the downloadable results shape: human-readable strings
// rather than raw numbers, matching what users see on the dashboard.
type jsonExport struct {
	CompletedAt    time.Time         `json:"completedAt"`
	OverallScore   string            `json:"overallScore"`
	ReadinessLevel string            `json:"readinessLevel"`
	PillarScores   []jsonPillarScore `json:"pillarScores"`
}

type jsonPillarScore struct {
	Pillar     string `json:"pillar"`
	Score      string `json:"score"`
	Percentage string `json:"percentage"`
}

// JSONWriter serializes a scored result as the export JSON document.
type JSONWriter struct {
	Indent bool
}

// NewJSONWriter creates a JSON writer with pretty-printing enabled.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{Indent: true}
}

// Write serializes result to w.
func (jw *JSONWriter) Write(w io.Writer, result *scoring.Result) error {
	export := jsonExport{
		CompletedAt:    result.CompletedAt,
		OverallScore:   fmt.Sprintf("%.1f%%", result.OverallPercentage),
		ReadinessLevel: classify.ReadinessLevel(result.OverallPercentage).Status,
		PillarScores:   make([]jsonPillarScore, 0, len(result.PillarScores)),
	}
	for _, ps := range result.PillarScores {
		export.PillarScores = append(export.PillarScores, jsonPillarScore{
			Pillar:     ps.Pillar,
			Score:      fmt.Sprintf("%d/%d", ps.Earned, ps.Max),
			Percentage: fmt.Sprintf("%.1f%%", ps.Percentage),
		})
	}

	enc := json.NewEncoder(w)
	if jw.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("writers: encode json export: %w", err)
	}
	return nil
}
