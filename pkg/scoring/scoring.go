// Package scoring computes per-pillar and overall readiness scores from an
// answer set. Score is a pure function: it never mutates its inputs and
// never performs I/O, so results are recomputed on every read.
package scoring

import (
	"time"

	"github.com/readykit/readykit/pkg/answers"
	"github.com/readykit/readykit/pkg/catalog"
)

// PillarScore is the derived score of a single pillar.
type PillarScore struct {
	Pillar        string  `json:"pillar"`
	Earned        int     `json:"score"`
	Max           int     `json:"maxScore"`
	Percentage    float64 `json:"percentage"`
	QuestionCount int     `json:"questionCount"`
}

// Result is the aggregate outcome of scoring an answer set.
type Result struct {
	Answers           answers.Set   `json:"-"`
	PillarScores      []PillarScore `json:"pillarScores"`
	OverallScore      int           `json:"overallScore"`
	OverallPercentage float64       `json:"overallPercentage"`
	CompletedAt       time.Time     `json:"completedAt"`
}

// Pillar returns the score of the named pillar, if present.
func (r *Result) Pillar(name string) (PillarScore, bool) {
	for _, ps := range r.PillarScores {
		if ps.Pillar == name {
			return ps, true
		}
	}
	return PillarScore{}, false
}

// Score aggregates an answer set against the catalog.
//
// Questions without an answer contribute to neither earned nor max points:
// a partial assessment yields meaningful partial percentages instead of
// being dragged toward zero by unanswered items. Unknown question ids in
// the answer set are ignored here; rejecting them is the input boundary's
// job (answers.Set.Validate). The compliance pillar is scored and reported
// but excluded from the overall aggregate.
func Score(c *catalog.Catalog, set answers.Set) *Result {
	result := &Result{
		Answers:     set,
		CompletedAt: time.Now().UTC(),
	}

	var totalEarned, totalMax int
	for _, pillar := range c.Pillars() {
		questions := c.PillarQuestions(pillar)

		var earned, maxPts int
		for _, q := range questions {
			v, ok := set[q.ID]
			if !ok {
				continue // excluded, not scored as zero
			}
			switch q.Scoring {
			case catalog.ScoringLikert:
				earned += v.Likert
				maxPts += 5
			case catalog.ScoringBoolean:
				if v.Boolean {
					earned++
				}
				maxPts++
			}
		}

		pct := 0.0
		if maxPts > 0 {
			pct = float64(earned) / float64(maxPts) * 100
		}
		result.PillarScores = append(result.PillarScores, PillarScore{
			Pillar:        pillar,
			Earned:        earned,
			Max:           maxPts,
			Percentage:    pct,
			QuestionCount: len(questions),
		})

		if pillar != catalog.CompliancePillar {
			totalEarned += earned
			totalMax += maxPts
		}
	}

	result.OverallScore = totalEarned
	if totalMax > 0 {
		result.OverallPercentage = float64(totalEarned) / float64(totalMax) * 100
	}
	return result
}
