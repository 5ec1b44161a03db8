// Package report defines the logical report sections, the next-steps
// recommendation logic, and HTML rendering of assessment results.
package report

import (
	"sort"

	"github.com/readykit/readykit/pkg/catalog"
	"github.com/readykit/readykit/pkg/scoring"
)

// Section is one logical report unit. The selector locates the section's
// root element in the rendered dashboard for capture; MaySplit marks
// sections tall enough that cutting them across pages beats shrinking.
type Section struct {
	ID       string
	Title    string
	Selector string
	MaySplit bool
}

// Section IDs, stable across config and capture.
const (
	SectionOverview   = "overview"
	SectionReadiness  = "readiness"
	SectionPillars    = "pillars"
	SectionCompliance = "compliance"
	SectionRisks      = "risks"
	SectionNextSteps  = "next-steps"
)

// sectionOrder is the fixed full ordering. Visibility config can drop
// sections but never reorders them.
var sectionOrder = []Section{
	{ID: SectionOverview, Title: "Overall AI Readiness", Selector: `[data-section="overview"]`},
	{ID: SectionReadiness, Title: "Multi-Dimensional Readiness View", Selector: `[data-section="readiness"]`},
	{ID: SectionPillars, Title: "Pillar-by-Pillar Breakdown", Selector: `[data-section="pillars"]`, MaySplit: true},
	{ID: SectionCompliance, Title: "EU AI Act Compliance", Selector: `[data-section="compliance"]`},
	{ID: SectionRisks, Title: "Risk Disclosure", Selector: `[data-section="risks"]`, MaySplit: true},
	{ID: SectionNextSteps, Title: "Next Steps", Selector: `[data-section="next-steps"]`},
}

// Sections returns the ordered sections enabled by cfg. A nil cfg means
// everything.
func Sections(cfg *TemplateConfig) []Section {
	out := make([]Section, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		if cfg == nil || cfg.Sections.enabled(s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// recommendThreshold is the percentage under which a pillar earns a
// next-steps recommendation.
const recommendThreshold = 60.0

// maxRecommendations caps the next-steps list.
const maxRecommendations = 3

// Recommendation points at a pillar worth prioritizing.
type Recommendation struct {
	Pillar     string  `json:"pillar"`
	Percentage float64 `json:"percentage"`
}

// NextSteps returns up to three pillars scoring under 60%, weakest
// first. The compliance pillar participates; a weak compliance posture
// is exactly the kind of thing to prioritize.
func NextSteps(result *scoring.Result) []Recommendation {
	var recs []Recommendation
	for _, ps := range result.PillarScores {
		if ps.Percentage < recommendThreshold {
			recs = append(recs, Recommendation{Pillar: ps.Pillar, Percentage: ps.Percentage})
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Percentage < recs[j].Percentage
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// CompliancePercentage returns the compliance pillar's percentage, or
// zero with ok=false when the result has no compliance pillar.
func CompliancePercentage(result *scoring.Result) (float64, bool) {
	ps, ok := result.Pillar(catalog.CompliancePillar)
	if !ok {
		return 0, false
	}
	return ps.Percentage, true
}
