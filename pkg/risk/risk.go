// Package risk isolates the compliance pillar's affirmative answers into
// severity buckets. A "Yes" on a compliance question means the practice is
// in use, which is the exposure.
package risk

import (
	"github.com/readykit/readykit/pkg/answers"
	"github.com/readykit/readykit/pkg/catalog"
)

// Tier is one of the three fixed severity tiers.
type Tier string

const (
	TierCritical  Tier = "Critical Risk"
	TierImportant Tier = "Important Risk"
	TierMinimal   Tier = "Minimal Risk"
	// TierNone is the sentinel when no bucket has entries.
	TierNone Tier = "No Risks"
)

// Factor is one flagged compliance answer.
type Factor struct {
	Indicator string `json:"indicator"`
	Question  string `json:"question"`
}

// Profile groups flagged compliance answers by severity tier.
type Profile struct {
	Critical  []Factor `json:"critical"`
	Important []Factor `json:"important"`
	Minimal   []Factor `json:"minimal"`
	Highest   Tier     `json:"highestRisk"`
}

// indicatorTiers is the closed mapping from compliance indicator labels to
// severity tiers. Bucketing depends on these exact label strings; they are
// part of the catalog contract, not inferred.
var indicatorTiers = map[string]Tier{
	"Prohibited Practices (Fatal Risk)":                     TierCritical,
	"High-Risk Practices (Mandatory Compliance)":            TierImportant,
	"Minimal/Low-Risk Practices (Transparency Obligations)": TierMinimal,
}

// Extract builds the risk profile from the answer set. Only compliance
// questions answered true appear; order within a bucket follows catalog
// order. Highest follows the fixed precedence critical > important >
// minimal, with TierNone when every bucket is empty.
func Extract(c *catalog.Catalog, set answers.Set) Profile {
	p := Profile{Highest: TierNone}

	for _, q := range c.PillarQuestions(catalog.CompliancePillar) {
		v, ok := set[q.ID]
		if !ok || !v.IsBool || !v.Boolean {
			continue
		}
		f := Factor{Indicator: q.Indicator, Question: q.Text}
		switch indicatorTiers[q.Indicator] {
		case TierCritical:
			p.Critical = append(p.Critical, f)
		case TierImportant:
			p.Important = append(p.Important, f)
		case TierMinimal:
			p.Minimal = append(p.Minimal, f)
		}
	}

	switch {
	case len(p.Critical) > 0:
		p.Highest = TierCritical
	case len(p.Important) > 0:
		p.Highest = TierImportant
	case len(p.Minimal) > 0:
		p.Highest = TierMinimal
	}
	return p
}

// Empty reports whether no risk factor was flagged.
func (p Profile) Empty() bool {
	return len(p.Critical) == 0 && len(p.Important) == 0 && len(p.Minimal) == 0
}
