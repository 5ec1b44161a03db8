package risk

import (
	"testing"

	"github.com/readykit/readykit/pkg/answers"
	"github.com/readykit/readykit/pkg/catalog"
)

func complianceCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load([]byte(`{
		"pillars": ["A", "EU AI Act Compliance"],
		"questions": [
			{"id": 1, "pillar": "A", "indicator": "other", "scoring": "Yes/No", "question": "not compliance"},
			{"id": 10, "pillar": "EU AI Act Compliance", "indicator": "Prohibited Practices (Fatal Risk)", "scoring": "Yes/No", "question": "crit-1"},
			{"id": 11, "pillar": "EU AI Act Compliance", "indicator": "Prohibited Practices (Fatal Risk)", "scoring": "Yes/No", "question": "crit-2"},
			{"id": 12, "pillar": "EU AI Act Compliance", "indicator": "High-Risk Practices (Mandatory Compliance)", "scoring": "Yes/No", "question": "imp-1"},
			{"id": 13, "pillar": "EU AI Act Compliance", "indicator": "Minimal/Low-Risk Practices (Transparency Obligations)", "scoring": "Yes/No", "question": "min-1"}
		]}`))
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return c
}

func TestExtract_AllFalse(t *testing.T) {
	c := complianceCatalog(t)
	set := answers.Set{
		10: answers.BooleanValue(false),
		11: answers.BooleanValue(false),
		12: answers.BooleanValue(false),
		13: answers.BooleanValue(false),
	}

	p := Extract(c, set)

	if !p.Empty() {
		t.Errorf("all-false set produced factors: %+v", p)
	}
	if p.Highest != TierNone {
		t.Errorf("highest = %q, want %q", p.Highest, TierNone)
	}
}

func TestExtract_CriticalDominates(t *testing.T) {
	c := complianceCatalog(t)
	set := answers.Set{
		10: answers.BooleanValue(true), // critical
		13: answers.BooleanValue(true), // minimal
	}

	p := Extract(c, set)

	if p.Highest != TierCritical {
		t.Errorf("highest = %q, want %q regardless of minimal flags", p.Highest, TierCritical)
	}
	if len(p.Critical) != 1 || len(p.Minimal) != 1 || len(p.Important) != 0 {
		t.Errorf("bucket sizes = %d/%d/%d, want 1/0/1", len(p.Critical), len(p.Important), len(p.Minimal))
	}
}

func TestExtract_Precedence(t *testing.T) {
	c := complianceCatalog(t)

	tests := []struct {
		name string
		set  answers.Set
		want Tier
	}{
		{"important over minimal", answers.Set{12: answers.BooleanValue(true), 13: answers.BooleanValue(true)}, TierImportant},
		{"minimal alone", answers.Set{13: answers.BooleanValue(true)}, TierMinimal},
		{"unanswered is no risk", answers.Set{}, TierNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := Extract(c, tt.set); p.Highest != tt.want {
				t.Errorf("highest = %q, want %q", p.Highest, tt.want)
			}
		})
	}
}

func TestExtract_NonComplianceIgnored(t *testing.T) {
	c := complianceCatalog(t)
	p := Extract(c, answers.Set{1: answers.BooleanValue(true)})

	if !p.Empty() {
		t.Errorf("non-compliance answer produced factors: %+v", p)
	}
}

func TestExtract_CatalogOrderWithinBucket(t *testing.T) {
	c := complianceCatalog(t)
	p := Extract(c, answers.Set{
		11: answers.BooleanValue(true),
		10: answers.BooleanValue(true),
	})

	if len(p.Critical) != 2 {
		t.Fatalf("critical bucket = %d entries, want 2", len(p.Critical))
	}
	if p.Critical[0].Question != "crit-1" || p.Critical[1].Question != "crit-2" {
		t.Errorf("bucket not in catalog order: %+v", p.Critical)
	}
}

func TestExtract_BundledCatalogIndicatorsCovered(t *testing.T) {
	// Every compliance indicator in the bundled catalog must map to a tier;
	// an unmapped label would silently drop flagged answers.
	c := catalog.Default()
	for _, q := range c.PillarQuestions(catalog.CompliancePillar) {
		if _, ok := indicatorTiers[q.Indicator]; !ok {
			t.Errorf("compliance indicator %q has no tier mapping", q.Indicator)
		}
	}
}
