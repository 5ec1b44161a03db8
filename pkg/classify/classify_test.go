package classify

import "testing"

func TestReadinessLevel_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "Advanced"},
		{80, "Advanced"},
		{79.999, "Intermediate"},
		{60, "Intermediate"},
		{59.999, "Developing"},
		{40, "Developing"},
		{39.9, "Early Stage"},
		{0, "Early Stage"},
	}

	for _, tt := range tests {
		if got := ReadinessLevel(tt.pct).Status; got != tt.want {
			t.Errorf("ReadinessLevel(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestComplianceStatus_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "Compliant"},
		{90, "Compliant"},
		{89.999, "Mostly Compliant"},
		{70, "Mostly Compliant"},
		{69.999, "Partial Compliance"},
		{50, "Partial Compliance"},
		{49.999, "Non-Compliant"},
		{0, "Non-Compliant"},
	}

	for _, tt := range tests {
		if got := ComplianceStatus(tt.pct).Status; got != tt.want {
			t.Errorf("ComplianceStatus(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestLevels_AlwaysDescribed(t *testing.T) {
	for pct := 0.0; pct <= 100; pct += 0.5 {
		if ReadinessLevel(pct).Description == "" {
			t.Fatalf("ReadinessLevel(%v) has no description", pct)
		}
		if ComplianceStatus(pct).Description == "" {
			t.Fatalf("ComplianceStatus(%v) has no description", pct)
		}
	}
}
