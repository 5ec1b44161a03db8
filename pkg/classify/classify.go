// Package classify maps percentage scores to discrete maturity and
// compliance labels. Both tables are total over [0,100] and implemented
// as ordered guard chains so boundary values resolve unambiguously:
// bands are inclusive on the lower bound, exclusive on the upper, with
// the top band closed at 100.
package classify

// Level is one classification outcome.
type Level struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// ReadinessLevel classifies a readiness percentage for every pillar
// except the compliance pillar, and for the overall score.
func ReadinessLevel(percentage float64) Level {
	switch {
	case percentage >= 80:
		return Level{
			Status:      "Advanced",
			Description: "Your organization demonstrates strong AI readiness with mature processes and capabilities.",
		}
	case percentage >= 60:
		return Level{
			Status:      "Intermediate",
			Description: "Your organization has a solid foundation but there are opportunities for improvement.",
		}
	case percentage >= 40:
		return Level{
			Status:      "Developing",
			Description: "Your organization is building AI capabilities but significant gaps remain.",
		}
	default:
		return Level{
			Status:      "Early Stage",
			Description: "Your organization is at the beginning of its AI journey with substantial work needed.",
		}
	}
}

// ComplianceStatus classifies the compliance pillar's percentage.
// The bands are stricter than ReadinessLevel: regulatory exposure leaves
// less room for partial credit.
func ComplianceStatus(percentage float64) Level {
	switch {
	case percentage >= 90:
		return Level{
			Status:      "Compliant",
			Description: "Strong compliance posture with minimal risk areas.",
		}
	case percentage >= 70:
		return Level{
			Status:      "Mostly Compliant",
			Description: "Good compliance foundation with some areas requiring attention.",
		}
	case percentage >= 50:
		return Level{
			Status:      "Partial Compliance",
			Description: "Significant compliance gaps that need to be addressed.",
		}
	default:
		return Level{
			Status:      "Non-Compliant",
			Description: "Critical compliance issues requiring immediate action.",
		}
	}
}
