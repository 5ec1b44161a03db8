// Package catalog provides the static question catalog for the readiness
// assessment. The catalog is bundled via go:embed so it is available
// regardless of installation method, loaded once at startup, and treated
// as read-only configuration afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed questions.json
var rawCatalog []byte

// CompliancePillar is the one pillar excluded from the overall aggregate.
// Its questions carry inverted semantics: a "Yes" answer indicates
// regulatory exposure, not maturity.
const CompliancePillar = "EU AI Act Compliance"

// ScoringType describes how a question's answer is scored.
type ScoringType string

const (
	// ScoringLikert is a 1-5 maturity scale contributing up to 5 points.
	ScoringLikert ScoringType = "1 to 5"
	// ScoringBoolean is a Yes/No question contributing 0 or 1 point.
	ScoringBoolean ScoringType = "Yes/No"
)

// Question is one immutable catalog entry.
type Question struct {
	ID        int         `json:"id"`
	Pillar    string      `json:"pillar"`
	Indicator string      `json:"indicator"`
	Scoring   ScoringType `json:"scoring"`
	Text      string      `json:"question"`
}

// MaxPoints returns the maximum point contribution of the question.
func (q Question) MaxPoints() int {
	if q.Scoring == ScoringLikert {
		return 5
	}
	return 1
}

// Catalog holds the full ordered question set and the fixed pillar
// display order.
type Catalog struct {
	pillars   []string
	questions []Question
	byPillar  map[string][]Question
	byID      map[int]Question
}

type catalogFile struct {
	Pillars   []string   `json:"pillars"`
	Questions []Question `json:"questions"`
}

// Load parses and validates a catalog from raw JSON.
// An empty or malformed catalog is a fatal configuration error: no score
// can be meaningfully computed without one.
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if len(f.Questions) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(f.Pillars) == 0 {
		return nil, fmt.Errorf("%w: no pillar order declared", ErrMalformedCatalog)
	}

	pillarOrder := make(map[string]int, len(f.Pillars))
	for i, p := range f.Pillars {
		if _, dup := pillarOrder[p]; dup {
			return nil, fmt.Errorf("%w: duplicate pillar %q", ErrMalformedCatalog, p)
		}
		pillarOrder[p] = i
	}

	c := &Catalog{
		pillars:   f.Pillars,
		questions: f.Questions,
		byPillar:  make(map[string][]Question, len(f.Pillars)),
		byID:      make(map[int]Question, len(f.Questions)),
	}
	for _, q := range f.Questions {
		if q.ID <= 0 {
			return nil, fmt.Errorf("%w: question id %d must be positive", ErrMalformedCatalog, q.ID)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %d", ErrMalformedCatalog, q.ID)
		}
		if _, ok := pillarOrder[q.Pillar]; !ok {
			return nil, fmt.Errorf("%w: question %d references undeclared pillar %q", ErrMalformedCatalog, q.ID, q.Pillar)
		}
		if q.Scoring != ScoringLikert && q.Scoring != ScoringBoolean {
			return nil, fmt.Errorf("%w: question %d has unknown scoring type %q", ErrMalformedCatalog, q.ID, q.Scoring)
		}
		c.byID[q.ID] = q
		c.byPillar[q.Pillar] = append(c.byPillar[q.Pillar], q)
	}

	// Total order by id within each pillar.
	for _, qs := range c.byPillar {
		sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
	}

	return c, nil
}

// Default returns the bundled catalog. It panics on a malformed bundle,
// which can only happen if the embedded data was corrupted at build time.
func Default() *Catalog {
	c, err := Load(rawCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog invalid: %v", err))
	}
	return c
}

// Pillars returns the fixed pillar display order.
func (c *Catalog) Pillars() []string {
	out := make([]string, len(c.pillars))
	copy(out, c.pillars)
	return out
}

// Questions returns every question in catalog order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// PillarQuestions returns the questions of one pillar ordered by id.
func (c *Catalog) PillarQuestions(pillar string) []Question {
	qs := c.byPillar[pillar]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Lookup returns the question with the given id.
func (c *Catalog) Lookup(id int) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Len returns the total number of questions.
func (c *Catalog) Len() int { return len(c.questions) }
