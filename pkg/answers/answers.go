// Package answers defines the answer set submitted against the question
// catalog and its boundary validation. Validation lives here, at the input
// boundary; the scoring engine itself never rejects an answer set.
package answers

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/readykit/readykit/pkg/catalog"
)

// Value is a single answer: a Likert integer 1-5 or a boolean.
// Exactly one of the two interpretations applies, decided by the
// catalog's declared scoring type for the question.
type Value struct {
	Likert  int
	Boolean bool
	IsBool  bool
}

// LikertValue wraps a 1-5 integer answer.
func LikertValue(v int) Value { return Value{Likert: v} }

// BooleanValue wraps a Yes/No answer.
func BooleanValue(v bool) Value { return Value{Boolean: v, IsBool: true} }

// Set maps question ids to answered values. A later answer for the same
// id replaces the former. A set is partial until every catalog question
// has an entry.
type Set map[int]Value

// Complete reports whether every catalog question has an answer.
func (s Set) Complete(c *catalog.Catalog) bool {
	for _, q := range c.Questions() {
		if _, ok := s[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Validate checks the set against the catalog's declared scoring types.
// Out-of-range Likert values, type mismatches, and unknown question ids
// are boundary validation errors; the engine downstream assumes a set
// that passed here.
func (s Set) Validate(c *catalog.Catalog) error {
	// Deterministic error reporting: check ids in ascending order.
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		v := s[id]
		q, ok := c.Lookup(id)
		if !ok {
			return fmt.Errorf("%w: question %d", ErrUnknownQuestion, id)
		}
		switch q.Scoring {
		case catalog.ScoringLikert:
			if v.IsBool {
				return fmt.Errorf("%w: question %d expects a 1-5 value, got boolean", ErrTypeMismatch, id)
			}
			if v.Likert < 1 || v.Likert > 5 {
				return fmt.Errorf("%w: question %d value %d", ErrOutOfRange, id, v.Likert)
			}
		case catalog.ScoringBoolean:
			if !v.IsBool {
				return fmt.Errorf("%w: question %d expects Yes/No, got %d", ErrTypeMismatch, id, v.Likert)
			}
		}
	}
	return nil
}

// submission is the wire shape of one answer: {"questionId": 3, "answer": 4}
// or {"questionId": 40, "answer": true}, matching the original client.
type submission struct {
	QuestionID int             `json:"questionId"`
	Answer     json.RawMessage `json:"answer"`
}

// ParseSubmissions decodes the client wire format into a Set. Values are
// shape-checked only (integer vs boolean); range and catalog checks are
// Validate's job so callers get sentinel errors they can branch on.
func ParseSubmissions(data []byte) (Set, error) {
	var subs []submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}

	set := make(Set, len(subs))
	for _, sub := range subs {
		var b bool
		if err := json.Unmarshal(sub.Answer, &b); err == nil {
			set[sub.QuestionID] = BooleanValue(b)
			continue
		}
		var n int
		if err := json.Unmarshal(sub.Answer, &n); err == nil {
			set[sub.QuestionID] = LikertValue(n)
			continue
		}
		return nil, fmt.Errorf("%w: question %d answer %s", ErrMalformedSubmission, sub.QuestionID, sub.Answer)
	}
	return set, nil
}

// MarshalSubmissions encodes a Set back into the client wire format,
// ordered by question id.
func MarshalSubmissions(s Set) ([]byte, error) {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	subs := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		v := s[id]
		var answer any
		if v.IsBool {
			answer = v.Boolean
		} else {
			answer = v.Likert
		}
		subs = append(subs, map[string]any{"questionId": id, "answer": answer})
	}
	return json.Marshal(subs)
}
