package answers

import (
	"errors"
	"testing"

	"github.com/readykit/readykit/pkg/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load([]byte(`{
		"pillars": ["Alpha", "EU AI Act Compliance"],
		"questions": [
			{"id": 1, "pillar": "Alpha", "indicator": "i", "scoring": "1 to 5", "question": "q1"},
			{"id": 2, "pillar": "Alpha", "indicator": "i", "scoring": "1 to 5", "question": "q2"},
			{"id": 3, "pillar": "EU AI Act Compliance", "indicator": "i", "scoring": "Yes/No", "question": "q3"}
		]}`))
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return c
}

func TestValidate(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name string
		set  Set
		want error
	}{
		{"valid full set", Set{1: LikertValue(5), 2: LikertValue(1), 3: BooleanValue(true)}, nil},
		{"valid partial set", Set{1: LikertValue(3)}, nil},
		{"empty set", Set{}, nil},
		{"likert too low", Set{1: LikertValue(0)}, ErrOutOfRange},
		{"likert too high", Set{1: LikertValue(6)}, ErrOutOfRange},
		{"unknown id", Set{42: LikertValue(3)}, ErrUnknownQuestion},
		{"bool for likert", Set{1: BooleanValue(true)}, ErrTypeMismatch},
		{"likert for bool", Set{3: LikertValue(3)}, ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate(c)
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	c := testCatalog(t)

	partial := Set{1: LikertValue(3)}
	if partial.Complete(c) {
		t.Error("partial set must not be complete")
	}

	full := Set{1: LikertValue(3), 2: LikertValue(4), 3: BooleanValue(false)}
	if !full.Complete(c) {
		t.Error("full set must be complete")
	}
}

func TestParseSubmissions(t *testing.T) {
	set, err := ParseSubmissions([]byte(`[
		{"questionId": 1, "answer": 4},
		{"questionId": 3, "answer": true}
	]`))
	if err != nil {
		t.Fatalf("ParseSubmissions: %v", err)
	}

	if v := set[1]; v.IsBool || v.Likert != 4 {
		t.Errorf("question 1 = %+v, want likert 4", v)
	}
	if v := set[3]; !v.IsBool || !v.Boolean {
		t.Errorf("question 3 = %+v, want boolean true", v)
	}
}

func TestParseSubmissions_LaterAnswerReplacesFormer(t *testing.T) {
	set, err := ParseSubmissions([]byte(`[
		{"questionId": 1, "answer": 2},
		{"questionId": 1, "answer": 5}
	]`))
	if err != nil {
		t.Fatalf("ParseSubmissions: %v", err)
	}
	if len(set) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(set))
	}
	if set[1].Likert != 5 {
		t.Errorf("question 1 = %d, want 5 (later answer wins)", set[1].Likert)
	}
}

func TestParseSubmissions_Malformed(t *testing.T) {
	cases := []string{
		`{`,
		`[{"questionId": 1, "answer": "high"}]`,
		`[{"questionId": 1, "answer": 3.5}]`,
	}
	for _, data := range cases {
		if _, err := ParseSubmissions([]byte(data)); !errors.Is(err, ErrMalformedSubmission) {
			t.Errorf("ParseSubmissions(%q) = %v, want ErrMalformedSubmission", data, err)
		}
	}
}

func TestMarshalSubmissions_RoundTrip(t *testing.T) {
	in := Set{2: LikertValue(3), 1: LikertValue(5), 3: BooleanValue(false)}

	data, err := MarshalSubmissions(in)
	if err != nil {
		t.Fatalf("MarshalSubmissions: %v", err)
	}
	out, err := ParseSubmissions(data)
	if err != nil {
		t.Fatalf("ParseSubmissions: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("round trip lost entries: %d != %d", len(out), len(in))
	}
	for id, v := range in {
		if out[id] != v {
			t.Errorf("question %d: %+v != %+v", id, out[id], v)
		}
	}
}
