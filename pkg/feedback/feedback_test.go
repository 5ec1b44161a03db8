package feedback

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func tempStore(t *testing.T, retentionDays int) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "feedback.jsonl"), retentionDays)
}

func TestNewRecord_Validation(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		comments string
		wantErr  error
	}{
		{"valid", 7, "great tool", nil},
		{"zero score", 0, "", nil},
		{"top score", 10, "", nil},
		{"negative score", -1, "", ErrInvalidScore},
		{"score too high", 11, "", ErrInvalidScore},
		{"comment too long", 5, strings.Repeat("x", 2001), ErrCommentTooLong},
		{"comment at cap", 5, strings.Repeat("x", 2000), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewRecord(tt.score, tt.comments, "", "")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRecord: %v", err)
			}
			if rec.ID == "" {
				t.Error("record missing id")
			}
			if rec.CreatedAt.IsZero() {
				t.Error("record missing timestamp")
			}
		})
	}
}

func TestStore_AppendAndReadBack(t *testing.T) {
	s := tempStore(t, 0)

	for i := 0; i < 3; i++ {
		rec, err := NewRecord(i+5, "comment", "/dashboard", "sess-1")
		if err != nil {
			t.Fatalf("NewRecord: %v", err)
		}
		if err := s.Append(rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	records, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Score != 5 || records[2].Score != 7 {
		t.Errorf("records out of order: %+v", records)
	}
}

func TestStore_EmptyFileMissing(t *testing.T) {
	s := tempStore(t, 0)

	records, err := s.All()
	if err != nil {
		t.Fatalf("All on missing file: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records from missing file", len(records))
	}
}

func TestStore_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.jsonl")
	content := `{"id":"a","score":8,"comments":"ok","createdAt":"2026-08-01T00:00:00Z"}
not json at all
{"id":"b","score":3,"comments":"meh","createdAt":"2026-08-02T00:00:00Z"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path, 0)
	records, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want the 2 well-formed ones", len(records))
	}
	if records[0].ID != "a" || records[1].ID != "b" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestStore_RetentionPrunesOldRecords(t *testing.T) {
	s := tempStore(t, 30)

	old := Record{ID: "old", Score: 5, CreatedAt: time.Now().UTC().AddDate(0, 0, -60)}
	fresh := Record{ID: "fresh", Score: 9, CreatedAt: time.Now().UTC()}
	if err := s.Append(old); err != nil {
		t.Fatalf("Append old: %v", err)
	}
	if err := s.Append(fresh); err != nil {
		t.Fatalf("Append fresh: %v", err)
	}

	records, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(records) != 1 || records[0].ID != "fresh" {
		t.Errorf("records = %+v, want only the fresh one", records)
	}
}

func TestStore_NoTmpFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "feedback.jsonl"), 0)

	rec, _ := NewRecord(6, "", "", "")
	if err := s.Append(rec); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("tmp file left behind: %s", e.Name())
		}
	}
}

func TestLimiter_BurstThenDeny(t *testing.T) {
	l := NewLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("submission %d denied within burst", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("fourth submission allowed, want rate limited")
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := NewLimiter(1, time.Hour)

	if !l.Allow("a") {
		t.Fatal("first key denied")
	}
	if !l.Allow("b") {
		t.Error("second key throttled by first key's usage")
	}
}
