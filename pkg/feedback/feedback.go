// Package feedback stores user feedback submissions in an append-only
// JSONL file with an optional retention window.
package feedback

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/readykit/readykit/pkg/defaults"
)

// Record is one feedback submission.
type Record struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	Comments  string    `json:"comments"`
	PageURL   string    `json:"pageUrl,omitempty"`
	SessionID string    `json:"sessionId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRecord validates the submission and stamps it with a fresh id.
func NewRecord(score int, comments, pageURL, sessionID string) (Record, error) {
	if score < 0 || score > defaults.MaxFeedbackScore {
		return Record{}, fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}
	if len(comments) > defaults.MaxCommentLength {
		return Record{}, fmt.Errorf("%w: %d chars", ErrCommentTooLong, len(comments))
	}
	return Record{
		ID:        uuid.NewString(),
		Score:     score,
		Comments:  comments,
		PageURL:   pageURL,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Store persists feedback records as one JSON object per line. Every
// append rewrites the file atomically (tmp file + rename) after pruning
// records older than the retention window.
type Store struct {
	mu            sync.Mutex
	path          string
	retentionDays int
}

// NewStore creates a store at path. retentionDays <= 0 disables pruning.
func NewStore(path string, retentionDays int) *Store {
	return &Store{path: path, retentionDays: retentionDays}
}

// Append validates nothing; callers build records through NewRecord.
// Malformed lines already in the file are dropped, not propagated.
func (s *Store) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}
	records = s.applyRetention(records)
	records = append(records, rec)
	return s.writeAll(records)
}

// All returns every stored record in file order.
func (s *Store) All() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *Store) readAll() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("feedback: open store: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil || rec.ID == "" {
			continue // tolerate corruption, keep the rest
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("feedback: read store: %w", err)
	}
	return records, nil
}

func (s *Store) applyRetention(records []Record) []Record {
	if s.retentionDays <= 0 {
		return records
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -s.retentionDays)
	kept := records[:0]
	for _, rec := range records {
		if rec.CreatedAt.IsZero() || !rec.CreatedAt.Before(cutoff) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func (s *Store) writeAll(records []Record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("feedback: create data dir: %w", err)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("feedback: create tmp: %w", err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("feedback: encode record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("feedback: flush tmp: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("feedback: close tmp: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("feedback: replace store: %w", err)
	}
	return nil
}
