// Package store persists batch progress and complete-route results as
// JSON files. Both stores load fully at startup, serialize all
// mutation behind a coarse mutex, and replace their backing file
// atomically on every write so a crash never leaves a half-written
// file behind.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Status is the processing state of one route fingerprint.
type Status string

const (
	// StatusPending marks a route not yet finalized. Absent
	// fingerprints are implicitly pending.
	StatusPending Status = "pending"
	// StatusDone marks a route that completed with a full itinerary.
	StatusDone Status = "done"
	// StatusFailed marks a route rejected by the carrier filter or
	// errored during search. Never retried automatically.
	StatusFailed Status = "failed"
)

// Terminal reports whether s is a final state.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusFailed
}

// CorruptError marks a store file that exists but cannot be parsed.
// Fatal at startup: resuming over discarded progress would redo (and
// double-record) completed work.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("store file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// ProgressRecord is the persisted status of one fingerprint.
type ProgressRecord struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ProgressStore is the durable fingerprint→status map.
type ProgressStore struct {
	path string

	mu      sync.Mutex
	records map[string]ProgressRecord
	now     func() time.Time
}

// OpenProgress loads the progress file at path. A missing file is an
// empty store; an unreadable one is a CorruptError.
func OpenProgress(path string) (*ProgressStore, error) {
	s := &ProgressStore{
		path:    path,
		records: make(map[string]ProgressRecord),
		now:     time.Now,
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	return s, nil
}

// Status returns the recorded status for a fingerprint; absent means
// pending.
func (s *ProgressStore) Status(fingerprint string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[fingerprint]; ok {
		return rec.Status
	}
	return StatusPending
}

// Len returns the number of recorded fingerprints.
func (s *ProgressStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Snapshot returns a copy of all records.
func (s *ProgressStore) Snapshot() map[string]ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]ProgressRecord, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}
	return out
}

// RecordOutcome finalizes a fingerprint to a terminal status and
// persists the whole store atomically. Re-recording the same status
// is a no-op; recording a different terminal status for an already
// finalized fingerprint is a logic error and fails loudly. A record
// never regresses to pending.
func (s *ProgressStore) RecordOutcome(fingerprint string, status Status) error {
	if !status.Terminal() {
		return fmt.Errorf("record outcome %s: status %q is not terminal", fingerprint, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.records[fingerprint]; ok && prev.Status.Terminal() {
		if prev.Status == status {
			return nil
		}
		return fmt.Errorf("record outcome %s: already %s, refusing transition to %s",
			fingerprint, prev.Status, status)
	}

	s.records[fingerprint] = ProgressRecord{Status: status, Timestamp: s.now().UTC()}
	return s.flushLocked()
}

// flushLocked writes the store to disk. Caller holds s.mu.
func (s *ProgressStore) flushLocked() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	return writeFileAtomic(s.path, data)
}
