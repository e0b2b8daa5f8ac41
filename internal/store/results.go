package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"
)

// Segment is one accepted leg of a complete itinerary.
type Segment struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Carrier     string   `json:"carrier"`
	Hops        []string `json:"hops,omitempty"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency,omitempty"`
}

// ResultRecord is one complete route with its chosen flights.
// Immutable once written.
type ResultRecord struct {
	Fingerprint string    `json:"fingerprint"`
	Route       []string  `json:"route"` // ordered airport codes
	Segments    []Segment `json:"segments"`
	TotalCost   float64   `json:"total_cost"`
	CompletedAt time.Time `json:"completed_at"`
}

// ResultStore is the durable append-style store of complete routes,
// kept sorted by total cost. The whole file is rewritten atomically
// on every append.
type ResultStore struct {
	path string

	mu      sync.Mutex
	records []ResultRecord
	byFP    map[string]bool
}

// OpenResults loads the results file at path. A missing file is an
// empty store; an unreadable one is a CorruptError.
func OpenResults(path string) (*ResultStore, error) {
	s := &ResultStore{path: path, byFP: make(map[string]bool)}
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
	for _, rec := range s.records {
		s.byFP[rec.Fingerprint] = true
	}
	return s, nil
}

// Append persists a new result. Appending a fingerprint that is
// already stored is a no-op, which keeps re-runs from duplicating
// entries.
func (s *ResultStore) Append(rec ResultRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byFP[rec.Fingerprint] {
		return nil
	}
	s.records = append(s.records, rec)
	s.byFP[rec.Fingerprint] = true
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].TotalCost < s.records[j].TotalCost
	})

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// Has reports whether a fingerprint already has a stored result.
func (s *ResultStore) Has(fingerprint string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byFP[fingerprint]
}

// Len returns the number of stored results.
func (s *ResultStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Records returns a copy of all results, cheapest first.
func (s *ResultStore) Records() []ResultRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ResultRecord, len(s.records))
	copy(out, s.records)
	return out
}
