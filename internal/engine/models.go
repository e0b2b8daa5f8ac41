package engine

import (
	"time"

	"routesweep/internal/store"
)

// VerdictKind is the outcome class of one route evaluation.
type VerdictKind string

const (
	// VerdictComplete means every leg yielded a qualifying option.
	VerdictComplete VerdictKind = "complete"
	// VerdictRejected means a leg had options but none passed the
	// carrier filter; later legs were never searched.
	VerdictRejected VerdictKind = "rejected"
	// VerdictErrored means a leg search failed outright.
	VerdictErrored VerdictKind = "errored"
)

// Verdict is the result of evaluating one route.
type Verdict struct {
	Kind        VerdictKind
	Segments    []store.Segment // one per leg, Complete only
	TotalCost   float64
	RejectedLeg int    // zero-based index of the rejecting leg, Rejected only
	Reason      string // human-readable rejection cause
	Err         error  // Errored only
	LegsQueried int    // port calls actually issued
}

// Summary aggregates one batch run.
type Summary struct {
	Total        int // routes handed to Run
	Skipped      int // already terminal on resume
	Done         int
	Failed       int // rejected + errored
	Rejected     int
	Errored      int
	LegsSearched int // port calls issued across all routes
	LegsSaved    int // calls avoided by early termination
	Cancelled    bool
	Elapsed      time.Duration
}

// Processed returns the number of routes finalized this run.
func (s Summary) Processed() int {
	return s.Done + s.Failed
}
