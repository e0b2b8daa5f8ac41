// Package flight defines the leg-search port consumed by the engine:
// the Searcher interface, the flight option model, the carrier filter
// and the transient/permanent failure taxonomy.
package flight

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DateWindow bounds the departure date of one leg search.
// Depart is required (YYYY-MM-DD); ReturnBy optionally closes the window.
type DateWindow struct {
	Depart   string `json:"depart"`
	ReturnBy string `json:"return_by,omitempty"`
}

// Key returns a deterministic cache/fingerprint key for the window.
func (w DateWindow) Key() string {
	if w.ReturnBy == "" {
		return w.Depart
	}
	return w.Depart + ".." + w.ReturnBy
}

// Option is one flight offer for a leg.
type Option struct {
	Carrier  string   `json:"carrier"`
	Hops     []string `json:"hops"` // airport codes, endpoints included
	Price    float64  `json:"price"`
	Currency string   `json:"currency,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Stops    int      `json:"stops"`
}

// Searcher is the leg-search port. One call searches one
// origin→destination leg inside a date window. Implementations may be
// slow and rate-limited; a Searcher instance is owned by exactly one
// worker and is never shared, so implementations need no locking of
// their own (shared caches behind the port lock internally).
type Searcher interface {
	SearchLeg(ctx context.Context, origin, dest string, window DateWindow) ([]Option, error)
}

// TransientError marks a leg failure that could succeed on a manual
// re-run: network trouble, timeouts, provider throttling.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string { return fmt.Sprintf("transient: %s: %v", e.Op, e.Err) }
func (e *TransientError) Unwrap() error { return e.Err }

// PermanentError marks a leg failure that will not succeed on retry:
// malformed query, unsupported endpoint.
type PermanentError struct {
	Op  string
	Err error
}

func (e *PermanentError) Error() string { return fmt.Sprintf("permanent: %s: %v", e.Op, e.Err) }
func (e *PermanentError) Unwrap() error { return e.Err }

// IsTransient reports whether err is (or wraps) a TransientError.
func IsTransient(err error) bool {
	var t *TransientError
	return errors.As(err, &t)
}

// IsPermanent reports whether err is (or wraps) a PermanentError.
func IsPermanent(err error) bool {
	var p *PermanentError
	return errors.As(err, &p)
}

// CarrierFilter accepts only options operated by a single designated
// airline and routed through its hub.
type CarrierFilter struct {
	Airline string // e.g. "Turkish Airlines"
	Hub     string // e.g. "IST"
}

// Qualifies reports whether the option passes the carrier filter:
// exactly one operating carrier (no codeshare), carrier matches the
// designated airline, and the routing includes the hub.
func (f CarrierFilter) Qualifies(o Option) bool {
	carrier := strings.TrimSpace(o.Carrier)
	if carrier == "" {
		return false
	}
	// Codeshare listings name several carriers.
	if strings.ContainsAny(carrier, ",/") || strings.Contains(carrier, " + ") {
		return false
	}
	if !strings.Contains(strings.ToLower(carrier), strings.ToLower(f.Airline)) {
		return false
	}
	hub := strings.ToUpper(f.Hub)
	if hub == "" {
		return true
	}
	for _, h := range o.Hops {
		if strings.ToUpper(h) == hub {
			return true
		}
	}
	return false
}

// CheapestQualifying returns the cheapest option passing the filter.
// Ties at equal price keep the first option returned by the port.
func (f CarrierFilter) CheapestQualifying(options []Option) (Option, bool) {
	var best Option
	found := false
	for _, o := range options {
		if !f.Qualifies(o) {
			continue
		}
		if !found || o.Price < best.Price {
			best = o
			found = true
		}
	}
	return best, found
}
