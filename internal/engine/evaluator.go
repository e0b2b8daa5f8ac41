package engine

import (
	"context"
	"fmt"
	"time"

	"routesweep/internal/flight"
	"routesweep/internal/route"
	"routesweep/internal/store"
)

// Evaluator walks one route leg by leg through a Searcher port and
// stops at the first leg with no qualifying option. An Evaluator is
// owned by exactly one worker; the port behind it is never shared.
type Evaluator struct {
	Searcher  flight.Searcher
	Filter    flight.CarrierFilter
	RateDelay time.Duration

	lastCall time.Time
}

// pace sleeps out the remainder of the rate-limit interval since the
// previous port call. Cancellation cuts the sleep short; the caller
// still finishes the route.
func (e *Evaluator) pace(ctx context.Context) {
	if e.RateDelay <= 0 || e.lastCall.IsZero() {
		return
	}
	wait := e.RateDelay - time.Since(e.lastCall)
	if wait <= 0 {
		return
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// Evaluate searches the route's legs in order and returns a verdict.
// The first leg whose options all fail the carrier filter rejects the
// route; no later leg is searched. A search error likewise stops the
// walk with an Errored verdict.
func (e *Evaluator) Evaluate(ctx context.Context, r route.Route) Verdict {
	legs := r.Legs()
	v := Verdict{}

	for i, leg := range legs {
		e.pace(ctx)
		e.lastCall = time.Now()

		options, err := e.Searcher.SearchLeg(ctx, leg.Origin.Airport, leg.Destination.Airport, leg.Window)
		v.LegsQueried++
		if err != nil {
			v.Kind = VerdictErrored
			v.Err = fmt.Errorf("leg %d %s>%s: %w", i, leg.Origin.Airport, leg.Destination.Airport, err)
			return v
		}

		best, ok := e.Filter.CheapestQualifying(options)
		if !ok {
			v.Kind = VerdictRejected
			v.RejectedLeg = i
			v.Reason = fmt.Sprintf("leg %d %s>%s: no %s option via %s among %d offers",
				i, leg.Origin.Airport, leg.Destination.Airport, e.Filter.Airline, e.Filter.Hub, len(options))
			return v
		}

		v.Segments = append(v.Segments, store.Segment{
			Origin:      leg.Origin.Airport,
			Destination: leg.Destination.Airport,
			Carrier:     best.Carrier,
			Hops:        best.Hops,
			Price:       best.Price,
			Currency:    best.Currency,
		})
		v.TotalCost += best.Price
	}

	v.Kind = VerdictComplete
	return v
}
