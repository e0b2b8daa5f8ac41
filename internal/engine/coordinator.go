package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"routesweep/internal/flight"
	"routesweep/internal/logger"
	"routesweep/internal/metrics"
	"routesweep/internal/route"
	"routesweep/internal/store"
)

// Coordinator fans a batch of routes out to a fixed pool of workers
// and finalizes each verdict into the progress and result stores.
// Already-terminal fingerprints are skipped, so re-running after a
// crash resumes where the previous run stopped.
type Coordinator struct {
	Progress *store.ProgressStore
	Results  *store.ResultStore
	Filter   flight.CarrierFilter

	// NewSearcher builds one port per worker. Ports are never shared;
	// a shared cache belongs behind the port, not in front of it.
	NewSearcher func() flight.Searcher

	Workers         int
	RateDelay       time.Duration
	FingerprintMode route.FingerprintMode
	Metrics         *metrics.Metrics // optional
}

// Run evaluates every non-terminal route in the batch. Cancelling ctx
// stops the feed; workers finish the route they hold, finalize it, and
// exit. The returned error reflects persistence failures only, never
// individual route outcomes.
func (c *Coordinator) Run(ctx context.Context, routes []route.Route) (Summary, error) {
	start := time.Now()
	workers := c.Workers
	if workers <= 0 {
		workers = 1
	}

	var mu sync.Mutex
	summary := Summary{Total: len(routes)}

	pending := make([]route.Route, 0, len(routes))
	for _, r := range routes {
		if c.Progress.Status(r.Fingerprint(c.FingerprintMode)).Terminal() {
			summary.Skipped++
			if c.Metrics != nil {
				c.Metrics.RoutesSkipped.Inc()
			}
			continue
		}
		pending = append(pending, r)
	}
	logger.Infof("ENGINE", "Batch: %d routes, %d already finalized, %d to evaluate, %d workers",
		len(routes), summary.Skipped, len(pending), workers)

	queue := make(chan route.Route)
	go func() {
		defer close(queue)
		for _, r := range pending {
			select {
			case queue <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Workers deliberately run on their own group, not ctx: a cancelled
	// run must still finish and finalize in-flight routes.
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			ev := &Evaluator{
				Searcher:  c.NewSearcher(),
				Filter:    c.Filter,
				RateDelay: c.RateDelay,
			}
			for r := range queue {
				began := time.Now()
				v := c.evaluateSafe(ev, r)
				if c.Metrics != nil {
					c.Metrics.RouteDuration.Observe(time.Since(began).Seconds())
				}
				if err := c.finalize(r, v, &mu, &summary); err != nil {
					return err
				}
			}
			return nil
		})
	}
	err := g.Wait()

	summary.Cancelled = ctx.Err() != nil
	summary.Elapsed = time.Since(start)
	return summary, err
}

// evaluateSafe contains a panicking evaluation to an Errored verdict
// so one poisoned route cannot take down the batch.
func (c *Coordinator) evaluateSafe(ev *Evaluator, r route.Route) (v Verdict) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("ENGINE", fmt.Sprintf("Panic evaluating %s: %v", r.Fingerprint(c.FingerprintMode), rec))
			v = Verdict{Kind: VerdictErrored, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()
	// Evaluation runs to completion even when the batch is cancelled;
	// only the queue feed observes ctx.
	return ev.Evaluate(context.Background(), r)
}

// finalize persists one verdict. For a complete route the result is
// appended before the progress flip, so a crash between the two writes
// re-evaluates the route and the duplicate append is a no-op.
func (c *Coordinator) finalize(r route.Route, v Verdict, mu *sync.Mutex, summary *Summary) error {
	fp := r.Fingerprint(c.FingerprintMode)
	legs := len(r.Legs())

	switch v.Kind {
	case VerdictComplete:
		rec := store.ResultRecord{
			Fingerprint: fp,
			Route:       r.Airports(),
			Segments:    v.Segments,
			TotalCost:   v.TotalCost,
			CompletedAt: time.Now().UTC(),
		}
		if err := c.Results.Append(rec); err != nil {
			return fmt.Errorf("append result %s: %w", fp, err)
		}
		if err := c.Progress.RecordOutcome(fp, store.StatusDone); err != nil {
			return fmt.Errorf("record done %s: %w", fp, err)
		}
		logger.Success("ENGINE", fmt.Sprintf("Complete %s total %.2f", fp, v.TotalCost))

	case VerdictRejected:
		if err := c.Progress.RecordOutcome(fp, store.StatusFailed); err != nil {
			return fmt.Errorf("record failed %s: %w", fp, err)
		}
		logger.Debug("ENGINE", fmt.Sprintf("Rejected %s: %s", fp, v.Reason))

	case VerdictErrored:
		if err := c.Progress.RecordOutcome(fp, store.StatusFailed); err != nil {
			return fmt.Errorf("record failed %s: %w", fp, err)
		}
		logger.Warn("ENGINE", fmt.Sprintf("Errored %s: %v", fp, v.Err))
	}

	mu.Lock()
	switch v.Kind {
	case VerdictComplete:
		summary.Done++
	case VerdictRejected:
		summary.Failed++
		summary.Rejected++
	case VerdictErrored:
		summary.Failed++
		summary.Errored++
	}
	summary.LegsSearched += v.LegsQueried
	summary.LegsSaved += legs - v.LegsQueried
	mu.Unlock()

	if c.Metrics != nil {
		c.Metrics.RoutesEvaluated.WithLabelValues(string(v.Kind)).Inc()
		c.Metrics.LegsSearched.Add(float64(v.LegsQueried))
		c.Metrics.LegsSaved.Add(float64(legs - v.LegsQueried))
		if v.Kind == VerdictErrored {
			kind := "permanent"
			if flight.IsTransient(v.Err) {
				kind = "transient"
			}
			c.Metrics.SearchErrors.WithLabelValues(kind).Inc()
		}
	}
	return nil
}
