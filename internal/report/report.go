// Package report renders the end-of-run console summary.
package report

import (
	"fmt"
	"strings"
	"time"

	"routesweep/internal/engine"
	"routesweep/internal/logger"
	"routesweep/internal/store"
)

// DefaultTopN is how many cheapest itineraries the summary lists.
const DefaultTopN = 5

// Print renders the run summary and the cheapest complete itineraries.
func Print(summary engine.Summary, results *store.ResultStore, topN int) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	logger.Section("Run summary")
	logger.Stats("Routes in batch", summary.Total)
	logger.Stats("Skipped (already final)", summary.Skipped)
	logger.Stats("Completed", summary.Done)
	logger.Stats("Failed", fmt.Sprintf("%d (%d rejected, %d errored)",
		summary.Failed, summary.Rejected, summary.Errored))
	logger.Stats("Leg searches issued", summary.LegsSearched)
	logger.Stats("Leg searches avoided", summary.LegsSaved)
	if total := summary.LegsSearched + summary.LegsSaved; total > 0 {
		logger.Stats("Early-exit savings", fmt.Sprintf("%.1f%%",
			100*float64(summary.LegsSaved)/float64(total)))
	}
	rounding := time.Millisecond
	if summary.Elapsed > time.Minute {
		rounding = time.Second
	}
	logger.Stats("Elapsed", summary.Elapsed.Round(rounding))
	if summary.Cancelled {
		logger.Warn("REPORT", "Run was cancelled; rerun to finish the remaining routes")
	}

	records := results.Records()
	if len(records) == 0 {
		logger.Info("REPORT", "No complete itineraries yet")
		return
	}

	logger.Section(fmt.Sprintf("Cheapest itineraries (%d of %d)", min(topN, len(records)), len(records)))
	for i, rec := range records {
		if i >= topN {
			break
		}
		logger.Infof("REPORT", "#%d %.2f %s  %s",
			i+1, rec.TotalCost, currencyOf(rec), strings.Join(rec.Route, " > "))
		for _, seg := range rec.Segments {
			logger.Infof("REPORT", "    %s > %s  %s  %.2f",
				seg.Origin, seg.Destination, seg.Carrier, seg.Price)
		}
	}
}

func currencyOf(rec store.ResultRecord) string {
	for _, seg := range rec.Segments {
		if seg.Currency != "" {
			return seg.Currency
		}
	}
	return ""
}
