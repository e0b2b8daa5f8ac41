package db

import (
	"time"

	"routesweep/internal/logger"
)

// RunRecord is one completed (or cancelled) batch run.
type RunRecord struct {
	ID           int64     `json:"id"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	TotalRoutes  int       `json:"total_routes"`
	Skipped      int       `json:"skipped"`
	Done         int       `json:"done"`
	Failed       int       `json:"failed"`
	Rejected     int       `json:"rejected"`
	Errored      int       `json:"errored"`
	LegsSearched int       `json:"legs_searched"`
	LegsSaved    int       `json:"legs_saved"`
	Cancelled    bool      `json:"cancelled"`
	DurationMs   int64     `json:"duration_ms"`
}

// RecordRun appends a run to the history table and returns its ID.
func (d *DB) RecordRun(rec RunRecord) int64 {
	cancelled := 0
	if rec.Cancelled {
		cancelled = 1
	}
	res, err := d.sql.Exec(`
		INSERT INTO run_history (
			started_at, finished_at, total_routes, skipped, done, failed,
			rejected, errored, legs_searched, legs_saved, cancelled, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(time.RFC3339),
		rec.FinishedAt.UTC().Format(time.RFC3339),
		rec.TotalRoutes,
		rec.Skipped,
		rec.Done,
		rec.Failed,
		rec.Rejected,
		rec.Errored,
		rec.LegsSearched,
		rec.LegsSaved,
		cancelled,
		rec.DurationMs,
	)
	if err != nil {
		logger.Warn("DB", "Save run history: "+err.Error())
		return 0
	}
	id, _ := res.LastInsertId()
	return id
}

// GetRuns returns the most recent runs, newest first. Limit 0 means
// unlimited.
func (d *DB) GetRuns(limit int) []RunRecord {
	query := `
		SELECT id, started_at, finished_at, total_routes, skipped, done, failed,
		       rejected, errored, legs_searched, legs_saved, cancelled, duration_ms
		FROM run_history ORDER BY started_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.sql.Query(query, args...)
	if err != nil {
		logger.Warn("DB", "Load run history: "+err.Error())
		return nil
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var started, finished string
		var cancelled int
		if err := rows.Scan(
			&rec.ID, &started, &finished, &rec.TotalRoutes, &rec.Skipped,
			&rec.Done, &rec.Failed, &rec.Rejected, &rec.Errored,
			&rec.LegsSearched, &rec.LegsSaved, &cancelled, &rec.DurationMs,
		); err != nil {
			continue
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339, started)
		rec.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		rec.Cancelled = cancelled != 0
		out = append(out, rec)
	}
	return out
}
