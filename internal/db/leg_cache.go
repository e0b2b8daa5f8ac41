package db

import (
	"encoding/json"
	"time"

	"routesweep/internal/flight"
	"routesweep/internal/logger"
)

// GetLeg loads cached search options for one leg. The second return is
// the fetch time; ok is false when the leg has never been cached.
// TTL expiry is the caller's concern.
func (d *DB) GetLeg(origin, dest, windowKey string) ([]flight.Option, time.Time, bool) {
	var optionsJSON, fetchedAt string
	err := d.sql.QueryRow(`
		SELECT options, fetched_at FROM leg_cache
		WHERE origin = ? AND destination = ? AND window_key = ?`,
		origin, dest, windowKey,
	).Scan(&optionsJSON, &fetchedAt)
	if err != nil {
		return nil, time.Time{}, false
	}

	var options []flight.Option
	if err := json.Unmarshal([]byte(optionsJSON), &options); err != nil {
		logger.Warn("DB", "Dropping unreadable leg_cache row "+origin+">"+dest)
		return nil, time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, time.Time{}, false
	}
	return options, ts, true
}

// SetLeg upserts cached search options for one leg. Write failures are
// logged and swallowed: the cache is an optimization, not state.
func (d *DB) SetLeg(origin, dest, windowKey string, options []flight.Option, fetchedAt time.Time) {
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		logger.Warn("DB", "Marshal leg options: "+err.Error())
		return
	}
	_, err = d.sql.Exec(`
		INSERT INTO leg_cache (origin, destination, window_key, options, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(origin, destination, window_key)
		DO UPDATE SET options = excluded.options, fetched_at = excluded.fetched_at`,
		origin, dest, windowKey, string(optionsJSON), fetchedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		logger.Warn("DB", "Save leg cache: "+err.Error())
	}
}

// PruneLegCache deletes cache rows fetched before cutoff and returns
// the number removed.
func (d *DB) PruneLegCache(cutoff time.Time) (int64, error) {
	res, err := d.sql.Exec(`DELETE FROM leg_cache WHERE fetched_at < ?`,
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
