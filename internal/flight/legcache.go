package flight

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// LegStore is a persistent L2 cache for leg search results.
type LegStore interface {
	GetLeg(origin, dest, windowKey string) ([]Option, time.Time, bool)
	SetLeg(origin, dest, windowKey string, options []Option, fetchedAt time.Time)
}

// legKey identifies one cached leg search.
type legKey struct {
	origin string
	dest   string
	window string
}

// legEntry holds cached options with their fetch time.
type legEntry struct {
	options   []Option
	fetchedAt time.Time
}

// LegCache is a thread-safe TTL cache for leg search results, shared
// across workers. Many routes repeat the same legs, so a hit skips the
// provider entirely. A singleflight.Group coalesces concurrent fetches
// of the same leg; an optional LegStore persists results across runs.
// Failures are never cached.
type LegCache struct {
	mu      sync.RWMutex
	entries map[legKey]legEntry
	group   singleflight.Group
	store   LegStore
	ttl     time.Duration
	now     func() time.Time
}

// NewLegCache creates a leg cache with the given TTL and optional
// persistent store (nil = memory only).
func NewLegCache(ttl time.Duration, store LegStore) *LegCache {
	return &LegCache{
		entries: make(map[legKey]legEntry),
		store:   store,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (lc *LegCache) fresh(e legEntry) bool {
	return lc.now().Sub(e.fetchedAt) < lc.ttl
}

// get returns cached options if present and unexpired.
func (lc *LegCache) get(key legKey) ([]Option, bool) {
	lc.mu.RLock()
	e, ok := lc.entries[key]
	lc.mu.RUnlock()
	if ok && lc.fresh(e) {
		return e.options, true
	}
	// L2: persistent store.
	if lc.store != nil {
		options, fetchedAt, ok := lc.store.GetLeg(key.origin, key.dest, key.window)
		if ok {
			e := legEntry{options: options, fetchedAt: fetchedAt}
			if lc.fresh(e) {
				lc.mu.Lock()
				lc.entries[key] = e
				lc.mu.Unlock()
				return options, true
			}
		}
	}
	return nil, false
}

func (lc *LegCache) put(key legKey, options []Option) {
	fetchedAt := lc.now()
	lc.mu.Lock()
	lc.entries[key] = legEntry{options: options, fetchedAt: fetchedAt}
	lc.mu.Unlock()
	if lc.store != nil {
		lc.store.SetLeg(key.origin, key.dest, key.window, options, fetchedAt)
	}
}

// Fetch returns cached options for the leg or runs fetch once,
// coalescing concurrent callers for the same leg.
func (lc *LegCache) Fetch(origin, dest string, window DateWindow, fetch func() ([]Option, error)) ([]Option, error) {
	key := legKey{origin: origin, dest: dest, window: window.Key()}
	if options, ok := lc.get(key); ok {
		return options, nil
	}

	v, err, _ := lc.group.Do(origin+">"+dest+"@"+key.window, func() (interface{}, error) {
		// Re-check under singleflight: a concurrent caller may have filled it.
		if options, ok := lc.get(key); ok {
			return options, nil
		}
		options, err := fetch()
		if err != nil {
			return nil, err
		}
		lc.put(key, options)
		return options, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Option), nil
}

// CachedSearcher wraps a per-worker Searcher with a shared LegCache.
// The wrapper itself is per-worker; only the cache behind it is shared.
type CachedSearcher struct {
	inner Searcher
	cache *LegCache
}

// NewCachedSearcher wraps inner with the shared cache.
func NewCachedSearcher(inner Searcher, cache *LegCache) *CachedSearcher {
	return &CachedSearcher{inner: inner, cache: cache}
}

// SearchLeg serves the leg from cache when possible, otherwise
// delegates to the wrapped port.
func (cs *CachedSearcher) SearchLeg(ctx context.Context, origin, dest string, window DateWindow) ([]Option, error) {
	return cs.cache.Fetch(origin, dest, window, func() ([]Option, error) {
		return cs.inner.SearchLeg(ctx, origin, dest, window)
	})
}
