package flight

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var window = DateWindow{Depart: "2026-10-02"}

func TestLegCache_HitSkipsFetch(t *testing.T) {
	lc := NewLegCache(time.Hour, nil)
	calls := 0
	fetch := func() ([]Option, error) {
		calls++
		return []Option{{Carrier: "Turkish Airlines", Price: 100}}, nil
	}

	for i := 0; i < 3; i++ {
		options, err := lc.Fetch("DEL", "IST", window, fetch)
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if len(options) != 1 {
			t.Fatalf("len(options) = %d, want 1", len(options))
		}
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}

func TestLegCache_ExpiredEntryRefetches(t *testing.T) {
	lc := NewLegCache(time.Minute, nil)
	current := time.Now()
	lc.now = func() time.Time { return current }

	calls := 0
	fetch := func() ([]Option, error) {
		calls++
		return nil, nil
	}

	lc.Fetch("DEL", "IST", window, fetch)
	current = current.Add(2 * time.Minute)
	lc.Fetch("DEL", "IST", window, fetch)

	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2 after expiry", calls)
	}
}

func TestLegCache_DistinctKeys(t *testing.T) {
	lc := NewLegCache(time.Hour, nil)
	calls := 0
	fetch := func() ([]Option, error) {
		calls++
		return nil, nil
	}

	lc.Fetch("DEL", "IST", window, fetch)
	lc.Fetch("IST", "DEL", window, fetch) // reversed leg is a different search
	lc.Fetch("DEL", "IST", DateWindow{Depart: "2026-11-01"}, fetch)

	if calls != 3 {
		t.Errorf("fetch calls = %d, want 3 for distinct keys", calls)
	}
}

func TestLegCache_ErrorNotCached(t *testing.T) {
	lc := NewLegCache(time.Hour, nil)
	calls := 0
	lc.Fetch("DEL", "IST", window, func() ([]Option, error) {
		calls++
		return nil, &TransientError{Op: "http get", Err: errors.New("timeout")}
	})
	_, err := lc.Fetch("DEL", "IST", window, func() ([]Option, error) {
		calls++
		return []Option{{Price: 1}}, nil
	})
	if err != nil {
		t.Fatalf("second Fetch() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2 (failures are not cached)", calls)
	}
}

func TestLegCache_CoalescesConcurrentFetches(t *testing.T) {
	lc := NewLegCache(time.Hour, nil)
	var calls int32
	release := make(chan struct{})
	fetch := func() ([]Option, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []Option{{Price: 9}}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lc.Fetch("DEL", "IST", window, fetch)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("fetch calls = %d, want 1 (singleflight)", got)
	}
}

// memLegStore is an in-memory LegStore for tests.
type memLegStore struct {
	mu   sync.Mutex
	data map[string][]Option
	at   map[string]time.Time
}

func newMemLegStore() *memLegStore {
	return &memLegStore{data: make(map[string][]Option), at: make(map[string]time.Time)}
}

func (m *memLegStore) key(origin, dest, windowKey string) string {
	return origin + ">" + dest + "@" + windowKey
}

func (m *memLegStore) GetLeg(origin, dest, windowKey string) ([]Option, time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(origin, dest, windowKey)
	options, ok := m.data[k]
	return options, m.at[k], ok
}

func (m *memLegStore) SetLeg(origin, dest, windowKey string, options []Option, fetchedAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(origin, dest, windowKey)
	m.data[k] = options
	m.at[k] = fetchedAt
}

func TestLegCache_PersistentStoreSurvivesRestart(t *testing.T) {
	store := newMemLegStore()

	first := NewLegCache(time.Hour, store)
	calls := 0
	first.Fetch("DEL", "IST", window, func() ([]Option, error) {
		calls++
		return []Option{{Carrier: "Turkish Airlines", Price: 77}}, nil
	})

	// New in-memory cache over the same store simulates a new process.
	second := NewLegCache(time.Hour, store)
	options, err := second.Fetch("DEL", "IST", window, func() ([]Option, error) {
		calls++
		return nil, errors.New("should not be called")
	})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1 (L2 hit)", calls)
	}
	if len(options) != 1 || options[0].Price != 77 {
		t.Errorf("options = %+v, want the persisted result", options)
	}
}

type countingSearcher struct {
	calls int32
}

func (c *countingSearcher) SearchLeg(ctx context.Context, origin, dest string, w DateWindow) ([]Option, error) {
	atomic.AddInt32(&c.calls, 1)
	return []Option{{Carrier: "Turkish Airlines", Hops: []string{origin, "IST", dest}, Price: 50}}, nil
}

func TestCachedSearcher_SharesAcrossWrappers(t *testing.T) {
	cache := NewLegCache(time.Hour, nil)
	a := &countingSearcher{}
	b := &countingSearcher{}

	wa := NewCachedSearcher(a, cache)
	wb := NewCachedSearcher(b, cache)

	if _, err := wa.SearchLeg(context.Background(), "DEL", "CAI", window); err != nil {
		t.Fatalf("SearchLeg() error = %v", err)
	}
	if _, err := wb.SearchLeg(context.Background(), "DEL", "CAI", window); err != nil {
		t.Fatalf("SearchLeg() error = %v", err)
	}

	total := atomic.LoadInt32(&a.calls) + atomic.LoadInt32(&b.calls)
	if total != 1 {
		t.Errorf("port calls = %d, want 1 (second wrapper served from shared cache)", total)
	}
}
