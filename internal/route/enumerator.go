package route

import (
	"fmt"
	"sort"

	"routesweep/internal/flight"
	"routesweep/internal/geo"
)

// EnumerateOptions control route enumeration.
type EnumerateOptions struct {
	// Orders lists the continent visit orders to enumerate. Each
	// order must be a permutation of geo.RequiredContinents. Nil
	// enumerates every permutation.
	Orders [][]string
	// Window is stamped onto every generated route and leg.
	Window flight.DateWindow
	// FingerprintMode selects the deduplication identity.
	FingerprintMode FingerprintMode
	// MaxRoutes caps the output when > 0.
	MaxRoutes int
}

// CanonicalOrder returns the single canonical continent visit order,
// for bounded runs that only vary city choice.
func CanonicalOrder() [][]string {
	order := make([]string, len(geo.RequiredContinents))
	copy(order, geo.RequiredContinents)
	return [][]string{order}
}

// Enumerate produces every distinct route over the dataset: for each
// continent visit order, the cartesian product of candidate cities per
// continent. Deterministic and side-effect-free. Only exact duplicates
// (identical fingerprints) collapse; routes sharing a continent order
// but differing in any city are distinct.
func Enumerate(ds geo.Dataset, opts EnumerateOptions) ([]Route, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	orders := opts.Orders
	if orders == nil {
		orders = permutations(geo.RequiredContinents)
	}
	for _, order := range orders {
		if err := checkOrder(order); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool)
	var routes []Route
	stops := make([]geo.CityStop, len(geo.RequiredContinents))

	var expand func(order []string, depth int) bool
	expand = func(order []string, depth int) bool {
		if depth == len(order) {
			r := Route{Stops: append([]geo.CityStop(nil), stops...), Window: opts.Window}
			fp := r.Fingerprint(opts.FingerprintMode)
			if seen[fp] {
				return true
			}
			seen[fp] = true
			routes = append(routes, r)
			return opts.MaxRoutes <= 0 || len(routes) < opts.MaxRoutes
		}
		for _, stop := range ds.Stops[order[depth]] {
			stops[depth] = stop
			if !expand(order, depth+1) {
				return false
			}
		}
		return true
	}

	for _, order := range orders {
		if !expand(order, 0) {
			break
		}
	}
	return routes, nil
}

func checkOrder(order []string) error {
	if len(order) != len(geo.RequiredContinents) {
		return fmt.Errorf("continent order has %d entries, want %d", len(order), len(geo.RequiredContinents))
	}
	seen := make(map[string]bool, len(order))
	required := make(map[string]bool, len(geo.RequiredContinents))
	for _, c := range geo.RequiredContinents {
		required[c] = true
	}
	for _, c := range order {
		if !required[c] {
			return fmt.Errorf("unknown continent %q in visit order", c)
		}
		if seen[c] {
			return fmt.Errorf("continent %q repeated in visit order", c)
		}
		seen[c] = true
	}
	return nil
}

// permutations returns every ordering of items, lexicographically by
// the sorted input, so enumeration order is deterministic.
func permutations(items []string) [][]string {
	base := append([]string(nil), items...)
	sort.Strings(base)

	var out [][]string
	used := make([]bool, len(base))
	current := make([]string, 0, len(base))

	var walk func()
	walk = func() {
		if len(current) == len(base) {
			out = append(out, append([]string(nil), current...))
			return
		}
		for i, item := range base {
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, item)
			walk()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	walk()
	return out
}
