// Package route models six-continent itineraries and enumerates every
// candidate route over the eligible reference data.
package route

import (
	"strings"

	"routesweep/internal/flight"
	"routesweep/internal/geo"
)

// FingerprintMode selects what participates in route identity.
type FingerprintMode int

const (
	// FingerprintEndpoints derives identity from the ordered leg
	// endpoints only. Routes differing only in date window collapse.
	FingerprintEndpoints FingerprintMode = iota
	// FingerprintEndpointsAndDates additionally includes the date
	// window, so the same city sequence on different dates is a
	// distinct route.
	FingerprintEndpointsAndDates
)

// Leg is one origin→destination segment, one unit of search work.
type Leg struct {
	Origin      geo.CityStop
	Destination geo.CityStop
	Window      flight.DateWindow
}

// Route is an ordered closed tour over six stops whose continents are
// a permutation covering all six continents exactly once. The final
// leg returns to the first stop, giving one leg per stop. Routes are
// immutable once generated.
type Route struct {
	Stops  []geo.CityStop
	Window flight.DateWindow
}

// Legs returns the route's legs in travel order. Consecutive stops
// chain city→city and the last leg closes the tour.
func (r Route) Legs() []Leg {
	legs := make([]Leg, len(r.Stops))
	for i := range r.Stops {
		next := r.Stops[(i+1)%len(r.Stops)]
		legs[i] = Leg{Origin: r.Stops[i], Destination: next, Window: r.Window}
	}
	return legs
}

// Airports returns the ordered airport codes of the stops.
func (r Route) Airports() []string {
	codes := make([]string, len(r.Stops))
	for i, s := range r.Stops {
		codes[i] = s.Airport
	}
	return codes
}

// Continents returns the ordered continent sequence of the stops.
func (r Route) Continents() []string {
	out := make([]string, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = s.Continent
	}
	return out
}

// Fingerprint returns the deterministic, order-sensitive identity key
// used for deduplication and progress lookups: the airport codes in
// visit order, closed back to the start, e.g.
// "DEL>IST>CAI>JFK>GRU>SYD>DEL".
func (r Route) Fingerprint(mode FingerprintMode) string {
	var b strings.Builder
	for _, s := range r.Stops {
		b.WriteString(s.Airport)
		b.WriteByte('>')
	}
	if len(r.Stops) > 0 {
		b.WriteString(r.Stops[0].Airport)
	}
	if mode == FingerprintEndpointsAndDates {
		b.WriteByte('@')
		b.WriteString(r.Window.Key())
	}
	return b.String()
}

// String renders the route for logs: "Delhi (DEL) → Istanbul (IST) → …".
func (r Route) String() string {
	parts := make([]string, 0, len(r.Stops)+1)
	for _, s := range r.Stops {
		parts = append(parts, s.City+" ("+s.Airport+")")
	}
	if len(r.Stops) > 0 {
		parts = append(parts, r.Stops[0].City+" ("+r.Stops[0].Airport+")")
	}
	return strings.Join(parts, " → ")
}
