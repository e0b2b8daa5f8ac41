package route

import (
	"errors"
	"fmt"
	"testing"

	"routesweep/internal/flight"
	"routesweep/internal/geo"
)

// oneCityDataset has exactly one country and one city per continent.
func oneCityDataset() geo.Dataset {
	ds := geo.Dataset{Stops: make(map[string][]geo.CityStop)}
	for i, continent := range geo.RequiredContinents {
		ds.Stops[continent] = []geo.CityStop{{
			Continent: continent,
			Country:   fmt.Sprintf("C%d", i),
			City:      fmt.Sprintf("City%d", i),
			Airport:   fmt.Sprintf("A%02d", i),
		}}
	}
	return ds
}

func TestEnumerate_SingleOrderOneCityEach(t *testing.T) {
	routes, err := Enumerate(oneCityDataset(), EnumerateOptions{Orders: CanonicalOrder()})
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("len(routes) = %d, want 1", len(routes))
	}
	if got := len(routes[0].Legs()); got != 6 {
		t.Errorf("legs = %d, want 6", got)
	}
}

func TestEnumerate_AllPermutations(t *testing.T) {
	routes, err := Enumerate(oneCityDataset(), EnumerateOptions{})
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}
	if len(routes) != 720 {
		t.Errorf("len(routes) = %d, want 6! = 720", len(routes))
	}

	fingerprints := make(map[string]bool)
	for _, r := range routes {
		// Continent sequence must cover all six continents exactly once.
		seen := make(map[string]bool)
		for _, c := range r.Continents() {
			if seen[c] {
				t.Fatalf("route %s repeats continent %s", r.Fingerprint(FingerprintEndpoints), c)
			}
			seen[c] = true
		}
		if len(seen) != 6 {
			t.Fatalf("route covers %d continents, want 6", len(seen))
		}

		fp := r.Fingerprint(FingerprintEndpoints)
		if fingerprints[fp] {
			t.Fatalf("duplicate fingerprint %s", fp)
		}
		fingerprints[fp] = true
	}
}

func TestEnumerate_CityChoiceMultiplies(t *testing.T) {
	ds := oneCityDataset()
	ds.Stops["Asia"] = append(ds.Stops["Asia"], geo.CityStop{
		Continent: "Asia", Country: "C0", City: "SecondCity", Airport: "A99",
	})

	routes, err := Enumerate(ds, EnumerateOptions{Orders: CanonicalOrder()})
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}
	if len(routes) != 2 {
		t.Errorf("len(routes) = %d, want 2 (two Asian cities)", len(routes))
	}
}

func TestEnumerate_MaxRoutesCap(t *testing.T) {
	routes, err := Enumerate(oneCityDataset(), EnumerateOptions{MaxRoutes: 10})
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}
	if len(routes) != 10 {
		t.Errorf("len(routes) = %d, want 10", len(routes))
	}
}

func TestEnumerate_Deterministic(t *testing.T) {
	a, _ := Enumerate(oneCityDataset(), EnumerateOptions{})
	b, _ := Enumerate(oneCityDataset(), EnumerateOptions{})
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Fingerprint(FingerprintEndpoints) != b[i].Fingerprint(FingerprintEndpoints) {
			t.Fatalf("route %d differs between runs", i)
		}
	}
}

func TestEnumerate_MissingContinentFails(t *testing.T) {
	ds := oneCityDataset()
	ds.Stops["Oceania"] = nil
	_, err := Enumerate(ds, EnumerateOptions{})
	if !errors.Is(err, geo.ErrMissingContinent) {
		t.Errorf("err = %v, want ErrMissingContinent", err)
	}
}

func TestEnumerate_RejectsBadOrder(t *testing.T) {
	short := [][]string{{"Asia", "Europe"}}
	if _, err := Enumerate(oneCityDataset(), EnumerateOptions{Orders: short}); err == nil {
		t.Error("Enumerate() = nil error for short order, want error")
	}

	repeated := [][]string{{"Asia", "Asia", "Europe", "Africa", "North America", "South America"}}
	if _, err := Enumerate(oneCityDataset(), EnumerateOptions{Orders: repeated}); err == nil {
		t.Error("Enumerate() = nil error for repeated continent, want error")
	}

	unknown := [][]string{{"Asia", "Europe", "Africa", "North America", "South America", "Atlantis"}}
	if _, err := Enumerate(oneCityDataset(), EnumerateOptions{Orders: unknown}); err == nil {
		t.Error("Enumerate() = nil error for unknown continent, want error")
	}
}

func TestFingerprint_OrderSensitive(t *testing.T) {
	ds := oneCityDataset()
	routes, _ := Enumerate(ds, EnumerateOptions{})

	// With one city per continent the fingerprints encode the visit
	// order; all 720 must differ (checked above) and reversing the
	// stop order of a route must change its fingerprint.
	r := routes[0]
	reversed := Route{Stops: make([]geo.CityStop, len(r.Stops)), Window: r.Window}
	for i, s := range r.Stops {
		reversed.Stops[len(r.Stops)-1-i] = s
	}
	if r.Fingerprint(FingerprintEndpoints) == reversed.Fingerprint(FingerprintEndpoints) {
		t.Error("fingerprint must be order-sensitive")
	}
}

func TestFingerprint_ClosesTour(t *testing.T) {
	r := Route{Stops: []geo.CityStop{
		{Airport: "DEL"}, {Airport: "IST"}, {Airport: "CAI"},
		{Airport: "JFK"}, {Airport: "GRU"}, {Airport: "SYD"},
	}}
	want := "DEL>IST>CAI>JFK>GRU>SYD>DEL"
	if got := r.Fingerprint(FingerprintEndpoints); got != want {
		t.Errorf("Fingerprint = %q, want %q", got, want)
	}
}

func TestFingerprint_DateMode(t *testing.T) {
	stops := []geo.CityStop{
		{Airport: "DEL"}, {Airport: "IST"}, {Airport: "CAI"},
		{Airport: "JFK"}, {Airport: "GRU"}, {Airport: "SYD"},
	}
	a := Route{Stops: stops, Window: flight.DateWindow{Depart: "2026-10-02"}}
	b := Route{Stops: stops, Window: flight.DateWindow{Depart: "2026-11-02"}}

	if a.Fingerprint(FingerprintEndpoints) != b.Fingerprint(FingerprintEndpoints) {
		t.Error("endpoint mode must ignore dates")
	}
	if a.Fingerprint(FingerprintEndpointsAndDates) == b.Fingerprint(FingerprintEndpointsAndDates) {
		t.Error("date mode must distinguish windows")
	}
}

func TestLegs_ChainAndClose(t *testing.T) {
	routes, _ := Enumerate(oneCityDataset(), EnumerateOptions{
		Orders: CanonicalOrder(),
		Window: flight.DateWindow{Depart: "2026-10-02"},
	})
	legs := routes[0].Legs()
	if len(legs) != 6 {
		t.Fatalf("legs = %d, want 6", len(legs))
	}
	for i := 0; i < len(legs)-1; i++ {
		if legs[i].Destination != legs[i+1].Origin {
			t.Errorf("leg %d destination %v does not chain into leg %d origin %v",
				i, legs[i].Destination, i+1, legs[i+1].Origin)
		}
	}
	if legs[len(legs)-1].Destination != legs[0].Origin {
		t.Error("final leg must close the tour back to the first stop")
	}
	for i, leg := range legs {
		if leg.Window.Depart != "2026-10-02" {
			t.Errorf("leg %d window = %+v, want stamped route window", i, leg.Window)
		}
	}
}
