// Package geo holds the static reference data for route planning:
// continents, eligible countries, major cities, airport codes and the
// easy-visa country set. The tables are immutable for the duration of
// a run; eligibility filtering is injected configuration.
package geo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// RequiredContinents is the set every route must cover exactly once,
// in canonical visit order.
var RequiredContinents = []string{
	"Asia",
	"Europe",
	"Africa",
	"North America",
	"South America",
	"Oceania",
}

// ErrMissingContinent marks reference data that cannot produce a
// six-continent route.
var ErrMissingContinent = errors.New("reference data missing continent")

// CityStop is one candidate stop: a city with its country, continent
// and IATA airport code.
type CityStop struct {
	Continent string `json:"continent"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Airport   string `json:"airport"`
}

// Dataset maps each continent to its candidate stops.
type Dataset struct {
	Stops map[string][]CityStop
}

// Options control which countries participate in a Dataset.
type Options struct {
	EasyVisaOnly     bool
	AllowedCountries []string // empty = all eligible countries
}

// Eligible builds the Dataset of candidate stops per continent,
// applying the easy-visa filter and an optional country allow-list.
func Eligible(opts Options) Dataset {
	allowed := make(map[string]bool, len(opts.AllowedCountries))
	for _, c := range opts.AllowedCountries {
		allowed[strings.ToUpper(c)] = true
	}

	ds := Dataset{Stops: make(map[string][]CityStop, len(RequiredContinents))}
	for continent, countries := range eligibleCountries {
		var stops []CityStop
		for _, country := range countries {
			if opts.EasyVisaOnly && !easyVisaCountries[country] {
				continue
			}
			if len(allowed) > 0 && !allowed[country] {
				continue
			}
			for _, city := range countryMajorCities[country] {
				stops = append(stops, CityStop{
					Continent: continent,
					Country:   country,
					City:      city,
					Airport:   AirportCode(city),
				})
			}
		}
		// Stable order: country code, then city name.
		sort.Slice(stops, func(i, j int) bool {
			if stops[i].Country == stops[j].Country {
				return stops[i].City < stops[j].City
			}
			return stops[i].Country < stops[j].Country
		})
		ds.Stops[continent] = stops
	}
	return ds
}

// Validate fails if any required continent has no candidate stops.
// This is fatal before any search starts.
func (d Dataset) Validate() error {
	var missing []string
	for _, continent := range RequiredContinents {
		if len(d.Stops[continent]) == 0 {
			missing = append(missing, continent)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingContinent, strings.Join(missing, ", "))
	}
	return nil
}

// TotalCombinations returns the number of city combinations for a
// single continent ordering (product of per-continent stop counts).
func (d Dataset) TotalCombinations() int {
	total := 1
	for _, continent := range RequiredContinents {
		total *= len(d.Stops[continent])
	}
	return total
}

// AirportCode maps a city name to its primary IATA code. Cities
// without a known mapping fall back to the first three letters
// uppercased, matching provider search behavior for free-text input.
func AirportCode(city string) string {
	if code, ok := airportCodes[city]; ok {
		return code
	}
	c := strings.ToUpper(strings.ReplaceAll(city, " ", ""))
	if len(c) > 3 {
		c = c[:3]
	}
	return c
}

// EasyVisa reports whether a country code is in the easy-visa set.
func EasyVisa(country string) bool {
	return easyVisaCountries[strings.ToUpper(country)]
}
