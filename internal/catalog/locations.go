package catalog

import "strings"

// Location is a named point with WGS84 coordinates.
type Location struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

// maxSuggestions caps how many locations a search returns.
const maxSuggestions = 5

var locations = []Location{
	{Name: "New York, NY", Lat: 40.7128, Lon: -74.0060, Country: "USA"},
	{Name: "London, UK", Lat: 51.5074, Lon: -0.1278, Country: "UK"},
	{Name: "Tokyo, Japan", Lat: 35.6762, Lon: 139.6503, Country: "Japan"},
	{Name: "Sydney, Australia", Lat: -33.8688, Lon: 151.2093, Country: "Australia"},
	{Name: "Mumbai, India", Lat: 19.0760, Lon: 72.8777, Country: "India"},
	{Name: "São Paulo, Brazil", Lat: -23.5505, Lon: -46.6333, Country: "Brazil"},
	{Name: "Cairo, Egypt", Lat: 30.0444, Lon: 31.2357, Country: "Egypt"},
	{Name: "Moscow, Russia", Lat: 55.7558, Lon: 37.6173, Country: "Russia"},
	{Name: "Paris, France", Lat: 48.8566, Lon: 2.3522, Country: "France"},
	{Name: "Berlin, Germany", Lat: 52.5200, Lon: 13.4050, Country: "Germany"},
}

// Locations returns the built-in location catalog.
func Locations() []Location {
	out := make([]Location, len(locations))
	copy(out, locations)
	return out
}

// SearchLocations returns up to five locations whose name or country
// contains the query, case-insensitively. An empty query returns the first
// five catalog entries.
func SearchLocations(query string) []Location {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []Location
	for _, loc := range locations {
		if query != "" &&
			!strings.Contains(strings.ToLower(loc.Name), query) &&
			!strings.Contains(strings.ToLower(loc.Country), query) {
			continue
		}
		out = append(out, loc)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
