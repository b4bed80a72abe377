package journey

import "math"

// Station is a stop in the fixed catalog. Coordinates are decimal degrees.
type Station struct {
	ID        string  `json:"id"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// catalog is the fixed set of stations a journey may run between.
var catalog = []Station{
	{ID: "tokyo", City: "Tokyo", Latitude: 35.6812, Longitude: 139.7671},
	{ID: "osaka", City: "Osaka", Latitude: 34.7025, Longitude: 135.4959},
	{ID: "kyoto", City: "Kyoto", Latitude: 34.9858, Longitude: 135.7588},
	{ID: "sapporo", City: "Sapporo", Latitude: 43.0687, Longitude: 141.3508},
	{ID: "london", City: "London", Latitude: 51.5310, Longitude: -0.1262},
	{ID: "paris", City: "Paris", Latitude: 48.8809, Longitude: 2.3553},
	{ID: "edinburgh", City: "Edinburgh", Latitude: 55.9521, Longitude: -3.1884},
	{ID: "berlin", City: "Berlin", Latitude: 52.5251, Longitude: 13.3694},
	{ID: "zurich", City: "Zurich", Latitude: 47.3779, Longitude: 8.5403},
	{ID: "new-york", City: "New York", Latitude: 40.7506, Longitude: -73.9935},
	{ID: "chicago", City: "Chicago", Latitude: 41.8789, Longitude: -87.6397},
	{ID: "seattle", City: "Seattle", Latitude: 47.5998, Longitude: -122.3301},
}

// Catalog returns a copy of the station catalog.
func Catalog() []Station {
	s := make([]Station, len(catalog))
	copy(s, catalog)

	return s
}

// StationByID looks up a station in the catalog.
func StationByID(id string) (Station, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}

	return Station{}, false
}

const earthRadiusMiles = 3958.8

// Distance returns the great-circle distance between two stations in miles,
// using the haversine formula.
func Distance(a, b Station) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
