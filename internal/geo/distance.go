package geo

import "math"

const earthRadiusKm = 6371.0

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the point is a finite latitude/longitude pair in range.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) {
		return false
	}

	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKm returns the great-circle distance between a and b using the haversine formula.
func DistanceKm(a, b Point) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	sinDLat := math.Sin((lat2 - lat1) / 2)
	sinDLon := math.Sin(radians(b.Lon-a.Lon) / 2)

	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	// rounding can push h slightly outside [0, 1] for antipodal or identical points
	h = math.Min(1, math.Max(0, h))

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// Within reports whether b lies at most maxKm away from a. A negative limit never matches.
func Within(a, b Point, maxKm float64) bool {
	if maxKm < 0 {
		return false
	}

	return DistanceKm(a, b) <= maxKm
}
