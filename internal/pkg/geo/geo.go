package geo

import (
	"math"

	"github.com/proodentit/tolon-attendance/internal/domain/zone"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Distance computes the great-circle distance between two coordinates in km.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ResolveZone returns the first zone in declaration order that contains the
// coordinate, or nil. First match wins even when a later zone's center is
// closer; overlaps are resolved by list order. Invalid coordinates (NaN, out
// of range) simply match nothing.
func ResolveZone(lat, lon float64, zones []zone.Zone) *zone.Zone {
	for i := range zones {
		if Distance(lat, lon, zones[i].Lat, zones[i].Lon) <= zones[i].RadiusKm {
			return &zones[i]
		}
	}
	return nil
}
