package zone

import "context"

// Zone is a named circular geofence. RadiusKm must be positive; repositories
// drop rows that would violate that.
type Zone struct {
	Name     string
	Lat      float64
	Lon      float64
	RadiusKm float64
}

// Repository lists zones in declaration order. Order is significant:
// overlapping zones are resolved by first match, not nearest center.
type Repository interface {
	List(ctx context.Context) ([]Zone, error)
}
