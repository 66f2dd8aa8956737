package sheets

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/proodentit/tolon-attendance/internal/domain/zone"
)

// Locations tab layout: Location Name | Latitude | Longitude | Radius (km).
const zonesRange = "Locations!A2:D"

// defaultRadiusKm applies when the radius cell is blank or unparseable.
const defaultRadiusKm = 0.15

type zoneRepository struct {
	client        *Client
	spreadsheetID string
	ttl           time.Duration

	mu        sync.Mutex
	cached    []zone.Zone
	fetchedAt time.Time
}

// NewZoneRepository reads zones from the Locations tab with a read-through
// TTL cache, preserving sheet row order.
func NewZoneRepository(client *Client, spreadsheetID string, ttl time.Duration) zone.Repository {
	return &zoneRepository{
		client:        client,
		spreadsheetID: spreadsheetID,
		ttl:           ttl,
	}
}

// List implements zone.Repository.
func (r *zoneRepository) List(ctx context.Context) ([]zone.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil && time.Since(r.fetchedAt) < r.ttl {
		return r.cached, nil
	}

	rows, err := r.client.readRange(ctx, r.spreadsheetID, zonesRange)
	if err != nil {
		return nil, err
	}

	zones := make([]zone.Zone, 0, len(rows))
	for _, row := range rows {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		lat, errLat := strconv.ParseFloat(cell(row, 1), 64)
		lon, errLon := strconv.ParseFloat(cell(row, 2), 64)
		if errLat != nil || errLon != nil {
			continue
		}
		radius, err := strconv.ParseFloat(cell(row, 3), 64)
		if err != nil || radius <= 0 {
			radius = defaultRadiusKm
		}
		zones = append(zones, zone.Zone{
			Name:     name,
			Lat:      lat,
			Lon:      lon,
			RadiusKm: radius,
		})
	}

	r.cached = zones
	r.fetchedAt = time.Now()
	return zones, nil
}
