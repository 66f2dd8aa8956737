package postgresql

import (
	"context"
	"fmt"

	"github.com/proodentit/tolon-attendance/internal/domain/zone"
	"github.com/proodentit/tolon-attendance/internal/pkg/database"
)

type zoneRepository struct {
	db database.Querier
}

func NewZoneRepository(db database.Querier) zone.Repository {
	return &zoneRepository{db: db}
}

// List implements zone.Repository. Rows come back in declared position order,
// which is the geofence tie-break order.
func (r *zoneRepository) List(ctx context.Context) ([]zone.Zone, error) {
	query := `
		SELECT name, latitude, longitude, radius_km
		FROM zones
		WHERE radius_km > 0
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	var zones []zone.Zone
	for rows.Next() {
		var z zone.Zone
		if err := rows.Scan(&z.Name, &z.Lat, &z.Lon, &z.RadiusKm); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read zones: %w", err)
	}

	return zones, nil
}
