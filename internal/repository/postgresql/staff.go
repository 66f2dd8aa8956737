package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/proodentit/tolon-attendance/internal/domain/staff"
	"github.com/proodentit/tolon-attendance/internal/pkg/database"
)

type staffDirectory struct {
	db database.Querier
}

func NewStaffDirectory(db database.Querier) staff.Directory {
	return &staffDirectory{db: db}
}

// FindActive implements staff.Directory.
func (d *staffDirectory) FindActive(ctx context.Context, identifier string) (*staff.Record, error) {
	query := `
		SELECT id, name, active, department, allowed_zones
		FROM staff
		WHERE (id = $1 OR name = $1)
		  AND active = TRUE
		LIMIT 1
	`

	var rec staff.Record
	err := d.db.QueryRow(ctx, query, identifier).Scan(
		&rec.ID, &rec.Name, &rec.Active, &rec.Department, &rec.AllowedZones,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staff.ErrInactiveOrUnknown
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}

	return &rec, nil
}
