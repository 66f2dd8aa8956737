package sheets

import (
	"context"
	"strings"

	"github.com/proodentit/tolon-attendance/internal/domain/staff"
)

// Staff Sheet tab layout: Staff ID | Name | Active | Department | Allowed Locations.
// Allowed Locations is a comma-separated list of zone names.
const staffRange = "Staff Sheet!A2:E"

type staffDirectory struct {
	client        *Client
	spreadsheetID string
}

func NewStaffDirectory(client *Client, spreadsheetID string) staff.Directory {
	return &staffDirectory{
		client:        client,
		spreadsheetID: spreadsheetID,
	}
}

// FindActive implements staff.Directory. The identifier matches either the
// Staff ID or the Name column; rows not marked Active are invisible.
func (d *staffDirectory) FindActive(ctx context.Context, identifier string) (*staff.Record, error) {
	rows, err := d.client.readRange(ctx, d.spreadsheetID, staffRange)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		id := cell(row, 0)
		name := cell(row, 1)
		if id != identifier && name != identifier {
			continue
		}
		if !strings.EqualFold(cell(row, 2), "Yes") {
			continue
		}

		rec := &staff.Record{
			ID:         id,
			Name:       name,
			Active:     true,
			Department: cell(row, 3),
		}
		if rec.Department == "" {
			rec.Department = "Unknown"
		}
		for _, z := range strings.Split(cell(row, 4), ",") {
			if z = strings.TrimSpace(z); z != "" {
				rec.AllowedZones = append(rec.AllowedZones, z)
			}
		}
		return rec, nil
	}

	return nil, staff.ErrInactiveOrUnknown
}
