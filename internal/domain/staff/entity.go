package staff

import "context"

type Record struct {
	ID           string
	Name         string
	Active       bool
	Department   string
	AllowedZones []string
}

// SubjectKey is the canonical identity used for ledger rows. The directory
// accepts either the staff ID or the display name as lookup input; everything
// downstream keys on the name, matching the attendance sheet.
func (r Record) SubjectKey() string {
	return r.Name
}

func (r Record) AllowsZone(name string) bool {
	for _, z := range r.AllowedZones {
		if z == name {
			return true
		}
	}
	return false
}

// Directory resolves an identifier (staff ID or name) to an active staff
// record. Inactive and unknown subjects are indistinguishable to callers.
type Directory interface {
	FindActive(ctx context.Context, identifier string) (*Record, error)
}
