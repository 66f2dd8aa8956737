package attendance

import (
	"context"
	"time"
)

type Action string

const (
	ActionClockIn  Action = "clock in"
	ActionClockOut Action = "clock out"
)

// Record is one ledger row: at most one per (subject, date). Neither backing
// store has a native uniqueness constraint, so the service enforces it by
// reading before every write.
type Record struct {
	ID         string
	SubjectKey string
	Date       string
	TimeIn     *time.Time
	TimeOut    *time.Time
	Zone       string
	Department string
}

// DateKey derives the calendar day a request belongs to: the UTC date of the
// request timestamp, not the server clock. Stored dates are compared by exact
// string equality.
func DateKey(ts time.Time) string {
	return ts.UTC().Format("2006-01-02")
}

// Ledger is the attendance store. FindForDate returns (nil, nil) when no row
// exists. Append and Update each perform exactly one write; no call is atomic
// with a preceding read, so callers must serialize per subject.
type Ledger interface {
	FindForDate(ctx context.Context, subjectKey, date string) (*Record, error)
	ListForDate(ctx context.Context, date string) ([]Record, error)
	Append(ctx context.Context, rec Record) error
	Update(ctx context.Context, rec Record) error
}

type Service interface {
	Clock(ctx context.Context, req ClockRequest) (ClockResponse, error)
	ListForDate(ctx context.Context, date string) ([]Record, error)
}
