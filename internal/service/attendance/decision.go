package attendance

import (
	"time"

	"github.com/proodentit/tolon-attendance/internal/domain/attendance"
	"github.com/proodentit/tolon-attendance/internal/domain/staff"
	"github.com/proodentit/tolon-attendance/internal/domain/zone"
)

// TransitionKind tells the caller which single ledger write to perform.
type TransitionKind int

const (
	TransitionAppend TransitionKind = iota
	TransitionUpdate
)

// Authorize decides whether a subject may act at the resolved zone. Pure and
// idempotent: identical inputs always yield the identical decision.
func Authorize(st staff.Record, zn *zone.Zone) error {
	if !st.Active {
		return staff.ErrInactiveOrUnknown
	}
	if zn == nil || !st.AllowsZone(zn.Name) {
		return attendance.ErrZoneNotAllowed
	}
	return nil
}

// ApplyTransition runs the daily state machine for one (subject, date) pair:
// NoRecord -> ClockedIn -> ClockedOut, terminal for the day. On success it
// returns the record to write and whether it is an append or an update.
func ApplyTransition(existing *attendance.Record, action attendance.Action, ts time.Time) (attendance.Record, TransitionKind, error) {
	switch action {
	case attendance.ActionClockIn:
		if existing != nil && existing.TimeIn != nil {
			return attendance.Record{}, 0, attendance.ErrAlreadyClockedIn
		}
		in := ts
		return attendance.Record{
			Date:   attendance.DateKey(ts),
			TimeIn: &in,
		}, TransitionAppend, nil

	case attendance.ActionClockOut:
		if existing == nil || existing.TimeIn == nil {
			return attendance.Record{}, 0, attendance.ErrNotClockedIn
		}
		if existing.TimeOut != nil {
			return attendance.Record{}, 0, attendance.ErrAlreadyClockedOut
		}
		out := ts
		updated := *existing
		updated.TimeOut = &out
		return updated, TransitionUpdate, nil

	default:
		return attendance.Record{}, 0, attendance.ErrInvalidAction
	}
}
