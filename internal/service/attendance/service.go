package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/proodentit/tolon-attendance/internal/domain/attendance"
	"github.com/proodentit/tolon-attendance/internal/domain/staff"
	"github.com/proodentit/tolon-attendance/internal/domain/zone"
	"github.com/proodentit/tolon-attendance/internal/pkg/geo"
	"github.com/proodentit/tolon-attendance/internal/service/recognition"
)

// Identifier resolves a captured photo to a subject when the request carries
// no explicit subjectId/subjectName.
type Identifier interface {
	Identify(ctx context.Context, imageBase64 string) (recognition.Identification, error)
}

type AttendanceServiceImpl struct {
	zones      zone.Repository
	directory  staff.Directory
	ledger     attendance.Ledger
	recognizer Identifier
	timeout    time.Duration
	locks      subjectLocks
}

func NewAttendanceService(zones zone.Repository, directory staff.Directory, ledger attendance.Ledger, recognizer Identifier, timeout time.Duration) attendance.Service {
	return &AttendanceServiceImpl{
		zones:      zones,
		directory:  directory,
		ledger:     ledger,
		recognizer: recognizer,
		timeout:    timeout,
	}
}

// boundedContext caps the whole clock flow at the configured request timeout
// so a stalled store cannot hold the request (or the subject lock) open.
func (s *AttendanceServiceImpl) boundedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Clock implements attendance.Service.
//
// The find-decide-write window against the ledger is serialized with a
// per-subject mutex, which closes the duplicate clock-in race within one
// process. Multi-process deployments still race: neither the spreadsheet nor
// the Postgres schema enforces (subject, date) uniqueness, and no lease is
// taken. A ledger backend with a conditional append would close that gap
// without touching this method.
func (s *AttendanceServiceImpl) Clock(ctx context.Context, req attendance.ClockRequest) (attendance.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockResponse{}, err
	}

	ctx, cancel := s.boundedContext(ctx)
	defer cancel()

	// Validate guarantees both parses succeed.
	action, _ := req.ParsedAction()
	ts, _ := req.ParsedTimestamp()

	identifier := req.Identifier()
	if identifier == "" {
		id, err := s.recognizer.Identify(ctx, req.Image)
		if err != nil {
			return attendance.ClockResponse{}, err
		}
		identifier = id.Subject
	}

	zones, err := s.zones.List(ctx)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to load zones: %w", err)
	}

	st, err := s.directory.FindActive(ctx, identifier)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	zn := geo.ResolveZone(req.Latitude, req.Longitude, zones)
	if err := Authorize(*st, zn); err != nil {
		return attendance.ClockResponse{}, err
	}

	subjectKey := st.SubjectKey()
	date := attendance.DateKey(ts)

	unlock := s.locks.acquire(subjectKey)
	defer unlock()

	existing, err := s.ledger.FindForDate(ctx, subjectKey, date)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to read ledger: %w", err)
	}

	rec, kind, err := ApplyTransition(existing, action, ts)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	rec.SubjectKey = subjectKey
	if kind == TransitionAppend {
		// Zone and department are stamped once, at clock-in; clock-out
		// only fills the Time Out column.
		rec.Zone = zn.Name
		rec.Department = st.Department
	}

	switch kind {
	case TransitionAppend:
		err = s.ledger.Append(ctx, rec)
	case TransitionUpdate:
		err = s.ledger.Update(ctx, rec)
	}
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to write ledger: %w", err)
	}

	return attendance.ClockResponse{
		Subject:    subjectKey,
		Action:     action,
		Zone:       zn.Name,
		Department: st.Department,
		Date:       date,
		Message:    clockMessage(subjectKey, action, zn.Name, ts),
	}, nil
}

// ListForDate implements attendance.Service.
func (s *AttendanceServiceImpl) ListForDate(ctx context.Context, date string) ([]attendance.Record, error) {
	ctx, cancel := s.boundedContext(ctx)
	defer cancel()

	recs, err := s.ledger.ListForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger: %w", err)
	}
	return recs, nil
}

func clockMessage(name string, action attendance.Action, zoneName string, ts time.Time) string {
	verb := "clocked in"
	if action == attendance.ActionClockOut {
		verb = "clocked out"
	}
	return fmt.Sprintf("Dear %s, you have successfully %s at %s in %s.",
		name, verb, ts.Format("15:04"), zoneName)
}
