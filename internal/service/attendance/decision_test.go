package attendance

import (
	"testing"
	"time"

	"github.com/proodentit/tolon-attendance/internal/domain/attendance"
	"github.com/proodentit/tolon-attendance/internal/domain/staff"
	"github.com/proodentit/tolon-attendance/internal/domain/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var headOffice = zone.Zone{Name: "Head Office", Lat: 9.4292, Lon: -1.0534, RadiusKm: 0.15}

func activeStaff() staff.Record {
	return staff.Record{
		ID:           "TLN-001",
		Name:         "Abdulai Mohammed",
		Active:       true,
		Department:   "Operations",
		AllowedZones: []string{"Head Office"},
	}
}

func TestAuthorize(t *testing.T) {
	inactive := activeStaff()
	inactive.Active = false

	nyankpala := zone.Zone{Name: "Nyankpala", Lat: 9.404, Lon: -1.0, RadiusKm: 0.2}

	cases := []struct {
		name    string
		staff   staff.Record
		zone    *zone.Zone
		wantErr error
	}{
		{"active staff in allowed zone", activeStaff(), &headOffice, nil},
		{"inactive staff", inactive, &headOffice, staff.ErrInactiveOrUnknown},
		{"no zone resolved", activeStaff(), nil, attendance.ErrZoneNotAllowed},
		{"zone not in allow-list", activeStaff(), &nyankpala, attendance.ErrZoneNotAllowed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Authorize(c.staff, c.zone)
			if c.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.wantErr)
			}
		})
	}
}

func TestAuthorize_Idempotent(t *testing.T) {
	st := activeStaff()
	first := Authorize(st, nil)
	second := Authorize(st, nil)
	assert.Equal(t, first, second)
}

func TestApplyTransition_ClockInOnFreshDay(t *testing.T) {
	ts := time.Date(2025, 3, 10, 8, 2, 0, 0, time.UTC)

	rec, kind, err := ApplyTransition(nil, attendance.ActionClockIn, ts)
	require.NoError(t, err)
	assert.Equal(t, TransitionAppend, kind)
	assert.Equal(t, "2025-03-10", rec.Date)
	require.NotNil(t, rec.TimeIn)
	assert.Equal(t, ts, *rec.TimeIn)
	assert.Nil(t, rec.TimeOut)
}

func TestApplyTransition_DoubleClockIn(t *testing.T) {
	ts := time.Date(2025, 3, 10, 8, 2, 0, 0, time.UTC)
	existing, _, err := ApplyTransition(nil, attendance.ActionClockIn, ts)
	require.NoError(t, err)

	_, _, err = ApplyTransition(&existing, attendance.ActionClockIn, ts.Add(time.Hour))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestApplyTransition_ClockOutWithoutClockIn(t *testing.T) {
	ts := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	_, _, err := ApplyTransition(nil, attendance.ActionClockOut, ts)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestApplyTransition_FullDay(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 2, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)

	rec, _, err := ApplyTransition(nil, attendance.ActionClockIn, in)
	require.NoError(t, err)

	updated, kind, err := ApplyTransition(&rec, attendance.ActionClockOut, out)
	require.NoError(t, err)
	assert.Equal(t, TransitionUpdate, kind)
	require.NotNil(t, updated.TimeOut)
	assert.Equal(t, out, *updated.TimeOut)
	require.NotNil(t, updated.TimeIn)
	assert.Equal(t, in, *updated.TimeIn)

	// Third action of the day is always rejected.
	_, _, err = ApplyTransition(&updated, attendance.ActionClockOut, out.Add(time.Minute))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
	_, _, err = ApplyTransition(&updated, attendance.ActionClockIn, out.Add(time.Minute))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestApplyTransition_InvalidAction(t *testing.T) {
	_, _, err := ApplyTransition(nil, attendance.Action("lunch"), time.Now())
	assert.ErrorIs(t, err, attendance.ErrInvalidAction)
}

func TestDateKey_UsesUTCDateOfTimestamp(t *testing.T) {
	// 23:30 UTC-2 is already the next day in UTC.
	loc := time.FixedZone("UTC-2", -2*60*60)
	ts := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)
	assert.Equal(t, "2025-03-11", attendance.DateKey(ts))
}
