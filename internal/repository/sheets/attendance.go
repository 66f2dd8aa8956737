package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/proodentit/tolon-attendance/internal/domain/attendance"
)

// Attendance Sheet tab layout: Name | Time In | Time Out | Location | Department | Date.
const (
	attendanceTab   = "Attendance Sheet"
	attendanceRange = attendanceTab + "!A2:F"
)

type attendanceLedger struct {
	client        *Client
	spreadsheetID string
}

// NewAttendanceLedger stores attendance rows in the Attendance Sheet tab.
// Record IDs are sheet row numbers, assigned at read time and consumed by
// Update. The sheet offers no conditional write, so this ledger alone cannot
// prevent duplicate rows under concurrent writers; the service serializes.
func NewAttendanceLedger(client *Client, spreadsheetID string) attendance.Ledger {
	return &attendanceLedger{
		client:        client,
		spreadsheetID: spreadsheetID,
	}
}

// FindForDate implements attendance.Ledger.
func (l *attendanceLedger) FindForDate(ctx context.Context, subjectKey, date string) (*attendance.Record, error) {
	rows, err := l.client.readRange(ctx, l.spreadsheetID, attendanceRange)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if cell(row, 0) == subjectKey && cell(row, 5) == date {
			rec := rowToRecord(row, i)
			return &rec, nil
		}
	}
	return nil, nil
}

// ListForDate implements attendance.Ledger.
func (l *attendanceLedger) ListForDate(ctx context.Context, date string) ([]attendance.Record, error) {
	rows, err := l.client.readRange(ctx, l.spreadsheetID, attendanceRange)
	if err != nil {
		return nil, err
	}

	var recs []attendance.Record
	for i, row := range rows {
		if cell(row, 5) == date {
			recs = append(recs, rowToRecord(row, i))
		}
	}
	return recs, nil
}

// Append implements attendance.Ledger.
func (l *attendanceLedger) Append(ctx context.Context, rec attendance.Record) error {
	return l.client.appendRow(ctx, l.spreadsheetID, attendanceRange, []interface{}{
		rec.SubjectKey,
		timeCell(rec.TimeIn),
		timeCell(rec.TimeOut),
		rec.Zone,
		rec.Department,
		rec.Date,
	})
}

// Update implements attendance.Ledger.
func (l *attendanceLedger) Update(ctx context.Context, rec attendance.Record) error {
	rowNum, err := strconv.Atoi(rec.ID)
	if err != nil {
		return fmt.Errorf("ledger record has no sheet row reference: %q", rec.ID)
	}

	rangeName := fmt.Sprintf("%s!A%d:F%d", attendanceTab, rowNum, rowNum)
	return l.client.updateRange(ctx, l.spreadsheetID, rangeName, []interface{}{
		rec.SubjectKey,
		timeCell(rec.TimeIn),
		timeCell(rec.TimeOut),
		rec.Zone,
		rec.Department,
		rec.Date,
	})
}

func rowToRecord(row []interface{}, index int) attendance.Record {
	return attendance.Record{
		// Data starts at sheet row 2; row 1 is the header.
		ID:         strconv.Itoa(index + 2),
		SubjectKey: cell(row, 0),
		TimeIn:     parseTimeCell(cell(row, 1)),
		TimeOut:    parseTimeCell(cell(row, 2)),
		Zone:       cell(row, 3),
		Department: cell(row, 4),
		Date:       cell(row, 5),
	}
}

func timeCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// parseTimeCell treats any non-empty cell as a set timestamp. Presence drives
// the clock-in/out state machine; an unparseable value (hand-edited rows)
// degrades to the zero time rather than reopening the day.
func parseTimeCell(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		var zero time.Time
		return &zero
	}
	return &t
}
