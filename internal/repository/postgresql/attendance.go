package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/proodentit/tolon-attendance/internal/domain/attendance"
	"github.com/proodentit/tolon-attendance/internal/pkg/database"
)

type attendanceLedger struct {
	db database.Querier
}

func NewAttendanceLedger(db database.Querier) attendance.Ledger {
	return &attendanceLedger{db: db}
}

// FindForDate implements attendance.Ledger.
func (l *attendanceLedger) FindForDate(ctx context.Context, subjectKey, date string) (*attendance.Record, error) {
	query := `
		SELECT id, subject_key, date, time_in, time_out, zone, department
		FROM attendance
		WHERE subject_key = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := l.db.QueryRow(ctx, query, subjectKey, date).Scan(
		&rec.ID, &rec.SubjectKey, &rec.Date, &rec.TimeIn, &rec.TimeOut, &rec.Zone, &rec.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance: %w", err)
	}

	return &rec, nil
}

// ListForDate implements attendance.Ledger.
func (l *attendanceLedger) ListForDate(ctx context.Context, date string) ([]attendance.Record, error) {
	query := `
		SELECT id, subject_key, date, time_in, time_out, zone, department
		FROM attendance
		WHERE date = $1
		ORDER BY time_in
	`

	rows, err := l.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var recs []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.SubjectKey, &rec.Date, &rec.TimeIn, &rec.TimeOut, &rec.Zone, &rec.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance: %w", err)
	}

	return recs, nil
}

// Append implements attendance.Ledger.
func (l *attendanceLedger) Append(ctx context.Context, rec attendance.Record) error {
	query := `
		INSERT INTO attendance (id, subject_key, date, time_in, time_out, zone, department)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := l.db.Exec(ctx, query,
		uuid.NewString(), rec.SubjectKey, rec.Date, rec.TimeIn, rec.TimeOut, rec.Zone, rec.Department,
	)
	if err != nil {
		return fmt.Errorf("failed to append attendance: %w", err)
	}
	return nil
}

// Update implements attendance.Ledger.
func (l *attendanceLedger) Update(ctx context.Context, rec attendance.Record) error {
	query := `
		UPDATE attendance
		SET time_in = $1, time_out = $2
		WHERE id = $3
	`

	tag, err := l.db.Exec(ctx, query, rec.TimeIn, rec.TimeOut, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("attendance record %s not found", rec.ID)
	}
	return nil
}
