package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/hr-console-go/internal/domain/attendance"
	"github.com/attendly/hr-console-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository. The unique constraint on
// (employee_id, date) makes this one atomic keyed write: no read-then-write
// window, so concurrent marks for the same day cannot duplicate a record. On
// conflict the existing row keeps its id and only the status moves.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, owner_id, employee_id, date, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, owner_id, employee_id, date, status, created_at, updated_at
	`

	var saved attendance.AttendanceRecord
	err := q.QueryRow(ctx, query,
		rec.ID, rec.OwnerID, rec.EmployeeID, rec.Date, rec.Status,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.EmployeeID, &saved.Date,
		&saved.Status, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return saved, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, ownerID string, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "owner_id = $1"
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, owner_id, employee_id, date, status, created_at, updated_at
		FROM attendance_records
		WHERE %s
		ORDER BY date DESC, employee_id ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		err := rows.Scan(
			&rec.ID, &rec.OwnerID, &rec.EmployeeID, &rec.Date,
			&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByStatus(ctx context.Context, ownerID string, employeeID string) (int64, int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance_records
		WHERE owner_id = $1 AND employee_id = $2
	`

	var present, absent int64
	if err := q.QueryRow(ctx, query, ownerID, employeeID).Scan(&present, &absent); err != nil {
		return 0, 0, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	return present, absent, nil
}

// DeleteByEmployeeID implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByEmployeeID(ctx context.Context, employeeID string, ownerID string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		DELETE FROM attendance_records
		WHERE employee_id = $1 AND owner_id = $2
	`

	if _, err := q.Exec(ctx, query, employeeID, ownerID); err != nil {
		return fmt.Errorf("failed to delete attendance for employee: %w", err)
	}

	return nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, ownerID string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, owner_id, employee_id, date, status, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2 AND owner_id = $3
	`

	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, employeeID, date, ownerID).Scan(
		&rec.ID, &rec.OwnerID, &rec.EmployeeID, &rec.Date,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return rec, nil
}
