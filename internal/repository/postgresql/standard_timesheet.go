package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
)

// standardTimesheetRepositoryImpl reads the standard timesheet table owned
// by the attendance subsystem. This service never writes to it.
type standardTimesheetRepositoryImpl struct {
	db *database.DB
}

func NewStandardTimesheetRepository(db *database.DB) timesheet.EntryRepository {
	return &standardTimesheetRepositoryImpl{db: db}
}

// GetByEmployeeAndRange implements timesheet.EntryRepository.
func (r *standardTimesheetRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			employee_id, work_date, actual_status,
			scheduled_hours, actual_hours, COALESCE(ot_hours, 0) AS ot_hours,
			leave_type_name
		FROM standard_timesheets
		WHERE employee_id = $1 AND work_date BETWEEN $2 AND $3
		ORDER BY work_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query standard timesheets: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var entry timesheet.Entry
		if err := rows.Scan(
			&entry.EmployeeID, &entry.WorkDate, &entry.ActualStatus,
			&entry.ScheduledHours, &entry.ActualHours, &entry.OTHours,
			&entry.LeaveTypeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan standard timesheet entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
