package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
)

// workOrderEntryRepositoryImpl reads work-order daily bookings owned by the
// work-order subsystem.
type workOrderEntryRepositoryImpl struct {
	db *database.DB
}

func NewWorkOrderEntryRepository(db *database.DB) timesheet.WorkOrderEntryRepository {
	return &workOrderEntryRepositoryImpl{db: db}
}

// GetByEmployeeAndRange implements timesheet.WorkOrderEntryRepository.
func (r *workOrderEntryRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]timesheet.WorkOrderEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			woe.employee_id, woe.work_date, woe.work_order_id, wo.wo_number,
			COALESCE(woe.regular_hours, 0) AS regular_hours,
			COALESCE(woe.ot_hours, 0) AS ot_hours
		FROM work_order_entries woe
		JOIN work_orders wo ON wo.id = woe.work_order_id
		WHERE woe.employee_id = $1 AND woe.work_date BETWEEN $2 AND $3
		ORDER BY woe.work_date ASC, wo.wo_number ASC
	`

	rows, err := q.Query(ctx, query, employeeID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query work order entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.WorkOrderEntry
	for rows.Next() {
		var entry timesheet.WorkOrderEntry
		if err := rows.Scan(
			&entry.EmployeeID, &entry.WorkDate, &entry.WorkOrderID, &entry.WONumber,
			&entry.RegularHours, &entry.OTHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work order entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
