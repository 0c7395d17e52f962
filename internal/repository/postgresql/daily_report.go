package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dailyReportRepositoryImpl struct {
	db *database.DB
}

func NewDailyReportRepository(db *database.DB) dailyreport.Repository {
	return &dailyReportRepositoryImpl{db: db}
}

// Create implements dailyreport.Repository. The report and its lines land
// in one transaction.
func (r *dailyReportRepositoryImpl) Create(ctx context.Context, report dailyreport.DailyReport) (dailyreport.DailyReport, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO daily_reports (id, employee_id, report_date, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING created_at, updated_at
		`
		if err := tx.QueryRow(ctx, query,
			report.ID, report.EmployeeID, report.ReportDate, report.Status,
		).Scan(&report.CreatedAt, &report.UpdatedAt); err != nil {
			return err
		}

		return insertLines(ctx, tx, report.ID, report.Lines)
	})
	if err != nil {
		return dailyreport.DailyReport{}, err
	}

	return report, nil
}

// GetByID implements dailyreport.Repository.
func (r *dailyReportRepositoryImpl) GetByID(ctx context.Context, id string) (dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, report_date, status, reject_reason, created_at, updated_at
		FROM daily_reports
		WHERE id = $1
	`

	var report dailyreport.DailyReport
	err := q.QueryRow(ctx, query, id).Scan(
		&report.ID, &report.EmployeeID, &report.ReportDate, &report.Status,
		&report.RejectReason, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		return dailyreport.DailyReport{}, err
	}

	lines, err := r.getLines(ctx, report.ID)
	if err != nil {
		return dailyreport.DailyReport{}, err
	}
	report.Lines = lines

	return report, nil
}

// GetByEmployeeAndDate implements dailyreport.Repository.
func (r *dailyReportRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, reportDate time.Time) (dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, report_date, status, reject_reason, created_at, updated_at
		FROM daily_reports
		WHERE employee_id = $1 AND report_date = $2
	`

	var report dailyreport.DailyReport
	err := q.QueryRow(ctx, query, employeeID, reportDate).Scan(
		&report.ID, &report.EmployeeID, &report.ReportDate, &report.Status,
		&report.RejectReason, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		return dailyreport.DailyReport{}, err
	}

	lines, err := r.getLines(ctx, report.ID)
	if err != nil {
		return dailyreport.DailyReport{}, err
	}
	report.Lines = lines

	return report, nil
}

// ReplaceLines implements dailyreport.Repository.
func (r *dailyReportRepositoryImpl) ReplaceLines(ctx context.Context, reportID string, lines []dailyreport.Line) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM daily_report_lines WHERE daily_report_id = $1`, reportID); err != nil {
			return fmt.Errorf("failed to delete report lines: %w", err)
		}
		if err := insertLines(ctx, tx, reportID, lines); err != nil {
			return err
		}

		commandTag, err := tx.Exec(ctx, `UPDATE daily_reports SET updated_at = NOW() WHERE id = $1`, reportID)
		if err != nil {
			return err
		}
		if commandTag.RowsAffected() != 1 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

// UpdateStatus implements dailyreport.Repository.
func (r *dailyReportRepositoryImpl) UpdateStatus(ctx context.Context, id string, status dailyreport.Status, rejectReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_reports
		SET status = $2, reject_reason = $3, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id, status, rejectReason)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}

	return nil
}

func insertLines(ctx context.Context, tx pgx.Tx, reportID string, lines []dailyreport.Line) error {
	if len(lines) == 0 {
		return nil
	}

	query := `
		INSERT INTO daily_report_lines (
			id, daily_report_id, line_type, start_time, end_time, work_order_id, ot_type_id, note
		) VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, $8)
	`

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(query,
			line.ID, reportID, line.LineType, line.StartTime, line.EndTime,
			line.WorkOrderID, line.OTTypeID, line.Note,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range lines {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert report line: %w", err)
		}
	}
	return nil
}

func (r *dailyReportRepositoryImpl) getLines(ctx context.Context, reportID string) ([]dailyreport.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			id, daily_report_id, line_type,
			to_char(start_time, 'HH24:MI:SS') AS start_time,
			to_char(end_time, 'HH24:MI:SS') AS end_time,
			work_order_id, ot_type_id, COALESCE(note, '') AS note
		FROM daily_report_lines
		WHERE daily_report_id = $1
		ORDER BY start_time ASC
	`

	rows, err := q.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to query report lines: %w", err)
	}
	defer rows.Close()

	var lines []dailyreport.Line
	for rows.Next() {
		var line dailyreport.Line
		if err := rows.Scan(
			&line.ID, &line.DailyReportID, &line.LineType,
			&line.StartTime, &line.EndTime,
			&line.WorkOrderID, &line.OTTypeID, &line.Note,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
