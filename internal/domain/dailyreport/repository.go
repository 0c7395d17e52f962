package dailyreport

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, report DailyReport) (DailyReport, error)
	GetByID(ctx context.Context, id string) (DailyReport, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, reportDate time.Time) (DailyReport, error)
	// ReplaceLines swaps the full line set of a report.
	ReplaceLines(ctx context.Context, reportID string, lines []Line) error
	UpdateStatus(ctx context.Context, id string, status Status, rejectReason *string) error
}
