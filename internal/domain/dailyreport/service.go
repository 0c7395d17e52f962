package dailyreport

import "context"

type Service interface {
	CreateReport(ctx context.Context, req CreateReportRequest) (ReportResponse, error)
	GetReport(ctx context.Context, id string) (ReportResponse, error)
	GetReportByEmployeeAndDate(ctx context.Context, employeeID, reportDate string) (ReportResponse, error)
	UpdateReport(ctx context.Context, req UpdateReportRequest) (ReportResponse, error)
	SubmitReport(ctx context.Context, id string) error
	ApproveReport(ctx context.Context, id string) error
	RejectReport(ctx context.Context, req RejectReportRequest) error
}
