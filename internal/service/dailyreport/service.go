package dailyreport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type dailyReportServiceImpl struct {
	reportRepo   dailyreport.Repository
	employeeRepo employee.EmployeeRepository
}

func NewDailyReportService(
	reportRepo dailyreport.Repository,
	employeeRepo employee.EmployeeRepository,
) dailyreport.Service {
	return &dailyReportServiceImpl{
		reportRepo:   reportRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateReport implements dailyreport.Service. One report per employee per
// date; the report starts in DRAFT.
func (s *dailyReportServiceImpl) CreateReport(ctx context.Context, req dailyreport.CreateReportRequest) (dailyreport.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return dailyreport.ReportResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dailyreport.ReportResponse{}, employee.ErrEmployeeNotFound
		}
		return dailyreport.ReportResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	reportDate, _ := time.Parse(dateLayout, req.ReportDate)
	report := dailyreport.DailyReport{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		ReportDate: reportDate,
		Status:     dailyreport.StatusDraft,
	}
	report.Lines = buildLines(report.ID, req.Lines)

	created, err := s.reportRepo.Create(ctx, report)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return dailyreport.ReportResponse{}, dailyreport.ErrReportExists
			}
		}
		return dailyreport.ReportResponse{}, fmt.Errorf("failed to create daily report: %w", err)
	}

	return mapReportToResponse(created), nil
}

// GetReport implements dailyreport.Service.
func (s *dailyReportServiceImpl) GetReport(ctx context.Context, id string) (dailyreport.ReportResponse, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dailyreport.ReportResponse{}, dailyreport.ErrReportNotFound
		}
		return dailyreport.ReportResponse{}, err
	}

	return mapReportToResponse(report), nil
}

// GetReportByEmployeeAndDate implements dailyreport.Service.
func (s *dailyReportServiceImpl) GetReportByEmployeeAndDate(ctx context.Context, employeeID, reportDate string) (dailyreport.ReportResponse, error) {
	date, err := time.Parse(dateLayout, reportDate)
	if err != nil {
		return dailyreport.ReportResponse{}, fmt.Errorf("invalid report date %q: %w", reportDate, err)
	}

	report, err := s.reportRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dailyreport.ReportResponse{}, dailyreport.ErrReportNotFound
		}
		return dailyreport.ReportResponse{}, err
	}

	return mapReportToResponse(report), nil
}

// UpdateReport implements dailyreport.Service. Replaces the full line set;
// only DRAFT and REJECTED reports are editable.
func (s *dailyReportServiceImpl) UpdateReport(ctx context.Context, req dailyreport.UpdateReportRequest) (dailyreport.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return dailyreport.ReportResponse{}, err
	}

	report, err := s.reportRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dailyreport.ReportResponse{}, dailyreport.ErrReportNotFound
		}
		return dailyreport.ReportResponse{}, err
	}
	if !report.Status.Editable() {
		return dailyreport.ReportResponse{}, dailyreport.ErrReportNotEditable
	}

	lines := buildLines(report.ID, req.Lines)
	if err := s.reportRepo.ReplaceLines(ctx, report.ID, lines); err != nil {
		return dailyreport.ReportResponse{}, fmt.Errorf("failed to replace report lines: %w", err)
	}

	report.Lines = lines
	return mapReportToResponse(report), nil
}

// SubmitReport implements dailyreport.Service. Submission also moves a
// previously rejected report back into review.
func (s *dailyReportServiceImpl) SubmitReport(ctx context.Context, id string) error {
	report, err := s.loadReport(ctx, id)
	if err != nil {
		return err
	}
	if !report.Status.Editable() {
		return dailyreport.ErrReportNotEditable
	}

	return s.updateStatus(ctx, id, dailyreport.StatusSubmitted, nil)
}

// ApproveReport implements dailyreport.Service.
func (s *dailyReportServiceImpl) ApproveReport(ctx context.Context, id string) error {
	report, err := s.loadReport(ctx, id)
	if err != nil {
		return err
	}
	if report.Status == dailyreport.StatusApproved {
		return dailyreport.ErrReportAlreadyFinal
	}
	if report.Status != dailyreport.StatusSubmitted {
		return dailyreport.ErrReportNotSubmitted
	}

	return s.updateStatus(ctx, id, dailyreport.StatusApproved, nil)
}

// RejectReport implements dailyreport.Service. The reason is stored so the
// employee sees what to fix before resubmitting.
func (s *dailyReportServiceImpl) RejectReport(ctx context.Context, req dailyreport.RejectReportRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	report, err := s.loadReport(ctx, req.ID)
	if err != nil {
		return err
	}
	if report.Status == dailyreport.StatusApproved {
		return dailyreport.ErrReportAlreadyFinal
	}
	if report.Status != dailyreport.StatusSubmitted {
		return dailyreport.ErrReportNotSubmitted
	}

	return s.updateStatus(ctx, req.ID, dailyreport.StatusRejected, &req.RejectReason)
}

func (s *dailyReportServiceImpl) loadReport(ctx context.Context, id string) (dailyreport.DailyReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dailyreport.DailyReport{}, dailyreport.ErrReportNotFound
		}
		return dailyreport.DailyReport{}, err
	}
	return report, nil
}

func (s *dailyReportServiceImpl) updateStatus(ctx context.Context, id string, status dailyreport.Status, rejectReason *string) error {
	if err := s.reportRepo.UpdateStatus(ctx, id, status, rejectReason); err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}
	return nil
}

func buildLines(reportID string, requests []dailyreport.LineRequest) []dailyreport.Line {
	lines := make([]dailyreport.Line, 0, len(requests))
	for _, req := range requests {
		lines = append(lines, dailyreport.Line{
			ID:            uuid.NewString(),
			DailyReportID: reportID,
			LineType:      dailyreport.LineType(req.LineType),
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			WorkOrderID:   req.WorkOrderID,
			OTTypeID:      req.OTTypeID,
			Note:          req.Note,
		})
	}
	return lines
}

func mapReportToResponse(report dailyreport.DailyReport) dailyreport.ReportResponse {
	lines := make([]dailyreport.LineResponse, 0, len(report.Lines))
	regularHours := decimal.Zero
	otHours := decimal.Zero
	for _, line := range report.Lines {
		hours := calendar.LineHours(line.StartTime, line.EndTime)
		switch line.LineType {
		case dailyreport.LineTypeOT:
			otHours = otHours.Add(hours)
		default:
			regularHours = regularHours.Add(hours)
		}
		lines = append(lines, dailyreport.LineResponse{
			ID:          line.ID,
			LineType:    string(line.LineType),
			StartTime:   line.StartTime,
			EndTime:     line.EndTime,
			WorkOrderID: line.WorkOrderID,
			OTTypeID:    line.OTTypeID,
			Note:        line.Note,
			Hours:       hours,
		})
	}

	return dailyreport.ReportResponse{
		ID:           report.ID,
		EmployeeID:   report.EmployeeID,
		ReportDate:   report.ReportDate.Format(dateLayout),
		Status:       string(report.Status),
		RejectReason: report.RejectReason,
		Lines:        lines,
		RegularHours: regularHours,
		OTHours:      otHours,
		CreatedAt:    report.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    report.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
