package dailyreport

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	reports map[string]dailyreport.DailyReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[string]dailyreport.DailyReport{}}
}

func (f *fakeReportRepo) Create(ctx context.Context, report dailyreport.DailyReport) (dailyreport.DailyReport, error) {
	for _, existing := range f.reports {
		if existing.EmployeeID == report.EmployeeID && existing.ReportDate.Equal(report.ReportDate) {
			return dailyreport.DailyReport{}, &pgconn.PgError{Code: "23505"}
		}
	}
	f.reports[report.ID] = report
	return report, nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (dailyreport.DailyReport, error) {
	report, ok := f.reports[id]
	if !ok {
		return dailyreport.DailyReport{}, pgx.ErrNoRows
	}
	return report, nil
}

func (f *fakeReportRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, reportDate time.Time) (dailyreport.DailyReport, error) {
	for _, report := range f.reports {
		if report.EmployeeID == employeeID && report.ReportDate.Equal(reportDate) {
			return report, nil
		}
	}
	return dailyreport.DailyReport{}, pgx.ErrNoRows
}

func (f *fakeReportRepo) ReplaceLines(ctx context.Context, reportID string, lines []dailyreport.Line) error {
	report, ok := f.reports[reportID]
	if !ok {
		return pgx.ErrNoRows
	}
	report.Lines = lines
	f.reports[reportID] = report
	return nil
}

func (f *fakeReportRepo) UpdateStatus(ctx context.Context, id string, status dailyreport.Status, rejectReason *string) error {
	report, ok := f.reports[id]
	if !ok {
		return pgx.ErrNoRows
	}
	report.Status = status
	report.RejectReason = rejectReason
	f.reports[id] = report
	return nil
}

type fakeEmployeeRepo struct {
	ids map[string]bool
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !f.ids[id] {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return employee.Employee{ID: id, IsActive: true}, nil
}

func (f *fakeEmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	panic("not used")
}

func (f *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	panic("not used")
}

func newTestService(repo *fakeReportRepo) dailyreport.Service {
	return NewDailyReportService(repo, &fakeEmployeeRepo{ids: map[string]bool{"emp-1": true}})
}

func validCreateRequest() dailyreport.CreateReportRequest {
	woID := "wo-1"
	return dailyreport.CreateReportRequest{
		EmployeeID: "emp-1",
		ReportDate: "2024-03-04",
		Lines: []dailyreport.LineRequest{
			{LineType: "REGULAR", StartTime: "08:00:00", EndTime: "12:00:00", WorkOrderID: &woID},
			{LineType: "REGULAR", StartTime: "13:00:00", EndTime: "17:00:00", WorkOrderID: &woID},
			{LineType: "OT", StartTime: "17:30:00", EndTime: "19:00:00", WorkOrderID: &woID},
		},
	}
}

func TestCreateReport_StartsAsDraftWithTotals(t *testing.T) {
	svc := newTestService(newFakeReportRepo())

	resp, err := svc.CreateReport(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, string(dailyreport.StatusDraft), resp.Status)
	require.Len(t, resp.Lines, 3)
	assert.True(t, resp.RegularHours.Equal(decimal.NewFromInt(8)), "got %s", resp.RegularHours)
	assert.True(t, resp.OTHours.Equal(decimal.NewFromFloat(1.5)), "got %s", resp.OTHours)
}

func TestCreateReport_Failures(t *testing.T) {
	repo := newFakeReportRepo()
	svc := newTestService(repo)

	_, err := svc.CreateReport(context.Background(), validCreateRequest())
	require.NoError(t, err)

	t.Run("duplicate date", func(t *testing.T) {
		_, err := svc.CreateReport(context.Background(), validCreateRequest())
		assert.ErrorIs(t, err, dailyreport.ErrReportExists)
	})

	t.Run("unknown employee", func(t *testing.T) {
		req := validCreateRequest()
		req.EmployeeID = "emp-ghost"
		_, err := svc.CreateReport(context.Background(), req)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("ot type on regular line", func(t *testing.T) {
		otType := "ot-1"
		req := validCreateRequest()
		req.ReportDate = "2024-03-05"
		req.Lines[0].OTTypeID = &otType
		_, err := svc.CreateReport(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestUpdateReport_OnlyWhileEditable(t *testing.T) {
	repo := newFakeReportRepo()
	svc := newTestService(repo)

	created, err := svc.CreateReport(context.Background(), validCreateRequest())
	require.NoError(t, err)

	update := dailyreport.UpdateReportRequest{
		ID: created.ID,
		Lines: []dailyreport.LineRequest{
			{LineType: "REGULAR", StartTime: "09:00:00", EndTime: "17:00:00"},
		},
	}

	resp, err := svc.UpdateReport(context.Background(), update)
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.RegularHours.Equal(decimal.NewFromInt(8)))

	require.NoError(t, svc.SubmitReport(context.Background(), created.ID))

	_, err = svc.UpdateReport(context.Background(), update)
	assert.ErrorIs(t, err, dailyreport.ErrReportNotEditable)
}

func TestReportLifecycle_RejectReopensForEditing(t *testing.T) {
	repo := newFakeReportRepo()
	svc := newTestService(repo)

	created, err := svc.CreateReport(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Approving a draft is premature.
	assert.ErrorIs(t, svc.ApproveReport(context.Background(), created.ID), dailyreport.ErrReportNotSubmitted)

	require.NoError(t, svc.SubmitReport(context.Background(), created.ID))
	require.NoError(t, svc.RejectReport(context.Background(), dailyreport.RejectReportRequest{
		ID:           created.ID,
		RejectReason: "missing afternoon work order",
	}))

	rejected, err := svc.GetReport(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(dailyreport.StatusRejected), rejected.Status)
	require.NotNil(t, rejected.RejectReason)
	assert.Equal(t, "missing afternoon work order", *rejected.RejectReason)

	// A rejected report is editable and resubmittable.
	_, err = svc.UpdateReport(context.Background(), dailyreport.UpdateReportRequest{
		ID: created.ID,
		Lines: []dailyreport.LineRequest{
			{LineType: "REGULAR", StartTime: "08:00:00", EndTime: "17:00:00"},
		},
	})
	require.NoError(t, err)
	require.NoError(t, svc.SubmitReport(context.Background(), created.ID))
	require.NoError(t, svc.ApproveReport(context.Background(), created.ID))

	// Approval is terminal.
	assert.ErrorIs(t, svc.SubmitReport(context.Background(), created.ID), dailyreport.ErrReportNotEditable)
	assert.ErrorIs(t, svc.RejectReport(context.Background(), dailyreport.RejectReportRequest{
		ID:           created.ID,
		RejectReason: "too late",
	}), dailyreport.ErrReportAlreadyFinal)
}

func TestGetReportByEmployeeAndDate(t *testing.T) {
	repo := newFakeReportRepo()
	svc := newTestService(repo)

	created, err := svc.CreateReport(context.Background(), validCreateRequest())
	require.NoError(t, err)

	found, err := svc.GetReportByEmployeeAndDate(context.Background(), "emp-1", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetReportByEmployeeAndDate(context.Background(), "emp-1", "2024-03-05")
	assert.ErrorIs(t, err, dailyreport.ErrReportNotFound)
}
