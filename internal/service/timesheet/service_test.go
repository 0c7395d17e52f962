package timesheet

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRosterRepo struct {
	entries []roster.Entry
	err     error
}

func (f *fakeRosterRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]roster.Entry, error) {
	return f.entries, f.err
}

func (f *fakeRosterRepo) BulkUpsert(ctx context.Context, entries []roster.Entry, overwrite bool) (int, error) {
	panic("not used")
}

func (f *fakeRosterRepo) Override(ctx context.Context, entry roster.Entry) (roster.Entry, error) {
	panic("not used")
}

type fakeTimesheetRepo struct {
	entries []timesheet.Entry
	err     error
}

func (f *fakeTimesheetRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]timesheet.Entry, error) {
	return f.entries, f.err
}

type fakeWorkOrderRepo struct {
	entries []timesheet.WorkOrderEntry
	err     error
}

func (f *fakeWorkOrderRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]timesheet.WorkOrderEntry, error) {
	return f.entries, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDate(day int) time.Time {
	return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestGetCalendar_MergesAllSources(t *testing.T) {
	scheduled := decimal.NewFromInt(8)
	rosterRepo := &fakeRosterRepo{entries: []roster.Entry{
		{EmployeeID: "emp-1", RosterDate: testDate(4), IsWorkingDay: true},
	}}
	timesheetRepo := &fakeTimesheetRepo{entries: []timesheet.Entry{
		{EmployeeID: "emp-1", WorkDate: testDate(4), ActualStatus: timesheet.StatusWorked, ScheduledHours: &scheduled, OTHours: decimal.Zero},
	}}
	workOrderRepo := &fakeWorkOrderRepo{entries: []timesheet.WorkOrderEntry{
		{EmployeeID: "emp-1", WorkDate: testDate(4), WONumber: "WO-7", RegularHours: decimal.NewFromInt(8), OTHours: decimal.Zero},
	}}

	svc := NewCalendarService(rosterRepo, timesheetRepo, workOrderRepo, nil, discardLogger())

	resp, err := svc.GetCalendar(context.Background(), CalendarRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-03-04",
		PeriodEnd:   "2024-03-06",
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	monday := resp.Days[0]
	assert.Equal(t, "2024-03-04", monday.Date)
	assert.Equal(t, calendar.StatusWorkingLabel, monday.Status)
	assert.Equal(t, "WO-7(8)", monday.WODetail)
	assert.Equal(t, 1, resp.Summary.WorkDays)
	assert.True(t, resp.Summary.TotalRegular.Equal(decimal.NewFromInt(8)))
}

func TestGetCalendar_FailedFetchDegradesToEmpty(t *testing.T) {
	scheduled := decimal.NewFromInt(8)
	rosterRepo := &fakeRosterRepo{err: errors.New("connection reset")}
	timesheetRepo := &fakeTimesheetRepo{entries: []timesheet.Entry{
		{EmployeeID: "emp-1", WorkDate: testDate(4), ActualStatus: timesheet.StatusWorked, ScheduledHours: &scheduled, OTHours: decimal.Zero},
	}}
	workOrderRepo := &fakeWorkOrderRepo{err: errors.New("timeout")}

	svc := NewCalendarService(rosterRepo, timesheetRepo, workOrderRepo, nil, discardLogger())

	resp, err := svc.GetCalendar(context.Background(), CalendarRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-03-04",
		PeriodEnd:   "2024-03-05",
	})
	// The calendar still builds from the one surviving collection.
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, calendar.StatusWorkingLabel, resp.Days[0].Status)
	assert.Equal(t, calendar.WODetailEmpty, resp.Days[0].WODetail)
	assert.Nil(t, resp.Days[0].RosterIsWorking)
}

func TestGetCalendar_AllFetchesFailYieldsEmptyBaseline(t *testing.T) {
	rosterRepo := &fakeRosterRepo{err: errors.New("down")}
	timesheetRepo := &fakeTimesheetRepo{err: errors.New("down")}
	workOrderRepo := &fakeWorkOrderRepo{err: errors.New("down")}

	svc := NewCalendarService(rosterRepo, timesheetRepo, workOrderRepo, []int{1, 2, 3, 4, 5}, discardLogger())

	// 2024-03-02 is a Saturday.
	resp, err := svc.GetCalendar(context.Background(), CalendarRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-03-01",
		PeriodEnd:   "2024-03-03",
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, calendar.StatusNoDataLabel, resp.Days[0].Status)
	assert.Equal(t, calendar.StatusDayOffLabel, resp.Days[1].Status)
	assert.Equal(t, 0, resp.Summary.WorkDays)
}

func TestCalendarRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     CalendarRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     CalendarRequest{EmployeeID: "emp-1", PeriodStart: "2024-03-01", PeriodEnd: "2024-04-01"},
			wantErr: false,
		},
		{
			name:    "missing employee",
			req:     CalendarRequest{PeriodStart: "2024-03-01", PeriodEnd: "2024-04-01"},
			wantErr: true,
		},
		{
			name:    "inverted range",
			req:     CalendarRequest{EmployeeID: "emp-1", PeriodStart: "2024-04-01", PeriodEnd: "2024-03-01"},
			wantErr: true,
		},
		{
			name:    "empty range",
			req:     CalendarRequest{EmployeeID: "emp-1", PeriodStart: "2024-03-01", PeriodEnd: "2024-03-01"},
			wantErr: true,
		},
		{
			name:    "bad date",
			req:     CalendarRequest{EmployeeID: "emp-1", PeriodStart: "03/01/2024", PeriodEnd: "2024-04-01"},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
