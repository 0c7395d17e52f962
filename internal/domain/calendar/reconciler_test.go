package calendar

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func findRow(t *testing.T, rows []DayRow, date string) DayRow {
	t.Helper()
	for _, row := range rows {
		if row.Date == date {
			return row
		}
	}
	t.Fatalf("no row for date %s", date)
	return DayRow{}
}

func TestBuildCalendar_OneRowPerDateAscending(t *testing.T) {
	rows := BuildCalendar(day(2024, time.March, 1), day(2024, time.April, 1), nil, nil, nil, nil)

	require.Len(t, rows, 31)
	assert.Equal(t, "2024-03-01", rows[0].Date)
	assert.Equal(t, "2024-03-31", rows[30].Date)
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i-1].Date, rows[i].Date)
	}
}

func TestBuildCalendar_FallbackWeekendWithoutRoster(t *testing.T) {
	// 2024-03-02 is a Saturday; with the default Mon-Fri fallback it is a
	// day off, the Friday before is simply "no data yet".
	rows := BuildCalendar(day(2024, time.March, 1), day(2024, time.March, 4), nil, nil, nil, []int{1, 2, 3, 4, 5})

	friday := findRow(t, rows, "2024-03-01")
	assert.False(t, friday.IsWeekend)
	assert.Equal(t, StatusNoDataLabel, friday.Status)

	saturday := findRow(t, rows, "2024-03-02")
	assert.True(t, saturday.IsWeekend)
	assert.Equal(t, StatusDayOffLabel, saturday.Status)
}

func TestBuildCalendar_RosterDecidesBaseline(t *testing.T) {
	// A roster OFF entry on a weekday beats the org fallback.
	entries := []roster.Entry{
		{EmployeeID: "emp-1", RosterDate: day(2024, time.March, 4), IsWorkingDay: false},
	}
	rows := BuildCalendar(day(2024, time.March, 4), day(2024, time.March, 5), entries, nil, nil, nil)

	monday := findRow(t, rows, "2024-03-04")
	assert.True(t, monday.IsWeekend)
	assert.Equal(t, StatusDayOffLabel, monday.Status)
	assert.Equal(t, ShiftDisplayOff, monday.ShiftDisplay)
	require.NotNil(t, monday.RosterIsWorking)
	assert.False(t, *monday.RosterIsWorking)
}

func TestBuildCalendar_TimesheetWorkedBeatsRosterOff(t *testing.T) {
	rosterEntries := []roster.Entry{
		{EmployeeID: "emp-1", RosterDate: day(2024, time.March, 4), IsWorkingDay: false},
	}
	timesheetEntries := []timesheet.Entry{
		{
			EmployeeID:     "emp-1",
			WorkDate:       day(2024, time.March, 4),
			ActualStatus:   timesheet.StatusWorked,
			ScheduledHours: decPtr(8),
			OTHours:        decimal.NewFromInt(2),
		},
	}

	rows := BuildCalendar(day(2024, time.March, 4), day(2024, time.March, 5), rosterEntries, timesheetEntries, nil, nil)

	monday := findRow(t, rows, "2024-03-04")
	assert.Equal(t, StatusWorkingLabel, monday.Status)
	assert.True(t, monday.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, monday.OTHours.Equal(decimal.NewFromInt(2)))
	// The roster-derived shift fields survive the status override.
	assert.True(t, monday.IsWeekend)
	assert.Equal(t, ShiftDisplayOff, monday.ShiftDisplay)
}

func TestBuildCalendar_WorkedFallsBackToActualHours(t *testing.T) {
	timesheetEntries := []timesheet.Entry{
		{
			EmployeeID:   "emp-1",
			WorkDate:     day(2024, time.March, 5),
			ActualStatus: timesheet.StatusPresent,
			ActualHours:  decPtr(7.5),
			OTHours:      decimal.Zero,
		},
	}

	rows := BuildCalendar(day(2024, time.March, 5), day(2024, time.March, 6), nil, timesheetEntries, nil, nil)

	row := findRow(t, rows, "2024-03-05")
	assert.Equal(t, StatusWorkingLabel, row.Status)
	assert.True(t, row.RegularHours.Equal(decimal.NewFromFloat(7.5)))
}

func TestBuildCalendar_LeaveUsesLeaveTypeName(t *testing.T) {
	timesheetEntries := []timesheet.Entry{
		{
			EmployeeID:    "emp-1",
			WorkDate:      day(2024, time.March, 5),
			ActualStatus:  timesheet.StatusLeavePaid,
			LeaveTypeName: strPtr("ลาพักร้อน"),
		},
		{
			EmployeeID:   "emp-1",
			WorkDate:     day(2024, time.March, 6),
			ActualStatus: timesheet.StatusLeaveUnpaid,
		},
	}

	rows := BuildCalendar(day(2024, time.March, 5), day(2024, time.March, 7), nil, timesheetEntries, nil, nil)

	named := findRow(t, rows, "2024-03-05")
	assert.Equal(t, "ลาพักร้อน", named.Status)
	assert.True(t, named.IsLeave)

	generic := findRow(t, rows, "2024-03-06")
	assert.Equal(t, StatusLeaveLabel, generic.Status)
	assert.True(t, generic.IsLeave)
	assert.True(t, generic.RegularHours.IsZero())
}

func TestBuildCalendar_AbsentAndPassthrough(t *testing.T) {
	timesheetEntries := []timesheet.Entry{
		{EmployeeID: "emp-1", WorkDate: day(2024, time.March, 5), ActualStatus: timesheet.StatusAbsent},
		{EmployeeID: "emp-1", WorkDate: day(2024, time.March, 6), ActualStatus: timesheet.ActualStatus("HOLIDAY_WORK")},
	}

	rows := BuildCalendar(day(2024, time.March, 5), day(2024, time.March, 7), nil, timesheetEntries, nil, nil)

	assert.Equal(t, StatusAbsentLabel, findRow(t, rows, "2024-03-05").Status)
	assert.Equal(t, "HOLIDAY_WORK", findRow(t, rows, "2024-03-06").Status)
}

func TestBuildCalendar_MissingTimesheetKeepsBaseline(t *testing.T) {
	rosterEntries := []roster.Entry{
		{EmployeeID: "emp-1", RosterDate: day(2024, time.March, 2), IsWorkingDay: false},
	}

	rows := BuildCalendar(day(2024, time.March, 2), day(2024, time.March, 3), rosterEntries, nil, nil, nil)

	// A roster-derived off day is never overridden by missing data.
	row := findRow(t, rows, "2024-03-02")
	assert.Equal(t, StatusDayOffLabel, row.Status)
}

func TestBuildCalendar_WorkOrderSummary(t *testing.T) {
	workOrders := []timesheet.WorkOrderEntry{
		{
			EmployeeID:   "emp-1",
			WorkDate:     day(2024, time.March, 5),
			WONumber:     "WO-1001",
			RegularHours: decimal.NewFromInt(8),
			OTHours:      decimal.Zero,
		},
		{
			EmployeeID:   "emp-1",
			WorkDate:     day(2024, time.March, 5),
			WONumber:     "WO-1002",
			RegularHours: decimal.NewFromInt(2),
			OTHours:      decimal.NewFromFloat(1.5),
		},
	}

	rows := BuildCalendar(day(2024, time.March, 5), day(2024, time.March, 7), nil, nil, workOrders, nil)

	assert.Equal(t, "WO-1001(8) WO-1002(2)+1.5OT", findRow(t, rows, "2024-03-05").WODetail)
	assert.Equal(t, WODetailEmpty, findRow(t, rows, "2024-03-06").WODetail)
}

func TestBuildCalendar_ShiftFieldsCopiedFromRoster(t *testing.T) {
	rosterEntries := []roster.Entry{
		{
			EmployeeID:    "emp-1",
			RosterDate:    day(2024, time.March, 5),
			IsWorkingDay:  true,
			ShiftTypeCode: strPtr("MORNING"),
			StartTime:     strPtr("08:00:00"),
			EndTime:       strPtr("17:00:00"),
		},
	}

	rows := BuildCalendar(day(2024, time.March, 5), day(2024, time.March, 7), rosterEntries, nil, nil, nil)

	withRoster := findRow(t, rows, "2024-03-05")
	require.NotNil(t, withRoster.ShiftTypeCode)
	assert.Equal(t, "MORNING", *withRoster.ShiftTypeCode)
	require.NotNil(t, withRoster.ShiftTime)
	assert.Equal(t, "08:00:00-17:00:00", *withRoster.ShiftTime)
	assert.Equal(t, "MORNING", withRoster.ShiftDisplay)

	withoutRoster := findRow(t, rows, "2024-03-06")
	assert.Nil(t, withoutRoster.ShiftTypeCode)
	assert.Nil(t, withoutRoster.ShiftTime)
	assert.Nil(t, withoutRoster.RosterIsWorking)
	assert.Empty(t, withoutRoster.ShiftDisplay)
}
