package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DefaultWorkingDays is the organization fallback used when a date has no
// roster entry: Monday through Friday.
var DefaultWorkingDays = []int{1, 2, 3, 4, 5}

// DaySources bundles everything known about a single date before
// reconciliation.
type DaySources struct {
	Roster     *roster.Entry
	Timesheet  *timesheet.Entry
	WorkOrders []timesheet.WorkOrderEntry
}

// statusOverride is the outcome a rule proposes for a day.
type statusOverride struct {
	Status       string
	IsLeave      bool
	RegularHours decimal.Decimal
	OTHours      decimal.Decimal
}

// statusRule inspects the day's sources and proposes a status override.
// Rules are evaluated in priority order; the first match wins, so
// precedence is data, not control flow.
type statusRule struct {
	name  string
	apply func(src DaySources) (statusOverride, bool)
}

var statusRules = []statusRule{
	{name: "leave", apply: leaveRule},
	{name: "worked", apply: workedRule},
	{name: "absent", apply: absentRule},
	{name: "passthrough", apply: passthroughRule},
}

func leaveRule(src DaySources) (statusOverride, bool) {
	entry := src.Timesheet
	if entry == nil {
		return statusOverride{}, false
	}
	if entry.ActualStatus != timesheet.StatusLeavePaid && entry.ActualStatus != timesheet.StatusLeaveUnpaid {
		return statusOverride{}, false
	}
	status := StatusLeaveLabel
	if entry.LeaveTypeName != nil && *entry.LeaveTypeName != "" {
		status = *entry.LeaveTypeName
	}
	return statusOverride{Status: status, IsLeave: true}, true
}

func workedRule(src DaySources) (statusOverride, bool) {
	entry := src.Timesheet
	if entry == nil {
		return statusOverride{}, false
	}
	if entry.ActualStatus != timesheet.StatusWorked && entry.ActualStatus != timesheet.StatusPresent {
		return statusOverride{}, false
	}
	regular := decimal.Zero
	if entry.ScheduledHours != nil {
		regular = *entry.ScheduledHours
	} else if entry.ActualHours != nil {
		regular = *entry.ActualHours
	}
	return statusOverride{
		Status:       StatusWorkingLabel,
		RegularHours: regular,
		OTHours:      entry.OTHours,
	}, true
}

func absentRule(src DaySources) (statusOverride, bool) {
	entry := src.Timesheet
	if entry == nil || entry.ActualStatus != timesheet.StatusAbsent {
		return statusOverride{}, false
	}
	return statusOverride{Status: StatusAbsentLabel}, true
}

// passthroughRule surfaces any other non-empty attendance status verbatim.
func passthroughRule(src DaySources) (statusOverride, bool) {
	entry := src.Timesheet
	if entry == nil || entry.ActualStatus == "" {
		return statusOverride{}, false
	}
	return statusOverride{Status: string(entry.ActualStatus)}, true
}

// BuildCalendar merges roster, standard-timesheet and work-order data into
// one row per date in [periodStart, periodEnd), ordered ascending. Pure:
// inputs are already-fetched snapshots, missing collections are simply
// empty slices. A nil orgWorkingDays falls back to Monday-Friday.
func BuildCalendar(
	periodStart, periodEnd time.Time,
	rosterEntries []roster.Entry,
	timesheetEntries []timesheet.Entry,
	workOrderEntries []timesheet.WorkOrderEntry,
	orgWorkingDays []int,
) []DayRow {
	if len(orgWorkingDays) == 0 {
		orgWorkingDays = DefaultWorkingDays
	}

	rosterByDate := make(map[string]roster.Entry, len(rosterEntries))
	for _, entry := range rosterEntries {
		rosterByDate[entry.RosterDate.Format(dateLayout)] = entry
	}
	timesheetByDate := make(map[string]timesheet.Entry, len(timesheetEntries))
	for _, entry := range timesheetEntries {
		timesheetByDate[entry.WorkDate.Format(dateLayout)] = entry
	}
	workOrdersByDate := make(map[string][]timesheet.WorkOrderEntry)
	for _, entry := range workOrderEntries {
		key := entry.WorkDate.Format(dateLayout)
		workOrdersByDate[key] = append(workOrdersByDate[key], entry)
	}

	var rows []DayRow
	for date := periodStart; date.Before(periodEnd); date = date.AddDate(0, 0, 1) {
		key := date.Format(dateLayout)
		src := DaySources{WorkOrders: workOrdersByDate[key]}
		if entry, ok := rosterByDate[key]; ok {
			src.Roster = &entry
		}
		if entry, ok := timesheetByDate[key]; ok {
			src.Timesheet = &entry
		}
		rows = append(rows, buildDay(date, src, orgWorkingDays))
	}
	return rows
}

func buildDay(date time.Time, src DaySources, orgWorkingDays []int) DayRow {
	row := DayRow{
		Date:         date.Format(dateLayout),
		RegularHours: decimal.Zero,
		OTHours:      decimal.Zero,
		WODetail:     summarizeWorkOrders(src.WorkOrders),
	}

	// Baseline: the roster decides working/off; without a roster entry the
	// organization working-day fallback does.
	if src.Roster != nil {
		row.IsWeekend = !src.Roster.IsWorkingDay
	} else {
		weekday := schedule.ISOWeekday(date)
		row.IsWeekend = true
		for _, day := range orgWorkingDays {
			if day == weekday {
				row.IsWeekend = false
				break
			}
		}
	}
	if row.IsWeekend {
		row.Status = StatusDayOffLabel
	} else {
		row.Status = StatusNoDataLabel
	}

	// The attendance record, when present, always wins over the baseline:
	// a roster OFF day with a WORKED timesheet entry shows as worked.
	for _, rule := range statusRules {
		if override, ok := rule.apply(src); ok {
			row.Status = override.Status
			row.IsLeave = override.IsLeave
			row.RegularHours = override.RegularHours
			row.OTHours = override.OTHours
			break
		}
	}

	applyShiftFields(&row, src.Roster)
	return row
}

func applyShiftFields(row *DayRow, entry *roster.Entry) {
	if entry == nil {
		return
	}
	isWorking := entry.IsWorkingDay
	row.RosterIsWorking = &isWorking
	row.ShiftTypeCode = entry.ShiftTypeCode
	if entry.StartTime != nil && entry.EndTime != nil {
		shiftTime := *entry.StartTime + "-" + *entry.EndTime
		row.ShiftTime = &shiftTime
	}
	switch {
	case entry.ShiftTypeCode != nil:
		row.ShiftDisplay = *entry.ShiftTypeCode
	case !entry.IsWorkingDay:
		row.ShiftDisplay = ShiftDisplayOff
	}
}

// summarizeWorkOrders renders the day's bookings as
// "WO-1001(8) WO-1002(2)+1.5OT"; an empty list renders as the em-dash
// placeholder.
func summarizeWorkOrders(entries []timesheet.WorkOrderEntry) string {
	if len(entries) == 0 {
		return WODetailEmpty
	}
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		part := fmt.Sprintf("%s(%s)", entry.WONumber, entry.RegularHours.String())
		if entry.OTHours.IsPositive() {
			part += fmt.Sprintf("+%sOT", entry.OTHours.String())
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}
