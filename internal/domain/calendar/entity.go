package calendar

import (
	"github.com/shopspring/decimal"
)

// Day status display labels. The UI contract is Thai; the labels are part
// of the wire format, not presentation-only strings.
const (
	StatusWorkingLabel = "ทำงาน"        // worked
	StatusDayOffLabel  = "หยุด"         // day off
	StatusNoDataLabel  = "ยังไม่มีข้อมูล" // no data yet
	StatusAbsentLabel  = "ขาดงาน"       // absent
	StatusLeaveLabel   = "ลา"           // generic leave
)

// WODetailEmpty is the work-order summary placeholder for days without
// bookings.
const WODetailEmpty = "—"

// ShiftDisplayOff marks a roster day that is explicitly off.
const ShiftDisplayOff = "OFF"

// DayRow is the reconciled view of one calendar date: roster, attendance
// and work-order data merged into a single status plus derived hours.
// Derived, never persisted.
type DayRow struct {
	Date            string          `json:"date"` // YYYY-MM-DD
	Status          string          `json:"status"`
	IsLeave         bool            `json:"is_leave"`
	IsWeekend       bool            `json:"is_weekend"`
	RegularHours    decimal.Decimal `json:"regular_hours"`
	OTHours         decimal.Decimal `json:"ot_hours"`
	WODetail        string          `json:"wo_detail"`
	ShiftTypeCode   *string         `json:"shift_type_code"`
	ShiftTime       *string         `json:"shift_time,omitempty"` // "HH:mm:ss-HH:mm:ss"
	RosterIsWorking *bool           `json:"roster_is_working"`
	ShiftDisplay    string          `json:"shift_display,omitempty"`
}

// Summary rolls a period of day rows up into totals.
type Summary struct {
	WorkDays     int             `json:"work_days"`
	LeaveDays    int             `json:"leave_days"`
	TotalRegular decimal.Decimal `json:"total_regular"`
	TotalOT      decimal.Decimal `json:"total_ot"`
}
