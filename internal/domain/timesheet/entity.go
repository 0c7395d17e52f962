package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one day of the standard timesheet produced by the external
// attendance subsystem. Read-only from this service's perspective.
type Entry struct {
	EmployeeID     string
	WorkDate       time.Time
	ActualStatus   ActualStatus
	ScheduledHours *decimal.Decimal
	ActualHours    *decimal.Decimal
	OTHours        decimal.Decimal
	LeaveTypeName  *string
}

// ActualStatus is the attendance subsystem's verdict for a day. Values
// outside the known set pass through the reconciler verbatim.
type ActualStatus string

const (
	StatusWorked      ActualStatus = "WORKED"
	StatusPresent     ActualStatus = "PRESENT"
	StatusLeavePaid   ActualStatus = "LEAVE_PAID"
	StatusLeaveUnpaid ActualStatus = "LEAVE_UNPAID"
	StatusAbsent      ActualStatus = "ABSENT"
)

// WorkOrderEntry is a per-day time booking against a work order. Zero or
// more per employee per day.
type WorkOrderEntry struct {
	EmployeeID   string
	WorkDate     time.Time
	WorkOrderID  string
	WONumber     string
	RegularHours decimal.Decimal
	OTHours      decimal.Decimal
}
