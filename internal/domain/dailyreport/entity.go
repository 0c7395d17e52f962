package dailyreport

import "time"

type DailyReport struct {
	ID           string
	EmployeeID   string
	ReportDate   time.Time
	Status       Status
	RejectReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Lines []Line
}

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
)

// Editable reports whether the report may still be modified. A rejected
// report re-enters draft semantics until resubmitted.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusRejected
}

type Line struct {
	ID            string
	DailyReportID string
	LineType      LineType
	StartTime     string // HH:mm:ss
	EndTime       string // HH:mm:ss
	WorkOrderID   *string
	OTTypeID      *string // OT lines only
	Note          string
}

type LineType string

const (
	LineTypeRegular LineType = "REGULAR"
	LineTypeOT      LineType = "OT"
)

var LineTypeValues = []string{
	string(LineTypeRegular),
	string(LineTypeOT),
}
