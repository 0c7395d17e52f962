package dailyreport

import (
	"strings"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LineRequest struct {
	LineType    string  `json:"line_type"`
	StartTime   string  `json:"start_time"` // HH:mm:ss
	EndTime     string  `json:"end_time"`   // HH:mm:ss
	WorkOrderID *string `json:"work_order_id,omitempty"`
	OTTypeID    *string `json:"ot_type_id,omitempty"`
	Note        string  `json:"note"`
}

func (r *LineRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LineType, LineTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "line_type",
			Message: "line_type must be one of: " + strings.Join(LineTypeValues, ", "),
		})
	}
	if _, valid := validator.IsValidTimeOfDay(r.StartTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time in HH:mm:ss format",
		})
	}
	if _, valid := validator.IsValidTimeOfDay(r.EndTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time in HH:mm:ss format",
		})
	}
	if r.OTTypeID != nil && LineType(r.LineType) != LineTypeOT {
		errs = append(errs, validator.ValidationError{
			Field:   "ot_type_id",
			Message: "ot_type_id is only allowed on OT lines",
		})
	}

	return errs
}

type CreateReportRequest struct {
	EmployeeID string        `json:"employee_id"`
	ReportDate string        `json:"report_date"` // YYYY-MM-DD
	Lines      []LineRequest `json:"lines"`
}

func (r *CreateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, valid := validator.IsValidDate(r.ReportDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "report_date",
			Message: "report_date must be a valid date in YYYY-MM-DD format",
		})
	}
	for _, line := range r.Lines {
		errs = append(errs, line.Validate()...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateReportRequest replaces the report's lines. Only DRAFT and REJECTED
// reports are editable.
type UpdateReportRequest struct {
	ID    string        `json:"-"`
	Lines []LineRequest `json:"lines"`
}

func (r *UpdateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	for _, line := range r.Lines {
		errs = append(errs, line.Validate()...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectReportRequest struct {
	ID           string `json:"-"`
	RejectReason string `json:"reject_reason"`
}

func (r *RejectReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.RejectReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reject_reason",
			Message: "reject_reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LineResponse struct {
	ID          string          `json:"id"`
	LineType    string          `json:"line_type"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	WorkOrderID *string         `json:"work_order_id"`
	OTTypeID    *string         `json:"ot_type_id,omitempty"`
	Note        string          `json:"note"`
	Hours       decimal.Decimal `json:"hours"`
}

type ReportResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	ReportDate    string          `json:"report_date"`
	Status        string          `json:"status"`
	RejectReason  *string         `json:"reject_reason,omitempty"`
	Lines         []LineResponse  `json:"lines"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OTHours       decimal.Decimal `json:"ot_hours"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}
