package shift

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateShiftTypeRequest struct {
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	StartTime    string           `json:"start_time"` // HH:mm:ss
	EndTime      string           `json:"end_time"`   // HH:mm:ss
	BreakMinutes *int             `json:"break_minutes"`
	WorkingHours *decimal.Decimal `json:"working_hours"`
}

func (r *CreateShiftTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 2-20 uppercase letters, digits, '_' or '-'",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if _, valid := validator.IsValidTimeOfDay(r.StartTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time in HH:mm:ss format",
		})
	}
	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	} else if _, valid := validator.IsValidTimeOfDay(r.EndTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time in HH:mm:ss format",
		})
	}
	if r.BreakMinutes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes is required",
		})
	}
	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must be a non-negative number",
		})
	}
	if r.WorkingHours == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "working_hours",
			Message: "working_hours is required",
		})
	}
	if r.WorkingHours != nil && r.WorkingHours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "working_hours",
			Message: "working_hours must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsOvernight reports whether the shift ends on the next calendar day.
// Valid only after Validate has passed.
func (r *CreateShiftTypeRequest) IsOvernight() bool {
	start, _ := time.Parse("15:04:05", r.StartTime)
	end, _ := time.Parse("15:04:05", r.EndTime)
	return end.Before(start)
}

type UpdateShiftTypeRequest struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name,omitempty"`
	StartTime    *string          `json:"start_time,omitempty"`
	EndTime      *string          `json:"end_time,omitempty"`
	BreakMinutes *int             `json:"break_minutes,omitempty"`
	WorkingHours *decimal.Decimal `json:"working_hours,omitempty"`
}

func (r *UpdateShiftTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.StartTime != nil {
		if _, valid := validator.IsValidTimeOfDay(*r.StartTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be a valid time in HH:mm:ss format",
			})
		}
	}
	if r.EndTime != nil {
		if _, valid := validator.IsValidTimeOfDay(*r.EndTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be a valid time in HH:mm:ss format",
			})
		}
	}
	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must be a non-negative number",
		})
	}
	if r.WorkingHours != nil && r.WorkingHours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "working_hours",
			Message: "working_hours must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftTypeResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	StartTime    string          `json:"start_time"`
	EndTime      string          `json:"end_time"`
	BreakMinutes int             `json:"break_minutes"`
	WorkingHours decimal.Decimal `json:"working_hours"`
	IsOvernight  bool            `json:"is_overnight"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type ListShiftTypeResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	ShiftTypes []ShiftTypeResponse `json:"shift_types"`
}

type ShiftTypeFilter struct {
	Name *string `json:"name,omitempty"`
	Code *string `json:"code,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ShiftTypeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
