package schedule

import (
	"strings"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type CreateWorkScheduleRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`

	// FIXED variant
	WorkingDays        []int   `json:"working_days,omitempty"`
	DefaultShiftTypeID *string `json:"default_shift_type_id,omitempty"`

	// ROTATING variant
	RotationPattern []string `json:"rotation_pattern,omitempty"`
	CycleStartDate  *string  `json:"cycle_start_date,omitempty"` // YYYY-MM-DD
}

func (r *CreateWorkScheduleRequest) Validate() error {
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
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !validator.IsInSlice(r.Type, ScheduleTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(ScheduleTypeValues, ", "),
		})
	}

	// Exactly one variant's fields must be populated, selected by type.
	switch ScheduleType(r.Type) {
	case ScheduleTypeFixed:
		errs = append(errs, r.validateFixed()...)
	case ScheduleTypeRotating:
		errs = append(errs, r.validateRotating()...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CreateWorkScheduleRequest) validateFixed() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if len(r.WorkingDays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days",
			Message: "working_days is required for FIXED schedules",
		})
	}
	seen := map[int]bool{}
	for _, day := range r.WorkingDays {
		if !validator.IsValidISOWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days entries must be between 1 (Monday) and 7 (Sunday)",
			})
			break
		}
		if seen[day] {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days must not contain duplicates",
			})
			break
		}
		seen[day] = true
	}
	if r.DefaultShiftTypeID == nil || validator.IsEmpty(*r.DefaultShiftTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_shift_type_id",
			Message: "default_shift_type_id is required for FIXED schedules",
		})
	}
	if len(r.RotationPattern) > 0 || r.CycleStartDate != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "rotation_pattern",
			Message: "rotation fields must not be set on a FIXED schedule",
		})
	}

	return errs
}

func (r *CreateWorkScheduleRequest) validateRotating() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if len(r.RotationPattern) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rotation_pattern",
			Message: "rotation_pattern is required for ROTATING schedules",
		})
	}
	for _, entry := range r.RotationPattern {
		if entry != RotationOff && !validator.IsValidCode(entry) {
			errs = append(errs, validator.ValidationError{
				Field:   "rotation_pattern",
				Message: "rotation_pattern entries must be shift type codes or \"OFF\"",
			})
			break
		}
	}
	if r.CycleStartDate == nil || validator.IsEmpty(*r.CycleStartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "cycle_start_date",
			Message: "cycle_start_date is required for ROTATING schedules",
		})
	} else if _, valid := validator.IsValidDate(*r.CycleStartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "cycle_start_date",
			Message: "cycle_start_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if len(r.WorkingDays) > 0 || r.DefaultShiftTypeID != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days",
			Message: "fixed-schedule fields must not be set on a ROTATING schedule",
		})
	}

	return errs
}

// UpdateWorkScheduleRequest updates a schedule definition. Code and type are
// immutable after creation.
type UpdateWorkScheduleRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`

	WorkingDays        []int    `json:"working_days,omitempty"`
	DefaultShiftTypeID *string  `json:"default_shift_type_id,omitempty"`
	RotationPattern    []string `json:"rotation_pattern,omitempty"`
	CycleStartDate     *string  `json:"cycle_start_date,omitempty"`
}

func (r *UpdateWorkScheduleRequest) Validate() error {
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
	for _, day := range r.WorkingDays {
		if !validator.IsValidISOWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days entries must be between 1 (Monday) and 7 (Sunday)",
			})
			break
		}
	}
	for _, entry := range r.RotationPattern {
		if entry != RotationOff && !validator.IsValidCode(entry) {
			errs = append(errs, validator.ValidationError{
				Field:   "rotation_pattern",
				Message: "rotation_pattern entries must be shift type codes or \"OFF\"",
			})
			break
		}
	}
	if r.CycleStartDate != nil {
		if _, valid := validator.IsValidDate(*r.CycleStartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "cycle_start_date",
				Message: "cycle_start_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkScheduleResponse struct {
	ID                 string   `json:"id"`
	Code               string   `json:"code"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	IsActive           bool     `json:"is_active"`
	WorkingDays        []int    `json:"working_days,omitempty"`
	DefaultShiftTypeID *string  `json:"default_shift_type_id,omitempty"`
	RotationPattern    []string `json:"rotation_pattern,omitempty"`
	CycleStartDate     *string  `json:"cycle_start_date,omitempty"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

type ListWorkScheduleResponse struct {
	TotalCount    int64                  `json:"total_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	WorkSchedules []WorkScheduleResponse `json:"work_schedules"`
}

type WorkScheduleFilter struct {
	Name     *string `json:"name,omitempty"`
	Type     *string `json:"type,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *WorkScheduleFilter) Validate() error {
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
	if f.Type != nil && !validator.IsInSlice(*f.Type, ScheduleTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(ScheduleTypeValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
