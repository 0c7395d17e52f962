package roster

import (
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type GenerateRosterRequest struct {
	EmployeeIDs       []string `json:"employee_ids"`
	StartDate         string   `json:"start_date"` // YYYY-MM-DD
	EndDate           string   `json:"end_date"`   // YYYY-MM-DD
	WorkScheduleID    string   `json:"work_schedule_id"`
	OverwriteExisting bool     `json:"overwrite_existing"`
}

func (r *GenerateRosterRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "employee_ids must not be empty",
		})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_ids",
				Message: "employee_ids must not contain empty values",
			})
			break
		}
	}
	if validator.IsEmpty(r.WorkScheduleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_schedule_id",
			Message: "work_schedule_id is required",
		})
	}

	startDate, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}
	endDate, endValid := validator.IsValidDate(r.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if startValid && endValid && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GenerateRosterResponse struct {
	CreatedCount int `json:"created_count"`
}

type OverrideEntryRequest struct {
	EmployeeID    string  `json:"-"`
	RosterDate    string  `json:"-"` // YYYY-MM-DD, from URL
	ShiftTypeCode *string `json:"shift_type_code"`
	IsWorkingDay  *bool   `json:"is_working_day"`
	StartTime     *string `json:"start_time,omitempty"` // HH:mm:ss
	EndTime       *string `json:"end_time,omitempty"`   // HH:mm:ss
}

func (r *OverrideEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, valid := validator.IsValidDate(r.RosterDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "roster_date",
			Message: "roster_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if r.IsWorkingDay == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "is_working_day",
			Message: "is_working_day is required",
		})
	}
	if r.IsWorkingDay != nil && *r.IsWorkingDay && (r.ShiftTypeCode == nil || validator.IsEmpty(*r.ShiftTypeCode)) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type_code",
			Message: "shift_type_code is required on a working day",
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	RosterDate     string  `json:"roster_date"`
	ShiftTypeCode  *string `json:"shift_type_code"`
	IsWorkingDay   bool    `json:"is_working_day"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	ManualOverride bool    `json:"manual_override"`
}

type ListEntriesFilter struct {
	EmployeeID string
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
}

func (f *ListEntriesFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	startDate, startValid := validator.IsValidDate(f.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}
	endDate, endValid := validator.IsValidDate(f.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if startValid && endValid && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
