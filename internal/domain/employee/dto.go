package employee

type EmployeeResponse struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	WorkScheduleID *string `json:"work_schedule_id"`
	IsActive       bool    `json:"is_active"`
}
