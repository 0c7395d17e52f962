package employee

import "time"

type Employee struct {
	ID             string
	Code           string
	Name           string
	WorkScheduleID *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
