package employee

import "context"

// Service exposes the read-only employee reference this subsystem needs.
// Employee master data is owned elsewhere.
type Service interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
}
