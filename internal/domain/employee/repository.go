package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDs returns the employees matching ids; callers compare lengths
	// to detect unknown ids.
	GetByIDs(ctx context.Context, ids []string) ([]Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
}
