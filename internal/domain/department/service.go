package department

import "context"

// DepartmentService defines business logic for department management.
type DepartmentService interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Get(ctx context.Context, id string) (DepartmentResponse, error)
	List(ctx context.Context) ([]DepartmentResponse, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)

	// Delete removes a department. Fails with ErrDepartmentNotEmpty while
	// employees are still assigned to it.
	Delete(ctx context.Context, id string) error
}
