package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, dept Department) error
	Delete(ctx context.Context, id string) error

	// CountEmployees reports how many employees are assigned to the department.
	// Used to refuse deleting a department that is still in use.
	CountEmployees(ctx context.Context, id string) (int64, error)
}
