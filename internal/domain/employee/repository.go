package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID returns the employee joined with its department name.
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List returns the full roster ordered by name, joined with department names.
	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
}
