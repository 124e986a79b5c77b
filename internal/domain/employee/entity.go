package employee

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleUser),
}

// Employee is both the HR record and the login identity. The original
// deployment delegated auth to an external provider; here credentials live
// on the employee row directly.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	DepartmentID *string
	Role         Role
	AvatarURL    *string
	CreatedAt    time.Time

	// DTO
	DepartmentName *string
}
