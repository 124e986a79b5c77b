package auth

import "github.com/qrmesai/qrmesai-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken      string  `json:"access_token"`
	ExpiresAt        int64   `json:"expires_at"`
	RefreshToken     string  `json:"-"` // delivered as an HttpOnly cookie
	RefreshExpiresAt int64   `json:"-"`
	EmployeeID       string  `json:"employee_id"`
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	AvatarURL        *string `json:"avatar_url,omitempty"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
