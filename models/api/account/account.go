package accountapimodels

import (
	"net/mail"
	"time"

	"hr-portal-backend/lib/apperr"
	"hr-portal-backend/models"
)

type AccountView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	RoleName   string    `json:"role_name"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateAccount struct {
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

func (r CreateAccount) Validate() error {
	fields := map[string]string{}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		fields["email"] = "почта имеет неправильный формат"
	}
	if len(r.Password) < 6 {
		fields["password"] = "пароль должен быть не короче 6 символов"
	}
	if _, err := models.ParseAccountRole(r.Role); err != nil {
		fields["role"] = err.Error()
	}
	if len(fields) != 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

type UpdateAccount struct {
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"` // пустой пароль - без смены
	Role      string `json:"role"`
}

func (r UpdateAccount) Validate() error {
	fields := map[string]string{}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		fields["email"] = "почта имеет неправильный формат"
	}
	if r.Password != "" && len(r.Password) < 6 {
		fields["password"] = "пароль должен быть не короче 6 символов"
	}
	if _, err := models.ParseAccountRole(r.Role); err != nil {
		fields["role"] = err.Error()
	}
	if len(fields) != 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}
