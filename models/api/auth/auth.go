package authapimodels

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"

	"hr-portal-backend/lib/apperr"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return apperr.NewValidationError(map[string]string{"email": "почта имеет неправильный формат"})
	}
	if r.Password == "" {
		return apperr.NewValidationError(map[string]string{"password": "не указан пароль"})
	}
	return nil
}

type RegisterRequest struct {
	Title       string `json:"title"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AcceptTerms bool   `json:"accept_terms"`
}

func (r RegisterRequest) Validate() error {
	fields := map[string]string{}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		fields["email"] = "почта имеет неправильный формат"
	}
	if r.FirstName == "" {
		fields["first_name"] = "не указано имя"
	}
	if r.LastName == "" {
		fields["last_name"] = "не указана фамилия"
	}
	if len(r.Password) < 6 {
		fields["password"] = "пароль должен быть не короче 6 символов"
	}
	if !r.AcceptTerms {
		fields["accept_terms"] = "необходимо принять условия использования"
	}
	if len(fields) != 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

type JWTResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if len(strings.TrimSpace(r.RefreshToken)) == 0 {
		return errors.New("refresh token не должен быть пустым")
	}
	return nil
}

type RevokeTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RevokeTokenRequest) Validate() error {
	if len(strings.TrimSpace(r.RefreshToken)) == 0 {
		return errors.New("refresh token не должен быть пустым")
	}
	return nil
}

type PasswordRecovery struct {
	Email string `json:"email"` // емайл для отправки письма с инструкцией, он же логин
}

func (r PasswordRecovery) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return apperr.NewValidationError(map[string]string{"email": "почта имеет неправильный формат"})
	}
	return nil
}

type PasswordResetRequest struct {
	ResetCode   string `json:"reset_code"`
	NewPassword string `json:"new_password"`
}

func (r PasswordResetRequest) Validate() error {
	fields := map[string]string{}
	if r.ResetCode == "" {
		fields["reset_code"] = "получен некорректный код для сброса"
	}
	if len(r.NewPassword) < 6 {
		fields["new_password"] = "пароль должен быть не короче 6 символов"
	}
	if len(fields) != 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}
