package employeeapimodels

import (
	"time"

	"hr-portal-backend/lib/apperr"
	"hr-portal-backend/models"
)

type CreateEmployee struct {
	AccountID    string `json:"account_id"`
	DepartmentID string `json:"department_id"` // пустое значение - без подразделения
	Position     string `json:"position"`
	HireDate     time.Time `json:"hire_date"`
}

func (r CreateEmployee) Validate() error {
	fields := map[string]string{}
	if r.AccountID == "" {
		fields["account_id"] = "не указан аккаунт сотрудника"
	}
	if r.Position == "" {
		fields["position"] = "не указана должность"
	}
	if len(fields) != 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

type UpdateEmployee struct {
	Position string `json:"position"`
	Status   string `json:"status"`
}

func (r UpdateEmployee) Validate() error {
	fields := map[string]string{}
	if r.Position == "" {
		fields["position"] = "не указана должность"
	}
	if !models.EmployeeStatus(r.Status).IsValid() {
		fields["status"] = "неизвестный статус сотрудника"
	}
	if len(fields) != 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

type TransferEmployee struct {
	DepartmentID string `json:"department_id"`
}

func (r TransferEmployee) Validate() error {
	if r.DepartmentID == "" {
		return apperr.NewValidationError(map[string]string{"department_id": "не указано подразделение"})
	}
	return nil
}

type EmployeeView struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"account_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	EmployeeCode   string    `json:"employee_code"`
	Position       string    `json:"position"`
	Status         string    `json:"status"`
	StatusName     string    `json:"status_name"`
	DepartmentID   string    `json:"department_id,omitempty"`
	DepartmentName string    `json:"department_name,omitempty"`
	HireDate       time.Time `json:"hire_date"`
}

type DocView struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
