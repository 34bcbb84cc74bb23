package departmentapimodels

import (
	"hr-portal-backend/lib/apperr"
)

type DepartmentData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r DepartmentData) Validate() error {
	if r.Name == "" {
		return apperr.NewValidationError(map[string]string{"name": "не указано название подразделения"})
	}
	return nil
}

type DepartmentView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	EmployeeCount int64  `json:"employee_count"`
}
