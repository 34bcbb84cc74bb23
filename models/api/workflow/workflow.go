package workflowapimodels

import (
	"time"

	"hr-portal-backend/lib/apperr"
	"hr-portal-backend/models"
)

type WorkflowData struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Details    string `json:"details"`
}

func (r WorkflowData) Validate() error {
	fields := map[string]string{}
	if r.EmployeeID == "" {
		fields["employee_id"] = "не указан сотрудник"
	}
	if !models.WorkflowType(r.Type).IsValid() {
		fields["type"] = "неизвестный тип кадрового действия"
	}
	if len(fields) != 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

type StatusUpdate struct {
	Status string `json:"status"`
}

func (r StatusUpdate) Validate() error {
	if !models.ReviewStatus(r.Status).IsValid() {
		return apperr.NewValidationError(map[string]string{"status": "неизвестный статус согласования"})
	}
	return nil
}

type WorkflowView struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Type       string    `json:"type"`
	TypeName   string    `json:"type_name"`
	Details    string    `json:"details"`
	Status     string    `json:"status"`
	StatusName string    `json:"status_name"`
	CreatedAt  time.Time `json:"created_at"`
}
