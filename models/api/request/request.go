package requestapimodels

import (
	"time"

	"hr-portal-backend/lib/apperr"
	"hr-portal-backend/models"
)

type RequestItemData struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type RequestData struct {
	Type  string            `json:"type"`
	Items []RequestItemData `json:"items"`
}

func (r RequestData) Validate() error {
	fields := map[string]string{}
	if !models.RequestType(r.Type).IsValid() {
		fields["type"] = "неизвестный тип заявки"
	}
	if len(r.Items) == 0 {
		fields["items"] = "заявка должна содержать хотя бы одну позицию"
	}
	for _, item := range r.Items {
		if item.Name == "" {
			fields["items"] = "не указано наименование позиции"
			break
		}
		if item.Quantity <= 0 {
			fields["items"] = "количество должно быть больше нуля"
			break
		}
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

type RequestItemView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type RequestView struct {
	ID           string            `json:"id"`
	EmployeeID   string            `json:"employee_id"`
	ApproverID   string            `json:"approver_id,omitempty"`
	ApproverName string            `json:"approver_name,omitempty"`
	Type         string            `json:"type"`
	TypeName     string            `json:"type_name"`
	Status       string            `json:"status"`
	StatusName   string            `json:"status_name"`
	Items        []RequestItemView `json:"items"`
	CreatedAt    time.Time         `json:"created_at"`
}
