package dbmodels

import (
	"hr-portal-backend/models"
	workflowapimodels "hr-portal-backend/models/api/workflow"
)

// Workflow - кадровое действие по сотруднику (прием, перевод и тд)
type Workflow struct {
	BaseModel
	EmployeeID string              `gorm:"type:varchar(36);index"`
	Type       models.WorkflowType `gorm:"type:varchar(50)"`
	Details    string              `gorm:"type:varchar(1000)"`
	Status     models.ReviewStatus `gorm:"type:varchar(50)"`

	Employee *Employee
}

func (r Workflow) ToModel() workflowapimodels.WorkflowView {
	return workflowapimodels.WorkflowView{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Type:       string(r.Type),
		TypeName:   r.Type.ToHuman(),
		Details:    r.Details,
		Status:     string(r.Status),
		StatusName: r.Status.ToHuman(),
		CreatedAt:  r.CreatedAt,
	}
}
