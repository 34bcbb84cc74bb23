package dbmodels

import (
	"hr-portal-backend/models"
	requestapimodels "hr-portal-backend/models/api/request"
)

// Request - заявка сотрудника с позициями, согласующий указывается при решении
type Request struct {
	BaseModel
	EmployeeID string  `gorm:"type:varchar(36);index"`
	ApproverID *string `gorm:"type:varchar(36);index"`
	Type       models.RequestType  `gorm:"type:varchar(50)"`
	Status     models.ReviewStatus `gorm:"type:varchar(50)"`

	Employee *Employee
	Approver *Account
	Items    []RequestItem `gorm:"constraint:OnDelete:CASCADE"`
}

type RequestItem struct {
	BaseModel
	RequestID string `gorm:"type:varchar(36);index"`
	Name      string `gorm:"type:varchar(255)"`
	Quantity  int
}

func (r Request) ToModel() requestapimodels.RequestView {
	view := requestapimodels.RequestView{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Type:       string(r.Type),
		TypeName:   r.Type.ToHuman(),
		Status:     string(r.Status),
		StatusName: r.Status.ToHuman(),
		CreatedAt:  r.CreatedAt,
	}
	if r.ApproverID != nil {
		view.ApproverID = *r.ApproverID
	}
	if r.Approver != nil {
		view.ApproverName = r.Approver.GetFullName()
	}
	for _, item := range r.Items {
		view.Items = append(view.Items, requestapimodels.RequestItemView{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}
	return view
}
