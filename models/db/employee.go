package dbmodels

import (
	"time"

	"hr-portal-backend/models"
	employeeapimodels "hr-portal-backend/models/api/employee"
)

// Employee - кадровая запись, строго один аккаунт на сотрудника
type Employee struct {
	BaseModel
	AccountID    string  `gorm:"type:varchar(36);uniqueIndex"`
	DepartmentID *string `gorm:"type:varchar(36);index"`
	EmployeeCode string  `gorm:"type:varchar(20);uniqueIndex"`
	Position     string  `gorm:"type:varchar(150)"`
	Status       models.EmployeeStatus `gorm:"type:varchar(50)"`
	HireDate     time.Time

	Account    *Account
	Department *Department
	Workflows  []Workflow    `gorm:"constraint:OnDelete:CASCADE"`
	Requests   []Request     `gorm:"constraint:OnDelete:CASCADE"`
	Docs       []EmployeeDoc `gorm:"constraint:OnDelete:CASCADE"`
}

func (r Employee) ToModel() employeeapimodels.EmployeeView {
	view := employeeapimodels.EmployeeView{
		ID:           r.ID,
		AccountID:    r.AccountID,
		EmployeeCode: r.EmployeeCode,
		Position:     r.Position,
		Status:       string(r.Status),
		StatusName:   r.Status.ToHuman(),
		HireDate:     r.HireDate,
	}
	if r.Account != nil {
		view.FullName = r.Account.GetFullName()
		view.Email = r.Account.Email
	}
	if r.Department != nil {
		view.DepartmentID = r.Department.ID
		view.DepartmentName = r.Department.Name
	}
	return view
}
