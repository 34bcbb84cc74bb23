package dbmodels

import (
	departmentapimodels "hr-portal-backend/models/api/department"
)

type Department struct {
	BaseModel
	Name        string `gorm:"type:varchar(150);uniqueIndex"`
	Description string `gorm:"type:varchar(500)"`

	// при удалении подразделения сотрудники остаются, ссылка зануляется
	Employees []Employee `gorm:"constraint:OnDelete:SET NULL"`
}

func (r Department) ToModel(employeeCount int64) departmentapimodels.DepartmentView {
	return departmentapimodels.DepartmentView{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		EmployeeCount: employeeCount,
	}
}
