package dbmodels

import (
	employeeapimodels "hr-portal-backend/models/api/employee"
)

// EmployeeDoc - метаданные документа сотрудника, сам файл лежит в s3
type EmployeeDoc struct {
	BaseModel
	EmployeeID  string `gorm:"type:varchar(36);index"`
	FileName    string `gorm:"type:varchar(255)"`
	ObjectKey   string `gorm:"type:varchar(255);uniqueIndex"`
	ContentType string `gorm:"type:varchar(100)"`
	Size        int64
}

func (r EmployeeDoc) ToModel() employeeapimodels.DocView {
	return employeeapimodels.DocView{
		ID:          r.ID,
		FileName:    r.FileName,
		ContentType: r.ContentType,
		Size:        r.Size,
		CreatedAt:   r.CreatedAt,
	}
}
