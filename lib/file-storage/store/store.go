package docstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EmployeeDoc) (string, error)
	Delete(docID string) error
	GetByID(docID string) (*dbmodels.EmployeeDoc, error)
	ListByEmployee(employeeID string) ([]dbmodels.EmployeeDoc, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EmployeeDoc) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Delete(docID string) error {
	return i.db.
		Where("id = ?", docID).
		Delete(&dbmodels.EmployeeDoc{}).
		Error
}

func (i impl) GetByID(docID string) (rec *dbmodels.EmployeeDoc, err error) {
	err = i.db.
		Where("id = ?", docID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.EmployeeDoc, err error) {
	err = i.db.
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
