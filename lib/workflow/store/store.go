package workflowstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Workflow) (string, error)
	Update(workflowID string, updMap map[string]interface{}) error
	GetByID(workflowID string) (*dbmodels.Workflow, error)
	ListByEmployee(employeeID string) ([]dbmodels.Workflow, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Workflow) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(workflowID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Workflow{}).
		Where("id = ?", workflowID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(workflowID string) (rec *dbmodels.Workflow, err error) {
	err = i.db.Model(dbmodels.Workflow{}).
		Where("id = ?", workflowID).
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

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.Workflow, err error) {
	err = i.db.Model(dbmodels.Workflow{}).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
