package departmentstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Department) (string, error)
	Update(departmentID string, updMap map[string]interface{}) error
	// Delete удаляет подразделение, у сотрудников внешний ключ
	// зануляется на уровне БД, записи сотрудников не трогаются
	Delete(departmentID string) error
	GetByID(departmentID string) (*dbmodels.Department, error)
	GetList() ([]dbmodels.Department, error)
	ExistByName(name string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Department) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(departmentID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Department{}).
		Where("id = ?", departmentID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(departmentID string) error {
	return i.db.
		Where("id = ?", departmentID).
		Delete(&dbmodels.Department{}).
		Error
}

func (i impl) GetByID(departmentID string) (rec *dbmodels.Department, err error) {
	err = i.db.Model(dbmodels.Department{}).
		Where("id = ?", departmentID).
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

func (i impl) GetList() (list []dbmodels.Department, err error) {
	err = i.db.Model(dbmodels.Department{}).
		Order("name").
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

func (i impl) ExistByName(name string) (bool, error) {
	err := i.db.
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&dbmodels.Department{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
