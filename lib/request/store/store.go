package requeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	// Create сохраняет заявку вместе с позициями
	Create(rec dbmodels.Request) (string, error)
	Update(requestID string, updMap map[string]interface{}) error
	// ReplaceItems заменяет позиции заявки одной транзакцией
	ReplaceItems(requestID string, items []dbmodels.RequestItem) error
	Delete(requestID string) error
	GetByID(requestID string) (*dbmodels.Request, error)
	GetList(page, limit int) ([]dbmodels.Request, int64, error)
	ListByEmployee(employeeID string) ([]dbmodels.Request, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(requestID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", requestID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ReplaceItems(requestID string, items []dbmodels.RequestItem) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("request_id = ?", requestID).
			Delete(&dbmodels.RequestItem{}).
			Error
		if err != nil {
			return err
		}
		for idx := range items {
			items[idx].RequestID = requestID
		}
		return tx.Create(&items).Error
	})
}

func (i impl) Delete(requestID string) error {
	return i.db.
		Where("id = ?", requestID).
		Delete(&dbmodels.Request{}).
		Error
}

func (i impl) GetByID(requestID string) (rec *dbmodels.Request, err error) {
	err = i.db.Model(dbmodels.Request{}).
		Where("id = ?", requestID).
		Preload("Items").
		Preload("Approver").
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

func (i impl) GetList(page, limit int) (list []dbmodels.Request, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Request{})
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Items").
		Preload("Approver").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rowCount, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.Request, err error) {
	err = i.db.Model(dbmodels.Request{}).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Preload("Items").
		Preload("Approver").
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
