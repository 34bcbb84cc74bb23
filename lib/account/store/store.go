package accountstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Account) (string, error)
	Update(accountID string, updMap map[string]interface{}) error
	Delete(accountID string) error
	GetByID(accountID string) (*dbmodels.Account, error)
	FindByEmail(email string) (*dbmodels.Account, error)
	FindByVerificationToken(token string) (*dbmodels.Account, error)
	FindByResetToken(token string) (*dbmodels.Account, error)
	ExistByEmail(email string) (bool, error)
	GetList(page, limit int) ([]dbmodels.Account, int64, error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Account) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(accountID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Account{}).
		Where("id = ?", accountID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// Delete удаляет аккаунт, refresh токены и кадровая запись
// каскадно удаляются внешними ключами, ссылки согласующего зануляются
func (i impl) Delete(accountID string) error {
	return i.db.
		Where("id = ?", accountID).
		Delete(&dbmodels.Account{}).
		Error
}

func (i impl) GetByID(accountID string) (rec *dbmodels.Account, err error) {
	err = i.db.Model(dbmodels.Account{}).
		Where("id = ?", accountID).
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

func (i impl) FindByEmail(email string) (rec *dbmodels.Account, err error) {
	err = i.db.Model(dbmodels.Account{}).
		Where("email = ?", email).
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

func (i impl) FindByVerificationToken(token string) (rec *dbmodels.Account, err error) {
	err = i.db.Model(dbmodels.Account{}).
		Where("verification_token = ?", token).
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

func (i impl) FindByResetToken(token string) (rec *dbmodels.Account, err error) {
	err = i.db.Model(dbmodels.Account{}).
		Where("reset_token = ?", token).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	err := i.db.
		Where("email = ?", email).
		First(&dbmodels.Account{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) GetList(page, limit int) (list []dbmodels.Account, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Account{})
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("created_at").
		Offset((page - 1) * limit).
		Limit(limit).
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

func (i impl) Count() (count int64, err error) {
	err = i.db.Model(dbmodels.Account{}).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
