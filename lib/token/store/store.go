package tokenstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RefreshToken) error
	GetByToken(token string) (*dbmodels.RefreshToken, error)
	// GetByTokenLocked - чтение с блокировкой строки, только внутри транзакции
	GetByTokenLocked(token string) (*dbmodels.RefreshToken, error)
	ListActiveByAccount(accountID string) ([]dbmodels.RefreshToken, error)
	Update(token string, updMap map[string]interface{}) error
	InTx(fn func(Provider) error) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RefreshToken) error {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByToken(token string) (rec *dbmodels.RefreshToken, err error) {
	err = i.db.Model(dbmodels.RefreshToken{}).
		Where("token = ?", token).
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

func (i impl) GetByTokenLocked(token string) (rec *dbmodels.RefreshToken, err error) {
	err = i.db.Model(dbmodels.RefreshToken{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token = ?", token).
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

func (i impl) ListActiveByAccount(accountID string) (list []dbmodels.RefreshToken, err error) {
	err = i.db.Model(dbmodels.RefreshToken{}).
		Where("account_id = ?", accountID).
		Where("revoked_at IS NULL").
		Where("expires_at > ?", time.Now()).
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

func (i impl) Update(token string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.RefreshToken{}).
		Where("token = ?", token).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) InTx(fn func(Provider) error) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewInstance(tx))
	})
}
