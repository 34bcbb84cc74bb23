package accounthandler

import (
	"time"

	log "github.com/sirupsen/logrus"

	accountstore "hr-portal-backend/lib/account/store"
	"hr-portal-backend/lib/apperr"
	authutils "hr-portal-backend/lib/utils/auth-utils"
	"hr-portal-backend/models"
	accountapimodels "hr-portal-backend/models/api/account"
	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	GetList(page, limit int) ([]accountapimodels.AccountView, int64, error)
	GetByID(accountID string) (accountapimodels.AccountView, error)
	Create(request accountapimodels.CreateAccount) (string, error)
	Update(accountID string, request accountapimodels.UpdateAccount) error
	Delete(accountID string) error
}

func NewHandler(accountStore accountstore.Provider) Provider {
	return &impl{
		accountStore: accountStore,
	}
}

type impl struct {
	accountStore accountstore.Provider
}

func (i impl) GetList(page, limit int) (list []accountapimodels.AccountView, rowCount int64, err error) {
	recs, rowCount, err := i.accountStore.GetList(page, limit)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка аккаунтов")
		return nil, 0, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) GetByID(accountID string) (accountapimodels.AccountView, error) {
	rec, err := i.getExisting(accountID)
	if err != nil {
		return accountapimodels.AccountView{}, err
	}
	return rec.ToModel(), nil
}

// Create - создание аккаунта администратором, без подтверждения почты
func (i impl) Create(request accountapimodels.CreateAccount) (string, error) {
	logger := log.WithField("email", request.Email)
	exist, err := i.accountStore.ExistByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки уже существующего аккаунта")
		return "", err
	}
	if exist {
		return "", apperr.ErrConflict
	}
	passwordHash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return "", err
	}
	role, err := models.ParseAccountRole(request.Role)
	if err != nil {
		return "", apperr.NewValidationError(map[string]string{"role": err.Error()})
	}
	now := time.Now()
	rec := dbmodels.Account{
		Title:        request.Title,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		PasswordHash: passwordHash,
		AcceptTerms:  true,
		Role:         role,
		VerifiedAt:   &now,
	}
	id, err := i.accountStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания аккаунта")
		return "", err
	}
	return id, nil
}

func (i impl) Update(accountID string, request accountapimodels.UpdateAccount) error {
	rec, err := i.getExisting(accountID)
	if err != nil {
		return err
	}
	if rec.Email != request.Email {
		exist, err := i.accountStore.ExistByEmail(request.Email)
		if err != nil {
			return err
		}
		if exist {
			return apperr.ErrConflict
		}
	}
	role, err := models.ParseAccountRole(request.Role)
	if err != nil {
		return apperr.NewValidationError(map[string]string{"role": err.Error()})
	}
	updMap := map[string]interface{}{
		"title":      request.Title,
		"first_name": request.FirstName,
		"last_name":  request.LastName,
		"email":      request.Email,
		"role":       string(role),
	}
	if request.Password != "" {
		passwordHash, err := authutils.HashPassword(request.Password)
		if err != nil {
			return err
		}
		updMap["password_hash"] = passwordHash
	}
	err = i.accountStore.Update(accountID, updMap)
	if err != nil {
		log.
			WithField("account_id", accountID).
			WithError(err).
			Error("ошибка обновления аккаунта")
		return err
	}
	return nil
}

// Delete - refresh токены и кадровая запись со всеми ее дочерними
// сущностями каскадно удаляются БД, ссылки согласующего зануляются
func (i impl) Delete(accountID string) error {
	if _, err := i.getExisting(accountID); err != nil {
		return err
	}
	err := i.accountStore.Delete(accountID)
	if err != nil {
		log.
			WithField("account_id", accountID).
			WithError(err).
			Error("ошибка удаления аккаунта")
		return err
	}
	return nil
}

func (i impl) getExisting(accountID string) (*dbmodels.Account, error) {
	rec, err := i.accountStore.GetByID(accountID)
	if err != nil {
		log.
			WithField("account_id", accountID).
			WithError(err).
			Error("ошибка поиска аккаунта")
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrNotFound
	}
	return rec, nil
}
