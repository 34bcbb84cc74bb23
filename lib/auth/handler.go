package authhandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"hr-portal-backend/config"
	accountstore "hr-portal-backend/lib/account/store"
	"hr-portal-backend/lib/apperr"
	"hr-portal-backend/lib/smtp"
	tokenhandler "hr-portal-backend/lib/token"
	authutils "hr-portal-backend/lib/utils/auth-utils"
	"hr-portal-backend/middleware"
	"hr-portal-backend/models"
	accountapimodels "hr-portal-backend/models/api/account"
	authapimodels "hr-portal-backend/models/api/auth"
	dbmodels "hr-portal-backend/models/db"
)

const (
	verifyTokenByteLen = 20
	resetTokenTTL      = 24 * time.Hour
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) error
	VerifyEmail(code string) error
	Login(email, password, ip, userAgent string) (authapimodels.JWTResponse, error)
	Refresh(refreshToken, ip, userAgent string) (authapimodels.JWTResponse, error)
	RevokeToken(refreshToken string, user middleware.CurrentUser, ip string) error
	ForgotPassword(email string) error
	ValidateResetToken(code string) error
	ResetPassword(code, newPassword string) error
	Me(accountID string) (accountapimodels.AccountView, error)
}

func NewHandler(accountStore accountstore.Provider, tokens tokenhandler.Provider, mailer smtp.Provider) Provider {
	return &impl{
		accountStore: accountStore,
		tokens:       tokens,
		mailer:       mailer,
	}
}

type impl struct {
	accountStore accountstore.Provider
	tokens       tokenhandler.Provider
	mailer       smtp.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) error {
	logger := log.WithField("email", request.Email)
	exist, err := i.accountStore.ExistByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки уже существующего аккаунта")
		return err
	}
	if exist {
		return apperr.ErrConflict
	}
	passwordHash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return err
	}
	verifyToken, err := authutils.RandomTokenString(verifyTokenByteLen)
	if err != nil {
		return err
	}

	// первый зарегистрированный аккаунт становится администратором
	count, err := i.accountStore.Count()
	if err != nil {
		logger.WithError(err).Error("ошибка подсчета аккаунтов")
		return err
	}
	role := models.AccountRoleEmployee
	if count == 0 {
		role = models.AccountRoleAdmin
	}

	rec := dbmodels.Account{
		Title:             request.Title,
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		Email:             request.Email,
		PasswordHash:      passwordHash,
		AcceptTerms:       request.AcceptTerms,
		Role:              role,
		VerificationToken: verifyToken,
	}
	if !i.mailer.IsConfigured() {
		// без почтового сервиса подтверждать нечем
		now := time.Now()
		rec.VerifiedAt = &now
		rec.VerificationToken = ""
	}
	if _, err = i.accountStore.Create(rec); err != nil {
		logger.WithError(err).Error("ошибка создания аккаунта")
		return err
	}
	if rec.VerificationToken != "" {
		message := fmt.Sprintf("Ссылка для подтверждения почты: %s/api/v1/auth/verify-email?token=%s",
			config.Conf.Smtp.DomainForVerifyLink, rec.VerificationToken)
		if err = i.mailer.SendEMail(request.Email, message, "Подтверждение почты"); err != nil {
			logger.WithError(err).Error("ошибка отправки письма с подтверждением")
		}
	}
	return nil
}

func (i impl) VerifyEmail(code string) error {
	if code == "" {
		return apperr.ErrTokenInvalid
	}
	rec, err := i.accountStore.FindByVerificationToken(code)
	if err != nil {
		log.WithError(err).Error("ошибка поиска аккаунта по коду подтверждения")
		return err
	}
	if rec == nil {
		return apperr.ErrTokenInvalid
	}
	return i.accountStore.Update(rec.ID, map[string]interface{}{
		"verified_at":        time.Now(),
		"verification_token": "",
	})
}

func (i impl) Login(email, password, ip, userAgent string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	rec, err := i.accountStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска аккаунта по почте")
		return authapimodels.JWTResponse{}, err
	}
	if rec == nil {
		logger.Debug("аккаунт с такой почтой не найден")
		return authapimodels.JWTResponse{}, apperr.ErrUnauthenticated
	}
	if !authutils.CheckPassword(rec.PasswordHash, password) {
		logger.Debug("аккаунт не прошел проверку пароля")
		return authapimodels.JWTResponse{}, apperr.ErrUnauthenticated
	}
	if !rec.IsVerified() {
		logger.Debug("почта аккаунта не подтверждена")
		return authapimodels.JWTResponse{}, apperr.ErrUnauthenticated
	}
	accessToken, err := i.tokens.IssueAccessToken(*rec)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	refreshRec, err := i.tokens.IssueRefreshToken(*rec, ip, userAgent)
	if err != nil {
		logger.WithError(err).Error("ошибка выдачи refresh токена")
		return authapimodels.JWTResponse{}, err
	}
	err = i.accountStore.Update(rec.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления даты последнего входа")
	}
	return authapimodels.JWTResponse{
		Token:        accessToken,
		RefreshToken: refreshRec.Token,
	}, nil
}

func (i impl) Refresh(refreshToken, ip, userAgent string) (authapimodels.JWTResponse, error) {
	newRec, err := i.tokens.Rotate(refreshToken, ip, userAgent)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	rec, err := i.accountStore.GetByID(newRec.AccountID)
	if err != nil {
		log.
			WithField("account_id", newRec.AccountID).
			WithError(err).
			Error("ошибка загрузки аккаунта при обновлении токена")
		return authapimodels.JWTResponse{}, err
	}
	if rec == nil {
		return authapimodels.JWTResponse{}, apperr.ErrTokenInvalid
	}
	accessToken, err := i.tokens.IssueAccessToken(*rec)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        accessToken,
		RefreshToken: newRec.Token,
	}, nil
}

func (i impl) RevokeToken(refreshToken string, user middleware.CurrentUser, ip string) error {
	if !user.Role.IsElevated() && !user.OwnsToken(refreshToken) {
		return apperr.ErrForbidden
	}
	return i.tokens.Revoke(refreshToken, ip)
}

func (i impl) ForgotPassword(email string) error {
	logger := log.WithField("email", email)
	rec, err := i.accountStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска аккаунта по почте")
		return err
	}
	if rec == nil {
		// не раскрываем, существует ли аккаунт
		logger.Debug("запрос сброса пароля для неизвестной почты")
		return nil
	}
	resetToken, err := authutils.RandomTokenString(verifyTokenByteLen)
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(resetTokenTTL)
	err = i.accountStore.Update(rec.ID, map[string]interface{}{
		"reset_token":            resetToken,
		"reset_token_expires_at": expiresAt,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения кода сброса пароля")
		return err
	}
	message := fmt.Sprintf("Код для сброса пароля (действует 24 часа): %s", resetToken)
	if err = i.mailer.SendEMail(email, message, "Сброс пароля"); err != nil {
		logger.WithError(err).Error("ошибка отправки письма для сброса пароля")
	}
	return nil
}

func (i impl) ValidateResetToken(code string) error {
	_, err := i.findByResetCode(code)
	return err
}

func (i impl) ResetPassword(code, newPassword string) error {
	rec, err := i.findByResetCode(code)
	if err != nil {
		return err
	}
	passwordHash, err := authutils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return i.accountStore.Update(rec.ID, map[string]interface{}{
		"password_hash":          passwordHash,
		"reset_token":            "",
		"reset_token_expires_at": nil,
		"password_reset_at":      time.Now(),
	})
}

func (i impl) Me(accountID string) (accountapimodels.AccountView, error) {
	rec, err := i.accountStore.GetByID(accountID)
	if err != nil {
		log.
			WithField("account_id", accountID).
			WithError(err).
			Error("ошибка загрузки текущего аккаунта")
		return accountapimodels.AccountView{}, err
	}
	if rec == nil {
		return accountapimodels.AccountView{}, apperr.ErrNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) findByResetCode(code string) (*dbmodels.Account, error) {
	if code == "" {
		return nil, apperr.ErrTokenInvalid
	}
	rec, err := i.accountStore.FindByResetToken(code)
	if err != nil {
		log.WithError(err).Error("ошибка поиска аккаунта по коду сброса")
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrTokenInvalid
	}
	if rec.ResetTokenExpiresAt == nil || rec.ResetTokenExpiresAt.Before(time.Now()) {
		return nil, apperr.ErrTokenInvalid
	}
	return rec, nil
}
