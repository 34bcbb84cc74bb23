package authhandler

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"hr-portal-backend/config"
	"hr-portal-backend/lib/apperr"
	tokenhandler "hr-portal-backend/lib/token"
	tokenstore "hr-portal-backend/lib/token/store"
	"hr-portal-backend/middleware"
	"hr-portal-backend/models"
	authapimodels "hr-portal-backend/models/api/auth"
	dbmodels "hr-portal-backend/models/db"
)

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 900
	conf.Auth.RefreshExpireInDays = 7
	conf.Smtp.DomainForVerifyLink = "http://localhost:8000"
	config.Conf = conf
}

type fakeAccountStore struct {
	accounts map[string]*dbmodels.Account
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: map[string]*dbmodels.Account{}}
}

func (f *fakeAccountStore) Create(rec dbmodels.Account) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now()
	f.accounts[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeAccountStore) Update(accountID string, updMap map[string]interface{}) error {
	rec, exist := f.accounts[accountID]
	if !exist {
		return nil
	}
	if v, ok := updMap["verified_at"]; ok {
		at := v.(time.Time)
		rec.VerifiedAt = &at
	}
	if v, ok := updMap["verification_token"]; ok {
		rec.VerificationToken = v.(string)
	}
	if v, ok := updMap["last_login"]; ok {
		rec.LastLogin = v.(time.Time)
	}
	if v, ok := updMap["reset_token"]; ok {
		rec.ResetToken = v.(string)
	}
	if v, ok := updMap["reset_token_expires_at"]; ok {
		if v == nil {
			rec.ResetTokenExpiresAt = nil
		} else {
			at := v.(time.Time)
			rec.ResetTokenExpiresAt = &at
		}
	}
	if v, ok := updMap["password_hash"]; ok {
		rec.PasswordHash = v.(string)
	}
	if v, ok := updMap["password_reset_at"]; ok {
		at := v.(time.Time)
		rec.PasswordResetAt = &at
	}
	return nil
}

func (f *fakeAccountStore) Delete(accountID string) error {
	delete(f.accounts, accountID)
	return nil
}

func (f *fakeAccountStore) GetByID(accountID string) (*dbmodels.Account, error) {
	rec, exist := f.accounts[accountID]
	if !exist {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeAccountStore) FindByEmail(email string) (*dbmodels.Account, error) {
	for _, rec := range f.accounts {
		if rec.Email == email {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountStore) FindByVerificationToken(token string) (*dbmodels.Account, error) {
	for _, rec := range f.accounts {
		if token != "" && rec.VerificationToken == token {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountStore) FindByResetToken(token string) (*dbmodels.Account, error) {
	for _, rec := range f.accounts {
		if token != "" && rec.ResetToken == token {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountStore) ExistByEmail(email string) (bool, error) {
	rec, _ := f.FindByEmail(email)
	return rec != nil, nil
}

func (f *fakeAccountStore) GetList(page, limit int) (list []dbmodels.Account, rowCount int64, err error) {
	for _, rec := range f.accounts {
		list = append(list, *rec)
	}
	return list, int64(len(list)), nil
}

func (f *fakeAccountStore) Count() (int64, error) {
	return int64(len(f.accounts)), nil
}

type fakeTokenStore struct {
	recs map[string]*dbmodels.RefreshToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{recs: map[string]*dbmodels.RefreshToken{}}
}

func (f *fakeTokenStore) Create(rec dbmodels.RefreshToken) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f.recs[rec.Token] = &rec
	return nil
}

func (f *fakeTokenStore) GetByToken(token string) (*dbmodels.RefreshToken, error) {
	rec, exist := f.recs[token]
	if !exist {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeTokenStore) GetByTokenLocked(token string) (*dbmodels.RefreshToken, error) {
	return f.GetByToken(token)
}

func (f *fakeTokenStore) ListActiveByAccount(accountID string) (list []dbmodels.RefreshToken, err error) {
	for _, rec := range f.recs {
		if rec.AccountID == accountID && rec.IsActive() {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeTokenStore) Update(token string, updMap map[string]interface{}) error {
	rec, exist := f.recs[token]
	if !exist {
		return nil
	}
	if v, ok := updMap["revoked_at"]; ok {
		at := v.(time.Time)
		rec.RevokedAt = &at
	}
	if v, ok := updMap["revoked_by_ip"]; ok {
		rec.RevokedByIP = v.(string)
	}
	if v, ok := updMap["replaced_by_token"]; ok {
		rec.ReplacedByToken = v.(string)
	}
	return nil
}

func (f *fakeTokenStore) InTx(fn func(tokenstore.Provider) error) error {
	return fn(f)
}

type fakeMailer struct {
	configured bool
	sent       []string
}

func (f *fakeMailer) SendEMail(to, message, subject string) error {
	f.sent = append(f.sent, message)
	return nil
}

func (f *fakeMailer) IsConfigured() bool {
	return f.configured
}

func newTestHandler() (Provider, *fakeAccountStore, *fakeMailer) {
	accountStore := newFakeAccountStore()
	mailer := &fakeMailer{configured: true}
	tokens := tokenhandler.NewHandler(newFakeTokenStore())
	return NewHandler(accountStore, tokens, mailer), accountStore, mailer
}

func registerRequest(email string) authapimodels.RegisterRequest {
	return authapimodels.RegisterRequest{
		Title:       "Г-н",
		FirstName:   "Иван",
		LastName:    "Петров",
		Email:       email,
		Password:    "secret123",
		AcceptTerms: true,
	}
}

func findByEmail(t *testing.T, store *fakeAccountStore, email string) *dbmodels.Account {
	rec, err := store.FindByEmail(email)
	require.Nil(t, err)
	require.NotNil(t, rec)
	return rec
}

func TestRegister(t *testing.T) {
	initTestConfig()

	t.Run(`первый аккаунт получает роль администратора`, func(t *testing.T) {
		handler, store, mailer := newTestHandler()
		require.Nil(t, handler.Register(registerRequest("a@x.com")))

		rec := findByEmail(t, store, "a@x.com")
		require.Equal(t, models.AccountRoleAdmin, rec.Role)
		require.False(t, rec.IsVerified())
		require.NotEmpty(t, rec.VerificationToken)
		require.Len(t, mailer.sent, 1)
		require.Contains(t, mailer.sent[0], rec.VerificationToken)

		require.Nil(t, handler.Register(registerRequest("b@x.com")))
		require.Equal(t, models.AccountRoleEmployee, findByEmail(t, store, "b@x.com").Role)
	})

	t.Run(`повторная регистрация - конфликт`, func(t *testing.T) {
		handler, _, _ := newTestHandler()
		require.Nil(t, handler.Register(registerRequest("a@x.com")))
		require.ErrorIs(t, handler.Register(registerRequest("a@x.com")), apperr.ErrConflict)
	})

	t.Run(`без smtp аккаунт сразу подтвержден`, func(t *testing.T) {
		accountStore := newFakeAccountStore()
		tokens := tokenhandler.NewHandler(newFakeTokenStore())
		handler := NewHandler(accountStore, tokens, &fakeMailer{configured: false})
		require.Nil(t, handler.Register(registerRequest("a@x.com")))
		require.True(t, findByEmail(t, accountStore, "a@x.com").IsVerified())
	})
}

func TestLoginFlow(t *testing.T) {
	initTestConfig()
	handler, store, _ := newTestHandler()
	require.Nil(t, handler.Register(registerRequest("a@x.com")))

	t.Run(`вход до подтверждения почты запрещен`, func(t *testing.T) {
		_, err := handler.Login("a@x.com", "secret123", "10.0.0.1", "test-agent")
		require.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})

	t.Run(`подтверждение с неизвестным кодом`, func(t *testing.T) {
		require.ErrorIs(t, handler.VerifyEmail("no-such-code"), apperr.ErrTokenInvalid)
		require.ErrorIs(t, handler.VerifyEmail(""), apperr.ErrTokenInvalid)
	})

	rec := findByEmail(t, store, "a@x.com")
	require.Nil(t, handler.VerifyEmail(rec.VerificationToken))

	t.Run(`после подтверждения вход выдает пару токенов`, func(t *testing.T) {
		resp, err := handler.Login("a@x.com", "secret123", "10.0.0.1", "test-agent")
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotEmpty(t, resp.RefreshToken)
	})

	t.Run(`неверный пароль`, func(t *testing.T) {
		_, err := handler.Login("a@x.com", "wrong-password", "10.0.0.1", "test-agent")
		require.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})

	t.Run(`неизвестная почта`, func(t *testing.T) {
		_, err := handler.Login("ghost@x.com", "secret123", "10.0.0.1", "test-agent")
		require.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})
}

func TestRefreshRotation(t *testing.T) {
	initTestConfig()
	handler, store, _ := newTestHandler()
	require.Nil(t, handler.Register(registerRequest("a@x.com")))
	require.Nil(t, handler.VerifyEmail(findByEmail(t, store, "a@x.com").VerificationToken))

	first, err := handler.Login("a@x.com", "secret123", "10.0.0.1", "test-agent")
	require.Nil(t, err)

	second, err := handler.Refresh(first.RefreshToken, "10.0.0.1", "test-agent")
	require.Nil(t, err)
	require.NotEmpty(t, second.Token)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// старый токен отозван ротацией
	_, err = handler.Refresh(first.RefreshToken, "10.0.0.1", "test-agent")
	require.ErrorIs(t, err, apperr.ErrTokenInvalid)

	// повторное использование отозвало и новый токен
	_, err = handler.Refresh(second.RefreshToken, "10.0.0.1", "test-agent")
	require.ErrorIs(t, err, apperr.ErrTokenInvalid)
}

func TestRevokeToken(t *testing.T) {
	initTestConfig()
	handler, store, _ := newTestHandler()
	require.Nil(t, handler.Register(registerRequest("a@x.com")))
	require.Nil(t, handler.VerifyEmail(findByEmail(t, store, "a@x.com").VerificationToken))
	resp, err := handler.Login("a@x.com", "secret123", "10.0.0.1", "test-agent")
	require.Nil(t, err)

	t.Run(`чужой токен без повышенной роли - запрещено`, func(t *testing.T) {
		stranger := middleware.CurrentUser{ID: uuid.NewString(), Role: models.AccountRoleEmployee}
		err := handler.RevokeToken(resp.RefreshToken, stranger, "10.0.0.2")
		require.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run(`администратор может отозвать любой токен`, func(t *testing.T) {
		admin := middleware.CurrentUser{ID: uuid.NewString(), Role: models.AccountRoleAdmin}
		require.Nil(t, handler.RevokeToken(resp.RefreshToken, admin, "10.0.0.3"))

		_, err := handler.Refresh(resp.RefreshToken, "10.0.0.1", "test-agent")
		require.ErrorIs(t, err, apperr.ErrTokenInvalid)
	})
}

func TestPasswordReset(t *testing.T) {
	initTestConfig()
	handler, store, mailer := newTestHandler()
	require.Nil(t, handler.Register(registerRequest("a@x.com")))
	require.Nil(t, handler.VerifyEmail(findByEmail(t, store, "a@x.com").VerificationToken))

	t.Run(`неизвестная почта не раскрывается`, func(t *testing.T) {
		sentBefore := len(mailer.sent)
		require.Nil(t, handler.ForgotPassword("ghost@x.com"))
		require.Len(t, mailer.sent, sentBefore)
	})

	require.Nil(t, handler.ForgotPassword("a@x.com"))
	resetCode := findByEmail(t, store, "a@x.com").ResetToken
	require.NotEmpty(t, resetCode)

	t.Run(`проверка кода`, func(t *testing.T) {
		require.Nil(t, handler.ValidateResetToken(resetCode))
		require.ErrorIs(t, handler.ValidateResetToken("no-such-code"), apperr.ErrTokenInvalid)
	})

	t.Run(`смена пароля по коду`, func(t *testing.T) {
		require.Nil(t, handler.ResetPassword(resetCode, "newsecret123"))

		_, err := handler.Login("a@x.com", "secret123", "10.0.0.1", "test-agent")
		require.ErrorIs(t, err, apperr.ErrUnauthenticated)

		resp, err := handler.Login("a@x.com", "newsecret123", "10.0.0.1", "test-agent")
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)

		// код одноразовый
		require.ErrorIs(t, handler.ResetPassword(resetCode, "another123"), apperr.ErrTokenInvalid)
	})

	t.Run(`просроченный код`, func(t *testing.T) {
		require.Nil(t, handler.ForgotPassword("a@x.com"))
		rec := findByEmail(t, store, "a@x.com")
		expired := time.Now().Add(-time.Hour)
		require.Nil(t, store.Update(rec.ID, map[string]interface{}{"reset_token_expires_at": expired}))
		require.ErrorIs(t, handler.ValidateResetToken(rec.ResetToken), apperr.ErrTokenInvalid)
	})
}
