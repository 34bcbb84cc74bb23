package tokenhandler

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"hr-portal-backend/config"
	"hr-portal-backend/lib/apperr"
	tokenstore "hr-portal-backend/lib/token/store"
	"hr-portal-backend/models"
	dbmodels "hr-portal-backend/models/db"
)

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 900
	conf.Auth.RefreshExpireInDays = 7
	config.Conf = conf
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
	rec.CreatedAt = time.Now()
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

func testAccount() dbmodels.Account {
	return dbmodels.Account{
		BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
		FirstName: "Иван",
		LastName:  "Петров",
		Email:     "ivan@example.com",
		Role:      models.AccountRoleEmployee,
	}
}

func TestIssueAccessToken(t *testing.T) {
	initTestConfig()
	handler := NewHandler(newFakeTokenStore())
	account := testAccount()

	tokenString, err := handler.IssueAccessToken(account)
	require.Nil(t, err)

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.Nil(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, account.ID, claims["sub"])
	require.Equal(t, string(models.AccountRoleEmployee), claims["role"])
}

func TestIssueRefreshToken(t *testing.T) {
	initTestConfig()
	store := newFakeTokenStore()
	handler := NewHandler(store)
	account := testAccount()

	rec, err := handler.IssueRefreshToken(account, "10.0.0.1", "test-agent")
	require.Nil(t, err)
	require.Len(t, rec.Token, refreshTokenByteLen*2)
	require.Equal(t, account.ID, rec.AccountID)
	require.Equal(t, "10.0.0.1", rec.CreatedByIP)
	require.True(t, rec.IsActive())

	saved, err := store.GetByToken(rec.Token)
	require.Nil(t, err)
	require.NotNil(t, saved)
}

func TestRotate(t *testing.T) {
	initTestConfig()

	t.Run(`успешная ротация отзывает старый токен`, func(t *testing.T) {
		store := newFakeTokenStore()
		handler := NewHandler(store)
		account := testAccount()

		oldRec, err := handler.IssueRefreshToken(account, "10.0.0.1", "test-agent")
		require.Nil(t, err)

		newRec, err := handler.Rotate(oldRec.Token, "10.0.0.2", "test-agent")
		require.Nil(t, err)
		require.NotEqual(t, oldRec.Token, newRec.Token)
		require.Equal(t, account.ID, newRec.AccountID)

		revoked, err := store.GetByToken(oldRec.Token)
		require.Nil(t, err)
		require.True(t, revoked.IsRevoked())
		require.Equal(t, newRec.Token, revoked.ReplacedByToken)
		require.Equal(t, "10.0.0.2", revoked.RevokedByIP)
	})

	t.Run(`неизвестный токен`, func(t *testing.T) {
		handler := NewHandler(newFakeTokenStore())
		_, err := handler.Rotate("no-such-token", "10.0.0.1", "test-agent")
		require.ErrorIs(t, err, apperr.ErrTokenInvalid)
	})

	t.Run(`просроченный токен`, func(t *testing.T) {
		store := newFakeTokenStore()
		handler := NewHandler(store)
		expired := dbmodels.RefreshToken{
			Token:     "expired-token",
			AccountID: uuid.NewString(),
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		require.Nil(t, store.Create(expired))

		_, err := handler.Rotate(expired.Token, "10.0.0.1", "test-agent")
		require.ErrorIs(t, err, apperr.ErrTokenInvalid)
	})

	t.Run(`повторное использование отзывает цепочку`, func(t *testing.T) {
		store := newFakeTokenStore()
		handler := NewHandler(store)
		account := testAccount()

		first, err := handler.IssueRefreshToken(account, "10.0.0.1", "test-agent")
		require.Nil(t, err)
		second, err := handler.Rotate(first.Token, "10.0.0.1", "test-agent")
		require.Nil(t, err)
		third, err := handler.Rotate(second.Token, "10.0.0.1", "test-agent")
		require.Nil(t, err)

		// первый токен уже отозван, повторная ротация - инцидент
		_, err = handler.Rotate(first.Token, "10.6.6.6", "bad-agent")
		require.ErrorIs(t, err, apperr.ErrTokenInvalid)

		for _, token := range []string{first.Token, second.Token, third.Token} {
			rec, err := store.GetByToken(token)
			require.Nil(t, err)
			require.True(t, rec.IsRevoked(), "токен %s должен быть отозван", token)
		}

		active, err := handler.ListActive(account.ID)
		require.Nil(t, err)
		require.Empty(t, active)
	})
}

func TestRevoke(t *testing.T) {
	initTestConfig()
	store := newFakeTokenStore()
	handler := NewHandler(store)
	account := testAccount()

	rec, err := handler.IssueRefreshToken(account, "10.0.0.1", "test-agent")
	require.Nil(t, err)

	require.Nil(t, handler.Revoke(rec.Token, "10.0.0.1"))
	revoked, err := store.GetByToken(rec.Token)
	require.Nil(t, err)
	require.True(t, revoked.IsRevoked())

	// повторный отзыв не ошибка
	require.Nil(t, handler.Revoke(rec.Token, "10.0.0.1"))

	require.ErrorIs(t, handler.Revoke("no-such-token", "10.0.0.1"), apperr.ErrTokenInvalid)
}
