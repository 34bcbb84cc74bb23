package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"hr-portal-backend/config"
	authutils "hr-portal-backend/lib/utils/auth-utils"
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

type fakeAccountStore struct {
	accounts map[string]*dbmodels.Account
}

func (f *fakeAccountStore) Create(rec dbmodels.Account) (string, error) { return rec.ID, nil }
func (f *fakeAccountStore) Update(accountID string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeAccountStore) Delete(accountID string) error { return nil }
func (f *fakeAccountStore) GetByID(accountID string) (*dbmodels.Account, error) {
	return f.accounts[accountID], nil
}
func (f *fakeAccountStore) FindByEmail(email string) (*dbmodels.Account, error) { return nil, nil }
func (f *fakeAccountStore) FindByVerificationToken(token string) (*dbmodels.Account, error) {
	return nil, nil
}
func (f *fakeAccountStore) FindByResetToken(token string) (*dbmodels.Account, error) {
	return nil, nil
}
func (f *fakeAccountStore) ExistByEmail(email string) (bool, error) { return false, nil }
func (f *fakeAccountStore) GetList(page, limit int) ([]dbmodels.Account, int64, error) {
	return nil, 0, nil
}
func (f *fakeAccountStore) Count() (int64, error) { return 0, nil }

type fakeTokenHandler struct {
	active map[string][]dbmodels.RefreshToken
}

func (f *fakeTokenHandler) IssueAccessToken(account dbmodels.Account) (string, error) {
	return authutils.GetAccessToken(account)
}
func (f *fakeTokenHandler) IssueRefreshToken(account dbmodels.Account, ip, userAgent string) (*dbmodels.RefreshToken, error) {
	return nil, nil
}
func (f *fakeTokenHandler) Rotate(token, ip, userAgent string) (*dbmodels.RefreshToken, error) {
	return nil, nil
}
func (f *fakeTokenHandler) Revoke(token, ip string) error { return nil }
func (f *fakeTokenHandler) ListActive(accountID string) ([]dbmodels.RefreshToken, error) {
	return f.active[accountID], nil
}

func newTestApp(authorizer *Authorizer, roles ...models.AccountRole) (*fiber.App, *CurrentUser) {
	seen := &CurrentUser{}
	app := fiber.New()
	app.Use(AuthorizationRequired())
	app.Use(authorizer.RoleRequired(roles...))
	app.Get("/protected", func(ctx *fiber.Ctx) error {
		user, ok := GetCurrentUser(ctx)
		if !ok {
			return ctx.SendStatus(fiber.StatusInternalServerError)
		}
		*seen = user
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app, seen
}

func TestAuthorizationPipeline(t *testing.T) {
	initTestConfig()

	account := dbmodels.Account{
		BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
		FirstName: "Мария",
		LastName:  "Иванова",
		Email:     "maria@example.com",
		Role:      models.AccountRoleAdmin,
	}
	accountStore := &fakeAccountStore{accounts: map[string]*dbmodels.Account{account.ID: &account}}
	tokens := &fakeTokenHandler{active: map[string][]dbmodels.RefreshToken{
		account.ID: {{Token: "owned-refresh-token", AccountID: account.ID, ExpiresAt: time.Now().Add(time.Hour)}},
	}}
	authorizer := NewAuthorizer(accountStore, tokens)

	accessToken, err := authutils.GetAccessToken(account)
	require.Nil(t, err)

	t.Run(`роль входит в набор - доступ разрешен`, func(t *testing.T) {
		app, seen := newTestApp(authorizer, models.AccountRoleAdmin, models.AccountRoleSuperAdmin)
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, account.ID, seen.ID)
		require.Equal(t, models.AccountRoleAdmin, seen.Role)
		require.True(t, seen.OwnsToken("owned-refresh-token"))
		require.False(t, seen.OwnsToken("foreign-token"))
	})

	t.Run(`пустой набор ролей - любой аутентифицированный`, func(t *testing.T) {
		app, seen := newTestApp(authorizer)
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, account.ID, seen.ID)
	})

	t.Run(`роль не входит в набор - 403 без контекста`, func(t *testing.T) {
		app, seen := newTestApp(authorizer, models.AccountRoleSuperAdmin)
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		require.Empty(t, seen.ID)
	})

	t.Run(`без токена - 401`, func(t *testing.T) {
		app, seen := newTestApp(authorizer)
		req := httptest.NewRequest("GET", "/protected", nil)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		require.Empty(t, seen.ID)
	})

	t.Run(`мусорный токен - 401`, func(t *testing.T) {
		app, seen := newTestApp(authorizer)
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		require.Empty(t, seen.ID)
	})

	t.Run(`просроченный токен - 401`, func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":  account.ID,
			"role": string(account.Role),
			"exp":  time.Now().Add(-time.Minute).Unix(),
			"iat":  time.Now().Add(-time.Hour).Unix(),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(config.Conf.Auth.JWTSecret))
		require.Nil(t, err)

		app, seen := newTestApp(authorizer)
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		require.Empty(t, seen.ID)
	})

	t.Run(`аккаунт удален - 401`, func(t *testing.T) {
		ghost := dbmodels.Account{
			BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
			Role:      models.AccountRoleEmployee,
		}
		ghostToken, err := authutils.GetAccessToken(ghost)
		require.Nil(t, err)

		app, seen := newTestApp(authorizer)
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+ghostToken)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		require.Empty(t, seen.ID)
	})
}
