package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	accountstore "hr-portal-backend/lib/account/store"
	tokenhandler "hr-portal-backend/lib/token"
	authutils "hr-portal-backend/lib/utils/auth-utils"
	"hr-portal-backend/models"
	apimodels "hr-portal-backend/models/api"
)

const currentUserKey = "currentUser"

// CurrentUser - контекст авторизованного запроса, заполняется только
// после успешного прохождения обеих ступеней пайплайна
type CurrentUser struct {
	ID            string
	Role          models.AccountRole
	refreshTokens []string
}

// OwnsToken - принадлежит ли refresh token текущему аккаунту,
// активные токены загружаются один раз на запрос
func (u CurrentUser) OwnsToken(token string) bool {
	for _, t := range u.refreshTokens {
		if t == token {
			return true
		}
	}
	return false
}

type Authorizer struct {
	accountStore accountstore.Provider
	tokenHandler tokenhandler.Provider
}

func NewAuthorizer(accountStore accountstore.Provider, tokens tokenhandler.Provider) *Authorizer {
	return &Authorizer{
		accountStore: accountStore,
		tokenHandler: tokens,
	}
}

// RoleRequired - вторая ступень пайплайна: аккаунт из токена должен
// существовать, а при непустом наборе ролей - входить в него.
// Пустой набор означает "любой аутентифицированный аккаунт"
func (a *Authorizer) RoleRequired(roles ...models.AccountRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		accountID := GetUserID(ctx)
		if accountID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется аутентификация"))
		}
		account, err := a.accountStore.GetByID(accountID)
		if err != nil {
			log.
				WithField("account_id", accountID).
				WithError(err).
				Error("ошибка загрузки аккаунта при авторизации")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("внутренняя ошибка сервиса"))
		}
		if account == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("аккаунт не найден"))
		}
		if len(roles) != 0 && !roleInSet(account.Role, roles) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		activeTokens, err := a.tokenHandler.ListActive(account.ID)
		if err != nil {
			log.
				WithField("account_id", accountID).
				WithError(err).
				Error("ошибка загрузки refresh токенов при авторизации")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("внутренняя ошибка сервиса"))
		}
		user := CurrentUser{
			ID:   account.ID,
			Role: account.Role,
		}
		for _, rec := range activeTokens {
			user.refreshTokens = append(user.refreshTokens, rec.Token)
		}
		ctx.Locals(currentUserKey, user)
		return ctx.Next()
	}
}

func roleInSet(role models.AccountRole, roles []models.AccountRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func GetCurrentUser(ctx *fiber.Ctx) (CurrentUser, bool) {
	user, ok := ctx.Locals(currentUserKey).(CurrentUser)
	return user, ok
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if id, ok := sub.(string); ok {
			return id
		}
	}
	return ""
}
