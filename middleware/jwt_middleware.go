package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"hr-portal-backend/config"
	apimodels "hr-portal-backend/models/api"
)

// AuthorizationRequired - первая ступень пайплайна: проверка подписи и срока
// access токена из заголовка Authorization. Отсутствие, порча и просрочка
// токена неразличимы для клиента - всегда 401
func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется аутентификация"))
		},
	})
}
