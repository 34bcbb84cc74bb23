package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"hr-portal-backend/config"
	dbmodels "hr-portal-backend/models/db"
)

// GetAccessToken выдает короткоживущий подписанный токен с ид аккаунта и ролью
func GetAccessToken(account dbmodels.Account) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": account.GetFullName(),
		"sub":  account.ID,
		"role": string(account.Role),
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}
