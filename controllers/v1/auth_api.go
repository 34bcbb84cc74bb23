package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-portal-backend/controllers"
	authhandler "hr-portal-backend/lib/auth"
	"hr-portal-backend/middleware"
	apimodels "hr-portal-backend/models/api"
	authapimodels "hr-portal-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
	auth authhandler.Provider
}

func InitAuthApiRouters(app *fiber.App, authorizer *middleware.Authorizer, auth authhandler.Provider) {
	controller := authApiController{auth: auth}
	app.Route("/api/v1/auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("verify-email", controller.verifyEmail)
		router.Post("login", controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Post("forgot-password", controller.forgotPassword)
		router.Post("validate-reset-token", controller.validateResetToken)
		router.Post("reset-password", controller.resetPassword)
		router.Use(middleware.AuthorizationRequired())
		router.Post("revoke-token", authorizer.RoleRequired(), controller.revokeToken)
		router.Get("me", authorizer.RoleRequired(), controller.me)
	})
}

// @Summary Регистрация аккаунта
// @Tags Аутентификация пользователей
// @Description Регистрация аккаунта с подтверждением почты
// @Param	body				body		authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.auth.Register(payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("регистрация выполнена, проверьте почту"))
}

// @Summary Подтверждение почты
// @Tags Аутентификация пользователей
// @Description Подтверждение почты по коду из письма
// @Param	token				query		string	true	"код подтверждения"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/verify-email [post]
func (c *authApiController) verifyEmail(ctx *fiber.Ctx) error {
	code := ctx.Query("token")
	if err := c.auth.VerifyEmail(code); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("почта подтверждена"))
}

// @Summary Аутентификация пользователя
// @Tags Аутентификация пользователей
// @Description Аутентификация пользователя
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.auth.Login(payload.Email, payload.Password, ctx.IP(), ctx.Get(fiber.HeaderUserAgent))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновить JWT
// @Tags Аутентификация пользователей
// @Description Ротация refresh token с выдачей новой пары
// @Param	body				body		authapimodels.JWTRefreshRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	var payload authapimodels.JWTRefreshRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.auth.Refresh(payload.RefreshToken, ctx.IP(), ctx.Get(fiber.HeaderUserAgent))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отзыв refresh token
// @Tags Аутентификация пользователей
// @Description Отзыв сессии, сотрудник может отозвать только свой токен
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		authapimodels.RevokeTokenRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/auth/revoke-token [post]
func (c *authApiController) revokeToken(ctx *fiber.Ctx) error {
	var payload authapimodels.RevokeTokenRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user, ok := middleware.GetCurrentUser(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется аутентификация"))
	}
	if err := c.auth.RevokeToken(payload.RefreshToken, user, ctx.IP()); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("токен отозван"))
}

// @Summary Восстановление пароля
// @Tags Аутентификация пользователей
// @Description Отправка письма с кодом для сброса пароля
// @Param	body				body		authapimodels.PasswordRecovery	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/auth/forgot-password [post]
func (c *authApiController) forgotPassword(ctx *fiber.Ctx) error {
	var payload authapimodels.PasswordRecovery
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.auth.ForgotPassword(payload.Email); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("если почта зарегистрирована, письмо отправлено"))
}

// @Summary Проверка кода сброса пароля
// @Tags Аутентификация пользователей
// @Description Проверка действительности кода сброса
// @Param	token				query		string	true	"код сброса"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/validate-reset-token [post]
func (c *authApiController) validateResetToken(ctx *fiber.Ctx) error {
	code := ctx.Query("token")
	if err := c.auth.ValidateResetToken(code); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("код действителен"))
}

// @Summary Сброс пароля
// @Tags Аутентификация пользователей
// @Description Установка нового пароля по коду из письма
// @Param	body				body		authapimodels.PasswordResetRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/reset-password [post]
func (c *authApiController) resetPassword(ctx *fiber.Ctx) error {
	var payload authapimodels.PasswordResetRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.auth.ResetPassword(payload.ResetCode, payload.NewPassword); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("пароль обновлен"))
}

// @Summary Получить информацию о текущем пользователе
// @Tags Аутентификация пользователей
// @Description Получить информацию о текущем пользователе
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=accountapimodels.AccountView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := c.auth.Me(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
