package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-portal-backend/controllers"
	accounthandler "hr-portal-backend/lib/account"
	"hr-portal-backend/middleware"
	"hr-portal-backend/models"
	apimodels "hr-portal-backend/models/api"
	accountapimodels "hr-portal-backend/models/api/account"
)

type accountApiController struct {
	controllers.BaseAPIController
	accounts accounthandler.Provider
}

func InitAccountApiRouters(app *fiber.App, authorizer *middleware.Authorizer, accounts accounthandler.Provider) {
	controller := accountApiController{accounts: accounts}
	app.Route("/api/v1/accounts", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(authorizer.RoleRequired(models.AccountRoleSuperAdmin, models.AccountRoleAdmin))
		router.Get("", controller.getList)
		router.Post("", controller.create)
		router.Get(":id", controller.getByID)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Список аккаунтов
// @Tags Аккаунты
// @Description Постраничный список аккаунтов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	page				query		int	false	"номер страницы"
// @Param	limit				query		int	false	"размер страницы"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]accountapimodels.AccountView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/accounts [get]
func (c *accountApiController) getList(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	page, limit := pagination.GetPage()
	list, rowCount, err := c.accounts.GetList(page, limit)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Создание аккаунта
// @Tags Аккаунты
// @Description Создание аккаунта администратором, почта считается подтвержденной
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		accountapimodels.CreateAccount	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/accounts [post]
func (c *accountApiController) create(ctx *fiber.Ctx) error {
	var payload accountapimodels.CreateAccount
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.accounts.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Аккаунт по идентификатору
// @Tags Аккаунты
// @Description Аккаунт по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор аккаунта"
// @Success 200 {object} apimodels.Response{data=accountapimodels.AccountView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/accounts/{id} [get]
func (c *accountApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := c.accounts.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление аккаунта
// @Tags Аккаунты
// @Description Обновление аккаунта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор аккаунта"
// @Param	body				body		accountapimodels.UpdateAccount	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/accounts/{id} [put]
func (c *accountApiController) update(ctx *fiber.Ctx) error {
	var payload accountapimodels.UpdateAccount
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.accounts.Update(ctx.Params("id"), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("аккаунт обновлен"))
}

// @Summary Удаление аккаунта
// @Tags Аккаунты
// @Description Удаление аккаунта вместе с сессиями и кадровой записью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор аккаунта"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/accounts/{id} [delete]
func (c *accountApiController) delete(ctx *fiber.Ctx) error {
	if err := c.accounts.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("аккаунт удален"))
}
