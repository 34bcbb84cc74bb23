package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-portal-backend/controllers"
	requesthandler "hr-portal-backend/lib/request"
	"hr-portal-backend/middleware"
	"hr-portal-backend/models"
	apimodels "hr-portal-backend/models/api"
	requestapimodels "hr-portal-backend/models/api/request"
)

type requestApiController struct {
	controllers.BaseAPIController
	requests requesthandler.Provider
}

func InitRequestApiRouters(app *fiber.App, authorizer *middleware.Authorizer, requests requesthandler.Provider) {
	controller := requestApiController{requests: requests}
	app.Route("/api/v1/requests", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", authorizer.RoleRequired(models.AccountRoleSuperAdmin, models.AccountRoleAdmin), controller.getList)
		router.Put(":id/status", authorizer.RoleRequired(models.AccountRoleSuperAdmin, models.AccountRoleAdmin), controller.setStatus)
		router.Use(authorizer.RoleRequired())
		router.Get("my", controller.listMine)
		router.Post("", controller.create)
		router.Get(":id", controller.getByID)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Список заявок
// @Tags Заявки
// @Description Постраничный список всех заявок
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	page				query		int	false	"номер страницы"
// @Param	limit				query		int	false	"размер страницы"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.RequestView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/requests [get]
func (c *requestApiController) getList(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	page, limit := pagination.GetPage()
	list, rowCount, err := c.requests.GetList(page, limit)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Мои заявки
// @Tags Заявки
// @Description Заявки текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RequestView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/requests/my [get]
func (c *requestApiController) listMine(ctx *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется аутентификация"))
	}
	list, err := c.requests.ListMine(user)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание заявки
// @Tags Заявки
// @Description Создание заявки от имени текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		requestapimodels.RequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/requests [post]
func (c *requestApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestData
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
	id, err := c.requests.Create(payload, user)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Заявка по идентификатору
// @Tags Заявки
// @Description Заявка доступна владельцу и администраторам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор заявки"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/requests/{id} [get]
func (c *requestApiController) getByID(ctx *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется аутентификация"))
	}
	resp, err := c.requests.GetByID(ctx.Params("id"), user)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление заявки
// @Tags Заявки
// @Description Обновление типа и позиций, только пока заявка на рассмотрении
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор заявки"
// @Param	body				body		requestapimodels.RequestData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/requests/{id} [put]
func (c *requestApiController) update(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestData
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
	if err := c.requests.Update(ctx.Params("id"), payload, user); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("заявка обновлена"))
}

// @Summary Решение по заявке
// @Tags Заявки
// @Description Согласование или отклонение, решивший фиксируется в заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор заявки"
// @Param	body				body		requestapimodels.StatusUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/requests/{id}/status [put]
func (c *requestApiController) setStatus(ctx *fiber.Ctx) error {
	var payload requestapimodels.StatusUpdate
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
	if err := c.requests.SetStatus(ctx.Params("id"), payload, user); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("статус обновлен"))
}

// @Summary Удаление заявки
// @Tags Заявки
// @Description Сотрудник удаляет только свою нерассмотренную заявку
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор заявки"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/requests/{id} [delete]
func (c *requestApiController) delete(ctx *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется аутентификация"))
	}
	if err := c.requests.Delete(ctx.Params("id"), user); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("заявка удалена"))
}
