package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-portal-backend/controllers"
	departmenthandler "hr-portal-backend/lib/department"
	"hr-portal-backend/middleware"
	"hr-portal-backend/models"
	apimodels "hr-portal-backend/models/api"
	departmentapimodels "hr-portal-backend/models/api/department"
)

type departmentApiController struct {
	controllers.BaseAPIController
	departments departmenthandler.Provider
}

func InitDepartmentApiRouters(app *fiber.App, authorizer *middleware.Authorizer, departments departmenthandler.Provider) {
	controller := departmentApiController{departments: departments}
	app.Route("/api/v1/departments", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", authorizer.RoleRequired(), controller.getList)
		router.Get(":id", authorizer.RoleRequired(), controller.getByID)
		admin := authorizer.RoleRequired(models.AccountRoleSuperAdmin, models.AccountRoleAdmin)
		router.Post("", admin, controller.create)
		router.Put(":id", admin, controller.update)
		router.Delete(":id", admin, controller.delete)
	})
}

// @Summary Список подразделений
// @Tags Подразделения
// @Description Список подразделений с количеством сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]departmentapimodels.DepartmentView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/departments [get]
func (c *departmentApiController) getList(ctx *fiber.Ctx) error {
	list, err := c.departments.GetList()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Подразделение по идентификатору
// @Tags Подразделения
// @Description Подразделение по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор подразделения"
// @Success 200 {object} apimodels.Response{data=departmentapimodels.DepartmentView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/departments/{id} [get]
func (c *departmentApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := c.departments.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание подразделения
// @Tags Подразделения
// @Description Создание подразделения, название уникально
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		departmentapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/departments [post]
func (c *departmentApiController) create(ctx *fiber.Ctx) error {
	var payload departmentapimodels.DepartmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.departments.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление подразделения
// @Tags Подразделения
// @Description Обновление подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор подразделения"
// @Param	body				body		departmentapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/departments/{id} [put]
func (c *departmentApiController) update(ctx *fiber.Ctx) error {
	var payload departmentapimodels.DepartmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.departments.Update(ctx.Params("id"), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("подразделение обновлено"))
}

// @Summary Удаление подразделения
// @Tags Подразделения
// @Description Удаление подразделения, сотрудники остаются без подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор подразделения"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/departments/{id} [delete]
func (c *departmentApiController) delete(ctx *fiber.Ctx) error {
	if err := c.departments.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("подразделение удалено"))
}
