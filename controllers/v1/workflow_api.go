package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-portal-backend/controllers"
	workflowhandler "hr-portal-backend/lib/workflow"
	"hr-portal-backend/middleware"
	"hr-portal-backend/models"
	apimodels "hr-portal-backend/models/api"
	workflowapimodels "hr-portal-backend/models/api/workflow"
)

type workflowApiController struct {
	controllers.BaseAPIController
	workflows workflowhandler.Provider
}

func InitWorkflowApiRouters(app *fiber.App, authorizer *middleware.Authorizer, workflows workflowhandler.Provider) {
	controller := workflowApiController{workflows: workflows}
	app.Route("/api/v1/workflows", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(authorizer.RoleRequired(models.AccountRoleSuperAdmin, models.AccountRoleAdmin))
		router.Post("", controller.create)
		router.Get("employee/:employeeId", controller.listByEmployee)
		router.Get(":id", controller.getByID)
		router.Put(":id/status", controller.setStatus)
	})
}

// @Summary Создание кадрового действия
// @Tags Кадровые действия
// @Description Создание кадрового действия по сотруднику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		workflowapimodels.WorkflowData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/workflows [post]
func (c *workflowApiController) create(ctx *fiber.Ctx) error {
	var payload workflowapimodels.WorkflowData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.workflows.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Кадровые действия по сотруднику
// @Tags Кадровые действия
// @Description Журнал кадровых действий сотрудника, свежие первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	employeeId			path		string	true	"идентификатор сотрудника"
// @Success 200 {object} apimodels.Response{data=[]workflowapimodels.WorkflowView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/workflows/employee/{employeeId} [get]
func (c *workflowApiController) listByEmployee(ctx *fiber.Ctx) error {
	list, err := c.workflows.ListByEmployee(ctx.Params("employeeId"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Кадровое действие по идентификатору
// @Tags Кадровые действия
// @Description Кадровое действие по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор кадрового действия"
// @Success 200 {object} apimodels.Response{data=workflowapimodels.WorkflowView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/workflows/{id} [get]
func (c *workflowApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := c.workflows.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Решение по кадровому действию
// @Tags Кадровые действия
// @Description Смена статуса, решение принимается один раз
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор кадрового действия"
// @Param	body				body		workflowapimodels.StatusUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/workflows/{id}/status [put]
func (c *workflowApiController) setStatus(ctx *fiber.Ctx) error {
	var payload workflowapimodels.StatusUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.workflows.SetStatus(ctx.Params("id"), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("статус обновлен"))
}
