package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"hr-portal-backend/controllers"
	employeehandler "hr-portal-backend/lib/employee"
	xlsexport "hr-portal-backend/lib/export/xls"
	filestorage "hr-portal-backend/lib/file-storage"
	"hr-portal-backend/middleware"
	"hr-portal-backend/models"
	apimodels "hr-portal-backend/models/api"
	employeeapimodels "hr-portal-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
	employees employeehandler.Provider
	docs      filestorage.Provider
	export    xlsexport.Provider
}

func InitEmployeeApiRouters(
	app *fiber.App,
	authorizer *middleware.Authorizer,
	employees employeehandler.Provider,
	docs filestorage.Provider,
	export xlsexport.Provider,
) {
	controller := employeeApiController{
		employees: employees,
		docs:      docs,
		export:    export,
	}
	app.Route("/api/v1/employees", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", authorizer.RoleRequired(), controller.getList)
		router.Get("export", authorizer.RoleRequired(models.AccountRoleSuperAdmin, models.AccountRoleAdmin), controller.exportXls)
		router.Get(":id", authorizer.RoleRequired(), controller.getByID)
		admin := authorizer.RoleRequired(models.AccountRoleSuperAdmin, models.AccountRoleAdmin)
		router.Post("", admin, controller.create)
		router.Put(":id", admin, controller.update)
		router.Put(":id/transfer", admin, controller.transfer)
		router.Delete(":id", admin, controller.delete)
		router.Get(":id/docs", admin, controller.listDocs)
		router.Post(":id/docs", admin, controller.uploadDoc)
		router.Get(":id/docs/:docId", admin, controller.downloadDoc)
		router.Delete(":id/docs/:docId", admin, controller.deleteDoc)
	})
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Список сотрудников с данными аккаунта и подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.EmployeeView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *employeeApiController) getList(ctx *fiber.Ctx) error {
	list, err := c.employees.GetList()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Сотрудник по идентификатору
// @Tags Сотрудники
// @Description Сотрудник по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор сотрудника"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := c.employees.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание кадровой записи
// @Tags Сотрудники
// @Description Прием сотрудника, на аккаунт заводится ровно одна кадровая запись
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.CreateEmployee	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.CreateEmployee
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.employees.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление кадровой записи
// @Tags Сотрудники
// @Description Обновление должности и статуса, смена статуса фиксируется в журнале
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор сотрудника"
// @Param	body				body		employeeapimodels.UpdateEmployee	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	var payload employeeapimodels.UpdateEmployee
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.employees.Update(ctx.Params("id"), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("кадровая запись обновлена"))
}

// @Summary Перевод сотрудника
// @Tags Сотрудники
// @Description Перевод сотрудника в другое подразделение
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор сотрудника"
// @Param	body				body		employeeapimodels.TransferEmployee	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/employees/{id}/transfer [put]
func (c *employeeApiController) transfer(ctx *fiber.Ctx) error {
	var payload employeeapimodels.TransferEmployee
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.employees.Transfer(ctx.Params("id"), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("сотрудник переведен"))
}

// @Summary Удаление кадровой записи
// @Tags Сотрудники
// @Description Удаление кадровой записи вместе с журналом, заявками и документами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор сотрудника"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	if err := c.employees.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("кадровая запись удалена"))
}

// @Summary Выгрузка сотрудников в xlsx
// @Tags Сотрудники
// @Description Выгрузка списка сотрудников в файл xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 403 {object} apimodels.Response
// @router /api/v1/employees/export [get]
func (c *employeeApiController) exportXls(ctx *fiber.Ctx) error {
	buf, err := c.export.ExportEmployeeList()
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="employees.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Список документов сотрудника
// @Tags Сотрудники
// @Description Список документов сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор сотрудника"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.DocView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/employees/{id}/docs [get]
func (c *employeeApiController) listDocs(ctx *fiber.Ctx) error {
	list, err := c.docs.ListDocs(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Загрузка документа сотрудника
// @Tags Сотрудники
// @Description Загрузка документа сотрудника, файл в multipart поле file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор сотрудника"
// @Param	file				formData	file	true	"файл документа"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/employees/{id}/docs [post]
func (c *employeeApiController) uploadDoc(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл"))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл"))
	}
	id, err := c.docs.UploadDoc(ctx.Context(), ctx.Params("id"),
		fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), body)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Скачивание документа сотрудника
// @Tags Сотрудники
// @Description Скачивание документа сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор сотрудника"
// @Param	docId				path		string	true	"идентификатор документа"
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @router /api/v1/employees/{id}/docs/{docId} [get]
func (c *employeeApiController) downloadDoc(ctx *fiber.Ctx) error {
	doc, body, err := c.docs.GetDoc(ctx.Context(), ctx.Params("id"), ctx.Params("docId"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, doc.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.FileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Удаление документа сотрудника
// @Tags Сотрудники
// @Description Удаление документа сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор сотрудника"
// @Param	docId				path		string	true	"идентификатор документа"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/employees/{id}/docs/{docId} [delete]
func (c *employeeApiController) deleteDoc(ctx *fiber.Ctx) error {
	if err := c.docs.DeleteDoc(ctx.Context(), ctx.Params("id"), ctx.Params("docId")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("документ удален"))
}
