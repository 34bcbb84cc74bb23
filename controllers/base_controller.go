package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-portal-backend/lib/apperr"
	apimodels "hr-portal-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

// SendError - перевод типизированной ошибки в http статус,
// текст внутренних ошибок клиенту не отдается
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	if apperr.IsInternal(err) {
		log.WithError(err).Error("внутренняя ошибка обработки запроса")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("внутренняя ошибка сервера"))
	}
	return ctx.Status(apperr.StatusOf(err)).JSON(apimodels.NewError(err.Error()))
}
