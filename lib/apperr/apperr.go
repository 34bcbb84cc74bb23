package apperr

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Типизированные ошибки ядра, слой роутов переводит их в http статусы,
// ошибки БД наружу не отдаются
var (
	ErrUnauthenticated = errors.New("требуется аутентификация")
	ErrForbidden       = errors.New("операция недоступна")
	ErrTokenInvalid    = errors.New("недействительный refresh token")
	ErrConflict        = errors.New("запись уже существует")
	ErrNotFound        = errors.New("запись не найдена")
)

// ValidationError - ошибка валидации входных данных с сообщениями по полям
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, field+": "+msg)
	}
	return strings.Join(msgs, "; ")
}

// StatusOf - http статус для типизированной ошибки, все прочее - 500
func StatusOf(err error) int {
	var validationErr *ValidationError
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// IsInternal - сообщения внутренних ошибок наружу не отдаются
func IsInternal(err error) bool {
	return StatusOf(err) == fiber.StatusInternalServerError
}
