package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"todolist-api/pkg/logger"
	"todolist-api/pkg/utils"
)

// ErrorHandler renders errors that escaped the handlers (unknown routes,
// body limits, panics) with the same envelope as everything else
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Erro interno do servidor"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			switch code {
			case fiber.StatusNotFound:
				message = "Rota não encontrada"
			case fiber.StatusMethodNotAllowed:
				message = "Método não permitido"
			default:
				message = fe.Message
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err)
		}

		return utils.ErrorResponse(c, code, message, nil)
	}
}
