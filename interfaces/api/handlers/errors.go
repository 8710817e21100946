package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"todolist-api/domain/services"
	"todolist-api/pkg/logger"
	"todolist-api/pkg/utils"
)

// respondError maps service errors onto the envelope. notFound is the
// message used when the entity is missing or owned by someone else.
func respondError(c *fiber.Ctx, err error, notFound string) error {
	ctx := c.UserContext()

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.WarnContext(ctx, "Validation failed", "errors", verr.Fields)
		return utils.ValidationErrorResponse(c, verr.Fields)
	case services.IsNotFound(err):
		return utils.NotFoundResponse(c, notFound)
	case errors.Is(err, services.ErrCategoryHasTasks):
		return utils.BadRequestResponse(c, "Não é possível excluir categoria com tarefas associadas")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Credenciais inválidas")
	case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrTokenRevoked):
		return utils.UnauthorizedResponse(c, "Token inválido ou expirado")
	}

	logger.ErrorContext(ctx, "Request failed", "error", err)
	return utils.InternalServerErrorResponse(c)
}

// parseID reads the :id param. A malformed id cannot match any row, so it
// is reported the same way as a missing one.
func parseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

// parseBody decodes and validates a JSON body, writing the error response
// itself when it fails.
func parseBody(c *fiber.Ctx, req interface{ Normalize() }) (bool, error) {
	ctx := c.UserContext()

	if err := c.BodyParser(req); err != nil {
		if fields, ok := utils.GetDecodeErrors(err); ok {
			logger.WarnContext(ctx, "Validation failed", "errors", fields)
			return false, utils.ValidationErrorResponse(c, fields)
		}
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return false, utils.BadRequestResponse(c, "Corpo da requisição inválido")
	}
	req.Normalize()

	if err := utils.ValidateStruct(req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fields)
		return false, utils.ValidationErrorResponse(c, fields)
	}
	return true, nil
}

func currentUser(c *fiber.Ctx) (*utils.UserContext, bool) {
	user, err := utils.GetUserFromContext(c)
	return user, err == nil
}
