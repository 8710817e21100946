package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"todolist-api/domain/services"
	"todolist-api/pkg/logger"
	"todolist-api/pkg/utils"
)

// Protected requires a valid, unrevoked bearer token and stores the caller
// in fiber locals and the request logging context
func Protected(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Token não fornecido")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Formato do cabeçalho de autorização inválido")
		}

		caller, err := authService.Authenticate(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTokenRevoked):
				logger.WarnContext(ctx, "Revoked token presented")
				return utils.UnauthorizedResponse(c, "Token revogado")
			case errors.Is(err, services.ErrInvalidToken):
				logger.WarnContext(ctx, "Token validation failed")
				return utils.UnauthorizedResponse(c, "Token inválido ou expirado")
			default:
				logger.ErrorContext(ctx, "Token check failed", "error", err)
				return utils.InternalServerErrorResponse(c)
			}
		}

		c.Locals(utils.UserContextKey, caller)
		c.SetUserContext(logger.ContextWithUserID(ctx, caller.ID.String()))

		return c.Next()
	}
}
