package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ========== Response Structures ==========

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// PaginatedResponse always carries data (an empty list when nothing matched)
type PaginatedResponse struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Message    string     `json:"message,omitempty"`
}

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func CreatedResponse(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// MessageResponse is a 200 with no data, used after deletes and logout
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
	})
}

func PaginatedSuccessResponse(c *fiber.Ctx, data any, pagination Pagination, message string) error {
	return c.Status(fiber.StatusOK).JSON(PaginatedResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
		Message:    message,
	})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, errors map[string][]string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string][]string) error {
	return ErrorResponse(c, fiber.StatusUnprocessableEntity, "Dados inválidos", errors)
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message, nil)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Não autenticado"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, message, nil)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Recurso não encontrado"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message, nil)
}

func TooManyRequestsResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusTooManyRequests, "Muitas requisições, tente novamente em instantes", nil)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor", nil)
}
