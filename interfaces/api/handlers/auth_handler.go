package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
	"todolist-api/domain/services"
	"todolist-api/pkg/datetime"
	"todolist-api/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
	formatter   *datetime.Formatter
}

func NewAuthHandler(authService services.AuthService, formatter *datetime.Formatter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		formatter:   formatter,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	user, token, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "")
	}

	return utils.CreatedResponse(c, h.authResponse(user, token), "Usuário criado com sucesso")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	user, token, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "")
	}

	return utils.SuccessResponse(c, h.authResponse(user, token), "Login realizado com sucesso")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.authService.Logout(c.UserContext(), caller); err != nil {
		return respondError(c, err, "")
	}

	return utils.MessageResponse(c, "Logout realizado com sucesso")
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	token, err := h.authService.Refresh(c.UserContext(), caller)
	if err != nil {
		return respondError(c, err, "Usuário não encontrado")
	}

	return utils.SuccessResponse(c, h.tokenResponse(token), "Token renovado com sucesso")
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.authService.Me(c.UserContext(), caller.ID)
	if err != nil {
		return respondError(c, err, "Usuário não encontrado")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user, h.formatter), "Usuário autenticado")
}

func (h *AuthHandler) authResponse(user *models.User, token *utils.IssuedToken) dto.AuthResponse {
	return dto.AuthResponse{
		User:          dto.UserToUserResponse(user, h.formatter),
		TokenResponse: h.tokenResponse(token),
	}
}

func (h *AuthHandler) tokenResponse(token *utils.IssuedToken) dto.TokenResponse {
	return dto.IssuedTokenToResponse(token.Token, token.ExpiresIn, h.formatter.DateTime(token.ExpiresAt))
}
