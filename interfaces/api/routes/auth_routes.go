package routes

import (
	"github.com/gofiber/fiber/v2"

	"todolist-api/interfaces/api/handlers"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, m *Middlewares) {
	auth := api.Group("/auth")

	// Public, rate limited per IP
	auth.Post("/register", m.AuthLimiter, h.AuthHandler.Register)
	auth.Post("/login", m.AuthLimiter, h.AuthHandler.Login)

	auth.Post("/logout", m.Protected, h.AuthHandler.Logout)
	auth.Post("/refresh", m.Protected, h.AuthHandler.Refresh)
	auth.Get("/me", m.Protected, h.AuthHandler.Me)
}
