package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/services"
	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, userService services.UserService) {
	api.Post("/sign_up", h.AuthHandler.SignUp)

	// Sign-in authenticates with basic credentials and answers with a
	// bearer token.
	api.Post("/sign_in",
		middleware.Protected(userService, middleware.BasicOnly),
		h.AuthHandler.SignIn,
	)
}
