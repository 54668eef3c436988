package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/services"
	"taskmanager/interfaces/api/handlers"
)

// SetupRoutes registers the whole HTTP surface. The user service is needed
// alongside the handlers because the auth middleware resolves credentials
// through it.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, userService services.UserService) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, userService)
	SetupUserRoutes(api, h, userService)
	SetupTaskRoutes(api, h, userService)
	SetupCommentRoutes(api, h, userService)
}
