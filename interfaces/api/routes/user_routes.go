package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/services"
	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, userService services.UserService) {
	api.Get("/user_info",
		middleware.Protected(userService, middleware.BearerOnly),
		h.UserHandler.UserInfo,
	)

	api.Get("/users",
		middleware.Protected(userService, middleware.BasicOnly),
		middleware.AdminOnly(),
		h.UserHandler.ListUsers,
	)

	api.Delete("/delete_user/:user_id",
		middleware.Protected(userService, middleware.BasicOnly),
		middleware.AdminOnly(),
		h.UserHandler.DeleteUser,
	)
}
