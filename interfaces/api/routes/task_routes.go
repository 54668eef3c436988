package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/services"
	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, userService services.UserService) {
	basic := middleware.Protected(userService, middleware.BasicOnly)

	// Creation, deletion and assignment are admin-only; reads and field
	// updates are open to any authenticated user.
	api.Post("/tasks/add", basic, middleware.AdminOnly(), h.TaskHandler.CreateTask)
	api.Get("/tasks", basic, h.TaskHandler.GetTasks)
	api.Put("/tasks/:task_id", basic, h.TaskHandler.UpdateTask)
	api.Delete("/tasks/:task_id", basic, middleware.AdminOnly(), h.TaskHandler.DeleteTask)

	api.Post("/assign-task", basic, middleware.AdminOnly(), h.TaskHandler.AssignTask)
	api.Get("/assigned-tasks-list",
		middleware.Protected(userService, middleware.BearerOnly),
		h.TaskHandler.AssignedTasksList,
	)
}
