package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/services"
	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
)

func SetupCommentRoutes(api fiber.Router, h *handlers.Handlers, userService services.UserService) {
	comments := api.Group("/tasks/:task_id/comments")
	comments.Use(middleware.Protected(userService, middleware.BasicOnly))

	comments.Post("/", h.CommentHandler.AddComment)
	comments.Get("/", h.CommentHandler.ListComments)
	comments.Put("/:comment_id", h.CommentHandler.UpdateComment)
	comments.Delete("/:comment_id", h.CommentHandler.DeleteComment)
}
