package handlers

import (
	"taskmanager/domain/services"
)

// Services carries everything the handler layer depends on.
type Services struct {
	UserService    services.UserService
	TaskService    services.TaskService
	CommentService services.CommentService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	TaskHandler    *TaskHandler
	CommentHandler *CommentHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:    NewAuthHandler(services.UserService),
		UserHandler:    NewUserHandler(services.UserService),
		TaskHandler:    NewTaskHandler(services.TaskService),
		CommentHandler: NewCommentHandler(services.CommentService),
	}
}
