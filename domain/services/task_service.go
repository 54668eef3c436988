package services

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
)

type TaskService interface {
	// CreateTask persists a new task with the creator set. A duplicate
	// title yields ErrConflict.
	CreateTask(ctx context.Context, creatorID uint, req *dto.CreateTaskRequest) (*models.Task, error)

	GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error

	// AssignTask sets the assignee. Both the user and the task must exist.
	AssignTask(ctx context.Context, userID uint, taskID uuid.UUID) (*models.Task, error)
	ListAssignedTasks(ctx context.Context, userID uint) ([]*models.Task, error)

	// ReopenRecurringTasks moves completed recurring tasks back to open and
	// returns how many were reopened. Run periodically by the scheduler.
	ReopenRecurringTasks(ctx context.Context) (int, error)
}
