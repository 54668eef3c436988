package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByTitle(ctx context.Context, title string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Task, error)
	ListAssignedTo(ctx context.Context, userID uint) ([]*models.Task, error)
	ListCompletedRecurring(ctx context.Context) ([]*models.Task, error)
}
