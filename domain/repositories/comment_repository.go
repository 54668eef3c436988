package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*models.Comment, error)
}
