package services

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

// CommentService manages comments on tasks. Every operation requires the
// parent task to exist and yields ErrNotFound otherwise.
type CommentService interface {
	AddComment(ctx context.Context, taskID uuid.UUID, content string) (*models.Comment, error)
	ListComments(ctx context.Context, taskID uuid.UUID) ([]*models.Comment, error)
	UpdateComment(ctx context.Context, taskID uuid.UUID, commentID uint, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, taskID uuid.UUID, commentID uint) error
}
