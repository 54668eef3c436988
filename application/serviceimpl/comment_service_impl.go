package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
)

type CommentServiceImpl struct {
	commentRepo repositories.CommentRepository
	taskRepo    repositories.TaskRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, taskRepo repositories.TaskRepository) services.CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
	}
}

func (s *CommentServiceImpl) AddComment(ctx context.Context, taskID uuid.UUID, content string) (*models.Comment, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		logger.WarnContext(ctx, "Task not found for comment", "task_id", taskID)
		return nil, services.ErrNotFound
	}

	comment := &models.Comment{
		Content:   content,
		TaskID:    taskID,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		// Task deleted between the existence check and the insert.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, services.ErrIntegrity
		}
		logger.ErrorContext(ctx, "Failed to create comment", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Comment added", "comment_id", comment.ID, "task_id", taskID)

	return comment, nil
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, taskID uuid.UUID) ([]*models.Comment, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, services.ErrNotFound
	}

	comments, err := s.commentRepo.ListByTask(ctx, taskID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list comments", "task_id", taskID, "error", err)
		return nil, err
	}
	return comments, nil
}

func (s *CommentServiceImpl) UpdateComment(ctx context.Context, taskID uuid.UUID, commentID uint, content string) (*models.Comment, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, services.ErrNotFound
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil || comment.TaskID != taskID {
		return nil, services.ErrNotFound
	}

	comment.Content = content

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to update comment", "comment_id", commentID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Comment updated", "comment_id", commentID, "task_id", taskID)

	return comment, nil
}

func (s *CommentServiceImpl) DeleteComment(ctx context.Context, taskID uuid.UUID, commentID uint) error {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return services.ErrNotFound
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil || comment.TaskID != taskID {
		return services.ErrNotFound
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return services.ErrIntegrity
		}
		logger.ErrorContext(ctx, "Failed to delete comment", "comment_id", commentID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Comment deleted", "comment_id", commentID, "task_id", taskID)
	return nil
}
