package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, creatorID uint, req *dto.CreateTaskRequest) (*models.Task, error) {
	if existing, _ := s.taskRepo.GetByTitle(ctx, req.Title); existing != nil {
		logger.WarnContext(ctx, "Task title already exists", "title", req.Title, "task_id", existing.ID)
		return existing, services.ErrConflict
	}

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		Type:        req.Type,
		CreatedByID: &creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Estimate:    req.Estimate,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Status == "" {
		task.Status = models.StatusOpen
	}
	if task.Type == "" {
		task.Type = models.TypeTask
	}
	if req.RecurringTask != nil {
		task.RecurringTask = *req.RecurringTask
	}
	if req.ActualTimeSpent != nil {
		task.ActualTimeSpent = req.ActualTimeSpent
	}
	if req.AssignedToID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.AssignedToID); err != nil {
			return nil, services.ErrNotFound
		}
		task.AssignedToID = req.AssignedToID
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, services.ErrConflict
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, services.ErrIntegrity
		}
		logger.ErrorContext(ctx, "Failed to create task", "title", req.Title, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "title", task.Title)

	return s.GetTask(ctx, task.ID)
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, services.ErrNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", id)
		return nil, services.ErrNotFound
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.Status != "" {
		task.Status = req.Status
		if req.Status == models.StatusCompleted && task.CompletionDate == nil {
			now := time.Now()
			task.CompletionDate = &now
		}
	}
	if req.Type != "" {
		task.Type = req.Type
	}
	if req.AssignedToID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.AssignedToID); err != nil {
			return nil, services.ErrNotFound
		}
		task.AssignedToID = req.AssignedToID
	}
	if req.RecurringTask != nil {
		task.RecurringTask = *req.RecurringTask
	}
	if req.Estimate != nil {
		task.Estimate = req.Estimate
	}
	if req.ActualTimeSpent != nil {
		task.ActualTimeSpent = req.ActualTimeSpent
	}
	if req.CompletionDate != nil {
		task.CompletionDate = req.CompletionDate
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, services.ErrConflict
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		return services.ErrNotFound
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	return nil
}

func (s *TaskServiceImpl) AssignTask(ctx context.Context, userID uint, taskID uuid.UUID) (*models.Task, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrNotFound
	}
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	task.AssignedToID = &user.ID
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, services.ErrIntegrity
		}
		logger.ErrorContext(ctx, "Failed to assign task", "task_id", taskID, "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task assigned", "task_id", taskID, "user_id", userID)

	return s.GetTask(ctx, taskID)
}

func (s *TaskServiceImpl) ListAssignedTasks(ctx context.Context, userID uint) ([]*models.Task, error) {
	tasks, err := s.taskRepo.ListAssignedTo(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list assigned tasks", "user_id", userID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) ReopenRecurringTasks(ctx context.Context) (int, error) {
	tasks, err := s.taskRepo.ListCompletedRecurring(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch completed recurring tasks", "error", err)
		return 0, err
	}

	reopened := 0
	for _, task := range tasks {
		task.Status = models.StatusOpen
		task.CompletionDate = nil
		task.UpdatedAt = time.Now()
		if err := s.taskRepo.Update(ctx, task); err != nil {
			logger.ErrorContext(ctx, "Failed to reopen recurring task", "task_id", task.ID, "error", err)
			continue
		}
		reopened++
	}

	if reopened > 0 {
		logger.InfoContext(ctx, "Recurring tasks reopened", "count", reopened)
	}
	return reopened, nil
}
