package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("AssignedTo").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) GetByTitle(ctx context.Context, title string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// Comments and dependency edges go with the task via FK cascade.
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("AssignedTo").
		Order("created_at").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListAssignedTo(ctx context.Context, userID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("AssignedTo").
		Where("assigned_to_id = ?", userID).
		Order("created_at").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListCompletedRecurring(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("recurring_task = ? AND status = ?", true, models.StatusCompleted).
		Find(&tasks).Error
	return tasks, err
}
