package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title           string     `json:"title" validate:"required,min=1,max=255"`
	Description     string     `json:"description" validate:"omitempty"`
	DueDate         *time.Time `json:"due_date" validate:"omitempty"`
	Priority        string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status          string     `json:"status" validate:"omitempty,oneof=open in_progress completed discarded"`
	Type            string     `json:"type" validate:"omitempty,oneof=task bug feature"`
	AssignedToID    *uint      `json:"assigned_to_id" validate:"omitempty"`
	RecurringTask   *bool      `json:"recurring_task" validate:"omitempty"`
	Estimate        *int       `json:"estimate" validate:"omitempty,min=0"`
	ActualTimeSpent *int       `json:"actual_time_spent" validate:"omitempty,min=0"`
}

type UpdateTaskRequest struct {
	Title           string     `json:"title" validate:"omitempty,min=1,max=255"`
	Description     *string    `json:"description" validate:"omitempty"`
	DueDate         *time.Time `json:"due_date" validate:"omitempty"`
	Priority        string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status          string     `json:"status" validate:"omitempty,oneof=open in_progress completed discarded"`
	Type            string     `json:"type" validate:"omitempty,oneof=task bug feature"`
	AssignedToID    *uint      `json:"assigned_to_id" validate:"omitempty"`
	RecurringTask   *bool      `json:"recurring_task" validate:"omitempty"`
	Estimate        *int       `json:"estimate" validate:"omitempty,min=0"`
	ActualTimeSpent *int       `json:"actual_time_spent" validate:"omitempty,min=0"`
	CompletionDate  *time.Time `json:"completion_date" validate:"omitempty"`
}

// TaskUpdateFields is the allow-list for PUT /tasks/:task_id. Body keys
// outside this set are rejected before anything is touched.
var TaskUpdateFields = []string{
	"title",
	"description",
	"due_date",
	"priority",
	"status",
	"type",
	"assigned_to_id",
	"recurring_task",
	"estimate",
	"actual_time_spent",
	"completion_date",
}

type AssignTaskRequest struct {
	UserID *uint  `json:"user_id" validate:"required"`
	TaskID string `json:"task_id" validate:"required,uuid"`
}

type TaskResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DueDate         *time.Time `json:"dueDate"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	Type            string     `json:"type"`
	CreatedBy       *UserRef   `json:"createdBy"`
	AssignedTo      *UserRef   `json:"assignedTo"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	CompletionDate  *time.Time `json:"completionDate"`
	RecurringTask   bool       `json:"recurringTask"`
	Estimate        *int       `json:"estimate"`
	ActualTimeSpent *int       `json:"actualTimeSpent"`
}
