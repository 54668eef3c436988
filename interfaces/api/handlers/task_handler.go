package handlers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask persists a new task with the authenticated user as creator.
// A duplicate title is reported as a conflict naming the existing task.
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.CurrentUser(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConflict):
			message := utils.MsgFailedToCreateTask
			if task != nil {
				message = fmt.Sprintf("Task '%s' %s already exists", task.Title, task.ID)
			}
			return utils.ConflictResponse(c, message)
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, utils.MsgUserNotFound)
		default:
			logger.ErrorContext(ctx, "Failed to create task", "title", req.Title, "error", err)
			return utils.FailResponse(c, fiber.StatusInternalServerError, utils.MsgFailedToCreateTask)
		}
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "title", task.Title, "created_by", user.ID)

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// GetTasks lists all tasks, or a single task when ?task_id= is supplied.
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if rawID := c.Query("task_id"); rawID != "" {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid task id.")
		}

		task, err := h.taskService.GetTask(ctx, id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return utils.NotFoundResponse(c, utils.MsgTaskNotFound)
			}
			logger.ErrorContext(ctx, "Failed to fetch task", "task_id", id, "error", err)
			return utils.InternalServerErrorResponse(c)
		}

		return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
	}

	tasks, err := h.taskService.ListTasks(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

// UpdateTask applies allow-listed field changes. Body keys outside the
// allow-list reject the whole request before anything is touched.
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task id.")
	}

	offending, err := utils.CheckAllowedFields(c.Body(), dto.TaskUpdateFields)
	if err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
	}
	if len(offending) > 0 {
		sort.Strings(offending)
		logger.WarnContext(ctx, "Disallowed update fields", "task_id", id, "fields", offending)
		return utils.BadRequestResponse(c,
			fmt.Sprintf("Fields not allowed: %s.", strings.Join(offending, ", ")))
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	task, err := h.taskService.UpdateTask(ctx, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, utils.MsgTaskNotFound)
		case errors.Is(err, services.ErrConflict):
			return utils.ConflictResponse(c, fmt.Sprintf("Task '%s' already exists", req.Title))
		default:
			logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	logger.InfoContext(ctx, "Task updated", "task_id", task.ID)

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// DeleteTask removes a task together with its comments.
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task id.")
	}

	if err := h.taskService.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, utils.MsgTaskNotFound)
		}
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)

	return utils.MessageResponse(c, utils.MsgTaskDeleted)
}

func (h *TaskHandler) AssignTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.AssignTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task id.")
	}

	task, err := h.taskService.AssignTask(ctx, *req.UserID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, utils.MsgResourceNotFound)
		case errors.Is(err, services.ErrIntegrity):
			return utils.BadRequestResponse(c, utils.MsgFailedToAssignTask)
		default:
			logger.ErrorContext(ctx, "Failed to assign task", "task_id", taskID, "user_id", *req.UserID, "error", err)
			return utils.FailResponse(c, fiber.StatusInternalServerError, utils.MsgFailedToAssignTask)
		}
	}

	logger.InfoContext(ctx, "Task assigned", "task_id", task.ID, "assigned_to", *req.UserID)

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// AssignedTasksList lists tasks assigned to the authenticated user.
func (h *TaskHandler) AssignedTasksList(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.CurrentUser(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
	}

	tasks, err := h.taskService.ListAssignedTasks(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list assigned tasks", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}
