package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

// CommentHandler serves the comment sub-resource of tasks. Every route is
// scoped under /tasks/:task_id and fails with not-found when the parent
// task is absent.
type CommentHandler struct {
	commentService services.CommentService
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task id.")
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	comment, err := h.commentService.AddComment(ctx, taskID, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, utils.MsgTaskNotFound)
		case errors.Is(err, services.ErrIntegrity):
			return utils.BadRequestResponse(c, utils.MsgFailedToComment)
		default:
			logger.ErrorContext(ctx, "Failed to add comment", "task_id", taskID, "error", err)
			return utils.FailResponse(c, fiber.StatusInternalServerError, utils.MsgFailedToComment)
		}
	}

	logger.InfoContext(ctx, "Comment added", "task_id", taskID, "comment_id", comment.ID)

	return utils.CreatedResponse(c, dto.CommentToCommentResponse(comment))
}

func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task id.")
	}

	comments, err := h.commentService.ListComments(ctx, taskID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, utils.MsgTaskNotFound)
		}
		logger.ErrorContext(ctx, "Failed to list comments", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CommentsToCommentResponses(comments))
}

func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, commentID, err := commentParams(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	comment, err := h.commentService.UpdateComment(ctx, taskID, commentID, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, utils.MsgCommentNotFound)
		case errors.Is(err, services.ErrIntegrity):
			return utils.BadRequestResponse(c, utils.MsgFailedToComment)
		default:
			logger.ErrorContext(ctx, "Failed to update comment", "task_id", taskID, "comment_id", commentID, "error", err)
			return utils.FailResponse(c, fiber.StatusInternalServerError, utils.MsgFailedToComment)
		}
	}

	logger.InfoContext(ctx, "Comment updated", "task_id", taskID, "comment_id", commentID)

	return utils.SuccessResponse(c, dto.CommentToCommentResponse(comment))
}

func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, commentID, err := commentParams(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.commentService.DeleteComment(ctx, taskID, commentID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, utils.MsgCommentNotFound)
		}
		logger.ErrorContext(ctx, "Failed to delete comment", "task_id", taskID, "comment_id", commentID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Comment deleted", "task_id", taskID, "comment_id", commentID)

	return utils.MessageResponse(c, utils.MsgCommentDeleted)
}

func commentParams(c *fiber.Ctx) (uuid.UUID, uint, error) {
	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return uuid.Nil, 0, errors.New("Invalid task id.")
	}
	commentID, err := strconv.ParseUint(c.Params("comment_id"), 10, 64)
	if err != nil {
		return uuid.Nil, 0, errors.New("Invalid comment id.")
	}
	return taskID, uint(commentID), nil
}
