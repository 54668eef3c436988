package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Every endpoint answers with the same envelope: a status tag plus either a
// result payload or a message. Validation failures carry a per-field map in
// the message slot.
type Response struct {
	Status  string `json:"status"`
	Message any    `json:"message,omitempty"`
	Result  any    `json:"result,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusFail    = "failed"
	StatusError   = "error"
)

// Canonical response messages.
const (
	MsgMissingAuthHeader  = "Authorization header not found."
	MsgInvalidCredentials = "Invalid credentials."
	MsgAccessDenied       = "Access denied. You don't have the required role."
	MsgUserExists         = "User already exists."
	MsgUserNotFound       = "User not found."
	MsgUserDeleted        = "User deleted successfully."
	MsgTaskNotFound       = "Task not found."
	MsgTaskDeleted        = "Task deleted successfully."
	MsgCommentNotFound    = "Comment not found."
	MsgCommentDeleted     = "Comment deleted successfully."
	MsgResourceNotFound   = "Resource not found."
	MsgFailedToSignUp     = "Failed to sign up."
	MsgFailedToCreateTask = "Failed to create task."
	MsgFailedToAssignTask = "Failed to assign task."
	MsgFailedToComment    = "Failed to save comment."
	MsgInvalidRequestBody = "Invalid request body."
)

func SuccessResponse(c *fiber.Ctx, result any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Status: StatusSuccess,
		Result: result,
	})
}

func CreatedResponse(c *fiber.Ctx, result any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Status: StatusSuccess,
		Result: result,
	})
}

// MessageResponse reports a successful operation that has no payload, such
// as a delete.
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Status:  StatusSuccess,
		Message: message,
	})
}

func FailResponse(c *fiber.Ctx, statusCode int, message any) error {
	return c.Status(statusCode).JSON(Response{
		Status:  StatusFail,
		Message: message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, fieldErrors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Status:  StatusError,
		Message: fieldErrors,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return FailResponse(c, fiber.StatusBadRequest, message)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = MsgInvalidCredentials
	}
	return FailResponse(c, fiber.StatusUnauthorized, message)
}

func ForbiddenResponse(c *fiber.Ctx) error {
	return FailResponse(c, fiber.StatusForbidden, MsgAccessDenied)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = MsgResourceNotFound
	}
	return FailResponse(c, fiber.StatusNotFound, message)
}

func ConflictResponse(c *fiber.Ctx, message string) error {
	return FailResponse(c, fiber.StatusConflict, message)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Response{
		Status:  StatusError,
		Message: "Internal server error.",
	})
}
