package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

// ErrorHandler is the app-level fallback for errors that escape handlers,
// including fiber's own routing errors. Anything not a *fiber.Error is
// reported as a 500 without leaking its text.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status := utils.StatusFail
			if fiberErr.Code >= fiber.StatusInternalServerError {
				status = utils.StatusError
			}
			return c.Status(fiberErr.Code).JSON(utils.Response{
				Status:  status,
				Message: fiberErr.Message,
			})
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error",
			"path", c.Path(),
			"error", err,
		)
		return utils.InternalServerErrorResponse(c)
	}
}
