package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/dto"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UserInfo returns the profile of the authenticated user.
func (h *UserHandler) UserInfo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.CurrentUser(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
	}

	profile, err := h.userService.GetUser(ctx, user.ID)
	if err != nil {
		logger.WarnContext(ctx, "User profile not found", "user_id", user.ID)
		return utils.NotFoundResponse(c, utils.MsgUserNotFound)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UsersToUserResponses(users))
}

// DeleteUser removes an account. Tasks referencing the account keep
// existing with their creator or assignee cleared.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := strconv.ParseUint(c.Params("user_id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id.")
	}

	if err := h.userService.DeleteUser(ctx, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, utils.MsgUserNotFound)
		}
		logger.ErrorContext(ctx, "Failed to delete user", "user_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "User deleted", "user_id", id)

	return utils.MessageResponse(c, utils.MsgUserDeleted)
}
