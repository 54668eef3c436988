package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/dto"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// SignUp registers a new account. The role defaults to "user" when the
// body omits it.
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	logger.InfoContext(ctx, "Sign-up attempt", "email", req.Email)

	user, err := h.userService.SignUp(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConflict):
			logger.WarnContext(ctx, "Sign-up rejected, email taken", "email", req.Email)
			return utils.ConflictResponse(c, utils.MsgUserExists)
		case errors.Is(err, services.ErrUnknownRole):
			return utils.BadRequestResponse(c, "Unknown role: "+req.Role)
		default:
			logger.ErrorContext(ctx, "Sign-up failed", "email", req.Email, "error", err)
			return utils.FailResponse(c, fiber.StatusInternalServerError, utils.MsgFailedToSignUp)
		}
	}

	logger.InfoContext(ctx, "User signed up", "user_id", user.ID, "email", user.Email)

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

// SignIn exchanges basic credentials, already verified by the auth
// middleware, for a bearer token.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.CurrentUser(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
	}

	token, err := h.userService.GenerateToken(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue token", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "User signed in", "user_id", user.ID, "email", user.Email)

	return utils.SuccessResponse(c, &dto.SignInResponse{AccessToken: token})
}
