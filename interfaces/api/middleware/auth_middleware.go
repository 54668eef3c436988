package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/models"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

// AuthScheme restricts which credential forms a route accepts. The
// dispatcher itself understands both.
type AuthScheme int

const (
	AnyScheme AuthScheme = iota
	BearerOnly
	BasicOnly
)

const (
	bearerPrefix = "Bearer "
	basicPrefix  = "Basic "
)

// Protected resolves the current user from the Authorization header and
// stores it request-scoped. Bearer tokens are decoded to their subject;
// anything else is treated as basic credentials and checked against the
// stored password hash. Failures never reach the wrapped handler.
func Protected(userService services.UserService, scheme AuthScheme) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			logger.WarnContext(ctx, "Missing authorization header", "path", c.Path())
			return utils.UnauthorizedResponse(c, utils.MsgMissingAuthHeader)
		}

		var (
			user *models.User
			err  error
		)

		switch {
		case strings.HasPrefix(header, bearerPrefix):
			if scheme == BasicOnly {
				logger.WarnContext(ctx, "Bearer token on basic-only route", "path", c.Path())
				return utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
			}
			user, err = userService.AuthenticateToken(ctx, strings.TrimPrefix(header, bearerPrefix))

		case strings.HasPrefix(header, basicPrefix):
			if scheme == BearerOnly {
				logger.WarnContext(ctx, "Basic credentials on bearer-only route", "path", c.Path())
				return utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
			}
			email, password, ok := decodeBasic(strings.TrimPrefix(header, basicPrefix))
			if !ok {
				return utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
			}
			user, err = userService.VerifyCredentials(ctx, email, password)

		default:
			logger.WarnContext(ctx, "Unrecognized authorization scheme", "path", c.Path())
			return utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
		}

		if err != nil {
			logger.WarnContext(ctx, "Authentication failed", "path", c.Path(), "error", err)
			return utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
		}

		utils.SetCurrentUser(c, user)
		return c.Next()
	}
}

// RequireRole gates the wrapped handler on an exact, case-sensitive role
// name match. There is no role hierarchy.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := utils.CurrentUser(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
		}

		if user.Role.Name != role {
			logger.WarnContext(c.UserContext(), "Role check failed",
				"path", c.Path(),
				"user_id", user.ID,
				"required", role,
				"actual", user.Role.Name,
			)
			return utils.ForbiddenResponse(c)
		}

		return c.Next()
	}
}

func AdminOnly() fiber.Handler {
	return RequireRole(models.RoleAdmin)
}

func decodeBasic(encoded string) (email, password string, ok bool) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(decoded), ":")
	return email, password, ok
}
