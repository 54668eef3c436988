package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/models"
)

// CurrentUserKey is the fiber Locals slot holding the authenticated user.
// It is populated per request by the auth middleware and never shared
// across requests.
const CurrentUserKey = "current_user"

var ErrNoCurrentUser = errors.New("no authenticated user in request context")

func SetCurrentUser(c *fiber.Ctx, user *models.User) {
	c.Locals(CurrentUserKey, user)
}

func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(CurrentUserKey).(*models.User)
	if !ok || user == nil {
		return nil, ErrNoCurrentUser
	}
	return user, nil
}
