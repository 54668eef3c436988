package services

import (
	"context"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
)

type UserService interface {
	// SignUp registers a new account. Duplicate email yields ErrConflict,
	// a role name that was never seeded yields ErrUnknownRole.
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error)

	// VerifyCredentials checks an email/password pair against the stored
	// bcrypt hash. Any lookup failure is reported as ErrInvalidCredentials.
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)

	// GenerateToken issues a bearer token whose subject is the user id.
	GenerateToken(user *models.User) (string, error)

	// AuthenticateToken decodes a bearer token and resolves its subject.
	AuthenticateToken(ctx context.Context, token string) (*models.User, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}
