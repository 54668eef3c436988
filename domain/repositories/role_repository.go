package repositories

import (
	"context"

	"taskmanager/domain/models"
)

type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*models.Role, error)
	Create(ctx context.Context, role *models.Role) error
}
