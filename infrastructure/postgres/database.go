package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskmanager/domain/models"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Uniqueness and FK violations surface as gorm.ErrDuplicatedKey /
		// gorm.ErrForeignKeyViolated instead of raw pgx errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Task{},
		&models.Comment{},
		&models.Dependency{},
	)
}

// SeedRoles inserts the fixed role set if missing. Roles are immutable once
// seeded; re-running is a no-op.
func SeedRoles(ctx context.Context, db *gorm.DB) error {
	for _, name := range []string{models.RoleAdmin, models.RoleUser} {
		var role models.Role
		err := db.WithContext(ctx).Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.WithContext(ctx).Create(&models.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
