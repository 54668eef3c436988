package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskmanager/domain/models"
	"taskmanager/infrastructure/postgres"
	"taskmanager/pkg/config"
)

// Seeds the fixed role set and, when ADMIN_EMAIL/ADMIN_PASSWORD are set,
// a bootstrap admin account. Safe to run repeatedly.
func main() {
	godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}
	fmt.Println("✓ Schema migrated")

	if err := postgres.SeedRoles(ctx, db); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}
	fmt.Println("✓ Roles seeded")

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	if err := seedAdmin(ctx, db, email, password); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	fmt.Printf("✓ Admin account ready: %s\n", email)
}

func seedAdmin(ctx context.Context, db *gorm.DB, email, password string) error {
	var existing models.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var role models.Role
	if err := db.WithContext(ctx).Where("name = ?", models.RoleAdmin).First(&role).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Create(&models.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     email,
		Password:  string(hash),
		RoleID:    role.ID,
	}).Error
}
