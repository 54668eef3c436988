package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"taskmanager/application/serviceimpl"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/infrastructure/postgres"
	"taskmanager/interfaces/api/handlers"
	"taskmanager/pkg/config"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/scheduler"
)

// Container wires configuration, infrastructure, repositories and services
// together in dependency order.
type Container struct {
	Config *config.Config

	DB             *gorm.DB
	EventScheduler scheduler.EventScheduler

	UserRepository    repositories.UserRepository
	RoleRepository    repositories.RoleRepository
	TaskRepository    repositories.TaskRepository
	CommentRepository repositories.CommentRepository

	UserService    services.UserService
	TaskService    services.TaskService
	CommentService services.CommentService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initDatabase(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initDatabase() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	if err := postgres.SeedRoles(context.Background(), db); err != nil {
		return err
	}
	logger.Info("Roles seeded")

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.RoleRepository = postgres.NewRoleRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.CommentRepository = postgres.NewCommentRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	tokenExpiry := time.Duration(c.Config.JWT.ExpiryHours) * time.Hour

	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.RoleRepository, c.Config.JWT.Secret, tokenExpiry)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository)
	c.CommentService = serviceimpl.NewCommentService(c.CommentRepository, c.TaskRepository)
	logger.Info("Services initialized")
}

// initScheduler registers the recurring-task reopener. Completed tasks
// flagged recurring are moved back to open on every tick.
func (c *Container) initScheduler() error {
	if !c.Config.Scheduler.Enabled {
		logger.Info("Scheduler disabled")
		return nil
	}

	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()

	err := c.EventScheduler.AddJob("reopen-recurring-tasks", c.Config.Scheduler.RecurringCron, func() {
		ctx := context.Background()
		reopened, err := c.TaskService.ReopenRecurringTasks(ctx)
		if err != nil {
			logger.Error("Recurring-task reopen failed", "error", err)
			return
		}
		if reopened > 0 {
			logger.Info("Recurring tasks reopened", "count", reopened)
		}
	})
	if err != nil {
		return err
	}

	logger.Info("Scheduler started", "cron", c.Config.Scheduler.RecurringCron)
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:    c.UserService,
		TaskService:    c.TaskService,
		CommentService: c.CommentService,
	}
}
