package serviceimpl

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	roleRepo    repositories.RoleRepository
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewUserService(userRepo repositories.UserRepository, roleRepo repositories.RoleRepository, jwtSecret string, tokenExpiry time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

func (s *UserServiceImpl) SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error) {
	if existing, _ := s.userRepo.GetByEmail(ctx, req.Email); existing != nil {
		logger.WarnContext(ctx, "Email already exists", "email", req.Email)
		return nil, services.ErrConflict
	}

	roleName := req.Role
	if roleName == "" {
		roleName = models.RoleUser
	}
	role, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		logger.WarnContext(ctx, "Unknown role on sign up", "role", roleName)
		return nil, services.ErrUnknownRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashedPassword),
		RoleID:    role.ID,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two concurrent sign-ups can race past the lookup above, the
		// unique index settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, services.ErrConflict
		}
		logger.ErrorContext(ctx, "Failed to create user", "email", req.Email, "error", err)
		return nil, err
	}
	user.Role = *role

	logger.InfoContext(ctx, "User created", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *UserServiceImpl) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Lookup errors fail closed: no distinction between an unknown
		// email and a storage failure.
		logger.WarnContext(ctx, "Credential check failed - email not found", "email", email)
		return nil, services.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.WarnContext(ctx, "Credential check failed - password mismatch", "user_id", user.ID)
		return nil, services.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserServiceImpl) GenerateToken(user *models.User) (string, error) {
	return utils.IssueToken(user.ID, s.jwtSecret, s.tokenExpiry)
}

func (s *UserServiceImpl) AuthenticateToken(ctx context.Context, token string) (*models.User, error) {
	userID, err := utils.ParseSubject(token, s.jwtSecret)
	if err != nil {
		return nil, services.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "Token subject not found", "user_id", userID)
		return nil, services.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, services.ErrNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return services.ErrNotFound
	}

	// Tasks created by or assigned to the user keep existing, their user
	// references are nulled by the FK rule.
	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete user", "user_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "User deleted", "user_id", id)
	return nil
}
