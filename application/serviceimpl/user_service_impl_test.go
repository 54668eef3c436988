package serviceimpl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskmanager/application/serviceimpl"
	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/services"
)

func newUserService(userRepo *MockUserRepository, roleRepo *MockRoleRepository) services.UserService {
	return serviceimpl.NewUserService(userRepo, roleRepo, "test-secret", time.Hour)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestUserService_SignUp(t *testing.T) {
	userRole := &models.Role{ID: 2, Name: models.RoleUser}

	t.Run("creates user with default role", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		userRepo.On("GetByEmail", mock.Anything, "john@example.com").Return(nil, gorm.ErrRecordNotFound)
		roleRepo.On("GetByName", mock.Anything, models.RoleUser).Return(userRole, nil)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 1
		}).Return(nil)

		svc := newUserService(userRepo, roleRepo)
		user, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			Password:  "secretpassword",
		})

		require.NoError(t, err)
		assert.Equal(t, "john@example.com", user.Email)
		assert.Equal(t, models.RoleUser, user.Role.Name)
		// The stored password is a hash, never the plaintext.
		assert.NotEqual(t, "secretpassword", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secretpassword")))
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate email is a conflict and nothing is inserted", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		userRepo.On("GetByEmail", mock.Anything, "john@example.com").
			Return(&models.User{ID: 1, Email: "john@example.com"}, nil)

		svc := newUserService(userRepo, roleRepo)
		_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			Password:  "secretpassword",
		})

		assert.ErrorIs(t, err, services.ErrConflict)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
		roleRepo.On("GetByName", mock.Anything, "superuser").Return(nil, gorm.ErrRecordNotFound)

		svc := newUserService(userRepo, roleRepo)
		_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "secretpassword",
			Role:      "superuser",
		})

		assert.ErrorIs(t, err, services.ErrUnknownRole)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("race on the unique index maps to conflict", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		userRepo.On("GetByEmail", mock.Anything, "john@example.com").Return(nil, gorm.ErrRecordNotFound)
		roleRepo.On("GetByName", mock.Anything, models.RoleUser).Return(userRole, nil)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		svc := newUserService(userRepo, roleRepo)
		_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			Password:  "secretpassword",
		})

		assert.ErrorIs(t, err, services.ErrConflict)
	})
}

func TestUserService_VerifyCredentials(t *testing.T) {
	password := "secretpassword"

	t.Run("valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		stored := &models.User{ID: 1, Email: "john@example.com", Password: hashPassword(t, password)}
		userRepo.On("GetByEmail", mock.Anything, "john@example.com").Return(stored, nil)

		svc := newUserService(userRepo, roleRepo)
		user, err := svc.VerifyCredentials(context.Background(), "john@example.com", password)

		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		stored := &models.User{ID: 1, Email: "john@example.com", Password: hashPassword(t, password)}
		userRepo.On("GetByEmail", mock.Anything, "john@example.com").Return(stored, nil)

		svc := newUserService(userRepo, roleRepo)
		_, err := svc.VerifyCredentials(context.Background(), "john@example.com", "wrong")

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("unknown email fails the same way as a wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		svc := newUserService(userRepo, roleRepo)
		_, err := svc.VerifyCredentials(context.Background(), "nobody@example.com", password)

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestUserService_TokenRoundTrip(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)

	stored := &models.User{ID: 7, Email: "john@example.com"}
	userRepo.On("GetByID", mock.Anything, uint(7)).Return(stored, nil)

	svc := newUserService(userRepo, roleRepo)

	token, err := svc.GenerateToken(stored)
	require.NoError(t, err)

	user, err := svc.AuthenticateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
}

func TestUserService_AuthenticateToken_Invalid(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)

	svc := newUserService(userRepo, roleRepo)
	_, err := svc.AuthenticateToken(context.Background(), "garbage")

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		userRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)
		userRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

		svc := newUserService(userRepo, roleRepo)
		assert.NoError(t, svc.DeleteUser(context.Background(), 1))
	})

	t.Run("absent user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		userRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := newUserService(userRepo, roleRepo)
		err := svc.DeleteUser(context.Background(), 99)

		assert.ErrorIs(t, err, services.ErrNotFound)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
