package unit_test

import (
	"context"
	"testing"
	"time"

	"civic-redressal/internal/config"
	"civic-redressal/internal/domain"
	"civic-redressal/internal/service/auth"
	"civic-redressal/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	input := domain.RegisterUserInput{
		Username: "ravi",
		Email:    "ravi@example.com",
		Password: "secret123",
		FullName: "Ravi Kumar",
		Mobile:   "9876543210",
	}

	t.Run("Username Exists", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.AdminRepository), new(mocks.SessionRepository), testConfig())

		mockUserRepo.On("ExistsByUsername", ctx, "ravi").Return(true, nil).Once()

		_, _, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, auth.ErrUsernameExists)
	})

	t.Run("Email Exists", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.AdminRepository), new(mocks.SessionRepository), testConfig())

		mockUserRepo.On("ExistsByUsername", ctx, "ravi").Return(false, nil).Once()
		mockUserRepo.On("ExistsByEmail", ctx, "ravi@example.com").Return(true, nil).Once()

		_, _, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, auth.ErrEmailExists)
	})

	t.Run("Success Issues Tokens", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.AdminRepository), mockSessionRepo, testConfig())

		mockUserRepo.On("ExistsByUsername", ctx, "ravi").Return(false, nil).Once()
		mockUserRepo.On("ExistsByEmail", ctx, "ravi@example.com").Return(false, nil).Once()
		mockUserRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		mockSessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		user, tokens, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, "ravi", user.Username)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)

		claims, err := svc.ValidateAccessToken(tokens.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, auth.SubjectUser, claims.Kind)
		assert.Equal(t, user.ID, claims.SubjectID)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Username", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.AdminRepository), new(mocks.SessionRepository), testConfig())

		mockUserRepo.On("GetByUsername", ctx, "ghost").Return(nil, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Username: "ghost", Password: "whatever"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.AdminRepository), new(mocks.SessionRepository), testConfig())

		user := &domain.User{ID: uuid.New(), Username: "ravi", PasswordHash: hashPassword(t, "secret123")}
		mockUserRepo.On("GetByUsername", ctx, "ravi").Return(user, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Username: "ravi", Password: "wrong"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestAuthService_AdminLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Carries Password Changed Flag And Role", func(t *testing.T) {
		mockAdminRepo := new(mocks.AdminRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(new(mocks.UserRepository), mockAdminRepo, mockSessionRepo, testConfig())

		muniID := uuid.New()
		admin := &domain.Admin{
			ID:             uuid.New(),
			Username:       "admin_chn",
			PasswordHash:   hashPassword(t, "admin123"),
			MunicipalityID: &muniID,
		}
		mockAdminRepo.On("GetByUsername", ctx, "admin_chn").Return(admin, nil).Once()
		mockSessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		result, err := svc.AdminLogin(ctx, domain.LoginInput{Username: "admin_chn", Password: "admin123"})

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleMunicipalityAdmin, result.Role)
		assert.False(t, result.PasswordChanged)
		assert.NotEmpty(t, result.Tokens.AccessToken)
	})
}

func TestAuthService_ChangeAdminPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Wrong Old Password", func(t *testing.T) {
		mockAdminRepo := new(mocks.AdminRepository)
		svc := auth.NewService(new(mocks.UserRepository), mockAdminRepo, new(mocks.SessionRepository), testConfig())

		admin := &domain.Admin{ID: uuid.New(), PasswordHash: hashPassword(t, "admin123")}
		mockAdminRepo.On("GetByID", ctx, admin.ID).Return(admin, nil).Once()

		err := svc.ChangeAdminPassword(ctx, admin.ID, domain.ChangePasswordInput{OldPassword: "nope", NewPassword: "fresh456"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Success Sets Changed Flag", func(t *testing.T) {
		mockAdminRepo := new(mocks.AdminRepository)
		svc := auth.NewService(new(mocks.UserRepository), mockAdminRepo, new(mocks.SessionRepository), testConfig())

		admin := &domain.Admin{ID: uuid.New(), PasswordHash: hashPassword(t, "admin123")}
		mockAdminRepo.On("GetByID", ctx, admin.ID).Return(admin, nil).Once()
		mockAdminRepo.On("SetPassword", ctx, admin.ID, mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("fresh456")) == nil
		}), true).Return(nil).Once()

		err := svc.ChangeAdminPassword(ctx, admin.ID, domain.ChangePasswordInput{OldPassword: "admin123", NewPassword: "fresh456"})

		assert.NoError(t, err)
		mockAdminRepo.AssertExpectations(t)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Token", func(t *testing.T) {
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(new(mocks.UserRepository), new(mocks.AdminRepository), mockSessionRepo, testConfig())

		mockSessionRepo.On("GetByTokenHash", ctx, mock.Anything).Return(nil, nil).Once()

		_, err := svc.RefreshToken(ctx, "not-a-real-token")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
