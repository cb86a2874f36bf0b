package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"pressroom/internal/config"
	"pressroom/internal/domain"
	"pressroom/internal/mocks"
	"pressroom/internal/service/auth"
)

var authConfig = &config.Config{
	JWTSecret:       "test-secret",
	JWTAccessExpiry: time.Hour,
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("ExistsByEmail", ctx, "lisa@example.com").Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "lisa@example.com" && u.Role == domain.RoleSubscriber && u.PasswordHash != "saxophone"
		})).Return(nil).Once()

		svc := auth.NewService(userRepo, authConfig)

		user, tokens, err := svc.Register(ctx, domain.RegisterInput{
			Email:       "lisa@example.com",
			Password:    "saxophone",
			DisplayName: "Lisa",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleSubscriber, user.Role)
		assert.NotEmpty(t, tokens.AccessToken)

		claims, err := svc.ValidateAccessToken(tokens.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("ExistsByEmail", ctx, "lisa@example.com").Return(true, nil).Once()

		svc := auth.NewService(userRepo, authConfig)

		_, _, err := svc.Register(ctx, domain.RegisterInput{Email: "lisa@example.com", Password: "saxophone"})

		assert.ErrorIs(t, err, auth.ErrEmailExists)
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("saxophone"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &domain.User{ID: 7, Email: "lisa@example.com", PasswordHash: string(hash), Role: domain.RoleSubscriber}

	t.Run("success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByEmail", ctx, "lisa@example.com").Return(stored, nil).Once()

		svc := auth.NewService(userRepo, authConfig)

		user, tokens, err := svc.Login(ctx, domain.LoginInput{Email: "lisa@example.com", Password: "saxophone"})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)

		claims, err := svc.ValidateAccessToken(tokens.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, domain.RoleSubscriber, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByEmail", ctx, "lisa@example.com").Return(stored, nil).Once()

		svc := auth.NewService(userRepo, authConfig)

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "lisa@example.com", Password: "trombone"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil).Once()

		svc := auth.NewService(userRepo, authConfig)

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "nobody@example.com", Password: "saxophone"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestValidateAccessToken(t *testing.T) {
	svc := auth.NewService(new(mocks.UserRepository), authConfig)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		// Sign with one key, validate with another.
		hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByEmail", mock.Anything, "x@example.com").
			Return(&domain.User{ID: 1, Email: "x@example.com", PasswordHash: string(hash)}, nil).Once()
		signer := auth.NewService(userRepo, &config.Config{JWTSecret: "another-secret", JWTAccessExpiry: time.Hour})
		_, pair, err := signer.Login(context.Background(), domain.LoginInput{Email: "x@example.com", Password: "pw"})
		assert.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
