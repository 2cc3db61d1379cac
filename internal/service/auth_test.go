package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/security"
	"mentorhub-backend/internal/service"
)

const testJWTSecret = "test-secret-key-at-least-32-characters"

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 60)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 1
			}).Return(nil)

		svc := service.NewAuthService(userRepo, tokens)
		user, token, err := svc.Signup(ctx, "  Sam@Example.COM ", "s3cretpass", "Sam", domain.UserRoleStudent, "CSE", 2026)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "sam@example.com", user.Email)
		assert.Equal(t, domain.UserRoleStudent, user.Role)
		assert.NotEqual(t, "s3cretpass", user.PasswordHash)
	})

	t.Run("Short Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, err := svc.Signup(ctx, "sam@example.com", "short", "Sam", domain.UserRoleStudent, "CSE", 2026)
		assert.ErrorIs(t, err, domain.ErrValidation)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Unknown Role", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, err := svc.Signup(ctx, "sam@example.com", "s3cretpass", "Sam", "ADMIN", "CSE", 2026)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 60)
	actor := security.Actor{UserID: 1, Email: "sam@example.com", Role: domain.UserRoleStudent}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{
			ID: 1, Email: "sam@example.com", Name: "Sam", Role: domain.UserRoleStudent, Branch: "CSE",
		}, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		svc := service.NewAuthService(userRepo, tokens)
		user, err := svc.UpdateProfile(ctx, actor, "Samuel", "ECE", 2027)
		assert.NoError(t, err)
		assert.Equal(t, "Samuel", user.Name)
		assert.Equal(t, "ECE", user.Branch)
		assert.Equal(t, int32(2027), user.GraduationYear)
		// Identity fields stay untouched.
		assert.Equal(t, "sam@example.com", user.Email)
		assert.Equal(t, domain.UserRoleStudent, user.Role)
	})

	t.Run("Empty Name", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		_, err := svc.UpdateProfile(ctx, actor, "   ", "ECE", 2027)
		assert.ErrorIs(t, err, domain.ErrValidation)
		userRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Write Failure", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Name: "Sam"}, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(assert.AnError)

		svc := service.NewAuthService(userRepo, tokens)
		_, err := svc.UpdateProfile(ctx, actor, "Samuel", "", 0)
		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 60)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("error hashing password: %v", err)
	}
	stored := &domain.User{
		ID:           1,
		Email:        "sam@example.com",
		PasswordHash: string(hash),
		Name:         "Sam",
		Role:         domain.UserRoleStudent,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "sam@example.com").Return(stored, nil)

		svc := service.NewAuthService(userRepo, tokens)
		user, token, err := svc.Login(ctx, "Sam@Example.com", "s3cretpass")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), claims.UserID)
		assert.Equal(t, string(domain.UserRoleStudent), claims.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "sam@example.com").Return(stored, nil)

		svc := service.NewAuthService(userRepo, tokens)
		_, _, err := svc.Login(ctx, "sam@example.com", "nope-nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)

		svc := service.NewAuthService(userRepo, tokens)
		_, _, err := svc.Login(ctx, "ghost@example.com", "whatever1")
		// Same error as a wrong password so callers cannot probe for accounts.
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
