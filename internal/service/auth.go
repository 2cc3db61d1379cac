package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/repository"
	"mentorhub-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, email, password, name string, role domain.UserRole, branch string, gradYear int32) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, "", domain.NewValidationError("email is required")
	}
	if len(password) < 8 {
		return nil, "", domain.NewValidationError("password must be at least 8 characters")
	}
	if strings.TrimSpace(name) == "" {
		return nil, "", domain.NewValidationError("name is required")
	}
	if role != domain.UserRoleStudent && role != domain.UserRoleAlumni {
		return nil, "", domain.NewValidationError("role must be STUDENT or ALUMNI")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:          email,
		PasswordHash:   string(hash),
		Name:           name,
		Role:           role,
		Branch:         branch,
		GraduationYear: gradYear,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// UpdateProfile rewrites the actor's display fields. Email, role and
// password are immutable through this path.
func (s *authService) UpdateProfile(ctx context.Context, actor security.Actor, name, branch string, gradYear int32) (*domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("name is required")
	}

	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Branch = branch
	user.GraduationYear = gradYear
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
