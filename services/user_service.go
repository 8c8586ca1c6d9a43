package services

import (
	"context"
	"errors"
	"fmt"

	"slugpress/models"
	"slugpress/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService is the credential store: it registers accounts and verifies
// login attempts.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Verify(ctx context.Context, username, password string) (*models.User, error)
}

type userService struct {
	repo repositories.UserRepository
}

var _ UserService = (*userService)(nil)

// NewUserService creates a new UserService instance
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates a user with role "user". The password is stored as a
// bcrypt hash with a per-call salt.
func (s *userService) Register(ctx context.Context, username, password string) (*models.User, error) {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		Username: username,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &user, nil
}

// Verify checks a username/password pair and returns the matching user.
// Unknown usernames and wrong passwords both map to ErrInvalidCredentials.
func (s *userService) Verify(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
