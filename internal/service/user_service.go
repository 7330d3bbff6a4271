package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"coursehub/internal/auth"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

// RegisterInput is a validated user-creation payload.
type RegisterInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

// UserService exposes user operations.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher) UserService {
	return &userService{repo: repo, hasher: hasher}
}

// Register hashes the password and stores the user. The unique index on the
// email column decides races between concurrent registrations.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: input.EmailAddress,
		PasswordHash: hashed,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.EmailTaken(input.EmailAddress)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
