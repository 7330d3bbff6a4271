package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursehub/internal/auth"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
)

func TestUserService_Register(t *testing.T) {
	input := RegisterInput{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	}

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name: "email already in use",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name: "database failure",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(errors.New("disk full"))
			},
			expectedError: errors.New("create user: disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, auth.NewBcryptHasher(bcrypt.MinCost))
			user, err := svc.Register(context.Background(), input)

			switch {
			case tt.expectedError == nil:
				assert.NoError(t, err)
				assert.Equal(t, "joe@smith.com", user.EmailAddress)
				assert.NotEqual(t, input.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)))
			case errors.Is(tt.expectedError, apperrors.ErrEmailTaken):
				assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
				assert.Nil(t, user)
			default:
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Register_StoresHashOnly(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.PasswordHash != "" && u.PasswordHash != "plain"
	})).Return(nil)

	svc := NewUserService(mockRepo, auth.NewBcryptHasher(bcrypt.MinCost))
	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Sally", LastName: "Jones", EmailAddress: "sally@jones.com", Password: "plain",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
