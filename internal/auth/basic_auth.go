package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
)

// currentUserKey is the echo context key holding the authenticated *model.User.
const currentUserKey = "auth.currentUser"

// Reasons a request fails authentication. Clients only ever see a uniform 401.
var (
	ErrAuthHeaderMissing = errors.New("auth header not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrBadCredentials    = errors.New("password mismatch")
)

// UserFinder resolves a user by email address.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// Authenticator verifies Basic credentials against stored users.
type Authenticator struct {
	users  UserFinder
	hasher PasswordHasher
	log    *zap.Logger
}

// NewAuthenticator creates a new authenticator.
func NewAuthenticator(users UserFinder, hasher PasswordHasher, log *zap.Logger) *Authenticator {
	return &Authenticator{users: users, hasher: hasher, log: log}
}

// Authenticate returns the user owning email when password matches.
// Failures are one of ErrUserNotFound, ErrBadCredentials or a wrapped storage error.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := a.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	// the column collation may be case-insensitive, the match must not be
	if user.EmailAddress != email {
		return nil, ErrUserNotFound
	}
	if !a.hasher.Verify(user.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// Middleware rejects requests without valid Basic credentials and stores the
// authenticated user for CurrentUser.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, password, ok := c.Request().BasicAuth()
			if !ok {
				return a.deny(c, ErrAuthHeaderMissing, "")
			}

			user, err := a.Authenticate(c.Request().Context(), email, password)
			if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrBadCredentials) {
				return a.deny(c, err, email)
			}
			if err != nil {
				return err
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

func (a *Authenticator) deny(c echo.Context, reason error, email string) error {
	a.log.Warn("authentication failed",
		zap.String("reason", reason.Error()),
		zap.String("username", email),
		zap.String("path", c.Request().URL.Path),
	)
	return apperrors.ErrUnauthenticated
}

// CurrentUser returns the user attached by Middleware.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(currentUserKey).(*model.User)
	return user, ok && user != nil
}
