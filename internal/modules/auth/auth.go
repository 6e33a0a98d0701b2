package auth

import (
	"context"
	"errors"

	"github.com/customcraft/customcraft-backend/internal/modules/user"
)

// ErrInvalidCredentials is returned when the password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserNotFound is returned when no account exists for the email.
var ErrUserNotFound = errors.New("user not found")

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies credentials and returns a signed session token plus
	// the authenticated user.
	Login(ctx context.Context, email, password string) (string, *user.User, error)
}
