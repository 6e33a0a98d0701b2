package user

import (
	"context"
	"errors"
)

// ErrEmailTaken is returned when registration hits an existing email.
var ErrEmailTaken = errors.New("user already exists")

// Service defines the interface for user-related business logic.
type Service interface {
	RegisterUser(ctx context.Context, email, password, name string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
}

// Repository defines data access for users.
type Repository interface {
	// CreateUser inserts a new user. A duplicate email yields ErrEmailTaken.
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}
