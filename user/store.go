package user

import (
	"context"
	"errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials is returned when a username/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid username/password")
)

// Store defines the interface for user persistence operations.
type Store interface {
	// Create creates a new user in the store.
	Create(ctx context.Context, user *User) error

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Authenticate returns the user when the password matches.
	Authenticate(ctx context.Context, username, password string) (*User, error)
}
