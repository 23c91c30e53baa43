package user

import (
	"context"
	"errors"

	"github.com/hairizuan-noorazman/jobly/database"
	"github.com/hairizuan-noorazman/jobly/logger"
	"gorm.io/gorm"
)

// PostgresStore implements the Store interface using GORM.
type PostgresStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewPostgresStore creates a new PostgreSQL-backed user store.
func NewPostgresStore(db *gorm.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log,
	}
}

// Create creates a new user in the database.
func (s *PostgresStore) Create(ctx context.Context, user *User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || database.IsUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		s.logger.Error(ctx, "failed to create user", map[string]interface{}{
			"error":    err.Error(),
			"username": user.Username,
		})
		return err
	}

	s.logger.Info(ctx, "user created", map[string]interface{}{
		"username": user.Username,
		"is_admin": user.IsAdmin,
	})

	return nil
}

// GetByUsername retrieves a user by username.
func (s *PostgresStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error(ctx, "failed to get user by username", map[string]interface{}{
			"error":    err.Error(),
			"username": username,
		})
		return nil, err
	}

	return &user, nil
}

// Authenticate looks up the user and checks the password. Unknown users and
// wrong passwords both return ErrInvalidCredentials.
func (s *PostgresStore) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		s.logger.Warn(ctx, "invalid password attempt", map[string]interface{}{
			"username": username,
		})
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
