package user

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordTooShort is returned when a password is less than 5 characters.
	ErrPasswordTooShort = errors.New("password must be at least 5 characters")

	// ErrInvalidUsername is returned when a username is empty or too long.
	ErrInvalidUsername = errors.New("username must be 1 to 25 characters")

	// ErrInvalidEmail is returned when an email is empty or malformed.
	ErrInvalidEmail = errors.New("a valid email is required")

	// ErrInvalidName is returned when the first or last name is missing.
	ErrInvalidName = errors.New("firstName and lastName are required")
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 5

// User represents an account that can sign in to the API.
type User struct {
	Username     string `json:"username" gorm:"primaryKey;size:25"`
	PasswordHash string `json:"-" gorm:"not null"`
	FirstName    string `json:"firstName" gorm:"not null"`
	LastName     string `json:"lastName" gorm:"not null"`
	Email        string `json:"email" gorm:"not null"`
	IsAdmin      bool   `json:"isAdmin" gorm:"not null;default:false"`
}

// TableName returns the database table name.
func (User) TableName() string {
	return "users"
}

// SetPassword hashes and sets the user's password.
// Returns an error if the password is too short.
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies if the provided password matches the user's password hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Validate checks if the user has valid required fields.
func (u *User) Validate() error {
	if u.Username == "" || len(u.Username) > 25 {
		return ErrInvalidUsername
	}
	if u.FirstName == "" || u.LastName == "" {
		return ErrInvalidName
	}
	if at := strings.Index(u.Email, "@"); at < 1 || at == len(u.Email)-1 {
		return ErrInvalidEmail
	}
	return nil
}
