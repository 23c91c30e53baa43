package user

import (
	"testing"

	"github.com/hairizuan-noorazman/jobly/logger"
	"github.com/hairizuan-noorazman/jobly/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a test database and user store for testing.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)

	log := logger.NewTestLogger()
	store := NewPostgresStore(db, log)

	return db, store
}

// createTestUser creates a test user with default values.
func createTestUser(username, password string, isAdmin bool) *User {
	user := &User{
		Username:  username,
		FirstName: "First",
		LastName:  "Last",
		Email:     username + "@example.com",
		IsAdmin:   isAdmin,
	}
	user.SetPassword(password)
	return user
}
