package company

import (
	"testing"

	"github.com/hairizuan-noorazman/jobly/logger"
	"github.com/hairizuan-noorazman/jobly/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a seeded test database and company store.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.SeedJobBoard(t, db)

	log := logger.NewTestLogger()
	store := NewPostgresStore(db, log)

	return db, store
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
