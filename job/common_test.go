package job

import (
	"testing"

	"github.com/hairizuan-noorazman/jobly/logger"
	"github.com/hairizuan-noorazman/jobly/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a seeded test database and job store. It returns the
// seeded job ids keyed by title.
func setupTestStore(t *testing.T) (*gorm.DB, Store, map[string]int) {
	db := testutil.SetupTestDB(t)
	ids := testutil.SeedJobBoard(t, db)

	log := logger.NewTestLogger()
	store := NewPostgresStore(db, log)

	return db, store, ids
}

func titles(jobs []*Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return out
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
