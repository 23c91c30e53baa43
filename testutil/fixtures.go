package testutil

import (
	"testing"

	"gorm.io/gorm"
)

// SeedJobBoard inserts three companies (c1, c2, c3) and three jobs:
//
//	j1: c1, salary 15000, equity 0.6
//	j2: c1, salary 8000,  equity 0
//	j3: c2, salary 7000,  no equity
//
// It returns the job ids keyed by title.
func SeedJobBoard(t *testing.T, db *gorm.DB) map[string]int {
	t.Helper()

	exec(t, db, `INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES ('c1', 'C1', 1, 'Desc1', 'http://c1.img'),
		       ('c2', 'C2', 2, 'Desc2', 'http://c2.img'),
		       ('c3', 'C3', 3, 'Desc3', 'http://c3.img')`)

	exec(t, db, `INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ('j1', 15000, 0.6, 'c1'),
		       ('j2', 8000, 0, 'c1'),
		       ('j3', 7000, NULL, 'c2')`)

	var rows []struct {
		ID    int
		Title string
	}
	if err := db.Raw("SELECT id, title FROM jobs").Scan(&rows).Error; err != nil {
		t.Fatalf("failed to read seeded jobs: %v", err)
	}

	ids := make(map[string]int, len(rows))
	for _, r := range rows {
		ids[r.Title] = r.ID
	}
	return ids
}

// CreateFixture inserts a model through GORM.
func CreateFixture(t *testing.T, db *gorm.DB, model interface{}) {
	t.Helper()
	if err := db.Create(model).Error; err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
}

func exec(t *testing.T, db *gorm.DB, sql string) {
	t.Helper()
	if err := db.Exec(sql).Error; err != nil {
		t.Fatalf("failed to seed fixtures: %v", err)
	}
}
