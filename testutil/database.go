package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// schema mirrors database/migrations in SQLite syntax.
var schema = []string{
	`CREATE TABLE companies (
		handle VARCHAR(25) PRIMARY KEY CHECK (handle = lower(handle)),
		name TEXT UNIQUE NOT NULL,
		num_employees INTEGER CHECK (num_employees >= 0),
		description TEXT NOT NULL,
		logo_url TEXT
	)`,
	`CREATE TABLE jobs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		salary INTEGER CHECK (salary >= 0),
		equity NUMERIC CHECK (equity <= 1.0),
		company_handle VARCHAR(25) NOT NULL
			REFERENCES companies ON DELETE CASCADE
	)`,
	`CREATE TABLE users (
		username VARCHAR(25) PRIMARY KEY,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL CHECK (instr(email, '@') > 1),
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// SetupTestDB creates an in-memory SQLite database with the application schema.
// Foreign keys are enforced and the pool is pinned to one connection so every
// query sees the same in-memory database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	return db
}

// DropTable removes a table so tests can exercise database failures.
func DropTable(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	if err := db.Exec("DROP TABLE " + table).Error; err != nil {
		t.Fatalf("failed to drop table %s: %v", table, err)
	}
}
