package main

import (
	"database/sql"
	"fmt"

	"github.com/hairizuan-noorazman/jobly/database"
	"gorm.io/gorm"
)

func databaseConfig(cfg *Config) database.Config {
	return database.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	}
}

// openDatabase connects using cfg. The caller closes the returned *sql.DB.
func openDatabase(cfg *Config) (*gorm.DB, *sql.DB, error) {
	db, err := database.Connect(databaseConfig(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	return db, sqlDB, nil
}
