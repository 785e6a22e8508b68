package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wisensor/wisensor-api/internal/core/domain"
)

// Connect opens the database and runs the idempotent schema migration.
// AutoMigrate creates missing tables, columns, indexes, and the two
// many-to-many join tables; repeated startups are no-ops.
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Role{},
		&domain.Permission{},
		&domain.Project{},
		&domain.UserProject{},
		&domain.Center{},
	); err != nil {
		return fmt.Errorf("schema migration: %w", err)
	}
	return nil
}
