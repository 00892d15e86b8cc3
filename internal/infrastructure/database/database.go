package database

import (
	"swapsociety-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from a Postgres DSN. PreferSimpleProtocol disables
// prepared statement caching to avoid 42P05 ("prepared statement already
// exists") when running behind connection poolers (PgBouncer, Supabase).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// OpenSQLite opens a local SQLite store. Used as the fallback when no
// DATABASE_URL is configured, so a bare checkout still runs with seed data.
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// AutoMigrate runs migrations for the core models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Listing{})
}
