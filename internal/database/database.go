package database

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver

	"anchorchain/internal/domain"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to SQLite
// (file path or :memory:) for local development and tests.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate applies the schema for every catalog entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Manufacturer{},
		&domain.Certification{},
		&domain.Product{},
		&domain.Facility{},
		&domain.NewsItem{},
		&domain.BidProject{},
		&domain.SourceCatalog{},
	)
}
