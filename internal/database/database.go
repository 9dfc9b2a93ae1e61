package database

import (
	"fmt"
	"os"
	"path/filepath"

	"sitekhata/internal/logger"
	"sitekhata/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles the local record store, a single SQLite file created on
// first run.
type Manager struct {
	db *gorm.DB
}

// NewManager opens (or creates) the SQLite database at the given path.
func NewManager(path string) (*Manager, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Manager{db: db}, nil
}

// Migrate creates or updates the schema for all record collections.
func (m *Manager) Migrate() error {
	logger.Get().Info("Migrating record store schema...")

	if err := m.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Record store schema is up to date")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
