package database

import (
	"gorm.io/gorm"

	"github.com/flexvoice/backend/internal/models"
)

// RunMigrations brings the schema up to date. GORM auto-migration covers the
// single-table schema on both Postgres and the sqlite test databases.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Plan{},
	)
}
