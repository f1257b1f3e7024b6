package database

import (
	"fmt"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates the tables for all record kinds if not already
// present. Safe to run on every startup.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Organizer{},
		&models.OrganizerDetails{},
		&models.OrganizerSession{},
		&models.OrganizerMeta{},
		&models.Event{},
		&models.RSVP{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
