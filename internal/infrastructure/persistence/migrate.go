package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/infrastructure/persistence/models"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

// Migrate creates or updates the schema for all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.TeamMemberModel{},
		&models.TicketModel{},
		&models.NoteModel{},
		&models.AttachmentModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("database migration completed")
	return nil
}

var defaultMembers = []models.TeamMemberModel{
	{Name: "John Smith", Email: "john.smith@example.com"},
	{Name: "Jane Doe", Email: "jane.doe@example.com"},
	{Name: "Bob Wilson", Email: "bob.wilson@example.com"},
	{Name: "Alice Johnson", Email: "alice.johnson@example.com"},
}

// Seed inserts the default team members when the table is empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TeamMemberModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count team members: %w", err)
	}
	if count > 0 {
		return nil
	}

	members := make([]models.TeamMemberModel, len(defaultMembers))
	copy(members, defaultMembers)
	if err := db.Create(&members).Error; err != nil {
		return fmt.Errorf("failed to seed team members: %w", err)
	}

	logger.Info("seeded default team members", "count", len(members))
	return nil
}
