package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/j-kappa/ticketing-system/internal/domain/team"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.TeamMemberModel{},
		&models.TicketModel{},
		&models.NoteModel{},
		&models.AttachmentModel{},
	)
	require.NoError(t, err)

	return db
}

func newTestTicket(t *testing.T, title, reporter string, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "test description", reporter,
		vo.StatusNew, vo.PriorityMedium, vo.CategorySoftware, assigneeID)
	require.NoError(t, err)
	return tk
}

func newTestMember(t *testing.T, name, email string) *team.Member {
	t.Helper()
	m, err := team.NewMember(name, email)
	require.NoError(t, err)
	return m
}
