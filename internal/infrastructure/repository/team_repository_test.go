package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/domain/team"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
)

func TestGormTeamRepository_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTeamRepository(db)
	ctx := context.Background()

	for _, m := range []struct{ name, email string }{
		{"Jane Doe", "jane.doe@example.com"},
		{"Bob Wilson", "bob.wilson@example.com"},
		{"Alice Johnson", "alice.johnson@example.com"},
	} {
		require.NoError(t, repo.Save(ctx, newTestMember(t, m.name, m.email)))
	}

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "Alice Johnson", members[0].Member.Name(), "ordered by name")
	assert.Equal(t, "Jane Doe", members[2].Member.Name())
}

func TestGormTeamRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTeamRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestMember(t, "Jane Doe", "jane.doe@example.com")))

	err := repo.Save(ctx, newTestMember(t, "Impostor", "jane.doe@example.com"))
	require.Error(t, err)

	var dup *team.ErrDuplicateEmail
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "jane.doe@example.com", dup.Email)
}

func TestGormTeamRepository_OpenTicketCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTeamRepository(db)
	ticketRepo := NewGormTicketRepository(db)
	ctx := context.Background()

	member := newTestMember(t, "Jane Doe", "jane.doe@example.com")
	require.NoError(t, repo.Save(ctx, member))
	idle := newTestMember(t, "Bob Wilson", "bob.wilson@example.com")
	require.NoError(t, repo.Save(ctx, idle))

	memberID := member.ID()
	open, err := ticket.NewTicket("Open one", "", "Dana Cruz",
		vo.StatusInProgress, vo.PriorityMedium, vo.CategorySoftware, &memberID)
	require.NoError(t, err)
	require.NoError(t, ticketRepo.Save(ctx, open))

	closed, err := ticket.NewTicket("Closed one", "", "Dana Cruz",
		vo.StatusClosed, vo.PriorityMedium, vo.CategorySoftware, &memberID)
	require.NoError(t, err)
	require.NoError(t, ticketRepo.Save(ctx, closed))

	found, err := repo.FindByID(ctx, member.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.OpenTickets, "closed tickets excluded")

	foundIdle, err := repo.FindByID(ctx, idle.ID())
	require.NoError(t, err)
	assert.Zero(t, foundIdle.OpenTickets)
}

func TestGormTeamRepository_DeleteNullifiesAssignee(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTeamRepository(db)
	ticketRepo := NewGormTicketRepository(db)
	ctx := context.Background()

	member := newTestMember(t, "Jane Doe", "jane.doe@example.com")
	require.NoError(t, repo.Save(ctx, member))

	memberID := member.ID()
	tk := newTestTicket(t, "Assigned ticket", "Dana Cruz", &memberID)
	require.NoError(t, ticketRepo.Save(ctx, tk))

	require.NoError(t, repo.Delete(ctx, member.ID()))

	found, err := ticketRepo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, found.Ticket.AssigneeID(), "assignee nulled by the store, ticket survives")
}

func TestGormTeamRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTeamRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 999), gorm.ErrRecordNotFound)

	ghost := newTestMember(t, "Ghost", "ghost@example.com")
	require.NoError(t, ghost.SetID(999))
	assert.ErrorIs(t, repo.Update(ctx, ghost), gorm.ErrRecordNotFound)
}
