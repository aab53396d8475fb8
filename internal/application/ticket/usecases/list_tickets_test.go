package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
)

func TestListTicketsUseCase_Execute_FilterMapping(t *testing.T) {
	var captured ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]ticket.WithAssignee, error) {
			captured = filter
			return nil, nil
		},
	}

	assignee := uint(2)
	useCase := NewListTicketsUseCase(repo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{
		Status:     "new",
		Priority:   "high",
		Category:   "network",
		AssigneeID: &assignee,
		Search:     "vpn",
		SortBy:     "priority",
		SortOrder:  "asc",
	})

	require.NoError(t, err)
	assert.Empty(t, result)

	require.NotNil(t, captured.Status)
	assert.Equal(t, vo.StatusNew, *captured.Status)
	require.NotNil(t, captured.Priority)
	assert.Equal(t, vo.PriorityHigh, *captured.Priority)
	require.NotNil(t, captured.Category)
	assert.Equal(t, vo.CategoryNetwork, *captured.Category)
	require.NotNil(t, captured.AssigneeID)
	assert.Equal(t, assignee, *captured.AssigneeID)
	assert.Equal(t, "vpn", captured.Search)
	assert.Equal(t, "priority", captured.SortBy)
}

func TestListTicketsUseCase_Execute_AbsentFiltersOmitted(t *testing.T) {
	var captured ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]ticket.WithAssignee, error) {
			captured = filter
			return nil, nil
		},
	}

	useCase := NewListTicketsUseCase(repo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ListTicketsQuery{})

	require.NoError(t, err)
	assert.Nil(t, captured.Status)
	assert.Nil(t, captured.Priority)
	assert.Nil(t, captured.Category)
	assert.Nil(t, captured.AssigneeID)
}

func TestListTicketsUseCase_Execute_InvalidFilterEnum(t *testing.T) {
	useCase := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})

	for _, query := range []ListTicketsQuery{
		{Status: "open"},
		{Priority: "critical"},
		{Category: "billing"},
	} {
		_, err := useCase.Execute(context.Background(), query)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestListTicketsUseCase_Execute_MapsRows(t *testing.T) {
	assignee := uint(3)
	name := "Jane Doe"
	email := "jane.doe@example.com"
	tk, err := ticket.ReconstructTicket(
		7, "VPN flaky", "", "Dana Cruz",
		vo.StatusInProgress, vo.PriorityHigh, vo.CategoryNetwork, &assignee,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]ticket.WithAssignee, error) {
			return []ticket.WithAssignee{{Ticket: tk, AssigneeName: &name, AssigneeEmail: &email}}, nil
		},
	}

	useCase := NewListTicketsUseCase(repo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, uint(7), result[0].ID)
	require.NotNil(t, result[0].AssigneeName)
	assert.Equal(t, "Jane Doe", *result[0].AssigneeName)
}
