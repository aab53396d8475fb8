package usecases

import (
	"context"
	"fmt"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

// ListTicketsQuery mirrors the list endpoint's query string. Empty strings
// mean the filter is absent.
type ListTicketsQuery struct {
	Status     string
	Priority   string
	Category   string
	AssigneeID *uint
	Search     string
	SortBy     string
	SortOrder  string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketDTO, error) {
	filter := ticket.Filter{
		AssigneeID: query.AssigneeID,
		Search:     query.Search,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid status: %s", query.Status))
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid priority: %s", query.Priority))
		}
		filter.Priority = &priority
	}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid category: %s", query.Category))
		}
		filter.Category = &category
	}

	rows, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	result := make([]dto.TicketDTO, 0, len(rows))
	for i := range rows {
		result = append(result, dto.TicketToDTO(&rows[i]))
	}
	return result, nil
}
