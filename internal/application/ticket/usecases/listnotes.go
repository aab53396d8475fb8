package usecases

import (
	"context"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type ListNotesQuery struct {
	TicketID uint
}

type ListNotesUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListNotesUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListNotesUseCase {
	return &ListNotesUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListNotesUseCase) Execute(ctx context.Context, query ListNotesQuery) ([]dto.NoteDTO, error) {
	exists, err := uc.ticketRepo.Exists(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to check ticket existence", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list notes")
	}
	if !exists {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	notes, err := uc.ticketRepo.FindNotesByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list notes", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list notes")
	}

	result := make([]dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		result = append(result, dto.NoteToDTO(n))
	}
	return result, nil
}
