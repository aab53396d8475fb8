package usecases

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	apperrors "github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	wa, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, apperrors.NewInternalError("failed to get ticket")
	}

	notes, err := uc.ticketRepo.FindNotesByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load notes", "ticket_id", query.TicketID, "error", err)
		return nil, apperrors.NewInternalError("failed to get ticket")
	}

	attachments, err := uc.ticketRepo.FindAttachmentsByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "ticket_id", query.TicketID, "error", err)
		return nil, apperrors.NewInternalError("failed to get ticket")
	}

	detail := &dto.TicketDetailDTO{
		TicketDTO:   dto.TicketToDTO(wa),
		Notes:       make([]dto.NoteDTO, 0, len(notes)),
		Attachments: make([]dto.AttachmentDTO, 0, len(attachments)),
	}
	for _, n := range notes {
		detail.Notes = append(detail.Notes, dto.NoteToDTO(n))
	}
	for _, a := range attachments {
		detail.Attachments = append(detail.Attachments, dto.AttachmentToDTO(a))
	}
	return detail, nil
}
