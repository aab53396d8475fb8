package usecases

import (
	"context"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type ListAttachmentsQuery struct {
	TicketID uint
}

type ListAttachmentsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListAttachmentsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error) {
	exists, err := uc.ticketRepo.Exists(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to check ticket existence", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list attachments")
	}
	if !exists {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	attachments, err := uc.ticketRepo.FindAttachmentsByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list attachments")
	}

	result := make([]dto.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		result = append(result, dto.AttachmentToDTO(a))
	}
	return result, nil
}
