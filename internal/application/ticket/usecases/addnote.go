package usecases

import (
	"context"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type AddNoteCommand struct {
	TicketID   uint
	AuthorName string
	Content    string
}

type AddNoteUseCase struct {
	ticketRepo ticket.Repository
	txManager  TransactionRunner
	logger     logger.Interface
	now        nowFunc
}

func NewAddNoteUseCase(
	ticketRepo ticket.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
		now:        defaultNow,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*dto.NoteDTO, error) {
	uc.logger.Infow("executing add note use case", "ticket_id", cmd.TicketID)

	note, err := ticket.NewNote(cmd.TicketID, sanitize(cmd.AuthorName), sanitize(cmd.Content))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.ticketRepo.Exists(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewNotFoundError("ticket not found")
		}
		if err := uc.ticketRepo.SaveNote(txCtx, note); err != nil {
			return err
		}
		return uc.ticketRepo.Touch(txCtx, cmd.TicketID, uc.now())
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to add note", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to add note")
	}

	uc.logger.Infow("note added", "ticket_id", cmd.TicketID, "note_id", note.ID())
	result := dto.NoteToDTO(note)
	return &result, nil
}
