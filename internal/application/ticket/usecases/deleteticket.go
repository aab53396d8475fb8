package usecases

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/storage"
	apperrors "github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	txManager  TransactionRunner
	fileStore  storage.FileStore
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	txManager TransactionRunner,
	fileStore storage.FileStore,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		fileStore:  fileStore,
		logger:     logger,
	}
}

// Execute removes the ticket row inside a transaction; notes and attachment
// rows go with it through the cascading foreign keys. Backing files are
// removed only after the commit, so a rollback never loses file content.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	var filenames []string
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		attachments, err := uc.ticketRepo.FindAttachmentsByTicketID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		for _, a := range attachments {
			filenames = append(filenames, a.Filename())
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return apperrors.NewInternalError("failed to delete ticket")
	}

	for _, name := range filenames {
		if err := uc.fileStore.Remove(name); err != nil {
			// The row is already gone; an orphaned file is only a leak.
			uc.logger.Warnw("failed to remove attachment file", "filename", name, "error", err)
		}
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "attachments_removed", len(filenames))
	return nil
}
