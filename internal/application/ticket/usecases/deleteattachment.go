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

type DeleteAttachmentCommand struct {
	AttachmentID uint
}

type DeleteAttachmentUseCase struct {
	ticketRepo ticket.Repository
	fileStore  storage.FileStore
	logger     logger.Interface
}

func NewDeleteAttachmentUseCase(
	ticketRepo ticket.Repository,
	fileStore storage.FileStore,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		ticketRepo: ticketRepo,
		fileStore:  fileStore,
		logger:     logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	attachment, err := uc.ticketRepo.FindAttachmentByID(ctx, cmd.AttachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("attachment not found")
		}
		uc.logger.Errorw("failed to load attachment", "attachment_id", cmd.AttachmentID, "error", err)
		return apperrors.NewInternalError("failed to delete attachment")
	}

	// A file already gone on disk does not block deleting the row.
	if err := uc.fileStore.Remove(attachment.Filename()); err != nil {
		uc.logger.Warnw("failed to remove attachment file",
			"attachment_id", cmd.AttachmentID, "filename", attachment.Filename(), "error", err)
	}

	if err := uc.ticketRepo.DeleteAttachment(ctx, cmd.AttachmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("attachment not found")
		}
		uc.logger.Errorw("failed to delete attachment", "attachment_id", cmd.AttachmentID, "error", err)
		return apperrors.NewInternalError("failed to delete attachment")
	}

	uc.logger.Infow("attachment deleted", "attachment_id", cmd.AttachmentID)
	return nil
}
