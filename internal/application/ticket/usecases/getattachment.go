package usecases

import (
	"context"
	"errors"
	"io"

	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/storage"
	apperrors "github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type GetAttachmentQuery struct {
	AttachmentID uint
}

// AttachmentContent pairs the metadata with an open reader on the backing
// file. The caller must close Content.
type AttachmentContent struct {
	Attachment dto.AttachmentDTO
	Content    io.ReadCloser
}

type GetAttachmentUseCase struct {
	ticketRepo ticket.Repository
	fileStore  storage.FileStore
	logger     logger.Interface
}

func NewGetAttachmentUseCase(
	ticketRepo ticket.Repository,
	fileStore storage.FileStore,
	logger logger.Interface,
) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		ticketRepo: ticketRepo,
		fileStore:  fileStore,
		logger:     logger,
	}
}

func (uc *GetAttachmentUseCase) Execute(ctx context.Context, query GetAttachmentQuery) (*AttachmentContent, error) {
	attachment, err := uc.ticketRepo.FindAttachmentByID(ctx, query.AttachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("attachment not found")
		}
		uc.logger.Errorw("failed to load attachment", "attachment_id", query.AttachmentID, "error", err)
		return nil, apperrors.NewInternalError("failed to get attachment")
	}

	content, err := uc.fileStore.Open(attachment.Filename())
	if err != nil {
		// Row exists but the file is gone; treat it the same as a missing row.
		uc.logger.Warnw("attachment file missing",
			"attachment_id", query.AttachmentID, "filename", attachment.Filename(), "error", err)
		return nil, apperrors.NewNotFoundError("attachment file not found")
	}

	return &AttachmentContent{
		Attachment: dto.AttachmentToDTO(attachment),
		Content:    content,
	}, nil
}
