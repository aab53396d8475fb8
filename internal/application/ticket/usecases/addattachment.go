package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/storage"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

// allowedMimetypes is the upload allow-list. Any text/* subtype is accepted
// in addition to these.
var allowedMimetypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
	"text/plain":      true,
	"text/csv":        true,
	"text/log":        true,
	"application/json": true,
	"application/zip":  true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

type AddAttachmentCommand struct {
	TicketID     uint
	OriginalName string
	Mimetype     string
	Size         int64
	Content      io.Reader
}

type AddAttachmentUseCase struct {
	ticketRepo ticket.Repository
	txManager  TransactionRunner
	fileStore  storage.FileStore
	maxSize    int64
	logger     logger.Interface
	now        nowFunc
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.Repository,
	txManager TransactionRunner,
	fileStore storage.FileStore,
	maxSize int64,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		fileStore:  fileStore,
		maxSize:    maxSize,
		logger:     logger,
		now:        defaultNow,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	uc.logger.Infow("executing add attachment use case",
		"ticket_id", cmd.TicketID, "original_name", cmd.OriginalName, "size", cmd.Size)

	if cmd.Content == nil || cmd.OriginalName == "" {
		return nil, errors.NewValidationError("no file uploaded")
	}
	if cmd.Size > uc.maxSize {
		return nil, errors.NewValidationError(fmt.Sprintf("file exceeds maximum size of %d bytes", uc.maxSize))
	}
	if !mimetypeAllowed(cmd.Mimetype) {
		return nil, errors.NewValidationError(fmt.Sprintf("file type %s is not allowed", cmd.Mimetype))
	}

	storedName := uuid.New().String() + strings.ToLower(filepath.Ext(cmd.OriginalName))
	written, err := uc.fileStore.Save(storedName, io.LimitReader(cmd.Content, uc.maxSize+1))
	if err != nil {
		uc.logger.Errorw("failed to store attachment file", "error", err)
		return nil, errors.NewInternalError("failed to upload attachment")
	}
	if written > uc.maxSize {
		uc.removeFile(storedName)
		return nil, errors.NewValidationError(fmt.Sprintf("file exceeds maximum size of %d bytes", uc.maxSize))
	}

	attachment, err := ticket.NewAttachment(cmd.TicketID, storedName, cmd.OriginalName, cmd.Mimetype, written)
	if err != nil {
		uc.removeFile(storedName)
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
		if err := uc.ticketRepo.SaveAttachment(txCtx, attachment); err != nil {
			return err
		}
		return uc.ticketRepo.Touch(txCtx, cmd.TicketID, uc.now())
	})
	if err != nil {
		uc.removeFile(storedName)
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to save attachment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to upload attachment")
	}

	uc.logger.Infow("attachment uploaded",
		"ticket_id", cmd.TicketID, "attachment_id", attachment.ID(), "filename", storedName)
	result := dto.AttachmentToDTO(attachment)
	return &result, nil
}

func (uc *AddAttachmentUseCase) removeFile(name string) {
	if err := uc.fileStore.Remove(name); err != nil {
		uc.logger.Warnw("failed to remove orphaned attachment file", "filename", name, "error", err)
	}
}

func mimetypeAllowed(mimetype string) bool {
	mt := strings.ToLower(strings.TrimSpace(mimetype))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return allowedMimetypes[mt] || strings.HasPrefix(mt, "text/")
}
