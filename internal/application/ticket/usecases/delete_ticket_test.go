package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
)

func reconstructAttachment(t *testing.T, id uint, filename string) *ticket.Attachment {
	a, err := ticket.ReconstructAttachment(id, 1, filename, "orig.txt", "text/plain", 3, time.Now())
	require.NoError(t, err)
	return a
}

func TestDeleteTicketUseCase_Execute_RemovesFilesAfterCommit(t *testing.T) {
	attachments := []*ticket.Attachment{
		reconstructAttachment(t, 1, "aaa.txt"),
		reconstructAttachment(t, 2, "bbb.png"),
	}
	var deleted bool
	repo := &mockTicketRepository{
		FindAttachmentsByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
			return attachments, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	store := &mockFileStore{}

	useCase := NewDeleteTicketUseCase(repo, &fakeTxRunner{}, store, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 1})

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.ElementsMatch(t, []string{"aaa.txt", "bbb.png"}, store.Removed)
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	repo := &mockTicketRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return gorm.ErrRecordNotFound
		},
	}
	store := &mockFileStore{}

	useCase := NewDeleteTicketUseCase(repo, &fakeTxRunner{}, store, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 404})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Empty(t, store.Removed, "rollback must not remove files")
}

func TestDeleteTicketUseCase_Execute_RollbackKeepsFiles(t *testing.T) {
	repo := &mockTicketRepository{
		FindAttachmentsByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
			return []*ticket.Attachment{reconstructAttachment(t, 1, "aaa.txt")}, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			return gorm.ErrInvalidTransaction
		},
	}
	store := &mockFileStore{}

	useCase := NewDeleteTicketUseCase(repo, &fakeTxRunner{}, store, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 1})

	require.Error(t, err)
	assert.Empty(t, store.Removed)
}
