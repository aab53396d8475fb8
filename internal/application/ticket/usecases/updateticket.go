package usecases

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/team"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
	apperrors "github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

// UpdateTicketCommand carries a partial update. Nil pointer fields keep the
// stored value, with one exception: AssigneeID is applied as decoded, so an
// absent assignee_id key in the request unassigns the ticket.
type UpdateTicketCommand struct {
	TicketID     uint
	Title        *string
	Description  *string
	ReporterName *string
	Status       *string
	Priority     *string
	Category     *string
	AssigneeID   *uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	teamRepo   team.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	teamRepo team.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		teamRepo:   teamRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "error", err)
		return nil, apperrors.NewInternalError("failed to update ticket")
	}

	t := existing.Ticket
	if cmd.Title != nil {
		if err := t.UpdateTitle(sanitize(*cmd.Title)); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		t.UpdateDescription(sanitize(*cmd.Description))
	}
	if cmd.ReporterName != nil {
		if err := t.UpdateReporterName(sanitize(*cmd.ReporterName)); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Category != nil {
		category, err := vo.NewCategory(*cmd.Category)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := t.ChangeCategory(category); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.AssigneeID != nil {
		exists, err := uc.teamRepo.Exists(ctx, *cmd.AssigneeID)
		if err != nil {
			uc.logger.Errorw("failed to check assignee", "error", err)
			return nil, apperrors.NewInternalError("failed to update ticket")
		}
		if !exists {
			return nil, apperrors.NewValidationError(fmt.Sprintf("assignee %d does not exist", *cmd.AssigneeID))
		}
	}
	t.Assign(cmd.AssigneeID)

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, apperrors.NewInternalError("failed to update ticket")
	}

	updated, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to reload updated ticket", "error", err)
		return nil, apperrors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID)
	result := dto.TicketToDTO(updated)
	return &result, nil
}
