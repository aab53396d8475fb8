package usecases

import (
	"context"
	"fmt"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/team"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title        string
	Description  string
	ReporterName string
	Status       string
	Priority     string
	Category     string
	AssigneeID   *uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	teamRepo   team.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	teamRepo team.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		teamRepo:   teamRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "reporter", cmd.ReporterName)

	status := cmd.Status
	if status == "" {
		status = vo.StatusNew.String()
	}
	priority := cmd.Priority
	if priority == "" {
		priority = vo.PriorityMedium.String()
	}
	category := cmd.Category
	if category == "" {
		category = vo.CategorySoftware.String()
	}

	if err := uc.validateEnums(status, priority, category); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	if cmd.AssigneeID != nil {
		exists, err := uc.teamRepo.Exists(ctx, *cmd.AssigneeID)
		if err != nil {
			uc.logger.Errorw("failed to check assignee", "error", err)
			return nil, errors.NewInternalError("failed to create ticket")
		}
		if !exists {
			return nil, errors.NewValidationError(fmt.Sprintf("assignee %d does not exist", *cmd.AssigneeID))
		}
	}

	newTicket, err := ticket.NewTicket(
		sanitize(cmd.Title),
		sanitize(cmd.Description),
		sanitize(cmd.ReporterName),
		vo.Status(status),
		vo.Priority(priority),
		vo.Category(category),
		cmd.AssigneeID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID())

	created, err := uc.ticketRepo.FindByID(ctx, newTicket.ID())
	if err != nil {
		uc.logger.Errorw("failed to reload created ticket", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	result := dto.TicketToDTO(created)
	return &result, nil
}

func (uc *CreateTicketUseCase) validateEnums(status, priority, category string) error {
	if !vo.Status(status).IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}
	if !vo.Priority(priority).IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid priority: %s", priority))
	}
	if !vo.Category(category).IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid category: %s", category))
	}
	return nil
}
