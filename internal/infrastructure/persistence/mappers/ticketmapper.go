package mappers

import (
	"time"

	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (m TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	var description *string
	if t.Description() != "" {
		d := t.Description()
		description = &d
	}

	return &models.TicketModel{
		ID:           t.ID(),
		Title:        t.Title(),
		Description:  description,
		ReporterName: t.ReporterName(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		Category:     t.Category().String(),
		AssigneeID:   t.AssigneeID(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
		UpdatedAt:    t.UpdatedAt().UnixMilli(),
	}
}

func (m TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	description := ""
	if model.Description != nil {
		description = *model.Description
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		description,
		model.ReporterName,
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		vo.Category(model.Category),
		model.AssigneeID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m TicketMapper) NoteToModel(n *ticket.Note) *models.NoteModel {
	return &models.NoteModel{
		ID:         n.ID(),
		TicketID:   n.TicketID(),
		AuthorName: n.AuthorName(),
		Content:    n.Content(),
		CreatedAt:  n.CreatedAt().UnixMilli(),
	}
}

func (m TicketMapper) NoteToDomain(model *models.NoteModel) (*ticket.Note, error) {
	return ticket.ReconstructNote(
		model.ID,
		model.TicketID,
		model.AuthorName,
		model.Content,
		time.UnixMilli(model.CreatedAt),
	)
}

func (m TicketMapper) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		Filename:     a.Filename(),
		OriginalName: a.OriginalName(),
		Mimetype:     a.Mimetype(),
		Size:         a.Size(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
	}
}

func (m TicketMapper) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.Filename,
		model.OriginalName,
		model.Mimetype,
		model.Size,
		time.UnixMilli(model.CreatedAt),
	)
}
