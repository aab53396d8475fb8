package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/persistence/mappers"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/persistence/models"
	"github.com/j-kappa/ticketing-system/internal/shared/db"
)

// allowedTicketSortFields maps client sort keys to column expressions. Any
// key outside this map falls back to created_at.
var allowedTicketSortFields = map[string]string{
	"created_at": "tickets.created_at",
	"updated_at": "tickets.updated_at",
	"priority":   "tickets.priority",
	"status":     "tickets.status",
	"title":      "tickets.title",
}

// ticketRow is the flat scan target for the ticket/team_members join.
type ticketRow struct {
	models.TicketModel
	AssigneeName  *string
	AssigneeEmail *string
}

type GormTicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewGormTicketRepository(gdb *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *GormTicketRepository) getDB(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

func (r *GormTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return t.SetID(model.ID)
}

// Update writes every mutable column. The explicit Select keeps gorm from
// skipping nil assignee_id, which must persist as NULL when unassigning.
func (r *GormTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	result := r.getDB(ctx).Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Select("title", "description", "reporter_name", "status", "priority", "category", "assignee_id", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormTicketRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormTicketRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.TicketModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check ticket existence: %w", err)
	}
	return count > 0, nil
}

func (r *GormTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.WithAssignee, error) {
	var row ticketRow
	err := r.getDB(ctx).Model(&models.TicketModel{}).
		Select("tickets.*, team_members.name AS assignee_name, team_members.email AS assignee_email").
		Joins("LEFT JOIN team_members ON team_members.id = tickets.assignee_id").
		Where("tickets.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.rowToDomain(&row)
}

func (r *GormTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]ticket.WithAssignee, error) {
	query := r.getDB(ctx).Model(&models.TicketModel{}).
		Select("tickets.*, team_members.name AS assignee_name, team_members.email AS assignee_email").
		Joins("LEFT JOIN team_members ON team_members.id = tickets.assignee_id")

	if filter.Status != nil {
		query = query.Where("tickets.status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("tickets.priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		query = query.Where("tickets.category = ?", filter.Category.String())
	}
	if filter.AssigneeID != nil {
		query = query.Where("tickets.assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(tickets.title) LIKE ? OR LOWER(COALESCE(tickets.description, '')) LIKE ? OR LOWER(tickets.reporter_name) LIKE ?",
			term, term, term,
		)
	}

	query = query.Order(buildTicketOrderClause(filter.SortBy, filter.SortOrder))

	var rows []ticketRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	result := make([]ticket.WithAssignee, 0, len(rows))
	for i := range rows {
		wa, err := r.rowToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *wa)
	}
	return result, nil
}

func (r *GormTicketRepository) Touch(ctx context.Context, id uint, at time.Time) error {
	err := r.getDB(ctx).Model(&models.TicketModel{}).
		Where("id = ?", id).
		Update("updated_at", at.UnixMilli()).Error
	if err != nil {
		return fmt.Errorf("failed to touch ticket: %w", err)
	}
	return nil
}

func (r *GormTicketRepository) SaveNote(ctx context.Context, n *ticket.Note) error {
	model := r.mapper.NoteToModel(n)
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	return n.SetID(model.ID)
}

func (r *GormTicketRepository) FindNotesByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Note, error) {
	var rows []models.NoteModel
	err := r.getDB(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make([]*ticket.Note, 0, len(rows))
	for i := range rows {
		n, err := r.mapper.NoteToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

func (r *GormTicketRepository) SaveAttachment(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *GormTicketRepository) FindAttachmentByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel
	err := r.getDB(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}
	return r.mapper.AttachmentToDomain(&model)
}

func (r *GormTicketRepository) FindAttachmentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var rows []models.AttachmentModel
	err := r.getDB(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.AttachmentToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map attachment: %w", err)
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func (r *GormTicketRepository) DeleteAttachment(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormTicketRepository) rowToDomain(row *ticketRow) (*ticket.WithAssignee, error) {
	t, err := r.mapper.ToDomain(&row.TicketModel)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket: %w", err)
	}
	return &ticket.WithAssignee{
		Ticket:        t,
		AssigneeName:  row.AssigneeName,
		AssigneeEmail: row.AssigneeEmail,
	}, nil
}

func buildTicketOrderClause(sortBy, sortOrder string) string {
	column, ok := allowedTicketSortFields[sortBy]
	if !ok {
		column = allowedTicketSortFields["created_at"]
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}

var _ ticket.Repository = (*GormTicketRepository)(nil)
