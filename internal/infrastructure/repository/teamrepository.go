package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/domain/team"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/persistence/mappers"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/persistence/models"
	"github.com/j-kappa/ticketing-system/internal/shared/db"
)

type memberRow struct {
	models.TeamMemberModel
	OpenTickets int64
}

type GormTeamRepository struct {
	db     *gorm.DB
	mapper mappers.TeamMapper
}

func NewGormTeamRepository(gdb *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{
		db:     gdb,
		mapper: mappers.NewTeamMapper(),
	}
}

func (r *GormTeamRepository) getDB(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

func (r *GormTeamRepository) Save(ctx context.Context, m *team.Member) error {
	model := r.mapper.ToModel(m)
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return translateMemberError(err, m.Email())
	}
	return m.SetID(model.ID)
}

func (r *GormTeamRepository) Update(ctx context.Context, m *team.Member) error {
	result := r.getDB(ctx).Model(&models.TeamMemberModel{}).
		Where("id = ?", m.ID()).
		Select("name", "email").
		Updates(r.mapper.ToModel(m))
	if result.Error != nil {
		return translateMemberError(result.Error, m.Email())
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormTeamRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.TeamMemberModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete team member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormTeamRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.TeamMemberModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check team member existence: %w", err)
	}
	return count > 0, nil
}

func (r *GormTeamRepository) FindByID(ctx context.Context, id uint) (*team.WithOpenCount, error) {
	var row memberRow
	err := r.memberQuery(ctx).Where("team_members.id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}
	return r.rowToDomain(&row)
}

func (r *GormTeamRepository) List(ctx context.Context) ([]team.WithOpenCount, error) {
	var rows []memberRow
	err := r.memberQuery(ctx).Order("team_members.name ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	result := make([]team.WithOpenCount, 0, len(rows))
	for i := range rows {
		wc, err := r.rowToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *wc)
	}
	return result, nil
}

func (r *GormTeamRepository) memberQuery(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).Model(&models.TeamMemberModel{}).
		Select("team_members.*, COUNT(tickets.id) AS open_tickets").
		Joins("LEFT JOIN tickets ON tickets.assignee_id = team_members.id AND tickets.status != ?", "closed").
		Group("team_members.id")
}

func (r *GormTeamRepository) rowToDomain(row *memberRow) (*team.WithOpenCount, error) {
	m, err := r.mapper.ToDomain(&row.TeamMemberModel)
	if err != nil {
		return nil, fmt.Errorf("failed to map team member: %w", err)
	}
	return &team.WithOpenCount{
		Member:      m,
		OpenTickets: row.OpenTickets,
	}, nil
}

// translateMemberError surfaces a unique-constraint hit on the email column
// as a domain error. SQLite reports it only through the error text.
func translateMemberError(err error, email string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return &team.ErrDuplicateEmail{Email: email}
	}
	return fmt.Errorf("failed to persist team member: %w", err)
}

var _ team.Repository = (*GormTeamRepository)(nil)
