package mappers

import (
	"time"

	"github.com/j-kappa/ticketing-system/internal/domain/team"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/persistence/models"
)

type TeamMapper struct{}

func NewTeamMapper() TeamMapper {
	return TeamMapper{}
}

func (m TeamMapper) ToModel(member *team.Member) *models.TeamMemberModel {
	return &models.TeamMemberModel{
		ID:        member.ID(),
		Name:      member.Name(),
		Email:     member.Email(),
		CreatedAt: member.CreatedAt().UnixMilli(),
	}
}

func (m TeamMapper) ToDomain(model *models.TeamMemberModel) (*team.Member, error) {
	return team.ReconstructMember(
		model.ID,
		model.Name,
		model.Email,
		time.UnixMilli(model.CreatedAt),
	)
}
