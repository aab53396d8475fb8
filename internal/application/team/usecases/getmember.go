package usecases

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/application/team/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/team"
	apperrors "github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type GetMemberQuery struct {
	MemberID uint
}

type GetMemberUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewGetMemberUseCase(teamRepo team.Repository, logger logger.Interface) *GetMemberUseCase {
	return &GetMemberUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *GetMemberUseCase) Execute(ctx context.Context, query GetMemberQuery) (*dto.MemberDTO, error) {
	member, err := uc.teamRepo.FindByID(ctx, query.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("team member not found")
		}
		uc.logger.Errorw("failed to load member", "member_id", query.MemberID, "error", err)
		return nil, apperrors.NewInternalError("failed to get team member")
	}

	result := dto.MemberToDTO(member)
	return &result, nil
}
