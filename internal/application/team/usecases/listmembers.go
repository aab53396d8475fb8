package usecases

import (
	"context"

	"github.com/j-kappa/ticketing-system/internal/application/team/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/team"
	apperrors "github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type ListMembersUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewListMembersUseCase(teamRepo team.Repository, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context) ([]dto.MemberDTO, error) {
	members, err := uc.teamRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list members", "error", err)
		return nil, apperrors.NewInternalError("failed to list team members")
	}

	result := make([]dto.MemberDTO, 0, len(members))
	for i := range members {
		result = append(result, dto.MemberToDTO(&members[i]))
	}
	return result, nil
}
