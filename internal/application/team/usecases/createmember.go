package usecases

import (
	"context"
	"errors"

	"github.com/j-kappa/ticketing-system/internal/application/team/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/team"
	apperrors "github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type CreateMemberCommand struct {
	Name  string
	Email string
}

type CreateMemberUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewCreateMemberUseCase(teamRepo team.Repository, logger logger.Interface) *CreateMemberUseCase {
	return &CreateMemberUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *CreateMemberUseCase) Execute(ctx context.Context, cmd CreateMemberCommand) (*dto.MemberDTO, error) {
	uc.logger.Infow("executing create member use case", "email", cmd.Email)

	member, err := team.NewMember(cmd.Name, cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.teamRepo.Save(ctx, member); err != nil {
		var dup *team.ErrDuplicateEmail
		if errors.As(err, &dup) {
			return nil, apperrors.NewConflictError("email already exists")
		}
		uc.logger.Errorw("failed to save member", "error", err)
		return nil, apperrors.NewInternalError("failed to create team member")
	}

	uc.logger.Infow("member created", "member_id", member.ID())
	result := dto.MemberToDTO(&team.WithOpenCount{Member: member})
	return &result, nil
}
