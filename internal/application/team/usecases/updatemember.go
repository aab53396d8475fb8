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

// UpdateMemberCommand carries a partial update; nil fields keep the stored
// value.
type UpdateMemberCommand struct {
	MemberID uint
	Name     *string
	Email    *string
}

type UpdateMemberUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewUpdateMemberUseCase(teamRepo team.Repository, logger logger.Interface) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *UpdateMemberUseCase) Execute(ctx context.Context, cmd UpdateMemberCommand) (*dto.MemberDTO, error) {
	uc.logger.Infow("executing update member use case", "member_id", cmd.MemberID)

	existing, err := uc.teamRepo.FindByID(ctx, cmd.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("team member not found")
		}
		uc.logger.Errorw("failed to load member", "error", err)
		return nil, apperrors.NewInternalError("failed to update team member")
	}

	member := existing.Member
	if cmd.Name != nil {
		if err := member.Rename(*cmd.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Email != nil {
		if err := member.ChangeEmail(*cmd.Email); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.teamRepo.Update(ctx, member); err != nil {
		var dup *team.ErrDuplicateEmail
		if errors.As(err, &dup) {
			return nil, apperrors.NewConflictError("email already exists")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("team member not found")
		}
		uc.logger.Errorw("failed to update member", "error", err)
		return nil, apperrors.NewInternalError("failed to update team member")
	}

	updated, err := uc.teamRepo.FindByID(ctx, cmd.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to reload member", "error", err)
		return nil, apperrors.NewInternalError("failed to update team member")
	}

	uc.logger.Infow("member updated", "member_id", cmd.MemberID)
	result := dto.MemberToDTO(updated)
	return &result, nil
}
