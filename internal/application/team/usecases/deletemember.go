package usecases

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/domain/team"
	apperrors "github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type DeleteMemberCommand struct {
	MemberID uint
}

type DeleteMemberUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewDeleteMemberUseCase(teamRepo team.Repository, logger logger.Interface) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

// Execute deletes the member row. Tickets that reference the member are
// unassigned by the store's SET NULL foreign key, not by application code.
func (uc *DeleteMemberUseCase) Execute(ctx context.Context, cmd DeleteMemberCommand) error {
	uc.logger.Infow("executing delete member use case", "member_id", cmd.MemberID)

	if err := uc.teamRepo.Delete(ctx, cmd.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("team member not found")
		}
		uc.logger.Errorw("failed to delete member", "member_id", cmd.MemberID, "error", err)
		return apperrors.NewInternalError("failed to delete team member")
	}

	uc.logger.Infow("member deleted", "member_id", cmd.MemberID)
	return nil
}
