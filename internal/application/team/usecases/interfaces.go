package usecases

import (
	"context"

	"github.com/j-kappa/ticketing-system/internal/application/team/dto"
)

type CreateMemberExecutor interface {
	Execute(ctx context.Context, cmd CreateMemberCommand) (*dto.MemberDTO, error)
}

type UpdateMemberExecutor interface {
	Execute(ctx context.Context, cmd UpdateMemberCommand) (*dto.MemberDTO, error)
}

type DeleteMemberExecutor interface {
	Execute(ctx context.Context, cmd DeleteMemberCommand) error
}

type GetMemberExecutor interface {
	Execute(ctx context.Context, query GetMemberQuery) (*dto.MemberDTO, error)
}

type ListMembersExecutor interface {
	Execute(ctx context.Context) ([]dto.MemberDTO, error)
}
