package usecases

import (
	"context"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

const recentTicketLimit = 5

type GetDashboardStatsUseCase struct {
	statsRepo ticket.StatsRepository
	logger    logger.Interface
}

func NewGetDashboardStatsUseCase(statsRepo ticket.StatsRepository, logger logger.Interface) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Execute assembles the dashboard from six independent reads. The queries do
// not share a transaction; slight skew between sections is acceptable.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	status, err := uc.statsRepo.StatusCounts(ctx)
	if err != nil {
		return nil, uc.fail("status counts", err)
	}
	priority, err := uc.statsRepo.OpenPriorityCounts(ctx)
	if err != nil {
		return nil, uc.fail("priority counts", err)
	}
	category, err := uc.statsRepo.OpenCategoryCounts(ctx)
	if err != nil {
		return nil, uc.fail("category counts", err)
	}
	workload, err := uc.statsRepo.TeamWorkload(ctx)
	if err != nil {
		return nil, uc.fail("team workload", err)
	}
	recent, err := uc.statsRepo.RecentTickets(ctx, recentTicketLimit)
	if err != nil {
		return nil, uc.fail("recent tickets", err)
	}
	unassigned, err := uc.statsRepo.UnassignedOpenCount(ctx)
	if err != nil {
		return nil, uc.fail("unassigned count", err)
	}

	stats := &dto.DashboardStatsDTO{
		Status: dto.StatusCountsDTO{
			Total:      status.Total,
			New:        status.New,
			InProgress: status.InProgress,
			Resolved:   status.Resolved,
			Closed:     status.Closed,
		},
		Priority: dto.PriorityCountsDTO{
			Urgent: priority.Urgent,
			High:   priority.High,
			Medium: priority.Medium,
			Low:    priority.Low,
		},
		Category: dto.CategoryCountsDTO{
			Hardware: category.Hardware,
			Software: category.Software,
			Network:  category.Network,
			Access:   category.Access,
		},
		TeamWorkload:    make([]dto.MemberWorkloadDTO, 0, len(workload)),
		RecentTickets:   make([]dto.RecentTicketDTO, 0, len(recent)),
		UnassignedCount: unassigned,
	}

	for _, w := range workload {
		stats.TeamWorkload = append(stats.TeamWorkload, dto.MemberWorkloadDTO{
			ID:              w.MemberID,
			Name:            w.Name,
			AssignedTickets: w.AssignedTickets,
		})
	}
	for _, r := range recent {
		stats.RecentTickets = append(stats.RecentTickets, dto.RecentTicketDTO{
			ID:           r.ID,
			Title:        r.Title,
			Status:       r.Status.String(),
			Priority:     r.Priority.String(),
			Category:     r.Category.String(),
			AssigneeName: r.AssigneeName,
			CreatedAt:    dto.FormatTime(r.CreatedAt),
		})
	}
	return stats, nil
}

func (uc *GetDashboardStatsUseCase) fail(section string, err error) error {
	uc.logger.Errorw("failed to compute dashboard stats", "section", section, "error", err)
	return errors.NewInternalError("failed to compute stats")
}
