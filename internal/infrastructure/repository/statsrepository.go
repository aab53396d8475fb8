package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
)

// GormStatsRepository runs the dashboard aggregates. Every count uses
// COALESCE so an empty table scans into zeros instead of NULLs.
type GormStatsRepository struct {
	db *gorm.DB
}

func NewGormStatsRepository(gdb *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: gdb}
}

func (r *GormStatsRepository) StatusCounts(ctx context.Context) (ticket.StatusCounts, error) {
	var counts ticket.StatusCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'new' THEN 1 ELSE 0 END), 0) AS "new",
			COALESCE(SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END), 0) AS in_progress,
			COALESCE(SUM(CASE WHEN status = 'resolved' THEN 1 ELSE 0 END), 0) AS resolved,
			COALESCE(SUM(CASE WHEN status = 'closed' THEN 1 ELSE 0 END), 0) AS closed
		FROM tickets
	`).Scan(&counts).Error
	if err != nil {
		return ticket.StatusCounts{}, fmt.Errorf("failed to count ticket statuses: %w", err)
	}
	return counts, nil
}

func (r *GormStatsRepository) OpenPriorityCounts(ctx context.Context) (ticket.PriorityCounts, error) {
	var counts ticket.PriorityCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN priority = 'urgent' THEN 1 ELSE 0 END), 0) AS urgent,
			COALESCE(SUM(CASE WHEN priority = 'high' THEN 1 ELSE 0 END), 0) AS high,
			COALESCE(SUM(CASE WHEN priority = 'medium' THEN 1 ELSE 0 END), 0) AS medium,
			COALESCE(SUM(CASE WHEN priority = 'low' THEN 1 ELSE 0 END), 0) AS low
		FROM tickets
		WHERE status != 'closed'
	`).Scan(&counts).Error
	if err != nil {
		return ticket.PriorityCounts{}, fmt.Errorf("failed to count ticket priorities: %w", err)
	}
	return counts, nil
}

func (r *GormStatsRepository) OpenCategoryCounts(ctx context.Context) (ticket.CategoryCounts, error) {
	var counts ticket.CategoryCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN category = 'hardware' THEN 1 ELSE 0 END), 0) AS hardware,
			COALESCE(SUM(CASE WHEN category = 'software' THEN 1 ELSE 0 END), 0) AS software,
			COALESCE(SUM(CASE WHEN category = 'network' THEN 1 ELSE 0 END), 0) AS network,
			COALESCE(SUM(CASE WHEN category = 'access' THEN 1 ELSE 0 END), 0) AS access
		FROM tickets
		WHERE status != 'closed'
	`).Scan(&counts).Error
	if err != nil {
		return ticket.CategoryCounts{}, fmt.Errorf("failed to count ticket categories: %w", err)
	}
	return counts, nil
}

func (r *GormStatsRepository) TeamWorkload(ctx context.Context) ([]ticket.MemberWorkload, error) {
	var rows []struct {
		MemberID        uint
		Name            string
		AssignedTickets int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			tm.id AS member_id,
			tm.name AS name,
			COUNT(t.id) AS assigned_tickets
		FROM team_members tm
		LEFT JOIN tickets t ON t.assignee_id = tm.id AND t.status != 'closed'
		GROUP BY tm.id, tm.name
		ORDER BY assigned_tickets DESC, tm.name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute team workload: %w", err)
	}

	workload := make([]ticket.MemberWorkload, 0, len(rows))
	for _, row := range rows {
		workload = append(workload, ticket.MemberWorkload{
			MemberID:        row.MemberID,
			Name:            row.Name,
			AssignedTickets: row.AssignedTickets,
		})
	}
	return workload, nil
}

func (r *GormStatsRepository) RecentTickets(ctx context.Context, limit int) ([]ticket.RecentTicket, error) {
	var rows []struct {
		ID           uint
		Title        string
		Status       string
		Priority     string
		Category     string
		AssigneeName *string
		CreatedAt    int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			t.id, t.title, t.status, t.priority, t.category,
			tm.name AS assignee_name,
			t.created_at
		FROM tickets t
		LEFT JOIN team_members tm ON tm.id = t.assignee_id
		ORDER BY t.created_at DESC
		LIMIT ?
	`, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent tickets: %w", err)
	}

	recent := make([]ticket.RecentTicket, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, ticket.RecentTicket{
			ID:           row.ID,
			Title:        row.Title,
			Status:       vo.Status(row.Status),
			Priority:     vo.Priority(row.Priority),
			Category:     vo.Category(row.Category),
			AssigneeName: row.AssigneeName,
			CreatedAt:    time.UnixMilli(row.CreatedAt),
		})
	}
	return recent, nil
}

func (r *GormStatsRepository) UnassignedOpenCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM tickets
		WHERE assignee_id IS NULL AND status != 'closed'
	`).Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unassigned tickets: %w", err)
	}
	return count, nil
}

var _ ticket.StatsRepository = (*GormStatsRepository)(nil)
