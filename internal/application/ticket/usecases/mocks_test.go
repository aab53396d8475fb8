package usecases

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/j-kappa/ticketing-system/internal/domain/team"
	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                      func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                    func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                    func(ctx context.Context, id uint) error
	ExistsFunc                    func(ctx context.Context, id uint) (bool, error)
	FindByIDFunc                  func(ctx context.Context, id uint) (*ticket.WithAssignee, error)
	ListFunc                      func(ctx context.Context, filter ticket.Filter) ([]ticket.WithAssignee, error)
	TouchFunc                     func(ctx context.Context, id uint, at time.Time) error
	SaveNoteFunc                  func(ctx context.Context, n *ticket.Note) error
	FindNotesByTicketIDFunc       func(ctx context.Context, ticketID uint) ([]*ticket.Note, error)
	SaveAttachmentFunc            func(ctx context.Context, a *ticket.Attachment) error
	FindAttachmentByIDFunc        func(ctx context.Context, id uint) (*ticket.Attachment, error)
	FindAttachmentsByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	DeleteAttachmentFunc          func(ctx context.Context, id uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.WithAssignee, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]ticket.WithAssignee, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) Touch(ctx context.Context, id uint, at time.Time) error {
	if m.TouchFunc != nil {
		return m.TouchFunc(ctx, id, at)
	}
	return nil
}

func (m *mockTicketRepository) SaveNote(ctx context.Context, n *ticket.Note) error {
	if m.SaveNoteFunc != nil {
		return m.SaveNoteFunc(ctx, n)
	}
	return nil
}

func (m *mockTicketRepository) FindNotesByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Note, error) {
	if m.FindNotesByTicketIDFunc != nil {
		return m.FindNotesByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) SaveAttachment(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveAttachmentFunc != nil {
		return m.SaveAttachmentFunc(ctx, a)
	}
	return nil
}

func (m *mockTicketRepository) FindAttachmentByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	if m.FindAttachmentByIDFunc != nil {
		return m.FindAttachmentByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindAttachmentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.FindAttachmentsByTicketIDFunc != nil {
		return m.FindAttachmentsByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) DeleteAttachment(ctx context.Context, id uint) error {
	if m.DeleteAttachmentFunc != nil {
		return m.DeleteAttachmentFunc(ctx, id)
	}
	return nil
}

type mockTeamRepository struct {
	SaveFunc     func(ctx context.Context, m *team.Member) error
	UpdateFunc   func(ctx context.Context, m *team.Member) error
	DeleteFunc   func(ctx context.Context, id uint) error
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	FindByIDFunc func(ctx context.Context, id uint) (*team.WithOpenCount, error)
	ListFunc     func(ctx context.Context) ([]team.WithOpenCount, error)
}

func (m *mockTeamRepository) Save(ctx context.Context, member *team.Member) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, member)
	}
	return nil
}

func (m *mockTeamRepository) Update(ctx context.Context, member *team.Member) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, member)
	}
	return nil
}

func (m *mockTeamRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTeamRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockTeamRepository) FindByID(ctx context.Context, id uint) (*team.WithOpenCount, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTeamRepository) List(ctx context.Context) ([]team.WithOpenCount, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockStatsRepository struct {
	StatusCountsFunc        func(ctx context.Context) (ticket.StatusCounts, error)
	OpenPriorityCountsFunc  func(ctx context.Context) (ticket.PriorityCounts, error)
	OpenCategoryCountsFunc  func(ctx context.Context) (ticket.CategoryCounts, error)
	TeamWorkloadFunc        func(ctx context.Context) ([]ticket.MemberWorkload, error)
	RecentTicketsFunc       func(ctx context.Context, limit int) ([]ticket.RecentTicket, error)
	UnassignedOpenCountFunc func(ctx context.Context) (int64, error)
}

func (m *mockStatsRepository) StatusCounts(ctx context.Context) (ticket.StatusCounts, error) {
	if m.StatusCountsFunc != nil {
		return m.StatusCountsFunc(ctx)
	}
	return ticket.StatusCounts{}, nil
}

func (m *mockStatsRepository) OpenPriorityCounts(ctx context.Context) (ticket.PriorityCounts, error) {
	if m.OpenPriorityCountsFunc != nil {
		return m.OpenPriorityCountsFunc(ctx)
	}
	return ticket.PriorityCounts{}, nil
}

func (m *mockStatsRepository) OpenCategoryCounts(ctx context.Context) (ticket.CategoryCounts, error) {
	if m.OpenCategoryCountsFunc != nil {
		return m.OpenCategoryCountsFunc(ctx)
	}
	return ticket.CategoryCounts{}, nil
}

func (m *mockStatsRepository) TeamWorkload(ctx context.Context) ([]ticket.MemberWorkload, error) {
	if m.TeamWorkloadFunc != nil {
		return m.TeamWorkloadFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatsRepository) RecentTickets(ctx context.Context, limit int) ([]ticket.RecentTicket, error) {
	if m.RecentTicketsFunc != nil {
		return m.RecentTicketsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockStatsRepository) UnassignedOpenCount(ctx context.Context) (int64, error) {
	if m.UnassignedOpenCountFunc != nil {
		return m.UnassignedOpenCountFunc(ctx)
	}
	return 0, nil
}

// fakeTxRunner runs the callback directly; the mocks underneath ignore the
// transaction context anyway.
type fakeTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (f *fakeTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.RunFunc != nil {
		return f.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockFileStore struct {
	SaveFunc   func(name string, content io.Reader) (int64, error)
	OpenFunc   func(name string) (io.ReadCloser, error)
	RemoveFunc func(name string) error

	Saved   []string
	Removed []string
}

func (m *mockFileStore) Save(name string, content io.Reader) (int64, error) {
	m.Saved = append(m.Saved, name)
	if m.SaveFunc != nil {
		return m.SaveFunc(name, content)
	}
	return io.Copy(io.Discard, content)
}

func (m *mockFileStore) Open(name string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(name)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

func (m *mockFileStore) Remove(name string) error {
	m.Removed = append(m.Removed, name)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(name)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
