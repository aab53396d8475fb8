package usecases

import (
	"context"

	"github.com/j-kappa/ticketing-system/internal/domain/team"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

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
