package domain

import (
	"context"

	"github.com/Mazium/TicketEase/internal/entities"
	"github.com/Mazium/TicketEase/internal/identity"
	"github.com/Mazium/TicketEase/internal/notifier"
	"github.com/Mazium/TicketEase/internal/repository"

	"github.com/stretchr/testify/mock"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateManager(ctx context.Context, mgr entities.Manager) (*entities.Manager, error) {
	args := m.Called(ctx, mgr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Manager), args.Error(1)
}

func (m *repoMock) DeleteManager(ctx context.Context, managerID string) error {
	args := m.Called(ctx, managerID)
	return args.Error(0)
}

func (m *repoMock) UpdateManager(ctx context.Context, mgr entities.Manager) (*entities.Manager, error) {
	args := m.Called(ctx, mgr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Manager), args.Error(1)
}

func (m *repoMock) SetManagerActive(ctx context.Context, managerID string, isActive bool) (*entities.Manager, error) {
	args := m.Called(ctx, managerID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Manager), args.Error(1)
}

func (m *repoMock) GetManager(ctx context.Context, managerID string) (*entities.Manager, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Manager), args.Error(1)
}

func (m *repoMock) GetManagersByEmail(ctx context.Context, email string) ([]entities.Manager, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Manager), args.Error(1)
}

func (m *repoMock) GetAllManagers(ctx context.Context) ([]entities.Manager, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Manager), args.Error(1)
}

func (m *repoMock) GetBoardsByManager(ctx context.Context, managerID string) ([]entities.Board, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Board), args.Error(1)
}

func (m *repoMock) GetProjectsByBoard(ctx context.Context, boardID string) ([]entities.Project, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) GetTicketsByProject(ctx context.Context, projectID string) ([]entities.Ticket, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Ticket), args.Error(1)
}

type registrarMock struct{ mock.Mock }

var _ identity.Registrar = (*registrarMock)(nil)

func (m *registrarMock) RegisterManagerIdentity(ctx context.Context, accountID, email, credential string) (identity.Result, error) {
	args := m.Called(ctx, accountID, email, credential)
	return args.Get(0).(identity.Result), args.Error(1)
}

type notifierMock struct{ mock.Mock }

var _ notifier.Notifier = (*notifierMock)(nil)

func (m *notifierMock) SendHTMLEmail(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

type staticGenerator struct{ credential string }

func (g staticGenerator) Generate(_, _ string) string { return g.credential }
