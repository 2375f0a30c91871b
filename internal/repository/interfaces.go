// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/Mazium/TicketEase/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ManagerInterface exposes manager account storage operations.
type ManagerInterface interface {
	CreateManager(ctx context.Context, m entities.Manager) (*entities.Manager, error)
	DeleteManager(ctx context.Context, managerID string) error
	UpdateManager(ctx context.Context, m entities.Manager) (*entities.Manager, error)
	SetManagerActive(ctx context.Context, managerID string, isActive bool) (*entities.Manager, error)
	GetManager(ctx context.Context, managerID string) (*entities.Manager, error)
	GetManagersByEmail(ctx context.Context, email string) ([]entities.Manager, error)
	GetAllManagers(ctx context.Context) ([]entities.Manager, error)
}

// BoardInterface exposes board lookups by owning manager.
type BoardInterface interface {
	GetBoardsByManager(ctx context.Context, managerID string) ([]entities.Board, error)
}

// ProjectInterface exposes project lookups by owning board.
type ProjectInterface interface {
	GetProjectsByBoard(ctx context.Context, boardID string) ([]entities.Project, error)
}

// TicketInterface exposes ticket lookups by owning project.
type TicketInterface interface {
	GetTicketsByProject(ctx context.Context, projectID string) ([]entities.Ticket, error)
}
