package usecase

import (
	"context"

	"github.com/Mazium/TicketEase/internal/entities"
)

// ManagerUsecaseInterface abstracts manager account operations for delivery layer.
type ManagerUsecaseInterface interface {
	CreateManager(ctx context.Context, req entities.ProvisioningRequest) (*entities.ProvisionResult, error)
	Manager(ctx context.Context, managerID string) (*entities.Manager, error)
	ListManagers(ctx context.Context, pageSize, pageNumber int) (entities.Page[entities.Manager], error)
	UpdateManager(ctx context.Context, m entities.Manager) (*entities.Manager, error)
	SetManagerActive(ctx context.Context, managerID string, isActive bool) (*entities.Manager, error)
}

// TicketUsecaseInterface abstracts ticket ownership traversal.
type TicketUsecaseInterface interface {
	TicketsOwnedBy(ctx context.Context, managerID string) ([]entities.Ticket, error)
}
