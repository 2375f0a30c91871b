// Package domain contains application Usecases orchestrating domain logic by manager account.
package domain

import (
	"context"
	"fmt"

	"github.com/Mazium/TicketEase/internal/entities"
	"github.com/Mazium/TicketEase/internal/pagination"
)

// Manager returns a manager account by id.
func (u *Usecase) Manager(ctx context.Context, managerID string) (*entities.Manager, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if managerID == "" {
		return nil, fmt.Errorf("%w: manager_id is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetManager(ctx, managerID)
}

// ListManagers returns one page of accounts ordered by company name, then email.
func (u *Usecase) ListManagers(ctx context.Context, pageSize, pageNumber int) (entities.Page[entities.Manager], error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	managers, err := u.repo.GetAllManagers(ctx)
	if err != nil {
		return entities.Page[entities.Manager]{}, fmt.Errorf("list managers: %w", err)
	}

	return pagination.Paginate(managers, pageSize, pageNumber,
		func(m entities.Manager) string { return m.CompanyName },
		func(m entities.Manager) string { return m.Email },
	)
}

// UpdateManager edits profile fields of an existing account.
func (u *Usecase) UpdateManager(ctx context.Context, m entities.Manager) (*entities.Manager, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if m.ID == "" {
		u.log.Errorw("failed to update manager: missing manager_id")
		return nil, fmt.Errorf("%w: manager_id is required", entities.ErrInvalidArgument)
	}
	if m.CompanyName == "" {
		return nil, fmt.Errorf("%w: company_name is required", entities.ErrInvalidArgument)
	}

	return u.repo.UpdateManager(ctx, m)
}

// SetManagerActive toggles the activation flag and returns the updated account.
func (u *Usecase) SetManagerActive(ctx context.Context, managerID string, isActive bool) (*entities.Manager, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if managerID == "" {
		return nil, fmt.Errorf("%w: manager_id is required", entities.ErrInvalidArgument)
	}

	return u.repo.SetManagerActive(ctx, managerID, isActive)
}
