package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mazium/TicketEase/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	managerColumns = `id, email, company_name, company_description, address, phone_number, state, image_url, is_active, updated_at`

	insertManagerQuery = `
INSERT INTO managers(id, email, company_name, company_description, is_active, updated_at)
VALUES ($1, $2, $3, $4, $5, NOW())
RETURNING ` + managerColumns

	deleteManagerQuery = `DELETE FROM managers WHERE id=$1`

	updateManagerQuery = `
UPDATE managers
SET company_name=$2, company_description=$3, address=$4, phone_number=$5, state=$6, image_url=$7, updated_at=NOW()
WHERE id=$1
RETURNING ` + managerColumns

	setManagerActiveQuery = `
UPDATE managers
SET is_active=$2, updated_at=NOW()
WHERE id=$1
RETURNING ` + managerColumns

	selectManagerQuery         = `SELECT ` + managerColumns + ` FROM managers WHERE id=$1`
	selectManagersByEmailQuery = `SELECT ` + managerColumns + ` FROM managers WHERE email=$1`
	selectAllManagersQuery     = `SELECT ` + managerColumns + ` FROM managers`
)

func scanManager(row pgx.Row) (*entities.Manager, error) {
	var m entities.Manager
	err := row.Scan(
		&m.ID, &m.Email, &m.CompanyName, &m.CompanyDescription,
		&m.Address, &m.PhoneNumber, &m.State, &m.ImageURL,
		&m.IsActive, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateManager inserts a new manager account. The unique index on email is
// the backstop for the duplicate-check race window in the provisioning flow.
func (p *Postgres) CreateManager(ctx context.Context, m entities.Manager) (*entities.Manager, error) {
	created, err := scanManager(p.db.QueryRow(ctx, insertManagerQuery,
		m.ID, m.Email, m.CompanyName, m.CompanyDescription, m.IsActive))
	if err != nil {
		p.log.Errorw("failed to insert manager", "error", err, "manager_id", m.ID)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrManagerExists
		}
		return nil, fmt.Errorf("insert manager: %w", err)
	}

	p.log.Infow("manager created", "manager_id", created.ID)
	return created, nil
}

// DeleteManager removes a manager account by id.
func (p *Postgres) DeleteManager(ctx context.Context, managerID string) error {
	tag, err := p.db.Exec(ctx, deleteManagerQuery, managerID)
	if err != nil {
		p.log.Errorw("failed to delete manager", "error", err, "manager_id", managerID)
		return fmt.Errorf("delete manager: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrManagerNotFound
	}

	p.log.Infow("manager deleted", "manager_id", managerID)
	return nil
}

// UpdateManager persists editable profile fields and returns the updated record.
func (p *Postgres) UpdateManager(ctx context.Context, m entities.Manager) (*entities.Manager, error) {
	updated, err := scanManager(p.db.QueryRow(ctx, updateManagerQuery,
		m.ID, m.CompanyName, m.CompanyDescription, m.Address, m.PhoneNumber, m.State, m.ImageURL))
	if err != nil {
		p.log.Errorw("failed to update manager", "error", err, "manager_id", m.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrManagerNotFound
		}
		return nil, fmt.Errorf("update manager: %w", err)
	}
	return updated, nil
}

// SetManagerActive updates the activation flag and returns the updated record.
func (p *Postgres) SetManagerActive(ctx context.Context, managerID string, isActive bool) (*entities.Manager, error) {
	updated, err := scanManager(p.db.QueryRow(ctx, setManagerActiveQuery, managerID, isActive))
	if err != nil {
		p.log.Errorw("failed to set manager active", "error", err, "manager_id", managerID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrManagerNotFound
		}
		return nil, fmt.Errorf("set manager active: %w", err)
	}

	p.log.Infow("manager active flag updated", "manager_id", managerID, "is_active", isActive)
	return updated, nil
}

// GetManager fetches a manager account by id.
func (p *Postgres) GetManager(ctx context.Context, managerID string) (*entities.Manager, error) {
	m, err := scanManager(p.db.QueryRow(ctx, selectManagerQuery, managerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrManagerNotFound
		}
		return nil, fmt.Errorf("get manager: %w", err)
	}
	return m, nil
}

// GetManagersByEmail returns all accounts registered with the given business
// email, active or not. Callers treat any match as a conflict.
func (p *Postgres) GetManagersByEmail(ctx context.Context, email string) ([]entities.Manager, error) {
	return p.queryManagers(ctx, selectManagersByEmailQuery, email)
}

// GetAllManagers returns an unordered snapshot of all manager accounts.
func (p *Postgres) GetAllManagers(ctx context.Context) ([]entities.Manager, error) {
	return p.queryManagers(ctx, selectAllManagersQuery)
}

func (p *Postgres) queryManagers(ctx context.Context, query string, args ...any) ([]entities.Manager, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query managers: %w", err)
	}
	defer rows.Close()

	managers := make([]entities.Manager, 0)
	for rows.Next() {
		m, err := scanManager(rows)
		if err != nil {
			p.log.Errorw("failed to scan manager", "error", err)
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		managers = append(managers, *m)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate managers", "error", err)
		return nil, fmt.Errorf("iterate managers: %w", err)
	}

	return managers, nil
}
