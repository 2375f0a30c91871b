package postgres

import (
	"context"
	"fmt"

	"github.com/Mazium/TicketEase/internal/entities"
)

const (
	boardsByManagerQuery = `SELECT id, manager_id, name
FROM boards
WHERE manager_id=$1
ORDER BY created_at, id`

	projectsByBoardQuery = `SELECT id, board_id, name
FROM projects
WHERE board_id=$1
ORDER BY created_at, id`

	ticketsByProjectQuery = `SELECT id, project_id, title, description, status, created_at
FROM tickets
WHERE project_id=$1
ORDER BY created_at, id`
)

// GetBoardsByManager returns boards owned by the manager in creation order.
func (p *Postgres) GetBoardsByManager(ctx context.Context, managerID string) ([]entities.Board, error) {
	rows, err := p.db.Query(ctx, boardsByManagerQuery, managerID)
	if err != nil {
		return nil, fmt.Errorf("get boards: %w", err)
	}
	defer rows.Close()

	boards := make([]entities.Board, 0)
	for rows.Next() {
		var b entities.Board
		if err := rows.Scan(&b.ID, &b.ManagerID, &b.Name); err != nil {
			p.log.Errorw("failed to scan board", "error", err, "manager_id", managerID)
			return nil, fmt.Errorf("scan board: %w", err)
		}
		boards = append(boards, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate boards: %w", err)
	}

	return boards, nil
}

// GetProjectsByBoard returns projects belonging to the board in creation order.
func (p *Postgres) GetProjectsByBoard(ctx context.Context, boardID string) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, projectsByBoardQuery, boardID)
	if err != nil {
		return nil, fmt.Errorf("get projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var pr entities.Project
		if err := rows.Scan(&pr.ID, &pr.BoardID, &pr.Name); err != nil {
			p.log.Errorw("failed to scan project", "error", err, "board_id", boardID)
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, pr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// GetTicketsByProject returns tickets belonging to the project in creation order.
func (p *Postgres) GetTicketsByProject(ctx context.Context, projectID string) ([]entities.Ticket, error) {
	rows, err := p.db.Query(ctx, ticketsByProjectQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("get tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]entities.Ticket, 0)
	for rows.Next() {
		var t entities.Ticket
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.CreatedAt); err != nil {
			p.log.Errorw("failed to scan ticket", "error", err, "project_id", projectID)
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}

	return tickets, nil
}
