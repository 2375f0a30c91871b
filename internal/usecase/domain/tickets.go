// Package domain contains application Usecases orchestrating domain logic by ticket ownership.
package domain

import (
	"context"
	"fmt"

	"github.com/Mazium/TicketEase/internal/entities"
)

// BoardsForManager resolves the boards owned by a manager.
func (u *Usecase) BoardsForManager(ctx context.Context, managerID string) ([]entities.Board, error) {
	if managerID == "" {
		return nil, fmt.Errorf("%w: manager_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetBoardsByManager(ctx, managerID)
}

// ProjectsForBoards fans out one lookup per board, preserving board order.
func (u *Usecase) ProjectsForBoards(ctx context.Context, boards []entities.Board) ([]entities.Project, error) {
	projects := make([]entities.Project, 0)
	for _, b := range boards {
		found, err := u.repo.GetProjectsByBoard(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("projects for board %s: %w", b.ID, err)
		}
		projects = append(projects, found...)
	}
	return projects, nil
}

// TicketsForProjects fans out one lookup per project, preserving project order.
func (u *Usecase) TicketsForProjects(ctx context.Context, projects []entities.Project) ([]entities.Ticket, error) {
	tickets := make([]entities.Ticket, 0)
	for _, pr := range projects {
		found, err := u.repo.GetTicketsByProject(ctx, pr.ID)
		if err != nil {
			return nil, fmt.Errorf("tickets for project %s: %w", pr.ID, err)
		}
		tickets = append(tickets, found...)
	}
	return tickets, nil
}

// TicketsOwnedBy walks manager → boards → projects → tickets and returns all
// tickets transitively owned by the manager. A manager with no boards yields
// an empty result, never an error.
func (u *Usecase) TicketsOwnedBy(ctx context.Context, managerID string) ([]entities.Ticket, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	boards, err := u.BoardsForManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	projects, err := u.ProjectsForBoards(ctx, boards)
	if err != nil {
		return nil, err
	}

	return u.TicketsForProjects(ctx, projects)
}
