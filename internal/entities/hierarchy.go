// Package entities contains core business entities.
package entities

import "time"

// TicketStatus enumerates ticket lifecycle states.
type TicketStatus string

const (
	// TicketOpen marks a ticket as open.
	TicketOpen TicketStatus = "OPEN"
	// TicketInProgress marks a ticket as being worked on.
	TicketInProgress TicketStatus = "IN_PROGRESS"
	// TicketClosed marks a ticket as closed.
	TicketClosed TicketStatus = "CLOSED"
)

// Board is a read-only projection of a board owned by a manager.
type Board struct {
	ID        string
	ManagerID string
	Name      string
}

// Project is a read-only projection of a project belonging to a board.
type Project struct {
	ID      string
	BoardID string
	Name    string
}

// Ticket is a read-only projection of a ticket belonging to a project.
type Ticket struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Status      TicketStatus
	CreatedAt   *time.Time
}
