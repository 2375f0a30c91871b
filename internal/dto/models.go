// Package dto defines HTTP request and response models.
package dto

import "time"

// ErrorCode enumerates machine-readable error codes in error responses.
type ErrorCode string

const (
	// NOTFOUND marks a missing resource.
	NOTFOUND ErrorCode = "NOT_FOUND"
	// INVALIDARGUMENT marks failed request validation.
	INVALIDARGUMENT ErrorCode = "INVALID_ARGUMENT"
	// MANAGEREXISTS marks a business email conflict.
	MANAGEREXISTS ErrorCode = "MANAGER_EXISTS"
	// IDENTITYFAILED marks a rolled-back provisioning run.
	IDENTITYFAILED ErrorCode = "IDENTITY_FAILED"
	// INTERNAL marks any other server-side failure.
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// Manager is the transport representation of a manager account.
type Manager struct {
	ManagerID          string     `json:"manager_id"`
	Email              string     `json:"email"`
	CompanyName        string     `json:"company_name"`
	CompanyDescription string     `json:"company_description"`
	Address            string     `json:"address"`
	PhoneNumber        string     `json:"phone_number"`
	State              string     `json:"state"`
	ImageURL           string     `json:"image_url"`
	IsActive           bool       `json:"is_active"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// CreateManagerRequest is the provisioning input.
type CreateManagerRequest struct {
	Email              string `json:"email"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
}

// CreateManagerResponse carries the created account; Warning is set when the
// welcome notification could not be delivered.
type CreateManagerResponse struct {
	Manager Manager `json:"manager"`
	Warning *string `json:"warning,omitempty"`
}

// UpdateManagerRequest carries editable profile fields.
type UpdateManagerRequest struct {
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	Address            string `json:"address"`
	PhoneNumber        string `json:"phone_number"`
	State              string `json:"state"`
	ImageURL           string `json:"image_url"`
}

// SetManagerActiveRequest toggles the activation flag.
type SetManagerActiveRequest struct {
	ManagerID string `json:"manager_id"`
	IsActive  bool   `json:"is_active"`
}

// ManagerPage is one page of the manager listing.
type ManagerPage struct {
	Managers       []Manager `json:"managers"`
	PageNumber     int       `json:"page_number"`
	PageSize       int       `json:"page_size"`
	TotalCount     int       `json:"total_count"`
	TotalPageCount int       `json:"total_page_count"`
}

// Ticket is the transport representation of a ticket.
type Ticket struct {
	TicketID    string     `json:"ticket_id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// ManagerTicketsResponse lists all tickets transitively owned by a manager.
type ManagerTicketsResponse struct {
	ManagerID string   `json:"manager_id"`
	Tickets   []Ticket `json:"tickets"`
}
