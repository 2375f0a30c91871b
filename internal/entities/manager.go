// Package entities contains core business entities.
package entities

import "time"

// Manager is a domain representation of a tenant administrator account.
type Manager struct {
	ID                 string
	Email              string
	CompanyName        string
	CompanyDescription string
	Address            string
	PhoneNumber        string
	State              string
	ImageURL           string
	IsActive           bool
	UpdatedAt          *time.Time
}

// ProvisioningRequest is the transient input consumed by the provisioning
// workflow. It is never persisted.
type ProvisioningRequest struct {
	Email              string
	CompanyName        string
	CompanyDescription string
}

// ProvisionResult is the outcome of a provisioning run. Warning is non-empty
// when the account and identity were created but the welcome notification
// could not be delivered.
type ProvisionResult struct {
	Manager *Manager
	Warning string
}
