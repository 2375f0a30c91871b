// Package identity abstracts the authentication subsystem collaborator.
package identity

import "context"

// Result is the identity collaborator's answer to a registration request.
type Result struct {
	Succeeded bool
	Message   string
}

// Registrar registers authentication principals for manager accounts.
type Registrar interface {
	RegisterManagerIdentity(ctx context.Context, accountID, email, credential string) (Result, error)
}
