// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrManagerExists signals a business email conflict.
	ErrManagerExists = errors.New("manager exists")
	// ErrManagerNotFound is returned when a manager account does not exist.
	ErrManagerNotFound = errors.New("manager not found")
	// ErrIdentityRegistration signals that the identity collaborator rejected
	// or failed the registration; the domain record has been rolled back.
	ErrIdentityRegistration = errors.New("identity registration failed")
)
