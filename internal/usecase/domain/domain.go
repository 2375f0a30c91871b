// Package domain contains application Usecases orchestrating domain logic.
package domain

import (
	"context"
	"time"

	"github.com/Mazium/TicketEase/internal/credentials"
	"github.com/Mazium/TicketEase/internal/identity"
	"github.com/Mazium/TicketEase/internal/notifier"
	"github.com/Mazium/TicketEase/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx       context.Context
	log       *zap.SugaredLogger
	repo      repository.Repository
	registrar identity.Registrar
	notifier  notifier.Notifier
	creds     credentials.Generator
	timeout   time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	registrar identity.Registrar,
	notif notifier.Notifier,
	creds credentials.Generator,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:       ctx,
		log:       log,
		repo:      repo,
		registrar: registrar,
		notifier:  notif,
		creds:     creds,
		timeout:   timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
