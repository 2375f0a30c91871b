package usecase

import (
	"context"
	"time"

	"github.com/Mazium/TicketEase/internal/credentials"
	"github.com/Mazium/TicketEase/internal/identity"
	"github.com/Mazium/TicketEase/internal/notifier"
	"github.com/Mazium/TicketEase/internal/repository"
	"github.com/Mazium/TicketEase/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ManagerUsecaseInterface
	TicketUsecaseInterface
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
) InterfaceUsecase {
	return domain.New(log, ctx, repo, registrar, notif, creds, timeout)
}
