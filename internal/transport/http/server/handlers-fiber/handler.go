// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/Mazium/TicketEase/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the manager API over Fiber using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register binds all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/managers", h.PostManagers)
	app.Get("/managers", h.GetManagers)
	app.Get("/managers/:id", h.GetManager)
	app.Put("/managers/:id", h.PutManager)
	app.Post("/managers/set-active", h.PostManagersSetActive)
	app.Get("/managers/:id/tickets", h.GetManagerTickets)
}
