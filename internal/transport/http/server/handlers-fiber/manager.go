package handlers_fiber

import (
	"net/http"
	"strings"

	"github.com/Mazium/TicketEase/internal/dto"
	"github.com/Mazium/TicketEase/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize   = 20
	defaultPageNumber = 1
)

// PostManagers provisions a new manager account.
func (h *Handler) PostManagers(c *fiber.Ctx) error {
	var body dto.CreateManagerRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body"))
	}

	res, err := h.uc.CreateManager(c.Context(), mapper.FromDTOCreateManager(body))
	if err != nil {
		h.log.Errorw("failed to provision manager", "error", err.Error())
		return writeError(c, err)
	}

	resp := dto.CreateManagerResponse{Manager: mapper.ToDTOManager(*res.Manager)}
	if res.Warning != "" {
		resp.Warning = &res.Warning
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// GetManagers returns one page of accounts ordered by company name.
func (h *Handler) GetManagers(c *fiber.Ctx) error {
	pageSize := c.QueryInt("page_size", defaultPageSize)
	pageNumber := c.QueryInt("page", defaultPageNumber)

	page, err := h.uc.ListManagers(c.Context(), pageSize, pageNumber)
	if err != nil {
		h.log.Errorw("failed to list managers", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOManagerPage(page))
}

// GetManager returns a manager account by id.
func (h *Handler) GetManager(c *fiber.Ctx) error {
	m, err := h.uc.Manager(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOManager(*m))
}

// PutManager edits profile fields of an existing account.
func (h *Handler) PutManager(c *fiber.Ctx) error {
	var body dto.UpdateManagerRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body"))
	}

	updated, err := h.uc.UpdateManager(c.Context(), mapper.FromDTOUpdateManager(c.Params("id"), body))
	if err != nil {
		h.log.Errorw("failed to update manager", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOManager(*updated))
}

// PostManagersSetActive toggles the activation flag.
func (h *Handler) PostManagersSetActive(c *fiber.Ctx) error {
	var body dto.SetManagerActiveRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body"))
	}

	managerID := strings.TrimSpace(body.ManagerID)
	if managerID == "" {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "manager_id is required"))
	}

	updated, err := h.uc.SetManagerActive(c.Context(), managerID, body.IsActive)
	if err != nil {
		h.log.Errorw("failed to set is_active for manager", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOManager(*updated))
}

// GetManagerTickets returns tickets transitively owned by a manager.
func (h *Handler) GetManagerTickets(c *fiber.Ctx) error {
	managerID := c.Params("id")

	tickets, err := h.uc.TicketsOwnedBy(c.Context(), managerID)
	if err != nil {
		h.log.Errorw("failed to collect manager tickets", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.ManagerTicketsResponse{
		ManagerID: managerID,
		Tickets:   mapper.ToDTOTicketList(tickets),
	})
}
