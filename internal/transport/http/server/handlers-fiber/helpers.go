package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/Mazium/TicketEase/internal/dto"
	"github.com/Mazium/TicketEase/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrManagerNotFound):
		status = http.StatusNotFound
		code = dto.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrManagerExists):
		status = http.StatusConflict
		code = dto.MANAGEREXISTS
		msg = "business email already registered"
	case errors.Is(err, entities.ErrIdentityRegistration):
		status = http.StatusBadGateway
		code = dto.IDENTITYFAILED
		msg = err.Error()
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	var resp dto.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}
