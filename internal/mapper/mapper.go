// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/Mazium/TicketEase/internal/dto"
	"github.com/Mazium/TicketEase/internal/entities"
)

// FromDTOCreateManager builds a provisioning request from the transport body.
func FromDTOCreateManager(src dto.CreateManagerRequest) entities.ProvisioningRequest {
	return entities.ProvisioningRequest{
		Email:              src.Email,
		CompanyName:        src.CompanyName,
		CompanyDescription: src.CompanyDescription,
	}
}

// FromDTOUpdateManager builds a manager entity carrying editable fields.
func FromDTOUpdateManager(managerID string, src dto.UpdateManagerRequest) entities.Manager {
	return entities.Manager{
		ID:                 managerID,
		CompanyName:        src.CompanyName,
		CompanyDescription: src.CompanyDescription,
		Address:            src.Address,
		PhoneNumber:        src.PhoneNumber,
		State:              src.State,
		ImageURL:           src.ImageURL,
	}
}

// ToDTOManager maps entities.Manager to transport model.
func ToDTOManager(m entities.Manager) dto.Manager {
	return dto.Manager{
		ManagerID:          m.ID,
		Email:              m.Email,
		CompanyName:        m.CompanyName,
		CompanyDescription: m.CompanyDescription,
		Address:            m.Address,
		PhoneNumber:        m.PhoneNumber,
		State:              m.State,
		ImageURL:           m.ImageURL,
		IsActive:           m.IsActive,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ToDTOManagerPage maps a page of managers to transport model.
func ToDTOManagerPage(page entities.Page[entities.Manager]) dto.ManagerPage {
	managers := make([]dto.Manager, 0, len(page.Data))
	for _, m := range page.Data {
		managers = append(managers, ToDTOManager(m))
	}

	return dto.ManagerPage{
		Managers:       managers,
		PageNumber:     page.PageNumber,
		PageSize:       page.PageSize,
		TotalCount:     page.TotalCount,
		TotalPageCount: page.TotalPageCount,
	}
}

// ToDTOTicket maps entities.Ticket to transport model.
func ToDTOTicket(t entities.Ticket) dto.Ticket {
	return dto.Ticket{
		TicketID:    t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}

// ToDTOTicketList maps a slice of entities.Ticket to transport slice.
func ToDTOTicketList(list []entities.Ticket) []dto.Ticket {
	res := make([]dto.Ticket, 0, len(list))
	for _, t := range list {
		res = append(res, ToDTOTicket(t))
	}
	return res
}
