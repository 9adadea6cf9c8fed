package handlers

import (
	"errors"
	"log"

	"wallzy/internal/services/waitlist"
	"wallzy/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WaitlistHandler struct {
	service waitlist.Service
}

func NewWaitlistHandler(service waitlist.Service) *WaitlistHandler {
	return &WaitlistHandler{service: service}
}

// Join adds an email to the waitlist.
func (h *WaitlistHandler) Join(c *fiber.Ctx) error {
	var input struct {
		Email  string `json:"email"`
		Source string `json:"source"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	entry, err := h.service.Join(input.Email, input.Source)
	if err != nil {
		switch {
		case errors.Is(err, waitlist.ErrInvalidEmail):
			return utils.BadRequest(c, "Invalid email address")
		case errors.Is(err, waitlist.ErrAlreadyJoined):
			// Duplicates are not an error to the visitor.
			return utils.Success(c, fiber.Map{
				"message":   "Looks like you're already on the list.",
				"duplicate": true,
			})
		default:
			log.Printf("Waitlist join failed: %v", err)
			return utils.InternalError(c, "Failed to join waitlist")
		}
	}

	return utils.Created(c, fiber.Map{
		"entry_id": entry.EntryID,
		"email":    entry.Email,
	})
}

// List returns waitlist entries with pagination (admin).
func (h *WaitlistHandler) List(c *fiber.Ctx) error {
	pagination := utils.GetPagination(c, 1, 50)

	entries, total, err := h.service.List(pagination.Offset, pagination.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to list waitlist entries")
	}

	pagination.SetTotal(total)
	return utils.Success(c, utils.NewPaginatedResponse(entries, pagination))
}

// ExportCSV streams the full waitlist as a CSV download (admin).
func (h *WaitlistHandler) ExportCSV(c *fiber.Ctx) error {
	csv, err := h.service.ExportCSV()
	if err != nil {
		log.Printf("Waitlist export failed: %v", err)
		return utils.InternalError(c, "Failed to export waitlist")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=waitlist.csv`)
	return c.Send(csv)
}
