package handlers

import (
	"errors"
	"log"

	"wallzy/internal/services/mailer"
	"wallzy/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ResultsHandler struct {
	mailer mailer.Service
}

func NewResultsHandler(m mailer.Service) *ResultsHandler {
	return &ResultsHandler{mailer: m}
}

// SendResults emails a previously generated strategy to the user.
func (h *ResultsHandler) SendResults(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Strategy *struct {
			Apply       []mailer.CardAction `json:"apply"`
			Upgrade     []mailer.CardAction `json:"upgrade"`
			Keep        []mailer.CardAction `json:"keep"`
			Remove      []mailer.CardAction `json:"remove"`
			Improvement float64             `json:"improvement"`
		} `json:"strategy"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Strategy == nil {
		return utils.BadRequest(c, "Missing strategy data")
	}

	id, err := h.mailer.SendResults(c.Context(), mailer.ResultsEmail{
		Email:       input.Email,
		Apply:       input.Strategy.Apply,
		Upgrade:     input.Strategy.Upgrade,
		Keep:        input.Strategy.Keep,
		Remove:      input.Strategy.Remove,
		Improvement: input.Strategy.Improvement,
	})
	if err != nil {
		if errors.Is(err, mailer.ErrInvalidEmail) {
			return utils.BadRequest(c, "Invalid email address")
		}
		log.Printf("Results email failed: %v", err)
		return utils.InternalError(c, "Failed to send email")
	}

	return utils.Success(c, fiber.Map{
		"success": true,
		"id":      id,
	})
}
