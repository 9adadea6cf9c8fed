package handlers

import (
	"errors"
	"log"

	"wallzy/internal/services/portfolio"
	"wallzy/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type PortfolioHandler struct {
	service portfolio.Service
}

func NewPortfolioHandler(service portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// BuildStrategy generates the full portfolio recommendation for the
// submitted wallet, profile and spending.
func (h *PortfolioHandler) BuildStrategy(c *fiber.Ctx) error {
	var req portfolio.StrategyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	strategy, err := h.service.BuildStrategy(req)
	if err != nil {
		switch {
		case errors.Is(err, portfolio.ErrUnknownSet),
			errors.Is(err, portfolio.ErrInvalidSpending),
			errors.Is(err, portfolio.ErrInvalidProfile):
			return utils.BadRequest(c, err.Error())
		default:
			log.Printf("Strategy generation failed: %v", err)
			return utils.InternalError(c, "Failed to generate strategy")
		}
	}

	return utils.Success(c, strategy)
}

// ListFollowUps returns the questions the submitted wallet raises before
// a strategy can be personalized.
func (h *PortfolioHandler) ListFollowUps(c *fiber.Ctx) error {
	var req portfolio.FollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	questions, err := h.service.ListFollowUps(req)
	if err != nil {
		if errors.Is(err, portfolio.ErrUnknownSet) {
			return utils.BadRequest(c, err.Error())
		}
		log.Printf("Follow-up listing failed: %v", err)
		return utils.InternalError(c, "Failed to list follow-up questions")
	}

	return utils.Success(c, fiber.Map{
		"questions": questions,
	})
}
