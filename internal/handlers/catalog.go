package handlers

import (
	"errors"
	"log"

	"wallzy/internal/models"
	"wallzy/internal/repositories"
	"wallzy/internal/utils"
	"wallzy/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	repo repositories.CatalogRepository
}

func NewCatalogHandler(repo repositories.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// GetCards returns the cards of one catalog set.
func (h *CatalogHandler) GetCards(c *fiber.Ctx) error {
	set := c.Query("set", models.CatalogSetCommon)
	if set != models.CatalogSetCommon && set != models.CatalogSetStudent {
		return utils.BadRequest(c, "Unknown catalog set")
	}

	cards, err := h.repo.GetBySet(set)
	if err != nil {
		log.Printf("Catalog fetch failed for set %q: %v", set, err)
		return utils.InternalError(c, "Failed to load catalog")
	}

	return utils.Success(c, fiber.Map{
		"set":   set,
		"cards": cards,
	})
}

// ListCards returns all cards across sets with pagination (admin).
func (h *CatalogHandler) ListCards(c *fiber.Ctx) error {
	pagination := utils.GetPagination(c, 1, 50)

	cards, total, err := h.repo.List(pagination.Offset, pagination.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to list catalog cards")
	}

	pagination.SetTotal(total)
	return utils.Success(c, utils.NewPaginatedResponse(cards, pagination))
}

// CreateCard inserts a new catalog card (admin).
func (h *CatalogHandler) CreateCard(c *fiber.Ctx) error {
	var card models.CatalogCard
	if err := c.BodyParser(&card); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if v := validateCard(&card); !v.Valid() {
		return utils.Respond(c, fiber.StatusBadRequest, fiber.Map{"errors": v.Errors})
	}

	if err := h.repo.Create(&card); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCardIDTaken):
			return utils.Conflict(c, "Card id already exists")
		case errors.Is(err, repositories.ErrInvalidCardData):
			return utils.BadRequest(c, err.Error())
		default:
			log.Printf("Catalog create failed: %v", err)
			return utils.InternalError(c, "Failed to create card")
		}
	}

	return utils.Created(c, card)
}

// UpdateCard replaces an existing catalog card (admin).
func (h *CatalogHandler) UpdateCard(c *fiber.Ctx) error {
	var card models.CatalogCard
	if err := c.BodyParser(&card); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	card.CardID = c.Params("cardId")

	if v := validateCard(&card); !v.Valid() {
		return utils.Respond(c, fiber.StatusBadRequest, fiber.Map{"errors": v.Errors})
	}

	if err := h.repo.Update(&card); err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return utils.NotFound(c, "Card not found")
		}
		log.Printf("Catalog update failed: %v", err)
		return utils.InternalError(c, "Failed to update card")
	}

	return utils.Success(c, card)
}

// DeleteCard removes a catalog card (admin).
func (h *CatalogHandler) DeleteCard(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Params("cardId")); err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return utils.NotFound(c, "Card not found")
		}
		log.Printf("Catalog delete failed: %v", err)
		return utils.InternalError(c, "Failed to delete card")
	}

	return utils.Success(c, fiber.Map{
		"message": "Card deleted",
	})
}

func validateCard(card *models.CatalogCard) *validation.Validator {
	v := validation.New()
	v.Required("card_id", card.CardID)
	v.Required("name", card.Name)
	v.MaxLength("name", card.Name, validation.MaxCardNameLength)
	v.Check(card.Set == models.CatalogSetCommon || card.Set == models.CatalogSetStudent,
		"set", "must be common or student")
	v.Range("min_score", float64(card.MinScore), 0, validation.MaxCreditScore)
	v.Check(card.AnnualFee >= 0, "annual_fee", "must not be negative")
	v.Check(len(card.Rewards) > 0, "rewards", "must contain at least one rate")
	for key, rate := range card.Rewards {
		v.Check(rate >= 0 && rate <= 1, "rewards."+key, "rate must be between 0 and 1")
	}
	return v
}
