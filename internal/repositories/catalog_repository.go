package repositories

import (
	"errors"
	"wallzy/internal/models"
)

var (
	ErrCardNotFound    = errors.New("catalog card not found")
	ErrCardIDTaken     = errors.New("card id already exists")
	ErrInvalidCardData = errors.New("invalid catalog card data")
)

// CatalogRepository defines the interface for catalog database operations
type CatalogRepository interface {
	// GetBySet retrieves all cards in a catalog set, in insertion order
	GetBySet(set string) ([]models.CatalogCard, error)

	// GetByCardID retrieves a single card by its public card id
	GetByCardID(cardID string) (*models.CatalogCard, error)

	// Create inserts a new catalog card
	Create(card *models.CatalogCard) error

	// Update updates an existing catalog card
	Update(card *models.CatalogCard) error

	// Delete removes a card by its public card id
	Delete(cardID string) error

	// List retrieves cards across all sets with pagination
	List(offset, limit int) ([]models.CatalogCard, int64, error)
}
