package repositories

import (
	"context"
	"log"

	"wallzy/internal/models"
	"wallzy/internal/repositories/cache"

	"gorm.io/gorm"
)

type catalogRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewCatalogRepository creates a new instance of CatalogRepository
func NewCatalogRepository(db *gorm.DB, cache *cache.CacheService) CatalogRepository {
	return &catalogRepository{
		db:    db,
		cache: cache,
	}
}

func (r *catalogRepository) GetBySet(set string) ([]models.CatalogCard, error) {
	// Try cache first
	if cards, err := r.cache.GetCatalog(context.Background(), set); err == nil {
		return cards, nil
	}

	var cards []models.CatalogCard
	if err := r.db.Where("set = ?", set).Order("id").Find(&cards).Error; err != nil {
		return nil, ErrDatabaseOperation
	}

	if err := r.cache.CacheCatalog(context.Background(), set, cards); err != nil {
		log.Printf("Failed to cache catalog set %q: %v", set, err)
	}

	return cards, nil
}

func (r *catalogRepository) GetByCardID(cardID string) (*models.CatalogCard, error) {
	var card models.CatalogCard
	result := r.db.Where("card_id = ?", cardID).First(&card)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &card, nil
}

func (r *catalogRepository) Create(card *models.CatalogCard) error {
	if card.CardID == "" || card.Name == "" {
		return ErrInvalidCardData
	}
	if _, err := r.GetByCardID(card.CardID); err == nil {
		return ErrCardIDTaken
	}
	if err := r.db.Create(card).Error; err != nil {
		return ErrDatabaseOperation
	}
	r.invalidate(card.Set)
	return nil
}

func (r *catalogRepository) Update(card *models.CatalogCard) error {
	existing, err := r.GetByCardID(card.CardID)
	if err != nil {
		return err
	}
	card.ID = existing.ID
	if err := r.db.Save(card).Error; err != nil {
		return ErrDatabaseOperation
	}
	// A card can move between sets, so both old and new must be dropped.
	r.invalidate(existing.Set, card.Set)
	return nil
}

func (r *catalogRepository) Delete(cardID string) error {
	existing, err := r.GetByCardID(cardID)
	if err != nil {
		return err
	}
	result := r.db.Delete(&models.CatalogCard{}, existing.ID)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	r.invalidate(existing.Set)
	return nil
}

func (r *catalogRepository) List(offset, limit int) ([]models.CatalogCard, int64, error) {
	var cards []models.CatalogCard
	var total int64

	if err := r.db.Model(&models.CatalogCard{}).Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	if err := r.db.Order("id").Offset(offset).Limit(limit).Find(&cards).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	return cards, total, nil
}

func (r *catalogRepository) invalidate(sets ...string) {
	if err := r.cache.InvalidateCatalog(context.Background(), sets...); err != nil {
		log.Printf("Warning: Failed to invalidate catalog cache: %v", err)
	}
}
