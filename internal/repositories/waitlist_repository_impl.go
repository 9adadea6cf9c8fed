package repositories

import (
	"wallzy/internal/models"

	"gorm.io/gorm"
)

type waitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository creates a new instance of WaitlistRepository
func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (r *waitlistRepository) Create(entry *models.WaitlistEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *waitlistRepository) GetByEmail(email string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry
	result := r.db.Where("email = ?", email).First(&entry)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrWaitlistEntryNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &entry, nil
}

func (r *waitlistRepository) List(offset, limit int) ([]models.WaitlistEntry, int64, error) {
	var entries []models.WaitlistEntry
	var total int64

	if err := r.db.Model(&models.WaitlistEntry{}).Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	if err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	return entries, total, nil
}

func (r *waitlistRepository) ListAll() ([]models.WaitlistEntry, error) {
	var entries []models.WaitlistEntry
	if err := r.db.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return entries, nil
}
