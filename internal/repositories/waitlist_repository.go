package repositories

import (
	"errors"
	"wallzy/internal/models"
)

var ErrWaitlistEntryNotFound = errors.New("waitlist entry not found")

// WaitlistRepository defines the interface for waitlist database operations
type WaitlistRepository interface {
	// Create inserts a new waitlist entry
	Create(entry *models.WaitlistEntry) error

	// GetByEmail retrieves an entry by its normalized email
	GetByEmail(email string) (*models.WaitlistEntry, error)

	// List retrieves entries with pagination, newest first
	List(offset, limit int) ([]models.WaitlistEntry, int64, error)

	// ListAll retrieves every entry, newest first
	ListAll() ([]models.WaitlistEntry, error)
}
