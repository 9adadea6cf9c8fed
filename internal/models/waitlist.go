package models

import "gorm.io/gorm"

// WaitlistEntry is a signup captured before launch. Emails are stored
// normalized (trimmed, lowercased) so the unique index enforces
// deduplication.
type WaitlistEntry struct {
	gorm.Model
	EntryID string `gorm:"uniqueIndex;not null" json:"entry_id"`
	Email   string `gorm:"uniqueIndex;not null" json:"email"`
	Source  string `gorm:"default:'web'" json:"source"`
}
