// Package waitlist manages pre-launch signups: it normalizes emails,
// rejects duplicates and persists entries.
package waitlist

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"time"

	"wallzy/internal/models"
	"wallzy/internal/repositories"
	"wallzy/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrAlreadyJoined = errors.New("email already on the waitlist")
)

type Service interface {
	// Join adds an email to the waitlist. The email is normalized before
	// the duplicate check so case and whitespace variants collapse.
	Join(email, source string) (*models.WaitlistEntry, error)

	// List returns entries newest first, with the total count.
	List(offset, limit int) ([]models.WaitlistEntry, int64, error)

	// ExportCSV renders every entry as CSV, newest first.
	ExportCSV() ([]byte, error)
}

type service struct {
	repo repositories.WaitlistRepository
}

func NewService(repo repositories.WaitlistRepository) Service {
	if repo == nil {
		panic("waitlist repository is required")
	}
	return &service{repo: repo}
}

func (s *service) Join(email, source string) (*models.WaitlistEntry, error) {
	normalized := NormalizeEmail(email)
	if !validation.IsValidEmail(normalized) {
		return nil, ErrInvalidEmail
	}

	if _, err := s.repo.GetByEmail(normalized); err == nil {
		return nil, ErrAlreadyJoined
	}

	if source == "" {
		source = "web"
	}

	entry := &models.WaitlistEntry{
		EntryID: uuid.NewString(),
		Email:   normalized,
		Source:  source,
	}
	if err := s.repo.Create(entry); err != nil {
		log.Printf("Failed to create waitlist entry for %s: %v", normalized, err)
		return nil, err
	}

	return entry, nil
}

func (s *service) List(offset, limit int) ([]models.WaitlistEntry, int64, error) {
	return s.repo.List(offset, limit)
}

func (s *service) ExportCSV() ([]byte, error) {
	entries, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("email,created_at\n")
	for _, entry := range entries {
		buf.WriteString(entry.Email)
		buf.WriteByte(',')
		buf.WriteString(entry.CreatedAt.UTC().Format(time.RFC3339))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// NormalizeEmail trims whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
