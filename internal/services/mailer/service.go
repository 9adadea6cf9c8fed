// Package mailer sends strategy results emails through Resend.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"wallzy/internal/validation"

	"github.com/resend/resend-go/v2"
)

var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrNotConfigured = errors.New("mailer is not configured")
)

const defaultSender = "Wallzy Wallet <no-reply@wallzywallet.com>"

type Service interface {
	// SendResults renders and sends the portfolio results email, returning
	// the provider message id.
	SendResults(ctx context.Context, results ResultsEmail) (string, error)
}

type service struct {
	client *resend.Client
	from   string
}

// NewService builds a mailer backed by Resend. An empty from address
// falls back to the product default.
func NewService(apiKey, from string) Service {
	if apiKey == "" {
		panic("resend api key is required")
	}
	if from == "" {
		from = defaultSender
	}
	return &service{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *service) SendResults(ctx context.Context, results ResultsEmail) (string, error) {
	if !validation.IsValidEmail(results.Email) {
		return "", ErrInvalidEmail
	}

	html, err := renderResults(results)
	if err != nil {
		return "", fmt.Errorf("failed to render results email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{results.Email},
		Subject: fmt.Sprintf("Your Optimized Credit Card Portfolio — +$%.0f/year", results.Improvement),
		Html:    html,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("Resend error for %s: %v", results.Email, err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return sent.Id, nil
}
