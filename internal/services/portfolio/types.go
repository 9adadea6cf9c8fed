package portfolio

import (
	"wallzy/internal/engine"
	"wallzy/internal/models"
)

// OwnedCardInput is one card the user reports holding. Catalog cards are
// referenced by card id and resolved against the catalog; custom cards
// carry their own rewards and fee.
type OwnedCardInput struct {
	CardID    string         `json:"card_id"`
	Custom    bool           `json:"custom,omitempty"`
	Name      string         `json:"name,omitempty"`
	AnnualFee int            `json:"annual_fee,omitempty"`
	Rewards   models.RateMap `json:"rewards,omitempty"`
	// Answers maps a follow-up question type (e.g. "top_category") to the
	// chosen reward key (e.g. "dining"). Unanswered questions fall back
	// to the user's highest-spending category.
	Answers map[string]string `json:"answers,omitempty"`
}

// StrategyRequest is the full input for strategy generation.
type StrategyRequest struct {
	Set          string               `json:"set,omitempty"`
	OwnedCards   []OwnedCardInput     `json:"owned_cards"`
	Profile      engine.CreditProfile `json:"profile"`
	Spending     map[string]float64   `json:"spending"`
	OldestCardID string               `json:"oldest_card_id,omitempty"`
}

// FollowUpRequest asks which follow-up questions the given wallet raises.
type FollowUpRequest struct {
	Set        string           `json:"set,omitempty"`
	OwnedCards []OwnedCardInput `json:"owned_cards"`
}
