// Package portfolio exposes the recommendation engine as an application
// service. It loads the card catalog, resolves owned cards and their
// placeholder rewards, and runs strategy generation.
package portfolio

import (
	"fmt"

	"wallzy/internal/engine"
	"wallzy/internal/models"
)

// CatalogProvider supplies catalog cards by set. Satisfied by
// repositories.CatalogRepository.
type CatalogProvider interface {
	GetBySet(set string) ([]models.CatalogCard, error)
}

type Service interface {
	// BuildStrategy resolves the request against the catalog and runs the
	// engine.
	BuildStrategy(req StrategyRequest) (*engine.PortfolioStrategy, error)

	// ListFollowUps returns the questions the user's wallet raises before
	// a strategy can be fully personalized.
	ListFollowUps(req FollowUpRequest) ([]engine.FollowUpQuestion, error)
}

type service struct {
	catalog CatalogProvider
}

func NewService(catalog CatalogProvider) Service {
	if catalog == nil {
		panic("catalog provider is required")
	}
	return &service{catalog: catalog}
}

func (s *service) BuildStrategy(req StrategyRequest) (*engine.PortfolioStrategy, error) {
	spending, err := toSpending(req.Spending)
	if err != nil {
		return nil, err
	}
	if req.Profile.Score < 0 || req.Profile.CardsOpened24mo < 0 {
		return nil, ErrInvalidProfile
	}

	records, err := s.loadCatalog(req.Set)
	if err != nil {
		return nil, err
	}

	owned := resolveOwned(records, req.OwnedCards, spending)
	strategy := engine.Generate(records, owned, req.Profile, spending, req.OldestCardID)
	return &strategy, nil
}

func (s *service) ListFollowUps(req FollowUpRequest) ([]engine.FollowUpQuestion, error) {
	records, err := s.loadCatalog(req.Set)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]engine.CardRecord, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	owned := make([]engine.OwnedCard, 0, len(req.OwnedCards))
	for _, input := range req.OwnedCards {
		card := engine.OwnedCard{CardID: input.CardID, Name: input.Name, Custom: input.Custom}
		if record, ok := byID[input.CardID]; ok && !input.Custom {
			card.Name = record.Name
		}
		owned = append(owned, card)
	}

	return engine.ListFollowUps(owned, records), nil
}

func (s *service) loadCatalog(set string) ([]engine.CardRecord, error) {
	normalized, err := normalizeSet(set)
	if err != nil {
		return nil, err
	}
	cards, err := s.catalog.GetBySet(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	return models.CatalogRecords(cards), nil
}

func normalizeSet(set string) (string, error) {
	switch set {
	case "", models.CatalogSetCommon:
		return models.CatalogSetCommon, nil
	case models.CatalogSetStudent:
		return models.CatalogSetStudent, nil
	default:
		return "", ErrUnknownSet
	}
}

// toSpending converts the wire spending map into the engine's typed form.
// Unknown category keys are ignored so clients can send extra fields
// without breaking.
func toSpending(raw map[string]float64) (engine.Spending, error) {
	spending := make(engine.Spending, len(raw))
	for _, cat := range engine.Categories {
		amount := raw[string(cat)]
		if amount < 0 {
			return nil, ErrInvalidSpending
		}
		if amount > 0 {
			spending[cat] = amount
		}
	}
	return spending, nil
}

// resolveOwned turns owned-card inputs into engine cards with placeholder
// rewards resolved: answered questions apply the user's choice, the rest
// default to the highest-spending category.
func resolveOwned(records []engine.CardRecord, inputs []OwnedCardInput, spending engine.Spending) []engine.OwnedCard {
	byID := make(map[string]engine.CardRecord, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	owned := make([]engine.OwnedCard, 0, len(inputs))
	for _, input := range inputs {
		record, known := byID[input.CardID]
		if input.Custom || !known {
			owned = append(owned, engine.OwnedCard{
				CardID:          input.CardID,
				Name:            input.Name,
				Custom:          true,
				AnnualFee:       input.AnnualFee,
				ResolvedRewards: engine.RewardMap(input.Rewards).Clone(),
			})
			continue
		}

		card := engine.OwnedCard{
			CardID:          record.ID,
			Name:            record.Name,
			AnnualFee:       record.AnnualFee,
			ResolvedRewards: record.Rewards.Clone(),
		}
		for _, question := range engine.ListFollowUps([]engine.OwnedCard{card}, records) {
			if choice, ok := input.Answers[string(question.Type)]; ok && choice != "" {
				card.ResolvedRewards = engine.ApplyAnswer(card.ResolvedRewards, question, choice)
			} else {
				card.ResolvedRewards = engine.DefaultAnswer(card.ResolvedRewards, question, spending)
			}
		}
		owned = append(owned, card)
	}

	return owned
}
