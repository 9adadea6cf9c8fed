package mailer

import "wallzy/internal/engine"

// CardAction is one card line in the results email.
type CardAction struct {
	Name        string  `json:"name"`
	Reason      string  `json:"reason"`
	ANV         float64 `json:"anv,omitempty"`
	Downgrade   string  `json:"downgrade,omitempty"`
	UpgradeFrom string  `json:"upgrade_from,omitempty"`
}

// ResultsEmail is everything needed to send a strategy results email.
type ResultsEmail struct {
	Email       string       `json:"email"`
	Apply       []CardAction `json:"apply"`
	Upgrade     []CardAction `json:"upgrade"`
	Keep        []CardAction `json:"keep"`
	Remove      []CardAction `json:"remove"`
	Improvement float64      `json:"improvement"`
}

// FromStrategy flattens an engine strategy into the email shape.
func FromStrategy(email string, strategy *engine.PortfolioStrategy) ResultsEmail {
	return ResultsEmail{
		Email:       email,
		Apply:       toActions(strategy.Apply),
		Upgrade:     toActions(strategy.Upgrade),
		Keep:        toActions(strategy.Keep),
		Remove:      toActions(strategy.Remove),
		Improvement: strategy.TotalOptimalRewards - strategy.TotalCurrentRewards,
	}
}

func toActions(items []engine.StrategyItem) []CardAction {
	actions := make([]CardAction, 0, len(items))
	for _, item := range items {
		actions = append(actions, CardAction{
			Name:        item.Card.Name,
			Reason:      item.Reason,
			ANV:         item.AnnualNetValue,
			Downgrade:   item.DowngradeTarget,
			UpgradeFrom: item.UpgradeFrom,
		})
	}
	return actions
}
