// Package engine implements the portfolio recommendation engine.
// It is a pure computation layer: given a card catalog, the user's owned
// cards, a credit profile and a monthly spending profile it decides which
// cards to apply for, upgrade, keep or remove, and quantifies the annual
// dollar impact of each decision. The engine performs no I/O and keeps no
// state between invocations.
package engine

// Category is a canonical spending bucket, distinct from the raw reward
// keys found on catalog cards.
type Category string

const (
	CategoryGrocery   Category = "grocery"
	CategoryDining    Category = "dining"
	CategoryRent      Category = "rent"
	CategoryGas       Category = "gas"
	CategoryOnline    Category = "online"
	CategoryTravel    Category = "travel"
	CategoryStreaming Category = "streaming"
	CategoryTransit   Category = "transit"
)

// Categories is the canonical ordering of spending categories. All
// iteration and tie-breaking in the engine follows this order so results
// are deterministic.
var Categories = []Category{
	CategoryGrocery,
	CategoryDining,
	CategoryRent,
	CategoryGas,
	CategoryOnline,
	CategoryTravel,
	CategoryStreaming,
	CategoryTransit,
}

// RewardMap maps raw catalog reward keys (e.g. "groceries", "base") to
// cash-back rates, where 0.03 means 3%.
type RewardMap map[string]float64

// Clone returns a copy of the map. The engine never mutates a caller's
// reward map; mutating operations work on clones.
func (r RewardMap) Clone() RewardMap {
	out := make(RewardMap, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ChoiceMap maps a concrete reward key to the human label shown when a
// placeholder category is user-selectable (e.g. "dining" -> "Dining").
type ChoiceMap map[string]string

// Spending maps each canonical category to a monthly dollar amount.
type Spending map[Category]float64

// CardRecord is one catalog entry. Records are read-only; the engine
// never mutates them.
type CardRecord struct {
	ID                 string                   `json:"id"`
	Name               string                   `json:"name"`
	Brand              string                   `json:"brand"`
	FamilyID           string                   `json:"family_id"`
	MinScore           int                      `json:"min_score"`
	AnnualFee          int                      `json:"annual_fee"`
	VelocityRestricted bool                     `json:"velocity_restricted"`
	Rewards            RewardMap                `json:"rewards"`
	DowngradeTo        string                   `json:"downgrade_to,omitempty"`
	Choices            map[Placeholder]ChoiceMap `json:"choices,omitempty"`
}

// OwnedCard is a card the user already holds. ResolvedRewards starts as a
// copy of the catalog rewards and has its placeholder keys replaced by
// concrete category rates once follow-up answers are applied. Custom
// marks cards not present in the catalog.
type OwnedCard struct {
	CardID          string    `json:"card_id"`
	Name            string    `json:"name"`
	ResolvedRewards RewardMap `json:"resolved_rewards"`
	Custom          bool      `json:"custom,omitempty"`
	AnnualFee       int       `json:"annual_fee"`
}

// CreditProfile is the user's self-reported credit standing.
type CreditProfile struct {
	Score           int     `json:"score"`
	CreditAgeYears  float64 `json:"credit_age_years"`
	CardsOpened24mo int     `json:"cards_opened_24mo"`
	AcceptsFees     bool    `json:"accepts_fees"`
}

// Action classifies a strategy item.
type Action string

const (
	ActionApply   Action = "APPLY"
	ActionKeep    Action = "KEEP"
	ActionRemove  Action = "REMOVE"
	ActionUpgrade Action = "UPGRADE"
)

// StrategyItem is one recommendation line.
type StrategyItem struct {
	Action          Action       `json:"action"`
	Card            CardRecord   `json:"card"`
	Reason          string       `json:"reason"`
	AnnualNetValue  float64      `json:"annual_net_value"`
	BestCategory    Category     `json:"best_category,omitempty"`
	DowngradeTarget string       `json:"downgrade_target,omitempty"`
	Alternatives    []CardRecord `json:"alternatives,omitempty"`
	UpgradeFrom     string       `json:"upgrade_from,omitempty"`
}

// CategoryBreakdown compares the user's current best rate for one
// category against the optimal rate once recommendations are adopted.
type CategoryBreakdown struct {
	Category      string   `json:"category"`
	CategoryKey   Category `json:"category_key"`
	CurrentRate   float64  `json:"current_rate"`
	OptimalRate   float64  `json:"optimal_rate"`
	CurrentAnnual float64  `json:"current_annual"`
	OptimalAnnual float64  `json:"optimal_annual"`
	BestCardName  string   `json:"best_card_name"`
}

// PortfolioStrategy is the full engine output. It is recomputed from
// scratch on every invocation.
type PortfolioStrategy struct {
	Apply               []StrategyItem      `json:"apply"`
	Upgrade             []StrategyItem      `json:"upgrade"`
	Keep                []StrategyItem      `json:"keep"`
	Remove              []StrategyItem      `json:"remove"`
	TotalCurrentRewards float64             `json:"total_current_rewards"`
	TotalOptimalRewards float64             `json:"total_optimal_rewards"`
	CategoryBreakdown   []CategoryBreakdown `json:"category_breakdown"`
	VelocityLocked      bool                `json:"velocity_locked"`
	Tips                []string            `json:"tips"`
}

// FollowUpType tags the kind of follow-up question a placeholder reward
// generates.
type FollowUpType string

const (
	FollowUpTopCategory    FollowUpType = "top_category"
	FollowUpRotating       FollowUpType = "rotating"
	FollowUpChosenCategory FollowUpType = "chosen_category"
	FollowUpCustomCategory FollowUpType = "custom_category"
)

// FollowUpQuestion asks the user to pin down a placeholder reward on an
// owned card before the strategy is generated.
type FollowUpQuestion struct {
	CardID   string       `json:"card_id"`
	CardName string       `json:"card_name"`
	Type     FollowUpType `json:"type"`
	Rate     float64      `json:"rate"`
	Choices  ChoiceMap    `json:"choices,omitempty"`
}
