package engine

// Placeholder is a reward key whose effective category is not fixed at
// catalog-authoring time. It must be resolved into a concrete reward key
// before rate lookups see it.
type Placeholder string

const (
	// PlaceholderTopCategory is assigned by the issuer to whichever
	// eligible category the user spends most in each cycle (Citi Custom
	// Cash style).
	PlaceholderTopCategory Placeholder = "top_category"
	// PlaceholderCustom is picked by the user from a fixed choice list
	// (BofA Customized Cash style).
	PlaceholderCustom Placeholder = "custom"
	// PlaceholderRotating is assigned by the issuer each quarter
	// (Freedom Flex / Discover it style).
	PlaceholderRotating Placeholder = "rotating_categories"
	// PlaceholderChosen is freely chosen by the user (U.S. Bank Cash+
	// style).
	PlaceholderChosen Placeholder = "chosen_category"
)

// placeholderSpec describes how one placeholder behaves: which question
// it raises and whether the catalog must supply a choice list for it.
type placeholderSpec struct {
	key          Placeholder
	questionType FollowUpType
	asks         bool // rotating never asks; the issuer picks without user input
	needsChoices bool
}

var placeholderSpecs = []placeholderSpec{
	{key: PlaceholderTopCategory, questionType: FollowUpTopCategory, asks: true, needsChoices: true},
	{key: PlaceholderCustom, questionType: FollowUpCustomCategory, asks: true, needsChoices: true},
	{key: PlaceholderRotating, questionType: FollowUpRotating, asks: false},
	{key: PlaceholderChosen, questionType: FollowUpChosenCategory, asks: true},
}

// placeholderKeys are all reward keys that must never survive follow-up
// resolution. second_category shows up on a few dual-bonus products and
// is cleared alongside the recognized placeholders.
var placeholderKeys = []string{
	string(PlaceholderTopCategory),
	string(PlaceholderCustom),
	string(PlaceholderRotating),
	string(PlaceholderChosen),
	"second_category",
}

// ListFollowUps scans owned cards for catalog entries carrying
// placeholder rewards and returns the questions the user must answer
// before strategy generation. Custom cards and unknown ids are skipped;
// rotating placeholders are exempt because the issuer assigns them.
func ListFollowUps(owned []OwnedCard, catalog []CardRecord) []FollowUpQuestion {
	byID := make(map[string]CardRecord, len(catalog))
	for _, card := range catalog {
		byID[card.ID] = card
	}

	var questions []FollowUpQuestion
	for _, card := range owned {
		if card.Custom {
			continue
		}
		entry, ok := byID[card.CardID]
		if !ok {
			continue
		}

		for _, spec := range placeholderSpecs {
			if !spec.asks {
				continue
			}
			rate, ok := entry.Rewards[string(spec.key)]
			if !ok {
				continue
			}
			choices := entry.Choices[spec.key]
			if spec.needsChoices && choices == nil {
				continue
			}
			questions = append(questions, FollowUpQuestion{
				CardID:   card.CardID,
				CardName: card.Name,
				Type:     spec.questionType,
				Rate:     rate,
				Choices:  choices,
			})
		}
	}

	return questions
}

// ApplyAnswer resolves a follow-up question: the chosen reward key gets
// the placeholder rate (never downgrading a key that already earns more)
// and every placeholder key is removed so it cannot leak into later rate
// resolution. The input map is not mutated.
func ApplyAnswer(rewards RewardMap, question FollowUpQuestion, chosenKey string) RewardMap {
	updated := rewards.Clone()
	if question.Rate > updated[chosenKey] {
		updated[chosenKey] = question.Rate
	}
	for _, key := range placeholderKeys {
		delete(updated, key)
	}
	return updated
}

// DefaultAnswer resolves a question without user input by assigning the
// placeholder rate to the user's highest-spending category. Ties keep
// the earlier category in canonical order.
func DefaultAnswer(rewards RewardMap, question FollowUpQuestion, spending Spending) RewardMap {
	best := CategoryGrocery
	var bestSpend float64
	for _, cat := range Categories {
		if spending[cat] > bestSpend {
			bestSpend = spending[cat]
			best = cat
		}
	}
	return ApplyAnswer(rewards, question, CategoryRewardKeys[best][0])
}
