package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func followUpCatalog() []CardRecord {
	return []CardRecord{
		makeCard("citi_custom", func(c *CardRecord) {
			c.Name = "Citi Custom Cash"
			c.Rewards = RewardMap{"base": 0.01, "top_category": 0.05}
			c.Choices = map[Placeholder]ChoiceMap{
				PlaceholderTopCategory: {"groceries": "Groceries", "dining": "Dining"},
			}
		}),
		makeCard("bofa_custom", func(c *CardRecord) {
			c.Name = "BofA Customized Cash"
			c.Rewards = RewardMap{"base": 0.01, "custom": 0.03}
			c.Choices = map[Placeholder]ChoiceMap{
				PlaceholderCustom: {"online_shopping": "Online Shopping", "travel": "Travel"},
			}
		}),
		makeCard("freedom_flex", func(c *CardRecord) {
			c.Name = "Freedom Flex"
			c.Rewards = RewardMap{"base": 0.01, "rotating_categories": 0.05}
		}),
		makeCard("usb_cash_plus", func(c *CardRecord) {
			c.Name = "Cash+"
			c.Rewards = RewardMap{"base": 0.01, "chosen_category": 0.05}
		}),
		makeCard("plain", nil),
	}
}

func TestListFollowUps(t *testing.T) {
	catalog := followUpCatalog()

	t.Run("emits one question per placeholder", func(t *testing.T) {
		owned := []OwnedCard{
			makeOwned("citi_custom", func(o *OwnedCard) { o.Name = "Citi Custom Cash" }),
			makeOwned("bofa_custom", func(o *OwnedCard) { o.Name = "BofA Customized Cash" }),
			makeOwned("usb_cash_plus", func(o *OwnedCard) { o.Name = "Cash+" }),
		}
		questions := ListFollowUps(owned, catalog)
		assert.Len(t, questions, 3)

		assert.Equal(t, FollowUpTopCategory, questions[0].Type)
		assert.Equal(t, 0.05, questions[0].Rate)
		assert.Equal(t, "Dining", questions[0].Choices["dining"])

		assert.Equal(t, FollowUpCustomCategory, questions[1].Type)
		assert.Equal(t, FollowUpChosenCategory, questions[2].Type)
		assert.Nil(t, questions[2].Choices)
	})

	t.Run("rotating cards are exempt", func(t *testing.T) {
		owned := []OwnedCard{makeOwned("freedom_flex", nil)}
		assert.Empty(t, ListFollowUps(owned, catalog))
	})

	t.Run("plain cards ask nothing", func(t *testing.T) {
		owned := []OwnedCard{makeOwned("plain", nil)}
		assert.Empty(t, ListFollowUps(owned, catalog))
	})

	t.Run("custom and unknown cards are skipped", func(t *testing.T) {
		owned := []OwnedCard{
			makeOwned("citi_custom", func(o *OwnedCard) { o.Custom = true }),
			makeOwned("no_such_card", nil),
		}
		assert.Empty(t, ListFollowUps(owned, catalog))
	})
}

func TestApplyAnswer(t *testing.T) {
	question := FollowUpQuestion{
		CardID: "citi_custom",
		Type:   FollowUpTopCategory,
		Rate:   0.05,
	}

	t.Run("assigns rate and clears placeholders", func(t *testing.T) {
		rewards := RewardMap{"base": 0.01, "top_category": 0.05}
		updated := ApplyAnswer(rewards, question, "dining")

		assert.Equal(t, 0.05, updated["dining"])
		assert.NotContains(t, updated, "top_category")
		assert.NotContains(t, updated, "custom")
		assert.NotContains(t, updated, "rotating_categories")
		assert.NotContains(t, updated, "chosen_category")
		assert.NotContains(t, updated, "second_category")
	})

	t.Run("never downgrades an existing higher rate", func(t *testing.T) {
		rewards := RewardMap{"base": 0.01, "dining": 0.06, "top_category": 0.05}
		updated := ApplyAnswer(rewards, question, "dining")
		assert.Equal(t, 0.06, updated["dining"])
	})

	t.Run("pure: input is not mutated and calls are repeatable", func(t *testing.T) {
		rewards := RewardMap{"base": 0.01, "top_category": 0.05}
		first := ApplyAnswer(rewards, question, "dining")
		second := ApplyAnswer(rewards, question, "dining")

		assert.Equal(t, RewardMap{"base": 0.01, "top_category": 0.05}, rewards)
		assert.Equal(t, first, second)
	})
}

func TestDefaultAnswer(t *testing.T) {
	question := FollowUpQuestion{CardID: "citi_custom", Type: FollowUpTopCategory, Rate: 0.05}

	t.Run("assigns to the highest-spend category", func(t *testing.T) {
		rewards := RewardMap{"base": 0.01, "top_category": 0.05}
		spending := Spending{CategoryGrocery: 200, CategoryDining: 800}
		updated := DefaultAnswer(rewards, question, spending)
		assert.Equal(t, 0.05, updated["dining"])
	})

	t.Run("spend ties keep canonical order", func(t *testing.T) {
		rewards := RewardMap{"base": 0.01, "top_category": 0.05}
		spending := Spending{CategoryGrocery: 500, CategoryDining: 500}
		updated := DefaultAnswer(rewards, question, spending)
		assert.Equal(t, 0.05, updated["groceries"])
	})
}
