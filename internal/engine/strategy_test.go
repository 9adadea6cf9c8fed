package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_EmptyInputsDegradeGracefully(t *testing.T) {
	t.Run("no owned cards and zero spend", func(t *testing.T) {
		catalog := []CardRecord{makeCard("a", nil), makeCard("b", nil)}
		strategy := Generate(catalog, nil, makeProfile(nil), Spending{}, "")

		assert.Empty(t, strategy.Apply)
		assert.Empty(t, strategy.Keep)
		assert.Empty(t, strategy.Remove)
		assert.Zero(t, strategy.TotalCurrentRewards)
		assert.Zero(t, strategy.TotalOptimalRewards)
		assert.Len(t, strategy.CategoryBreakdown, len(Categories))
	})

	t.Run("empty catalog", func(t *testing.T) {
		owned := []OwnedCard{makeOwned("custom", func(o *OwnedCard) { o.Custom = true })}
		strategy := Generate(nil, owned, makeProfile(nil), typicalSpending(), "")

		assert.Empty(t, strategy.Apply)
		assert.Len(t, strategy.Keep, 1)
	})
}

func TestGenerate_Idempotent(t *testing.T) {
	catalog := []CardRecord{
		makeCard("grocery_card", func(c *CardRecord) {
			c.Rewards = RewardMap{"base": 0.01, "groceries": 0.05}
		}),
		makeCard("dining_card", func(c *CardRecord) {
			c.Rewards = RewardMap{"base": 0.01, "dining": 0.04}
		}),
	}
	owned := []OwnedCard{makeOwned("plain", func(o *OwnedCard) { o.Custom = true })}
	spending := typicalSpending()
	profile := makeProfile(nil)

	first := Generate(catalog, owned, profile, spending, "")
	second := Generate(catalog, owned, profile, spending, "")
	assert.Equal(t, first, second)
}

func TestGenerate_ApplySelection(t *testing.T) {
	catalog := []CardRecord{
		makeCard("flat", func(c *CardRecord) { c.Rewards = RewardMap{"base": 0.02} }),
		makeCard("grocery_card", func(c *CardRecord) {
			c.Rewards = RewardMap{"base": 0.01, "groceries": 0.05}
		}),
		makeCard("dining_card", func(c *CardRecord) {
			c.Rewards = RewardMap{"base": 0.01, "dining": 0.04}
		}),
	}
	spending := Spending{CategoryGrocery: 500, CategoryDining: 200}

	strategy := Generate(catalog, nil, makeProfile(nil), spending, "")

	require.Len(t, strategy.Apply, 2)
	// Grocery winner has the larger annual gain, so it ranks first.
	assert.Equal(t, "grocery_card", strategy.Apply[0].Card.ID)
	assert.Equal(t, CategoryGrocery, strategy.Apply[0].BestCategory)
	assert.Contains(t, strategy.Apply[0].Reason, "Best for Groceries")
	assert.Contains(t, strategy.Apply[0].Reason, "5.0% vs your current 0.0%")

	assert.Equal(t, "dining_card", strategy.Apply[1].Card.ID)
	assert.Equal(t, CategoryDining, strategy.Apply[1].BestCategory)

	assert.Greater(t, strategy.TotalOptimalRewards, strategy.TotalCurrentRewards)
}

func TestGenerate_ApplyCapAndFamilyDeduplication(t *testing.T) {
	mutate := func(key string, rate float64, family string) func(*CardRecord) {
		return func(c *CardRecord) {
			c.FamilyID = family
			c.Rewards = RewardMap{"base": 0.01, key: rate}
		}
	}
	catalog := []CardRecord{
		makeCard("grocery_card", mutate("groceries", 0.06, "fam")),
		makeCard("dining_card", mutate("dining", 0.05, "fam")),
		makeCard("gas_card", mutate("gas", 0.05, "")),
		makeCard("online_card", mutate("online_shopping", 0.05, "")),
		makeCard("travel_card", mutate("travel", 0.05, "")),
	}
	spending := Spending{
		CategoryGrocery: 900,
		CategoryDining:  800,
		CategoryGas:     700,
		CategoryOnline:  600,
		CategoryTravel:  500,
	}

	strategy := Generate(catalog, nil, makeProfile(nil), spending, "")

	require.Len(t, strategy.Apply, 3)
	got := map[string]bool{}
	for _, item := range strategy.Apply {
		got[item.Card.ID] = true
	}
	// dining_card shares a family with the grocery winner, so the next
	// distinct winners fill the remaining slots.
	assert.True(t, got["grocery_card"])
	assert.False(t, got["dining_card"])
	assert.True(t, got["gas_card"])
	assert.True(t, got["online_card"])
}

func TestGenerate_TiedAlternatives(t *testing.T) {
	catalog := []CardRecord{
		makeCard("two_a", func(c *CardRecord) { c.Rewards = RewardMap{"base": 0.02} }),
		makeCard("two_b", func(c *CardRecord) { c.Rewards = RewardMap{"base": 0.02} }),
	}
	spending := Spending{CategoryGrocery: 500}

	strategy := Generate(catalog, nil, makeProfile(nil), spending, "")

	require.Len(t, strategy.Apply, 1)
	assert.Equal(t, "two_a", strategy.Apply[0].Card.ID)
	require.Len(t, strategy.Apply[0].Alternatives, 1)
	assert.Equal(t, "two_b", strategy.Apply[0].Alternatives[0].ID)
}

func TestGenerate_TravelPortalPick(t *testing.T) {
	catalog := []CardRecord{
		makeCard("portal_card", func(c *CardRecord) {
			c.Rewards = RewardMap{"travel_chase": 0.05}
		}),
	}
	spending := Spending{CategoryTravel: 300}

	strategy := Generate(catalog, nil, makeProfile(nil), spending, "")

	require.Len(t, strategy.Apply, 1)
	item := strategy.Apply[0]
	assert.Equal(t, "portal_card", item.Card.ID)
	assert.Equal(t, CategoryTravel, item.BestCategory)
	assert.Contains(t, item.Reason, "Chase Travel portal")
	assert.Contains(t, item.Reason, "booking through their portal")
}

func TestGenerate_SecuredFallback(t *testing.T) {
	catalog := []CardRecord{
		makeCard("prime", nil),
		makeCard("secured", func(c *CardRecord) { c.MinScore = 300 }),
	}
	profile := makeProfile(func(p *CreditProfile) { p.Score = 250 })

	strategy := Generate(catalog, nil, profile, Spending{CategoryGrocery: 200}, "")

	require.Len(t, strategy.Apply, 1)
	assert.Equal(t, "secured", strategy.Apply[0].Card.ID)
	assert.Contains(t, strategy.Apply[0].Reason, "Start building credit")
	assert.Zero(t, strategy.Apply[0].AnnualNetValue)
}

func TestGenerate_OldestCardProtection(t *testing.T) {
	t.Run("sole fee card marked oldest is kept with history reason", func(t *testing.T) {
		// 625 * 0.01 * 12 = 75 rewards, fee 95 -> ANV -20
		owned := []OwnedCard{makeOwned("legacy", func(o *OwnedCard) {
			o.Custom = true
			o.AnnualFee = 95
		})}
		spending := Spending{CategoryGrocery: 625}

		strategy := Generate(nil, owned, makeProfile(nil), spending, "legacy")

		assert.Empty(t, strategy.Remove)
		require.Len(t, strategy.Keep, 1)
		assert.Contains(t, strategy.Keep[0].Reason, "protects credit history")
		assert.InDelta(t, -20, strategy.Keep[0].AnnualNetValue, 1e-9)
	})

	t.Run("oldest never appears in remove", func(t *testing.T) {
		owned := []OwnedCard{
			makeOwned("old", func(o *OwnedCard) {
				o.Custom = true
				o.AnnualFee = 95
				o.ResolvedRewards = RewardMap{"base": 0.01}
			}),
			makeOwned("strong", func(o *OwnedCard) {
				o.Custom = true
				o.ResolvedRewards = RewardMap{"base": 0.02}
			}),
		}
		strategy := Generate(nil, owned, makeProfile(nil), typicalSpending(), "old")

		for _, item := range strategy.Remove {
			assert.NotEqual(t, "old", item.Card.ID)
		}
	})

	t.Run("oldest with downgrade target gets the downgrade suggestion", func(t *testing.T) {
		catalog := []CardRecord{
			makeCard("premium", func(c *CardRecord) {
				c.AnnualFee = 95
				c.DowngradeTo = "free"
				c.Rewards = RewardMap{"base": 0.01}
			}),
			makeCard("free", func(c *CardRecord) { c.Name = "Free Variant" }),
		}
		owned := []OwnedCard{makeOwned("premium", func(o *OwnedCard) { o.AnnualFee = 95 })}
		spending := Spending{CategoryGrocery: 100}

		strategy := Generate(catalog, owned, makeProfile(nil), spending, "premium")

		require.Len(t, strategy.Keep, 1)
		assert.Contains(t, strategy.Keep[0].Reason, "downgrading to Free Variant")
		assert.Equal(t, "Free Variant", strategy.Keep[0].DowngradeTarget)
	})
}

func TestGenerate_RemoveClassification(t *testing.T) {
	t.Run("negative-ANV fee card is removed with downgrade", func(t *testing.T) {
		catalog := []CardRecord{
			makeCard("premium", func(c *CardRecord) {
				c.AnnualFee = 95
				c.DowngradeTo = "free"
				c.Rewards = RewardMap{"base": 0.01}
			}),
			makeCard("free", func(c *CardRecord) { c.Name = "Free Variant" }),
		}
		owned := []OwnedCard{
			makeOwned("anchor", func(o *OwnedCard) { o.Custom = true }),
			makeOwned("premium", func(o *OwnedCard) { o.AnnualFee = 95 }),
		}
		spending := Spending{CategoryGrocery: 100}

		strategy := Generate(catalog, owned, makeProfile(nil), spending, "anchor")

		require.Len(t, strategy.Remove, 1)
		assert.Equal(t, "premium", strategy.Remove[0].Card.ID)
		assert.Contains(t, strategy.Remove[0].Reason, "Downgrade to Free Variant")
	})

	t.Run("redundant fee card is removed despite positive ANV", func(t *testing.T) {
		owned := []OwnedCard{
			makeOwned("anchor", func(o *OwnedCard) {
				o.Custom = true
				o.ResolvedRewards = RewardMap{"base": 0.01, "groceries": 0.06}
			}),
			makeOwned("weaker", func(o *OwnedCard) {
				o.Custom = true
				o.AnnualFee = 95
				o.ResolvedRewards = RewardMap{"base": 0.01, "groceries": 0.03}
			}),
		}
		spending := Spending{CategoryGrocery: 500}

		strategy := Generate(nil, owned, makeProfile(nil), spending, "anchor")

		require.Len(t, strategy.Remove, 1)
		assert.Equal(t, "weaker", strategy.Remove[0].Card.ID)
		assert.Contains(t, strategy.Remove[0].Reason, "Redundant")
	})

	t.Run("unique value below fee is removed", func(t *testing.T) {
		owned := []OwnedCard{
			makeOwned("anchor", func(o *OwnedCard) { o.Custom = true }),
			makeOwned("niche", func(o *OwnedCard) {
				o.Custom = true
				o.AnnualFee = 95
				o.ResolvedRewards = RewardMap{"base": 0.01, "dining": 0.02}
			}),
		}
		// Unique gain: (0.02-0.01) * 500 * 12 = 60 < 95 fee.
		spending := Spending{CategoryDining: 500}

		strategy := Generate(nil, owned, makeProfile(nil), spending, "anchor")

		require.Len(t, strategy.Remove, 1)
		assert.Equal(t, "niche", strategy.Remove[0].Card.ID)
		assert.Contains(t, strategy.Remove[0].Reason, "Unique rewards only add $60/yr")
	})

	t.Run("fee card earning its keep is kept", func(t *testing.T) {
		owned := []OwnedCard{
			makeOwned("anchor", func(o *OwnedCard) { o.Custom = true }),
			makeOwned("earner", func(o *OwnedCard) {
				o.Custom = true
				o.AnnualFee = 95
				o.ResolvedRewards = RewardMap{"base": 0.01, "dining": 0.03}
			}),
		}
		// Unique gain: (0.03-0.01) * 1000 * 12 = 240 > 95 fee.
		spending := Spending{CategoryDining: 1000}

		strategy := Generate(nil, owned, makeProfile(nil), spending, "anchor")

		assert.Empty(t, strategy.Remove)
		require.Len(t, strategy.Keep, 2)
		var earner *StrategyItem
		for i := range strategy.Keep {
			if strategy.Keep[i].Card.ID == "earner" {
				earner = &strategy.Keep[i]
			}
		}
		require.NotNil(t, earner)
		assert.Contains(t, earner.Reason, "net $265/yr after $95 fee")
	})

	t.Run("redundant no-fee card is removed only for full redundancy", func(t *testing.T) {
		owned := []OwnedCard{
			makeOwned("anchor", func(o *OwnedCard) {
				o.Custom = true
				o.ResolvedRewards = RewardMap{"base": 0.02}
			}),
			makeOwned("shadow", func(o *OwnedCard) {
				o.Custom = true
				o.ResolvedRewards = RewardMap{"base": 0.01}
			}),
		}
		spending := Spending{CategoryGrocery: 500}

		strategy := Generate(nil, owned, makeProfile(nil), spending, "anchor")

		require.Len(t, strategy.Remove, 1)
		assert.Equal(t, "shadow", strategy.Remove[0].Card.ID)
		assert.Contains(t, strategy.Remove[0].Reason, "your rewards won't change")
	})
}

func TestGenerate_CategoryBreakdown(t *testing.T) {
	catalog := []CardRecord{
		makeCard("grocery_card", func(c *CardRecord) {
			c.Name = "Grocery Card"
			c.Rewards = RewardMap{"base": 0.01, "groceries": 0.05}
		}),
	}
	owned := []OwnedCard{makeOwned("flat", func(o *OwnedCard) {
		o.Custom = true
		o.Name = "Flat Card"
		o.ResolvedRewards = RewardMap{"base": 0.02}
	})}
	spending := Spending{CategoryGrocery: 500, CategoryDining: 200}

	strategy := Generate(catalog, owned, makeProfile(nil), spending, "")

	var grocery, dining *CategoryBreakdown
	for i := range strategy.CategoryBreakdown {
		switch strategy.CategoryBreakdown[i].CategoryKey {
		case CategoryGrocery:
			grocery = &strategy.CategoryBreakdown[i]
		case CategoryDining:
			dining = &strategy.CategoryBreakdown[i]
		}
	}
	require.NotNil(t, grocery)
	require.NotNil(t, dining)

	assert.Equal(t, 0.02, grocery.CurrentRate)
	assert.Equal(t, 0.05, grocery.OptimalRate)
	assert.Equal(t, "Grocery Card", grocery.BestCardName)
	assert.InDelta(t, 120, grocery.CurrentAnnual, 1e-9)
	assert.InDelta(t, 300, grocery.OptimalAnnual, 1e-9)

	assert.Equal(t, "Flat Card", dining.BestCardName)
	assert.Equal(t, 0.02, dining.OptimalRate)
}

func TestGenerate_VelocityLock(t *testing.T) {
	strategy := Generate(nil, nil, makeProfile(func(p *CreditProfile) { p.CardsOpened24mo = 5 }), Spending{}, "")
	assert.True(t, strategy.VelocityLocked)

	strategy = Generate(nil, nil, makeProfile(nil), Spending{}, "")
	assert.False(t, strategy.VelocityLocked)
}

func TestGenerate_Tips(t *testing.T) {
	t.Run("summary names chosen cards", func(t *testing.T) {
		catalog := []CardRecord{makeCard("grocery_card", func(c *CardRecord) {
			c.Name = "Grocery Card"
			c.Rewards = RewardMap{"base": 0.01, "groceries": 0.05}
		})}
		strategy := Generate(catalog, nil, makeProfile(nil), Spending{CategoryGrocery: 500}, "")

		require.NotEmpty(t, strategy.Tips)
		assert.Contains(t, strategy.Tips[0], "adding 1 strategic card")
		assert.Contains(t, strategy.Tips[0], "**Grocery Card**")
		assert.Contains(t, strategy.Tips[0], "(all with no annual fee)")
	})

	t.Run("flat-rate suggestion when base coverage is weak", func(t *testing.T) {
		catalog := []CardRecord{
			makeCard("grocery_card", func(c *CardRecord) {
				c.Rewards = RewardMap{"base": 0.01, "groceries": 0.05}
			}),
			makeCard("two_percent", func(c *CardRecord) {
				c.Name = "Two Percent Card"
				c.Rewards = RewardMap{"base": 0.02}
			}),
		}
		strategy := Generate(catalog, nil, makeProfile(nil), Spending{CategoryGrocery: 500}, "")

		found := false
		for _, tip := range strategy.Tips {
			if strings.Contains(tip, "**2% flat-rate card**") && strings.Contains(tip, "Two Percent Card") {
				found = true
			}
		}
		assert.True(t, found, "expected flat-rate tip, got %v", strategy.Tips)
	})

	t.Run("rotating reminder when the wallet holds a rotating card", func(t *testing.T) {
		catalog := []CardRecord{makeCard("flex", func(c *CardRecord) {
			c.Name = "Flex"
			c.Rewards = RewardMap{"base": 0.01, "rotating_categories": 0.05}
		})}
		owned := []OwnedCard{makeOwned("flex", func(o *OwnedCard) {
			o.Name = "Flex"
			o.ResolvedRewards = RewardMap{"base": 0.01}
		})}
		strategy := Generate(catalog, owned, makeProfile(nil), Spending{CategoryGrocery: 100}, "")

		found := false
		for _, tip := range strategy.Tips {
			if strings.Contains(tip, "Quarterly Bonus Tip") && strings.Contains(tip, "**Flex**") {
				found = true
			}
		}
		assert.True(t, found, "expected rotating tip, got %v", strategy.Tips)
	})

	t.Run("weak category flag after optimization", func(t *testing.T) {
		strategy := Generate(nil, []OwnedCard{makeOwned("flat", func(o *OwnedCard) {
			o.Custom = true
		})}, makeProfile(nil), Spending{CategoryTransit: 200}, "")

		found := false
		for _, tip := range strategy.Tips {
			if strings.Contains(tip, "**Transit**") && strings.Contains(tip, "still earning the base rate") {
				found = true
			}
		}
		assert.True(t, found, "expected weak-category tip, got %v", strategy.Tips)
	})

	t.Run("selectable travel tip", func(t *testing.T) {
		catalog := []CardRecord{makeCard("chooser", func(c *CardRecord) {
			c.Name = "Chooser"
			c.AnnualFee = 95
			c.Rewards = RewardMap{"base": 0.01, "top_category": 0.05}
			c.Choices = map[Placeholder]ChoiceMap{
				PlaceholderTopCategory: {"travel": "Travel", "dining": "Dining"},
			}
		})}
		// The fee keeps its ANV negative so it is never an APPLY winner,
		// but the tip can still mention it.
		strategy := Generate(catalog, nil, makeProfile(nil), Spending{CategoryTravel: 100}, "")

		found := false
		for _, tip := range strategy.Tips {
			if strings.Contains(tip, "**Chooser**") && strings.Contains(tip, "top spending category") {
				found = true
			}
		}
		assert.True(t, found, "expected travel choice tip, got %v", strategy.Tips)
	})
}
