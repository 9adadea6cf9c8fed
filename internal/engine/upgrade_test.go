package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUpgrades(t *testing.T) {
	t.Run("mixed trade-off that nets positive is recommended", func(t *testing.T) {
		catalog := []CardRecord{
			makeCard("dining_card", func(c *CardRecord) {
				c.FamilyID = "fam"
				c.Rewards = RewardMap{"base": 0.01, "dining": 0.04, "travel": 0.02}
			}),
			makeCard("travel_card", func(c *CardRecord) {
				c.FamilyID = "fam"
				c.Rewards = RewardMap{"base": 0.01, "dining": 0.02, "travel": 0.04}
			}),
		}
		owned := []OwnedCard{makeOwned("dining_card", func(o *OwnedCard) {
			o.ResolvedRewards = catalog[0].Rewards
		})}
		spending := Spending{CategoryDining: 50, CategoryTravel: 300}

		upgrades := FindUpgrades(catalog, owned, makeProfile(nil), spending)
		assert.Len(t, upgrades, 1)
		assert.Equal(t, ActionUpgrade, upgrades[0].Action)
		assert.Equal(t, "travel_card", upgrades[0].Card.ID)
		assert.Equal(t, "Test Card dining_card", upgrades[0].UpgradeFrom)
		// owned: 50*0.04*12 + 300*0.02*12 = 96; candidate: 50*0.02*12 + 300*0.04*12 = 156
		assert.InDelta(t, 156, upgrades[0].AnnualNetValue, 1e-9)
		assert.Contains(t, upgrades[0].Reason, "+$60/yr")
	})

	t.Run("mixed trade-off that nets negative is not recommended", func(t *testing.T) {
		catalog := []CardRecord{
			makeCard("dining_card", func(c *CardRecord) {
				c.FamilyID = "fam"
				c.Rewards = RewardMap{"base": 0.01, "dining": 0.04, "travel": 0.02}
			}),
			makeCard("travel_card", func(c *CardRecord) {
				c.FamilyID = "fam"
				c.Rewards = RewardMap{"base": 0.01, "dining": 0.02, "travel": 0.04}
			}),
		}
		owned := []OwnedCard{makeOwned("dining_card", func(o *OwnedCard) {
			o.ResolvedRewards = catalog[0].Rewards
		})}
		spending := Spending{CategoryDining: 300, CategoryTravel: 50}

		assert.Empty(t, FindUpgrades(catalog, owned, makeProfile(nil), spending))
	})

	t.Run("dominating sibling with lower fee must appear", func(t *testing.T) {
		catalog := []CardRecord{
			makeCard("premium", func(c *CardRecord) {
				c.FamilyID = "fam"
				c.AnnualFee = 95
				c.Rewards = RewardMap{"base": 0.01, "groceries": 0.03}
			}),
			makeCard("free", func(c *CardRecord) {
				c.FamilyID = "fam"
				c.Rewards = RewardMap{"base": 0.01, "groceries": 0.03}
			}),
		}
		owned := []OwnedCard{makeOwned("premium", func(o *OwnedCard) {
			o.ResolvedRewards = catalog[0].Rewards
			o.AnnualFee = 95
		})}
		spending := Spending{CategoryGrocery: 400}

		upgrades := FindUpgrades(catalog, owned, makeProfile(nil), spending)
		assert.Len(t, upgrades, 1)
		assert.Equal(t, "free", upgrades[0].Card.ID)
		assert.Greater(t, upgrades[0].AnnualNetValue, ComputeANV(catalog[0].Rewards, spending, 95).ANV)
		assert.Contains(t, upgrades[0].Reason, "eliminates $95/yr in fees")
	})

	t.Run("fee increase reason when rewards offset it", func(t *testing.T) {
		catalog := []CardRecord{
			makeCard("starter", func(c *CardRecord) {
				c.FamilyID = "fam"
				c.Rewards = RewardMap{"base": 0.01}
			}),
			makeCard("premium", func(c *CardRecord) {
				c.FamilyID = "fam"
				c.AnnualFee = 95
				c.Rewards = RewardMap{"base": 0.01, "groceries": 0.06}
			}),
		}
		owned := []OwnedCard{makeOwned("starter", func(o *OwnedCard) {
			o.ResolvedRewards = catalog[0].Rewards
		})}
		// starter: 1000*0.01*12 = 120; premium: 1000*0.06*12 - 95 = 625
		spending := Spending{CategoryGrocery: 1000}

		upgrades := FindUpgrades(catalog, owned, makeProfile(nil), spending)
		assert.Len(t, upgrades, 1)
		assert.Contains(t, upgrades[0].Reason, "Fee increases by $95/yr, but rewards more than offset it.")
	})

	t.Run("standalone cards have no upgrade path", func(t *testing.T) {
		catalog := []CardRecord{
			makeCard("solo", func(c *CardRecord) { c.Rewards = RewardMap{"base": 0.01} }),
			makeCard("better", func(c *CardRecord) { c.Rewards = RewardMap{"base": 0.02} }),
		}
		owned := []OwnedCard{makeOwned("solo", nil)}
		assert.Empty(t, FindUpgrades(catalog, owned, makeProfile(nil), Spending{CategoryGrocery: 500}))
	})

	t.Run("candidate above user score is skipped", func(t *testing.T) {
		catalog := []CardRecord{
			makeCard("a", func(c *CardRecord) { c.FamilyID = "fam" }),
			makeCard("b", func(c *CardRecord) {
				c.FamilyID = "fam"
				c.MinScore = 800
				c.Rewards = RewardMap{"base": 0.05}
			}),
		}
		owned := []OwnedCard{makeOwned("a", nil)}
		profile := makeProfile(func(p *CreditProfile) { p.Score = 700 })
		assert.Empty(t, FindUpgrades(catalog, owned, profile, Spending{CategoryGrocery: 500}))
	})
}
