package engine

import "fmt"

// FindUpgrades detects same-family product changes that strictly improve
// an owned card's annual net value. Every improving candidate is emitted,
// not just the best; the caller decides how many to surface.
func FindUpgrades(catalog []CardRecord, owned []OwnedCard, profile CreditProfile, spending Spending) []StrategyItem {
	ownedIDs := make(map[string]bool, len(owned))
	for _, card := range owned {
		ownedIDs[card.CardID] = true
	}
	byID := make(map[string]CardRecord, len(catalog))
	for _, card := range catalog {
		byID[card.ID] = card
	}

	var upgrades []StrategyItem
	for _, card := range owned {
		entry, ok := byID[card.CardID]
		if !ok || entry.FamilyID == "" {
			continue
		}

		ownedANV := ComputeANV(card.ResolvedRewards, spending, entry.AnnualFee).ANV

		for _, candidate := range catalog {
			if candidate.ID == card.CardID || ownedIDs[candidate.ID] {
				continue
			}
			if candidate.FamilyID != entry.FamilyID {
				continue
			}
			if profile.Score < candidate.MinScore {
				continue
			}
			if !profile.AcceptsFees && candidate.AnnualFee > 0 {
				continue
			}

			candidateANV := ComputeANV(candidate.Rewards, spending, candidate.AnnualFee).ANV
			if candidateANV <= ownedANV {
				continue
			}

			gain := candidateANV - ownedANV
			feeDiff := candidate.AnnualFee - entry.AnnualFee
			reason := fmt.Sprintf("Product change saves +$%.0f/yr in net rewards.", gain)
			if feeDiff < 0 {
				reason += fmt.Sprintf(" Also eliminates $%d/yr in fees.", -feeDiff)
			} else if feeDiff > 0 {
				reason += fmt.Sprintf(" Fee increases by $%d/yr, but rewards more than offset it.", feeDiff)
			}

			upgrades = append(upgrades, StrategyItem{
				Action:         ActionUpgrade,
				Card:           candidate,
				Reason:         reason,
				AnnualNetValue: candidateANV,
				UpgradeFrom:    card.Name,
			})
		}
	}

	return upgrades
}
