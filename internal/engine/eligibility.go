package engine

// velocityThreshold is the new-account count at which velocity-restricted
// issuers stop approving applications (the "5 in 24 months" rule).
const velocityThreshold = 5

// FilterEligible returns the catalog cards the user could be approved for
// and would accept. A card is excluded when it is already owned, when a
// sibling product from its family is owned, when the user's score is
// below its minimum, when the user is velocity-locked and the issuer
// enforces the restriction, or when the user declines annual fees and the
// card carries one.
func FilterEligible(catalog []CardRecord, ownedIDs, ownedFamilies map[string]bool, profile CreditProfile) []CardRecord {
	eligible := make([]CardRecord, 0, len(catalog))
	for _, card := range catalog {
		if ownedIDs[card.ID] {
			continue
		}
		if card.FamilyID != "" && ownedFamilies[card.FamilyID] {
			continue
		}
		if profile.Score < card.MinScore {
			continue
		}
		if profile.CardsOpened24mo >= velocityThreshold && card.VelocityRestricted {
			continue
		}
		if !profile.AcceptsFees && card.AnnualFee > 0 {
			continue
		}
		eligible = append(eligible, card)
	}
	return eligible
}
