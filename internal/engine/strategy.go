package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// maxApplyItems caps how many new-card recommendations the strategy
// surfaces from category winners. The portal-specific travel pick and the
// secured-card fallback are appended on top of this.
const maxApplyItems = 3

// Generate produces the full portfolio strategy for a user. It never
// fails: an empty catalog, zero spending or an empty owned list all
// degrade to empty lists and zero totals. Inputs are treated as
// read-only.
func Generate(catalog []CardRecord, owned []OwnedCard, profile CreditProfile, spending Spending, oldestCardID string) PortfolioStrategy {
	byID := make(map[string]CardRecord, len(catalog))
	for _, card := range catalog {
		byID[card.ID] = card
	}

	ownedIDs := make(map[string]bool, len(owned))
	ownedFamilies := make(map[string]bool)
	for _, card := range owned {
		ownedIDs[card.CardID] = true
		if entry, ok := byID[card.CardID]; ok && entry.FamilyID != "" {
			ownedFamilies[entry.FamilyID] = true
		}
	}

	velocityLocked := profile.CardsOpened24mo >= velocityThreshold

	currentBest := currentBestRates(owned)

	var totalCurrent float64
	for _, cat := range Categories {
		totalCurrent += spending[cat] * currentBest[cat] * 12
	}

	eligible := FilterEligible(catalog, ownedIDs, ownedFamilies, profile)

	applyItems, usedIDs, usedFamilies := selectApplyItems(eligible, currentBest, spending)
	applyItems = appendPortalPick(applyItems, eligible, usedIDs, usedFamilies, currentBest, spending)

	keepItems, removeItems := classifyOwnedCards(owned, byID, applyItems, spending, oldestCardID)

	breakdown, totalOptimal := buildBreakdown(owned, removeItems, applyItems, currentBest, spending)

	// No eligible cards at all: fall back to a secured starter card so
	// the user still gets a credit-building path.
	if len(applyItems) == 0 && len(eligible) == 0 {
		for _, card := range catalog {
			if card.MinScore <= 300 && !ownedIDs[card.ID] {
				applyItems = append(applyItems, StrategyItem{
					Action:         ActionApply,
					Card:           card,
					Reason:         "Start building credit with a secured card. No credit history required.",
					AnnualNetValue: 0,
				})
				break
			}
		}
	}

	tips := buildTips(catalog, byID, owned, ownedIDs, eligible, applyItems, usedFamilies, breakdown, currentBest, spending, profile)

	return PortfolioStrategy{
		Apply:               applyItems,
		Upgrade:             FindUpgrades(catalog, owned, profile, spending),
		Keep:                keepItems,
		Remove:              removeItems,
		TotalCurrentRewards: totalCurrent,
		TotalOptimalRewards: totalOptimal,
		CategoryBreakdown:   breakdown,
		VelocityLocked:      velocityLocked,
		Tips:                tips,
	}
}

// currentBestRates computes the best rate the user already earns in each
// category across all owned cards.
func currentBestRates(owned []OwnedCard) map[Category]float64 {
	best := make(map[Category]float64, len(Categories))
	for _, cat := range Categories {
		best[cat] = 0
	}
	for _, card := range owned {
		for _, cat := range Categories {
			if rate := BestRate(card.ResolvedRewards, cat); rate > best[cat] {
				best[cat] = rate
			}
		}
	}
	return best
}

type candidateHit struct {
	card         CardRecord
	category     Category
	rate         float64
	currentRate  float64
	annualGain   float64
	anv          float64
	alternatives []CardRecord
}

// selectApplyItems picks, per category with spend, the eligible card that
// maximizes annualized gain over the current rate (ties broken by higher
// ANV), collects genuinely tied alternatives, then greedily accepts up to
// maxApplyItems winners skipping already-claimed cards and families.
func selectApplyItems(eligible []CardRecord, currentBest map[Category]float64, spending Spending) ([]StrategyItem, map[string]bool, map[string]bool) {
	var winners []candidateHit

	for _, cat := range Categories {
		monthly := spending[cat]
		if monthly == 0 {
			continue
		}
		currentRate := currentBest[cat]

		var best *candidateHit
		for _, card := range eligible {
			rate := BestRate(card.Rewards, cat)
			if rate <= currentRate {
				continue
			}

			gain := (rate - currentRate) * monthly * 12
			anv := ComputeANV(card.Rewards, spending, card.AnnualFee).ANV
			if anv <= 0 {
				continue
			}

			if best == nil || gain > best.annualGain || (gain == best.annualGain && anv > best.anv) {
				best = &candidateHit{card: card, category: cat, rate: rate, currentRate: currentRate, annualGain: gain, anv: anv}
			}
		}
		if best == nil {
			continue
		}

		// Tied alternatives: same gain and ANV from a different card
		// outside the winner's family. These are genuinely equivalent
		// options (e.g. two issuers' identical 2% cards).
		for _, card := range eligible {
			if card.ID == best.card.ID {
				continue
			}
			if card.FamilyID != "" && card.FamilyID == best.card.FamilyID {
				continue
			}
			rate := BestRate(card.Rewards, cat)
			if rate <= currentRate {
				continue
			}
			gain := (rate - currentRate) * monthly * 12
			anv := ComputeANV(card.Rewards, spending, card.AnnualFee).ANV
			if gain == best.annualGain && anv == best.anv {
				best.alternatives = append(best.alternatives, card)
			}
		}

		winners = append(winners, *best)
	}

	sort.SliceStable(winners, func(i, j int) bool {
		return winners[i].annualGain > winners[j].annualGain
	})

	applyItems := make([]StrategyItem, 0, maxApplyItems)
	usedIDs := make(map[string]bool)
	usedFamilies := make(map[string]bool)

	for _, hit := range winners {
		if len(applyItems) >= maxApplyItems {
			break
		}
		if usedIDs[hit.card.ID] {
			continue
		}
		if hit.card.FamilyID != "" && usedFamilies[hit.card.FamilyID] {
			continue
		}

		usedIDs[hit.card.ID] = true
		if hit.card.FamilyID != "" {
			usedFamilies[hit.card.FamilyID] = true
		}

		label := CategoryLabels[hit.category]
		applyItems = append(applyItems, StrategyItem{
			Action: ActionApply,
			Card:   hit.card,
			Reason: fmt.Sprintf("Best for %s — %.1f%% vs your current %.1f%%, saving +$%.0f/yr in that category",
				label, hit.rate*100, hit.currentRate*100, hit.annualGain),
			AnnualNetValue: hit.anv,
			BestCategory:   hit.category,
			Alternatives:   hit.alternatives,
		})
	}

	return applyItems, usedIDs, usedFamilies
}

// appendPortalPick adds a travel recommendation driven by issuer
// travel-portal bonuses, which generic travel scoring ignores because
// they only apply to portal bookings.
func appendPortalPick(applyItems []StrategyItem, eligible []CardRecord, usedIDs, usedFamilies map[string]bool, currentBest map[Category]float64, spending Spending) []StrategyItem {
	if spending[CategoryTravel] == 0 {
		return applyItems
	}

	var bestCard *CardRecord
	var bestRate float64
	var bestLabel string

	for i := range eligible {
		card := eligible[i]
		if usedIDs[card.ID] {
			continue
		}
		if card.FamilyID != "" && usedFamilies[card.FamilyID] {
			continue
		}

		for _, key := range portalTravelKeys {
			rate, ok := card.Rewards[key]
			if !ok || rate <= bestRate {
				continue
			}
			anv := ComputeANV(card.Rewards, spending, card.AnnualFee).ANV
			if anv > 0 || card.AnnualFee == 0 {
				bestRate = rate
				bestLabel = portalTravelLabels[key]
				bestCard = &eligible[i]
			}
		}
	}

	if bestCard == nil || bestRate <= currentBest[CategoryTravel] {
		return applyItems
	}

	gain := (bestRate - currentBest[CategoryTravel]) * spending[CategoryTravel] * 12
	anv := ComputeANV(bestCard.Rewards, spending, bestCard.AnnualFee).ANV

	usedIDs[bestCard.ID] = true
	if bestCard.FamilyID != "" {
		usedFamilies[bestCard.FamilyID] = true
	}

	return append(applyItems, StrategyItem{
		Action: ActionApply,
		Card:   *bestCard,
		Reason: fmt.Sprintf("Best for Travel via %s — %.1f%% vs your current %.1f%%, saving +$%.0f/yr when booking through their portal",
			bestLabel, bestRate*100, currentBest[CategoryTravel]*100, gain),
		AnnualNetValue: anv,
		BestCategory:   CategoryTravel,
	})
}

// fallbackRecord synthesizes a minimal catalog record for an owned card
// whose id is unknown, so KEEP/REMOVE classification still proceeds.
func fallbackRecord(owned OwnedCard) CardRecord {
	return CardRecord{
		ID:        owned.CardID,
		Name:      owned.Name,
		AnnualFee: owned.AnnualFee,
		Rewards:   owned.ResolvedRewards,
	}
}

// classifyOwnedCards sorts every owned card into KEEP or REMOVE. The
// oldest card is protected from removal because closing it would shorten
// the user's credit history.
func classifyOwnedCards(owned []OwnedCard, byID map[string]CardRecord, applyItems []StrategyItem, spending Spending, oldestCardID string) (keep, remove []StrategyItem) {
	var oldestID string
	if oldestCardID != "" {
		for _, card := range owned {
			if card.CardID == oldestCardID {
				oldestID = oldestCardID
				break
			}
		}
	} else if len(owned) > 0 {
		oldestID = owned[0].CardID
	}

	for _, card := range owned {
		entry, known := byID[card.CardID]
		fee := card.AnnualFee
		anv := ComputeANV(card.ResolvedRewards, spending, fee).ANV
		isOldest := oldestID != "" && card.CardID == oldestID

		record := entry
		if !known {
			record = fallbackRecord(card)
		}

		var downgrade string
		if known && entry.DowngradeTo != "" {
			if target, ok := byID[entry.DowngradeTo]; ok {
				downgrade = target.Name
			}
		}

		switch {
		case fee > 0 && anv < 0:
			if isOldest {
				reason := fmt.Sprintf("Oldest card — protects credit history, but the $%d/yr fee exceeds rewards earned ($%.0f/yr gap).", fee, -anv)
				if downgrade != "" {
					reason = fmt.Sprintf("Oldest card — protects credit history. Consider downgrading to %s to eliminate the $%d/yr fee.", downgrade, fee)
				}
				keep = append(keep, StrategyItem{Action: ActionKeep, Card: record, Reason: reason, AnnualNetValue: anv, DowngradeTarget: downgrade})
			} else {
				reason := fmt.Sprintf("$%d/yr fee exceeds earned rewards by $%.0f/yr. Consider closing.", fee, -anv)
				if downgrade != "" {
					reason = fmt.Sprintf("$%d/yr fee exceeds earned rewards by $%.0f/yr. Downgrade to %s to keep the account open.", fee, -anv, downgrade)
				}
				remove = append(remove, StrategyItem{Action: ActionRemove, Card: record, Reason: reason, AnnualNetValue: anv, DowngradeTarget: downgrade})
			}

		case fee > 0 && !isOldest:
			redundant, uniqueGain := uniqueContribution(card, owned, applyItems, spending)
			switch {
			case redundant:
				reason := "Redundant — every category is already matched or beaten by your other cards. " +
					fmt.Sprintf("$%d/yr fee is unnecessary. Consider closing.", fee)
				if downgrade != "" {
					reason = "Redundant — every category is already matched or beaten by your other cards. " +
						fmt.Sprintf("$%d/yr fee is unnecessary. Downgrade to %s to keep the account open.", fee, downgrade)
				}
				remove = append(remove, StrategyItem{Action: ActionRemove, Card: record, Reason: reason, AnnualNetValue: anv, DowngradeTarget: downgrade})
			case uniqueGain < float64(fee):
				reason := fmt.Sprintf("Unique rewards only add $%.0f/yr beyond your other cards, but the fee is $%d/yr. Consider closing.", uniqueGain, fee)
				if downgrade != "" {
					reason = fmt.Sprintf("Unique rewards only add $%.0f/yr beyond your other cards, but the fee is $%d/yr. Downgrade to %s to keep the account open.", uniqueGain, fee, downgrade)
				}
				remove = append(remove, StrategyItem{Action: ActionRemove, Card: record, Reason: reason, AnnualNetValue: anv, DowngradeTarget: downgrade})
			default:
				reason := fmt.Sprintf("Earns $%.0f/yr in rewards, net $%.0f/yr after $%d fee.", anv+float64(fee), anv, fee)
				keep = append(keep, StrategyItem{Action: ActionKeep, Card: record, Reason: reason, AnnualNetValue: anv})
			}

		case fee == 0 && !isOldest && len(owned) > 1:
			if isFullyRedundant(card, owned, applyItems, spending) {
				reason := "This card earns no meaningful rewards for your spending. Consider canceling to simplify your wallet."
				if anv > 0 {
					reason = "Every category is already matched or beaten by your other cards. You can cancel this card — your rewards won't change."
				}
				remove = append(remove, StrategyItem{Action: ActionRemove, Card: record, Reason: reason, AnnualNetValue: anv})
			} else {
				keep = append(keep, StrategyItem{Action: ActionKeep, Card: record, Reason: noFeeKeepReason(anv), AnnualNetValue: anv})
			}

		default:
			var reason string
			switch {
			case isOldest && len(owned) > 1:
				reason = "Oldest card — protects credit history."
				if anv > 0 {
					reason += fmt.Sprintf(" Earns $%.0f/yr net.", anv)
				}
			case fee == 0:
				reason = noFeeKeepReason(anv)
			default:
				reason = fmt.Sprintf("Earns $%.0f/yr in rewards, net $%.0f/yr after $%d fee.", anv+float64(fee), anv, fee)
			}
			keep = append(keep, StrategyItem{Action: ActionKeep, Card: record, Reason: reason, AnnualNetValue: anv})
		}
	}

	return keep, remove
}

func noFeeKeepReason(anv float64) string {
	if anv > 0 {
		return fmt.Sprintf("No annual fee — earns $%.0f/yr in rewards.", anv)
	}
	return "No annual fee — keep open for credit utilization."
}

// otherRewardSets gathers the reward maps of every other owned card plus
// every card the user is being advised to apply for.
func otherRewardSets(card OwnedCard, owned []OwnedCard, applyItems []StrategyItem) []RewardMap {
	sets := make([]RewardMap, 0, len(owned)+len(applyItems))
	for _, other := range owned {
		if other.CardID != card.CardID {
			sets = append(sets, other.ResolvedRewards)
		}
	}
	for _, item := range applyItems {
		sets = append(sets, item.Card.Rewards)
	}
	return sets
}

// uniqueContribution reports whether the card is fully redundant and, if
// not, the annual dollars its category advantages add beyond every other
// owned or recommended card.
func uniqueContribution(card OwnedCard, owned []OwnedCard, applyItems []StrategyItem, spending Spending) (redundant bool, gain float64) {
	others := otherRewardSets(card, owned, applyItems)
	redundant = true
	for _, cat := range Categories {
		if spending[cat] == 0 {
			continue
		}
		rate := BestRate(card.ResolvedRewards, cat)
		var bestOther float64
		for _, rewards := range others {
			if r := BestRate(rewards, cat); r > bestOther {
				bestOther = r
			}
		}
		if rate > bestOther {
			redundant = false
			gain += (rate - bestOther) * spending[cat] * 12
		}
	}
	return redundant, gain
}

// isFullyRedundant is the no-fee variant of the redundancy check: a free
// card is removed only when every category where it earns anything is
// matched or beaten elsewhere.
func isFullyRedundant(card OwnedCard, owned []OwnedCard, applyItems []StrategyItem, spending Spending) bool {
	others := otherRewardSets(card, owned, applyItems)
	for _, cat := range Categories {
		if spending[cat] == 0 {
			continue
		}
		rate := BestRate(card.ResolvedRewards, cat)
		if rate == 0 {
			continue
		}
		var bestOther float64
		for _, rewards := range others {
			if r := BestRate(rewards, cat); r > bestOther {
				bestOther = r
			}
		}
		if rate > bestOther {
			return false
		}
	}
	return true
}

// buildBreakdown recomputes the per-category optimum assuming kept owned
// cards plus every APPLY recommendation, and returns the projected
// optimal annual total alongside the full table.
func buildBreakdown(owned []OwnedCard, removeItems, applyItems []StrategyItem, currentBest map[Category]float64, spending Spending) ([]CategoryBreakdown, float64) {
	removed := make(map[string]bool, len(removeItems))
	for _, item := range removeItems {
		removed[item.Card.ID] = true
	}

	type namedRewards struct {
		name    string
		rewards RewardMap
	}
	var sets []namedRewards
	for _, card := range owned {
		if !removed[card.CardID] {
			sets = append(sets, namedRewards{card.Name, card.ResolvedRewards})
		}
	}
	for _, item := range applyItems {
		sets = append(sets, namedRewards{item.Card.Name, item.Card.Rewards})
	}

	optimalRates := make(map[Category]float64, len(Categories))
	optimalNames := make(map[Category]string, len(Categories))
	for _, set := range sets {
		for _, cat := range Categories {
			if rate := BestRate(set.rewards, cat); rate > optimalRates[cat] {
				optimalRates[cat] = rate
				optimalNames[cat] = set.name
			}
		}
	}

	var totalOptimal float64
	breakdown := make([]CategoryBreakdown, 0, len(Categories))
	for _, cat := range Categories {
		monthly := spending[cat]
		optAnnual := monthly * optimalRates[cat] * 12
		totalOptimal += optAnnual
		breakdown = append(breakdown, CategoryBreakdown{
			Category:      CategoryLabels[cat],
			CategoryKey:   cat,
			CurrentRate:   currentBest[cat],
			OptimalRate:   optimalRates[cat],
			CurrentAnnual: monthly * currentBest[cat] * 12,
			OptimalAnnual: optAnnual,
			BestCardName:  optimalNames[cat],
		})
	}

	return breakdown, totalOptimal
}

// quarterEnd returns the display date the current rotating-category
// quarter closes on.
func quarterEnd(now time.Time) string {
	switch {
	case now.Month() <= time.March:
		return "March 31"
	case now.Month() <= time.June:
		return "June 30"
	case now.Month() <= time.September:
		return "September 30"
	default:
		return "December 31"
	}
}

// buildTips assembles the ordered, conditional tip list. Output strings
// use **double asterisk** bold markers for the renderer.
func buildTips(catalog []CardRecord, byID map[string]CardRecord, owned []OwnedCard, ownedIDs map[string]bool, eligible []CardRecord, applyItems []StrategyItem, usedFamilies map[string]bool, breakdown []CategoryBreakdown, currentBest map[Category]float64, spending Spending, profile CreditProfile) []string {
	var tips []string

	// Summary sentence naming each chosen card and the category that
	// justified it.
	if len(applyItems) > 0 {
		totalFees := 0
		for _, item := range applyItems {
			totalFees += item.Card.AnnualFee
		}
		feeNote := " (all with no annual fee)"
		if totalFees > 0 {
			feeNote = fmt.Sprintf(" (total annual fees: $%d/yr)", totalFees)
		}

		lead := fmt.Sprintf("building a portfolio with %d new strategic cards", len(applyItems))
		if len(applyItems) == 1 {
			lead = "adding 1 strategic card"
		}

		var picks []string
		for _, item := range applyItems {
			categoryName := "overall"
			for _, entry := range breakdown {
				if entry.OptimalRate > entry.CurrentRate &&
					strings.Contains(strings.ToLower(item.Reason), strings.ToLower(entry.Category)) {
					categoryName = entry.Category
					break
				}
			}
			picks = append(picks, fmt.Sprintf("**%s** was chosen because it offers the best improvement for your %s spending.", item.Card.Name, categoryName))
		}

		tips = append(tips, fmt.Sprintf("Based on your spending habits, we recommend %s%s. %s", lead, feeNote, strings.Join(picks, " ")))
	}

	allIDs := make(map[string]bool, len(ownedIDs)+len(applyItems))
	for id := range ownedIDs {
		allIDs[id] = true
	}
	for _, item := range applyItems {
		allIDs[item.Card.ID] = true
	}

	// Flat-rate gap: if nothing in the resulting wallet earns >=2% base,
	// suggest a no-fee flat-rate card for non-bonus spend.
	var bestBase float64
	for _, card := range owned {
		if card.ResolvedRewards["base"] > bestBase {
			bestBase = card.ResolvedRewards["base"]
		}
	}
	for _, item := range applyItems {
		if item.Card.Rewards["base"] > bestBase {
			bestBase = item.Card.Rewards["base"]
		}
	}
	if bestBase < 0.02 {
		for _, card := range catalog {
			if card.Rewards["base"] >= 0.02 && card.AnnualFee == 0 && !allIDs[card.ID] && card.MinScore <= profile.Score {
				tips = append(tips, fmt.Sprintf("We also recommend adding a **2%% flat-rate card** like **%s** for purchases that don't fit bonus categories.", card.Name))
				break
			}
		}
	}

	// Rotating-category reminder, only when the wallet actually contains
	// a rotating card. Rotating rates are excluded from the annual math
	// because they change quarterly.
	var rotatingNames []string
	for _, card := range owned {
		if entry, ok := byID[card.CardID]; ok {
			if _, rotating := entry.Rewards[string(PlaceholderRotating)]; rotating {
				rotatingNames = append(rotatingNames, card.Name)
			}
		}
	}
	for _, item := range applyItems {
		if _, rotating := item.Card.Rewards[string(PlaceholderRotating)]; rotating {
			rotatingNames = append(rotatingNames, item.Card.Name)
		}
	}
	if len(rotatingNames) > 0 {
		verb := "offer"
		if len(rotatingNames) == 1 {
			verb = "offers"
		}
		tips = append(tips, fmt.Sprintf("**Quarterly Bonus Tip:** Your **%s** %s 5%% rotating categories (current quarter ends %s). These rotate every 3 months, so we didn't include them in your annual calculation — but they're great for extra savings when the categories align!",
			strings.Join(rotatingNames, " and "), verb, quarterEnd(time.Now())))
	}

	// Selectable-category cards that could cover travel better than the
	// user's current travel rate.
	if spending[CategoryTravel] > 0 {
		for _, card := range eligible {
			if allIDs[card.ID] {
				continue
			}
			if card.FamilyID != "" && usedFamilies[card.FamilyID] {
				continue
			}

			if choices, ok := card.Choices[PlaceholderTopCategory]; ok {
				if _, hasTravel := choices["travel"]; hasTravel {
					rate := card.Rewards[string(PlaceholderTopCategory)]
					if rate > 0 && rate > currentBest[CategoryTravel] {
						tips = append(tips, fmt.Sprintf("**%s** could earn %.0f%% on travel if it becomes your top spending category — higher than your current %.1f%%.",
							card.Name, rate*100, currentBest[CategoryTravel]*100))
						break
					}
				}
			}
			if choices, ok := card.Choices[PlaceholderCustom]; ok {
				if _, hasTravel := choices["travel"]; hasTravel {
					rate := card.Rewards[string(PlaceholderCustom)]
					if rate > 0 && rate > currentBest[CategoryTravel] {
						tips = append(tips, fmt.Sprintf("**%s** could earn %.0f%% on travel if you choose it as your custom category.", card.Name, rate*100))
						break
					}
				}
			}
		}
	}

	// Categories still stuck at or below the generic base rate after
	// optimization.
	var weak []string
	for _, entry := range breakdown {
		if entry.OptimalRate <= 0.01 && spending[entry.CategoryKey] > 0 {
			weak = append(weak, entry.Category)
		}
	}
	if len(weak) > 0 {
		verb, noun := "are", "these categories"
		if len(weak) == 1 {
			verb, noun = "is", "this category"
		}
		tips = append(tips, fmt.Sprintf("Your **%s** spending %s still earning the base rate. Look for specialized cards in %s as new products launch.",
			strings.Join(weak, " and "), verb, noun))
	}

	return tips
}
