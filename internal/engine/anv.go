package engine

// ANVResult is the outcome of an annual net value calculation.
type ANVResult struct {
	ANV               float64  `json:"anv"`
	BestCategory      Category `json:"best_category"`
	BestCategoryValue float64  `json:"best_category_value"`
}

// ComputeANV projects the annual dollar value of a reward map against a
// monthly spending profile, net of the annual fee. It also reports the
// category contributing the most annualized dollars; ties keep the
// earlier category in canonical order. A negative ANV is meaningful — it
// signals a card whose fee outweighs its rewards for this user.
func ComputeANV(rewards RewardMap, spending Spending, annualFee int) ANVResult {
	var total float64
	best := CategoryGrocery
	var bestValue float64

	for _, cat := range Categories {
		monthly := spending[cat]
		if monthly == 0 {
			continue
		}
		annual := monthly * BestRate(rewards, cat) * 12
		total += annual

		if annual > bestValue {
			bestValue = annual
			best = cat
		}
	}

	return ANVResult{
		ANV:               total - float64(annualFee),
		BestCategory:      best,
		BestCategoryValue: bestValue,
	}
}
