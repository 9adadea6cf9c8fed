package engine

// BestRate returns the best reward rate a card offers for a spending
// category. It starts from the card's base rate (unless the category
// excludes base, like rent) and takes the maximum over every mapped
// reward key present on the card. Missing keys are treated as absent,
// never as an error.
func BestRate(rewards RewardMap, category Category) float64 {
	var best float64
	if !baseRateExcluded[category] {
		best = rewards["base"]
	}

	for _, key := range CategoryRewardKeys[category] {
		if rate, ok := rewards[key]; ok && rate > best {
			best = rate
		}
	}

	return best
}
