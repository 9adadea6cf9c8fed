package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestRate(t *testing.T) {
	tests := []struct {
		name     string
		rewards  RewardMap
		category Category
		want     float64
	}{
		{
			name:     "bonus rate for a matching category",
			rewards:  RewardMap{"base": 0.01, "groceries": 0.03},
			category: CategoryGrocery,
			want:     0.03,
		},
		{
			name:     "falls back to base rate for non-bonus categories",
			rewards:  RewardMap{"base": 0.02, "groceries": 0.03},
			category: CategoryDining,
			want:     0.02,
		},
		{
			name:     "rent excludes base rate without explicit rent key",
			rewards:  RewardMap{"base": 0.02, "groceries": 0.03},
			category: CategoryRent,
			want:     0,
		},
		{
			name:     "rent counts an explicit rent key",
			rewards:  RewardMap{"base": 0.01, "rent": 0.01},
			category: CategoryRent,
			want:     0.01,
		},
		{
			name:     "multiple reward keys mapping to the same category",
			rewards:  RewardMap{"base": 0.01, "gas": 0.02, "ev_charging": 0.04},
			category: CategoryGas,
			want:     0.04,
		},
		{
			name:     "empty rewards",
			rewards:  RewardMap{},
			category: CategoryGrocery,
			want:     0,
		},
		{
			name:     "bonus below base keeps base",
			rewards:  RewardMap{"base": 0.02, "dining": 0.01},
			category: CategoryDining,
			want:     0.02,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BestRate(tt.rewards, tt.category))
		})
	}
}

func TestBestRate_BaseIsLowerBound(t *testing.T) {
	// Base rate is a lower bound for every category except rent.
	rewards := RewardMap{"base": 0.015, "dining": 0.03, "gas": 0.005}
	for _, cat := range Categories {
		if cat == CategoryRent {
			continue
		}
		assert.GreaterOrEqual(t, BestRate(rewards, cat), rewards["base"], "category %s", cat)
	}
	assert.Equal(t, 0.0, BestRate(rewards, CategoryRent))
}
