package mailer

import (
	"testing"

	"wallzy/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResults(t *testing.T) {
	results := ResultsEmail{
		Email:       "ada@example.com",
		Improvement: 420,
		Apply: []CardAction{
			{Name: "Grocery Gold", Reason: "Best for Groceries", ANV: 300},
		},
		Remove: []CardAction{
			{Name: "Old Premium", Reason: "Fee exceeds rewards", Downgrade: "Old Free"},
		},
	}

	html, err := renderResults(results)
	require.NoError(t, err)

	assert.Contains(t, html, "+$420")
	assert.Contains(t, html, "$35/month")
	assert.Contains(t, html, "Grocery Gold")
	assert.Contains(t, html, "+$300/yr net value")
	assert.Contains(t, html, "Downgrade to: Old Free")
	// Empty sections render nothing.
	assert.NotContains(t, html, "Upgrade from:")
	assert.NotContains(t, html, ">Keep<")
}

func TestRenderResults_EscapesCardNames(t *testing.T) {
	results := ResultsEmail{
		Email: "ada@example.com",
		Keep:  []CardAction{{Name: `<script>alert("x")</script>`, Reason: "ok"}},
	}

	html, err := renderResults(results)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestFromStrategy(t *testing.T) {
	strategy := &engine.PortfolioStrategy{
		Apply: []engine.StrategyItem{{
			Action:         engine.ActionApply,
			Card:           engine.CardRecord{Name: "Grocery Gold"},
			Reason:         "Best for Groceries",
			AnnualNetValue: 300,
		}},
		Upgrade: []engine.StrategyItem{{
			Action:      engine.ActionUpgrade,
			Card:        engine.CardRecord{Name: "Travel Plus"},
			UpgradeFrom: "Travel Basic",
		}},
		TotalCurrentRewards: 100,
		TotalOptimalRewards: 520,
	}

	results := FromStrategy("ada@example.com", strategy)

	assert.Equal(t, "ada@example.com", results.Email)
	assert.InDelta(t, 420, results.Improvement, 1e-9)
	require.Len(t, results.Apply, 1)
	assert.Equal(t, "Grocery Gold", results.Apply[0].Name)
	require.Len(t, results.Upgrade, 1)
	assert.Equal(t, "Travel Basic", results.Upgrade[0].UpgradeFrom)
	assert.Empty(t, results.Keep)
}
