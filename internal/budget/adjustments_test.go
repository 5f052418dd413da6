package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlewood/finsight/internal/model"
)

func TestSuggestAdjustments(t *testing.T) {
	report := &model.PerformanceReport{
		Categories: map[string]model.PerformanceRecord{
			"dining_out": {Status: model.StatusOver, Budgeted: 150, Actual: 200, PercentageUsed: 133.3},
			"groceries":  {Status: model.StatusUnder, Budgeted: 400, Actual: 250, PercentageUsed: 62.5},
			"utilities":  {Status: model.StatusUnder, Budgeted: 200, Actual: 190, PercentageUsed: 95},
		},
	}

	suggestions := SuggestAdjustments(report)
	require.Len(t, suggestions, 4)

	assert.Equal(t, "You're consistently overspending on: dining_out", suggestions[0])
	assert.Equal(t, "Consider increasing these budgets or finding specific ways to reduce spending", suggestions[1])
	assert.Equal(t, "You have room in: groceries", suggestions[2])
	assert.Equal(t, "Consider reallocating this money to savings or debt payments", suggestions[3])
}

func TestSuggestAdjustments_ModestOverspendNotFlagged(t *testing.T) {
	report := &model.PerformanceReport{
		Categories: map[string]model.PerformanceRecord{
			"dining_out": {Status: model.StatusOver, Budgeted: 150, Actual: 160, PercentageUsed: 106.7},
		},
	}

	assert.Empty(t, SuggestAdjustments(report))
}

func TestSuggestAdjustments_MultipleCategoriesSorted(t *testing.T) {
	report := &model.PerformanceReport{
		Categories: map[string]model.PerformanceRecord{
			"subscriptions": {Status: model.StatusOver, PercentageUsed: 180, Budgeted: 50},
			"dining_out":    {Status: model.StatusOver, PercentageUsed: 140, Budgeted: 150},
		},
	}

	suggestions := SuggestAdjustments(report)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "You're consistently overspending on: dining_out, subscriptions", suggestions[0])
}
