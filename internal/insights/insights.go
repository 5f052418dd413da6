// Package insights derives actionable observations from spending statistics.
package insights

import (
	"fmt"
	"sort"

	"github.com/castlewood/finsight/internal/model"
)

// Rule thresholds for insight generation.
const (
	diningOutAdviceThreshold  = 200.0
	discretionaryShareAdvised = 0.30
)

// Generate produces rule-based spending insights from analyzed statistics.
// The output is deterministic and fully offline.
func Generate(stats *model.SpendingStats) []string {
	var insights []string

	if cat, amount, ok := topCategory(stats.Categories); ok {
		insights = append(insights,
			fmt.Sprintf("Your biggest expense category is %s: $%.0f/month", cat, amount))
	}

	if dining := stats.Categories["dining_out"]; dining > diningOutAdviceThreshold {
		insights = append(insights,
			fmt.Sprintf("You spend $%.0f/month on dining out - cooking more could save $100+", dining))
	}

	if stats.MonthlyAvg > 0 && stats.VariableAvg > stats.MonthlyAvg*discretionaryShareAdvised {
		insights = append(insights,
			"Consider reducing discretionary spending by 20% to boost savings")
	}

	for _, trend := range sortedTrendCategories(stats.Trends) {
		switch stats.Trends[trend] {
		case model.TrendIncreasing:
			insights = append(insights,
				fmt.Sprintf("Your %s spending is trending up month over month", trend))
		case model.TrendDecreasing, model.TrendStable, model.TrendInsufficientData:
		}
	}

	if len(stats.IrregularExpenses) > 0 {
		total := 0.0
		for _, e := range stats.IrregularExpenses {
			total += e.Amount
		}
		insights = append(insights,
			fmt.Sprintf("%d irregular expenses totaling $%.0f hit this window; keep a buffer for one-offs",
				len(stats.IrregularExpenses), total))
	}

	if stats.IncomeStability == model.IncomeVariable {
		insights = append(insights,
			"Your income varies month to month; budget against your lower months, not your average")
	}

	return insights
}

func topCategory(categories model.MonthlyAverage) (string, float64, bool) {
	var top string
	var max float64
	for cat, avg := range categories {
		if avg > max || (avg == max && top != "" && cat < top) {
			top = cat
			max = avg
		}
	}
	return top, max, top != ""
}

func sortedTrendCategories(trends map[string]model.Trend) []string {
	cats := make([]string, 0, len(trends))
	for cat := range trends {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
