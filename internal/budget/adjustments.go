package budget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/castlewood/finsight/internal/model"
)

// Thresholds for adjustment advice: consistently over budget above 120% used,
// meaningful headroom below 80%.
const (
	overspendThreshold = 120.0
	headroomThreshold  = 80.0
)

// SuggestAdjustments derives realistic budget-change advice from a
// performance report: categories far over budget and categories with room to
// reallocate.
func SuggestAdjustments(report *model.PerformanceReport) []string {
	var overBudget, underBudget []string
	for category, record := range report.Categories {
		switch {
		case record.Status == model.StatusOver && record.PercentageUsed > overspendThreshold:
			overBudget = append(overBudget, category)
		case record.Status == model.StatusUnder && record.Budgeted > 0 && record.PercentageUsed < headroomThreshold:
			underBudget = append(underBudget, category)
		}
	}
	sort.Strings(overBudget)
	sort.Strings(underBudget)

	var suggestions []string
	if len(overBudget) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("You're consistently overspending on: %s", strings.Join(overBudget, ", ")),
			"Consider increasing these budgets or finding specific ways to reduce spending")
	}
	if len(underBudget) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("You have room in: %s", strings.Join(underBudget, ", ")),
			"Consider reallocating this money to savings or debt payments")
	}

	return suggestions
}
