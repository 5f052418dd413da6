package budget

import (
	"github.com/castlewood/finsight/internal/aggregate"
	"github.com/castlewood/finsight/internal/model"
)

// Track compares a budget against actual spending inside an explicit tracking
// window, typically the current month. The window is always passed in rather
// than read from the system clock, keeping the tracker deterministic.
//
// Every budgeted category gets a record even with zero actual spend. Actual
// spending in categories without a budget line is surfaced separately on the
// report, never merged into "other". The report is rebuilt wholesale on every
// call.
func Track(budget *model.Budget, actuals []model.Transaction, window aggregate.Window) *model.PerformanceReport {
	actual := make(model.CategoryTotals)
	for _, t := range aggregate.Filter(actuals, window) {
		if t.IsIncome() {
			continue
		}
		actual[t.NormalizedCategory()] += t.Amount
	}

	report := &model.PerformanceReport{
		Categories: make(map[string]model.PerformanceRecord, len(budget.CategoryBudgets)),
	}
	if !window.Start.IsZero() {
		report.WindowStart = window.Start.Format("2006-01-02")
	}
	if !window.End.IsZero() {
		report.WindowEnd = window.End.Format("2006-01-02")
	}

	for category, budgeted := range budget.CategoryBudgets {
		spent := actual[category]
		record := model.PerformanceRecord{
			Budgeted:   budgeted,
			Actual:     spent,
			Difference: budgeted - spent,
			Status:     model.StatusUnder,
		}
		if budgeted > 0 {
			record.PercentageUsed = spent / budgeted * 100
		}
		if spent > budgeted {
			record.Status = model.StatusOver
		}
		report.Categories[category] = record
	}

	for category, spent := range actual {
		if _, budgeted := budget.CategoryBudgets[category]; !budgeted {
			if report.Unbudgeted == nil {
				report.Unbudgeted = make(model.CategoryTotals)
			}
			report.Unbudgeted[category] = spent
		}
	}

	return report
}
