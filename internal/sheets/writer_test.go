package sheets

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlewood/finsight/internal/model"
)

func TestPrepareReportData(t *testing.T) {
	w := &Writer{config: DefaultConfig(), logger: slog.Default()}

	budget := &model.Budget{
		MonthlySalary:       5000,
		EssentialExpenses:   1900,
		DiscretionaryBudget: 2170,
		SavingsTarget:       930,
		CategoryBudgets: model.MonthlyAverage{
			"rent":      1500,
			"groceries": 400,
		},
		GoalsTimeline: map[string]model.GoalTimeline{
			"vacation": {TargetAmount: 1200, MonthsToGoal: 1.3, TargetDate: "2026-09", MonthlySavingsNeeded: 930},
		},
	}
	performance := &model.PerformanceReport{
		Categories: map[string]model.PerformanceRecord{
			"groceries": {Budgeted: 400, Actual: 380, Difference: 20, PercentageUsed: 95, Status: model.StatusUnder},
		},
		Unbudgeted: model.CategoryTotals{"electronics": 450},
	}

	values := w.prepareReportData(budget, performance)
	require.NotEmpty(t, values)

	flat := flatten(values)
	assert.Contains(t, flat, "Monthly Salary")
	assert.Contains(t, flat, "Category Budgets")
	assert.Contains(t, flat, "rent")
	assert.Contains(t, flat, "Goals")
	assert.Contains(t, flat, "vacation")
	assert.Contains(t, flat, "Performance")
	assert.Contains(t, flat, "unbudgeted")
	assert.NotContains(t, flat, "Shortfall")
}

func TestPrepareReportData_Shortfall(t *testing.T) {
	w := &Writer{config: DefaultConfig(), logger: slog.Default()}

	budget := &model.Budget{
		MonthlySalary:     1500,
		EssentialExpenses: 1900,
		Shortfall:         400,
		CategoryBudgets:   model.MonthlyAverage{"rent": 1500},
	}

	flat := flatten(w.prepareReportData(budget, nil))
	assert.Contains(t, flat, "Shortfall")
	assert.NotContains(t, flat, "Performance")
}

func TestPrepareReportData_BlockedGoal(t *testing.T) {
	w := &Writer{config: DefaultConfig(), logger: slog.Default()}

	budget := &model.Budget{
		MonthlySalary:   1500,
		CategoryBudgets: model.MonthlyAverage{"rent": 1500},
		GoalsTimeline: map[string]model.GoalTimeline{
			"vacation": {TargetAmount: 1200, Status: model.GoalStatusBlocked},
		},
	}

	flat := flatten(w.prepareReportData(budget, nil))
	assert.Contains(t, flat, model.GoalStatusBlocked)
}

func flatten(values [][]any) []any {
	var flat []any
	for _, row := range values {
		flat = append(flat, row...)
	}
	return flat
}
