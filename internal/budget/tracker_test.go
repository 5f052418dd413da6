package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlewood/finsight/internal/aggregate"
	"github.com/castlewood/finsight/internal/model"
)

func julyWindow() aggregate.Window {
	return aggregate.MonthWindow(2026, time.July)
}

func TestTrack(t *testing.T) {
	budget := &model.Budget{
		CategoryBudgets: model.MonthlyAverage{
			"groceries":  300,
			"dining_out": 150,
		},
	}
	actuals := []model.Transaction{
		txn("2026-07-05", "groceries", 280),
		txn("2026-07-12", "dining_out", 180),
	}

	report := Track(budget, actuals, julyWindow())

	groceries := report.Categories["groceries"]
	assert.Equal(t, model.StatusUnder, groceries.Status)
	assert.InDelta(t, 280.0, groceries.Actual, 1e-9)
	assert.InDelta(t, 20.0, groceries.Difference, 1e-9)
	assert.InDelta(t, 93.33, groceries.PercentageUsed, 0.01)

	dining := report.Categories["dining_out"]
	assert.Equal(t, model.StatusOver, dining.Status)
	assert.InDelta(t, -30.0, dining.Difference, 1e-9)
	assert.InDelta(t, 120.0, dining.PercentageUsed, 1e-9)

	assert.Equal(t, "2026-07-01", report.WindowStart)
	assert.Equal(t, "2026-07-31", report.WindowEnd)
}

func TestTrack_ExactlyAtBudgetIsUnder(t *testing.T) {
	budget := &model.Budget{CategoryBudgets: model.MonthlyAverage{"groceries": 300}}
	actuals := []model.Transaction{txn("2026-07-05", "groceries", 300)}

	report := Track(budget, actuals, julyWindow())
	assert.Equal(t, model.StatusUnder, report.Categories["groceries"].Status)
	assert.InDelta(t, 100.0, report.Categories["groceries"].PercentageUsed, 1e-9)
}

func TestTrack_ZeroBudgetedCategory(t *testing.T) {
	budget := &model.Budget{CategoryBudgets: model.MonthlyAverage{"gifts": 0}}
	actuals := []model.Transaction{txn("2026-07-05", "gifts", 50)}

	report := Track(budget, actuals, julyWindow())

	record := report.Categories["gifts"]
	assert.Equal(t, model.StatusOver, record.Status)
	assert.Zero(t, record.PercentageUsed, "no percentage against a zero budget")
}

func TestTrack_BudgetedCategoryWithNoSpend(t *testing.T) {
	budget := &model.Budget{CategoryBudgets: model.MonthlyAverage{"groceries": 300}}

	report := Track(budget, nil, julyWindow())

	record, ok := report.Categories["groceries"]
	require.True(t, ok, "every budgeted category gets a record")
	assert.Equal(t, model.StatusUnder, record.Status)
	assert.Zero(t, record.Actual)
	assert.InDelta(t, 300.0, record.Difference, 1e-9)
}

func TestTrack_UnbudgetedSpendSurfacedSeparately(t *testing.T) {
	budget := &model.Budget{CategoryBudgets: model.MonthlyAverage{"groceries": 300}}
	actuals := []model.Transaction{
		txn("2026-07-05", "groceries", 100),
		txn("2026-07-10", "electronics", 450),
	}

	report := Track(budget, actuals, julyWindow())

	assert.NotContains(t, report.Categories, "electronics")
	require.Contains(t, report.Unbudgeted, "electronics")
	assert.InDelta(t, 450.0, report.Unbudgeted["electronics"], 1e-9)
}

func TestTrack_IgnoresOutsideWindowAndIncome(t *testing.T) {
	budget := &model.Budget{CategoryBudgets: model.MonthlyAverage{"groceries": 300}}
	actuals := []model.Transaction{
		txn("2026-06-28", "groceries", 500),
		txn("2026-07-05", "groceries", 120),
		txn("2026-07-20", "income", 5000),
	}

	report := Track(budget, actuals, julyWindow())

	assert.InDelta(t, 120.0, report.Categories["groceries"].Actual, 1e-9)
	assert.Empty(t, report.Unbudgeted, "income is not spending")
}
