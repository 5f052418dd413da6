package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/config"
	"github.com/castlewood/finsight/internal/model"
)

func txn(date string, category string, amount float64) model.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{Date: d, Category: category, Amount: amount}
}

func newTestAnalyzer() *Analyzer {
	return New(config.DefaultPolicy())
}

func TestAnalyze_SingleMonthFails(t *testing.T) {
	txns := []model.Transaction{
		txn("2026-01-05", "rent", 1500),
		txn("2026-01-12", "groceries", 80),
		txn("2026-01-19", "dining_out", 45),
	}

	_, err := newTestAnalyzer().Analyze(txns, "")
	require.Error(t, err)
	assert.True(t, common.IsInsufficientData(err))
}

func TestAnalyze_EmptyHistoryFails(t *testing.T) {
	_, err := newTestAnalyzer().Analyze(nil, "")
	require.Error(t, err)
	assert.True(t, common.IsInsufficientData(err))
}

func TestAnalyze_CategoryAverages(t *testing.T) {
	txns := []model.Transaction{
		txn("2026-01-01", "rent", 1500),
		txn("2026-01-10", "groceries", 100),
		txn("2026-02-01", "rent", 1500),
		txn("2026-02-10", "groceries", 140),
		txn("2026-02-15", "income", 5000),
	}

	stats, err := newTestAnalyzer().Analyze(txns, "")
	require.NoError(t, err)

	assert.InDelta(t, 1500.0, stats.Categories["rent"], 1e-9)
	assert.InDelta(t, 120.0, stats.Categories["groceries"], 1e-9)
	assert.NotContains(t, stats.Categories, "income", "income never appears as a spending category")

	assert.InDelta(t, 1620.0, stats.MonthlyAvg, 1e-9)
	assert.InDelta(t, 1620.0, stats.FixedExpenses, 1e-9, "rent and groceries are both essential")
	assert.InDelta(t, 0.0, stats.VariableAvg, 1e-9)
}

func TestAnalyze_Trends(t *testing.T) {
	// Four months: dining_out doubles across the window halves, utilities
	// shrinks, rent holds steady, and the one-off appears only in the later
	// half.
	txns := []model.Transaction{
		txn("2026-01-05", "rent", 1500),
		txn("2026-01-10", "dining_out", 100),
		txn("2026-01-15", "utilities", 200),
		txn("2026-02-05", "rent", 1500),
		txn("2026-02-10", "dining_out", 110),
		txn("2026-02-15", "utilities", 190),
		txn("2026-03-05", "rent", 1500),
		txn("2026-03-10", "dining_out", 210),
		txn("2026-03-15", "utilities", 120),
		txn("2026-04-05", "rent", 1500),
		txn("2026-04-10", "dining_out", 230),
		txn("2026-04-15", "utilities", 110),
		txn("2026-04-20", "electronics", 400),
	}

	stats, err := newTestAnalyzer().Analyze(txns, "")
	require.NoError(t, err)

	assert.Equal(t, model.TrendIncreasing, stats.Trends["dining_out"])
	assert.Equal(t, model.TrendDecreasing, stats.Trends["utilities"])
	assert.Equal(t, model.TrendStable, stats.Trends["rent"])
	assert.Equal(t, model.TrendInsufficientData, stats.Trends["electronics"],
		"a category seen in only one half is never guessed")
}

func TestAnalyze_IrregularExpenses(t *testing.T) {
	txns := []model.Transaction{
		txn("2026-01-10", "dining_out", 40),
		txn("2026-02-10", "dining_out", 45),
		txn("2026-03-10", "dining_out", 50),
		// Single occurrence: no established average for the category.
		txn("2026-03-14", "medical", 800),
		// Far above the category's monthly average even with itself counted.
		txn("2026-04-20", "dining_out", 300),
	}

	stats, err := newTestAnalyzer().Analyze(txns, "")
	require.NoError(t, err)

	require.Len(t, stats.IrregularExpenses, 2)
	// Sorted by amount descending.
	assert.Equal(t, "medical", stats.IrregularExpenses[0].Category)
	assert.Equal(t, 800.0, stats.IrregularExpenses[0].Amount)
	assert.Equal(t, "dining_out", stats.IrregularExpenses[1].Category)
	assert.Equal(t, 300.0, stats.IrregularExpenses[1].Amount)
}

func TestAnalyze_EssentialCategoriesNeverIrregular(t *testing.T) {
	txns := []model.Transaction{
		txn("2026-01-05", "rent", 1500),
		txn("2026-02-05", "rent", 1500),
		// A large one-off insurance bill stays out of the irregular list
		// because insurance is an essential category.
		txn("2026-02-20", "insurance", 4000),
	}

	stats, err := newTestAnalyzer().Analyze(txns, "")
	require.NoError(t, err)
	assert.Empty(t, stats.IrregularExpenses)
}

func TestAnalyze_IncomeStability(t *testing.T) {
	tests := []struct {
		name    string
		incomes map[string]float64
		want    model.IncomeStability
	}{
		{
			name:    "steady salary is stable",
			incomes: map[string]float64{"2026-01-01": 5000, "2026-02-01": 5000, "2026-03-01": 5010},
			want:    model.IncomeStable,
		},
		{
			name:    "swinging income is variable",
			incomes: map[string]float64{"2026-01-01": 3000, "2026-02-01": 6000, "2026-03-01": 2000},
			want:    model.IncomeVariable,
		},
		{
			name:    "no income entries is unknown",
			incomes: nil,
			want:    model.IncomeUnknown,
		},
		{
			name:    "single income month is unknown",
			incomes: map[string]float64{"2026-01-01": 5000},
			want:    model.IncomeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := []model.Transaction{
				txn("2026-01-10", "groceries", 100),
				txn("2026-02-10", "groceries", 110),
				txn("2026-03-10", "groceries", 105),
			}
			for date, amount := range tt.incomes {
				txns = append(txns, txn(date, "income", amount))
			}

			stats, err := newTestAnalyzer().Analyze(txns, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats.IncomeStability)
		})
	}
}

func TestAnalyze_TimeframeRestrictsWindow(t *testing.T) {
	txns := []model.Transaction{
		txn("2025-01-10", "electronics", 900),
		txn("2026-05-10", "groceries", 100),
		txn("2026-06-10", "groceries", 110),
		txn("2026-07-10", "groceries", 105),
	}

	stats, err := newTestAnalyzer().Analyze(txns, "3months")
	require.NoError(t, err)
	assert.NotContains(t, stats.Categories, "electronics",
		"the old purchase falls outside the lookback window")
}

func TestAnalyze_InvalidTimeframe(t *testing.T) {
	tests := []string{"soon", "-3months", "0m", "months"}

	txns := []model.Transaction{
		txn("2026-01-10", "groceries", 100),
		txn("2026-02-10", "groceries", 110),
	}

	for _, tf := range tests {
		t.Run(tf, func(t *testing.T) {
			_, err := newTestAnalyzer().Analyze(txns, tf)
			require.Error(t, err)
			assert.True(t, common.IsInvalidInput(err))
		})
	}
}

func TestCoefficientOfVariation(t *testing.T) {
	cv, ok := coefficientOfVariation([]float64{100, 100, 100})
	require.True(t, ok)
	assert.InDelta(t, 0.0, cv, 1e-9)

	_, ok = coefficientOfVariation([]float64{0, 0})
	assert.False(t, ok, "undefined on a zero mean")
}

func TestDisposableIncome(t *testing.T) {
	stats := &model.SpendingStats{FixedExpenses: 2000, VariableAvg: 800}
	assert.InDelta(t, 2200.0, stats.DisposableIncome(5000), 1e-9)
}
