package model

import "time"

// CategoryTotals maps category to accumulated amount over a window.
// Derived from transactions on demand, never persisted independently.
type CategoryTotals map[string]float64

// Sum returns the total across all categories.
func (c CategoryTotals) Sum() float64 {
	var total float64
	for _, v := range c {
		total += v
	}
	return total
}

// MonthlyAverage maps category to its per-month average over a window.
type MonthlyAverage map[string]float64

// Sum returns the total across all categories.
func (m MonthlyAverage) Sum() float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}

// Trend is the month-over-month direction of a spending category.
type Trend string

// Trend values.
const (
	TrendIncreasing       Trend = "increasing"
	TrendDecreasing       Trend = "decreasing"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)

// IncomeStability classifies the variability of recorded income.
type IncomeStability string

// IncomeStability values.
const (
	IncomeStable   IncomeStability = "stable"
	IncomeVariable IncomeStability = "variable"
	IncomeUnknown  IncomeStability = "unknown"
)

// IrregularExpense is a single large, non-recurring transaction outside
// established category norms. Irregular expenses are always reported
// individually, never aggregated away.
type IrregularExpense struct {
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
}

// SpendingStats is the Spending Pattern Analyzer's view of a transaction
// history: per-category monthly averages, trend directions, irregular
// expenses and income stability.
type SpendingStats struct {
	Categories        MonthlyAverage     `json:"categories"`
	Trends            map[string]Trend   `json:"trends"`
	IrregularExpenses []IrregularExpense `json:"irregular_expenses"`
	IncomeStability   IncomeStability    `json:"income_stability"`
	MonthlyAvg        float64            `json:"monthly_avg"`
	FixedExpenses     float64            `json:"fixed_expenses"`
	VariableAvg       float64            `json:"variable_avg"`
}

// DisposableIncome returns the true leftover money per month for a salary:
// salary minus fixed (essential) expenses minus average variable spending.
func (s *SpendingStats) DisposableIncome(salary float64) float64 {
	return salary - s.FixedExpenses - s.VariableAvg
}
