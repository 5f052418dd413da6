package model

// Budget is a realistic monthly budget derived from actual spending behavior
// rather than idealistic percentage rules.
//
// Invariant: EssentialExpenses + DiscretionaryBudget + SavingsTarget equals
// MonthlySalary, unless the salary cannot cover essentials. In that case both
// DiscretionaryBudget and SavingsTarget are zero and Shortfall carries the
// uncovered magnitude; a negative budget is never propagated downstream.
type Budget struct {
	CategoryBudgets     MonthlyAverage          `json:"category_budgets"`
	GoalsTimeline       map[string]GoalTimeline `json:"goals_timeline"`
	MonthlySalary       float64                 `json:"monthly_salary"`
	EssentialExpenses   float64                 `json:"essential_expenses"`
	DiscretionaryBudget float64                 `json:"discretionary_budget"`
	SavingsTarget       float64                 `json:"savings_target"`
	Shortfall           float64                 `json:"shortfall,omitempty"`
}

// HasShortfall reports whether essentials exceed the salary.
func (b *Budget) HasShortfall() bool {
	return b.Shortfall > 0
}

// PerformanceStatus indicates whether actual spending stayed within budget.
type PerformanceStatus string

// Performance status values. Spending exactly at budget counts as under.
const (
	StatusOver  PerformanceStatus = "over"
	StatusUnder PerformanceStatus = "under"
)

// PerformanceRecord compares budgeted against actual spending for one
// category within a tracking window. Records are recomputed wholesale when
// the window's actuals change, never mutated in place.
type PerformanceRecord struct {
	Status         PerformanceStatus `json:"status"`
	Budgeted       float64           `json:"budgeted"`
	Actual         float64           `json:"actual"`
	Difference     float64           `json:"difference"`
	PercentageUsed float64           `json:"percentage_used"`
}

// PerformanceReport is the Performance Tracker output for one window.
// Categories spending money without a budget line are surfaced in
// Unbudgeted, never silently merged into the "other" bucket.
type PerformanceReport struct {
	Categories  map[string]PerformanceRecord `json:"categories"`
	Unbudgeted  CategoryTotals               `json:"unbudgeted_categories,omitempty"`
	WindowStart string                       `json:"window_start"`
	WindowEnd   string                       `json:"window_end"`
}
