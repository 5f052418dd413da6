package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/castlewood/finsight/internal/model"
)

func TestRenderStats(t *testing.T) {
	stats := &model.SpendingStats{
		Categories: model.MonthlyAverage{
			"rent":       1500,
			"dining_out": 220,
		},
		Trends: map[string]model.Trend{
			"dining_out": model.TrendIncreasing,
		},
		IrregularExpenses: []model.IrregularExpense{
			{Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Category: "medical", Amount: 800, Description: "Dental work"},
		},
		IncomeStability: model.IncomeStable,
		MonthlyAvg:      1720,
		FixedExpenses:   1500,
		VariableAvg:     220,
	}

	out := RenderStats(stats)

	assert.Contains(t, out, "Spending Patterns")
	assert.Contains(t, out, "$1720.00")
	assert.Contains(t, out, "rent")
	assert.Contains(t, out, "stable")
	assert.Contains(t, out, "Irregular expenses")
	assert.Contains(t, out, "Dental work")
}

func TestRenderBudget(t *testing.T) {
	budget := &model.Budget{
		MonthlySalary:       5000,
		EssentialExpenses:   1900,
		DiscretionaryBudget: 2170,
		SavingsTarget:       930,
		CategoryBudgets:     model.MonthlyAverage{"rent": 1500},
		GoalsTimeline: map[string]model.GoalTimeline{
			"vacation": {TargetAmount: 1200, MonthsToGoal: 1.3, TargetDate: "2026-09"},
		},
	}

	out := RenderBudget(budget)

	assert.Contains(t, out, "Monthly Budget")
	assert.Contains(t, out, "$5000.00")
	assert.Contains(t, out, "$930.00")
	assert.Contains(t, out, "1.3 months (by 2026-09)")
	assert.NotContains(t, out, "Shortfall")
}

func TestRenderBudget_Shortfall(t *testing.T) {
	budget := &model.Budget{
		MonthlySalary:     1500,
		EssentialExpenses: 1900,
		Shortfall:         400,
		CategoryBudgets:   model.MonthlyAverage{"rent": 1500},
	}

	out := RenderBudget(budget)
	assert.Contains(t, out, "Shortfall")
	assert.Contains(t, out, "essentials exceed salary")
}

func TestRenderTimelines_Blocked(t *testing.T) {
	out := RenderTimelines(map[string]model.GoalTimeline{
		"vacation": {TargetAmount: 1200, Status: model.GoalStatusBlocked},
	})
	assert.Contains(t, out, model.GoalStatusBlocked)
}

func TestRenderPerformance(t *testing.T) {
	report := &model.PerformanceReport{
		Categories: map[string]model.PerformanceRecord{
			"groceries":  {Budgeted: 300, Actual: 280, Difference: 20, PercentageUsed: 93.33, Status: model.StatusUnder},
			"dining_out": {Budgeted: 150, Actual: 180, Difference: -30, PercentageUsed: 120, Status: model.StatusOver},
		},
		Unbudgeted:  model.CategoryTotals{"electronics": 450},
		WindowStart: "2026-07-01",
		WindowEnd:   "2026-07-31",
	}

	out := RenderPerformance(report)

	assert.Contains(t, out, "2026-07-01 to 2026-07-31")
	assert.Contains(t, out, "93.33")
	assert.Contains(t, out, "over")
	assert.Contains(t, out, "Unbudgeted spending")
	assert.Contains(t, out, "electronics")
}

func TestRenderVerdict(t *testing.T) {
	verdict := &model.AffordabilityVerdict{
		Type:       model.DecisionTrip,
		Subject:    "Lisbon",
		Affordable: false,
		Reasoning:  "Does not fit this month.",
		Impact:     model.ImpactAnalysis{"trip_cost": 2500},
		Alternative: &model.AlternativePlan{
			Description:    "Save 416.67/month for 6 months",
			MonthlySavings: 416.67,
			HorizonMonths:  6,
		},
	}

	out := RenderVerdict(verdict)

	assert.Contains(t, out, "Trip: Lisbon")
	assert.Contains(t, out, "Not affordable")
	assert.Contains(t, out, "Does not fit this month.")
	assert.Contains(t, out, "Save 416.67/month for 6 months")
	assert.Contains(t, out, "trip_cost")
}

func TestRenderVerdict_Recommendation(t *testing.T) {
	verdict := &model.AffordabilityVerdict{
		Type:           model.DecisionHousing,
		Affordable:     true,
		Recommendation: "buy",
		Impact:         model.ImpactAnalysis{"monthly_rent": 2600},
	}

	out := RenderVerdict(verdict)
	assert.Contains(t, out, "Affordable")
	assert.Contains(t, out, "Recommendation")
	assert.Contains(t, out, "buy")
}

func TestRenderInsights(t *testing.T) {
	out := RenderInsights([]string{"first insight", "second insight"})
	assert.Contains(t, out, "Spending Insights")
	assert.Contains(t, out, "• first insight")
	assert.Contains(t, out, "• second insight")
}
