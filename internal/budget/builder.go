// Package budget builds realistic monthly budgets from observed spending and
// tracks actual performance against them.
package budget

import (
	"time"

	"github.com/castlewood/finsight/internal/aggregate"
	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/config"
	"github.com/castlewood/finsight/internal/goals"
	"github.com/castlewood/finsight/internal/model"
)

// Builder derives budgets from spending history. Now is injectable so that
// goal target dates are deterministic under test.
type Builder struct {
	now    func() time.Time
	policy config.Policy
}

// NewBuilder creates a Builder with the given policy.
func NewBuilder(policy config.Policy) *Builder {
	return &Builder{policy: policy, now: time.Now}
}

// NewBuilderAt creates a Builder with a fixed clock.
func NewBuilderAt(policy config.Policy, now func() time.Time) *Builder {
	return &Builder{policy: policy, now: now}
}

// Build derives a Budget from salary, spending history and goals. The split
// follows actual behavior, not idealistic percentages: essentials are the
// observed monthly averages of the recognized essential categories, the
// savings target is a configurable share of what remains, and every observed
// non-essential category keeps its historical average as its budget line.
//
// When essentials exceed the salary, the discretionary budget and savings
// target are both zero and the uncovered magnitude is surfaced on
// Budget.Shortfall instead of a negative number.
func (b *Builder) Build(salary float64, history []model.Transaction, goalTargets map[string]float64) (*model.Budget, error) {
	if salary <= 0 {
		return nil, common.NewInvalidInputError("salary", "must be positive")
	}

	spending := make([]model.Transaction, 0, len(history))
	for _, t := range history {
		if !t.IsIncome() {
			spending = append(spending, t)
		}
	}

	averages, err := aggregate.Averages(spending, aggregate.Window{})
	if err != nil {
		return nil, err
	}

	var essential float64
	for cat, avg := range averages {
		if model.IsEssential(cat) {
			essential += avg
		}
	}

	budget := &model.Budget{
		MonthlySalary:     salary,
		EssentialExpenses: essential,
		CategoryBudgets:   averages,
	}

	discretionaryTotal := salary - essential
	if discretionaryTotal < 0 {
		budget.Shortfall = -discretionaryTotal
	} else {
		budget.SavingsTarget = discretionaryTotal * b.policy.SavingsRate
		budget.DiscretionaryBudget = discretionaryTotal - budget.SavingsTarget
	}

	timeline, err := goals.Timelines(goalTargets, budget.SavingsTarget, b.now())
	if err != nil {
		return nil, err
	}
	budget.GoalsTimeline = timeline

	return budget, nil
}
