package decision

import (
	"context"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/model"
)

// CareerMoveRequest evaluates the financial impact of a job change.
// CostOfLivingDelta is the added (or, when negative, saved) monthly living
// cost of the move, e.g. from relocation.
type CareerMoveRequest struct {
	Profile           Profile
	NewSalary         float64
	CostOfLivingDelta float64
}

// EvaluateCareerMove compares the new salary, net of the cost-of-living
// delta, against current disposable income. A move that reduces disposable
// income is flagged as requiring explicit confirmation rather than refused
// outright: salary is not the only reason to change jobs.
func (e *Engine) EvaluateCareerMove(ctx context.Context, req CareerMoveRequest) (*model.AffordabilityVerdict, error) {
	if err := validateProfile(req.Profile); err != nil {
		return nil, err
	}
	if req.NewSalary <= 0 {
		return nil, common.NewInvalidInputError("new_salary", "must be positive")
	}

	expenses := currentMonthlyExpenses(req.Profile)
	currentDisposable := req.Profile.MonthlySalary - expenses
	newDisposable := req.NewSalary - expenses - req.CostOfLivingDelta
	improved := newDisposable >= currentDisposable

	impact := model.ImpactAnalysis{
		"current_salary":       req.Profile.MonthlySalary,
		"new_salary":           req.NewSalary,
		"monthly_expenses":     expenses,
		"cost_of_living_delta": req.CostOfLivingDelta,
		"current_disposable":   currentDisposable,
		"new_disposable":       newDisposable,
		"disposable_change":    newDisposable - currentDisposable,
	}

	verdict := e.newVerdict(model.DecisionCareerMove, "", improved, impact)
	verdict.RequiresConfirmation = !improved

	e.narrate(ctx, verdict)
	return verdict, nil
}

// currentMonthlyExpenses prefers observed spending stats, falls back to the
// built budget's essential plus discretionary allocation, and defaults to
// zero when neither is supplied.
func currentMonthlyExpenses(p Profile) float64 {
	if p.Stats != nil {
		return p.Stats.MonthlyAvg
	}
	if p.Budget != nil {
		return p.Budget.EssentialExpenses + p.Budget.DiscretionaryBudget
	}
	return 0
}
