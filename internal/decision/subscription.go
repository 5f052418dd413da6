package decision

import (
	"context"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/model"
)

// Subscription is an existing recurring monthly cost.
type Subscription struct {
	Name        string  `json:"name"`
	MonthlyCost float64 `json:"monthly_cost"`
}

// SubscriptionRequest asks whether adding a recurring subscription is
// advisable.
type SubscriptionRequest struct {
	Name        string
	Existing    []Subscription
	Profile     Profile
	MonthlyCost float64
}

// EvaluateSubscription flags a new subscription as inadvisable when it would
// push total recurring subscription spend past the configured fraction of
// monthly salary.
func (e *Engine) EvaluateSubscription(ctx context.Context, req SubscriptionRequest) (*model.AffordabilityVerdict, error) {
	if err := validateProfile(req.Profile); err != nil {
		return nil, err
	}
	if req.MonthlyCost < 0 {
		return nil, common.NewInvalidInputError("monthly_cost", "must not be negative")
	}
	for _, sub := range req.Existing {
		if sub.MonthlyCost < 0 {
			return nil, common.NewInvalidInputError("existing["+sub.Name+"]", "monthly cost must not be negative")
		}
	}

	var existingTotal float64
	for _, sub := range req.Existing {
		existingTotal += sub.MonthlyCost
	}

	salary := req.Profile.MonthlySalary
	budgetCap := e.policy.SubscriptionSalaryFraction * salary
	newTotal := existingTotal + req.MonthlyCost
	advisable := newTotal <= budgetCap

	impact := model.ImpactAnalysis{
		"monthly_cost":          req.MonthlyCost,
		"existing_monthly":      existingTotal,
		"new_total_monthly":     newTotal,
		"subscription_cap":      budgetCap,
		"subscription_fraction": e.policy.SubscriptionSalaryFraction,
		"monthly_salary":        salary,
		"subscription_count":    float64(len(req.Existing) + 1),
	}

	verdict := e.newVerdict(model.DecisionSubscription, req.Name, advisable, impact)
	e.narrate(ctx, verdict)
	return verdict, nil
}
