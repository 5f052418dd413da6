package decision

import (
	"context"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/model"
)

// TripRequest asks whether a one-off trip is affordable.
type TripRequest struct {
	Destination string
	Profile     Profile
	Cost        float64
}

// EvaluateTrip decides trip affordability. A trip must pass two gates: its
// cost stays below the configured fraction of monthly salary, and current
// savings exceed the cost times the safety multiplier. Trips deplete savings,
// so unlike purchases they carry the savings gate.
func (e *Engine) EvaluateTrip(ctx context.Context, req TripRequest) (*model.AffordabilityVerdict, error) {
	if err := validateProfile(req.Profile); err != nil {
		return nil, err
	}
	if req.Cost < 0 {
		return nil, common.NewInvalidInputError("cost", "must not be negative")
	}

	salary := req.Profile.MonthlySalary
	savings := req.Profile.CurrentSavings
	threshold := e.policy.TripSalaryFraction * salary
	requiredSavings := e.policy.TripSavingsMultiplier * req.Cost

	affordable := req.Cost < threshold && savings > requiredSavings

	impact := model.ImpactAnalysis{
		"trip_cost":        req.Cost,
		"monthly_salary":   salary,
		"salary_fraction":  e.policy.TripSalaryFraction,
		"salary_threshold": threshold,
		"required_savings": requiredSavings,
		"current_savings":  savings,
	}
	if req.Profile.Stats != nil {
		impact["monthly_expenses"] = req.Profile.Stats.MonthlyAvg
	}

	verdict := e.newVerdict(model.DecisionTrip, req.Destination, affordable, impact)
	if !affordable {
		verdict.Alternative = e.alternativePlan(req.Cost)
		impact["alternative_monthly_savings"] = verdict.Alternative.MonthlySavings
		impact["alternative_horizon_months"] = float64(verdict.Alternative.HorizonMonths)
	}

	e.narrate(ctx, verdict)
	return verdict, nil
}

// PurchaseRequest asks whether a one-off purchase is affordable.
type PurchaseRequest struct {
	Item     string
	Category string
	Profile  Profile
	Cost     float64
}

// EvaluatePurchase decides purchase affordability. Purchases only face the
// salary-fraction test: they are one-off expenses with lower opportunity
// cost than travel, so no savings reserve is required.
func (e *Engine) EvaluatePurchase(ctx context.Context, req PurchaseRequest) (*model.AffordabilityVerdict, error) {
	if err := validateProfile(req.Profile); err != nil {
		return nil, err
	}
	if req.Cost < 0 {
		return nil, common.NewInvalidInputError("cost", "must not be negative")
	}

	salary := req.Profile.MonthlySalary
	threshold := e.policy.PurchaseSalaryFraction * salary
	affordable := req.Cost < threshold

	impact := model.ImpactAnalysis{
		"purchase_cost":    req.Cost,
		"monthly_salary":   salary,
		"salary_fraction":  e.policy.PurchaseSalaryFraction,
		"salary_threshold": threshold,
		"current_savings":  req.Profile.CurrentSavings,
	}
	if req.Profile.Budget != nil {
		if line, ok := req.Profile.Budget.CategoryBudgets[req.Category]; ok {
			impact["category_budget"] = line
		}
	}

	verdict := e.newVerdict(model.DecisionPurchase, req.Item, affordable, impact)
	if !affordable {
		verdict.Alternative = e.alternativePlan(req.Cost)
		impact["alternative_monthly_savings"] = verdict.Alternative.MonthlySavings
		impact["alternative_horizon_months"] = float64(verdict.Alternative.HorizonMonths)
	}

	e.narrate(ctx, verdict)
	return verdict, nil
}

func validateProfile(p Profile) error {
	if p.MonthlySalary <= 0 {
		return common.NewInvalidInputError("monthly_salary", "must be positive")
	}
	if p.CurrentSavings < 0 {
		return common.NewInvalidInputError("current_savings", "must not be negative")
	}
	return nil
}
