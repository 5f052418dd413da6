package decision

import (
	"context"
	"math"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/model"
)

// Housing recommendations.
const (
	RecommendRent = "rent"
	RecommendBuy  = "buy"
)

// HousingRequest compares renting against buying.
type HousingRequest struct {
	Profile       Profile
	MonthlyRent   float64
	PurchasePrice float64
	DownPayment   float64
}

// EvaluateHousing compares the monthly rent against the amortized monthly
// cost of buying at the configured mortgage rate and term. Buying is only
// ever recommended when the down payment covers the minimum fraction of the
// purchase price; below that the verdict is rent regardless of the monthly
// comparison.
func (e *Engine) EvaluateHousing(ctx context.Context, req HousingRequest) (*model.AffordabilityVerdict, error) {
	if err := validateProfile(req.Profile); err != nil {
		return nil, err
	}
	if req.MonthlyRent < 0 {
		return nil, common.NewInvalidInputError("monthly_rent", "must not be negative")
	}
	if req.PurchasePrice <= 0 {
		return nil, common.NewInvalidInputError("purchase_price", "must be positive")
	}
	if req.DownPayment < 0 {
		return nil, common.NewInvalidInputError("down_payment", "must not be negative")
	}

	minDown := e.policy.MinDownPaymentFraction * req.PurchasePrice
	principal := math.Max(0, req.PurchasePrice-req.DownPayment)
	monthlyBuy := amortizedMonthlyCost(principal, e.policy.MortgageAnnualRate, e.policy.MortgageTermYears)

	downPaymentAdequate := req.DownPayment >= minDown
	buyRecommended := downPaymentAdequate && monthlyBuy < req.MonthlyRent

	impact := model.ImpactAnalysis{
		"monthly_rent":         req.MonthlyRent,
		"purchase_price":       req.PurchasePrice,
		"down_payment":         req.DownPayment,
		"min_down_payment":     minDown,
		"loan_principal":       principal,
		"mortgage_annual_rate": e.policy.MortgageAnnualRate,
		"mortgage_term_years":  float64(e.policy.MortgageTermYears),
		"monthly_buy_cost":     monthlyBuy,
	}

	verdict := e.newVerdict(model.DecisionHousing, "", buyRecommended, impact)
	verdict.Recommendation = RecommendRent
	if buyRecommended {
		verdict.Recommendation = RecommendBuy
	}

	e.narrate(ctx, verdict)
	return verdict, nil
}

// amortizedMonthlyCost is the standard fixed-rate mortgage payment for a
// principal over a term. A zero rate degrades to straight-line division;
// a zero principal costs nothing.
func amortizedMonthlyCost(principal, annualRate float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}

	n := float64(termYears * 12)
	if annualRate == 0 {
		return principal / n
	}

	r := annualRate / 12
	return principal * r / (1 - math.Pow(1+r, -n))
}
