// Package config provides configuration utilities for the application.
package config

import "github.com/spf13/viper"

// Policy holds every tunable threshold used by the analysis and decision
// layers. The defaults mirror common budgeting guidance but are deliberately
// configuration, not hard contracts.
type Policy struct {
	// SavingsRate is the share of discretionary income set aside as the
	// savings target.
	SavingsRate float64

	// TrendThreshold is the relative change between window halves above
	// which a category trend counts as increasing or decreasing.
	TrendThreshold float64

	// IrregularMultiplier flags a transaction as irregular when its amount
	// exceeds this multiple of the category's monthly average.
	IrregularMultiplier float64

	// IncomeCVThreshold is the coefficient-of-variation bound below which
	// income is classified as stable.
	IncomeCVThreshold float64

	// RecurringCVThreshold classifies a category as recurring when the
	// variance of its month totals stays below this coefficient of variation.
	RecurringCVThreshold float64

	// TripSalaryFraction caps a trip at this fraction of monthly salary.
	TripSalaryFraction float64

	// TripSavingsMultiplier requires savings above cost times this factor
	// before a trip is affordable.
	TripSavingsMultiplier float64

	// PurchaseSalaryFraction caps a one-off purchase at this fraction of
	// monthly salary. Purchases carry no savings gate: they do not deplete
	// reserves the way travel does.
	PurchaseSalaryFraction float64

	// SubscriptionSalaryFraction caps total recurring subscription spend.
	SubscriptionSalaryFraction float64

	// MinDownPaymentFraction gates a buy recommendation on the down payment
	// covering at least this share of the purchase price.
	MinDownPaymentFraction float64

	// MortgageAnnualRate and MortgageTermYears parameterize the amortized
	// monthly cost used in rent-vs-buy comparisons.
	MortgageAnnualRate float64
	MortgageTermYears  int

	// SavingsHorizonMonths is the default horizon for alternative plans.
	SavingsHorizonMonths int
}

// DefaultPolicy returns the policy with all default thresholds.
func DefaultPolicy() Policy {
	return Policy{
		SavingsRate:                0.30,
		TrendThreshold:             0.10,
		IrregularMultiplier:        2.0,
		IncomeCVThreshold:          0.10,
		RecurringCVThreshold:       0.25,
		TripSalaryFraction:         0.30,
		TripSavingsMultiplier:      2.0,
		PurchaseSalaryFraction:     0.25,
		SubscriptionSalaryFraction: 0.05,
		MinDownPaymentFraction:     0.10,
		MortgageAnnualRate:         0.065,
		MortgageTermYears:          30,
		SavingsHorizonMonths:       6,
	}
}

// LoadPolicy reads policy overrides from Viper on top of the defaults.
func LoadPolicy() Policy {
	p := DefaultPolicy()

	setFloat := func(key string, dst *float64) {
		if viper.IsSet(key) {
			*dst = viper.GetFloat64(key)
		}
	}

	setFloat("policy.savings_rate", &p.SavingsRate)
	setFloat("policy.trend_threshold", &p.TrendThreshold)
	setFloat("policy.irregular_multiplier", &p.IrregularMultiplier)
	setFloat("policy.income_cv_threshold", &p.IncomeCVThreshold)
	setFloat("policy.recurring_cv_threshold", &p.RecurringCVThreshold)
	setFloat("policy.trip_salary_fraction", &p.TripSalaryFraction)
	setFloat("policy.trip_savings_multiplier", &p.TripSavingsMultiplier)
	setFloat("policy.purchase_salary_fraction", &p.PurchaseSalaryFraction)
	setFloat("policy.subscription_salary_fraction", &p.SubscriptionSalaryFraction)
	setFloat("policy.min_down_payment_fraction", &p.MinDownPaymentFraction)
	setFloat("policy.mortgage_annual_rate", &p.MortgageAnnualRate)

	if viper.IsSet("policy.mortgage_term_years") {
		p.MortgageTermYears = viper.GetInt("policy.mortgage_term_years")
	}
	if viper.IsSet("policy.savings_horizon_months") {
		p.SavingsHorizonMonths = viper.GetInt("policy.savings_horizon_months")
	}

	return p
}
