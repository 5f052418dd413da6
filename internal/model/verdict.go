package model

import "time"

// DecisionType tags the kind of affordability decision a verdict answers.
type DecisionType string

// Decision types.
const (
	DecisionTrip         DecisionType = "trip"
	DecisionPurchase     DecisionType = "purchase"
	DecisionSubscription DecisionType = "subscription"
	DecisionHousing      DecisionType = "housing"
	DecisionCareerMove   DecisionType = "career_move"
)

// ImpactAnalysis carries every concrete number used by a decision rule, so
// callers and tests can verify the arithmetic independent of any narrative.
type ImpactAnalysis map[string]float64

// AlternativePlan is a recommended savings path offered when a decision is
// declined.
type AlternativePlan struct {
	Description    string  `json:"description"`
	MonthlySavings float64 `json:"monthly_savings"`
	HorizonMonths  int     `json:"horizon_months"`
}

// AffordabilityVerdict is the structured outcome of one affordability query.
// Verdicts are produced fresh per query and never cached: they depend on live
// salary, savings and spending state.
//
// Reasoning may be empty or templated when the narrative service is
// unavailable; Affordable and Impact are always populated offline.
type AffordabilityVerdict struct {
	DecidedAt            time.Time        `json:"decided_at"`
	ID                   string           `json:"id"`
	Type                 DecisionType     `json:"type"`
	Subject              string           `json:"subject,omitempty"`
	Reasoning            string           `json:"reasoning,omitempty"`
	Recommendation       string           `json:"recommendation,omitempty"`
	Impact               ImpactAnalysis   `json:"impact_analysis"`
	Alternative          *AlternativePlan `json:"alternative_plan,omitempty"`
	Affordable           bool             `json:"affordable"`
	RequiresConfirmation bool             `json:"requires_confirmation,omitempty"`
}
