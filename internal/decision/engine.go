// Package decision evaluates discrete affordability decisions (trips,
// purchases, subscriptions, housing, career moves) against a user's salary,
// savings and spending state.
//
// Every verdict is computed from its numeric inputs alone. Narrative
// enrichment is best-effort: a failing or absent narrator degrades to a
// templated explanation and never fails the verdict.
package decision

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/castlewood/finsight/internal/config"
	"github.com/castlewood/finsight/internal/model"
	"github.com/castlewood/finsight/internal/narrative"
)

const defaultNarrationTimeout = 10 * time.Second

// Profile is the caller-supplied financial snapshot a decision is evaluated
// against. Stats and Budget are optional context; Salary and savings drive
// the core rules.
type Profile struct {
	Stats          *model.SpendingStats
	Budget         *model.Budget
	MonthlySalary  float64
	CurrentSavings float64
}

// Engine evaluates affordability decisions.
type Engine struct {
	narrator narrative.Narrator
	policy   config.Policy
	timeout  time.Duration
}

// New creates an Engine. The narrator may be nil, in which case all
// reasoning is produced by the deterministic fallback templates.
func New(policy config.Policy, narrator narrative.Narrator) *Engine {
	return &Engine{
		policy:   policy,
		narrator: narrator,
		timeout:  defaultNarrationTimeout,
	}
}

// NewWithTimeout creates an Engine with a custom narration timeout.
func NewWithTimeout(policy config.Policy, narrator narrative.Narrator, timeout time.Duration) *Engine {
	e := New(policy, narrator)
	if timeout > 0 {
		e.timeout = timeout
	}
	return e
}

// newVerdict assembles the common verdict fields.
func (e *Engine) newVerdict(decisionType model.DecisionType, subject string, affordable bool, impact model.ImpactAnalysis) *model.AffordabilityVerdict {
	return &model.AffordabilityVerdict{
		ID:         uuid.New().String(),
		Type:       decisionType,
		Subject:    subject,
		Affordable: affordable,
		Impact:     impact,
		DecidedAt:  time.Now(),
	}
}

// narrate fills in the verdict's reasoning, preferring the external narrator
// and falling back to the templated explanation on any failure. Narration
// errors are absorbed here and never propagate.
func (e *Engine) narrate(ctx context.Context, verdict *model.AffordabilityVerdict) {
	summary := narrative.Summary{
		Type:       verdict.Type,
		Subject:    verdict.Subject,
		Affordable: verdict.Affordable,
		Figures:    verdict.Impact,
	}

	if e.narrator == nil {
		verdict.Reasoning = narrative.Fallback(summary)
		return
	}

	narrCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	reasoning, err := e.narrator.Explain(narrCtx, summary)
	if err != nil {
		slog.Warn("Narrative enrichment failed, using fallback reasoning",
			"decision_type", verdict.Type,
			"error", err)
		verdict.Reasoning = narrative.Fallback(summary)
		return
	}

	verdict.Reasoning = reasoning
}

// alternativePlan builds the recommended savings path for a declined
// decision: spread the cost over the configured horizon.
func (e *Engine) alternativePlan(cost float64) *model.AlternativePlan {
	horizon := e.policy.SavingsHorizonMonths
	if horizon <= 0 {
		horizon = 6
	}
	monthly := cost / float64(horizon)
	return &model.AlternativePlan{
		MonthlySavings: monthly,
		HorizonMonths:  horizon,
		Description:    fmt.Sprintf("Save %.2f/month for %d months", monthly, horizon),
	}
}
