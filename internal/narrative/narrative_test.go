package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/model"
)

func TestNewNarrator(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantNil bool
		wantErr bool
	}{
		{
			name:    "empty provider disables narration",
			cfg:     Config{},
			wantNil: true,
		},
		{
			name: "anthropic provider",
			cfg:  Config{Provider: "anthropic", APIKey: "test-key"},
		},
		{
			name: "openai provider",
			cfg:  Config{Provider: "openai", APIKey: "test-key"},
		},
		{
			name: "provider name is case insensitive",
			cfg:  Config{Provider: "Anthropic", APIKey: "test-key"},
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "cohere", APIKey: "test-key"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			narrator, err := NewNarrator(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, narrator)
				return
			}
			assert.NotNil(t, narrator)
		})
	}
}

func TestNewNarrator_MissingKeyError(t *testing.T) {
	_, err := NewNarrator(Config{Provider: "openai"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestBuildPrompt(t *testing.T) {
	summary := Summary{
		Type:       model.DecisionTrip,
		Subject:    "Lisbon",
		Affordable: false,
		Figures: map[string]float64{
			"trip_cost":      2500,
			"monthly_salary": 5000,
		},
	}

	prompt, err := buildPrompt(summary)
	require.NoError(t, err)

	assert.Contains(t, prompt, "trip (Lisbon)")
	assert.Contains(t, prompt, "NO, it does not fit")
	assert.Contains(t, prompt, "trip cost: 2500.00")
	assert.Contains(t, prompt, "monthly salary: 5000.00")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	summary := Summary{
		Type:       model.DecisionPurchase,
		Affordable: true,
		Figures: map[string]float64{
			"purchase_cost":    800,
			"monthly_salary":   5000,
			"salary_threshold": 1250,
			"current_savings":  3000,
		},
	}

	first, err := buildPrompt(summary)
	require.NoError(t, err)
	second, err := buildPrompt(summary)
	require.NoError(t, err)
	assert.Equal(t, first, second, "figures are sorted before rendering")
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name     string
		summary  Summary
		contains string
	}{
		{
			name: "affordable trip",
			summary: Summary{
				Type:       model.DecisionTrip,
				Affordable: true,
				Figures: map[string]float64{
					"trip_cost":        1200,
					"salary_threshold": 1500,
					"salary_fraction":  0.30,
					"current_savings":  8000,
					"required_savings": 2400,
				},
			},
			contains: "stays below 1500",
		},
		{
			name: "declined trip references the savings plan",
			summary: Summary{
				Type:       model.DecisionTrip,
				Affordable: false,
				Figures: map[string]float64{
					"trip_cost":                   2500,
					"monthly_salary":              5000,
					"alternative_monthly_savings": 416.67,
					"alternative_horizon_months":  6,
				},
			},
			contains: "Saving 417 per month",
		},
		{
			name: "declined subscription suggests dropping one",
			summary: Summary{
				Type:       model.DecisionSubscription,
				Affordable: false,
				Figures: map[string]float64{
					"new_total_monthly": 260,
					"subscription_cap":  250,
				},
			},
			contains: "dropping an existing subscription",
		},
		{
			name: "housing recommends renting",
			summary: Summary{
				Type:       model.DecisionHousing,
				Affordable: false,
				Figures: map[string]float64{
					"monthly_rent":     1500,
					"monthly_buy_cost": 2023,
				},
			},
			contains: "Renting at 1500",
		},
		{
			name: "career move flags the tradeoff",
			summary: Summary{
				Type:       model.DecisionCareerMove,
				Affordable: false,
				Figures: map[string]float64{
					"current_disposable": 2000,
					"new_disposable":     1500,
				},
			},
			contains: "non-financial upside",
		},
		{
			name: "unknown decision type still explains",
			summary: Summary{
				Type:       model.DecisionType("windfall"),
				Affordable: true,
			},
			contains: "fits within your current budget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.summary)
			assert.NotEmpty(t, got)
			assert.Contains(t, got, tt.contains)
		})
	}
}
