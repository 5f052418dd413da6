package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, 0.30, p.SavingsRate)
	assert.Equal(t, 0.10, p.TrendThreshold)
	assert.Equal(t, 2.0, p.IrregularMultiplier)
	assert.Equal(t, 0.30, p.TripSalaryFraction)
	assert.Equal(t, 2.0, p.TripSavingsMultiplier)
	assert.Equal(t, 0.25, p.PurchaseSalaryFraction)
	assert.Equal(t, 0.05, p.SubscriptionSalaryFraction)
	assert.Equal(t, 0.10, p.MinDownPaymentFraction)
	assert.Equal(t, 0.065, p.MortgageAnnualRate)
	assert.Equal(t, 30, p.MortgageTermYears)
	assert.Equal(t, 6, p.SavingsHorizonMonths)
}

func TestLoadPolicy_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("policy.savings_rate", 0.25)
	viper.Set("policy.mortgage_term_years", 15)

	p := LoadPolicy()
	assert.Equal(t, 0.25, p.SavingsRate)
	assert.Equal(t, 15, p.MortgageTermYears)
	assert.Equal(t, 0.10, p.TrendThreshold, "untouched keys keep defaults")
}

func TestExpandPath(t *testing.T) {
	t.Setenv("FINSIGHT_TEST_DIR", "/data")

	assert.Equal(t, "/data/finsight.db", ExpandPath("$FINSIGHT_TEST_DIR/finsight.db"))
	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/absolute/path.db", ExpandPath("/absolute/path.db"))
	assert.NotContains(t, ExpandPath("~/finsight.db"), "~")
}

func TestDefaultDatabasePath(t *testing.T) {
	path := DefaultDatabasePath()
	assert.Contains(t, path, "finsight.db")
}
