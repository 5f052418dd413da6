package goals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/model"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestTimelines(t *testing.T) {
	timelines, err := Timelines(map[string]float64{"emergency_fund": 3000}, 500, testNow)
	require.NoError(t, err)

	tl := timelines["emergency_fund"]
	assert.Equal(t, 3000.0, tl.TargetAmount)
	assert.Equal(t, 500.0, tl.MonthlySavingsNeeded)
	assert.Equal(t, 6.0, tl.MonthsToGoal)
	assert.Equal(t, "2027-01", tl.TargetDate, "6 months at 30 days each from Aug 1")
	assert.False(t, tl.Blocked())
}

func TestTimelines_RoundsToOneDecimal(t *testing.T) {
	timelines, err := Timelines(map[string]float64{"laptop": 1000}, 300, testNow)
	require.NoError(t, err)
	assert.Equal(t, 3.3, timelines["laptop"].MonthsToGoal)
}

func TestTimelines_ZeroCapacityBlocksEveryGoal(t *testing.T) {
	goals := map[string]float64{
		"emergency_fund": 3000,
		"vacation":       1200,
	}

	for _, capacity := range []float64{0, -250} {
		timelines, err := Timelines(goals, capacity, testNow)
		require.NoError(t, err)
		require.Len(t, timelines, 2)

		for name, tl := range timelines {
			assert.True(t, tl.Blocked(), "goal %s should be blocked", name)
			assert.Equal(t, model.GoalStatusBlocked, tl.Status)
			assert.Equal(t, goals[name], tl.TargetAmount)
			// The blocked shape carries no projection fields.
			assert.Zero(t, tl.MonthsToGoal)
			assert.Zero(t, tl.MonthlySavingsNeeded)
			assert.Empty(t, tl.TargetDate)
		}
	}
}

func TestTimelines_InvalidTarget(t *testing.T) {
	tests := []struct {
		name   string
		target float64
	}{
		{name: "zero target", target: 0},
		{name: "negative target", target: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Timelines(map[string]float64{"bad": tt.target}, 500, testNow)
			require.Error(t, err)
			assert.True(t, common.IsInvalidInput(err))
		})
	}
}

func TestTimelines_EmptyGoals(t *testing.T) {
	timelines, err := Timelines(nil, 500, testNow)
	require.NoError(t, err)
	assert.Empty(t, timelines)
}
