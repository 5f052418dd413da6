// Package goals projects savings timelines for named financial goals.
package goals

import (
	"fmt"
	"math"
	"time"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/model"
)

// Timelines computes a GoalTimeline per goal from the monthly savings
// capacity. Pure function: no side effects, no external calls.
//
// With positive capacity each goal gets months-to-target (rounded to one
// decimal) and a projected target date. With zero or negative capacity every
// goal is reported as blocked; the two shapes are never mixed.
func Timelines(goals map[string]float64, capacity float64, now time.Time) (map[string]model.GoalTimeline, error) {
	for name, target := range goals {
		if target <= 0 {
			return nil, common.NewInvalidInputError(
				fmt.Sprintf("goals[%s]", name),
				"target amount must be positive")
		}
	}

	timelines := make(map[string]model.GoalTimeline, len(goals))
	for name, target := range goals {
		if capacity <= 0 {
			timelines[name] = model.GoalTimeline{
				TargetAmount: target,
				Status:       model.GoalStatusBlocked,
			}
			continue
		}

		months := math.Round(target/capacity*10) / 10
		timelines[name] = model.GoalTimeline{
			TargetAmount:         target,
			MonthlySavingsNeeded: capacity,
			MonthsToGoal:         months,
			TargetDate:           targetDate(now, months),
		}
	}

	return timelines, nil
}

// targetDate projects now forward by months at 30 days per month, formatted
// as YYYY-MM.
func targetDate(now time.Time, months float64) string {
	days := time.Duration(months * 30 * 24 * float64(time.Hour))
	return now.Add(days).Format("2006-01")
}
