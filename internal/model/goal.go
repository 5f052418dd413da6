package model

// Goal is a named savings target.
type Goal struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
}

// GoalStatusBlocked marks a goal that cannot progress because there is no
// savings capacity to allocate.
const GoalStatusBlocked = "blocked: no savings capacity"

// GoalTimeline is the projected path to a goal. Exactly one of two shapes is
// produced: a full timeline when savings capacity is positive, or a blocked
// status with only the target amount when it is not. Never a mix.
type GoalTimeline struct {
	Status               string  `json:"status,omitempty"`
	TargetDate           string  `json:"target_date,omitempty"`
	TargetAmount         float64 `json:"target_amount"`
	MonthlySavingsNeeded float64 `json:"monthly_savings_needed,omitempty"`
	MonthsToGoal         float64 `json:"months_to_goal,omitempty"`
}

// Blocked reports whether the goal has no savings capacity behind it.
func (g GoalTimeline) Blocked() bool {
	return g.Status == GoalStatusBlocked
}
