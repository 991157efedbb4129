package domain

import "time"

// GoalCategory is the closed set of goal groupings.
type GoalCategory string

// Known goal categories.
const (
	GoalFitness     GoalCategory = "fitness"
	GoalHealth      GoalCategory = "health"
	GoalPersonal    GoalCategory = "personal"
	GoalAchievement GoalCategory = "achievement"
)

// GoalCategories lists every known goal category.
var GoalCategories = []GoalCategory{GoalFitness, GoalHealth, GoalPersonal, GoalAchievement}

// Normalize maps unrecognised categories to GoalAchievement, the bucket the
// UI counts strays under.
func (c GoalCategory) Normalize() GoalCategory {
	for _, known := range GoalCategories {
		if c == known {
			return c
		}
	}
	return GoalAchievement
}

// Goal is a measurable objective with explicit progress tracking.
type Goal struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Category     GoalCategory `json:"category"`
	TargetValue  float64      `json:"targetValue"`
	CurrentValue float64      `json:"currentValue"`
	Completed    bool         `json:"completed"`
	CreatedAt    time.Time    `json:"createdAt"`
}
