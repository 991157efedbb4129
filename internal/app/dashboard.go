package app

import (
	"time"

	"fittrack/internal/domain"
)

// DashboardService assembles the read-side summary shown on the landing
// screen.
type DashboardService struct {
	store *Store
}

// NewDashboardService creates a DashboardService over the store.
func NewDashboardService(store *Store) *DashboardService {
	return &DashboardService{store: store}
}

// TaskSummary is the aggregate completed/total pair for today's tasks.
type TaskSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Summary is the dashboard payload.
type Summary struct {
	Greeting           string                      `json:"greeting"`
	DayName            string                      `json:"dayName"`
	WeekNumber         int                         `json:"weekNumber"`
	Today              domain.DailyTarget          `json:"today"`
	Tasks              TaskSummary                 `json:"tasks"`
	WaterPercent       float64                     `json:"waterPercent"`
	CaloriePercent     float64                     `json:"caloriePercent"`
	QuickNotes         []domain.Note               `json:"quickNotes"`
	NoteCategoryCounts map[domain.NoteCategory]int `json:"noteCategoryCounts"`
	NotesThisWeek      int                         `json:"notesThisWeek"`
	ActiveWorkout      *domain.Workout             `json:"activeWorkout"`
	WorkoutsCompleted  int                         `json:"workoutsCompleted"`
	WorkoutProgress    float64                     `json:"workoutProgress"`
	WorkoutsThisWeek   int                         `json:"workoutsThisWeek"`
}

// Summary computes the dashboard for the given instant.
func (s *DashboardService) Summary(now time.Time) Summary {
	notes := s.store.Notes()
	workouts := s.store.Workouts()
	today := s.store.Target(domain.LocalDay(now))

	completed, total := today.Tasks.Summary()

	quick := notes
	if len(quick) > 3 {
		quick = quick[:3]
	}

	counts := make(map[domain.NoteCategory]int, len(domain.NoteCategories))
	for _, cat := range domain.NoteCategories {
		counts[cat] = 0
	}
	notesThisWeek := 0
	for _, note := range notes {
		counts[note.Category.Normalize()]++
		if domain.IsDateInCurrentWeek(note.CreatedAt, now) {
			notesThisWeek++
		}
	}

	var active *domain.Workout
	workoutsCompleted := 0
	workoutsThisWeek := 0
	for i := range workouts {
		w := workouts[i]
		if !w.Completed() {
			if active == nil {
				active = &w
			}
			continue
		}
		workoutsCompleted++
		if domain.IsDateInCurrentWeek(*w.CompletedAt, now) {
			workoutsThisWeek++
		}
	}

	return Summary{
		Greeting:           domain.TimeBasedGreeting(now),
		DayName:            domain.DayName(now),
		WeekNumber:         domain.WeekNumber(now),
		Today:              today,
		Tasks:              TaskSummary{Completed: completed, Total: total},
		WaterPercent:       domain.CalculatePercentage(today.Water.Current, today.Water.Target),
		CaloriePercent:     domain.CalculatePercentage(float64(today.Calories.Current), float64(today.Calories.Target)),
		QuickNotes:         quick,
		NoteCategoryCounts: counts,
		NotesThisWeek:      notesThisWeek,
		ActiveWorkout:      active,
		WorkoutsCompleted:  workoutsCompleted,
		WorkoutProgress:    domain.CalculatePercentage(float64(workoutsCompleted), float64(len(workouts))),
		WorkoutsThisWeek:   workoutsThisWeek,
	}
}
