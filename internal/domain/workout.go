package domain

import "time"

// Exercise is a single exercise entry within a workout. Exercises are
// append-only; there is no removal operation.
type Exercise struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category NoteCategory `json:"category"`
	Sets     int          `json:"sets"`
	Reps     int          `json:"reps"`
	Weight   float64      `json:"weight"`
}

// Workout is a training session. A nil CompletedAt means the workout is still
// active.
type Workout struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Exercises   []Exercise `json:"exercises"`
	Duration    int        `json:"duration"` // minutes
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Completed reports whether the workout has been marked complete.
func (w Workout) Completed() bool {
	return w.CompletedAt != nil
}

// ExerciseInput is the caller-supplied portion of a new exercise. Zero-valued
// sets/reps/weight are kept as zero.
type ExerciseInput struct {
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// WorkoutUpdate carries the optional fields of a partial workout update.
type WorkoutUpdate struct {
	Name     *string `json:"name,omitempty"`
	Duration *int    `json:"duration,omitempty"`
}
