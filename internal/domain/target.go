package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Default daily targets and the size of one glass of water.
const (
	DefaultWaterTargetLiters = 2.0
	DefaultCalorieTarget     = 2500
	GlassLiters              = 0.25
)

// WaterProgress tracks water intake in liters against a daily target.
type WaterProgress struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

// CalorieProgress tracks calorie intake against a daily target.
type CalorieProgress struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// Task is a single to-do item attached to a daily target record.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskList is the canonical task model. An earlier storage revision persisted
// tasks as an aggregate {completed,total} counter pair; UnmarshalJSON migrates
// such records into placeholder tasks so old blobs keep loading.
type TaskList []Task

// legacyTaskCounter is the aggregate shape from the counter revision.
type legacyTaskCounter struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// UnmarshalJSON accepts either a task array or a legacy counter object.
func (l *TaskList) UnmarshalJSON(data []byte) error {
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err == nil {
		*l = tasks
		return nil
	}

	var legacy legacyTaskCounter
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	*l = migrateTaskCounter(legacy)
	return nil
}

func migrateTaskCounter(c legacyTaskCounter) TaskList {
	if c.Total <= 0 {
		return TaskList{}
	}
	now := time.Now()
	tasks := make(TaskList, 0, c.Total)
	for i := 0; i < c.Total; i++ {
		tasks = append(tasks, Task{
			ID:        uuid.NewString(),
			Title:     "Migrated task",
			Completed: i < c.Completed,
			CreatedAt: now,
		})
	}
	return tasks
}

// Summary returns the aggregate completed/total counts derived from the list,
// serving consumers of the old counter model.
func (l TaskList) Summary() (completed, total int) {
	for _, t := range l {
		if t.Completed {
			completed++
		}
	}
	return completed, len(l)
}

// DailyTarget is the per-calendar-date progress record, keyed by the local
// date in YYYY-MM-DD form.
type DailyTarget struct {
	Date     string          `json:"date"`
	Water    WaterProgress   `json:"water"`
	Calories CalorieProgress `json:"calories"`
	Tasks    TaskList        `json:"tasks"`
}

// NewDailyTarget returns the canonical default record for a date. Every
// "default if missing" fallback in the codebase goes through here.
func NewDailyTarget(date string) DailyTarget {
	return DailyTarget{
		Date:     date,
		Water:    WaterProgress{Current: 0, Target: DefaultWaterTargetLiters},
		Calories: CalorieProgress{Current: 0, Target: DefaultCalorieTarget},
		Tasks:    TaskList{},
	}
}

// DailyTargetUpdate carries the optional fields of a partial daily-target
// update.
type DailyTargetUpdate struct {
	Water    *WaterProgress   `json:"water,omitempty"`
	Calories *CalorieProgress `json:"calories,omitempty"`
	Tasks    *TaskList        `json:"tasks,omitempty"`
}

// LocalDay formats t as the device-local YYYY-MM-DD key used to index daily
// targets.
func LocalDay(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}
