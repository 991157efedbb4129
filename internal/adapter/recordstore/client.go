// Package recordstore is the HTTP client for the external workout/exercise
// record service. The service's contract is fixed; this package only consumes
// it.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

// Client talks to the record store over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ app.RecordStore = (*Client)(nil)

// New creates a Client for the record store at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Workout is a remote workout row.
type Workout struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
}

// Exercise is a remote exercise row.
type Exercise struct {
	ID        int64   `json:"id"`
	WorkoutID int64   `json:"workout_id"`
	Name      string  `json:"name"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
}

type okResponse struct {
	OK    bool   `json:"ok"`
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

// Health checks the record store's /health endpoint.
func (c *Client) Health(ctx context.Context) error {
	var out okResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return err
	}
	if !out.OK {
		return fmt.Errorf("record store unhealthy: %s", out.Error)
	}
	return nil
}

// CreateWorkout creates a remote workout for the given local date and returns
// its id.
func (c *Client) CreateWorkout(ctx context.Context, date, note string) (int64, error) {
	body := map[string]string{"date": date}
	if note != "" {
		body["note"] = note
	}
	var out okResponse
	if err := c.do(ctx, http.MethodPost, "/workouts", body, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// ListWorkouts returns the remote workouts, newest first.
func (c *Client) ListWorkouts(ctx context.Context) ([]Workout, error) {
	var out []Workout
	if err := c.do(ctx, http.MethodGet, "/workouts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddExercise appends an exercise to a remote workout and returns its id.
func (c *Client) AddExercise(ctx context.Context, workoutID int64, ex domain.ExerciseInput) (int64, error) {
	body := map[string]any{"name": ex.Name, "sets": ex.Sets, "reps": ex.Reps, "weight": ex.Weight}
	var out okResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/workouts/%d/exercises", workoutID), body, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// ListExercises returns a remote workout's exercises in insertion order.
func (c *Client) ListExercises(ctx context.Context, workoutID int64) ([]Exercise, error) {
	var out []Exercise
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/workouts/%d/exercises", workoutID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("record store: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		var fail okResponse
		if err := json.NewDecoder(resp.Body).Decode(&fail); err == nil && fail.Error != "" {
			return fmt.Errorf("record store: %s (status %d)", fail.Error, resp.StatusCode)
		}
		return fmt.Errorf("record store: unexpected status %d", resp.StatusCode)
	}
	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("record store: decode response: %w", err)
	}
	return nil
}
