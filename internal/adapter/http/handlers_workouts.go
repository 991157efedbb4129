package adapthttp

import (
	"errors"
	"io"
	"net/http"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.store.Workouts()})
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	workout, ok := s.store.Workout(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, app.ErrWorkoutNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"workout": workout})
}

func (s *Server) handleAddWorkout(w http.ResponseWriter, r *http.Request) {
	var in app.WorkoutInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	workout, err := s.store.AddWorkout(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"workout": workout})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	// The name is optional; an empty body starts a date-named session.
	if err := parseJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.store.StartSession(r.Context(), req.Name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	var update domain.WorkoutUpdate
	if err := parseJSON(r, &update); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	workout, err := s.store.UpdateWorkout(r.Context(), r.PathValue("id"), update)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"workout": workout})
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	var in domain.ExerciseInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	workout, err := s.store.AddExercise(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"workout": workout})
}

func (s *Server) handleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	workout, err := s.store.CompleteWorkout(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"workout": workout})
}

func (s *Server) handleExportWorkout(w http.ResponseWriter, r *http.Request) {
	if s.export == nil {
		http.Error(w, "export disabled", http.StatusNotFound)
		return
	}

	remoteID, err := s.export.ExportWorkout(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"remoteId": remoteID})
}
