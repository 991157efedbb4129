package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"fittrack/internal/domain"
)

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"target": s.today.Target()})
}

func (s *Server) handleTodayWater(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Liters float64 `json:"liters"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	target, err := s.today.UpdateWater(r.Context(), req.Liters)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"target": target})
}

func (s *Server) handleAddGlass(w http.ResponseWriter, r *http.Request) {
	target, err := s.today.AddGlass(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"target": target})
}

// handleRemoveGlass clamps at zero rather than erroring on an empty day.
func (s *Server) handleRemoveGlass(w http.ResponseWriter, r *http.Request) {
	target, err := s.today.RemoveGlass(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"target": target})
}

func (s *Server) handleTodayCalories(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Calories int `json:"calories"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	target, err := s.today.UpdateCalories(r.Context(), req.Calories)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"target": target})
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	task, err := s.store.AddTask(r.Context(), req.Title)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"task": task})
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	target, err := s.store.ToggleTask(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"target": target})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	target, err := s.store.DeleteTask(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"target": target})
}

func (s *Server) handleGetTarget(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"target": s.store.Target(date)})
}

func (s *Server) handleUpdateTarget(w http.ResponseWriter, r *http.Request) {
	var update domain.DailyTargetUpdate
	if err := parseJSON(r, &update); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	target, err := s.store.UpdateDailyTarget(r.Context(), r.PathValue("date"), update)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"target": target})
}
