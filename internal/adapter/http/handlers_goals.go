package adapthttp

import (
	"net/http"

	"fittrack/internal/app"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.store.Goals()})
}

func (s *Server) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	var in app.GoalInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	goal, err := s.store.AddGoal(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"goal": goal})
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value float64 `json:"value"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	goal, err := s.store.UpdateGoalProgress(r.Context(), r.PathValue("id"), req.Value)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"goal": goal})
}

func (s *Server) handleCompleteGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := s.store.CompleteGoal(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"goal": goal})
}
