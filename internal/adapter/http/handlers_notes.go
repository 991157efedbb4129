package adapthttp

import (
	"net/http"

	"fittrack/internal/domain"
)

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.store.Notes()})
}

func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string              `json:"title"`
		Content  string              `json:"content"`
		Category domain.NoteCategory `json:"category"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	note, err := s.store.AddNote(r.Context(), req.Title, req.Content, req.Category)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"note": note})
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var update domain.NoteUpdate
	if err := parseJSON(r, &update); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	note, err := s.store.UpdateNote(r.Context(), r.PathValue("id"), update)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"note": note})
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteNote(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
