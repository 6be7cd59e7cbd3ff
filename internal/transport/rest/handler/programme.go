package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/repository"
)

// ProgrammeHandler serves study programme detail lookups.
type ProgrammeHandler struct {
	catalog repository.CatalogRepo
}

// NewProgrammeHandler creates a new programme handler.
func NewProgrammeHandler(catalog repository.CatalogRepo) *ProgrammeHandler {
	return &ProgrammeHandler{catalog: catalog}
}

// Get handles GET /programmes/{id}.
func (h *ProgrammeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	programme, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error retrieving study programme")
		return
	}
	if programme == nil {
		writeError(w, http.StatusNotFound, "Study programme not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"studyProgramme": programme,
	})
}
