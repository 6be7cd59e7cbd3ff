package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/service"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/transport/rest/middleware"
)

// ResultsHandler handles the authenticated quiz-result endpoints, the
// server side of the anonymous-to-authenticated hand-off.
type ResultsHandler struct {
	resultSvc *service.ResultService
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(resultSvc *service.ResultService) *ResultsHandler {
	return &ResultsHandler{resultSvc: resultSvc}
}

type saveResultsRequest struct {
	ResultIDs []string `json:"resultIds"`
}

// Save handles POST /quiz/results.
func (h *ResultsHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req saveResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "resultIds must be an array")
		return
	}

	if err := h.resultSvc.Save(r.Context(), userID, req.ResultIDs); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyResults), errors.Is(err, service.ErrInvalidResultIDs):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "error saving quiz results")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Quiz results saved",
	})
}

// Get handles GET /quiz/results.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	resultIDs, err := h.resultSvc.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoResults) {
			writeError(w, http.StatusNotFound, "No quiz results found")
			return
		}
		writeError(w, http.StatusInternalServerError, "error retrieving quiz results")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"resultIds": resultIDs,
	})
}
