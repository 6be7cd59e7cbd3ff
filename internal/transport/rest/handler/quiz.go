package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/riasec"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/service"
)

// QuizHandler handles the quiz filtering and question endpoints.
type QuizHandler struct {
	filterSvc   *service.FilterService
	questionSvc *service.QuestionService
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(filterSvc *service.FilterService, questionSvc *service.QuestionService) *QuizHandler {
	return &QuizHandler{filterSvc: filterSvc, questionSvc: questionSvc}
}

// Filter handles POST /quiz/filter.
func (h *QuizHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req model.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Level {
	case model.Level1:
		studyType := ""
		if len(req.Answers) > 0 {
			studyType = req.Answers[0].StudyType
		}
		ids, err := h.filterSvc.FilterLevel1(r.Context(), studyType)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "filter error")
			return
		}
		writeJSON(w, http.StatusOK, model.FilterResponse{IDs: emptyIfNil(ids)})

	case model.Level2:
		scores := riasec.FromPairs(req.ScorePairs())
		ids, err := h.filterSvc.FilterLevel2(r.Context(), req.StudyProgrammeIDs, scores)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "filter error")
			return
		}
		writeJSON(w, http.StatusOK, model.FilterResponse{IDs: emptyIfNil(ids)})

	case model.Level3:
		scores := riasec.FromPairs(req.ScorePairs())
		results, err := h.filterSvc.FilterLevel3(r.Context(), req.StudyProgrammeIDs, scores)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "filter error")
			return
		}
		ids := make([]string, len(results))
		for i, res := range results {
			ids[i] = res.ID
		}
		writeJSON(w, http.StatusOK, model.FilterResponse{IDs: ids, Results: results})

	default:
		writeError(w, http.StatusBadRequest, "level must be 1, 2 or 3")
	}
}

// Questions handles GET /quiz/level/{level}/questions.
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(mux.Vars(r)["level"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "level must be a number")
		return
	}
	if level != model.Level2 {
		writeError(w, http.StatusNotFound, "no questions for this level")
		return
	}

	questions, err := h.questionSvc.Level2Questions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error retrieving questions")
		return
	}
	if questions == nil {
		questions = []model.Question{}
	}
	writeJSON(w, http.StatusOK, model.QuestionsResponse{Questions: questions})
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
