package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/repository"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/service"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/transport/rest/handler"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router.
type Container struct {
	FilterService   *service.FilterService
	QuestionService *service.QuestionService
	ResultService   *service.ResultService
	Catalog         repository.CatalogRepo
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	quizHandler := handler.NewQuizHandler(c.FilterService, c.QuestionService)
	resultsHandler := handler.NewResultsHandler(c.ResultService)
	programmeHandler := handler.NewProgrammeHandler(c.Catalog)

	r.Use(corsMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Public quiz routes
	api.HandleFunc("/quiz/filter", quizHandler.Filter).Methods("POST", "OPTIONS")
	api.HandleFunc("/quiz/level/{level}/questions", quizHandler.Questions).Methods("GET", "OPTIONS")
	api.HandleFunc("/programmes/{id}", programmeHandler.Get).Methods("GET", "OPTIONS")

	// Authenticated result hand-off routes
	authed := api.NewRoute().Subrouter()
	authed.Use(middleware.RequireUser)
	authed.HandleFunc("/quiz/results", resultsHandler.Save).Methods("POST", "OPTIONS")
	authed.HandleFunc("/quiz/results", resultsHandler.Get).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
