package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"sixfactors/internal/transport/rest/handler"
	"sixfactors/internal/transport/rest/middleware"
)

// Config holds the HTTP server settings.
type Config struct {
	Listen string `mapstructure:"listen"`
}

// Container holds all dependencies for the router
type Container struct {
	QuizService handler.QuizService
}

// NewRouter creates the webhook router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	quizHandler := handler.NewQuizHandler(c.QuizService)

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)

	sf := r.PathPrefix("/sixfactors").Subrouter()

	sf.HandleFunc("/question/next", quizHandler.NextQuestion).Methods("GET")
	sf.HandleFunc("/answers", quizHandler.SaveAnswer).Methods("POST")
	sf.HandleFunc("/progress/{userId}", quizHandler.Progress).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
