package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/deerk/mock-interviewer/internal/config"
	"github.com/deerk/mock-interviewer/internal/interview"
	"github.com/deerk/mock-interviewer/internal/middlewares"
)

type RouterConfig struct {
	InterviewHandler *interview.Handler
	AllowedOrigins   []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/", root)
	r.Options("/*", preflight)

	interview.Routes(r, cfg.InterviewHandler)

	return r
}

func root(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Mock Interviewer API is running",
	})
}

// preflight answers OPTIONS on any path permissively, independent of the
// origin allow-list.
func preflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "*")
	w.Header().Set("Access-Control-Max-Age", "3600")
	config.JSON(w, http.StatusOK, "OK")
}
