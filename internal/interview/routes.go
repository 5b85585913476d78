package interview

import (
	"github.com/go-chi/chi/v5"

	"github.com/deerk/mock-interviewer/internal/middlewares"
)

// Routes registers the two endpoints, each behind its own rate limiter.
func Routes(r chi.Router, h *Handler) {
	r.With(middlewares.RateLimit()).Post("/generate-questions", h.GenerateQuestions)
	r.With(middlewares.RateLimit()).Post("/analyze-responses", h.AnalyzeResponses)
}
